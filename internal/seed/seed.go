// Package seed provides the initial records every collection starts from.
// The fixture is embedded so the binaries carry their own data; a reset
// simply reloads these values.
package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/MrJamesThe3rd/pillars/internal/financial"
	"github.com/MrJamesThe3rd/pillars/internal/intellectual"
	"github.com/MrJamesThe3rd/pillars/internal/physical"
	"github.com/MrJamesThe3rd/pillars/internal/spiritual"
)

//go:embed seed.yaml
var raw []byte

// Data holds the seed records for all four pillars.
type Data struct {
	Financial    financial.Seed    `yaml:"financial"`
	Intellectual intellectual.Seed `yaml:"intellectual"`
	Physical     physical.Seed     `yaml:"physical"`
	Spiritual    spiritual.Seed    `yaml:"spiritual"`
}

// Load decodes the embedded fixture.
func Load() (Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("decoding seed fixture: %w", err)
	}

	return data, nil
}
