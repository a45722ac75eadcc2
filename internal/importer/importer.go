package importer

import (
	"io"

	"github.com/MrJamesThe3rd/pillars/internal/financial"
)

// Source identifies a supported statement format.
type Source string

const (
	SourceBank Source = "bank"
)

// Importer turns a raw statement file into transaction params.
type Importer interface {
	Parse(r io.Reader) ([]financial.TransactionParams, error)
}
