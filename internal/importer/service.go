package importer

import (
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/pillars/internal/financial"
	"github.com/MrJamesThe3rd/pillars/internal/importer/bank"
)

type Service struct {
	bankImporter Importer
}

func NewService() *Service {
	return &Service{
		bankImporter: bank.NewParser(),
	}
}

func (s *Service) Import(source Source, r io.Reader) ([]financial.TransactionParams, error) {
	var imp Importer

	switch source {
	case SourceBank:
		imp = s.bankImporter
	default:
		return nil, fmt.Errorf("unknown source: %s", source)
	}

	return imp.Parse(r)
}
