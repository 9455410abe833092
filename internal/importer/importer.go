package importer

import (
	"fmt"
	"io"

	"github.com/jmcardenas/centavo/internal/importer/cartola"
	"github.com/jmcardenas/centavo/internal/ledger"
)

// Source identifies the statement format being imported.
type Source string

const (
	SourceCartola Source = "cartola"
)

type Parser interface {
	Parse(r io.Reader) ([]ledger.AppendParams, error)
}

type Service struct {
	cartolaParser Parser
}

func NewService() *Service {
	return &Service{
		cartolaParser: cartola.NewParser(),
	}
}

// Import parses a statement file into ledger entries ready for Append.
// Nothing is persisted here; the caller decides what to do with the rows.
func (s *Service) Import(source Source, r io.Reader) ([]ledger.AppendParams, error) {
	var parser Parser

	switch source {
	case SourceCartola:
		parser = s.cartolaParser
	default:
		return nil, fmt.Errorf("unknown source: %s", source)
	}

	return parser.Parse(r)
}
