// Package export writes an owner's ledger as a semicolon-separated backup.
// The layout matches the importer's respaldo profile, so a backup can be
// loaded back through the import endpoint.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jmcardenas/centavo/internal/ledger"
)

var header = []string{"Fecha", "Tipo", "Monto", "Categoría", "Descripción"}

type Service struct {
	ledger *ledger.Service
}

func NewService(ledgerSvc *ledger.Service) *Service {
	return &Service{ledger: ledgerSvc}
}

// WriteCSV streams the entries matching the filter to w. Rows keep the
// store's listing order.
func (s *Service) WriteCSV(ctx context.Context, ownerID uuid.UUID, filter ledger.Filter, w io.Writer) error {
	txs, err := s.ledger.List(ctx, ownerID, filter)
	if err != nil {
		return fmt.Errorf("listing transactions: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range txs {
		row := []string{
			tx.Date.Format(time.DateOnly),
			string(tx.Type),
			formatAmount(tx.Amount),
			tx.Category,
			tx.Description,
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// formatAmount renders cents in the Spanish number format the importer
// parses: dot for thousands, comma for decimals. 123456 -> "1.234,56".
func formatAmount(cents int64) string {
	fixed := decimal.New(cents, -2).StringFixed(2)

	intPart, decPart, _ := strings.Cut(fixed, ".")

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	var b strings.Builder

	if neg {
		b.WriteByte('-')
	}

	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}

		b.WriteRune(digit)
	}

	return b.String() + "," + decPart
}
