// Package cartola reads Chilean bank statement exports (cartolas) and the
// dashboard's own CSV backups. The format in use is auto-detected by
// matching column headers against known profiles.
package cartola

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jmcardenas/centavo/internal/encoding"
	"github.com/jmcardenas/centavo/internal/ledger"
)

// defaultCategory is used for rows whose profile carries no category column.
const defaultCategory = "Otros"

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]ledger.AppendParams, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching statement format: expected columns for cuenta, tarjeta, or respaldo")
	}

	return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Statements often carry account metadata above the real header, so every
// row is a candidate.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts ledger entries from data rows using the matched
// profile. headerRowNum is the 0-based index of the header in the original
// file (for error messages).
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]ledger.AppendParams, error) {
	dateIdx := cols[p.DateCol]
	descIdx := cols[p.DescCol]

	catIdx := -1
	if p.CategoryCol != "" {
		if i, ok := cols[p.CategoryCol]; ok {
			catIdx = i
		}
	}

	var entries []ledger.AppendParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		date, ok := parseDate(row, dateIdx)
		if !ok {
			// Footer and running-balance rows have no parseable date.
			continue
		}

		desc := cellValue(row, descIdx)
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		amount, txType, ok := extractAmount(p, cols, row)
		if !ok {
			continue
		}

		category := defaultCategory
		if catIdx >= 0 {
			if c := cellValue(row, catIdx); c != "" {
				category = c
			}
		}

		entries = append(entries, ledger.AppendParams{
			Type:        txType,
			Amount:      amount,
			Category:    category,
			Description: desc,
			Date:        date,
		})
	}

	return entries, nil
}

// dateLayouts covers the formats seen across bank exports.
var dateLayouts = []string{"02/01/2006", "02-01-2006", "2006-01-02"}

// parseDate tries to parse a date from the given cell index. Returns false
// for empty cells or unparseable values.
func parseDate(row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// extractAmount resolves the amount and entry type from a row based on the
// profile's amount mode.
func extractAmount(p *Profile, cols colIndex, row []string) (int64, ledger.Type, bool) {
	switch p.AmountMode {
	case amountSigned:
		return extractSigned(row, cols[p.AmountCol])
	case amountSplit:
		return extractSplit(row, cols[p.ChargeCol], cols[p.DepositCol])
	case amountTyped:
		return extractTyped(row, cols[p.AmountCol], cols[p.TypeCol])
	}

	return 0, "", false
}

// extractSigned handles a single signed amount column: charges are negative,
// deposits positive.
func extractSigned(row []string, idx int) (int64, ledger.Type, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return 0, "", false
	}

	cents, err := parseAmount(s)
	if err != nil || cents == 0 {
		return 0, "", false
	}

	if cents < 0 {
		return -cents, ledger.TypeExpense, true
	}

	return cents, ledger.TypeIncome, true
}

// extractSplit handles separate charge/deposit columns.
func extractSplit(row []string, chargeIdx, depositIdx int) (int64, ledger.Type, bool) {
	if s := cellValue(row, chargeIdx); s != "" {
		cents, err := parseAmount(s)
		if err == nil && cents != 0 {
			return abs(cents), ledger.TypeExpense, true
		}
	}

	if s := cellValue(row, depositIdx); s != "" {
		cents, err := parseAmount(s)
		if err == nil && cents != 0 {
			return abs(cents), ledger.TypeIncome, true
		}
	}

	return 0, "", false
}

// extractTyped handles an unsigned amount column with a separate type
// column, the layout the dashboard's own export writes.
func extractTyped(row []string, amountIdx, typeIdx int) (int64, ledger.Type, bool) {
	txType := ledger.Type(strings.ToUpper(cellValue(row, typeIdx)))
	if !txType.Valid() {
		return 0, "", false
	}

	s := cellValue(row, amountIdx)
	if s == "" {
		return 0, "", false
	}

	cents, err := parseAmount(s)
	if err != nil || cents == 0 {
		return 0, "", false
	}

	return abs(cents), txType, true
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}
