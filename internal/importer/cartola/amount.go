package cartola

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount parses a Spanish-formatted amount string into cents.
// Examples: "1.234,56" -> 123456, "-12.500" -> -1250000, "$ 10,00" -> 1000.
func parseAmount(s string) (int64, error) {
	clean := strings.NewReplacer("$", "", " ", "", " ", "", ".", "").Replace(s)
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
