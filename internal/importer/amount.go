package importer

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount reads "1.234,56", "1234,56", "1,234.56" and "1234.56".
// The right-most separator is the decimal one. A trailing DA or DZD is dropped.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "").Replace(s)

	upper := strings.ToUpper(clean)
	for _, suffix := range []string{"DZD", "DA"} {
		if strings.HasSuffix(upper, suffix) {
			clean = clean[:len(clean)-len(suffix)]
			break
		}
	}

	comma, dot := strings.LastIndex(clean, ","), strings.LastIndex(clean, ".")

	switch {
	case comma > dot:
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	case comma >= 0:
		clean = strings.ReplaceAll(clean, ",", "")
	}

	return decimal.NewFromString(clean)
}
