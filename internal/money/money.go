package money

import (
	"github.com/shopspring/decimal"
)

// Places is the number of decimal places stored for every monetary amount.
const Places = 2

var hundred = decimal.NewFromInt(100)

// Round rounds d to cents, half away from zero.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// PercentOf returns rate percent of amount, rounded to cents.
func PercentOf(amount, rate decimal.Decimal) decimal.Decimal {
	return Round(amount.Mul(rate).Div(hundred))
}

// Format renders d with exactly two decimals.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Places)
}

// Sum adds amounts together.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}

	return total
}

// WithinScale reports whether d carries no digits past places decimals.
func WithinScale(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Truncate(places))
}
