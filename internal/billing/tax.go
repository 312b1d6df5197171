package billing

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/money"
)

type TaxResult struct {
	AmountTVA decimal.Decimal
	AmountTTC decimal.Decimal
	Status    Status
}

// RecomputeTax derives the tax amounts and the payment status of inv from
// AmountHT, TVARate and AmountPaid, and writes them back to inv.
//
// The status only moves to paid or partially_paid; an unpaid invoice keeps
// whatever status its owner gave it.
func RecomputeTax(inv *Invoice) (TaxResult, error) {
	if inv.AmountHT.IsNegative() {
		return TaxResult{}, apperr.Validation("invoice %s: amount HT must be >= 0", inv.Number)
	}

	if inv.TVARate.IsNegative() {
		return TaxResult{}, apperr.Validation("invoice %s: TVA rate must be >= 0", inv.Number)
	}

	tva := money.PercentOf(inv.AmountHT, inv.TVARate)
	ttc := inv.AmountHT.Add(tva)

	status := inv.Status

	switch {
	case inv.AmountPaid.GreaterThanOrEqual(ttc):
		status = StatusPaid
	case inv.AmountPaid.IsPositive():
		status = StatusPartiallyPaid
	}

	inv.AmountTVA = tva
	inv.AmountTTC = ttc
	inv.Status = status

	return TaxResult{AmountTVA: tva, AmountTTC: ttc, Status: status}, nil
}
