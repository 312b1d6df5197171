package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/billing"
)

type lineResponse struct {
	ShipmentID uuid.UUID       `json:"shipment_id"`
	Amount     decimal.Decimal `json:"amount"`
}

type invoiceResponse struct {
	ID         uuid.UUID       `json:"id"`
	Number     string          `json:"number"`
	ClientID   uuid.UUID       `json:"client_id"`
	IssueDate  string          `json:"issue_date"`
	DueDate    string          `json:"due_date"`
	AmountHT   decimal.Decimal `json:"amount_ht"`
	TVARate    decimal.Decimal `json:"tva_rate"`
	AmountTVA  decimal.Decimal `json:"amount_tva"`
	AmountTTC  decimal.Decimal `json:"amount_ttc"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
	BalanceDue decimal.Decimal `json:"balance_due"`
	Status     billing.Status  `json:"status"`
	Notes      string          `json:"notes,omitempty"`
	Lines      []lineResponse  `json:"lines,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func toInvoice(inv *billing.Invoice) invoiceResponse {
	var lines []lineResponse
	for _, l := range inv.Lines {
		lines = append(lines, lineResponse{ShipmentID: l.ShipmentID, Amount: l.Amount})
	}

	return invoiceResponse{
		ID:         inv.ID,
		Number:     inv.Number,
		ClientID:   inv.ClientID,
		IssueDate:  inv.IssueDate.Format(time.DateOnly),
		DueDate:    inv.DueDate.Format(time.DateOnly),
		AmountHT:   inv.AmountHT,
		TVARate:    inv.TVARate,
		AmountTVA:  inv.AmountTVA,
		AmountTTC:  inv.AmountTTC,
		AmountPaid: inv.AmountPaid,
		BalanceDue: inv.BalanceDue(),
		Status:     inv.Status,
		Notes:      inv.Notes,
		Lines:      lines,
		CreatedAt:  inv.CreatedAt,
	}
}

type paymentResponse struct {
	ID        uuid.UUID       `json:"id"`
	Number    string          `json:"number"`
	InvoiceID uuid.UUID       `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Method    billing.Method  `json:"method"`
	Reference string          `json:"reference,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func toPayment(p *billing.Payment) paymentResponse {
	return paymentResponse{
		ID:        p.ID,
		Number:    p.Number,
		InvoiceID: p.InvoiceID,
		Amount:    p.Amount,
		Date:      p.Date.Format(time.DateOnly),
		Method:    p.Method,
		Reference: p.Reference,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
}

type ledgerResponse struct {
	Payment paymentResponse `json:"payment"`
	Invoice invoiceResponse `json:"invoice"`
	// ClientBalance is absent when the payment settled the invoice.
	ClientBalance *decimal.Decimal `json:"client_balance,omitempty"`
}
