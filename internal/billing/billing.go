package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft         Status = "draft"
	StatusIssued        Status = "issued"
	StatusPaid          Status = "paid"
	StatusPartiallyPaid Status = "partially_paid"
	StatusOverdue       Status = "overdue"
	StatusCancelled     Status = "cancelled"
)

// Manual reports whether callers may set the status directly. Paid and
// partially paid are derived from payments.
func (s Status) Manual() bool {
	switch s {
	case StatusDraft, StatusIssued, StatusOverdue, StatusCancelled:
		return true
	}

	return false
}

type Method string

const (
	MethodCash     Method = "cash"
	MethodCard     Method = "card"
	MethodTransfer Method = "transfer"
	MethodCheck    Method = "check"
	MethodCCP      Method = "ccp"
)

func (m Method) Valid() bool {
	switch m {
	case MethodCash, MethodCard, MethodTransfer, MethodCheck, MethodCCP:
		return true
	}

	return false
}

type Invoice struct {
	ID         uuid.UUID
	Number     string
	ClientID   uuid.UUID
	IssueDate  time.Time
	DueDate    time.Time
	AmountHT   decimal.Decimal
	TVARate    decimal.Decimal
	AmountTVA  decimal.Decimal
	AmountTTC  decimal.Decimal
	AmountPaid decimal.Decimal
	Status     Status
	Notes      string
	Lines      []Line
	CreatedAt  time.Time
}

// BalanceDue is what the client still owes on the invoice.
func (inv *Invoice) BalanceDue() decimal.Decimal {
	return inv.AmountTTC.Sub(inv.AmountPaid)
}

// Line bills one shipment at its amount when invoiced.
type Line struct {
	ID         uuid.UUID
	InvoiceID  uuid.UUID
	ShipmentID uuid.UUID
	Amount     decimal.Decimal
}

type Payment struct {
	ID        uuid.UUID
	Number    string
	InvoiceID uuid.UUID
	Amount    decimal.Decimal
	Date      time.Time
	Method    Method
	Reference string
	Notes     string
	CreatedAt time.Time
}

type ListFilter struct {
	ClientID *uuid.UUID
	Status   *Status
}
