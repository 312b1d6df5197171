package billing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=billing
type Repository interface {
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	ListInvoices(ctx context.Context, filter ListFilter) ([]*Invoice, error)
	ListPayments(ctx context.Context, invoiceID uuid.UUID) ([]*Payment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error

	BeginLedger(ctx context.Context) (LedgerTx, error)
}

// LedgerTx is a read-committed transaction over invoices, payments and client
// balances. Numbers are allocated inside it.
type LedgerTx interface {
	LockInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	InsertPayment(ctx context.Context, p *Payment) error
	SumPayments(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error)
	UpdateInvoiceAmounts(ctx context.Context, inv *Invoice) error
	SetClientBalance(ctx context.Context, clientID uuid.UUID, balance decimal.Decimal) error

	UninvoicedShipments(ctx context.Context, clientID uuid.UUID, shipmentIDs []uuid.UUID) ([]Line, error)
	CreateInvoice(ctx context.Context, inv *Invoice) error

	Commit() error
	Rollback() error
}

type Config struct {
	DefaultTVARate decimal.Decimal
	PaymentRetries int
}

type Service struct {
	repo Repository
	cfg  Config
}

func NewService(repo Repository, cfg Config) *Service {
	if cfg.PaymentRetries < 0 {
		cfg.PaymentRetries = 0
	}

	return &Service{repo: repo, cfg: cfg}
}

type RecordPaymentParams struct {
	InvoiceID uuid.UUID
	Amount    decimal.Decimal
	Date      time.Time
	Method    Method
	Reference string
	Notes     string
}

func (p RecordPaymentParams) validate() error {
	if !p.Amount.IsPositive() {
		return apperr.Validation("payment amount must be > 0, got %s", money.Format(p.Amount))
	}

	if !p.Method.Valid() {
		return apperr.Validation("unknown payment method %q", p.Method)
	}

	return nil
}

// LedgerResult is the state left by a recorded payment. ClientBalance is nil
// when the payment settled the invoice and the client balance was not touched.
type LedgerResult struct {
	Payment       *Payment
	Invoice       *Invoice
	ClientBalance *decimal.Decimal
}

// RecordPayment stores a payment and brings the invoice and the client balance
// in line with it, all in one transaction.
//
// The paid amount is the sum of every payment on the invoice. When a balance
// remains it overwrites the client balance, whatever the client owes on other
// invoices.
func (s *Service) RecordPayment(ctx context.Context, params RecordPaymentParams) (*LedgerResult, error) {
	params.Amount = money.Round(params.Amount)

	if err := params.validate(); err != nil {
		return nil, err
	}

	if params.Date.IsZero() {
		params.Date = time.Now()
	}

	var result *LedgerResult

	err := s.withRetry(ctx, "record payment", func(ltx LedgerTx) error {
		var err error

		result, err = recordPayment(ctx, ltx, params)

		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func recordPayment(ctx context.Context, ltx LedgerTx, params RecordPaymentParams) (*LedgerResult, error) {
	inv, err := ltx.LockInvoice(ctx, params.InvoiceID)
	if err != nil {
		return nil, err
	}

	if inv.Status == StatusCancelled {
		return nil, apperr.Validation("invoice %s is cancelled", inv.Number)
	}

	p := &Payment{
		InvoiceID: inv.ID,
		Amount:    params.Amount,
		Date:      params.Date,
		Method:    params.Method,
		Reference: params.Reference,
		Notes:     params.Notes,
	}
	if err := ltx.InsertPayment(ctx, p); err != nil {
		return nil, err
	}

	paid, err := ltx.SumPayments(ctx, inv.ID)
	if err != nil {
		return nil, err
	}

	inv.AmountPaid = paid

	if _, err := RecomputeTax(inv); err != nil {
		return nil, err
	}

	if err := ltx.UpdateInvoiceAmounts(ctx, inv); err != nil {
		return nil, err
	}

	result := &LedgerResult{Payment: p, Invoice: inv}

	if due := inv.BalanceDue(); due.IsPositive() {
		if err := ltx.SetClientBalance(ctx, inv.ClientID, due); err != nil {
			return nil, err
		}

		result.ClientBalance = &due
	}

	return result, nil
}

type CreateInvoiceParams struct {
	ClientID    uuid.UUID
	ShipmentIDs []uuid.UUID
	AmountHT    *decimal.Decimal
	TVARate     *decimal.Decimal
	DueDate     time.Time
	Notes       string
}

func (p CreateInvoiceParams) validate() error {
	if p.ClientID == uuid.Nil {
		return apperr.Validation("client is required")
	}

	if p.DueDate.IsZero() {
		return apperr.Validation("due date is required")
	}

	if len(p.ShipmentIDs) == 0 && p.AmountHT == nil {
		return apperr.Validation("an invoice needs shipments or an amount HT")
	}

	if p.TVARate != nil {
		return ValidateTVARate(*p.TVARate)
	}

	return nil
}

// RatePlaces is the stored scale of a TVA rate.
const RatePlaces = 2

var maxTVARate = decimal.RequireFromString("999.99")

// ValidateTVARate accepts a rate the invoices table can store exactly.
func ValidateTVARate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(maxTVARate) {
		return apperr.Validation("TVA rate must be between 0 and %s, got %s", maxTVARate, rate)
	}

	if !money.WithinScale(rate, RatePlaces) {
		return apperr.Validation("TVA rate %s has more than %d decimals", rate, RatePlaces)
	}

	return nil
}

// CreateInvoice drafts an invoice. With shipments, one line is billed per
// shipment and the amount HT is their sum; the shipments must belong to the
// client and not be billed yet.
func (s *Service) CreateInvoice(ctx context.Context, params CreateInvoiceParams) (*Invoice, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	rate := s.cfg.DefaultTVARate
	if params.TVARate != nil {
		rate = *params.TVARate
	}

	var inv *Invoice

	err := s.withRetry(ctx, "create invoice", func(ltx LedgerTx) error {
		inv = &Invoice{
			ClientID:  params.ClientID,
			IssueDate: time.Now(),
			DueDate:   params.DueDate,
			TVARate:   rate,
			Status:    StatusDraft,
			Notes:     params.Notes,
		}

		if params.AmountHT != nil {
			inv.AmountHT = money.Round(*params.AmountHT)
		}

		if len(params.ShipmentIDs) > 0 {
			lines, err := ltx.UninvoicedShipments(ctx, params.ClientID, params.ShipmentIDs)
			if err != nil {
				return err
			}

			if len(lines) != len(params.ShipmentIDs) {
				return apperr.Validation("%d of %d shipments are not billable for this client",
					len(params.ShipmentIDs)-len(lines), len(params.ShipmentIDs))
			}

			inv.Lines = lines
			inv.AmountHT = decimal.Zero

			for _, l := range lines {
				inv.AmountHT = inv.AmountHT.Add(l.Amount)
			}
		}

		if _, err := RecomputeTax(inv); err != nil {
			return err
		}

		return ltx.CreateInvoice(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx, filter)
}

func (s *Service) ListPayments(ctx context.Context, invoiceID uuid.UUID) ([]*Payment, error) {
	if _, err := s.repo.GetInvoice(ctx, invoiceID); err != nil {
		return nil, err
	}

	return s.repo.ListPayments(ctx, invoiceID)
}

// SetStatus applies a caller-managed transition. Paid invoices are final.
// Once payments exist the only manual move is to overdue; the next payment
// derives the status again.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if !status.Manual() {
		return apperr.Validation("status %q is derived from payments and cannot be set", status)
	}

	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return err
	}

	if inv.Status == StatusPaid {
		return apperr.Validation("invoice %s is paid", inv.Number)
	}

	if inv.AmountPaid.IsPositive() && status != StatusOverdue {
		return apperr.Validation("invoice %s has payments of %s and cannot become %s",
			inv.Number, money.Format(inv.AmountPaid), status)
	}

	return s.repo.UpdateStatus(ctx, id, status)
}

// withRetry runs fn in a fresh ledger transaction, repeating it while the
// failure is a concurrency conflict and retries remain.
func (s *Service) withRetry(ctx context.Context, op string, fn func(ltx LedgerTx) error) error {
	var err error

	for attempt := 0; attempt <= s.cfg.PaymentRetries; attempt++ {
		if attempt > 0 {
			slog.Warn("retrying after conflict", "op", op, "attempt", attempt, "error", err)
		}

		err = s.runLedger(ctx, fn)
		if err == nil || !apperr.Retryable(err) {
			return err
		}

		if ctx.Err() != nil {
			return err
		}
	}

	return err
}

func (s *Service) runLedger(ctx context.Context, fn func(ltx LedgerTx) error) error {
	ltx, err := s.repo.BeginLedger(ctx)
	if err != nil {
		return fmt.Errorf("begin ledger: %w", err)
	}
	defer ltx.Rollback()

	if err := fn(ltx); err != nil {
		return err
	}

	if err := ltx.Commit(); err != nil {
		return fmt.Errorf("commit ledger: %w", err)
	}

	return nil
}
