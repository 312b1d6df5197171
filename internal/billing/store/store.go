package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/billing"
	"github.com/MrJamesThe3rd/dispatch/internal/database"
	"github.com/MrJamesThe3rd/dispatch/internal/ident"
	identstore "github.com/MrJamesThe3rd/dispatch/internal/ident/store"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const invoiceColumns = `
	id, number, client_id, issue_date, due_date, amount_ht, tva_rate, amount_tva,
	amount_ttc, amount_paid, status, notes, created_at
`

func scanInvoice(s scanner) (*billing.Invoice, error) {
	var inv billing.Invoice

	var status string

	if err := s.Scan(
		&inv.ID, &inv.Number, &inv.ClientID, &inv.IssueDate, &inv.DueDate, &inv.AmountHT, &inv.TVARate, &inv.AmountTVA,
		&inv.AmountTTC, &inv.AmountPaid, &status, &inv.Notes, &inv.CreatedAt,
	); err != nil {
		return nil, err
	}

	inv.Status = billing.Status(status)

	return &inv, nil
}

const paymentColumns = `id, number, invoice_id, amount, date, method, reference, notes, created_at`

func scanPayment(s scanner) (*billing.Payment, error) {
	var p billing.Payment

	var method string

	if err := s.Scan(&p.ID, &p.Number, &p.InvoiceID, &p.Amount, &p.Date, &method, &p.Reference, &p.Notes, &p.CreatedAt); err != nil {
		return nil, err
	}

	p.Method = billing.Method(method)

	return &p, nil
}

func loadLines(ctx context.Context, q querier, inv *billing.Invoice) error {
	rows, err := q.QueryContext(ctx,
		`SELECT id, invoice_id, shipment_id, amount FROM invoice_lines WHERE invoice_id = $1 ORDER BY id`,
		inv.ID,
	)
	if err != nil {
		return fmt.Errorf("listing lines of %s: %w", inv.Number, err)
	}
	defer rows.Close()

	inv.Lines = nil

	for rows.Next() {
		var l billing.Line
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.ShipmentID, &l.Amount); err != nil {
			return fmt.Errorf("scanning invoice line: %w", err)
		}

		inv.Lines = append(inv.Lines, l)
	}

	return rows.Err()
}

func getInvoice(ctx context.Context, q querier, id uuid.UUID, lock bool) (*billing.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	inv, err := scanInvoice(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("invoice")
		}

		return nil, fmt.Errorf("getting invoice: %w", database.Classify(err))
	}

	if err := loadLines(ctx, q, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	return getInvoice(ctx, s.db, id, false)
}

func (s *Store) ListInvoices(ctx context.Context, filter billing.ListFilter) ([]*billing.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.ClientID != nil {
		query += fmt.Sprintf(" AND client_id = $%d", argIdx)

		args = append(args, *filter.ClientID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*billing.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoices: %w", err)
	}

	return invoices, nil
}

func (s *Store) ListPayments(ctx context.Context, invoiceID uuid.UUID) ([]*billing.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE invoice_id = $1
		ORDER BY date DESC, number DESC`

	rows, err := s.db.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	var payments []*billing.Payment

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payments: %w", err)
	}

	return payments, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status billing.Status) error {
	res, err := s.db.ExecContext(ctx, `UPDATE invoices SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("updating invoice status: %w", database.Classify(err))
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperr.NotFound("invoice")
	}

	return nil
}

type ledgerTx struct {
	tx *sql.Tx
}

func (s *Store) BeginLedger(ctx context.Context) (billing.LedgerTx, error) {
	dbTx, err := s.db.BeginTx(ctx, database.ReadCommitted)
	if err != nil {
		return nil, fmt.Errorf("beginning ledger tx: %w", err)
	}

	return &ledgerTx{tx: dbTx}, nil
}

func (l *ledgerTx) Commit() error   { return database.Classify(l.tx.Commit()) }
func (l *ledgerTx) Rollback() error { return l.tx.Rollback() }

func (l *ledgerTx) LockInvoice(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	return getInvoice(ctx, l.tx, id, true)
}

func (l *ledgerTx) InsertPayment(ctx context.Context, p *billing.Payment) error {
	number, err := identstore.Allocate(ctx, l.tx, ident.KindPayment)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO payments (number, invoice_id, amount, date, method, reference, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err = l.tx.QueryRowContext(ctx, query,
		number,
		p.InvoiceID,
		p.Amount,
		p.Date.Format("2006-01-02"),
		p.Method,
		p.Reference,
		p.Notes,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting payment: %w", database.Classify(err))
	}

	p.Number = number

	return nil
}

func (l *ledgerTx) SumPayments(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal

	err := l.tx.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE invoice_id = $1`,
		invoiceID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing payments: %w", database.Classify(err))
	}

	return sum, nil
}

func (l *ledgerTx) UpdateInvoiceAmounts(ctx context.Context, inv *billing.Invoice) error {
	query := `
		UPDATE invoices
		SET amount_ht = $1, tva_rate = $2, amount_tva = $3, amount_ttc = $4, amount_paid = $5, status = $6
		WHERE id = $7
	`

	_, err := l.tx.ExecContext(ctx, query,
		inv.AmountHT,
		inv.TVARate,
		inv.AmountTVA,
		inv.AmountTTC,
		inv.AmountPaid,
		inv.Status,
		inv.ID,
	)
	if err != nil {
		return fmt.Errorf("updating invoice %s: %w", inv.Number, database.Classify(err))
	}

	return nil
}

func (l *ledgerTx) SetClientBalance(ctx context.Context, clientID uuid.UUID, balance decimal.Decimal) error {
	res, err := l.tx.ExecContext(ctx,
		`UPDATE clients SET balance = $1, updated_at = NOW() WHERE id = $2`,
		balance, clientID,
	)
	if err != nil {
		return fmt.Errorf("setting client balance: %w", database.Classify(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("setting client balance: %w", err)
	}

	if n == 0 {
		return apperr.NotFound("client")
	}

	return nil
}

func (l *ledgerTx) UninvoicedShipments(ctx context.Context, clientID uuid.UUID, shipmentIDs []uuid.UUID) ([]billing.Line, error) {
	ids := make([]string, len(shipmentIDs))
	for i, id := range shipmentIDs {
		ids[i] = id.String()
	}

	query := `
		SELECT s.id, s.amount
		FROM shipments s
		WHERE s.client_id = $1
		  AND s.id = ANY($2::uuid[])
		  AND NOT EXISTS (SELECT 1 FROM invoice_lines l WHERE l.shipment_id = s.id)
		ORDER BY s.created_at
		FOR UPDATE OF s
	`

	rows, err := l.tx.QueryContext(ctx, query, clientID, ids)
	if err != nil {
		return nil, fmt.Errorf("finding billable shipments: %w", database.Classify(err))
	}
	defer rows.Close()

	var lines []billing.Line

	for rows.Next() {
		var line billing.Line
		if err := rows.Scan(&line.ShipmentID, &line.Amount); err != nil {
			return nil, fmt.Errorf("scanning billable shipment: %w", err)
		}

		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating billable shipments: %w", err)
	}

	return lines, nil
}

func (l *ledgerTx) CreateInvoice(ctx context.Context, inv *billing.Invoice) error {
	number, err := identstore.Allocate(ctx, l.tx, ident.KindInvoice)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO invoices (
			number, client_id, issue_date, due_date, amount_ht, tva_rate, amount_tva,
			amount_ttc, amount_paid, status, notes, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING id, created_at
	`

	err = l.tx.QueryRowContext(ctx, query,
		number,
		inv.ClientID,
		inv.IssueDate.Format("2006-01-02"),
		inv.DueDate.Format("2006-01-02"),
		inv.AmountHT,
		inv.TVARate,
		inv.AmountTVA,
		inv.AmountTTC,
		inv.AmountPaid,
		inv.Status,
		inv.Notes,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating invoice: %w", database.Classify(err))
	}

	inv.Number = number

	lineQuery := `
		INSERT INTO invoice_lines (invoice_id, shipment_id, amount)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	for i := range inv.Lines {
		line := &inv.Lines[i]
		line.InvoiceID = inv.ID

		if err := l.tx.QueryRowContext(ctx, lineQuery, inv.ID, line.ShipmentID, line.Amount).Scan(&line.ID); err != nil {
			return fmt.Errorf("billing shipment %s on %s: %w", line.ShipmentID, number, database.Classify(err))
		}
	}

	return nil
}
