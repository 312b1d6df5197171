package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/database"
	"github.com/MrJamesThe3rd/dispatch/internal/ident"
	identstore "github.com/MrJamesThe3rd/dispatch/internal/ident/store"
	"github.com/MrJamesThe3rd/dispatch/internal/incident"
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

const incidentColumns = `id, number, type, shipment_id, tour_id, description, status, reported_at, resolved_at, resolution_notes`

func scanIncident(s scanner) (*incident.Incident, error) {
	var i incident.Incident

	var typ, status string

	if err := s.Scan(
		&i.ID, &i.Number, &typ, &i.ShipmentID, &i.TourID, &i.Description, &status,
		&i.ReportedAt, &i.ResolvedAt, &i.ResolutionNotes,
	); err != nil {
		return nil, err
	}

	i.Type = incident.Type(typ)
	i.Status = incident.Status(status)

	return &i, nil
}

const claimColumns = `
	id, number, client_id, shipment_id, invoice_id, subject, description,
	status, priority, filed_at, resolved_at, resolution
`

func scanClaim(s scanner) (*incident.Claim, error) {
	var c incident.Claim

	var status, priority string

	if err := s.Scan(
		&c.ID, &c.Number, &c.ClientID, &c.ShipmentID, &c.InvoiceID, &c.Subject, &c.Description,
		&status, &priority, &c.FiledAt, &c.ResolvedAt, &c.Resolution,
	); err != nil {
		return nil, err
	}

	c.Status = incident.ClaimStatus(status)
	c.Priority = incident.Priority(priority)

	return &c, nil
}

// withNumber allocates an identifier of kind and runs insert with it in one transaction.
func (s *Store) withNumber(ctx context.Context, kind ident.Kind, insert func(tx *sql.Tx, number string) error) error {
	dbTx, err := s.db.BeginTx(ctx, database.ReadCommitted)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	number, err := identstore.Allocate(ctx, dbTx, kind)
	if err != nil {
		return err
	}

	if err := insert(dbTx, number); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing %s: %w", kind, database.Classify(err))
	}

	return nil
}

func (s *Store) CreateIncident(ctx context.Context, i *incident.Incident) error {
	return s.withNumber(ctx, ident.KindIncident, func(tx *sql.Tx, number string) error {
		query := `
			INSERT INTO incidents (number, type, shipment_id, tour_id, description, status, reported_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW())
			RETURNING id, reported_at
		`

		err := tx.QueryRowContext(ctx, query,
			number, i.Type, i.ShipmentID, i.TourID, i.Description, i.Status,
		).Scan(&i.ID, &i.ReportedAt)
		if err != nil {
			return fmt.Errorf("creating incident: %w", database.Classify(err))
		}

		i.Number = number

		return nil
	})
}

func (s *Store) GetIncident(ctx context.Context, id uuid.UUID) (*incident.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1`

	i, err := scanIncident(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("incident")
		}

		return nil, fmt.Errorf("getting incident: %w", err)
	}

	return i, nil
}

func (s *Store) ListIncidents(ctx context.Context, filter incident.IncidentFilter) ([]*incident.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.ShipmentID != nil {
		query += fmt.Sprintf(" AND shipment_id = $%d", argIdx)

		args = append(args, *filter.ShipmentID)
		argIdx++
	}

	if filter.TourID != nil {
		query += fmt.Sprintf(" AND tour_id = $%d", argIdx)

		args = append(args, *filter.TourID)
		argIdx++
	}

	query += " ORDER BY reported_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing incidents: %w", err)
	}
	defer rows.Close()

	var incidents []*incident.Incident

	for rows.Next() {
		i, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning incident: %w", err)
		}

		incidents = append(incidents, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating incidents: %w", err)
	}

	return incidents, nil
}

func (s *Store) UpdateIncident(ctx context.Context, i *incident.Incident) error {
	query := `
		UPDATE incidents
		SET status = $1, resolved_at = $2, resolution_notes = $3
		WHERE id = $4
	`

	if _, err := s.db.ExecContext(ctx, query, i.Status, i.ResolvedAt, i.ResolutionNotes, i.ID); err != nil {
		return fmt.Errorf("updating incident %s: %w", i.Number, database.Classify(err))
	}

	return nil
}

func (s *Store) CreateClaim(ctx context.Context, c *incident.Claim) error {
	return s.withNumber(ctx, ident.KindClaim, func(tx *sql.Tx, number string) error {
		query := `
			INSERT INTO claims (number, client_id, shipment_id, invoice_id, subject, description, status, priority, filed_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
			RETURNING id, filed_at
		`

		err := tx.QueryRowContext(ctx, query,
			number, c.ClientID, c.ShipmentID, c.InvoiceID, c.Subject, c.Description, c.Status, c.Priority,
		).Scan(&c.ID, &c.FiledAt)
		if err != nil {
			return fmt.Errorf("creating claim: %w", database.Classify(err))
		}

		c.Number = number

		return nil
	})
}

func (s *Store) GetClaim(ctx context.Context, id uuid.UUID) (*incident.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE id = $1`

	c, err := scanClaim(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("claim")
		}

		return nil, fmt.Errorf("getting claim: %w", err)
	}

	return c, nil
}

func (s *Store) ListClaims(ctx context.Context, filter incident.ClaimFilter) ([]*incident.Claim, error) {
	query := `SELECT ` + claimColumns + ` FROM claims WHERE TRUE`

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

	query += " ORDER BY filed_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing claims: %w", err)
	}
	defer rows.Close()

	var claims []*incident.Claim

	for rows.Next() {
		c, err := scanClaim(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning claim: %w", err)
		}

		claims = append(claims, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating claims: %w", err)
	}

	return claims, nil
}

func (s *Store) UpdateClaim(ctx context.Context, c *incident.Claim) error {
	query := `
		UPDATE claims
		SET status = $1, priority = $2, resolved_at = $3, resolution = $4
		WHERE id = $5
	`

	if _, err := s.db.ExecContext(ctx, query, c.Status, c.Priority, c.ResolvedAt, c.Resolution, c.ID); err != nil {
		return fmt.Errorf("updating claim %s: %w", c.Number, database.Classify(err))
	}

	return nil
}
