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
	"github.com/MrJamesThe3rd/dispatch/internal/shipment"
	shipmentstore "github.com/MrJamesThe3rd/dispatch/internal/shipment/store"
	"github.com/MrJamesThe3rd/dispatch/internal/tour"
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

const tourColumns = `
	id, number, driver_id, vehicle_id, date, started_at, ended_at,
	distance_km, fuel_consumed, duration_hours, status, notes, created_at
`

func scanTour(s scanner) (*tour.Tour, error) {
	var t tour.Tour

	var status string

	if err := s.Scan(
		&t.ID, &t.Number, &t.DriverID, &t.VehicleID, &t.Date, &t.StartedAt, &t.EndedAt,
		&t.DistanceKm, &t.FuelConsumed, &t.DurationHours, &status, &t.Notes, &t.CreatedAt,
	); err != nil {
		return nil, err
	}

	t.Status = tour.Status(status)

	return &t, nil
}

func loadStops(ctx context.Context, q querier, t *tour.Tour) error {
	query := `
		SELECT shipment_id, sequence, delivered, delivery_time, notes
		FROM tour_shipments
		WHERE tour_id = $1
		ORDER BY sequence ASC
	`

	rows, err := q.QueryContext(ctx, query, t.ID)
	if err != nil {
		return fmt.Errorf("listing stops of %s: %w", t.Number, err)
	}
	defer rows.Close()

	t.Stops = nil

	for rows.Next() {
		var stop tour.Stop
		if err := rows.Scan(&stop.ShipmentID, &stop.Sequence, &stop.Delivered, &stop.DeliveryTime, &stop.Notes); err != nil {
			return fmt.Errorf("scanning stop: %w", err)
		}

		t.Stops = append(t.Stops, stop)
	}

	return rows.Err()
}

func getTour(ctx context.Context, q querier, id uuid.UUID, lock bool) (*tour.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM delivery_tours WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	t, err := scanTour(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("tour")
		}

		return nil, fmt.Errorf("getting tour: %w", database.Classify(err))
	}

	if err := loadStops(ctx, q, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Store) GetTour(ctx context.Context, id uuid.UUID) (*tour.Tour, error) {
	return getTour(ctx, s.db, id, false)
}

func (s *Store) ListTours(ctx context.Context, filter tour.ListFilter) ([]*tour.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM delivery_tours WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.DriverID != nil {
		query += fmt.Sprintf(" AND driver_id = $%d", argIdx)

		args = append(args, *filter.DriverID)
		argIdx++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Date != nil {
		query += fmt.Sprintf(" AND date = $%d", argIdx)

		args = append(args, filter.Date.Format("2006-01-02"))
		argIdx++
	}

	query += " ORDER BY date DESC, number DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tours: %w", err)
	}
	defer rows.Close()

	var tours []*tour.Tour

	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning tour: %w", err)
		}

		tours = append(tours, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tours: %w", err)
	}

	rows.Close()

	for _, t := range tours {
		if err := loadStops(ctx, s.db, t); err != nil {
			return nil, err
		}
	}

	return tours, nil
}

type tourTx struct {
	tx       *sql.Tx
	tracking shipment.TrackingTx
}

func (s *Store) BeginTour(ctx context.Context) (tour.TourTx, error) {
	dbTx, err := s.db.BeginTx(ctx, database.ReadCommitted)
	if err != nil {
		return nil, fmt.Errorf("beginning tour tx: %w", err)
	}

	return &tourTx{tx: dbTx, tracking: shipmentstore.NewTrackingTx(dbTx)}, nil
}

func (t *tourTx) Commit() error   { return t.tx.Commit() }
func (t *tourTx) Rollback() error { return t.tx.Rollback() }

func (t *tourTx) Tracking() shipment.TrackingTx { return t.tracking }

func (t *tourTx) CreateTour(ctx context.Context, tr *tour.Tour) error {
	number, err := identstore.Allocate(ctx, t.tx, ident.KindTour)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO delivery_tours (number, driver_id, vehicle_id, date, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err = t.tx.QueryRowContext(ctx, query,
		number,
		tr.DriverID,
		tr.VehicleID,
		tr.Date.Format("2006-01-02"),
		tr.Status,
		tr.Notes,
	).Scan(&tr.ID, &tr.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating tour: %w", database.Classify(err))
	}

	tr.Number = number

	stopQuery := `
		INSERT INTO tour_shipments (tour_id, shipment_id, sequence)
		VALUES ($1, $2, $3)
	`

	for _, stop := range tr.Stops {
		if _, err := t.tx.ExecContext(ctx, stopQuery, tr.ID, stop.ShipmentID, stop.Sequence); err != nil {
			return fmt.Errorf("adding stop %d to %s: %w", stop.Sequence, number, database.Classify(err))
		}
	}

	return nil
}

func (t *tourTx) LockTour(ctx context.Context, id uuid.UUID) (*tour.Tour, error) {
	return getTour(ctx, t.tx, id, true)
}

func (t *tourTx) UpdateTour(ctx context.Context, tr *tour.Tour) error {
	query := `
		UPDATE delivery_tours
		SET status = $1, started_at = $2, ended_at = $3, distance_km = $4, fuel_consumed = $5,
		    duration_hours = $6, notes = $7
		WHERE id = $8
	`

	_, err := t.tx.ExecContext(ctx, query,
		tr.Status,
		tr.StartedAt,
		tr.EndedAt,
		tr.DistanceKm,
		tr.FuelConsumed,
		tr.DurationHours,
		tr.Notes,
		tr.ID,
	)
	if err != nil {
		return fmt.Errorf("updating tour %s: %w", tr.Number, database.Classify(err))
	}

	return nil
}

func (t *tourTx) MarkStop(ctx context.Context, tourID uuid.UUID, stop tour.Stop) error {
	query := `
		UPDATE tour_shipments
		SET delivered = $1, delivery_time = $2, notes = $3
		WHERE tour_id = $4 AND shipment_id = $5
	`

	res, err := t.tx.ExecContext(ctx, query, stop.Delivered, stop.DeliveryTime, stop.Notes, tourID, stop.ShipmentID)
	if err != nil {
		return fmt.Errorf("marking stop: %w", database.Classify(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("marking stop: %w", err)
	}

	if n == 0 {
		return apperr.NotFound("tour stop")
	}

	return nil
}
