package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/catalog"
	catalogstore "github.com/MrJamesThe3rd/dispatch/internal/catalog/store"
	"github.com/MrJamesThe3rd/dispatch/internal/database"
	"github.com/MrJamesThe3rd/dispatch/internal/ident"
	"github.com/MrJamesThe3rd/dispatch/internal/shipment"
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

const shipmentColumns = `
	id, number, client_id, service_type_id, destination_id, weight, volume, description,
	amount, status, estimated_delivery, actual_delivery,
	sender_name, sender_phone, sender_address, recipient_name, recipient_phone, recipient_address,
	notes, created_at, updated_at
`

func scanShipment(s scanner) (*shipment.Shipment, error) {
	var sh shipment.Shipment

	var status string

	if err := s.Scan(
		&sh.ID, &sh.Number, &sh.ClientID, &sh.ServiceTypeID, &sh.DestinationID, &sh.Weight, &sh.Volume, &sh.Description,
		&sh.Amount, &status, &sh.EstimatedDelivery, &sh.ActualDelivery,
		&sh.Sender.Name, &sh.Sender.Phone, &sh.Sender.Address,
		&sh.Recipient.Name, &sh.Recipient.Phone, &sh.Recipient.Address,
		&sh.Notes, &sh.CreatedAt, &sh.UpdatedAt,
	); err != nil {
		return nil, err
	}

	sh.Status = shipment.Status(status)

	return &sh, nil
}

const eventColumns = `id, shipment_id, tour_id, status, location, notes, created_at`

func scanEvent(s scanner) (*shipment.TrackingEvent, error) {
	var e shipment.TrackingEvent

	var status string

	if err := s.Scan(&e.ID, &e.ShipmentID, &e.TourID, &status, &e.Location, &e.Notes, &e.CreatedAt); err != nil {
		return nil, err
	}

	e.Status = shipment.Status(status)

	return &e, nil
}

func (s *Store) GetShipment(ctx context.Context, id uuid.UUID) (*shipment.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE id = $1`

	sh, err := scanShipment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("shipment")
		}

		return nil, fmt.Errorf("getting shipment: %w", err)
	}

	return sh, nil
}

func (s *Store) GetShipmentByNumber(ctx context.Context, number string) (*shipment.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE number = $1`

	sh, err := scanShipment(s.db.QueryRowContext(ctx, query, number))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("shipment " + number)
		}

		return nil, fmt.Errorf("getting shipment %s: %w", number, err)
	}

	return sh, nil
}

func (s *Store) ListShipments(ctx context.Context, filter shipment.ListFilter) ([]*shipment.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE TRUE`

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
		return nil, fmt.Errorf("listing shipments: %w", err)
	}
	defer rows.Close()

	var shipments []*shipment.Shipment

	for rows.Next() {
		sh, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning shipment: %w", err)
		}

		shipments = append(shipments, sh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shipments: %w", err)
	}

	return shipments, nil
}

func (s *Store) ListEvents(ctx context.Context, shipmentID uuid.UUID) ([]*shipment.TrackingEvent, error) {
	query := `SELECT ` + eventColumns + `
		FROM tracking_events
		WHERE shipment_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("listing tracking events: %w", err)
	}
	defer rows.Close()

	var events []*shipment.TrackingEvent

	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning tracking event: %w", err)
		}

		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tracking events: %w", err)
	}

	return events, nil
}

type trackingTx struct {
	tx *sql.Tx
}

func (s *Store) BeginTracking(ctx context.Context) (shipment.TrackingTx, error) {
	dbTx, err := s.db.BeginTx(ctx, database.ReadCommitted)
	if err != nil {
		return nil, fmt.Errorf("beginning tracking tx: %w", err)
	}

	return NewTrackingTx(dbTx), nil
}

// NewTrackingTx runs tracking writes inside a transaction owned by another store.
func NewTrackingTx(tx *sql.Tx) shipment.TrackingTx {
	return &trackingTx{tx: tx}
}

func (t *trackingTx) Commit() error   { return t.tx.Commit() }
func (t *trackingTx) Rollback() error { return t.tx.Rollback() }

func (t *trackingTx) LockTariffs(ctx context.Context, destinationID, serviceTypeID uuid.UUID) (*catalog.Destination, *catalog.ServiceType, error) {
	return catalogstore.ShareTariffs(ctx, t.tx, destinationID, serviceTypeID)
}

func (t *trackingTx) CreateShipment(ctx context.Context, sh *shipment.Shipment) error {
	number, err := ident.Next(ident.KindShipment, "")
	if err != nil {
		return err
	}

	query := `
		INSERT INTO shipments (
			number, client_id, service_type_id, destination_id, weight, volume, description,
			amount, status, estimated_delivery,
			sender_name, sender_phone, sender_address, recipient_name, recipient_phone, recipient_address,
			notes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = t.tx.QueryRowContext(ctx, query,
		number,
		sh.ClientID,
		sh.ServiceTypeID,
		sh.DestinationID,
		sh.Weight,
		sh.Volume,
		sh.Description,
		sh.Amount,
		sh.Status,
		sh.EstimatedDelivery,
		sh.Sender.Name,
		sh.Sender.Phone,
		sh.Sender.Address,
		sh.Recipient.Name,
		sh.Recipient.Phone,
		sh.Recipient.Address,
		sh.Notes,
	).Scan(&sh.ID, &sh.CreatedAt, &sh.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating shipment: %w", database.Classify(err))
	}

	sh.Number = number

	return nil
}

func (t *trackingTx) LockShipment(ctx context.Context, id uuid.UUID) (*shipment.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE id = $1 FOR UPDATE`

	sh, err := scanShipment(t.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("shipment")
		}

		return nil, fmt.Errorf("locking shipment: %w", database.Classify(err))
	}

	return sh, nil
}

func (t *trackingTx) UpdateShipment(ctx context.Context, sh *shipment.Shipment) error {
	query := `
		UPDATE shipments
		SET service_type_id = $1, destination_id = $2, weight = $3, volume = $4, description = $5,
		    amount = $6, recipient_name = $7, recipient_phone = $8, recipient_address = $9,
		    notes = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING updated_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		sh.ServiceTypeID,
		sh.DestinationID,
		sh.Weight,
		sh.Volume,
		sh.Description,
		sh.Amount,
		sh.Recipient.Name,
		sh.Recipient.Phone,
		sh.Recipient.Address,
		sh.Notes,
		sh.ID,
	).Scan(&sh.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("shipment")
		}

		return fmt.Errorf("updating shipment: %w", database.Classify(err))
	}

	return nil
}

func (t *trackingTx) UpdateStatus(ctx context.Context, id uuid.UUID, status shipment.Status, actualDelivery *time.Time) error {
	query := `
		UPDATE shipments
		SET status = $1, actual_delivery = $2, updated_at = NOW()
		WHERE id = $3
	`

	if _, err := t.tx.ExecContext(ctx, query, status, actualDelivery, id); err != nil {
		return fmt.Errorf("updating shipment status: %w", database.Classify(err))
	}

	return nil
}

func (t *trackingTx) AddEvent(ctx context.Context, e *shipment.TrackingEvent) error {
	query := `
		INSERT INTO tracking_events (shipment_id, tour_id, status, location, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		e.ShipmentID,
		e.TourID,
		e.Status,
		e.Location,
		e.Notes,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("adding tracking event: %w", database.Classify(err))
	}

	return nil
}
