package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/catalog"
	"github.com/MrJamesThe3rd/dispatch/internal/database"
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

const destinationColumns = `id, code, city, state, country, zone, base_tariff, is_active, created_at`

func scanDestination(s scanner) (*catalog.Destination, error) {
	var d catalog.Destination

	var zone string

	if err := s.Scan(&d.ID, &d.Code, &d.City, &d.State, &d.Country, &zone, &d.BaseTariff, &d.IsActive, &d.CreatedAt); err != nil {
		return nil, err
	}

	d.Zone = catalog.Zone(zone)

	return &d, nil
}

const serviceTypeColumns = `id, code, name, type, description, weight_tariff, volume_tariff, delivery_time_days, is_active, created_at`

func scanServiceType(s scanner) (*catalog.ServiceType, error) {
	var st catalog.ServiceType

	var kind string

	if err := s.Scan(
		&st.ID, &st.Code, &st.Name, &kind, &st.Description,
		&st.WeightTariff, &st.VolumeTariff, &st.DeliveryTimeDays, &st.IsActive, &st.CreatedAt,
	); err != nil {
		return nil, err
	}

	st.Kind = catalog.ServiceKind(kind)

	return &st, nil
}

const insertDestination = `
	INSERT INTO destinations (code, city, state, country, zone, base_tariff, is_active, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	RETURNING id, created_at
`

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func createDestination(ctx context.Context, q queryRower, d *catalog.Destination) error {
	err := q.QueryRowContext(ctx, insertDestination,
		d.Code, d.City, d.State, d.Country, d.Zone, d.BaseTariff, d.IsActive,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating destination %s: %w", d.Code, database.Classify(err))
	}

	return nil
}

func (s *Store) CreateDestination(ctx context.Context, d *catalog.Destination) error {
	return createDestination(ctx, s.db, d)
}

func (s *Store) GetDestination(ctx context.Context, id uuid.UUID) (*catalog.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE id = $1`

	d, err := scanDestination(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("destination")
		}

		return nil, fmt.Errorf("getting destination: %w", err)
	}

	return d, nil
}

func (s *Store) ListDestinations(ctx context.Context) ([]*catalog.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations ORDER BY country, city`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing destinations: %w", err)
	}
	defer rows.Close()

	var ds []*catalog.Destination

	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning destination: %w", err)
		}

		ds = append(ds, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating destinations: %w", err)
	}

	return ds, nil
}

// UpdateDestinationTariff refuses to touch a destination that shipments reference.
func (s *Store) UpdateDestinationTariff(ctx context.Context, id uuid.UUID, baseTariff decimal.Decimal) error {
	return s.updateTariff(ctx, "destinations", "destination_id", id,
		`UPDATE destinations SET base_tariff = $1 WHERE id = $2`, baseTariff, id)
}

func (s *Store) CreateServiceType(ctx context.Context, st *catalog.ServiceType) error {
	query := `
		INSERT INTO service_types (code, name, type, description, weight_tariff, volume_tariff, delivery_time_days, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		st.Code, st.Name, st.Kind, st.Description, st.WeightTariff, st.VolumeTariff, st.DeliveryTimeDays, st.IsActive,
	).Scan(&st.ID, &st.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating service type %s: %w", st.Code, database.Classify(err))
	}

	return nil
}

func (s *Store) GetServiceType(ctx context.Context, id uuid.UUID) (*catalog.ServiceType, error) {
	query := `SELECT ` + serviceTypeColumns + ` FROM service_types WHERE id = $1`

	st, err := scanServiceType(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("service type")
		}

		return nil, fmt.Errorf("getting service type: %w", err)
	}

	return st, nil
}

func (s *Store) ListServiceTypes(ctx context.Context) ([]*catalog.ServiceType, error) {
	query := `SELECT ` + serviceTypeColumns + ` FROM service_types ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing service types: %w", err)
	}
	defer rows.Close()

	var sts []*catalog.ServiceType

	for rows.Next() {
		st, err := scanServiceType(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning service type: %w", err)
		}

		sts = append(sts, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating service types: %w", err)
	}

	return sts, nil
}

func (s *Store) UpdateServiceTariffs(ctx context.Context, id uuid.UUID, weightTariff, volumeTariff decimal.Decimal) error {
	return s.updateTariff(ctx, "service_types", "service_type_id", id,
		`UPDATE service_types SET weight_tariff = $1, volume_tariff = $2 WHERE id = $3`, weightTariff, volumeTariff, id)
}

// updateTariff locks the catalog row before looking for shipments that use it.
// Shipments share-lock the same row while they are priced, so a shipment
// either commits before the check or prices against the new tariff.
func (s *Store) updateTariff(ctx context.Context, table, refColumn string, id uuid.UUID, update string, args ...any) error {
	tx, err := s.db.BeginTx(ctx, database.ReadCommitted)
	if err != nil {
		return fmt.Errorf("beginning tariff tx: %w", err)
	}
	defer tx.Rollback()

	var locked uuid.UUID

	err = tx.QueryRowContext(ctx, `SELECT id FROM `+table+` WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound(table)
		}

		return fmt.Errorf("locking %s row: %w", table, database.Classify(err))
	}

	var referenced bool

	err = tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM shipments WHERE `+refColumn+` = $1)`, id).Scan(&referenced)
	if err != nil {
		return fmt.Errorf("checking shipments of %s: %w", table, err)
	}

	if referenced {
		return catalog.ErrTariffLocked
	}

	if _, err := tx.ExecContext(ctx, update, args...); err != nil {
		return fmt.Errorf("updating %s tariff: %w", table, database.Classify(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing tariff update: %w", database.Classify(err))
	}

	return nil
}

// ShareTariffs reads a destination and a service type inside tx and holds a
// share lock on both until tx ends.
func ShareTariffs(ctx context.Context, tx *sql.Tx, destinationID, serviceTypeID uuid.UUID) (*catalog.Destination, *catalog.ServiceType, error) {
	d, err := scanDestination(tx.QueryRowContext(ctx,
		`SELECT `+destinationColumns+` FROM destinations WHERE id = $1 FOR SHARE`, destinationID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, apperr.NotFound("destination")
		}

		return nil, nil, fmt.Errorf("locking destination: %w", database.Classify(err))
	}

	st, err := scanServiceType(tx.QueryRowContext(ctx,
		`SELECT `+serviceTypeColumns+` FROM service_types WHERE id = $1 FOR SHARE`, serviceTypeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, apperr.NotFound("service type")
		}

		return nil, nil, fmt.Errorf("locking service type: %w", database.Classify(err))
	}

	return d, st, nil
}

type importTx struct {
	tx *sql.Tx
}

func (s *Store) BeginImport(ctx context.Context) (catalog.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, database.ReadCommitted)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	// Serializes concurrent tariff imports.
	if _, err := dbTx.ExecContext(ctx, `LOCK TABLE destinations IN SHARE ROW EXCLUSIVE MODE`); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("locking destinations: %w", err)
	}

	return &importTx{tx: dbTx}, nil
}

func (itx *importTx) Commit() error   { return itx.tx.Commit() }
func (itx *importTx) Rollback() error { return itx.tx.Rollback() }

func (itx *importTx) ExistingCodes(ctx context.Context, codes []string) (map[string]*catalog.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE code = ANY($1)`

	rows, err := itx.tx.QueryContext(ctx, query, codes)
	if err != nil {
		return nil, fmt.Errorf("finding existing codes: %w", err)
	}
	defer rows.Close()

	existing := make(map[string]*catalog.Destination)

	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning destination: %w", err)
		}

		existing[d.Code] = d
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating existing codes: %w", err)
	}

	return existing, nil
}

func (itx *importTx) CreateDestinations(ctx context.Context, ds []*catalog.Destination) error {
	for _, d := range ds {
		if err := createDestination(ctx, itx.tx, d); err != nil {
			return err
		}
	}

	return nil
}
