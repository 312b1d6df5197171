package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/database"
	"github.com/MrJamesThe3rd/dispatch/internal/fleet"
	"github.com/MrJamesThe3rd/dispatch/internal/ident"
	identstore "github.com/MrJamesThe3rd/dispatch/internal/ident/store"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const driverColumns = `id, number, first_name, last_name, phone, license_number, availability, is_active, created_at`

func scanDriver(s scanner) (*fleet.Driver, error) {
	var d fleet.Driver

	if err := s.Scan(
		&d.ID, &d.Number, &d.FirstName, &d.LastName, &d.Phone, &d.LicenseNumber, &d.Availability, &d.IsActive, &d.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &d, nil
}

const vehicleColumns = `id, registration_number, type, brand, model, capacity_kg, capacity_m3, status, is_active, created_at`

func scanVehicle(s scanner) (*fleet.Vehicle, error) {
	var (
		v  fleet.Vehicle
		m3 decimal.NullDecimal
	)

	if err := s.Scan(
		&v.ID, &v.RegistrationNumber, &v.Type, &v.Brand, &v.Model, &v.CapacityKg, &m3, &v.Status, &v.IsActive, &v.CreatedAt,
	); err != nil {
		return nil, err
	}

	if m3.Valid {
		v.CapacityM3 = &m3.Decimal
	}

	return &v, nil
}

func (s *Store) CreateDriver(ctx context.Context, d *fleet.Driver) error {
	dbTx, err := s.db.BeginTx(ctx, database.ReadCommitted)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	number, err := identstore.Allocate(ctx, dbTx, ident.KindDriver)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO drivers (number, first_name, last_name, phone, license_number, availability, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		number, d.FirstName, d.LastName, d.Phone, d.LicenseNumber, d.Availability, d.IsActive,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating driver: %w", database.Classify(err))
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing driver: %w", database.Classify(err))
	}

	d.Number = number

	return nil
}

func (s *Store) GetDriver(ctx context.Context, id uuid.UUID) (*fleet.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`

	d, err := scanDriver(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("driver")
		}

		return nil, fmt.Errorf("getting driver: %w", err)
	}

	return d, nil
}

func (s *Store) ListDrivers(ctx context.Context, availability *fleet.Availability) ([]*fleet.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE is_active`
	args := []any{}

	if availability != nil {
		query += ` AND availability = $1`
		args = append(args, *availability)
	}

	query += ` ORDER BY number ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing drivers: %w", err)
	}
	defer rows.Close()

	var drivers []*fleet.Driver

	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning driver: %w", err)
		}

		drivers = append(drivers, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating drivers: %w", err)
	}

	return drivers, nil
}

func (s *Store) SetDriverAvailability(ctx context.Context, id uuid.UUID, availability fleet.Availability) error {
	res, err := s.db.ExecContext(ctx, `UPDATE drivers SET availability = $1 WHERE id = $2`, availability, id)
	if err != nil {
		return fmt.Errorf("updating driver availability: %w", database.Classify(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating driver availability: %w", err)
	}

	if n == 0 {
		return apperr.NotFound("driver")
	}

	return nil
}

func (s *Store) CreateVehicle(ctx context.Context, v *fleet.Vehicle) error {
	query := `
		INSERT INTO vehicles (registration_number, type, brand, model, capacity_kg, capacity_m3, status, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	var m3 decimal.NullDecimal
	if v.CapacityM3 != nil {
		m3 = decimal.NewNullDecimal(*v.CapacityM3)
	}

	err := s.db.QueryRowContext(ctx, query,
		v.RegistrationNumber, v.Type, v.Brand, v.Model, v.CapacityKg, m3, v.Status, v.IsActive,
	).Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating vehicle: %w", database.Classify(err))
	}

	return nil
}

func (s *Store) ListVehicles(ctx context.Context) ([]*fleet.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE is_active ORDER BY registration_number ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*fleet.Vehicle

	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning vehicle: %w", err)
		}

		vehicles = append(vehicles, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vehicles: %w", err)
	}

	return vehicles, nil
}
