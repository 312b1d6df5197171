package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/client"
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

const clientColumns = `
	id, number, name, email, phone, address, city, postal_code, country,
	balance, is_active, notes, created_at, updated_at
`

func scanClient(s scanner) (*client.Client, error) {
	var c client.Client

	if err := s.Scan(
		&c.ID, &c.Number, &c.Name, &c.Email, &c.Phone, &c.Address, &c.City, &c.PostalCode, &c.Country,
		&c.Balance, &c.IsActive, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Store) CreateClient(ctx context.Context, c *client.Client) error {
	dbTx, err := s.db.BeginTx(ctx, database.ReadCommitted)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	number, err := identstore.Allocate(ctx, dbTx, ident.KindClient)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO clients (number, name, email, phone, address, city, postal_code, country, is_active, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, balance, created_at, updated_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		number,
		c.Name,
		c.Email,
		c.Phone,
		c.Address,
		c.City,
		c.PostalCode,
		c.Country,
		c.IsActive,
		c.Notes,
	).Scan(&c.ID, &c.Balance, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating client: %w", database.Classify(err))
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing client: %w", database.Classify(err))
	}

	c.Number = number

	return nil
}

func (s *Store) GetClient(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	c, err := scanClient(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("client")
		}

		return nil, fmt.Errorf("getting client: %w", err)
	}

	return c, nil
}

func (s *Store) ListClients(ctx context.Context) ([]*client.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY number ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*client.Client

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}

		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating clients: %w", err)
	}

	return clients, nil
}
