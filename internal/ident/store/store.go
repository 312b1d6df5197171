package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/database"
	"github.com/MrJamesThe3rd/dispatch/internal/ident"
)

// Allocate issues the next identifier of kind inside tx.
//
// The counter row stays locked until tx ends, so concurrent allocations of the
// same kind serialize and a rolled back entity never consumes a number.
func Allocate(ctx context.Context, tx *sql.Tx, kind ident.Kind) (string, error) {
	if !ident.Sequential(kind) {
		return ident.Next(kind, "")
	}

	var last sql.NullString

	err := tx.QueryRowContext(ctx,
		`SELECT last_identifier FROM identifier_counters WHERE kind = $1 FOR UPDATE`,
		kind,
	).Scan(&last)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperr.NotFound(fmt.Sprintf("identifier counter %q", kind))
		}

		return "", fmt.Errorf("locking %s counter: %w", kind, database.Classify(err))
	}

	next, err := ident.Next(kind, last.String)
	if err != nil {
		return "", fmt.Errorf("advancing %s counter: %w", kind, err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE identifier_counters SET last_identifier = $1, updated_at = NOW() WHERE kind = $2`,
		next, kind,
	)
	if err != nil {
		return "", fmt.Errorf("updating %s counter: %w", kind, database.Classify(err))
	}

	return next, nil
}
