package database_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/database"
)

func TestClassify(t *testing.T) {
	type testCase struct {
		name     string
		err      error
		wantKind error
	}

	plain := errors.New("connection reset")

	tests := []testCase{
		{name: "Nil", err: nil, wantKind: nil},
		{name: "Plain", err: plain, wantKind: plain},
		{
			name:     "UniqueViolation",
			err:      fmt.Errorf("inserting payment: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation}),
			wantKind: apperr.ErrConcurrency,
		},
		{
			name:     "SerializationFailure",
			err:      &pgconn.PgError{Code: pgerrcode.SerializationFailure},
			wantKind: apperr.ErrConcurrency,
		},
		{
			name:     "Deadlock",
			err:      &pgconn.PgError{Code: pgerrcode.DeadlockDetected},
			wantKind: apperr.ErrConcurrency,
		},
		{
			name:     "ForeignKey",
			err:      &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "shipments_client_id_fkey"},
			wantKind: apperr.ErrValidation,
		},
		{
			name:     "Check",
			err:      &pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "payments_amount_check"},
			wantKind: apperr.ErrValidation,
		},
		{
			name:     "NumericOverflow",
			err:      fmt.Errorf("inserting invoice: %w", &pgconn.PgError{Code: pgerrcode.NumericValueOutOfRange, Message: "numeric field overflow"}),
			wantKind: apperr.ErrValidation,
		},
		{
			name:     "LockNotAvailable",
			err:      &pgconn.PgError{Code: pgerrcode.LockNotAvailable},
			wantKind: apperr.ErrConcurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := database.Classify(tt.err)

			if tt.wantKind == nil {
				assert.NoError(t, got)
				return
			}

			assert.ErrorIs(t, got, tt.wantKind)
		})
	}
}
