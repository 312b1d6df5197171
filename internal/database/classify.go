package database

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
)

// Classify maps PostgreSQL conflict errors onto apperr.ErrConcurrency and
// rejected values onto apperr.ErrValidation. Any other error is returned
// unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation, pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected, pgerrcode.LockNotAvailable:
		return apperr.Concurrency(err)
	case pgerrcode.ForeignKeyViolation:
		return apperr.Validation("referenced row does not exist (%s)", pgErr.ConstraintName)
	case pgerrcode.CheckViolation:
		return apperr.Validation("constraint %s rejected the value", pgErr.ConstraintName)
	case pgerrcode.NumericValueOutOfRange:
		return apperr.Validation("value out of range: %s", pgErr.Message)
	}

	return err
}
