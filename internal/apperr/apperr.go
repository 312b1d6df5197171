// Package apperr defines the error kinds shared by every domain package.
//
// Callers classify failures with errors.Is against the sentinels below; the
// helpers wrap a sentinel with a human readable detail.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrConcurrency = errors.New("concurrent modification")
)

// Validation returns an ErrValidation carrying the formatted detail.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound returns an ErrNotFound naming the missing entity.
func NotFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

// Concurrency wraps cause as an ErrConcurrency.
func Concurrency(cause error) error {
	return fmt.Errorf("%w: %w", ErrConcurrency, cause)
}

// Retryable reports whether repeating the failed operation may succeed.
// Validation and not-found failures are deterministic and are never retried.
func Retryable(err error) bool {
	return errors.Is(err, ErrConcurrency)
}
