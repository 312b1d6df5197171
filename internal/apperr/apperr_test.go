package apperr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
)

func TestKinds(t *testing.T) {
	type testCase struct {
		name          string
		err           error
		wantKind      error
		wantRetryable bool
		wantMsg       string
	}

	tests := []testCase{
		{
			name:     "Validation",
			err:      apperr.Validation("weight must be >= 0, got %s", "-1"),
			wantKind: apperr.ErrValidation,
			wantMsg:  "validation failed: weight must be >= 0, got -1",
		},
		{
			name:     "NotFound",
			err:      apperr.NotFound("invoice"),
			wantKind: apperr.ErrNotFound,
			wantMsg:  "invoice not found",
		},
		{
			name:          "Concurrency",
			err:           apperr.Concurrency(errors.New("duplicate key")),
			wantKind:      apperr.ErrConcurrency,
			wantRetryable: true,
			wantMsg:       "concurrent modification: duplicate key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.wantKind)
			assert.Equal(t, tt.wantRetryable, apperr.Retryable(tt.err))
			assert.EqualError(t, tt.err, tt.wantMsg)
		})
	}
}
