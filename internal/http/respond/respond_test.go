package respond_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/http/respond"
)

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "Validation", err: apperr.Validation("weight must be >= 0"), wantStatus: http.StatusBadRequest, wantBody: "weight must be >= 0"},
		{name: "NotFound", err: apperr.NotFound("invoice"), wantStatus: http.StatusNotFound, wantBody: "invoice not found"},
		{name: "Concurrency", err: apperr.Concurrency(errors.New("40001")), wantStatus: http.StatusConflict, wantBody: "retry"},
		{name: "Internal", err: errors.New("connection refused"), wantStatus: http.StatusInternalServerError, wantBody: "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			respond.Error(w, httptest.NewRequest(http.MethodGet, "/x", nil), tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotContains(t, w.Body.String(), "connection refused")
		})
	}
}

type paymentRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
	Method string          `json:"method" validate:"required,oneof=cash card"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "Valid", body: `{"amount":"12.50","method":"cash"}`},
		{name: "NumericAmount", body: `{"amount":12.5,"method":"card"}`},
		{name: "ZeroAmount", body: `{"amount":"0","method":"cash"}`, wantErr: "amount must be gt 0"},
		{name: "MissingMethod", body: `{"amount":"1"}`, wantErr: "method is required"},
		{name: "BadMethod", body: `{"amount":"1","method":"gold"}`, wantErr: "method must be one of cash card"},
		{name: "BadJSON", body: `{`, wantErr: "invalid JSON body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var req paymentRequest
			err := respond.Decode(r, &req)

			if tt.wantErr != "" {
				require.ErrorIs(t, err, apperr.ErrValidation)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, req.Amount.IsPositive())
		})
	}
}
