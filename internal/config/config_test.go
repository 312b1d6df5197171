package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/dispatch/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "Dispatch", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "19", cfg.Billing.DefaultTVARate.String())
	assert.Equal(t, 3, cfg.Billing.PaymentRetries)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "postgres://postgres:@localhost:5432/dispatch?sslmode=disable", cfg.ConnectionString())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("BILLING_TVA_RATE", "9.5")
	t.Setenv("BILLING_PAYMENT_RETRIES", "0")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9.5", cfg.Billing.DefaultTVARate.String())
	assert.Equal(t, 0, cfg.Billing.PaymentRetries)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "NegativeRate", env: map[string]string{"JWT_SECRET": "x", "BILLING_TVA_RATE": "-1"}},
		{name: "NegativeRetries", env: map[string]string{"JWT_SECRET": "x", "BILLING_PAYMENT_RETRIES": "-2"}},
		{name: "RateFinerThanStored", env: map[string]string{"JWT_SECRET": "x", "BILLING_TVA_RATE": "19.125"}},
		{name: "RateOverflow", env: map[string]string{"JWT_SECRET": "x", "BILLING_TVA_RATE": "1000"}},
		{name: "BadRate", env: map[string]string{"JWT_SECRET": "x", "BILLING_TVA_RATE": "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
