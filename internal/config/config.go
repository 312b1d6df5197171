package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/billing"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Dispatch"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"dispatch"`
		SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		JWTSecret string        `envconfig:"JWT_SECRET"`
		TokenTTL  time.Duration `envconfig:"JWT_TTL" default:"12h"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
	}

	Billing struct {
		DefaultTVARate decimal.Decimal `envconfig:"BILLING_TVA_RATE" default:"19.00"`
		PaymentRetries int             `envconfig:"BILLING_PAYMENT_RETRIES" default:"3"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name, c.DB.SSLMode)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := billing.ValidateTVARate(cfg.Billing.DefaultTVARate); err != nil {
		return nil, fmt.Errorf("BILLING_TVA_RATE: %w", err)
	}

	if cfg.Billing.PaymentRetries < 0 {
		return nil, fmt.Errorf("BILLING_PAYMENT_RETRIES must be >= 0, got %d", cfg.Billing.PaymentRetries)
	}

	return &cfg, nil
}
