package client

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Client struct {
	ID         uuid.UUID
	Number     string
	Name       string
	Email      string
	Phone      string
	Address    string
	City       string
	PostalCode string
	Country    string
	// Balance is maintained by the payment ledger only.
	Balance   decimal.Decimal
	IsActive  bool
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
