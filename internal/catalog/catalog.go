package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Zone groups destinations by distance band.
type Zone string

const (
	ZoneLocal         Zone = "local"
	ZoneNational      Zone = "national"
	ZoneInternational Zone = "international"
)

func (z Zone) Valid() bool {
	switch z {
	case ZoneLocal, ZoneNational, ZoneInternational:
		return true
	}

	return false
}

// ServiceKind is the commercial class of a service type.
type ServiceKind string

const (
	ServiceStandard      ServiceKind = "standard"
	ServiceExpress       ServiceKind = "express"
	ServiceInternational ServiceKind = "international"
)

func (k ServiceKind) Valid() bool {
	switch k {
	case ServiceStandard, ServiceExpress, ServiceInternational:
		return true
	}

	return false
}

// DefaultCountry is applied to destinations created without a country.
const DefaultCountry = "Algeria"

// Destination carries the fixed part of a shipment price.
type Destination struct {
	ID         uuid.UUID
	Code       string
	City       string
	State      string
	Country    string
	Zone       Zone
	BaseTariff decimal.Decimal
	IsActive   bool
	CreatedAt  time.Time
}

// ServiceType carries the per-kg and per-m³ parts of a shipment price.
type ServiceType struct {
	ID               uuid.UUID
	Code             string
	Name             string
	Kind             ServiceKind
	Description      string
	WeightTariff     decimal.Decimal
	VolumeTariff     decimal.Decimal
	DeliveryTimeDays int
	IsActive         bool
	CreatedAt        time.Time
}
