package tour

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}

	return false
}

type Tour struct {
	ID            uuid.UUID
	Number        string
	DriverID      uuid.UUID
	VehicleID     uuid.UUID
	Date          time.Time
	StartedAt     *time.Time
	EndedAt       *time.Time
	DistanceKm    decimal.Decimal
	FuelConsumed  decimal.Decimal
	DurationHours decimal.Decimal
	Status        Status
	Notes         string
	Stops         []Stop
	CreatedAt     time.Time
}

// Stop is one shipment on a tour, in delivery order.
type Stop struct {
	ShipmentID   uuid.UUID
	Sequence     int
	Delivered    bool
	DeliveryTime *time.Time
	Notes        string
}

func (t *Tour) stop(shipmentID uuid.UUID) (*Stop, bool) {
	for i := range t.Stops {
		if t.Stops[i].ShipmentID == shipmentID {
			return &t.Stops[i], true
		}
	}

	return nil, false
}

// Scope restricts which tours a caller may see. A zero Scope sees every tour.
type Scope struct {
	DriverID uuid.UUID
}

func (s Scope) allows(t *Tour) bool {
	return s.DriverID == uuid.Nil || s.DriverID == t.DriverID
}

type ListFilter struct {
	DriverID *uuid.UUID
	Status   *Status
	Date     *time.Time
}

// RouteData is what a driver reports when closing a tour.
type RouteData struct {
	DistanceKm    decimal.Decimal
	FuelConsumed  decimal.Decimal
	DurationHours decimal.Decimal
	Notes         string
}
