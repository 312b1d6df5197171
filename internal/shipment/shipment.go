package shipment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/catalog"
	"github.com/MrJamesThe3rd/dispatch/internal/pricing"
)

type Status string

const (
	StatusPending         Status = "pending"
	StatusInTransit       Status = "in_transit"
	StatusAtSortingCenter Status = "at_sorting_center"
	StatusOutForDelivery  Status = "out_for_delivery"
	StatusDelivered       Status = "delivered"
	StatusFailed          Status = "failed"
	StatusReturned        Status = "returned"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInTransit, StatusAtSortingCenter, StatusOutForDelivery,
		StatusDelivered, StatusFailed, StatusReturned:
		return true
	}

	return false
}

// Party is the sender or the recipient of a parcel.
type Party struct {
	Name    string
	Phone   string
	Address string
}

type Shipment struct {
	ID                uuid.UUID
	Number            string
	ClientID          uuid.UUID
	ServiceTypeID     uuid.UUID
	DestinationID     uuid.UUID
	Weight            decimal.Decimal
	Volume            decimal.Decimal
	Description       string
	Amount            decimal.Decimal
	Status            Status
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	Sender            Party
	Recipient         Party
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type TrackingEvent struct {
	ID         uuid.UUID
	ShipmentID uuid.UUID
	TourID     *uuid.UUID
	Status     Status
	Location   string
	Notes      string
	CreatedAt  time.Time
}

// Reprice recomputes s.Amount from its tariffs. When either tariff is missing
// the previous amount is kept.
func Reprice(s *Shipment, dest *catalog.Destination, svc *catalog.ServiceType) error {
	if dest == nil || svc == nil {
		return nil
	}

	amount, err := pricing.PriceShipment(dest, svc, s.Weight, s.Volume)
	if err != nil {
		return err
	}

	s.Amount = amount

	return nil
}

type ListFilter struct {
	ClientID *uuid.UUID
	Status   *Status
}
