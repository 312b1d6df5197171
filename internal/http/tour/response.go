package tour

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/tour"
)

type stopResponse struct {
	ShipmentID   uuid.UUID  `json:"shipment_id"`
	Sequence     int        `json:"sequence"`
	Delivered    bool       `json:"delivered"`
	DeliveryTime *time.Time `json:"delivery_time,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

type tourResponse struct {
	ID            uuid.UUID       `json:"id"`
	Number        string          `json:"number"`
	DriverID      uuid.UUID       `json:"driver_id"`
	VehicleID     uuid.UUID       `json:"vehicle_id"`
	Date          string          `json:"date"`
	StartedAt     *time.Time      `json:"started_at,omitempty"`
	EndedAt       *time.Time      `json:"ended_at,omitempty"`
	DistanceKm    decimal.Decimal `json:"distance_km"`
	FuelConsumed  decimal.Decimal `json:"fuel_consumed"`
	DurationHours decimal.Decimal `json:"duration_hours"`
	Status        tour.Status     `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	Stops         []stopResponse  `json:"stops"`
	CreatedAt     time.Time       `json:"created_at"`
}

func toResponse(t *tour.Tour) tourResponse {
	stops := make([]stopResponse, len(t.Stops))
	for i, s := range t.Stops {
		stops[i] = stopResponse{
			ShipmentID:   s.ShipmentID,
			Sequence:     s.Sequence,
			Delivered:    s.Delivered,
			DeliveryTime: s.DeliveryTime,
			Notes:        s.Notes,
		}
	}

	return tourResponse{
		ID:            t.ID,
		Number:        t.Number,
		DriverID:      t.DriverID,
		VehicleID:     t.VehicleID,
		Date:          t.Date.Format(time.DateOnly),
		StartedAt:     t.StartedAt,
		EndedAt:       t.EndedAt,
		DistanceKm:    t.DistanceKm,
		FuelConsumed:  t.FuelConsumed,
		DurationHours: t.DurationHours,
		Status:        t.Status,
		Notes:         t.Notes,
		Stops:         stops,
		CreatedAt:     t.CreatedAt,
	}
}
