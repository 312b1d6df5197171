package shipment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/shipment"
)

type partyDTO struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (p partyDTO) party() shipment.Party {
	return shipment.Party{Name: p.Name, Phone: p.Phone, Address: p.Address}
}

func toParty(p shipment.Party) partyDTO {
	return partyDTO{Name: p.Name, Phone: p.Phone, Address: p.Address}
}

type shipmentResponse struct {
	ID                uuid.UUID       `json:"id"`
	Number            string          `json:"number"`
	ClientID          uuid.UUID       `json:"client_id"`
	ServiceTypeID     uuid.UUID       `json:"service_type_id"`
	DestinationID     uuid.UUID       `json:"destination_id"`
	Weight            decimal.Decimal `json:"weight"`
	Volume            decimal.Decimal `json:"volume"`
	Description       string          `json:"description,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Status            shipment.Status `json:"status"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
	ActualDelivery    *time.Time      `json:"actual_delivery,omitempty"`
	Sender            partyDTO        `json:"sender"`
	Recipient         partyDTO        `json:"recipient"`
	Notes             string          `json:"notes,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func toResponse(s *shipment.Shipment) shipmentResponse {
	return shipmentResponse{
		ID:                s.ID,
		Number:            s.Number,
		ClientID:          s.ClientID,
		ServiceTypeID:     s.ServiceTypeID,
		DestinationID:     s.DestinationID,
		Weight:            s.Weight,
		Volume:            s.Volume,
		Description:       s.Description,
		Amount:            s.Amount,
		Status:            s.Status,
		EstimatedDelivery: s.EstimatedDelivery,
		ActualDelivery:    s.ActualDelivery,
		Sender:            toParty(s.Sender),
		Recipient:         toParty(s.Recipient),
		Notes:             s.Notes,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func toResponseList(shipments []*shipment.Shipment) []shipmentResponse {
	resp := make([]shipmentResponse, len(shipments))
	for i, s := range shipments {
		resp[i] = toResponse(s)
	}

	return resp
}

type eventResponse struct {
	ID        uuid.UUID       `json:"id"`
	TourID    *uuid.UUID      `json:"tour_id,omitempty"`
	Status    shipment.Status `json:"status"`
	Location  string          `json:"location,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func toEvent(e *shipment.TrackingEvent) eventResponse {
	return eventResponse{
		ID:        e.ID,
		TourID:    e.TourID,
		Status:    e.Status,
		Location:  e.Location,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
}

// trackingResponse is served without authentication, so it leaves out the
// client, parties and amount.
type trackingResponse struct {
	Number            string          `json:"number"`
	Status            shipment.Status `json:"status"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
	ActualDelivery    *time.Time      `json:"actual_delivery,omitempty"`
	Events            []eventResponse `json:"events"`
}

func toTracking(t *shipment.Tracking) trackingResponse {
	events := make([]eventResponse, len(t.Events))
	for i, e := range t.Events {
		events[i] = toEvent(e)
	}

	return trackingResponse{
		Number:            t.Shipment.Number,
		Status:            t.Shipment.Status,
		EstimatedDelivery: t.Shipment.EstimatedDelivery,
		ActualDelivery:    t.Shipment.ActualDelivery,
		Events:            events,
	}
}
