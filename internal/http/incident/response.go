package incident

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/dispatch/internal/incident"
)

type incidentResponse struct {
	ID              uuid.UUID       `json:"id"`
	Number          string          `json:"number"`
	Type            incident.Type   `json:"type"`
	ShipmentID      *uuid.UUID      `json:"shipment_id,omitempty"`
	TourID          *uuid.UUID      `json:"tour_id,omitempty"`
	Description     string          `json:"description"`
	Status          incident.Status `json:"status"`
	ReportedAt      time.Time       `json:"reported_at"`
	ResolvedAt      *time.Time      `json:"resolved_at,omitempty"`
	ResolutionNotes string          `json:"resolution_notes,omitempty"`
}

func toIncident(i *incident.Incident) incidentResponse {
	return incidentResponse{
		ID:              i.ID,
		Number:          i.Number,
		Type:            i.Type,
		ShipmentID:      i.ShipmentID,
		TourID:          i.TourID,
		Description:     i.Description,
		Status:          i.Status,
		ReportedAt:      i.ReportedAt,
		ResolvedAt:      i.ResolvedAt,
		ResolutionNotes: i.ResolutionNotes,
	}
}

type claimResponse struct {
	ID          uuid.UUID            `json:"id"`
	Number      string               `json:"number"`
	ClientID    uuid.UUID            `json:"client_id"`
	ShipmentID  *uuid.UUID           `json:"shipment_id,omitempty"`
	InvoiceID   *uuid.UUID           `json:"invoice_id,omitempty"`
	Subject     string               `json:"subject"`
	Description string               `json:"description"`
	Status      incident.ClaimStatus `json:"status"`
	Priority    incident.Priority    `json:"priority"`
	FiledAt     time.Time            `json:"filed_at"`
	ResolvedAt  *time.Time           `json:"resolved_at,omitempty"`
	Resolution  string               `json:"resolution,omitempty"`
}

func toClaim(c *incident.Claim) claimResponse {
	return claimResponse{
		ID:          c.ID,
		Number:      c.Number,
		ClientID:    c.ClientID,
		ShipmentID:  c.ShipmentID,
		InvoiceID:   c.InvoiceID,
		Subject:     c.Subject,
		Description: c.Description,
		Status:      c.Status,
		Priority:    c.Priority,
		FiledAt:     c.FiledAt,
		ResolvedAt:  c.ResolvedAt,
		Resolution:  c.Resolution,
	}
}
