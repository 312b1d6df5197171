package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/catalog"
	"github.com/MrJamesThe3rd/dispatch/internal/importer"
)

type destinationRequest struct {
	Code       string          `json:"code" validate:"required"`
	City       string          `json:"city" validate:"required"`
	State      string          `json:"state"`
	Country    string          `json:"country"`
	Zone       catalog.Zone    `json:"zone" validate:"required"`
	BaseTariff decimal.Decimal `json:"base_tariff" validate:"gte=0"`
}

func (d destinationRequest) params() catalog.DestinationParams {
	return catalog.DestinationParams{
		Code:       d.Code,
		City:       d.City,
		State:      d.State,
		Country:    d.Country,
		Zone:       d.Zone,
		BaseTariff: d.BaseTariff,
	}
}

func toDestinationRequest(p catalog.DestinationParams) destinationRequest {
	return destinationRequest{
		Code:       p.Code,
		City:       p.City,
		State:      p.State,
		Country:    p.Country,
		Zone:       p.Zone,
		BaseTariff: p.BaseTariff,
	}
}

type destinationResponse struct {
	ID         uuid.UUID       `json:"id"`
	Code       string          `json:"code"`
	City       string          `json:"city"`
	State      string          `json:"state,omitempty"`
	Country    string          `json:"country"`
	Zone       catalog.Zone    `json:"zone"`
	BaseTariff decimal.Decimal `json:"base_tariff"`
	IsActive   bool            `json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
}

func toDestination(d *catalog.Destination) destinationResponse {
	return destinationResponse{
		ID:         d.ID,
		Code:       d.Code,
		City:       d.City,
		State:      d.State,
		Country:    d.Country,
		Zone:       d.Zone,
		BaseTariff: d.BaseTariff,
		IsActive:   d.IsActive,
		CreatedAt:  d.CreatedAt,
	}
}

func toDestinations(ds []*catalog.Destination) []destinationResponse {
	resp := make([]destinationResponse, len(ds))
	for i, d := range ds {
		resp[i] = toDestination(d)
	}

	return resp
}

type serviceTypeResponse struct {
	ID               uuid.UUID           `json:"id"`
	Code             string              `json:"code"`
	Name             string              `json:"name"`
	Type             catalog.ServiceKind `json:"type"`
	Description      string              `json:"description,omitempty"`
	WeightTariff     decimal.Decimal     `json:"weight_tariff"`
	VolumeTariff     decimal.Decimal     `json:"volume_tariff"`
	DeliveryTimeDays int                 `json:"delivery_time_days"`
	IsActive         bool                `json:"is_active"`
	CreatedAt        time.Time           `json:"created_at"`
}

func toServiceType(s *catalog.ServiceType) serviceTypeResponse {
	return serviceTypeResponse{
		ID:               s.ID,
		Code:             s.Code,
		Name:             s.Name,
		Type:             s.Kind,
		Description:      s.Description,
		WeightTariff:     s.WeightTariff,
		VolumeTariff:     s.VolumeTariff,
		DeliveryTimeDays: s.DeliveryTimeDays,
		IsActive:         s.IsActive,
		CreatedAt:        s.CreatedAt,
	}
}

type conflictDTO struct {
	Incoming destinationRequest  `json:"incoming"`
	Existing destinationResponse `json:"existing"`
}

type importResponse struct {
	Profile   string                `json:"profile"`
	Charset   string                `json:"charset"`
	Parsed    []destinationRequest  `json:"parsed,omitempty"`
	Created   []destinationResponse `json:"created,omitempty"`
	RowErrors []importer.RowError   `json:"row_errors,omitempty"`
	Conflicts []conflictDTO         `json:"conflicts,omitempty"`
}
