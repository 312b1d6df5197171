package shipment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/catalog"
	"github.com/MrJamesThe3rd/dispatch/internal/money"
	"github.com/MrJamesThe3rd/dispatch/internal/pricing"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=shipment
type Repository interface {
	GetShipment(ctx context.Context, id uuid.UUID) (*Shipment, error)
	GetShipmentByNumber(ctx context.Context, number string) (*Shipment, error)
	ListShipments(ctx context.Context, filter ListFilter) ([]*Shipment, error)
	ListEvents(ctx context.Context, shipmentID uuid.UUID) ([]*TrackingEvent, error)

	BeginTracking(ctx context.Context) (TrackingTx, error)
}

// TrackingTx writes a shipment and its tracking history atomically.
type TrackingTx interface {
	// LockTariffs share-locks the catalog rows a shipment is priced from
	// until the transaction ends.
	LockTariffs(ctx context.Context, destinationID, serviceTypeID uuid.UUID) (*catalog.Destination, *catalog.ServiceType, error)
	CreateShipment(ctx context.Context, s *Shipment) error
	LockShipment(ctx context.Context, id uuid.UUID) (*Shipment, error)
	UpdateShipment(ctx context.Context, s *Shipment) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, actualDelivery *time.Time) error
	AddEvent(ctx context.Context, e *TrackingEvent) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Column scales of the stored measures. The priced amount must be
// reproducible from what is stored.
const (
	WeightPlaces = 2
	VolumePlaces = 3
)

func validateMeasures(weight, volume decimal.Decimal) error {
	if weight.IsNegative() || volume.IsNegative() {
		return apperr.Validation("weight and volume must be >= 0")
	}

	if !money.WithinScale(weight, WeightPlaces) {
		return apperr.Validation("weight %s has more than %d decimals", weight, WeightPlaces)
	}

	if !money.WithinScale(volume, VolumePlaces) {
		return apperr.Validation("volume %s has more than %d decimals", volume, VolumePlaces)
	}

	return nil
}

type CreateParams struct {
	ClientID      uuid.UUID
	ServiceTypeID uuid.UUID
	DestinationID uuid.UUID
	Weight        decimal.Decimal
	Volume        decimal.Decimal
	Description   string
	Sender        Party
	Recipient     Party
	Notes         string
}

func (p CreateParams) validate() error {
	if p.ClientID == uuid.Nil {
		return apperr.Validation("client is required")
	}

	if p.ServiceTypeID == uuid.Nil || p.DestinationID == uuid.Nil {
		return apperr.Validation("service type and destination are required")
	}

	if strings.TrimSpace(p.Recipient.Name) == "" {
		return apperr.Validation("recipient name is required")
	}

	return validateMeasures(p.Weight, p.Volume)
}

const initialEventNote = "Shipment registered"

// Create prices the shipment, assigns it an EXP number and records the initial
// pending event in the same transaction.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Shipment, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	ttx, err := s.repo.BeginTracking(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tracking: %w", err)
	}
	defer ttx.Rollback()

	dest, svc, err := ttx.LockTariffs(ctx, params.DestinationID, params.ServiceTypeID)
	if err != nil {
		return nil, err
	}

	amount, err := pricing.PriceShipment(dest, svc, params.Weight, params.Volume)
	if err != nil {
		return nil, err
	}

	eta := pricing.EstimateDelivery(time.Now(), svc)

	sh := &Shipment{
		ClientID:          params.ClientID,
		ServiceTypeID:     params.ServiceTypeID,
		DestinationID:     params.DestinationID,
		Weight:            params.Weight,
		Volume:            params.Volume,
		Description:       params.Description,
		Amount:            amount,
		Status:            StatusPending,
		EstimatedDelivery: &eta,
		Sender:            params.Sender,
		Recipient:         params.Recipient,
		Notes:             params.Notes,
	}

	if err := ttx.CreateShipment(ctx, sh); err != nil {
		return nil, err
	}

	err = ttx.AddEvent(ctx, &TrackingEvent{
		ShipmentID: sh.ID,
		Status:     StatusPending,
		Location:   dest.City,
		Notes:      initialEventNote,
	})
	if err != nil {
		return nil, fmt.Errorf("adding initial event: %w", err)
	}

	if err := ttx.Commit(); err != nil {
		return nil, fmt.Errorf("commit shipment: %w", err)
	}

	return sh, nil
}

type UpdateParams struct {
	ServiceTypeID *uuid.UUID
	DestinationID *uuid.UUID
	Weight        *decimal.Decimal
	Volume        *decimal.Decimal
	Description   *string
	Recipient     *Party
	Notes         *string
}

// Update applies the given changes and reprices the shipment against the
// share-locked tariffs.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Shipment, error) {
	ttx, err := s.repo.BeginTracking(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tracking: %w", err)
	}
	defer ttx.Rollback()

	sh, err := ttx.LockShipment(ctx, id)
	if err != nil {
		return nil, err
	}

	if sh.Status == StatusDelivered || sh.Status == StatusReturned {
		return nil, apperr.Validation("shipment %s is %s and can no longer change", sh.Number, sh.Status)
	}

	if params.ServiceTypeID != nil {
		sh.ServiceTypeID = *params.ServiceTypeID
	}

	if params.DestinationID != nil {
		sh.DestinationID = *params.DestinationID
	}

	if params.Weight != nil {
		sh.Weight = *params.Weight
	}

	if params.Volume != nil {
		sh.Volume = *params.Volume
	}

	if params.Description != nil {
		sh.Description = *params.Description
	}

	if params.Recipient != nil {
		sh.Recipient = *params.Recipient
	}

	if params.Notes != nil {
		sh.Notes = *params.Notes
	}

	if err := validateMeasures(sh.Weight, sh.Volume); err != nil {
		return nil, err
	}

	dest, svc, err := ttx.LockTariffs(ctx, sh.DestinationID, sh.ServiceTypeID)
	if err != nil {
		return nil, err
	}

	if err := Reprice(sh, dest, svc); err != nil {
		return nil, err
	}

	if err := ttx.UpdateShipment(ctx, sh); err != nil {
		return nil, err
	}

	if err := ttx.Commit(); err != nil {
		return nil, fmt.Errorf("commit shipment: %w", err)
	}

	return sh, nil
}

type EventParams struct {
	ShipmentID uuid.UUID
	TourID     *uuid.UUID
	Status     Status
	Location   string
	Notes      string
}

// AddEvent appends a tracking event and moves the shipment to its status.
func (s *Service) AddEvent(ctx context.Context, params EventParams) (*TrackingEvent, error) {
	if !params.Status.Valid() {
		return nil, apperr.Validation("unknown shipment status %q", params.Status)
	}

	ttx, err := s.repo.BeginTracking(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tracking: %w", err)
	}
	defer ttx.Rollback()

	e, err := Advance(ctx, ttx, params, time.Now())
	if err != nil {
		return nil, err
	}

	if err := ttx.Commit(); err != nil {
		return nil, fmt.Errorf("commit event: %w", err)
	}

	return e, nil
}

// Advance records an event inside an open TrackingTx. Tours use it to move
// several shipments within their own transaction.
func Advance(ctx context.Context, ttx TrackingTx, params EventParams, at time.Time) (*TrackingEvent, error) {
	sh, err := ttx.LockShipment(ctx, params.ShipmentID)
	if err != nil {
		return nil, err
	}

	delivered := sh.ActualDelivery
	if params.Status == StatusDelivered {
		delivered = &at
	}

	if err := ttx.UpdateStatus(ctx, sh.ID, params.Status, delivered); err != nil {
		return nil, err
	}

	e := &TrackingEvent{
		ShipmentID: sh.ID,
		TourID:     params.TourID,
		Status:     params.Status,
		Location:   params.Location,
		Notes:      params.Notes,
	}
	if err := ttx.AddEvent(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Shipment, error) {
	return s.repo.GetShipment(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Shipment, error) {
	return s.repo.ListShipments(ctx, filter)
}

type Tracking struct {
	Shipment *Shipment
	Events   []*TrackingEvent
}

// Track looks a shipment up by its public number. Events are newest first.
func (s *Service) Track(ctx context.Context, number string) (*Tracking, error) {
	number = strings.ToUpper(strings.TrimSpace(number))

	sh, err := s.repo.GetShipmentByNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	events, err := s.repo.ListEvents(ctx, sh.ID)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	return &Tracking{Shipment: sh, Events: events}, nil
}
