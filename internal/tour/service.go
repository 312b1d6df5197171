package tour

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/shipment"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=tour
type Repository interface {
	GetTour(ctx context.Context, id uuid.UUID) (*Tour, error)
	ListTours(ctx context.Context, filter ListFilter) ([]*Tour, error)

	BeginTour(ctx context.Context) (TourTx, error)
}

// TourTx changes a tour and the shipments on it atomically.
type TourTx interface {
	CreateTour(ctx context.Context, t *Tour) error
	LockTour(ctx context.Context, id uuid.UUID) (*Tour, error)
	UpdateTour(ctx context.Context, t *Tour) error
	MarkStop(ctx context.Context, tourID uuid.UUID, stop Stop) error
	Tracking() shipment.TrackingTx
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

const (
	startedNote = "Tour started - shipment in transit"
	failedNote  = "Delivery attempt failed"
)

type CreateParams struct {
	DriverID    uuid.UUID
	VehicleID   uuid.UUID
	Date        time.Time
	ShipmentIDs []uuid.UUID
	Notes       string
}

func (p CreateParams) validate() error {
	if p.DriverID == uuid.Nil || p.VehicleID == uuid.Nil {
		return apperr.Validation("driver and vehicle are required")
	}

	if p.Date.IsZero() {
		return apperr.Validation("tour date is required")
	}

	seen := make(map[uuid.UUID]struct{}, len(p.ShipmentIDs))
	for _, id := range p.ShipmentIDs {
		if _, dup := seen[id]; dup {
			return apperr.Validation("shipment %s appears twice on the tour", id)
		}

		seen[id] = struct{}{}
	}

	return nil
}

// Create plans a tour. Stops follow the order of ShipmentIDs.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Tour, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	ttx, err := s.repo.BeginTour(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tour: %w", err)
	}
	defer ttx.Rollback()

	t := &Tour{
		DriverID:  params.DriverID,
		VehicleID: params.VehicleID,
		Date:      params.Date,
		Status:    StatusPlanned,
		Notes:     params.Notes,
		Stops:     make([]Stop, 0, len(params.ShipmentIDs)),
	}

	for i, id := range params.ShipmentIDs {
		sh, err := ttx.Tracking().LockShipment(ctx, id)
		if err != nil {
			return nil, err
		}

		if sh.Status == shipment.StatusDelivered || sh.Status == shipment.StatusReturned {
			return nil, apperr.Validation("shipment %s is already %s", sh.Number, sh.Status)
		}

		t.Stops = append(t.Stops, Stop{ShipmentID: id, Sequence: i + 1})
	}

	if err := ttx.CreateTour(ctx, t); err != nil {
		return nil, err
	}

	if err := ttx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tour: %w", err)
	}

	return t, nil
}

// Start moves a planned tour in progress and every shipment on it in transit.
func (s *Service) Start(ctx context.Context, scope Scope, id uuid.UUID) (*Tour, error) {
	return s.transition(ctx, scope, id, func(ctx context.Context, ttx TourTx, t *Tour, now time.Time) error {
		if t.Status != StatusPlanned {
			return apperr.Validation("tour %s is %s, only planned tours can start", t.Number, t.Status)
		}

		t.Status = StatusInProgress
		t.StartedAt = &now

		if err := ttx.UpdateTour(ctx, t); err != nil {
			return err
		}

		for _, stop := range t.Stops {
			_, err := shipment.Advance(ctx, ttx.Tracking(), shipment.EventParams{
				ShipmentID: stop.ShipmentID,
				TourID:     &t.ID,
				Status:     shipment.StatusInTransit,
				Notes:      startedNote,
			}, now)
			if err != nil {
				return fmt.Errorf("moving shipment %s in transit: %w", stop.ShipmentID, err)
			}
		}

		return nil
	})
}

type DeliveryParams struct {
	ShipmentID uuid.UUID
	Outcome    shipment.Status
	Location   string
	Notes      string
}

// RecordDelivery stores the outcome of one stop of a tour in progress.
func (s *Service) RecordDelivery(ctx context.Context, scope Scope, id uuid.UUID, params DeliveryParams) (*Tour, error) {
	if params.Outcome != shipment.StatusDelivered && params.Outcome != shipment.StatusFailed {
		return nil, apperr.Validation("delivery outcome must be delivered or failed, got %q", params.Outcome)
	}

	return s.transition(ctx, scope, id, func(ctx context.Context, ttx TourTx, t *Tour, now time.Time) error {
		if t.Status != StatusInProgress {
			return apperr.Validation("tour %s is %s, deliveries need a tour in progress", t.Number, t.Status)
		}

		stop, ok := t.stop(params.ShipmentID)
		if !ok {
			return apperr.NotFound("shipment on tour " + t.Number)
		}

		stop.Delivered = params.Outcome == shipment.StatusDelivered
		stop.DeliveryTime = &now
		stop.Notes = params.Notes

		if err := ttx.MarkStop(ctx, t.ID, *stop); err != nil {
			return err
		}

		notes := params.Notes
		if notes == "" && !stop.Delivered {
			notes = failedNote
		}

		_, err := shipment.Advance(ctx, ttx.Tracking(), shipment.EventParams{
			ShipmentID: params.ShipmentID,
			TourID:     &t.ID,
			Status:     params.Outcome,
			Location:   params.Location,
			Notes:      notes,
		}, now)

		return err
	})
}

// Complete closes a tour in progress with the reported route data. A zero
// duration is derived from the actual start time.
func (s *Service) Complete(ctx context.Context, scope Scope, id uuid.UUID, route RouteData) (*Tour, error) {
	if route.DistanceKm.IsNegative() || route.FuelConsumed.IsNegative() || route.DurationHours.IsNegative() {
		return nil, apperr.Validation("route data must be >= 0")
	}

	return s.transition(ctx, scope, id, func(ctx context.Context, ttx TourTx, t *Tour, now time.Time) error {
		if t.Status != StatusInProgress {
			return apperr.Validation("tour %s is %s, only tours in progress can complete", t.Number, t.Status)
		}

		t.Status = StatusCompleted
		t.EndedAt = &now
		t.DistanceKm = route.DistanceKm
		t.FuelConsumed = route.FuelConsumed
		t.DurationHours = route.DurationHours

		if t.DurationHours.IsZero() && t.StartedAt != nil {
			t.DurationHours = decimal.NewFromFloat(now.Sub(*t.StartedAt).Hours()).Round(2)
		}

		if route.Notes != "" {
			t.Notes = route.Notes
		}

		return ttx.UpdateTour(ctx, t)
	})
}

// Cancel drops a tour that has not started.
func (s *Service) Cancel(ctx context.Context, scope Scope, id uuid.UUID) (*Tour, error) {
	return s.transition(ctx, scope, id, func(ctx context.Context, ttx TourTx, t *Tour, _ time.Time) error {
		if t.Status != StatusPlanned {
			return apperr.Validation("tour %s is %s, only planned tours can be cancelled", t.Number, t.Status)
		}

		t.Status = StatusCancelled

		return ttx.UpdateTour(ctx, t)
	})
}

func (s *Service) Get(ctx context.Context, scope Scope, id uuid.UUID) (*Tour, error) {
	t, err := s.repo.GetTour(ctx, id)
	if err != nil {
		return nil, err
	}

	if !scope.allows(t) {
		return nil, apperr.NotFound("tour")
	}

	return t, nil
}

func (s *Service) List(ctx context.Context, scope Scope, filter ListFilter) ([]*Tour, error) {
	if scope.DriverID != uuid.Nil {
		filter.DriverID = &scope.DriverID
	}

	return s.repo.ListTours(ctx, filter)
}

type step func(ctx context.Context, ttx TourTx, t *Tour, now time.Time) error

// transition locks the tour, applies fn and commits. Tours outside scope are
// reported as missing.
func (s *Service) transition(ctx context.Context, scope Scope, id uuid.UUID, fn step) (*Tour, error) {
	ttx, err := s.repo.BeginTour(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tour: %w", err)
	}
	defer ttx.Rollback()

	t, err := ttx.LockTour(ctx, id)
	if err != nil {
		return nil, err
	}

	if !scope.allows(t) {
		return nil, apperr.NotFound("tour")
	}

	if err := fn(ctx, ttx, t, time.Now()); err != nil {
		return nil, err
	}

	if err := ttx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tour %s: %w", t.Number, err)
	}

	return t, nil
}
