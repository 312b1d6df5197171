package tour

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/http/auth"
	"github.com/MrJamesThe3rd/dispatch/internal/http/respond"
	"github.com/MrJamesThe3rd/dispatch/internal/shipment"
	"github.com/MrJamesThe3rd/dispatch/internal/tour"
)

type Handler struct {
	svc *tour.Service
}

func NewHandler(svc *tour.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes expects every caller to be staff. Drivers only reach their own tours.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/start", h.start)
	r.Post("/{id}/deliveries", h.recordDelivery)
	r.Post("/{id}/complete", h.complete)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.Office...))
		r.Post("/", h.create)
		r.Post("/{id}/cancel", h.cancel)
	})
}

func scopeOf(r *http.Request) tour.Scope {
	if p, ok := auth.FromContext(r.Context()); ok && p.Role == auth.RoleDriver {
		return tour.Scope{DriverID: p.Subject}
	}

	return tour.Scope{}
}

type createTourRequest struct {
	DriverID    uuid.UUID   `json:"driver_id" validate:"required"`
	VehicleID   uuid.UUID   `json:"vehicle_id" validate:"required"`
	Date        string      `json:"date" validate:"required,datetime=2006-01-02"`
	ShipmentIDs []uuid.UUID `json:"shipment_ids"`
	Notes       string      `json:"notes"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTourRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	date, _ := time.Parse(time.DateOnly, req.Date)

	t, err := h.svc.Create(r.Context(), tour.CreateParams{
		DriverID:    req.DriverID,
		VehicleID:   req.VehicleID,
		Date:        date,
		ShipmentIDs: req.ShipmentIDs,
		Notes:       req.Notes,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(t))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var filter tour.ListFilter

	driverID, err := respond.QueryID(r, "driver_id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	filter.DriverID = driverID

	if s := r.URL.Query().Get("status"); s != "" {
		status := tour.Status(s)
		if !status.Valid() {
			respond.Error(w, r, apperr.Validation("unknown tour status %q", s))
			return
		}

		filter.Status = &status
	}

	if s := r.URL.Query().Get("date"); s != "" {
		date, err := time.Parse(time.DateOnly, s)
		if err != nil {
			respond.Error(w, r, apperr.Validation("date must be YYYY-MM-DD"))
			return
		}

		filter.Date = &date
	}

	tours, err := h.svc.List(r.Context(), scopeOf(r), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]tourResponse, len(tours))
	for i, t := range tours {
		resp[i] = toResponse(t)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	h.withTour(w, r, func(id uuid.UUID) (*tour.Tour, error) {
		return h.svc.Get(r.Context(), scopeOf(r), id)
	})
}

func (h *Handler) start(w http.ResponseWriter, r *http.Request) {
	h.withTour(w, r, func(id uuid.UUID) (*tour.Tour, error) {
		return h.svc.Start(r.Context(), scopeOf(r), id)
	})
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	h.withTour(w, r, func(id uuid.UUID) (*tour.Tour, error) {
		return h.svc.Cancel(r.Context(), scopeOf(r), id)
	})
}

type deliveryRequest struct {
	ShipmentID uuid.UUID       `json:"shipment_id" validate:"required"`
	Outcome    shipment.Status `json:"outcome" validate:"required,oneof=delivered failed"`
	Location   string          `json:"location"`
	Notes      string          `json:"notes"`
}

func (h *Handler) recordDelivery(w http.ResponseWriter, r *http.Request) {
	var req deliveryRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	h.withTour(w, r, func(id uuid.UUID) (*tour.Tour, error) {
		return h.svc.RecordDelivery(r.Context(), scopeOf(r), id, tour.DeliveryParams{
			ShipmentID: req.ShipmentID,
			Outcome:    req.Outcome,
			Location:   req.Location,
			Notes:      req.Notes,
		})
	})
}

type completeRequest struct {
	DistanceKm    decimal.Decimal `json:"distance_km" validate:"gte=0"`
	FuelConsumed  decimal.Decimal `json:"fuel_consumed" validate:"gte=0"`
	DurationHours decimal.Decimal `json:"duration_hours" validate:"gte=0"`
	Notes         string          `json:"notes"`
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	var req completeRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	h.withTour(w, r, func(id uuid.UUID) (*tour.Tour, error) {
		return h.svc.Complete(r.Context(), scopeOf(r), id, tour.RouteData{
			DistanceKm:    req.DistanceKm,
			FuelConsumed:  req.FuelConsumed,
			DurationHours: req.DurationHours,
			Notes:         req.Notes,
		})
	})
}

// withTour resolves the {id} parameter, runs fn and writes the resulting tour.
func (h *Handler) withTour(w http.ResponseWriter, r *http.Request, fn func(id uuid.UUID) (*tour.Tour, error)) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	t, err := fn(id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(t))
}
