package shipment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/http/auth"
	"github.com/MrJamesThe3rd/dispatch/internal/http/respond"
	"github.com/MrJamesThe3rd/dispatch/internal/shipment"
)

type Handler struct {
	svc *shipment.Service
}

func NewHandler(svc *shipment.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes serves clients their own shipments; everything else is office staff.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.Office...))
		r.Post("/", h.create)
		r.Patch("/{id}", h.update)
		r.Post("/{id}/events", h.addEvent)
	})
}

// Track is mounted outside the authenticated group.
func (h *Handler) Track(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.Track(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toTracking(t))
}

type createShipmentRequest struct {
	ClientID      uuid.UUID       `json:"client_id" validate:"required"`
	ServiceTypeID uuid.UUID       `json:"service_type_id" validate:"required"`
	DestinationID uuid.UUID       `json:"destination_id" validate:"required"`
	Weight        decimal.Decimal `json:"weight" validate:"gte=0"`
	Volume        decimal.Decimal `json:"volume" validate:"gte=0"`
	Description   string          `json:"description"`
	Sender        partyDTO        `json:"sender"`
	Recipient     partyDTO        `json:"recipient"`
	Notes         string          `json:"notes"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createShipmentRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	s, err := h.svc.Create(r.Context(), shipment.CreateParams{
		ClientID:      req.ClientID,
		ServiceTypeID: req.ServiceTypeID,
		DestinationID: req.DestinationID,
		Weight:        req.Weight,
		Volume:        req.Volume,
		Description:   req.Description,
		Sender:        req.Sender.party(),
		Recipient:     req.Recipient.party(),
		Notes:         req.Notes,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(s))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var filter shipment.ListFilter

	clientID, err := respond.QueryID(r, "client_id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	filter.ClientID = clientID

	if p, _ := auth.FromContext(r.Context()); p.Role == auth.RoleClient {
		filter.ClientID = &p.Subject
	}

	if s := r.URL.Query().Get("status"); s != "" {
		status := shipment.Status(s)
		if !status.Valid() {
			respond.Error(w, r, apperr.Validation("unknown shipment status %q", s))
			return
		}

		filter.Status = &status
	}

	shipments, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(shipments))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	s, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if p, _ := auth.FromContext(r.Context()); p.Role == auth.RoleClient && p.Subject != s.ClientID {
		respond.Error(w, r, apperr.NotFound("shipment"))
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(s))
}

type updateShipmentRequest struct {
	ServiceTypeID *uuid.UUID       `json:"service_type_id"`
	DestinationID *uuid.UUID       `json:"destination_id"`
	Weight        *decimal.Decimal `json:"weight"`
	Volume        *decimal.Decimal `json:"volume"`
	Description   *string          `json:"description"`
	Recipient     *partyDTO        `json:"recipient"`
	Notes         *string          `json:"notes"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req updateShipmentRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	params := shipment.UpdateParams{
		ServiceTypeID: req.ServiceTypeID,
		DestinationID: req.DestinationID,
		Weight:        req.Weight,
		Volume:        req.Volume,
		Description:   req.Description,
		Notes:         req.Notes,
	}

	if req.Recipient != nil {
		recipient := req.Recipient.party()
		params.Recipient = &recipient
	}

	s, err := h.svc.Update(r.Context(), id, params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(s))
}

type addEventRequest struct {
	TourID   *uuid.UUID      `json:"tour_id"`
	Status   shipment.Status `json:"status" validate:"required"`
	Location string          `json:"location"`
	Notes    string          `json:"notes"`
}

func (h *Handler) addEvent(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req addEventRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	e, err := h.svc.AddEvent(r.Context(), shipment.EventParams{
		ShipmentID: id,
		TourID:     req.TourID,
		Status:     req.Status,
		Location:   req.Location,
		Notes:      req.Notes,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toEvent(e))
}
