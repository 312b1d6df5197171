package incident

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/http/auth"
	"github.com/MrJamesThe3rd/dispatch/internal/http/respond"
	"github.com/MrJamesThe3rd/dispatch/internal/incident"
)

type Handler struct {
	svc *incident.Service
}

func NewHandler(svc *incident.Service) *Handler {
	return &Handler{svc: svc}
}

// IncidentRoutes lets any staff member report; the office follows up.
func (h *Handler) IncidentRoutes(r chi.Router) {
	r.Use(auth.RequireRole(auth.Staff...))
	r.Post("/", h.report)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.Office...))
		r.Get("/", h.listIncidents)
		r.Get("/{id}", h.getIncident)
		r.Patch("/{id}/status", h.setIncidentStatus)
	})
}

// ClaimRoutes serves clients their own claims and the office all of them.
func (h *Handler) ClaimRoutes(r chi.Router) {
	r.Use(auth.RequireRole(auth.RoleClient, auth.RoleManager, auth.RoleAgent))
	r.Post("/", h.fileClaim)
	r.Get("/", h.listClaims)
	r.Get("/{id}", h.getClaim)

	r.With(auth.RequireRole(auth.Office...)).Patch("/{id}/status", h.setClaimStatus)
}

type reportRequest struct {
	Type        incident.Type `json:"type" validate:"required"`
	ShipmentID  *uuid.UUID    `json:"shipment_id"`
	TourID      *uuid.UUID    `json:"tour_id"`
	Description string        `json:"description" validate:"required"`
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	i, err := h.svc.Report(r.Context(), incident.ReportParams{
		Type:        req.Type,
		ShipmentID:  req.ShipmentID,
		TourID:      req.TourID,
		Description: req.Description,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toIncident(i))
}

func (h *Handler) listIncidents(w http.ResponseWriter, r *http.Request) {
	var (
		filter incident.IncidentFilter
		err    error
	)

	if filter.ShipmentID, err = respond.QueryID(r, "shipment_id"); err != nil {
		respond.Error(w, r, err)
		return
	}

	if filter.TourID, err = respond.QueryID(r, "tour_id"); err != nil {
		respond.Error(w, r, err)
		return
	}

	if s := r.URL.Query().Get("status"); s != "" {
		status := incident.Status(s)
		filter.Status = &status
	}

	incidents, err := h.svc.ListIncidents(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]incidentResponse, len(incidents))
	for i, inc := range incidents {
		resp[i] = toIncident(inc)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) getIncident(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	i, err := h.svc.GetIncident(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toIncident(i))
}

type incidentStatusRequest struct {
	Status incident.Status `json:"status" validate:"required"`
	Notes  string          `json:"notes"`
}

func (h *Handler) setIncidentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req incidentStatusRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	i, err := h.svc.SetIncidentStatus(r.Context(), id, req.Status, req.Notes)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toIncident(i))
}

type fileClaimRequest struct {
	ClientID    uuid.UUID         `json:"client_id"`
	ShipmentID  *uuid.UUID        `json:"shipment_id"`
	InvoiceID   *uuid.UUID        `json:"invoice_id"`
	Subject     string            `json:"subject" validate:"required"`
	Description string            `json:"description" validate:"required"`
	Priority    incident.Priority `json:"priority"`
}

func (h *Handler) fileClaim(w http.ResponseWriter, r *http.Request) {
	var req fileClaimRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	// Clients always file for themselves.
	if p, _ := auth.FromContext(r.Context()); p.Role == auth.RoleClient {
		req.ClientID = p.Subject
	}

	c, err := h.svc.FileClaim(r.Context(), incident.FileClaimParams{
		ClientID:    req.ClientID,
		ShipmentID:  req.ShipmentID,
		InvoiceID:   req.InvoiceID,
		Subject:     req.Subject,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toClaim(c))
}

func (h *Handler) listClaims(w http.ResponseWriter, r *http.Request) {
	var filter incident.ClaimFilter

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
		status := incident.ClaimStatus(s)
		filter.Status = &status
	}

	claims, err := h.svc.ListClaims(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]claimResponse, len(claims))
	for i, c := range claims {
		resp[i] = toClaim(c)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) getClaim(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.GetClaim(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if p, _ := auth.FromContext(r.Context()); p.Role == auth.RoleClient && p.Subject != c.ClientID {
		respond.Error(w, r, apperr.NotFound("claim"))
		return
	}

	respond.JSON(w, http.StatusOK, toClaim(c))
}

type claimStatusRequest struct {
	Status     incident.ClaimStatus `json:"status" validate:"required"`
	Resolution string               `json:"resolution"`
}

func (h *Handler) setClaimStatus(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req claimStatusRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.SetClaimStatus(r.Context(), id, req.Status, req.Resolution)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toClaim(c))
}
