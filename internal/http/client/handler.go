package client

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/client"
	"github.com/MrJamesThe3rd/dispatch/internal/http/respond"
)

type Handler struct {
	svc *client.Service
}

func NewHandler(svc *client.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

type createClientRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Notes      string `json:"notes"`
}

type clientResponse struct {
	ID         uuid.UUID       `json:"id"`
	Number     string          `json:"number"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone,omitempty"`
	Address    string          `json:"address,omitempty"`
	City       string          `json:"city,omitempty"`
	PostalCode string          `json:"postal_code,omitempty"`
	Country    string          `json:"country"`
	Balance    decimal.Decimal `json:"balance"`
	IsActive   bool            `json:"is_active"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func toResponse(c *client.Client) clientResponse {
	return clientResponse{
		ID:         c.ID,
		Number:     c.Number,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		City:       c.City,
		PostalCode: c.PostalCode,
		Country:    c.Country,
		Balance:    c.Balance,
		IsActive:   c.IsActive,
		Notes:      c.Notes,
		CreatedAt:  c.CreatedAt,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.Create(r.Context(), client.CreateParams{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Notes:      req.Notes,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(c))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]clientResponse, len(clients))
	for i, c := range clients {
		resp[i] = toResponse(c)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}
