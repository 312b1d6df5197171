package pricing

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/catalog"
	"github.com/MrJamesThe3rd/dispatch/internal/http/respond"
	"github.com/MrJamesThe3rd/dispatch/internal/pricing"
)

type Handler struct {
	catalog *catalog.Service
}

func NewHandler(catalog *catalog.Service) *Handler {
	return &Handler{catalog: catalog}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.quote)
}

type quoteRequest struct {
	DestinationID uuid.UUID       `json:"destination_id" validate:"required"`
	ServiceTypeID uuid.UUID       `json:"service_type_id" validate:"required"`
	Weight        decimal.Decimal `json:"weight" validate:"gte=0"`
	Volume        decimal.Decimal `json:"volume" validate:"gte=0"`
}

type quoteResponse struct {
	Amount            decimal.Decimal `json:"amount"`
	EstimatedDelivery string          `json:"estimated_delivery"`
	DestinationCode   string          `json:"destination_code"`
	ServiceTypeCode   string          `json:"service_type_code"`
}

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	dest, err := h.catalog.GetDestination(r.Context(), req.DestinationID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	svc, err := h.catalog.GetServiceType(r.Context(), req.ServiceTypeID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	q, err := pricing.QuoteShipment(dest, svc, req.Weight, req.Volume, time.Now())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, quoteResponse{
		Amount:            q.Amount,
		EstimatedDelivery: q.EstimatedDelivery.Format(time.DateOnly),
		DestinationCode:   dest.Code,
		ServiceTypeCode:   svc.Code,
	})
}
