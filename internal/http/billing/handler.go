package billing

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/billing"
	"github.com/MrJamesThe3rd/dispatch/internal/http/respond"
)

type Handler struct {
	svc *billing.Service
}

func NewHandler(svc *billing.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}/status", h.updateStatus)
	r.Get("/{id}/payments", h.listPayments)
	r.Post("/{id}/payments", h.recordPayment)
}

type createInvoiceRequest struct {
	ClientID    uuid.UUID        `json:"client_id" validate:"required"`
	ShipmentIDs []uuid.UUID      `json:"shipment_ids"`
	AmountHT    *decimal.Decimal `json:"amount_ht" validate:"omitempty,gte=0"`
	TVARate     *decimal.Decimal `json:"tva_rate" validate:"omitempty,gte=0,lte=999.99"`
	DueDate     string           `json:"due_date" validate:"required,datetime=2006-01-02"`
	Notes       string           `json:"notes"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	due, _ := time.Parse(time.DateOnly, req.DueDate)

	inv, err := h.svc.CreateInvoice(r.Context(), billing.CreateInvoiceParams{
		ClientID:    req.ClientID,
		ShipmentIDs: req.ShipmentIDs,
		AmountHT:    req.AmountHT,
		TVARate:     req.TVARate,
		DueDate:     due,
		Notes:       req.Notes,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toInvoice(inv))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var filter billing.ListFilter

	clientID, err := respond.QueryID(r, "client_id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	filter.ClientID = clientID

	if s := r.URL.Query().Get("status"); s != "" {
		status := billing.Status(s)
		filter.Status = &status
	}

	invoices, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = toInvoice(inv)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toInvoice(inv))
}

type updateStatusRequest struct {
	Status billing.Status `json:"status" validate:"required"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req updateStatusRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.SetStatus(r.Context(), id, req.Status); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	payments, err := h.svc.ListPayments(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]paymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = toPayment(p)
	}

	respond.JSON(w, http.StatusOK, resp)
}

type recordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount" validate:"gt=0"`
	Date      string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Method    billing.Method  `json:"method" validate:"required"`
	Reference string          `json:"reference"`
	Notes     string          `json:"notes"`
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req recordPaymentRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	params := billing.RecordPaymentParams{
		InvoiceID: id,
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
		Notes:     req.Notes,
	}

	if req.Date != "" {
		date, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			respond.Error(w, r, apperr.Validation("date must be YYYY-MM-DD"))
			return
		}

		params.Date = date
	}

	res, err := h.svc.RecordPayment(r.Context(), params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, ledgerResponse{
		Payment:       toPayment(res.Payment),
		Invoice:       toInvoice(res.Invoice),
		ClientBalance: res.ClientBalance,
	})
}
