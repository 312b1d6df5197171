package fleet

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/fleet"
	"github.com/MrJamesThe3rd/dispatch/internal/http/auth"
	"github.com/MrJamesThe3rd/dispatch/internal/http/respond"
)

type Handler struct {
	svc *fleet.Service
}

func NewHandler(svc *fleet.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/drivers", h.listDrivers)
	r.Get("/vehicles", h.listVehicles)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.RoleManager))
		r.Post("/drivers", h.createDriver)
		r.Put("/drivers/{id}/availability", h.setAvailability)
		r.Post("/vehicles", h.createVehicle)
	})
}

type driverResponse struct {
	ID            uuid.UUID          `json:"id"`
	Number        string             `json:"number"`
	FirstName     string             `json:"first_name"`
	LastName      string             `json:"last_name"`
	Phone         string             `json:"phone,omitempty"`
	LicenseNumber string             `json:"license_number,omitempty"`
	Availability  fleet.Availability `json:"availability"`
	IsActive      bool               `json:"is_active"`
	CreatedAt     time.Time          `json:"created_at"`
}

func toDriver(d *fleet.Driver) driverResponse {
	return driverResponse{
		ID:            d.ID,
		Number:        d.Number,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		Phone:         d.Phone,
		LicenseNumber: d.LicenseNumber,
		Availability:  d.Availability,
		IsActive:      d.IsActive,
		CreatedAt:     d.CreatedAt,
	}
}

type vehicleResponse struct {
	ID                 uuid.UUID           `json:"id"`
	RegistrationNumber string              `json:"registration_number"`
	Type               fleet.VehicleType   `json:"type"`
	Brand              string              `json:"brand,omitempty"`
	Model              string              `json:"model,omitempty"`
	CapacityKg         decimal.Decimal     `json:"capacity_kg"`
	CapacityM3         *decimal.Decimal    `json:"capacity_m3,omitempty"`
	Status             fleet.VehicleStatus `json:"status"`
	CreatedAt          time.Time           `json:"created_at"`
}

func toVehicle(v *fleet.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:                 v.ID,
		RegistrationNumber: v.RegistrationNumber,
		Type:               v.Type,
		Brand:              v.Brand,
		Model:              v.Model,
		CapacityKg:         v.CapacityKg,
		CapacityM3:         v.CapacityM3,
		Status:             v.Status,
		CreatedAt:          v.CreatedAt,
	}
}

type createDriverRequest struct {
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
}

func (h *Handler) createDriver(w http.ResponseWriter, r *http.Request) {
	var req createDriverRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	d, err := h.svc.CreateDriver(r.Context(), fleet.DriverParams{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		LicenseNumber: req.LicenseNumber,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDriver(d))
}

func (h *Handler) listDrivers(w http.ResponseWriter, r *http.Request) {
	var availability *fleet.Availability
	if s := r.URL.Query().Get("availability"); s != "" {
		a := fleet.Availability(s)
		availability = &a
	}

	drivers, err := h.svc.ListDrivers(r.Context(), availability)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]driverResponse, len(drivers))
	for i, d := range drivers {
		resp[i] = toDriver(d)
	}

	respond.JSON(w, http.StatusOK, resp)
}

type availabilityRequest struct {
	Availability fleet.Availability `json:"availability" validate:"required"`
}

func (h *Handler) setAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req availabilityRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.SetDriverAvailability(r.Context(), id, req.Availability); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type createVehicleRequest struct {
	RegistrationNumber string            `json:"registration_number" validate:"required"`
	Type               fleet.VehicleType `json:"type" validate:"required"`
	Brand              string            `json:"brand"`
	Model              string            `json:"model"`
	CapacityKg         decimal.Decimal   `json:"capacity_kg" validate:"gte=0"`
	CapacityM3         *decimal.Decimal  `json:"capacity_m3" validate:"omitempty,gte=0"`
}

func (h *Handler) createVehicle(w http.ResponseWriter, r *http.Request) {
	var req createVehicleRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	v, err := h.svc.CreateVehicle(r.Context(), fleet.VehicleParams{
		RegistrationNumber: req.RegistrationNumber,
		Type:               req.Type,
		Brand:              req.Brand,
		Model:              req.Model,
		CapacityKg:         req.CapacityKg,
		CapacityM3:         req.CapacityM3,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toVehicle(v))
}

func (h *Handler) listVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.svc.ListVehicles(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]vehicleResponse, len(vehicles))
	for i, v := range vehicles {
		resp[i] = toVehicle(v)
	}

	respond.JSON(w, http.StatusOK, resp)
}
