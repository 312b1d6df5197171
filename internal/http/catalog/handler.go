package catalog

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/catalog"
	"github.com/MrJamesThe3rd/dispatch/internal/http/auth"
	"github.com/MrJamesThe3rd/dispatch/internal/http/respond"
	"github.com/MrJamesThe3rd/dispatch/internal/importer"
)

const maxUpload = 10 << 20

// Parser turns an uploaded tariff grid into destination rows.
type Parser interface {
	Parse(r io.Reader) (*importer.Result, error)
}

type Handler struct {
	svc    *catalog.Service
	parser Parser
}

func NewHandler(svc *catalog.Service, parser Parser) *Handler {
	return &Handler{svc: svc, parser: parser}
}

// Routes lets every authenticated caller read the catalog; managers write it.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/destinations", h.listDestinations)
	r.Get("/destinations/{id}", h.getDestination)
	r.Get("/service-types", h.listServiceTypes)
	r.Get("/service-types/{id}", h.getServiceType)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireRole(auth.RoleManager))
		r.Post("/destinations", h.createDestination)
		r.Post("/destinations/import", h.importDestinations)
		r.Put("/destinations/{id}/tariff", h.updateDestinationTariff)
		r.Post("/service-types", h.createServiceType)
		r.Put("/service-types/{id}/tariffs", h.updateServiceTariffs)
	})
}

func (h *Handler) createDestination(w http.ResponseWriter, r *http.Request) {
	var req destinationRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	d, err := h.svc.CreateDestination(r.Context(), req.params())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDestination(d))
}

func (h *Handler) listDestinations(w http.ResponseWriter, r *http.Request) {
	ds, err := h.svc.ListDestinations(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDestinations(ds))
}

func (h *Handler) getDestination(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	d, err := h.svc.GetDestination(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDestination(d))
}

type destinationTariffRequest struct {
	BaseTariff decimal.Decimal `json:"base_tariff" validate:"gte=0"`
}

func (h *Handler) updateDestinationTariff(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req destinationTariffRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.UpdateDestinationTariff(r.Context(), id, req.BaseTariff); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// importDestinations reads a multipart "file" field. With dry_run=true the
// parsed rows are returned and nothing is written. Row errors abort the import.
func (h *Handler) importDestinations(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		respond.Status(w, http.StatusBadRequest, "failed to parse form: "+err.Error())
		return
	}

	dryRun, _ := strconv.ParseBool(r.FormValue("dry_run"))

	file, _, err := r.FormFile("file")
	if err != nil {
		respond.Status(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	parsed, err := h.parser.Parse(file)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := importResponse{
		Profile:   parsed.Profile,
		Charset:   parsed.Charset,
		RowErrors: parsed.Errors,
	}

	if len(parsed.Errors) > 0 || dryRun {
		for _, p := range parsed.Destinations {
			resp.Parsed = append(resp.Parsed, toDestinationRequest(p))
		}

		status := http.StatusOK
		if len(parsed.Errors) > 0 {
			status = http.StatusUnprocessableEntity
		}

		respond.JSON(w, status, resp)

		return
	}

	result, err := h.svc.ImportDestinations(r.Context(), parsed.Destinations)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if len(result.Conflicts) > 0 {
		for _, c := range result.Conflicts {
			resp.Conflicts = append(resp.Conflicts, conflictDTO{
				Incoming: toDestinationRequest(c.Incoming),
				Existing: toDestination(c.Existing),
			})
		}

		respond.JSON(w, http.StatusConflict, resp)

		return
	}

	resp.Created = toDestinations(result.Created)
	respond.JSON(w, http.StatusCreated, resp)
}

type serviceTypeRequest struct {
	Code             string              `json:"code" validate:"required"`
	Name             string              `json:"name" validate:"required"`
	Type             catalog.ServiceKind `json:"type" validate:"required"`
	Description      string              `json:"description"`
	WeightTariff     decimal.Decimal     `json:"weight_tariff" validate:"gte=0"`
	VolumeTariff     decimal.Decimal     `json:"volume_tariff" validate:"gte=0"`
	DeliveryTimeDays int                 `json:"delivery_time_days" validate:"gte=0"`
}

func (h *Handler) createServiceType(w http.ResponseWriter, r *http.Request) {
	var req serviceTypeRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	s, err := h.svc.CreateServiceType(r.Context(), catalog.ServiceTypeParams{
		Code:             req.Code,
		Name:             req.Name,
		Kind:             req.Type,
		Description:      req.Description,
		WeightTariff:     req.WeightTariff,
		VolumeTariff:     req.VolumeTariff,
		DeliveryTimeDays: req.DeliveryTimeDays,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toServiceType(s))
}

func (h *Handler) listServiceTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListServiceTypes(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]serviceTypeResponse, len(types))
	for i, s := range types {
		resp[i] = toServiceType(s)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) getServiceType(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	s, err := h.svc.GetServiceType(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toServiceType(s))
}

type serviceTariffsRequest struct {
	WeightTariff decimal.Decimal `json:"weight_tariff" validate:"gte=0"`
	VolumeTariff decimal.Decimal `json:"volume_tariff" validate:"gte=0"`
}

func (h *Handler) updateServiceTariffs(w http.ResponseWriter, r *http.Request) {
	id, err := respond.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req serviceTariffsRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.UpdateServiceTariffs(r.Context(), id, req.WeightTariff, req.VolumeTariff); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
