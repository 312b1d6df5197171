// Package respond holds the JSON plumbing shared by every HTTP handler.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
)

var validate = validator.New()

func init() {
	// Tags such as gt=0 need a numeric view of decimal fields.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}

		return nil
	}, decimal.Decimal{})

	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes err with the status of its kind. Unclassified errors are logged
// and reported as "internal error".
func Error(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		JSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		JSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, apperr.ErrConcurrency):
		JSON(w, http.StatusConflict, errorResponse{Error: "the resource was modified concurrently, retry the request"})
	default:
		slog.Error("request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
		)
		JSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// Status writes a bare error message with the given status.
func Status(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, errorResponse{Error: msg})
}

// Decode reads a JSON body into v and runs its validate tags.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validation("invalid JSON body: %v", err)
	}

	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating request: %w", err)
		}

		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Namespace()[strings.Index(fe.Namespace(), ".")+1:]+" "+describe(fe))
		}

		return apperr.Validation("%s", strings.Join(fields, "; "))
	}

	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt", "gte", "lt", "lte", "min", "max":
		return fmt.Sprintf("must be %s %s", fe.Tag(), fe.Param())
	case "oneof":
		return "must be one of " + fe.Param()
	}

	return "failed " + fe.Tag()
}

// PathID parses the named chi URL parameter as a UUID.
func PathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, apperr.Validation("invalid %s", name)
	}

	return id, nil
}

// QueryID parses an optional UUID query parameter.
func QueryID(r *http.Request, name string) (*uuid.UUID, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return nil, apperr.Validation("invalid %s", name)
	}

	return &id, nil
}
