package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/dispatch/internal/http/auth"
	"github.com/MrJamesThe3rd/dispatch/internal/http/billing"
	"github.com/MrJamesThe3rd/dispatch/internal/http/catalog"
	"github.com/MrJamesThe3rd/dispatch/internal/http/client"
	"github.com/MrJamesThe3rd/dispatch/internal/http/fleet"
	"github.com/MrJamesThe3rd/dispatch/internal/http/incident"
	"github.com/MrJamesThe3rd/dispatch/internal/http/pricing"
	"github.com/MrJamesThe3rd/dispatch/internal/http/shipment"
	"github.com/MrJamesThe3rd/dispatch/internal/http/tour"
)

type Options struct {
	Timeout        time.Duration
	AllowedOrigins []string
}

type Handlers struct {
	Quote     *pricing.Handler
	Shipments *shipment.Handler
	Tours     *tour.Handler
	Invoices  *billing.Handler
	Clients   *client.Handler
	Catalog   *catalog.Handler
	Fleet     *fleet.Handler
	Incidents *incident.Handler
}

func New(opts Options, authn *auth.Authenticator, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(opts.Timeout))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/tracking/{number}", h.Shipments.Track)

		r.Group(func(r chi.Router) {
			r.Use(authn.Middleware)

			r.Route("/catalog", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json", "multipart/form-data"))
				h.Catalog.Routes(r)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))

				r.Route("/quote", h.Quote.Routes)
				r.Route("/shipments", h.Shipments.Routes)
				r.Route("/claims", h.Incidents.ClaimRoutes)

				r.Route("/tours", func(r chi.Router) {
					r.Use(auth.RequireRole(auth.Staff...))
					h.Tours.Routes(r)
				})

				r.Route("/incidents", h.Incidents.IncidentRoutes)

				r.Route("/fleet", func(r chi.Router) {
					r.Use(auth.RequireRole(auth.Office...))
					h.Fleet.Routes(r)
				})

				r.Route("/invoices", func(r chi.Router) {
					r.Use(auth.RequireRole(auth.Office...))
					h.Invoices.Routes(r)
				})

				r.Route("/clients", func(r chi.Router) {
					r.Use(auth.RequireRole(auth.Office...))
					h.Clients.Routes(r)
				})
			})
		})
	})

	return router
}
