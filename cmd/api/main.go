package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/dispatch/internal/billing"
	billingStore "github.com/MrJamesThe3rd/dispatch/internal/billing/store"
	"github.com/MrJamesThe3rd/dispatch/internal/catalog"
	catalogStore "github.com/MrJamesThe3rd/dispatch/internal/catalog/store"
	"github.com/MrJamesThe3rd/dispatch/internal/client"
	clientStore "github.com/MrJamesThe3rd/dispatch/internal/client/store"
	"github.com/MrJamesThe3rd/dispatch/internal/config"
	"github.com/MrJamesThe3rd/dispatch/internal/database"
	"github.com/MrJamesThe3rd/dispatch/internal/fleet"
	fleetStore "github.com/MrJamesThe3rd/dispatch/internal/fleet/store"
	dispatchHttp "github.com/MrJamesThe3rd/dispatch/internal/http"
	"github.com/MrJamesThe3rd/dispatch/internal/http/auth"
	billingHandler "github.com/MrJamesThe3rd/dispatch/internal/http/billing"
	catalogHandler "github.com/MrJamesThe3rd/dispatch/internal/http/catalog"
	clientHandler "github.com/MrJamesThe3rd/dispatch/internal/http/client"
	fleetHandler "github.com/MrJamesThe3rd/dispatch/internal/http/fleet"
	incidentHandler "github.com/MrJamesThe3rd/dispatch/internal/http/incident"
	pricingHandler "github.com/MrJamesThe3rd/dispatch/internal/http/pricing"
	shipmentHandler "github.com/MrJamesThe3rd/dispatch/internal/http/shipment"
	tourHandler "github.com/MrJamesThe3rd/dispatch/internal/http/tour"
	"github.com/MrJamesThe3rd/dispatch/internal/importer"
	"github.com/MrJamesThe3rd/dispatch/internal/incident"
	incidentStore "github.com/MrJamesThe3rd/dispatch/internal/incident/store"
	"github.com/MrJamesThe3rd/dispatch/internal/shipment"
	shipmentStore "github.com/MrJamesThe3rd/dispatch/internal/shipment/store"
	"github.com/MrJamesThe3rd/dispatch/internal/tour"
	tourStore "github.com/MrJamesThe3rd/dispatch/internal/tour/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Auth.JWTSecret == "" {
		slog.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var (
		catalogService  = catalog.NewService(catalogStore.New(db))
		clientService   = client.NewService(clientStore.New(db))
		fleetService    = fleet.NewService(fleetStore.New(db))
		shipmentService = shipment.NewService(shipmentStore.New(db))
		tourService     = tour.NewService(tourStore.New(db))
		incidentService = incident.NewService(incidentStore.New(db))
		billingService  = billing.NewService(billingStore.New(db), billing.Config{
			DefaultTVARate: cfg.Billing.DefaultTVARate,
			PaymentRetries: cfg.Billing.PaymentRetries,
		})
	)

	handlers := dispatchHttp.Handlers{
		Quote:     pricingHandler.NewHandler(catalogService),
		Shipments: shipmentHandler.NewHandler(shipmentService),
		Tours:     tourHandler.NewHandler(tourService),
		Invoices:  billingHandler.NewHandler(billingService),
		Clients:   clientHandler.NewHandler(clientService),
		Catalog:   catalogHandler.NewHandler(catalogService, importer.NewParser()),
		Fleet:     fleetHandler.NewHandler(fleetService),
		Incidents: incidentHandler.NewHandler(incidentService),
	}

	router := dispatchHttp.New(dispatchHttp.Options{
		Timeout:        cfg.Server.Timeout,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}, auth.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL), handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
