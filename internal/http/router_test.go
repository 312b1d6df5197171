package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/billing"
	"github.com/MrJamesThe3rd/dispatch/internal/catalog"
	"github.com/MrJamesThe3rd/dispatch/internal/client"
	"github.com/MrJamesThe3rd/dispatch/internal/fleet"
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
	"github.com/MrJamesThe3rd/dispatch/internal/shipment"
	"github.com/MrJamesThe3rd/dispatch/internal/tour"
)

type mocks struct {
	catalog  *catalog.MockRepository
	clients  *client.MockRepository
	shipment *shipment.MockRepository
	tours    *tour.MockRepository
	billing  *billing.MockRepository
	fleet    *fleet.MockRepository
	incident *incident.MockRepository
}

const secret = "router-test"

func newRouter(ctrl *gomock.Controller) (http.Handler, mocks) {
	m := mocks{
		catalog:  catalog.NewMockRepository(ctrl),
		clients:  client.NewMockRepository(ctrl),
		shipment: shipment.NewMockRepository(ctrl),
		tours:    tour.NewMockRepository(ctrl),
		billing:  billing.NewMockRepository(ctrl),
		fleet:    fleet.NewMockRepository(ctrl),
		incident: incident.NewMockRepository(ctrl),
	}

	catalogSvc := catalog.NewService(m.catalog)

	h := dispatchHttp.Handlers{
		Quote:     pricingHandler.NewHandler(catalogSvc),
		Shipments: shipmentHandler.NewHandler(shipment.NewService(m.shipment)),
		Tours:     tourHandler.NewHandler(tour.NewService(m.tours)),
		Invoices:  billingHandler.NewHandler(billing.NewService(m.billing, billing.Config{})),
		Clients:   clientHandler.NewHandler(client.NewService(m.clients)),
		Catalog:   catalogHandler.NewHandler(catalogSvc, importer.NewParser()),
		Fleet:     fleetHandler.NewHandler(fleet.NewService(m.fleet)),
		Incidents: incidentHandler.NewHandler(incident.NewService(m.incident)),
	}

	opts := dispatchHttp.Options{Timeout: time.Second, AllowedOrigins: []string{"http://localhost:5173"}}

	return dispatchHttp.New(opts, auth.New(secret, time.Hour), h), m
}

func token(t *testing.T, role auth.Role) string {
	t.Helper()

	tok, err := auth.New(secret, time.Hour).Issue(uuid.New(), role)
	require.NoError(t, err)

	return "Bearer " + tok
}

func TestRouter_Access(t *testing.T) {
	type testCase struct {
		name       string
		method     string
		path       string
		role       auth.Role
		body       string
		mock       func(m mocks)
		wantStatus int
	}

	tests := []testCase{
		{
			name:       "Health",
			method:     http.MethodGet,
			path:       "/healthz",
			mock:       func(m mocks) {},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "NoToken",
			method:     http.MethodGet,
			path:       "/api/v1/invoices",
			mock:       func(m mocks) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "DriverCannotReadInvoices",
			method:     http.MethodGet,
			path:       "/api/v1/invoices",
			role:       auth.RoleDriver,
			mock:       func(m mocks) {},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "AgentListsClients",
			method: http.MethodGet,
			path:   "/api/v1/clients",
			role:   auth.RoleAgent,
			mock: func(m mocks) {
				m.clients.EXPECT().ListClients(gomock.Any()).Return([]*client.Client{{Number: "CLT00001"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "PublicTracking",
			method: http.MethodGet,
			path:   "/api/v1/tracking/exp0000000000ab",
			mock: func(m mocks) {
				m.shipment.EXPECT().GetShipmentByNumber(gomock.Any(), "EXP0000000000AB").Return(nil, apperr.NotFound("shipment"))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "AgentCannotWriteCatalog",
			method:     http.MethodPost,
			path:       "/api/v1/catalog/destinations",
			role:       auth.RoleAgent,
			body:       `{"code":"ORN","city":"Oran","zone":"national","base_tariff":"450"}`,
			mock:       func(m mocks) {},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "ClientCannotSeeTours",
			method:     http.MethodGet,
			path:       "/api/v1/tours",
			role:       auth.RoleClient,
			mock:       func(m mocks) {},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "ClientFilesClaim",
			method: http.MethodPost,
			path:   "/api/v1/claims",
			role:   auth.RoleClient,
			body:   `{"subject":"Late parcel","description":"Still waiting"}`,
			mock: func(m mocks) {
				m.incident.EXPECT().CreateClaim(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "WrongContentType",
			method:     http.MethodPost,
			path:       "/api/v1/clients",
			role:       auth.RoleAgent,
			body:       `name=x`,
			mock:       func(m mocks) {},
			wantStatus: http.StatusUnsupportedMediaType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			router, m := newRouter(ctrl)
			tt.mock(m)

			r := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.body != "" {
				r.Header.Set("Content-Type", "application/json")
				if tt.name == "WrongContentType" {
					r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				}
			}

			if tt.role != "" {
				r.Header.Set("Authorization", token(t, tt.role))
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}
