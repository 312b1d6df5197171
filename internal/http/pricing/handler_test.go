package pricing_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/catalog"
	pricingHandler "github.com/MrJamesThe3rd/dispatch/internal/http/pricing"
)

func TestHandler_Quote(t *testing.T) {
	destID, svcID := uuid.New(), uuid.New()

	dest := &catalog.Destination{ID: destID, Code: "ORN", BaseTariff: decimal.RequireFromString("450.00")}
	svc := &catalog.ServiceType{
		ID:               svcID,
		Code:             "EXPRESS",
		WeightTariff:     decimal.RequireFromString("50.00"),
		VolumeTariff:     decimal.RequireFromString("100.00"),
		DeliveryTimeDays: 2,
	}

	type testCase struct {
		name       string
		body       string
		mock       func(repo *catalog.MockRepository)
		wantStatus int
		wantAmount string
	}

	tests := []testCase{
		{
			name: "Success",
			body: `{"destination_id":"` + destID.String() + `","service_type_id":"` + svcID.String() + `","weight":"2.5","volume":"0.1"}`,
			mock: func(repo *catalog.MockRepository) {
				repo.EXPECT().GetDestination(gomock.Any(), destID).Return(dest, nil)
				repo.EXPECT().GetServiceType(gomock.Any(), svcID).Return(svc, nil)
			},
			wantStatus: http.StatusOK,
			wantAmount: "585",
		},
		{
			name:       "NegativeWeight",
			body:       `{"destination_id":"` + destID.String() + `","service_type_id":"` + svcID.String() + `","weight":"-1","volume":"0"}`,
			mock:       func(repo *catalog.MockRepository) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "UnknownDestination",
			body: `{"destination_id":"` + destID.String() + `","service_type_id":"` + svcID.String() + `","weight":"1","volume":"0"}`,
			mock: func(repo *catalog.MockRepository) {
				repo.EXPECT().GetDestination(gomock.Any(), destID).Return(nil, apperr.NotFound("destination"))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "MissingServiceType",
			body:       `{"destination_id":"` + destID.String() + `","weight":"1"}`,
			mock:       func(repo *catalog.MockRepository) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := catalog.NewMockRepository(ctrl)
			tt.mock(repo)

			router := chi.NewRouter()
			router.Route("/quote", pricingHandler.NewHandler(catalog.NewService(repo)).Routes)

			r := httptest.NewRequest(http.MethodPost, "/quote", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			if tt.wantAmount == "" {
				return
			}

			var resp struct {
				Amount            decimal.Decimal `json:"amount"`
				EstimatedDelivery string          `json:"estimated_delivery"`
				ServiceTypeCode   string          `json:"service_type_code"`
			}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

			assert.Equal(t, tt.wantAmount, resp.Amount.String())
			assert.Equal(t, "EXPRESS", resp.ServiceTypeCode)
			assert.Len(t, resp.EstimatedDelivery, len("2006-01-02"))
		})
	}
}
