package billing_test

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

	"github.com/MrJamesThe3rd/dispatch/internal/billing"
	billingHandler "github.com/MrJamesThe3rd/dispatch/internal/http/billing"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newRouter(repo billing.Repository) http.Handler {
	svc := billing.NewService(repo, billing.Config{DefaultTVARate: dec("19"), PaymentRetries: 1})

	router := chi.NewRouter()
	router.Route("/invoices", billingHandler.NewHandler(svc).Routes)

	return router
}

func TestHandler_RecordPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := billing.NewMockRepository(ctrl)
	ltx := billing.NewMockLedgerTx(ctrl)

	inv := &billing.Invoice{
		ID:        uuid.New(),
		Number:    "FAC0000007",
		ClientID:  uuid.New(),
		AmountHT:  dec("84.03"),
		TVARate:   dec("19"),
		AmountTVA: dec("15.97"),
		AmountTTC: dec("100.00"),
		Status:    billing.StatusIssued,
	}

	repo.EXPECT().BeginLedger(gomock.Any()).Return(ltx, nil)
	ltx.EXPECT().LockInvoice(gomock.Any(), inv.ID).Return(inv, nil)
	ltx.EXPECT().InsertPayment(gomock.Any(), gomock.Any()).Return(nil)
	ltx.EXPECT().SumPayments(gomock.Any(), inv.ID).Return(dec("25.00"), nil)
	ltx.EXPECT().UpdateInvoiceAmounts(gomock.Any(), inv).Return(nil)
	ltx.EXPECT().SetClientBalance(gomock.Any(), inv.ClientID, gomock.Any()).Return(nil)
	ltx.EXPECT().Commit().Return(nil)
	ltx.EXPECT().Rollback().Return(nil)

	body := `{"amount":"25.00","method":"ccp","reference":"CCP-778","date":"2026-03-01"}`
	r := httptest.NewRequest(http.MethodPost, "/invoices/"+inv.ID.String()+"/payments", strings.NewReader(body))
	w := httptest.NewRecorder()
	newRouter(repo).ServeHTTP(w, r)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Payment struct {
			Date   string `json:"date"`
			Method string `json:"method"`
		} `json:"payment"`
		Invoice struct {
			Status     string          `json:"status"`
			BalanceDue decimal.Decimal `json:"balance_due"`
		} `json:"invoice"`
		ClientBalance *decimal.Decimal `json:"client_balance"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Equal(t, "2026-03-01", resp.Payment.Date)
	assert.Equal(t, "ccp", resp.Payment.Method)
	assert.Equal(t, string(billing.StatusPartiallyPaid), resp.Invoice.Status)
	assert.Equal(t, "75", resp.Invoice.BalanceDue.String())
	require.NotNil(t, resp.ClientBalance)
	assert.Equal(t, "75", resp.ClientBalance.String())
}

func TestHandler_RecordPayment_Rejected(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "ZeroAmount", path: uuid.NewString(), body: `{"amount":"0","method":"cash"}`},
		{name: "MissingMethod", path: uuid.NewString(), body: `{"amount":"10"}`},
		{name: "UnknownMethod", path: uuid.NewString(), body: `{"amount":"10","method":"bitcoin"}`},
		{name: "BadDate", path: uuid.NewString(), body: `{"amount":"10","method":"cash","date":"01/03/2026"}`},
		{name: "BadID", path: "not-a-uuid", body: `{"amount":"10","method":"cash"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := httptest.NewRequest(http.MethodPost, "/invoices/"+tt.path+"/payments", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			newRouter(billing.NewMockRepository(ctrl)).ServeHTTP(w, r)

			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestHandler_UpdateStatus_Derived(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := httptest.NewRequest(http.MethodPatch, "/invoices/"+uuid.NewString()+"/status", strings.NewReader(`{"status":"paid"}`))
	w := httptest.NewRecorder()
	newRouter(billing.NewMockRepository(ctrl)).ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateInvoice_Rejected(t *testing.T) {
	clientID := uuid.NewString()

	tests := []struct {
		name string
		body string
	}{
		{name: "RateOverflow", body: `{"client_id":"` + clientID + `","amount_ht":"100","tva_rate":"1000","due_date":"2026-07-01"}`},
		{name: "RateFinerThanStored", body: `{"client_id":"` + clientID + `","amount_ht":"100","tva_rate":"19.125","due_date":"2026-07-01"}`},
		{name: "NegativeRate", body: `{"client_id":"` + clientID + `","amount_ht":"100","tva_rate":"-1","due_date":"2026-07-01"}`},
		{name: "MissingDueDate", body: `{"client_id":"` + clientID + `","amount_ht":"100"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := httptest.NewRequest(http.MethodPost, "/invoices", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			newRouter(billing.NewMockRepository(ctrl)).ServeHTTP(w, r)

			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}
