package catalog_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/dispatch/internal/catalog"
	"github.com/MrJamesThe3rd/dispatch/internal/http/auth"
	catalogHandler "github.com/MrJamesThe3rd/dispatch/internal/http/catalog"
	"github.com/MrJamesThe3rd/dispatch/internal/importer"
)

const grid = "code;city;base_tariff;zone\nALG;Alger;300,00;local\nORN;Oran;450,00;\n"

func uploadRequest(t *testing.T, content string, dryRun bool, role auth.Role) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if content != "" {
		fw, err := mw.CreateFormFile("file", "grid.csv")
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}

	if dryRun {
		require.NoError(t, mw.WriteField("dry_run", "true"))
	}

	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/catalog/destinations/import", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	return r.WithContext(auth.WithPrincipal(r.Context(), auth.Principal{Subject: uuid.New(), Role: role}))
}

func TestHandler_ImportDestinations(t *testing.T) {
	type args struct {
		content string
		dryRun  bool
		role    auth.Role
	}

	type testCase struct {
		name       string
		args       args
		mock       func(repo *catalog.MockRepository, itx *catalog.MockImportTx)
		wantStatus int
		check      func(t *testing.T, body map[string]any)
	}

	tests := []testCase{
		{
			name: "Created",
			args: args{content: grid, role: auth.RoleManager},
			mock: func(repo *catalog.MockRepository, itx *catalog.MockImportTx) {
				repo.EXPECT().BeginImport(gomock.Any()).Return(itx, nil)
				itx.EXPECT().ExistingCodes(gomock.Any(), []string{"ALG", "ORN"}).Return(map[string]*catalog.Destination{}, nil)
				itx.EXPECT().CreateDestinations(gomock.Any(), gomock.Len(2)).Return(nil)
				itx.EXPECT().Commit().Return(nil)
				itx.EXPECT().Rollback().Return(nil)
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "english", body["profile"])
				assert.Len(t, body["created"], 2)
			},
		},
		{
			name:       "DryRun",
			args:       args{content: grid, dryRun: true, role: auth.RoleManager},
			mock:       func(repo *catalog.MockRepository, itx *catalog.MockImportTx) {},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Len(t, body["parsed"], 2)
				assert.Nil(t, body["created"])
			},
		},
		{
			name:       "RowErrors",
			args:       args{content: "code;city;base_tariff\nALG;;300\nORN;Oran;abc\n", role: auth.RoleManager},
			mock:       func(repo *catalog.MockRepository, itx *catalog.MockImportTx) {},
			wantStatus: http.StatusUnprocessableEntity,
			check: func(t *testing.T, body map[string]any) {
				assert.Len(t, body["row_errors"], 2)
			},
		},
		{
			name: "Conflict",
			args: args{content: grid, role: auth.RoleManager},
			mock: func(repo *catalog.MockRepository, itx *catalog.MockImportTx) {
				repo.EXPECT().BeginImport(gomock.Any()).Return(itx, nil)
				itx.EXPECT().ExistingCodes(gomock.Any(), gomock.Any()).Return(map[string]*catalog.Destination{
					"ORN": {ID: uuid.New(), Code: "ORN", City: "Oran"},
				}, nil)
				itx.EXPECT().Rollback().Return(nil)
			},
			wantStatus: http.StatusConflict,
			check: func(t *testing.T, body map[string]any) {
				assert.Len(t, body["conflicts"], 1)
			},
		},
		{
			name:       "NoHeader",
			args:       args{content: "foo;bar\n1;2\n", role: auth.RoleManager},
			mock:       func(repo *catalog.MockRepository, itx *catalog.MockImportTx) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "MissingFile",
			args:       args{role: auth.RoleManager},
			mock:       func(repo *catalog.MockRepository, itx *catalog.MockImportTx) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "AgentForbidden",
			args:       args{content: grid, role: auth.RoleAgent},
			mock:       func(repo *catalog.MockRepository, itx *catalog.MockImportTx) {},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := catalog.NewMockRepository(ctrl)
			itx := catalog.NewMockImportTx(ctrl)
			tt.mock(repo, itx)

			router := chi.NewRouter()
			router.Route("/catalog", catalogHandler.NewHandler(catalog.NewService(repo), importer.NewParser()).Routes)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, uploadRequest(t, tt.args.content, tt.args.dryRun, tt.args.role))

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			if tt.check == nil {
				return
			}

			var body map[string]any
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			tt.check(t, body)
		})
	}
}
