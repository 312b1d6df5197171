package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/catalog"
)

func TestService_CreateDestination(t *testing.T) {
	type args struct {
		params catalog.DestinationParams
	}

	type testCase struct {
		name        string
		args        args
		setupMock   func(m *catalog.MockRepository)
		wantCountry string
		wantErr     error
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{params: catalog.DestinationParams{
				Code:       "ORN",
				City:       "Oran",
				Zone:       catalog.ZoneNational,
				BaseTariff: decimal.NewFromInt(500),
			}},
			setupMock: func(m *catalog.MockRepository) {
				m.EXPECT().
					CreateDestination(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, d *catalog.Destination) error {
						d.ID = uuid.New()
						return nil
					})
			},
			wantCountry: catalog.DefaultCountry,
		},
		{
			name: "NegativeTariff",
			args: args{params: catalog.DestinationParams{
				Code:       "ORN",
				City:       "Oran",
				Zone:       catalog.ZoneNational,
				BaseTariff: decimal.NewFromInt(-1),
			}},
			wantErr: apperr.ErrValidation,
		},
		{
			name: "TariffFinerThanCents",
			args: args{params: catalog.DestinationParams{
				Code:       "ORN",
				City:       "Oran",
				Zone:       catalog.ZoneNational,
				BaseTariff: decimal.RequireFromString("500.005"),
			}},
			wantErr: apperr.ErrValidation,
		},
		{
			name: "UnknownZone",
			args: args{params: catalog.DestinationParams{
				Code:       "ORN",
				City:       "Oran",
				Zone:       catalog.Zone("orbital"),
				BaseTariff: decimal.NewFromInt(1),
			}},
			wantErr: apperr.ErrValidation,
		},
		{
			name: "RepoError",
			args: args{params: catalog.DestinationParams{
				Code:       "ALG",
				City:       "Alger",
				Country:    "Algeria",
				Zone:       catalog.ZoneLocal,
				BaseTariff: decimal.NewFromInt(300),
			}},
			setupMock: func(m *catalog.MockRepository) {
				m.EXPECT().CreateDestination(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := catalog.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := catalog.NewService(repo)
			got, err := svc.CreateDestination(context.Background(), tt.args.params)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				if errors.Is(tt.wantErr, apperr.ErrValidation) {
					assert.ErrorIs(t, err, apperr.ErrValidation)
				}

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.Equal(t, tt.wantCountry, got.Country)
			assert.True(t, got.IsActive)
		})
	}
}

func TestService_CreateServiceType_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := catalog.NewService(catalog.NewMockRepository(ctrl))

	_, err := svc.CreateServiceType(context.Background(), catalog.ServiceTypeParams{
		Code:         "EXP",
		Name:         "Express",
		Kind:         catalog.ServiceExpress,
		WeightTariff: decimal.NewFromInt(-20),
		VolumeTariff: decimal.NewFromInt(50),
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestService_UpdateTariffs_Scale(t *testing.T) {
	type args struct {
		weight string
		volume string
	}

	type testCase struct {
		name    string
		args    args
		wantErr bool
	}

	tests := []testCase{
		{name: "Cents", args: args{weight: "20.50", volume: "50"}},
		{name: "WeightFinerThanCents", args: args{weight: "20.505", volume: "50"}, wantErr: true},
		{name: "VolumeFinerThanCents", args: args{weight: "20", volume: "49.999"}, wantErr: true},
		{name: "Negative", args: args{weight: "-1", volume: "50"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := catalog.NewMockRepository(ctrl)
			svc := catalog.NewService(repo)
			id := uuid.New()

			weight := decimal.RequireFromString(tt.args.weight)
			volume := decimal.RequireFromString(tt.args.volume)

			if !tt.wantErr {
				repo.EXPECT().UpdateServiceTariffs(gomock.Any(), id, weight, volume).Return(nil)
			}

			err := svc.UpdateServiceTariffs(context.Background(), id, weight, volume)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrValidation)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestService_UpdateDestinationTariff_Locked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := catalog.NewMockRepository(ctrl)
	svc := catalog.NewService(repo)
	id := uuid.New()

	repo.EXPECT().UpdateDestinationTariff(gomock.Any(), id, decimal.NewFromInt(650)).Return(catalog.ErrTariffLocked)

	err := svc.UpdateDestinationTariff(context.Background(), id, decimal.NewFromInt(650))
	assert.ErrorIs(t, err, catalog.ErrTariffLocked)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestService_ImportDestinations_NoConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := catalog.NewMockRepository(ctrl)
	itx := catalog.NewMockImportTx(ctrl)
	svc := catalog.NewService(repo)

	params := []catalog.DestinationParams{
		{Code: "ALG", City: "Alger", Zone: catalog.ZoneLocal, BaseTariff: decimal.NewFromInt(300)},
		{Code: "ORN", City: "Oran", Zone: catalog.ZoneNational, BaseTariff: decimal.NewFromInt(500)},
	}

	repo.EXPECT().BeginImport(gomock.Any()).Return(itx, nil)
	itx.EXPECT().ExistingCodes(gomock.Any(), []string{"ALG", "ORN"}).Return(map[string]*catalog.Destination{}, nil)
	itx.EXPECT().CreateDestinations(gomock.Any(), gomock.Len(2)).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportDestinations(context.Background(), params)
	require.NoError(t, err)
	assert.Len(t, result.Created, 2)
	assert.Empty(t, result.Conflicts)
	assert.Equal(t, catalog.DefaultCountry, result.Created[1].Country)
}

func TestService_ImportDestinations_WithConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := catalog.NewMockRepository(ctrl)
	itx := catalog.NewMockImportTx(ctrl)
	svc := catalog.NewService(repo)

	params := []catalog.DestinationParams{
		{Code: "ALG", City: "Alger", Zone: catalog.ZoneLocal, BaseTariff: decimal.NewFromInt(300)},
		{Code: "ORN", City: "Oran", Zone: catalog.ZoneNational, BaseTariff: decimal.NewFromInt(500)},
	}

	existing := &catalog.Destination{ID: uuid.New(), Code: "ORN", City: "Oran"}

	repo.EXPECT().BeginImport(gomock.Any()).Return(itx, nil)
	itx.EXPECT().ExistingCodes(gomock.Any(), gomock.Any()).Return(map[string]*catalog.Destination{"ORN": existing}, nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportDestinations(context.Background(), params)
	require.NoError(t, err)
	assert.Empty(t, result.Created)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, params[1], result.Conflicts[0].Incoming)
	assert.Equal(t, existing, result.Conflicts[0].Existing)
}

func TestService_ImportDestinations_DuplicateCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := catalog.NewService(catalog.NewMockRepository(ctrl))

	_, err := svc.ImportDestinations(context.Background(), []catalog.DestinationParams{
		{Code: "ALG", City: "Alger", Zone: catalog.ZoneLocal, BaseTariff: decimal.NewFromInt(300)},
		{Code: "ALG", City: "Alger", Zone: catalog.ZoneLocal, BaseTariff: decimal.NewFromInt(310)},
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestService_ImportDestinations_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := catalog.NewService(catalog.NewMockRepository(ctrl))

	result, err := svc.ImportDestinations(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Created)
	assert.Empty(t, result.Conflicts)
}
