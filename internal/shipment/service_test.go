package shipment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/catalog"
	"github.com/MrJamesThe3rd/dispatch/internal/shipment"
)

var (
	oran = &catalog.Destination{
		ID:         uuid.New(),
		Code:       "ORN",
		City:       "Oran",
		BaseTariff: decimal.NewFromInt(500),
	}
	express = &catalog.ServiceType{
		ID:               uuid.New(),
		Code:             "EXP",
		WeightTariff:     decimal.NewFromInt(20),
		VolumeTariff:     decimal.NewFromInt(50),
		DeliveryTimeDays: 2,
	}
)

func TestReprice(t *testing.T) {
	type args struct {
		dest *catalog.Destination
		svc  *catalog.ServiceType
	}

	type testCase struct {
		name string
		args args
		want decimal.Decimal
	}

	previous := decimal.RequireFromString("123.45")

	tests := []testCase{
		{name: "BothPresent", args: args{dest: oran, svc: express}, want: decimal.RequireFromString("585")},
		{name: "MissingDestinationKeepsAmount", args: args{svc: express}, want: previous},
		{name: "MissingServiceKeepsAmount", args: args{dest: oran}, want: previous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh := &shipment.Shipment{
				Weight: decimal.NewFromInt(3),
				Volume: decimal.RequireFromString("0.5"),
				Amount: previous,
			}

			require.NoError(t, shipment.Reprice(sh, tt.args.dest, tt.args.svc))
			assert.True(t, tt.want.Equal(sh.Amount), "got %s", sh.Amount)
		})
	}
}

func TestReprice_FirstSaveWithoutTariffsIsZero(t *testing.T) {
	sh := &shipment.Shipment{Weight: decimal.NewFromInt(3)}

	require.NoError(t, shipment.Reprice(sh, nil, express))
	assert.True(t, sh.Amount.IsZero())
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := shipment.NewMockRepository(ctrl)
	ttx := shipment.NewMockTrackingTx(ctrl)
	svc := shipment.NewService(repo)

	clientID := uuid.New()
	shipmentID := uuid.New()

	repo.EXPECT().BeginTracking(gomock.Any()).Return(ttx, nil)
	ttx.EXPECT().LockTariffs(gomock.Any(), oran.ID, express.ID).Return(oran, express, nil)
	ttx.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sh *shipment.Shipment) error {
			sh.ID = shipmentID
			sh.Number = "EXP0123456789AB"
			return nil
		})
	ttx.EXPECT().AddEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *shipment.TrackingEvent) error {
			assert.Equal(t, shipmentID, e.ShipmentID)
			assert.Equal(t, shipment.StatusPending, e.Status)
			assert.Equal(t, "Oran", e.Location)
			return nil
		})
	ttx.EXPECT().Commit().Return(nil)
	ttx.EXPECT().Rollback().Return(nil)

	got, err := svc.Create(context.Background(), shipment.CreateParams{
		ClientID:      clientID,
		ServiceTypeID: express.ID,
		DestinationID: oran.ID,
		Weight:        decimal.NewFromInt(3),
		Volume:        decimal.RequireFromString("0.5"),
		Recipient:     shipment.Party{Name: "Amine"},
	})
	require.NoError(t, err)
	assert.Equal(t, "585.00", got.Amount.StringFixed(2))
	assert.Equal(t, shipment.StatusPending, got.Status)
	require.NotNil(t, got.EstimatedDelivery)
	assert.True(t, got.EstimatedDelivery.After(time.Now()))
}

func TestService_Create_Errors(t *testing.T) {
	type testCase struct {
		name      string
		params    shipment.CreateParams
		setupMock func(repo *shipment.MockRepository, ttx *shipment.MockTrackingTx)
		wantErr   error
	}

	valid := shipment.CreateParams{
		ClientID:      uuid.New(),
		ServiceTypeID: express.ID,
		DestinationID: oran.ID,
		Weight:        decimal.NewFromInt(1),
		Volume:        decimal.Zero,
		Recipient:     shipment.Party{Name: "Amine"},
	}

	negative := valid
	negative.Weight = decimal.NewFromInt(-2)

	fineWeight := valid
	fineWeight.Weight = decimal.RequireFromString("3.335")

	fineVolume := valid
	fineVolume.Volume = decimal.RequireFromString("0.1255")

	noClient := valid
	noClient.ClientID = uuid.Nil

	tests := []testCase{
		{
			name:    "MissingClient",
			params:  noClient,
			wantErr: apperr.ErrValidation,
		},
		{
			name:    "NegativeWeight",
			params:  negative,
			wantErr: apperr.ErrValidation,
		},
		{
			name:    "WeightFinerThanStored",
			params:  fineWeight,
			wantErr: apperr.ErrValidation,
		},
		{
			name:    "VolumeFinerThanStored",
			params:  fineVolume,
			wantErr: apperr.ErrValidation,
		},
		{
			name:   "UnknownDestination",
			params: valid,
			setupMock: func(repo *shipment.MockRepository, ttx *shipment.MockTrackingTx) {
				repo.EXPECT().BeginTracking(gomock.Any()).Return(ttx, nil)
				ttx.EXPECT().LockTariffs(gomock.Any(), oran.ID, express.ID).Return(nil, nil, apperr.NotFound("destination"))
				ttx.EXPECT().Rollback().Return(nil)
			},
			wantErr: apperr.ErrNotFound,
		},
		{
			name:   "EventFailureRollsBack",
			params: valid,
			setupMock: func(repo *shipment.MockRepository, ttx *shipment.MockTrackingTx) {
				repo.EXPECT().BeginTracking(gomock.Any()).Return(ttx, nil)
				ttx.EXPECT().LockTariffs(gomock.Any(), oran.ID, express.ID).Return(oran, express, nil)
				ttx.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).Return(nil)
				ttx.EXPECT().AddEvent(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
				ttx.EXPECT().Rollback().Return(nil)
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := shipment.NewMockRepository(ctrl)
			ttx := shipment.NewMockTrackingTx(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, ttx)
			}

			_, err := shipment.NewService(repo).Create(context.Background(), tt.params)
			require.Error(t, err)

			if errors.Is(tt.wantErr, apperr.ErrValidation) || errors.Is(tt.wantErr, apperr.ErrNotFound) {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			}
		})
	}
}

func TestService_Update(t *testing.T) {
	type args struct {
		params shipment.UpdateParams
	}

	type testCase struct {
		name       string
		args       args
		wantAmount string
		wantErr    bool
	}

	newWeight := decimal.NewFromInt(3)
	newVolume := decimal.RequireFromString("0.5")
	fineWeight := decimal.RequireFromString("3.335")
	notes := "leave with the neighbour"

	tests := []testCase{
		{
			name:       "Reprices",
			args:       args{params: shipment.UpdateParams{Weight: &newWeight, Volume: &newVolume}},
			wantAmount: "585.00",
		},
		{
			name:       "NotesOnlyKeepsAmount",
			args:       args{params: shipment.UpdateParams{Notes: &notes}},
			wantAmount: "520.00",
		},
		{
			name:    "WeightFinerThanStored",
			args:    args{params: shipment.UpdateParams{Weight: &fineWeight}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := shipment.NewMockRepository(ctrl)
			ttx := shipment.NewMockTrackingTx(ctrl)
			svc := shipment.NewService(repo)

			existing := &shipment.Shipment{
				ID:            uuid.New(),
				Number:        "EXP0123456789AB",
				ServiceTypeID: express.ID,
				DestinationID: oran.ID,
				Weight:        decimal.NewFromInt(1),
				Volume:        decimal.Zero,
				Amount:        decimal.NewFromInt(520),
				Status:        shipment.StatusPending,
			}

			repo.EXPECT().BeginTracking(gomock.Any()).Return(ttx, nil)
			ttx.EXPECT().LockShipment(gomock.Any(), existing.ID).Return(existing, nil)
			ttx.EXPECT().Rollback().Return(nil)

			if !tt.wantErr {
				ttx.EXPECT().LockTariffs(gomock.Any(), oran.ID, express.ID).Return(oran, express, nil)
				ttx.EXPECT().UpdateShipment(gomock.Any(), existing).Return(nil)
				ttx.EXPECT().Commit().Return(nil)
			}

			got, err := svc.Update(context.Background(), existing.ID, tt.args.params)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrValidation)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, got.Amount.StringFixed(2))
		})
	}
}

func TestService_Update_DeliveredIsFrozen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := shipment.NewMockRepository(ctrl)
	ttx := shipment.NewMockTrackingTx(ctrl)
	svc := shipment.NewService(repo)

	id := uuid.New()
	repo.EXPECT().BeginTracking(gomock.Any()).Return(ttx, nil)
	ttx.EXPECT().LockShipment(gomock.Any(), id).Return(&shipment.Shipment{ID: id, Status: shipment.StatusDelivered}, nil)
	ttx.EXPECT().Rollback().Return(nil)

	_, err := svc.Update(context.Background(), id, shipment.UpdateParams{})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestService_AddEvent(t *testing.T) {
	type testCase struct {
		name          string
		status        shipment.Status
		wantDelivered bool
	}

	tests := []testCase{
		{name: "Delivered", status: shipment.StatusDelivered, wantDelivered: true},
		{name: "AtSortingCenter", status: shipment.StatusAtSortingCenter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := shipment.NewMockRepository(ctrl)
			ttx := shipment.NewMockTrackingTx(ctrl)
			svc := shipment.NewService(repo)

			id := uuid.New()

			repo.EXPECT().BeginTracking(gomock.Any()).Return(ttx, nil)
			ttx.EXPECT().LockShipment(gomock.Any(), id).Return(&shipment.Shipment{ID: id, Status: shipment.StatusInTransit}, nil)
			ttx.EXPECT().UpdateStatus(gomock.Any(), id, tt.status, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, _ shipment.Status, at *time.Time) error {
					assert.Equal(t, tt.wantDelivered, at != nil)
					return nil
				})
			ttx.EXPECT().AddEvent(gomock.Any(), gomock.Any()).Return(nil)
			ttx.EXPECT().Commit().Return(nil)
			ttx.EXPECT().Rollback().Return(nil)

			e, err := svc.AddEvent(context.Background(), shipment.EventParams{
				ShipmentID: id,
				Status:     tt.status,
				Location:   "Oran hub",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.status, e.Status)
			assert.Equal(t, id, e.ShipmentID)
		})
	}
}

func TestService_AddEvent_UnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := shipment.NewService(shipment.NewMockRepository(ctrl))

	_, err := svc.AddEvent(context.Background(), shipment.EventParams{ShipmentID: uuid.New(), Status: "lost_in_space"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestService_Track(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := shipment.NewMockRepository(ctrl)
	svc := shipment.NewService(repo)

	sh := &shipment.Shipment{ID: uuid.New(), Number: "EXP0123456789AB"}
	events := []*shipment.TrackingEvent{
		{ShipmentID: sh.ID, Status: shipment.StatusInTransit},
		{ShipmentID: sh.ID, Status: shipment.StatusPending},
	}

	repo.EXPECT().GetShipmentByNumber(gomock.Any(), "EXP0123456789AB").Return(sh, nil)
	repo.EXPECT().ListEvents(gomock.Any(), sh.ID).Return(events, nil)

	got, err := svc.Track(context.Background(), " exp0123456789ab ")
	require.NoError(t, err)
	assert.Equal(t, sh, got.Shipment)
	assert.Len(t, got.Events, 2)
}
