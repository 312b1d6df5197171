package incident_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/incident"
)

func TestService_Report(t *testing.T) {
	type testCase struct {
		name    string
		params  incident.ReportParams
		wantErr error
	}

	shipmentID := uuid.New()

	tests := []testCase{
		{name: "Success", params: incident.ReportParams{Type: incident.TypeDamage, ShipmentID: &shipmentID, Description: "Crushed box"}},
		{name: "UnknownType", params: incident.ReportParams{Type: "alien", Description: "?"}, wantErr: apperr.ErrValidation},
		{name: "BlankDescription", params: incident.ReportParams{Type: incident.TypeDelay, Description: "  "}, wantErr: apperr.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := incident.NewMockRepository(ctrl)

			if tt.wantErr == nil {
				repo.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, i *incident.Incident) error {
						i.Number = "INC000001"
						return nil
					})
			}

			got, err := incident.NewService(repo).Report(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "INC000001", got.Number)
			assert.Equal(t, incident.StatusReported, got.Status)
			assert.Equal(t, &shipmentID, got.ShipmentID)
		})
	}
}

func TestService_SetIncidentStatus_StampsResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := incident.NewMockRepository(ctrl)
	svc := incident.NewService(repo)

	i := &incident.Incident{ID: uuid.New(), Number: "INC000004", Status: incident.StatusInvestigating}

	repo.EXPECT().GetIncident(gomock.Any(), i.ID).Return(i, nil)
	repo.EXPECT().UpdateIncident(gomock.Any(), i).Return(nil)

	got, err := svc.SetIncidentStatus(context.Background(), i.ID, incident.StatusResolved, "Parcel found at hub")
	require.NoError(t, err)
	assert.Equal(t, incident.StatusResolved, got.Status)
	assert.NotNil(t, got.ResolvedAt)
	assert.Equal(t, "Parcel found at hub", got.ResolutionNotes)
}

func TestService_FileClaim_DefaultsPriority(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := incident.NewMockRepository(ctrl)
	repo.EXPECT().CreateClaim(gomock.Any(), gomock.Any()).Return(nil)

	got, err := incident.NewService(repo).FileClaim(context.Background(), incident.FileClaimParams{
		ClientID:    uuid.New(),
		Subject:     "Late delivery",
		Description: "Arrived two days late",
	})
	require.NoError(t, err)
	assert.Equal(t, incident.PriorityMedium, got.Priority)
	assert.Equal(t, incident.ClaimOpen, got.Status)
}

func TestService_FileClaim_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := incident.NewService(incident.NewMockRepository(ctrl))

	_, err := svc.FileClaim(context.Background(), incident.FileClaimParams{Subject: "x", Description: "y"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.FileClaim(context.Background(), incident.FileClaimParams{
		ClientID: uuid.New(), Subject: "x", Description: "y", Priority: "whenever",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestService_SetClaimStatus(t *testing.T) {
	type testCase struct {
		name       string
		status     incident.ClaimStatus
		resolution string
		wantErr    error
	}

	tests := []testCase{
		{name: "ResolveWithText", status: incident.ClaimResolved, resolution: "Refund issued"},
		{name: "RejectWithoutText", status: incident.ClaimRejected, wantErr: apperr.ErrValidation},
		{name: "InProgress", status: incident.ClaimInProgress},
		{name: "Unknown", status: "archived", wantErr: apperr.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := incident.NewMockRepository(ctrl)
			c := &incident.Claim{ID: uuid.New(), Number: "REC000002", Status: incident.ClaimOpen}

			if tt.status.Valid() {
				repo.EXPECT().GetClaim(gomock.Any(), c.ID).Return(c, nil)
			}

			if tt.wantErr == nil {
				repo.EXPECT().UpdateClaim(gomock.Any(), c).Return(nil)
			}

			got, err := incident.NewService(repo).SetClaimStatus(context.Background(), c.ID, tt.status, tt.resolution)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.status == incident.ClaimResolved, got.ResolvedAt != nil)
		})
	}
}
