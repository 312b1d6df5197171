package client_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/client"
)

func TestService_Create(t *testing.T) {
	type args struct {
		params client.CreateParams
	}

	type testCase struct {
		name        string
		args        args
		setupMock   func(m *client.MockRepository)
		wantEmail   string
		wantCountry string
		wantErr     error
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{params: client.CreateParams{Name: "  Sonatrach Logistique ", Email: "Compta <compta@example.dz>"}},
			setupMock: func(m *client.MockRepository) {
				m.EXPECT().CreateClient(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *client.Client) error {
						c.ID = uuid.New()
						c.Number = "CLT00001"
						return nil
					})
			},
			wantEmail:   "compta@example.dz",
			wantCountry: "Algeria",
		},
		{
			name:    "MissingName",
			args:    args{params: client.CreateParams{Email: "a@example.dz"}},
			wantErr: apperr.ErrValidation,
		},
		{
			name:    "InvalidEmail",
			args:    args{params: client.CreateParams{Name: "Acme", Email: "not-an-email"}},
			wantErr: apperr.ErrValidation,
		},
		{
			name: "RepoError",
			args: args{params: client.CreateParams{Name: "Acme", Email: "a@example.dz", Country: "Tunisia"}},
			setupMock: func(m *client.MockRepository) {
				m.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := client.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := client.NewService(repo).Create(context.Background(), tt.args.params)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Nil(t, got)

				if errors.Is(tt.wantErr, apperr.ErrValidation) {
					assert.ErrorIs(t, err, apperr.ErrValidation)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "CLT00001", got.Number)
			assert.Equal(t, "Sonatrach Logistique", got.Name)
			assert.Equal(t, tt.wantEmail, got.Email)
			assert.Equal(t, tt.wantCountry, got.Country)
			assert.True(t, got.IsActive)
			assert.True(t, got.Balance.IsZero())
		})
	}
}
