package client

import (
	"context"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
)

const defaultCountry = "Algeria"

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=client
type Repository interface {
	CreateClient(ctx context.Context, c *Client) error
	GetClient(ctx context.Context, id uuid.UUID) (*Client, error)
	ListClients(ctx context.Context) ([]*Client, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name       string
	Email      string
	Phone      string
	Address    string
	City       string
	PostalCode string
	Country    string
	Notes      string
}

// Create registers a client. The CLT number is allocated by the repository in
// the insert transaction.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Client, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, apperr.Validation("client name is required")
	}

	addr, err := mail.ParseAddress(strings.TrimSpace(params.Email))
	if err != nil {
		return nil, apperr.Validation("invalid client email %q", params.Email)
	}

	country := params.Country
	if country == "" {
		country = defaultCountry
	}

	c := &Client{
		Name:       name,
		Email:      addr.Address,
		Phone:      params.Phone,
		Address:    params.Address,
		City:       params.City,
		PostalCode: params.PostalCode,
		Country:    country,
		IsActive:   true,
		Notes:      params.Notes,
	}
	if err := s.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Client, error) {
	return s.repo.GetClient(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Client, error) {
	return s.repo.ListClients(ctx)
}
