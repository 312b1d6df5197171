package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
	"github.com/MrJamesThe3rd/dispatch/internal/money"
)

// ErrTariffLocked is returned when a tariff change targets a row that shipments
// already reference; their amounts must stay reproducible.
var ErrTariffLocked = apperr.Validation("tariff is referenced by shipments and cannot change")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=catalog
type Repository interface {
	CreateDestination(ctx context.Context, d *Destination) error
	GetDestination(ctx context.Context, id uuid.UUID) (*Destination, error)
	ListDestinations(ctx context.Context) ([]*Destination, error)
	UpdateDestinationTariff(ctx context.Context, id uuid.UUID, baseTariff decimal.Decimal) error

	CreateServiceType(ctx context.Context, s *ServiceType) error
	GetServiceType(ctx context.Context, id uuid.UUID) (*ServiceType, error)
	ListServiceTypes(ctx context.Context) ([]*ServiceType, error)
	UpdateServiceTariffs(ctx context.Context, id uuid.UUID, weightTariff, volumeTariff decimal.Decimal) error

	BeginImport(ctx context.Context) (ImportTx, error)
}

type ImportTx interface {
	ExistingCodes(ctx context.Context, codes []string) (map[string]*Destination, error)
	CreateDestinations(ctx context.Context, ds []*Destination) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type DestinationParams struct {
	Code       string
	City       string
	State      string
	Country    string
	Zone       Zone
	BaseTariff decimal.Decimal
}

func (p DestinationParams) validate() error {
	if strings.TrimSpace(p.Code) == "" {
		return apperr.Validation("destination code is required")
	}

	if strings.TrimSpace(p.City) == "" {
		return apperr.Validation("destination %s: city is required", p.Code)
	}

	if !p.Zone.Valid() {
		return apperr.Validation("destination %s: unknown zone %q", p.Code, p.Zone)
	}

	if !validTariff(p.BaseTariff) {
		return apperr.Validation("destination %s: base tariff must be >= 0 with at most %d decimals", p.Code, money.Places)
	}

	return nil
}

func (p DestinationParams) destination() *Destination {
	country := p.Country
	if country == "" {
		country = DefaultCountry
	}

	return &Destination{
		Code:       strings.TrimSpace(p.Code),
		City:       strings.TrimSpace(p.City),
		State:      p.State,
		Country:    country,
		Zone:       p.Zone,
		BaseTariff: p.BaseTariff,
		IsActive:   true,
	}
}

type ServiceTypeParams struct {
	Code             string
	Name             string
	Kind             ServiceKind
	Description      string
	WeightTariff     decimal.Decimal
	VolumeTariff     decimal.Decimal
	DeliveryTimeDays int
}

// validTariff holds a tariff to the stored scale.
func validTariff(d decimal.Decimal) bool {
	return !d.IsNegative() && money.WithinScale(d, money.Places)
}

func (p ServiceTypeParams) validate() error {
	if strings.TrimSpace(p.Code) == "" || strings.TrimSpace(p.Name) == "" {
		return apperr.Validation("service type code and name are required")
	}

	if !p.Kind.Valid() {
		return apperr.Validation("service type %s: unknown type %q", p.Code, p.Kind)
	}

	if !validTariff(p.WeightTariff) || !validTariff(p.VolumeTariff) {
		return apperr.Validation("service type %s: tariffs must be >= 0 with at most %d decimals", p.Code, money.Places)
	}

	if p.DeliveryTimeDays < 0 {
		return apperr.Validation("service type %s: delivery time must be >= 0", p.Code)
	}

	return nil
}

func (s *Service) CreateDestination(ctx context.Context, params DestinationParams) (*Destination, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	d := params.destination()
	if err := s.repo.CreateDestination(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *Service) GetDestination(ctx context.Context, id uuid.UUID) (*Destination, error) {
	return s.repo.GetDestination(ctx, id)
}

func (s *Service) ListDestinations(ctx context.Context) ([]*Destination, error) {
	return s.repo.ListDestinations(ctx)
}

func (s *Service) UpdateDestinationTariff(ctx context.Context, id uuid.UUID, baseTariff decimal.Decimal) error {
	if !validTariff(baseTariff) {
		return apperr.Validation("base tariff must be >= 0 with at most %d decimals", money.Places)
	}

	return s.repo.UpdateDestinationTariff(ctx, id, baseTariff)
}

func (s *Service) CreateServiceType(ctx context.Context, params ServiceTypeParams) (*ServiceType, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	st := &ServiceType{
		Code:             strings.TrimSpace(params.Code),
		Name:             strings.TrimSpace(params.Name),
		Kind:             params.Kind,
		Description:      params.Description,
		WeightTariff:     params.WeightTariff,
		VolumeTariff:     params.VolumeTariff,
		DeliveryTimeDays: params.DeliveryTimeDays,
		IsActive:         true,
	}
	if err := s.repo.CreateServiceType(ctx, st); err != nil {
		return nil, err
	}

	return st, nil
}

func (s *Service) GetServiceType(ctx context.Context, id uuid.UUID) (*ServiceType, error) {
	return s.repo.GetServiceType(ctx, id)
}

func (s *Service) ListServiceTypes(ctx context.Context) ([]*ServiceType, error) {
	return s.repo.ListServiceTypes(ctx)
}

func (s *Service) UpdateServiceTariffs(ctx context.Context, id uuid.UUID, weightTariff, volumeTariff decimal.Decimal) error {
	if !validTariff(weightTariff) || !validTariff(volumeTariff) {
		return apperr.Validation("tariffs must be >= 0 with at most %d decimals", money.Places)
	}

	return s.repo.UpdateServiceTariffs(ctx, id, weightTariff, volumeTariff)
}

type ImportResult struct {
	Created   []*Destination
	Conflicts []Conflict
}

// Conflict pairs an incoming row with the destination already holding its code.
type Conflict struct {
	Incoming DestinationParams
	Existing *Destination
}

// ImportDestinations creates every row in one transaction. When any code is
// already taken nothing is written and the clashes are returned instead.
func (s *Service) ImportDestinations(ctx context.Context, params []DestinationParams) (*ImportResult, error) {
	if len(params) == 0 {
		return &ImportResult{}, nil
	}

	codes := make([]string, 0, len(params))
	seen := make(map[string]struct{}, len(params))

	for _, p := range params {
		if err := p.validate(); err != nil {
			return nil, err
		}

		code := strings.TrimSpace(p.Code)
		if _, dup := seen[code]; dup {
			return nil, apperr.Validation("destination code %s appears twice in the import", code)
		}

		seen[code] = struct{}{}
		codes = append(codes, code)
	}

	itx, err := s.repo.BeginImport(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin import: %w", err)
	}
	defer itx.Rollback()

	existing, err := itx.ExistingCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("find existing codes: %w", err)
	}

	var conflicts []Conflict

	for _, p := range params {
		if d, found := existing[strings.TrimSpace(p.Code)]; found {
			conflicts = append(conflicts, Conflict{Incoming: p, Existing: d})
		}
	}

	if len(conflicts) > 0 {
		return &ImportResult{Conflicts: conflicts}, nil
	}

	ds := make([]*Destination, len(params))
	for i, p := range params {
		ds[i] = p.destination()
	}

	if err := itx.CreateDestinations(ctx, ds); err != nil {
		return nil, fmt.Errorf("create destinations: %w", err)
	}

	if err := itx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return &ImportResult{Created: ds}, nil
}
