package fleet

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=fleet
type Repository interface {
	CreateDriver(ctx context.Context, d *Driver) error
	GetDriver(ctx context.Context, id uuid.UUID) (*Driver, error)
	ListDrivers(ctx context.Context, availability *Availability) ([]*Driver, error)
	SetDriverAvailability(ctx context.Context, id uuid.UUID, availability Availability) error

	CreateVehicle(ctx context.Context, v *Vehicle) error
	ListVehicles(ctx context.Context) ([]*Vehicle, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type DriverParams struct {
	FirstName     string
	LastName      string
	Phone         string
	LicenseNumber string
}

// CreateDriver registers an available driver. The DRV number is allocated by
// the repository.
func (s *Service) CreateDriver(ctx context.Context, params DriverParams) (*Driver, error) {
	first, last := strings.TrimSpace(params.FirstName), strings.TrimSpace(params.LastName)
	if first == "" || last == "" {
		return nil, apperr.Validation("driver first and last name are required")
	}

	d := &Driver{
		FirstName:     first,
		LastName:      last,
		Phone:         strings.TrimSpace(params.Phone),
		LicenseNumber: strings.ToUpper(strings.TrimSpace(params.LicenseNumber)),
		Availability:  AvailabilityAvailable,
		IsActive:      true,
	}
	if err := s.repo.CreateDriver(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *Service) GetDriver(ctx context.Context, id uuid.UUID) (*Driver, error) {
	return s.repo.GetDriver(ctx, id)
}

func (s *Service) ListDrivers(ctx context.Context, availability *Availability) ([]*Driver, error) {
	if availability != nil && !availability.Valid() {
		return nil, apperr.Validation("unknown availability %q", *availability)
	}

	return s.repo.ListDrivers(ctx, availability)
}

func (s *Service) SetDriverAvailability(ctx context.Context, id uuid.UUID, availability Availability) error {
	if !availability.Valid() {
		return apperr.Validation("unknown availability %q", availability)
	}

	return s.repo.SetDriverAvailability(ctx, id, availability)
}

type VehicleParams struct {
	RegistrationNumber string
	Type               VehicleType
	Brand              string
	Model              string
	CapacityKg         decimal.Decimal
	CapacityM3         *decimal.Decimal
}

func (s *Service) CreateVehicle(ctx context.Context, params VehicleParams) (*Vehicle, error) {
	reg := strings.ToUpper(strings.TrimSpace(params.RegistrationNumber))
	if reg == "" {
		return nil, apperr.Validation("registration number is required")
	}

	if !params.Type.Valid() {
		return nil, apperr.Validation("vehicle %s: unknown type %q", reg, params.Type)
	}

	if params.CapacityKg.IsNegative() || (params.CapacityM3 != nil && params.CapacityM3.IsNegative()) {
		return nil, apperr.Validation("vehicle %s: capacity must be >= 0", reg)
	}

	v := &Vehicle{
		RegistrationNumber: reg,
		Type:               params.Type,
		Brand:              params.Brand,
		Model:              params.Model,
		CapacityKg:         params.CapacityKg,
		CapacityM3:         params.CapacityM3,
		Status:             VehicleAvailable,
		IsActive:           true,
	}
	if err := s.repo.CreateVehicle(ctx, v); err != nil {
		return nil, err
	}

	return v, nil
}

func (s *Service) ListVehicles(ctx context.Context) ([]*Vehicle, error) {
	return s.repo.ListVehicles(ctx)
}
