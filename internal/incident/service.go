package incident

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/dispatch/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=incident
type Repository interface {
	CreateIncident(ctx context.Context, i *Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*Incident, error)
	ListIncidents(ctx context.Context, filter IncidentFilter) ([]*Incident, error)
	UpdateIncident(ctx context.Context, i *Incident) error

	CreateClaim(ctx context.Context, c *Claim) error
	GetClaim(ctx context.Context, id uuid.UUID) (*Claim, error)
	ListClaims(ctx context.Context, filter ClaimFilter) ([]*Claim, error)
	UpdateClaim(ctx context.Context, c *Claim) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ReportParams struct {
	Type        Type
	ShipmentID  *uuid.UUID
	TourID      *uuid.UUID
	Description string
}

func (s *Service) Report(ctx context.Context, params ReportParams) (*Incident, error) {
	if !params.Type.Valid() {
		return nil, apperr.Validation("unknown incident type %q", params.Type)
	}

	desc := strings.TrimSpace(params.Description)
	if desc == "" {
		return nil, apperr.Validation("incident description is required")
	}

	i := &Incident{
		Type:        params.Type,
		ShipmentID:  params.ShipmentID,
		TourID:      params.TourID,
		Description: desc,
		Status:      StatusReported,
	}
	if err := s.repo.CreateIncident(ctx, i); err != nil {
		return nil, err
	}

	return i, nil
}

// SetIncidentStatus moves an incident along. Resolving or closing stamps the
// resolution date once.
func (s *Service) SetIncidentStatus(ctx context.Context, id uuid.UUID, status Status, notes string) (*Incident, error) {
	if !status.Valid() {
		return nil, apperr.Validation("unknown incident status %q", status)
	}

	i, err := s.repo.GetIncident(ctx, id)
	if err != nil {
		return nil, err
	}

	i.Status = status
	if notes != "" {
		i.ResolutionNotes = notes
	}

	switch {
	case status.final() && i.ResolvedAt == nil:
		now := time.Now()
		i.ResolvedAt = &now
	case !status.final():
		i.ResolvedAt = nil
	}

	if err := s.repo.UpdateIncident(ctx, i); err != nil {
		return nil, err
	}

	return i, nil
}

func (s *Service) GetIncident(ctx context.Context, id uuid.UUID) (*Incident, error) {
	return s.repo.GetIncident(ctx, id)
}

func (s *Service) ListIncidents(ctx context.Context, filter IncidentFilter) ([]*Incident, error) {
	return s.repo.ListIncidents(ctx, filter)
}

type FileClaimParams struct {
	ClientID    uuid.UUID
	ShipmentID  *uuid.UUID
	InvoiceID   *uuid.UUID
	Subject     string
	Description string
	Priority    Priority
}

func (s *Service) FileClaim(ctx context.Context, params FileClaimParams) (*Claim, error) {
	if params.ClientID == uuid.Nil {
		return nil, apperr.Validation("client is required")
	}

	subject := strings.TrimSpace(params.Subject)
	desc := strings.TrimSpace(params.Description)

	if subject == "" || desc == "" {
		return nil, apperr.Validation("claim subject and description are required")
	}

	priority := params.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	if !priority.Valid() {
		return nil, apperr.Validation("unknown claim priority %q", priority)
	}

	c := &Claim{
		ClientID:    params.ClientID,
		ShipmentID:  params.ShipmentID,
		InvoiceID:   params.InvoiceID,
		Subject:     subject,
		Description: desc,
		Status:      ClaimOpen,
		Priority:    priority,
	}
	if err := s.repo.CreateClaim(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// SetClaimStatus records the handling of a claim. A resolution text is
// required once the claim is resolved or rejected.
func (s *Service) SetClaimStatus(ctx context.Context, id uuid.UUID, status ClaimStatus, resolution string) (*Claim, error) {
	if !status.Valid() {
		return nil, apperr.Validation("unknown claim status %q", status)
	}

	c, err := s.repo.GetClaim(ctx, id)
	if err != nil {
		return nil, err
	}

	if resolution != "" {
		c.Resolution = resolution
	}

	if (status == ClaimResolved || status == ClaimRejected) && strings.TrimSpace(c.Resolution) == "" {
		return nil, apperr.Validation("claim %s: a resolution is required", c.Number)
	}

	c.Status = status

	switch {
	case status.final() && c.ResolvedAt == nil:
		now := time.Now()
		c.ResolvedAt = &now
	case !status.final():
		c.ResolvedAt = nil
	}

	if err := s.repo.UpdateClaim(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) GetClaim(ctx context.Context, id uuid.UUID) (*Claim, error) {
	return s.repo.GetClaim(ctx, id)
}

func (s *Service) ListClaims(ctx context.Context, filter ClaimFilter) ([]*Claim, error) {
	return s.repo.ListClaims(ctx, filter)
}
