package incident

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeDelay     Type = "delay"
	TypeLoss      Type = "loss"
	TypeDamage    Type = "damage"
	TypeTechnical Type = "technical"
	TypeAccident  Type = "accident"
	TypeOther     Type = "other"
)

func (t Type) Valid() bool {
	switch t {
	case TypeDelay, TypeLoss, TypeDamage, TypeTechnical, TypeAccident, TypeOther:
		return true
	}

	return false
}

type Status string

const (
	StatusReported      Status = "reported"
	StatusInvestigating Status = "investigating"
	StatusResolved      Status = "resolved"
	StatusClosed        Status = "closed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusReported, StatusInvestigating, StatusResolved, StatusClosed:
		return true
	}

	return false
}

func (s Status) final() bool {
	return s == StatusResolved || s == StatusClosed
}

type Incident struct {
	ID              uuid.UUID
	Number          string
	Type            Type
	ShipmentID      *uuid.UUID
	TourID          *uuid.UUID
	Description     string
	Status          Status
	ReportedAt      time.Time
	ResolvedAt      *time.Time
	ResolutionNotes string
}

type ClaimStatus string

const (
	ClaimOpen       ClaimStatus = "open"
	ClaimInProgress ClaimStatus = "in_progress"
	ClaimResolved   ClaimStatus = "resolved"
	ClaimRejected   ClaimStatus = "rejected"
	ClaimClosed     ClaimStatus = "closed"
)

func (s ClaimStatus) Valid() bool {
	switch s {
	case ClaimOpen, ClaimInProgress, ClaimResolved, ClaimRejected, ClaimClosed:
		return true
	}

	return false
}

func (s ClaimStatus) final() bool {
	return s == ClaimResolved || s == ClaimRejected || s == ClaimClosed
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}

	return false
}

// Claim is a complaint a client files about a shipment or an invoice.
type Claim struct {
	ID          uuid.UUID
	Number      string
	ClientID    uuid.UUID
	ShipmentID  *uuid.UUID
	InvoiceID   *uuid.UUID
	Subject     string
	Description string
	Status      ClaimStatus
	Priority    Priority
	FiledAt     time.Time
	ResolvedAt  *time.Time
	Resolution  string
}

type IncidentFilter struct {
	Status     *Status
	ShipmentID *uuid.UUID
	TourID     *uuid.UUID
}

type ClaimFilter struct {
	ClientID *uuid.UUID
	Status   *ClaimStatus
}
