// Package fleet holds the drivers and vehicles delivery tours are assigned to.
package fleet

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityOnTour    Availability = "on_tour"
	AvailabilityOffDuty   Availability = "off_duty"
	AvailabilitySick      Availability = "sick"
)

func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityOnTour, AvailabilityOffDuty, AvailabilitySick:
		return true
	}

	return false
}

type Driver struct {
	ID            uuid.UUID
	Number        string
	FirstName     string
	LastName      string
	Phone         string
	LicenseNumber string
	Availability  Availability
	IsActive      bool
	CreatedAt     time.Time
}

func (d *Driver) FullName() string {
	return d.FirstName + " " + d.LastName
}

type VehicleType string

const (
	VehicleVan        VehicleType = "van"
	VehicleTruck      VehicleType = "truck"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleCar        VehicleType = "car"
)

func (t VehicleType) Valid() bool {
	switch t {
	case VehicleVan, VehicleTruck, VehicleMotorcycle, VehicleCar:
		return true
	}

	return false
}

type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleInUse       VehicleStatus = "in_use"
	VehicleMaintenance VehicleStatus = "maintenance"
)

type Vehicle struct {
	ID                 uuid.UUID
	RegistrationNumber string
	Type               VehicleType
	Brand              string
	Model              string
	CapacityKg         decimal.Decimal
	// CapacityM3 is unknown for some vehicles.
	CapacityM3 *decimal.Decimal
	Status     VehicleStatus
	IsActive   bool
	CreatedAt  time.Time
}
