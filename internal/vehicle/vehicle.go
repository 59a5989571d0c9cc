package vehicle

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("vehicle not found")

// Status is the availability of a vehicle. It is a cached value: the
// lifecycle coordinator derives it from active reservations and active
// maintenance records and is the only writer.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusReserved    Status = "reserved"
	StatusMaintenance Status = "maintenance"
)

// Vehicle is a rentable vehicle. Only the fields the reservation and
// contract core needs are modeled here; fleet management owns the rest.
type Vehicle struct {
	ID          uuid.UUID
	Brand       string
	Model       string
	Year        int
	Color       string
	Plate       string
	PricePerDay int64 // cents
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Maintenance is a maintenance record owned by the external maintenance
// subsystem. The core reads these to arbitrate availability.
type Maintenance struct {
	ID          uuid.UUID
	VehicleID   uuid.UUID
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	Active      bool
}
