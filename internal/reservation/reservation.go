package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/lifecycle"
)

var (
	ErrNotFound        = errors.New("reservation not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrInvalidRange    = errors.New("return date before start date")
	ErrInvalidPrice    = errors.New("price per day must be positive")
	ErrInvalidStatus   = errors.New("invalid reservation status")
	ErrConflict        = errors.New("client already has a pending or active reservation for this vehicle")
	ErrContractExists  = errors.New("a contract still references this reservation")
)

// Status represents the lifecycle state of a reservation.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// Transitions is the legal reservation state machine: forward only, plus a
// cancel path. Completed and canceled are terminal.
var Transitions = lifecycle.NewMachine(map[Status][]Status{
	StatusPending: {StatusActive, StatusCanceled},
	StatusActive:  {StatusCompleted, StatusCanceled},
})

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusCompleted, StatusCanceled:
		return true
	}

	return false
}

// Reservation is a booking of one vehicle by one client for a date range.
type Reservation struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	VehicleID   uuid.UUID
	StartDate   time.Time // date-only, midnight UTC
	ReturnDate  time.Time // date-only, midnight UTC
	Status      Status
	PricePerDay int64 // cents
	Total       int64 // cents, derived
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// RentalDays returns the billable days between two dates, compared at
// midnight. A same-day rental counts as one day.
func RentalDays(start, ret time.Time) int64 {
	days := int64(atMidnight(ret).Sub(atMidnight(start)).Hours() / 24)
	if days < 1 {
		days = 1
	}

	return days
}

func atMidnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
