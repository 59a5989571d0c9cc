// Package lifecycle is the single source of truth for status transitions
// across reservations, contracts and vehicle availability. Entity packages
// declare their legal transitions as a Machine; the Coordinator owns every
// write to the cached vehicle availability column.
package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/vehicle"
)

var ErrIllegalTransition = errors.New("illegal status transition")

// Machine is a state machine defined by its legal transitions. States absent
// from the table are terminal.
type Machine[S comparable] struct {
	transitions map[S][]S
}

func NewMachine[S comparable](transitions map[S][]S) Machine[S] {
	return Machine[S]{transitions: transitions}
}

func (m Machine[S]) Can(from, to S) bool {
	for _, s := range m.transitions[from] {
		if s == to {
			return true
		}
	}

	return false
}

// Step validates that from -> to is a legal transition. Transitioning to the
// current state is a no-op and always legal, so retried writes stay safe.
func (m Machine[S]) Step(from, to S) error {
	if from == to {
		return nil
	}

	if !m.Can(from, to) {
		return fmt.Errorf("%w: %v -> %v", ErrIllegalTransition, from, to)
	}

	return nil
}

// Terminal reports whether no transition leaves the given state.
func (m Machine[S]) Terminal(s S) bool {
	return len(m.transitions[s]) == 0
}

//go:generate mockgen -source=lifecycle.go -destination=lifecycle_mock.go -package=lifecycle
type VehicleDirectory interface {
	SetStatus(ctx context.Context, id uuid.UUID, status vehicle.Status) error
	HasActiveMaintenance(ctx context.Context, id uuid.UUID) (bool, error)
}

type ReservationSource interface {
	HasActiveForVehicle(ctx context.Context, vehicleID uuid.UUID) (bool, error)
}

// Coordinator recomputes vehicle availability from the reservation and
// maintenance state. Reservation and contract services call SyncVehicle after
// every transition instead of writing vehicle status directly.
type Coordinator struct {
	vehicles     VehicleDirectory
	reservations ReservationSource
}

func NewCoordinator(vehicles VehicleDirectory, reservations ReservationSource) *Coordinator {
	return &Coordinator{vehicles: vehicles, reservations: reservations}
}

// ResolveAvailability derives the availability of a vehicle. Maintenance
// takes precedence over reservations: an activated reservation never
// clobbers an in-maintenance flag.
func ResolveAvailability(inMaintenance, hasActiveReservation bool) vehicle.Status {
	switch {
	case inMaintenance:
		return vehicle.StatusMaintenance
	case hasActiveReservation:
		return vehicle.StatusReserved
	default:
		return vehicle.StatusAvailable
	}
}

// SyncVehicle recomputes and persists the cached availability of one
// vehicle. It is idempotent: retrying after a partial failure converges on
// the same state.
func (c *Coordinator) SyncVehicle(ctx context.Context, vehicleID uuid.UUID) (vehicle.Status, error) {
	inMaintenance, err := c.vehicles.HasActiveMaintenance(ctx, vehicleID)
	if err != nil {
		return "", fmt.Errorf("checking maintenance for vehicle %s: %w", vehicleID, err)
	}

	hasActive, err := c.reservations.HasActiveForVehicle(ctx, vehicleID)
	if err != nil {
		return "", fmt.Errorf("checking reservations for vehicle %s: %w", vehicleID, err)
	}

	status := ResolveAvailability(inMaintenance, hasActive)

	if err := c.vehicles.SetStatus(ctx, vehicleID, status); err != nil {
		return "", fmt.Errorf("setting vehicle %s status: %w", vehicleID, err)
	}

	return status, nil
}
