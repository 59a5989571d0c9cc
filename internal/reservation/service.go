package reservation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/vehicle"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=reservation
type Repository interface {
	CreateReservation(ctx context.Context, res *Reservation) error
	GetReservation(ctx context.Context, id uuid.UUID) (*Reservation, error)
	UpdateReservation(ctx context.Context, res *Reservation) error
	DeleteReservation(ctx context.Context, id uuid.UUID) error
	ListReservations(ctx context.Context, filter ListFilter) ([]*Reservation, error)

	// HasOverlapping reports whether the (client, vehicle) pair already has a
	// pending or active reservation, excluding the given id (uuid.Nil for none).
	HasOverlapping(ctx context.Context, clientID, vehicleID, exclude uuid.UUID) (bool, error)
}

type ClientDirectory interface {
	ClientExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type VehicleDirectory interface {
	Get(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
}

type ContractChecker interface {
	ExistsForReservation(ctx context.Context, reservationID uuid.UUID) (bool, error)
}

// ContractCreator is the hook for best-effort automatic contract creation
// when a reservation is created directly in active status.
type ContractCreator interface {
	CreateForReservation(ctx context.Context, reservationID uuid.UUID) error
}

type AvailabilitySyncer interface {
	SyncVehicle(ctx context.Context, vehicleID uuid.UUID) (vehicle.Status, error)
}

type Service struct {
	repo      Repository
	clients   ClientDirectory
	vehicles  VehicleDirectory
	contracts ContractChecker
	syncer    AvailabilitySyncer

	contractCreator ContractCreator
}

func NewService(
	repo Repository,
	clients ClientDirectory,
	vehicles VehicleDirectory,
	contracts ContractChecker,
	syncer AvailabilitySyncer,
) *Service {
	return &Service{
		repo:      repo,
		clients:   clients,
		vehicles:  vehicles,
		contracts: contracts,
		syncer:    syncer,
	}
}

// SetContractCreator wires the automatic contract creation hook. The contract
// service depends on this service, so the hook is attached after both exist.
func (s *Service) SetContractCreator(cc ContractCreator) {
	s.contractCreator = cc
}

type CreateParams struct {
	ClientID    uuid.UUID
	VehicleID   uuid.UUID
	StartDate   time.Time
	ReturnDate  time.Time
	PricePerDay int64  // 0 defaults to the vehicle's configured daily price
	Status      Status // "" defaults to pending
}

type UpdateParams struct {
	ClientID    *uuid.UUID
	VehicleID   *uuid.UUID
	StartDate   *time.Time
	ReturnDate  *time.Time
	PricePerDay *int64
	Status      *Status
}

type ListFilter struct {
	Status    *Status
	VehicleID *uuid.UUID
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Reservation, error) {
	exists, err := s.clients.ClientExists(ctx, params.ClientID)
	if err != nil {
		return nil, fmt.Errorf("checking client: %w", err)
	}

	if !exists {
		return nil, ErrClientNotFound
	}

	veh, err := s.vehicles.Get(ctx, params.VehicleID)
	if err != nil {
		if errors.Is(err, vehicle.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}

		return nil, fmt.Errorf("getting vehicle: %w", err)
	}

	start := atMidnight(params.StartDate)
	ret := atMidnight(params.ReturnDate)

	if ret.Before(start) {
		return nil, ErrInvalidRange
	}

	price := params.PricePerDay
	if price == 0 {
		price = veh.PricePerDay
	}

	if price <= 0 {
		return nil, ErrInvalidPrice
	}

	status := params.Status
	if status == "" {
		status = StatusPending
	}

	if status != StatusPending && status != StatusActive {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	conflict, err := s.repo.HasOverlapping(ctx, params.ClientID, params.VehicleID, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("checking reservation conflict: %w", err)
	}

	if conflict {
		return nil, ErrConflict
	}

	days := RentalDays(start, ret)

	res := &Reservation{
		ClientID:    params.ClientID,
		VehicleID:   params.VehicleID,
		StartDate:   start,
		ReturnDate:  ret,
		Status:      status,
		PricePerDay: price,
		Total:       days * price,
	}

	if err := s.repo.CreateReservation(ctx, res); err != nil {
		return nil, fmt.Errorf("creating reservation: %w", err)
	}

	if status == StatusActive {
		s.syncVehicle(ctx, res.VehicleID)

		// Best effort: a failed automatic contract creation degrades the
		// result but never fails the reservation.
		if s.contractCreator != nil {
			if err := s.contractCreator.CreateForReservation(ctx, res.ID); err != nil {
				slog.Warn("automatic contract creation failed",
					"reservation_id", res.ID, "error", err)
			}
		}
	}

	return res, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	return s.repo.GetReservation(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Reservation, error) {
	return s.repo.ListReservations(ctx, filter)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Reservation, error) {
	res, err := s.repo.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	prevStatus := res.Status
	pairChanged := false

	if params.ClientID != nil && *params.ClientID != res.ClientID {
		exists, err := s.clients.ClientExists(ctx, *params.ClientID)
		if err != nil {
			return nil, fmt.Errorf("checking client: %w", err)
		}

		if !exists {
			return nil, ErrClientNotFound
		}

		res.ClientID = *params.ClientID
		pairChanged = true
	}

	if params.VehicleID != nil && *params.VehicleID != res.VehicleID {
		if _, err := s.vehicles.Get(ctx, *params.VehicleID); err != nil {
			if errors.Is(err, vehicle.ErrNotFound) {
				return nil, ErrVehicleNotFound
			}

			return nil, fmt.Errorf("getting vehicle: %w", err)
		}

		res.VehicleID = *params.VehicleID
		pairChanged = true
	}

	if params.StartDate != nil {
		res.StartDate = atMidnight(*params.StartDate)
	}

	if params.ReturnDate != nil {
		res.ReturnDate = atMidnight(*params.ReturnDate)
	}

	if res.ReturnDate.Before(res.StartDate) {
		return nil, ErrInvalidRange
	}

	if params.PricePerDay != nil {
		if *params.PricePerDay <= 0 {
			return nil, ErrInvalidPrice
		}

		res.PricePerDay = *params.PricePerDay
	}

	if params.Status != nil {
		if !params.Status.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *params.Status)
		}

		if err := Transitions.Step(res.Status, *params.Status); err != nil {
			return nil, err
		}

		res.Status = *params.Status
	}

	if pairChanged {
		conflict, err := s.repo.HasOverlapping(ctx, res.ClientID, res.VehicleID, res.ID)
		if err != nil {
			return nil, fmt.Errorf("checking reservation conflict: %w", err)
		}

		if conflict {
			return nil, ErrConflict
		}
	}

	res.Total = RentalDays(res.StartDate, res.ReturnDate) * res.PricePerDay

	if err := s.repo.UpdateReservation(ctx, res); err != nil {
		return nil, fmt.Errorf("updating reservation: %w", err)
	}

	if res.Status != prevStatus {
		s.syncVehicle(ctx, res.VehicleID)
	}

	return res, nil
}

// SetStatus moves the reservation through the lifecycle machine. It is a
// no-op when the status is unchanged, so cross-entity retries stay safe.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status Status) error {
	res, err := s.repo.GetReservation(ctx, id)
	if err != nil {
		return err
	}

	if res.Status == status {
		return nil
	}

	if err := Transitions.Step(res.Status, status); err != nil {
		return err
	}

	res.Status = status

	if err := s.repo.UpdateReservation(ctx, res); err != nil {
		return fmt.Errorf("updating reservation status: %w", err)
	}

	s.syncVehicle(ctx, res.VehicleID)

	return nil
}

// ResetToPending reverts a reservation when its contract is deleted. This is
// the one sanctioned backward move: deleting a contract undoes the
// activation that created it.
func (s *Service) ResetToPending(ctx context.Context, id uuid.UUID) error {
	res, err := s.repo.GetReservation(ctx, id)
	if err != nil {
		return err
	}

	if res.Status == StatusPending {
		return nil
	}

	res.Status = StatusPending

	if err := s.repo.UpdateReservation(ctx, res); err != nil {
		return fmt.Errorf("reverting reservation status: %w", err)
	}

	s.syncVehicle(ctx, res.VehicleID)

	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	res, err := s.repo.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}

	linked, err := s.contracts.ExistsForReservation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("checking linked contract: %w", err)
	}

	if linked {
		return nil, ErrContractExists
	}

	if err := s.repo.DeleteReservation(ctx, id); err != nil {
		return nil, fmt.Errorf("deleting reservation: %w", err)
	}

	s.syncVehicle(ctx, res.VehicleID)

	return res, nil
}

// syncVehicle recomputes the cached vehicle availability. Failures are
// logged, not propagated: the reconciliation job repairs any drift.
func (s *Service) syncVehicle(ctx context.Context, vehicleID uuid.UUID) {
	if _, err := s.syncer.SyncVehicle(ctx, vehicleID); err != nil {
		slog.Warn("vehicle availability sync failed", "vehicle_id", vehicleID, "error", err)
	}
}
