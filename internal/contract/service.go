package contract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/reservation"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/vehicle"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=contract
type Repository interface {
	// UpsertContract inserts the contract or, when one already exists for the
	// reservation, updates it in place. The final row is written back to c.
	UpsertContract(ctx context.Context, c *Contract) error
	GetContract(ctx context.Context, id uuid.UUID) (*Contract, error)
	GetByReservation(ctx context.Context, reservationID uuid.UUID) (*Contract, error)
	UpdateContract(ctx context.Context, c *Contract) error
	DeleteContract(ctx context.Context, id uuid.UUID) error
	ListContracts(ctx context.Context) ([]*Contract, error)
	UpdateGenerationStatus(ctx context.Context, id uuid.UUID, status GenerationStatus) error
}

type Reservations interface {
	Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	SetStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error
	ResetToPending(ctx context.Context, id uuid.UUID) error
}

// Generator enqueues asynchronous PDF rendering for a contract. The request
// path never waits on the render.
type Generator interface {
	Enqueue(contractID uuid.UUID)
}

type AvailabilitySyncer interface {
	SyncVehicle(ctx context.Context, vehicleID uuid.UUID) (vehicle.Status, error)
}

type Service struct {
	repo         Repository
	reservations Reservations
	generator    Generator
	syncer       AvailabilitySyncer
}

func NewService(repo Repository, reservations Reservations, generator Generator, syncer AvailabilitySyncer) *Service {
	return &Service{
		repo:         repo,
		reservations: reservations,
		generator:    generator,
		syncer:       syncer,
	}
}

type CreateParams struct {
	ReservationID uuid.UUID
	Status        Status // "" defaults to active
	StatusSheet   *StatusSheet
	Lease         *Lease
}

type UpdateParams struct {
	Status      *Status
	StatusSheet *StatusSheet
	Lease       *Lease
}

// Create persists the contract for a reservation. Calling it again for the
// same reservation updates the existing contract in place, so client retries
// are safe. On success the owning reservation becomes active and the
// vehicle's availability is recomputed; PDF generation is enqueued and its
// outcome reported only through GenerationStatus. Reservations that already
// reached a terminal status cannot take a contract.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Contract, error) {
	res, err := s.reservations.Get(ctx, params.ReservationID)
	if err != nil {
		return nil, err
	}

	if reservation.Transitions.Terminal(res.Status) {
		return nil, fmt.Errorf("%w: %s", ErrReservationClosed, res.Status)
	}

	existing, err := s.repo.GetByReservation(ctx, params.ReservationID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("checking existing contract: %w", err)
	}

	if existing != nil && Transitions.Terminal(existing.Status) {
		return nil, fmt.Errorf("%w: %s", ErrTerminalStatus, existing.Status)
	}

	status := params.Status
	if status == "" {
		status = StatusActive
	}

	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	c := &Contract{
		ReservationID:    params.ReservationID,
		Status:           status,
		StartDate:        res.StartDate,
		GenerationStatus: GenerationPending,
	}

	if Transitions.Terminal(status) {
		now := time.Now().UTC()
		c.EndDate = &now
	}

	if params.StatusSheet != nil {
		c.StatusSheet = *params.StatusSheet
	}

	if params.Lease != nil {
		c.Lease = *params.Lease
	}

	s.fillLeasePricing(c, res)

	if err := s.repo.UpsertContract(ctx, c); err != nil {
		return nil, fmt.Errorf("upserting contract: %w", err)
	}

	// Cross-entity side effects are individually idempotent; failures are
	// logged and repaired by the reconciliation pass, never dropped silently.
	if Transitions.Terminal(c.Status) {
		s.finalizeReservation(ctx, c)
	} else {
		if res.Status != reservation.StatusActive {
			if err := s.reservations.SetStatus(ctx, res.ID, reservation.StatusActive); err != nil {
				slog.Error("activating reservation for contract failed",
					"contract_id", c.ID, "reservation_id", res.ID, "error", err)
			}
		}

		s.syncVehicle(ctx, res.VehicleID)
	}

	s.generator.Enqueue(c.ID)

	return c, nil
}

// CreateForReservation is the automatic-creation hook used when a
// reservation is created directly in active status.
func (s *Service) CreateForReservation(ctx context.Context, reservationID uuid.UUID) error {
	_, err := s.Create(ctx, CreateParams{ReservationID: reservationID})
	return err
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Contract, error) {
	return s.repo.GetContract(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Contract, error) {
	return s.repo.ListContracts(ctx)
}

// Update deep-merges the nested inspection and lease structures and applies
// status transitions. Finished and canceled stamp EndDate and are terminal.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Contract, error) {
	c, err := s.repo.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}

	if Transitions.Terminal(c.Status) {
		return nil, fmt.Errorf("%w: %s", ErrTerminalStatus, c.Status)
	}

	c.StatusSheet.Merge(params.StatusSheet)
	c.Lease.Merge(params.Lease)

	var becameTerminal bool

	if params.Status != nil {
		if !params.Status.Valid() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *params.Status)
		}

		if err := Transitions.Step(c.Status, *params.Status); err != nil {
			return nil, err
		}

		if c.Status != *params.Status {
			c.Status = *params.Status

			if Transitions.Terminal(c.Status) {
				now := time.Now().UTC()
				c.EndDate = &now
				becameTerminal = true
			}
		}
	}

	if err := s.repo.UpdateContract(ctx, c); err != nil {
		return nil, fmt.Errorf("updating contract: %w", err)
	}

	if becameTerminal {
		s.finalizeReservation(ctx, c)
	}

	return c, nil
}

// Delete removes the contract and reverts its reservation to pending; the
// vehicle is freed unless another active reservation or maintenance record
// still claims it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*Contract, error) {
	c, err := s.repo.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteContract(ctx, id); err != nil {
		return nil, fmt.Errorf("deleting contract: %w", err)
	}

	res, err := s.reservations.Get(ctx, c.ReservationID)
	if err != nil {
		slog.Error("resolving reservation after contract delete failed",
			"contract_id", id, "reservation_id", c.ReservationID, "error", err)

		return c, nil
	}

	if err := s.reservations.ResetToPending(ctx, res.ID); err != nil {
		slog.Error("reverting reservation after contract delete failed",
			"contract_id", id, "reservation_id", res.ID, "error", err)
	}

	s.syncVehicle(ctx, res.VehicleID)

	return c, nil
}

// RegeneratePDF re-enqueues document generation. The artifact reference is
// replaced atomically, so repeated calls leave exactly one artifact.
func (s *Service) RegeneratePDF(ctx context.Context, id uuid.UUID) (*Contract, error) {
	c, err := s.repo.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateGenerationStatus(ctx, id, GenerationPending); err != nil {
		return nil, fmt.Errorf("marking generation pending: %w", err)
	}

	c.GenerationStatus = GenerationPending

	s.generator.Enqueue(id)

	return c, nil
}

// fillLeasePricing defaults the financial terms from the reservation for
// fields the caller did not supply.
func (s *Service) fillLeasePricing(c *Contract, res *reservation.Reservation) {
	if c.Lease.Pricing == nil {
		c.Lease.Pricing = &Pricing{}
	}

	p := c.Lease.Pricing

	if p.DailyPrice == nil {
		price := res.PricePerDay
		p.DailyPrice = &price
	}

	if p.TotalAmount == nil {
		total := res.Total
		p.TotalAmount = &total
	}

	if p.RentalDays == nil {
		days := reservation.RentalDays(res.StartDate, res.ReturnDate)
		p.RentalDays = &days
	}
}

func (s *Service) finalizeReservation(ctx context.Context, c *Contract) {
	target := reservation.StatusCompleted
	if c.Status == StatusCanceled {
		target = reservation.StatusCanceled
	}

	res, err := s.reservations.Get(ctx, c.ReservationID)
	if err != nil {
		slog.Error("resolving reservation for contract finalization failed",
			"contract_id", c.ID, "reservation_id", c.ReservationID, "error", err)
		return
	}

	if err := s.reservations.SetStatus(ctx, res.ID, target); err != nil {
		slog.Error("finalizing reservation failed",
			"contract_id", c.ID, "reservation_id", res.ID, "status", target, "error", err)
	}

	s.syncVehicle(ctx, res.VehicleID)
}

func (s *Service) syncVehicle(ctx context.Context, vehicleID uuid.UUID) {
	if _, err := s.syncer.SyncVehicle(ctx, vehicleID); err != nil {
		slog.Warn("vehicle availability sync failed", "vehicle_id", vehicleID, "error", err)
	}
}
