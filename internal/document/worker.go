package document

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/client"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/contract"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/reservation"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/vehicle"
)

//go:generate mockgen -source=worker.go -destination=worker_mock.go -package=document
type ContractStore interface {
	GetContract(ctx context.Context, id uuid.UUID) (*contract.Contract, error)
	UpdateDocuments(ctx context.Context, id uuid.UUID, leasePDF string, status contract.GenerationStatus) error
	UpdateGenerationStatus(ctx context.Context, id uuid.UUID, status contract.GenerationStatus) error
}

type ReservationSource interface {
	GetReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
}

type VehicleSource interface {
	GetVehicle(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
}

type ClientSource interface {
	GetClient(ctx context.Context, id uuid.UUID) (*client.Client, error)
}

// Worker decouples PDF generation from the request path. Contracts are
// enqueued after their row is durably written; a single goroutine renders
// and publishes, recording the outcome on the contract's generation status.
type Worker struct {
	contracts    ContractStore
	reservations ReservationSource
	vehicles     VehicleSource
	clients      ClientSource
	renderer     *Renderer
	storage      *Storage

	jobs    chan uuid.UUID
	timeout time.Duration
	now     func() time.Time
}

func NewWorker(
	contracts ContractStore,
	reservations ReservationSource,
	vehicles VehicleSource,
	clients ClientSource,
	renderer *Renderer,
	storage *Storage,
	queueSize int,
	timeout time.Duration,
) *Worker {
	return &Worker{
		contracts:    contracts,
		reservations: reservations,
		vehicles:     vehicles,
		clients:      clients,
		renderer:     renderer,
		storage:      storage,
		jobs:         make(chan uuid.UUID, queueSize),
		timeout:      timeout,
		now:          time.Now,
	}
}

// Enqueue schedules a render without blocking the caller. When the queue is
// full the job is dropped with a warning; the contract stays pending and the
// retry job re-enqueues it.
func (w *Worker) Enqueue(contractID uuid.UUID) {
	select {
	case w.jobs <- contractID:
	default:
		slog.Warn("generation queue full, dropping job", "contract_id", contractID)
	}
}

// Start runs the worker loop until ctx is canceled.
func (w *Worker) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case id := <-w.jobs:
				w.Process(ctx, id)
			}
		}
	}()
}

// Process renders and publishes one contract's lease document. Any failure,
// including the per-job timeout, marks the generation failed and leaves the
// previously published artifact untouched.
func (w *Worker) Process(parent context.Context, contractID uuid.UUID) {
	ctx, cancel := context.WithTimeout(parent, w.timeout)
	defer cancel()

	url, err := w.generate(ctx, contractID)
	if err != nil {
		slog.Error("contract document generation failed", "contract_id", contractID, "error", err)

		if err := w.contracts.UpdateGenerationStatus(parent, contractID, contract.GenerationFailed); err != nil {
			slog.Error("recording generation failure failed", "contract_id", contractID, "error", err)
		}

		return
	}

	if err := w.contracts.UpdateDocuments(parent, contractID, url, contract.GenerationReady); err != nil {
		slog.Error("recording generated document failed", "contract_id", contractID, "error", err)
		return
	}

	slog.Info("contract document generated", "contract_id", contractID, "url", url)
}

func (w *Worker) generate(ctx context.Context, contractID uuid.UUID) (string, error) {
	data, err := w.assemble(ctx, contractID)
	if err != nil {
		return "", err
	}

	pdf, err := w.renderer.Render(*data)
	if err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("generation timed out: %w", err)
	}

	return w.storage.Publish(contractID, pdf)
}

// assemble gathers the contract, reservation, vehicle and client summaries
// the renderer needs. The contract's stored data is authoritative; it can be
// re-rendered at any time.
func (w *Worker) assemble(ctx context.Context, contractID uuid.UUID) (*Data, error) {
	c, err := w.contracts.GetContract(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("loading contract: %w", err)
	}

	res, err := w.reservations.GetReservation(ctx, c.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("loading reservation: %w", err)
	}

	veh, err := w.vehicles.GetVehicle(ctx, res.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("loading vehicle: %w", err)
	}

	cl, err := w.clients.GetClient(ctx, res.ClientID)
	if err != nil {
		return nil, fmt.Errorf("loading client: %w", err)
	}

	return &Data{
		ContractID:  c.ID,
		Status:      c.Status,
		GeneratedAt: w.now().UTC(),
		Client: ClientSummary{
			FullName:       cl.FullName(),
			PassportNumber: cl.PassportNumber,
			LicenseNumber:  cl.LicenseNumber,
			Address:        cl.Address,
			Phone:          cl.Phone,
		},
		Vehicle: VehicleSummary{
			Brand: veh.Brand,
			Model: veh.Model,
			Year:  veh.Year,
			Color: veh.Color,
			Plate: veh.Plate,
		},
		Reservation: ReservationSummary{
			StartDate:   res.StartDate,
			ReturnDate:  res.ReturnDate,
			RentalDays:  reservation.RentalDays(res.StartDate, res.ReturnDate),
			PricePerDay: res.PricePerDay,
			Total:       res.Total,
		},
		StatusSheet: c.StatusSheet,
		Lease:       c.Lease,
	}, nil
}
