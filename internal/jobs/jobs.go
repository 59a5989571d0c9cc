// Package jobs holds the scheduled reconciliation passes. Cross-entity
// writes are not transactional, so a crash between steps can leave stale
// vehicle availability or a contract without its document; these jobs
// read-repair that drift.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/vehicle"
)

type ContractSource interface {
	ListStaleGenerations(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error)
}

type VehicleSource interface {
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

type AvailabilitySyncer interface {
	SyncVehicle(ctx context.Context, vehicleID uuid.UUID) (vehicle.Status, error)
}

type Enqueuer interface {
	Enqueue(contractID uuid.UUID)
}

type Runner struct {
	contracts ContractSource
	vehicles  VehicleSource
	syncer    AvailabilitySyncer
	generator Enqueuer

	timeout      time.Duration
	pendingGrace time.Duration
}

func NewRunner(
	contracts ContractSource,
	vehicles VehicleSource,
	syncer AvailabilitySyncer,
	generator Enqueuer,
	timeout, pendingGrace time.Duration,
) *Runner {
	return &Runner{
		contracts:    contracts,
		vehicles:     vehicles,
		syncer:       syncer,
		generator:    generator,
		timeout:      timeout,
		pendingGrace: pendingGrace,
	}
}

// RetryFailedGenerations re-enqueues contracts whose document generation
// failed, or sat pending longer than the grace period (a crash between the
// contract write and the render leaves exactly that state behind).
func (r *Runner) RetryFailedGenerations() {
	r.run("retry_failed_generations", func(ctx context.Context) {
		cutoff := time.Now().UTC().Add(-r.pendingGrace)

		ids, err := r.contracts.ListStaleGenerations(ctx, cutoff)
		if err != nil {
			slog.Error("listing stale generations failed", "error", err)
			return
		}

		for _, id := range ids {
			r.generator.Enqueue(id)
		}

		if len(ids) > 0 {
			slog.Info("re-enqueued stale document generations", "count", len(ids))
		}
	})
}

// ReconcileAvailability recomputes every vehicle's cached availability from
// the reservation and maintenance state.
func (r *Runner) ReconcileAvailability() {
	r.run("reconcile_availability", func(ctx context.Context) {
		ids, err := r.vehicles.ListIDs(ctx)
		if err != nil {
			slog.Error("listing vehicles failed", "error", err)
			return
		}

		var repaired int

		for _, id := range ids {
			if _, err := r.syncer.SyncVehicle(ctx, id); err != nil {
				slog.Error("reconciling vehicle availability failed", "vehicle_id", id, "error", err)
				continue
			}

			repaired++
		}

		slog.Info("vehicle availability reconciled", "vehicles", repaired)
	})
}

// run wraps a job with a timeout and panic recovery.
func (r *Runner) run(name string, fn func(ctx context.Context)) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("job panicked", "job", name, "panic", rec)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	slog.Info("job starting", "job", name)
	fn(ctx)
	slog.Info("job finished", "job", name)
}
