package scheduler

import (
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/jobs"
)

// Scheduler registers the reconciliation jobs on a cron runner.
type Scheduler struct {
	cron   *cron.Cron
	runner *jobs.Runner
}

type Specs struct {
	RetryFailedGenerations string
	ReconcileAvailability  string
}

func New(runner *jobs.Runner, specs Specs) *Scheduler {
	c := cron.New(cron.WithLocation(time.UTC))

	s := &Scheduler{cron: c, runner: runner}

	if _, err := c.AddFunc(specs.RetryFailedGenerations, runner.RetryFailedGenerations); err != nil {
		slog.Error("registering retry job failed", "spec", specs.RetryFailedGenerations, "error", err)
	}

	if _, err := c.AddFunc(specs.ReconcileAvailability, runner.ReconcileAvailability); err != nil {
		slog.Error("registering reconcile job failed", "spec", specs.ReconcileAvailability, "error", err)
	}

	return s
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop waits for any running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("scheduler stopped")
}
