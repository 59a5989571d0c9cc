package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	clientStore "github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/client/store"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/config"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/contract"
	contractStore "github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/contract/store"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/database"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/document"
	rentalHttp "github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/http"
	contractHandler "github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/http/contract"
	reservationHandler "github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/http/reservation"
	vehicleHandler "github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/http/vehicle"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/jobs"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/lifecycle"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/reservation"
	reservationStore "github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/reservation/store"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/scheduler"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/vehicle"
	vehicleStore "github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/vehicle/store"
)

func main() {
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.ConnectionString(), cfg.DB.MaxOpenConns, cfg.DB.MaxIdleConns)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		clients      = clientStore.New(db)
		vehicles     = vehicleStore.New(db)
		reservations = reservationStore.New(db)
		contracts    = contractStore.New(db)
	)

	vehicleService := vehicle.NewService(vehicles)
	coordinator := lifecycle.NewCoordinator(vehicleService, reservations)

	storage := document.NewStorage(cfg.Documents.Dir, cfg.Documents.BaseURL)
	worker := document.NewWorker(
		contracts,
		reservations,
		vehicles,
		clients,
		document.NewRenderer(),
		storage,
		cfg.Documents.QueueSize,
		cfg.Documents.RenderTimeout,
	)
	worker.Start(ctx)

	reservationService := reservation.NewService(reservations, clients, vehicleService, contracts, coordinator)
	contractService := contract.NewService(contracts, reservationService, worker, coordinator)
	reservationService.SetContractCreator(contractService)

	runner := jobs.NewRunner(contracts, vehicleService, coordinator, worker,
		cfg.Scheduler.JobTimeout, cfg.Scheduler.PendingGrace)
	sched := scheduler.New(runner, scheduler.Specs{
		RetryFailedGenerations: cfg.Scheduler.RetryFailedGenerations,
		ReconcileAvailability:  cfg.Scheduler.ReconcileAvailability,
	})
	sched.Start()
	defer sched.Stop()

	var (
		reservationH = reservationHandler.NewHandler(reservationService)
		contractH    = contractHandler.NewHandler(contractService)
		vehicleH     = vehicleHandler.NewHandler(vehicleService)
	)

	router := rentalHttp.New(reservationH, contractH, vehicleH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
