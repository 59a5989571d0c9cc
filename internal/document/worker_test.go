package document_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/client"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/contract"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/document"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/reservation"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/vehicle"
)

type workerMocks struct {
	contracts    *document.MockContractStore
	reservations *document.MockReservationSource
	vehicles     *document.MockVehicleSource
	clients      *document.MockClientSource
}

func newWorker(t *testing.T, dir string) (*document.Worker, workerMocks) {
	ctrl := gomock.NewController(t)

	m := workerMocks{
		contracts:    document.NewMockContractStore(ctrl),
		reservations: document.NewMockReservationSource(ctrl),
		vehicles:     document.NewMockVehicleSource(ctrl),
		clients:      document.NewMockClientSource(ctrl),
	}

	w := document.NewWorker(
		m.contracts,
		m.reservations,
		m.vehicles,
		m.clients,
		document.NewRenderer(),
		document.NewStorage(dir, ""),
		4,
		5*time.Second,
	)

	return w, m
}

func TestWorker_Process(t *testing.T) {
	dir := t.TempDir()
	w, m := newWorker(t, dir)

	contractID := uuid.New()
	reservationID := uuid.New()
	vehicleID := uuid.New()
	clientID := uuid.New()

	m.contracts.EXPECT().GetContract(gomock.Any(), contractID).Return(&contract.Contract{
		ID:            contractID,
		ReservationID: reservationID,
		Status:        contract.StatusActive,
	}, nil)
	m.reservations.EXPECT().GetReservation(gomock.Any(), reservationID).Return(&reservation.Reservation{
		ID:          reservationID,
		ClientID:    clientID,
		VehicleID:   vehicleID,
		StartDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:  time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		PricePerDay: 3500,
		Total:       10500,
	}, nil)
	m.vehicles.EXPECT().GetVehicle(gomock.Any(), vehicleID).Return(&vehicle.Vehicle{
		ID:    vehicleID,
		Brand: "Toyota",
		Model: "Corolla",
		Year:  2022,
	}, nil)
	m.clients.EXPECT().GetClient(gomock.Any(), clientID).Return(&client.Client{
		ID:       clientID,
		Name:     "Ana",
		LastName: "Martinez",
	}, nil)

	wantPath := filepath.Join(dir, contractID.String(), "lease.pdf")
	m.contracts.EXPECT().
		UpdateDocuments(gomock.Any(), contractID, wantPath, contract.GenerationReady).
		Return(nil)

	w.Process(context.Background(), contractID)

	pdf, err := os.ReadFile(wantPath)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestWorker_Process_MarksFailed(t *testing.T) {
	w, m := newWorker(t, t.TempDir())

	contractID := uuid.New()

	m.contracts.EXPECT().
		GetContract(gomock.Any(), contractID).
		Return(nil, contract.ErrNotFound)
	m.contracts.EXPECT().
		UpdateGenerationStatus(gomock.Any(), contractID, contract.GenerationFailed).
		Return(nil)

	w.Process(context.Background(), contractID)
}

func TestWorker_Process_FailureKeepsPreviousArtifact(t *testing.T) {
	dir := t.TempDir()
	w, m := newWorker(t, dir)

	contractID := uuid.New()

	// A previously published artifact.
	previous := filepath.Join(dir, contractID.String())
	require.NoError(t, os.MkdirAll(previous, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(previous, "lease.pdf"), []byte("old render"), 0o644))

	m.contracts.EXPECT().
		GetContract(gomock.Any(), contractID).
		Return(nil, contract.ErrNotFound)
	m.contracts.EXPECT().
		UpdateGenerationStatus(gomock.Any(), contractID, contract.GenerationFailed).
		Return(nil)

	w.Process(context.Background(), contractID)

	got, err := os.ReadFile(filepath.Join(previous, "lease.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("old render"), got)
}
