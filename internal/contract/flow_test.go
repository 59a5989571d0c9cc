package contract_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/contract"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/lifecycle"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/reservation"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/vehicle"
)

// fleetFake is a single-vehicle fleet holding the cached availability the
// coordinator writes.
type fleetFake struct {
	vehicle     *vehicle.Vehicle
	maintenance bool
}

func (f *fleetFake) Get(_ context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	if id != f.vehicle.ID {
		return nil, vehicle.ErrNotFound
	}

	v := *f.vehicle

	return &v, nil
}

func (f *fleetFake) SetStatus(_ context.Context, _ uuid.UUID, status vehicle.Status) error {
	f.vehicle.Status = status
	return nil
}

func (f *fleetFake) HasActiveMaintenance(_ context.Context, _ uuid.UUID) (bool, error) {
	return f.maintenance, nil
}

type reservationRepoFake struct {
	rows map[uuid.UUID]*reservation.Reservation
}

func (r *reservationRepoFake) CreateReservation(_ context.Context, res *reservation.Reservation) error {
	res.ID = uuid.New()
	res.CreatedAt = time.Now()

	clone := *res
	r.rows[res.ID] = &clone

	return nil
}

func (r *reservationRepoFake) GetReservation(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.rows[id]
	if !ok {
		return nil, reservation.ErrNotFound
	}

	clone := *res

	return &clone, nil
}

func (r *reservationRepoFake) UpdateReservation(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.rows[res.ID]; !ok {
		return reservation.ErrNotFound
	}

	clone := *res
	r.rows[res.ID] = &clone

	return nil
}

func (r *reservationRepoFake) DeleteReservation(_ context.Context, id uuid.UUID) error {
	if _, ok := r.rows[id]; !ok {
		return reservation.ErrNotFound
	}

	delete(r.rows, id)

	return nil
}

func (r *reservationRepoFake) ListReservations(_ context.Context, _ reservation.ListFilter) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(r.rows))
	for _, res := range r.rows {
		clone := *res
		out = append(out, &clone)
	}

	return out, nil
}

func (r *reservationRepoFake) HasOverlapping(_ context.Context, clientID, vehicleID, exclude uuid.UUID) (bool, error) {
	for _, res := range r.rows {
		if res.ID == exclude || res.ClientID != clientID || res.VehicleID != vehicleID {
			continue
		}

		if res.Status == reservation.StatusPending || res.Status == reservation.StatusActive {
			return true, nil
		}
	}

	return false, nil
}

func (r *reservationRepoFake) HasActiveForVehicle(_ context.Context, vehicleID uuid.UUID) (bool, error) {
	for _, res := range r.rows {
		if res.VehicleID == vehicleID && res.Status == reservation.StatusActive {
			return true, nil
		}
	}

	return false, nil
}

type contractRepoFake struct {
	rows map[uuid.UUID]*contract.Contract
}

func (r *contractRepoFake) UpsertContract(_ context.Context, c *contract.Contract) error {
	for _, row := range r.rows {
		if row.ReservationID == c.ReservationID {
			c.ID = row.ID
			c.CreatedAt = row.CreatedAt
			c.Documents = row.Documents

			break
		}
	}

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
		c.CreatedAt = time.Now()
	}

	clone := *c
	r.rows[c.ID] = &clone

	return nil
}

func (r *contractRepoFake) GetContract(_ context.Context, id uuid.UUID) (*contract.Contract, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, contract.ErrNotFound
	}

	clone := *c

	return &clone, nil
}

func (r *contractRepoFake) GetByReservation(_ context.Context, reservationID uuid.UUID) (*contract.Contract, error) {
	for _, c := range r.rows {
		if c.ReservationID == reservationID {
			clone := *c
			return &clone, nil
		}
	}

	return nil, contract.ErrNotFound
}

func (r *contractRepoFake) UpdateContract(_ context.Context, c *contract.Contract) error {
	if _, ok := r.rows[c.ID]; !ok {
		return contract.ErrNotFound
	}

	clone := *c
	r.rows[c.ID] = &clone

	return nil
}

func (r *contractRepoFake) DeleteContract(_ context.Context, id uuid.UUID) error {
	if _, ok := r.rows[id]; !ok {
		return contract.ErrNotFound
	}

	delete(r.rows, id)

	return nil
}

func (r *contractRepoFake) ListContracts(_ context.Context) ([]*contract.Contract, error) {
	out := make([]*contract.Contract, 0, len(r.rows))
	for _, c := range r.rows {
		clone := *c
		out = append(out, &clone)
	}

	return out, nil
}

func (r *contractRepoFake) UpdateGenerationStatus(_ context.Context, id uuid.UUID, status contract.GenerationStatus) error {
	c, ok := r.rows[id]
	if !ok {
		return contract.ErrNotFound
	}

	c.GenerationStatus = status

	return nil
}

func (r *contractRepoFake) ExistsForReservation(_ context.Context, reservationID uuid.UUID) (bool, error) {
	for _, c := range r.rows {
		if c.ReservationID == reservationID {
			return true, nil
		}
	}

	return false, nil
}

type clientsFake struct{}

func (clientsFake) ClientExists(_ context.Context, _ uuid.UUID) (bool, error) {
	return true, nil
}

type generatorFake struct {
	enqueued []uuid.UUID
}

func (g *generatorFake) Enqueue(contractID uuid.UUID) {
	g.enqueued = append(g.enqueued, contractID)
}

// TestRentalFlow drives one booking through both services wired together the
// way cmd/api wires them: reserve, sign the contract, finish the rental.
func TestRentalFlow(t *testing.T) {
	ctx := context.Background()

	clientID := uuid.New()
	vehicleID := uuid.New()

	fleet := &fleetFake{vehicle: &vehicle.Vehicle{
		ID:          vehicleID,
		Brand:       "Toyota",
		Model:       "Corolla",
		PricePerDay: 4000,
		Status:      vehicle.StatusAvailable,
	}}
	resRepo := &reservationRepoFake{rows: map[uuid.UUID]*reservation.Reservation{}}
	conRepo := &contractRepoFake{rows: map[uuid.UUID]*contract.Contract{}}
	generator := &generatorFake{}

	coordinator := lifecycle.NewCoordinator(fleet, resRepo)
	resSvc := reservation.NewService(resRepo, clientsFake{}, fleet, conRepo, coordinator)
	conSvc := contract.NewService(conRepo, resSvc, generator, coordinator)
	resSvc.SetContractCreator(conSvc)

	// Booking three nights at $40/day leaves the reservation pending and the
	// vehicle untouched.
	res, err := resSvc.Create(ctx, reservation.CreateParams{
		ClientID:    clientID,
		VehicleID:   vehicleID,
		StartDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:  time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		PricePerDay: 4000,
	})
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusPending, res.Status)
	assert.Equal(t, int64(3*4000), res.Total)
	assert.Equal(t, vehicle.StatusAvailable, fleet.vehicle.Status)

	// Signing the contract activates the reservation and reserves the vehicle.
	c, err := conSvc.Create(ctx, contract.CreateParams{ReservationID: res.ID})
	require.NoError(t, err)
	assert.Equal(t, contract.StatusActive, c.Status)
	assert.Equal(t, []uuid.UUID{c.ID}, generator.enqueued)

	res, err = resSvc.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusActive, res.Status)
	assert.Equal(t, vehicle.StatusReserved, fleet.vehicle.Status)

	// Finishing the contract completes the reservation and frees the vehicle.
	c, err = conSvc.Update(ctx, c.ID, contract.UpdateParams{
		Status: ptr(contract.StatusFinished),
	})
	require.NoError(t, err)
	assert.Equal(t, contract.StatusFinished, c.Status)
	require.NotNil(t, c.EndDate)

	res, err = resSvc.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusCompleted, res.Status)
	assert.Equal(t, vehicle.StatusAvailable, fleet.vehicle.Status)
}
