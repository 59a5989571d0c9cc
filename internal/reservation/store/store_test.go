package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/reservation"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/reservation/store"
)

func newStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.New(db), mock
}

func reservationColumns() []string {
	return []string{
		"id", "client_id", "vehicle_id", "start_date", "return_date", "status",
		"price_per_day", "total", "created_at", "updated_at",
	}
}

func TestStore_CreateReservation(t *testing.T) {
	s, mock := newStore(t)

	id := uuid.New()
	now := time.Now()

	res := &reservation.Reservation{
		ClientID:    uuid.New(),
		VehicleID:   uuid.New(),
		StartDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:  time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		Status:      reservation.StatusPending,
		PricePerDay: 3500,
		Total:       10500,
	}

	mock.ExpectQuery("INSERT INTO reservations").
		WithArgs(res.ClientID, res.VehicleID, res.StartDate, res.ReturnDate,
			res.Status, res.PricePerDay, res.Total).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(id, now, nil))

	err := s.CreateReservation(context.Background(), res)

	require.NoError(t, err)
	assert.Equal(t, id, res.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetReservation(t *testing.T) {
	s, mock := newStore(t)

	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM reservations").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(reservationColumns()).
			AddRow(id, uuid.New(), uuid.New(),
				time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
				"active", int64(3500), int64(10500), now, nil))

	res, err := s.GetReservation(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, res.ID)
	assert.Equal(t, reservation.StatusActive, res.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetReservation_NotFound(t *testing.T) {
	s, mock := newStore(t)

	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM reservations").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(reservationColumns()))

	res, err := s.GetReservation(context.Background(), id)

	assert.ErrorIs(t, err, reservation.ErrNotFound)
	assert.Nil(t, res)
}

func TestStore_ListReservations(t *testing.T) {
	s, mock := newStore(t)

	status := reservation.StatusActive
	vehicleID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM reservations").
		WithArgs(status, vehicleID).
		WillReturnRows(sqlmock.NewRows(reservationColumns()).
			AddRow(uuid.New(), uuid.New(), vehicleID,
				time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
				"active", int64(3500), int64(10500), now, nil))

	got, err := s.ListReservations(context.Background(), reservation.ListFilter{
		Status:    &status,
		VehicleID: &vehicleID,
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, vehicleID, got[0].VehicleID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpdateReservation_NotFound(t *testing.T) {
	s, mock := newStore(t)

	res := &reservation.Reservation{
		ID:        uuid.New(),
		ClientID:  uuid.New(),
		VehicleID: uuid.New(),
		Status:    reservation.StatusPending,
	}

	mock.ExpectExec("UPDATE reservations").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.UpdateReservation(context.Background(), res)

	assert.ErrorIs(t, err, reservation.ErrNotFound)
}

func TestStore_DeleteReservation(t *testing.T) {
	s, mock := newStore(t)

	id := uuid.New()

	mock.ExpectExec("DELETE FROM reservations").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, s.DeleteReservation(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_HasOverlapping(t *testing.T) {
	s, mock := newStore(t)

	clientID := uuid.New()
	vehicleID := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(clientID, vehicleID, uuid.Nil).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	got, err := s.HasOverlapping(context.Background(), clientID, vehicleID, uuid.Nil)

	require.NoError(t, err)
	assert.True(t, got)
}

func TestStore_HasActiveForVehicle(t *testing.T) {
	s, mock := newStore(t)

	vehicleID := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(vehicleID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	got, err := s.HasActiveForVehicle(context.Background(), vehicleID)

	require.NoError(t, err)
	assert.False(t, got)
}
