package reservation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/lifecycle"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/reservation"
	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/vehicle"
)

type mocks struct {
	repo      *reservation.MockRepository
	clients   *reservation.MockClientDirectory
	vehicles  *reservation.MockVehicleDirectory
	contracts *reservation.MockContractChecker
	syncer    *reservation.MockAvailabilitySyncer
}

func newService(t *testing.T) (*reservation.Service, mocks) {
	ctrl := gomock.NewController(t)

	m := mocks{
		repo:      reservation.NewMockRepository(ctrl),
		clients:   reservation.NewMockClientDirectory(ctrl),
		vehicles:  reservation.NewMockVehicleDirectory(ctrl),
		contracts: reservation.NewMockContractChecker(ctrl),
		syncer:    reservation.NewMockAvailabilitySyncer(ctrl),
	}

	svc := reservation.NewService(m.repo, m.clients, m.vehicles, m.contracts, m.syncer)

	return svc, m
}

func TestService_Create(t *testing.T) {
	clientID := uuid.New()
	vehicleID := uuid.New()

	veh := &vehicle.Vehicle{ID: vehicleID, PricePerDay: 3500}

	type testCase struct {
		name      string
		params    reservation.CreateParams
		setupMock func(m mocks)
		wantErr   error
		check     func(t *testing.T, res *reservation.Reservation)
	}

	tests := []testCase{
		{
			name: "DefaultsPriceAndStatus",
			params: reservation.CreateParams{
				ClientID:   clientID,
				VehicleID:  vehicleID,
				StartDate:  date(2025, 3, 1),
				ReturnDate: date(2025, 3, 4),
			},
			setupMock: func(m mocks) {
				m.clients.EXPECT().ClientExists(gomock.Any(), clientID).Return(true, nil)
				m.vehicles.EXPECT().Get(gomock.Any(), vehicleID).Return(veh, nil)
				m.repo.EXPECT().
					HasOverlapping(gomock.Any(), clientID, vehicleID, uuid.Nil).
					Return(false, nil)
				m.repo.EXPECT().
					CreateReservation(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, res *reservation.Reservation) error {
						res.ID = uuid.New()
						res.CreatedAt = time.Now()
						return nil
					})
			},
			check: func(t *testing.T, res *reservation.Reservation) {
				assert.Equal(t, reservation.StatusPending, res.Status)
				assert.Equal(t, int64(3500), res.PricePerDay)
				assert.Equal(t, int64(3*3500), res.Total)
			},
		},
		{
			name: "ActiveSyncsVehicle",
			params: reservation.CreateParams{
				ClientID:   clientID,
				VehicleID:  vehicleID,
				StartDate:  date(2025, 3, 1),
				ReturnDate: date(2025, 3, 2),
				Status:     reservation.StatusActive,
			},
			setupMock: func(m mocks) {
				m.clients.EXPECT().ClientExists(gomock.Any(), clientID).Return(true, nil)
				m.vehicles.EXPECT().Get(gomock.Any(), vehicleID).Return(veh, nil)
				m.repo.EXPECT().
					HasOverlapping(gomock.Any(), clientID, vehicleID, uuid.Nil).
					Return(false, nil)
				m.repo.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(nil)
				m.syncer.EXPECT().
					SyncVehicle(gomock.Any(), vehicleID).
					Return(vehicle.StatusReserved, nil)
			},
			check: func(t *testing.T, res *reservation.Reservation) {
				assert.Equal(t, reservation.StatusActive, res.Status)
			},
		},
		{
			name: "UnknownClient",
			params: reservation.CreateParams{
				ClientID:   clientID,
				VehicleID:  vehicleID,
				StartDate:  date(2025, 3, 1),
				ReturnDate: date(2025, 3, 2),
			},
			setupMock: func(m mocks) {
				m.clients.EXPECT().ClientExists(gomock.Any(), clientID).Return(false, nil)
			},
			wantErr: reservation.ErrClientNotFound,
		},
		{
			name: "UnknownVehicle",
			params: reservation.CreateParams{
				ClientID:   clientID,
				VehicleID:  vehicleID,
				StartDate:  date(2025, 3, 1),
				ReturnDate: date(2025, 3, 2),
			},
			setupMock: func(m mocks) {
				m.clients.EXPECT().ClientExists(gomock.Any(), clientID).Return(true, nil)
				m.vehicles.EXPECT().Get(gomock.Any(), vehicleID).Return(nil, vehicle.ErrNotFound)
			},
			wantErr: reservation.ErrVehicleNotFound,
		},
		{
			name: "InvertedRange",
			params: reservation.CreateParams{
				ClientID:   clientID,
				VehicleID:  vehicleID,
				StartDate:  date(2025, 3, 5),
				ReturnDate: date(2025, 3, 1),
			},
			setupMock: func(m mocks) {
				m.clients.EXPECT().ClientExists(gomock.Any(), clientID).Return(true, nil)
				m.vehicles.EXPECT().Get(gomock.Any(), vehicleID).Return(veh, nil)
			},
			wantErr: reservation.ErrInvalidRange,
		},
		{
			name: "CompletedStatusRejected",
			params: reservation.CreateParams{
				ClientID:   clientID,
				VehicleID:  vehicleID,
				StartDate:  date(2025, 3, 1),
				ReturnDate: date(2025, 3, 2),
				Status:     reservation.StatusCompleted,
			},
			setupMock: func(m mocks) {
				m.clients.EXPECT().ClientExists(gomock.Any(), clientID).Return(true, nil)
				m.vehicles.EXPECT().Get(gomock.Any(), vehicleID).Return(veh, nil)
			},
			wantErr: reservation.ErrInvalidStatus,
		},
		{
			name: "OverlappingReservation",
			params: reservation.CreateParams{
				ClientID:   clientID,
				VehicleID:  vehicleID,
				StartDate:  date(2025, 3, 1),
				ReturnDate: date(2025, 3, 2),
			},
			setupMock: func(m mocks) {
				m.clients.EXPECT().ClientExists(gomock.Any(), clientID).Return(true, nil)
				m.vehicles.EXPECT().Get(gomock.Any(), vehicleID).Return(veh, nil)
				m.repo.EXPECT().
					HasOverlapping(gomock.Any(), clientID, vehicleID, uuid.Nil).
					Return(true, nil)
			},
			wantErr: reservation.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			res, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, res)

			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestService_Create_ContractHook(t *testing.T) {
	ctrl := gomock.NewController(t)

	clientID := uuid.New()
	vehicleID := uuid.New()
	veh := &vehicle.Vehicle{ID: vehicleID, PricePerDay: 2000}

	svc, m := newService(t)
	creator := reservation.NewMockContractCreator(ctrl)
	svc.SetContractCreator(creator)

	m.clients.EXPECT().ClientExists(gomock.Any(), clientID).Return(true, nil)
	m.vehicles.EXPECT().Get(gomock.Any(), vehicleID).Return(veh, nil)
	m.repo.EXPECT().
		HasOverlapping(gomock.Any(), clientID, vehicleID, uuid.Nil).
		Return(false, nil)
	m.repo.EXPECT().
		CreateReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, res *reservation.Reservation) error {
			res.ID = uuid.New()
			return nil
		})
	m.syncer.EXPECT().
		SyncVehicle(gomock.Any(), vehicleID).
		Return(vehicle.StatusReserved, nil)

	// A failing hook degrades the result but never fails the create.
	creator.EXPECT().
		CreateForReservation(gomock.Any(), gomock.Any()).
		Return(errors.New("contract store down"))

	res, err := svc.Create(context.Background(), reservation.CreateParams{
		ClientID:   clientID,
		VehicleID:  vehicleID,
		StartDate:  date(2025, 3, 1),
		ReturnDate: date(2025, 3, 2),
		Status:     reservation.StatusActive,
	})

	require.NoError(t, err)
	assert.Equal(t, reservation.StatusActive, res.Status)
}

func TestService_Update(t *testing.T) {
	id := uuid.New()
	clientID := uuid.New()
	vehicleID := uuid.New()

	stored := func() *reservation.Reservation {
		return &reservation.Reservation{
			ID:          id,
			ClientID:    clientID,
			VehicleID:   vehicleID,
			StartDate:   date(2025, 3, 1),
			ReturnDate:  date(2025, 3, 4),
			Status:      reservation.StatusPending,
			PricePerDay: 3500,
			Total:       3 * 3500,
		}
	}

	type testCase struct {
		name      string
		params    reservation.UpdateParams
		setupMock func(m mocks)
		wantErr   error
		check     func(t *testing.T, res *reservation.Reservation)
	}

	tests := []testCase{
		{
			name: "ExtendReturnDateRecomputesTotal",
			params: reservation.UpdateParams{
				ReturnDate: ptr(date(2025, 3, 6)),
			},
			setupMock: func(m mocks) {
				m.repo.EXPECT().GetReservation(gomock.Any(), id).Return(stored(), nil)
				m.repo.EXPECT().UpdateReservation(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, res *reservation.Reservation) {
				assert.Equal(t, int64(5*3500), res.Total)
			},
		},
		{
			name: "ActivateSyncsVehicle",
			params: reservation.UpdateParams{
				Status: ptr(reservation.StatusActive),
			},
			setupMock: func(m mocks) {
				m.repo.EXPECT().GetReservation(gomock.Any(), id).Return(stored(), nil)
				m.repo.EXPECT().UpdateReservation(gomock.Any(), gomock.Any()).Return(nil)
				m.syncer.EXPECT().
					SyncVehicle(gomock.Any(), vehicleID).
					Return(vehicle.StatusReserved, nil)
			},
			check: func(t *testing.T, res *reservation.Reservation) {
				assert.Equal(t, reservation.StatusActive, res.Status)
			},
		},
		{
			name: "PendingToCompletedRejected",
			params: reservation.UpdateParams{
				Status: ptr(reservation.StatusCompleted),
			},
			setupMock: func(m mocks) {
				m.repo.EXPECT().GetReservation(gomock.Any(), id).Return(stored(), nil)
			},
			wantErr: lifecycle.ErrIllegalTransition,
		},
		{
			name: "InvertedRangeRejected",
			params: reservation.UpdateParams{
				ReturnDate: ptr(date(2025, 2, 1)),
			},
			setupMock: func(m mocks) {
				m.repo.EXPECT().GetReservation(gomock.Any(), id).Return(stored(), nil)
			},
			wantErr: reservation.ErrInvalidRange,
		},
		{
			name: "VehicleChangeRechecksConflict",
			params: reservation.UpdateParams{
				VehicleID: ptr(uuid.New()),
			},
			setupMock: func(m mocks) {
				m.repo.EXPECT().GetReservation(gomock.Any(), id).Return(stored(), nil)
				m.vehicles.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(&vehicle.Vehicle{PricePerDay: 3500}, nil)
				m.repo.EXPECT().
					HasOverlapping(gomock.Any(), clientID, gomock.Any(), id).
					Return(true, nil)
			},
			wantErr: reservation.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			res, err := svc.Update(context.Background(), id, tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)

				return
			}

			require.NoError(t, err)

			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestService_SetStatus_NoOp(t *testing.T) {
	svc, m := newService(t)

	id := uuid.New()
	m.repo.EXPECT().GetReservation(gomock.Any(), id).Return(&reservation.Reservation{
		ID:     id,
		Status: reservation.StatusActive,
	}, nil)

	// No update, no sync.
	err := svc.SetStatus(context.Background(), id, reservation.StatusActive)
	assert.NoError(t, err)
}

func TestService_ResetToPending(t *testing.T) {
	svc, m := newService(t)

	id := uuid.New()
	vehicleID := uuid.New()

	m.repo.EXPECT().GetReservation(gomock.Any(), id).Return(&reservation.Reservation{
		ID:        id,
		VehicleID: vehicleID,
		Status:    reservation.StatusActive,
	}, nil)
	m.repo.EXPECT().
		UpdateReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, res *reservation.Reservation) error {
			assert.Equal(t, reservation.StatusPending, res.Status)
			return nil
		})
	m.syncer.EXPECT().
		SyncVehicle(gomock.Any(), vehicleID).
		Return(vehicle.StatusAvailable, nil)

	assert.NoError(t, svc.ResetToPending(context.Background(), id))
}

func TestService_Delete(t *testing.T) {
	id := uuid.New()
	vehicleID := uuid.New()

	stored := &reservation.Reservation{ID: id, VehicleID: vehicleID, Status: reservation.StatusPending}

	type testCase struct {
		name      string
		setupMock func(m mocks)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m mocks) {
				m.repo.EXPECT().GetReservation(gomock.Any(), id).Return(stored, nil)
				m.contracts.EXPECT().ExistsForReservation(gomock.Any(), id).Return(false, nil)
				m.repo.EXPECT().DeleteReservation(gomock.Any(), id).Return(nil)
				m.syncer.EXPECT().
					SyncVehicle(gomock.Any(), vehicleID).
					Return(vehicle.StatusAvailable, nil)
			},
		},
		{
			name: "LinkedContractBlocks",
			setupMock: func(m mocks) {
				m.repo.EXPECT().GetReservation(gomock.Any(), id).Return(stored, nil)
				m.contracts.EXPECT().ExistsForReservation(gomock.Any(), id).Return(true, nil)
			},
			wantErr: reservation.ErrContractExists,
		},
		{
			name: "NotFound",
			setupMock: func(m mocks) {
				m.repo.EXPECT().GetReservation(gomock.Any(), id).Return(nil, reservation.ErrNotFound)
			},
			wantErr: reservation.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			res, err := svc.Delete(context.Background(), id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, id, res.ID)
		})
	}
}
