package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/reservation"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectReservationColumns = `
	r.id, r.client_id, r.vehicle_id, r.start_date, r.return_date, r.status,
	r.price_per_day, r.total, r.created_at, r.updated_at
`

func scanReservation(s scanner) (*reservation.Reservation, error) {
	var res reservation.Reservation

	var statusStr string

	if err := s.Scan(
		&res.ID, &res.ClientID, &res.VehicleID, &res.StartDate, &res.ReturnDate,
		&statusStr, &res.PricePerDay, &res.Total, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		return nil, err
	}

	res.Status = reservation.Status(statusStr)

	return &res, nil
}

func (s *Store) CreateReservation(ctx context.Context, res *reservation.Reservation) error {
	query := `
		INSERT INTO reservations (client_id, vehicle_id, start_date, return_date, status, price_per_day, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		res.ClientID,
		res.VehicleID,
		res.StartDate,
		res.ReturnDate,
		res.Status,
		res.PricePerDay,
		res.Total,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating reservation: %w", err)
	}

	return nil
}

func (s *Store) GetReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	query := `SELECT ` + selectReservationColumns + `
		FROM reservations r
		WHERE r.id = $1`

	res, err := scanReservation(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, reservation.ErrNotFound
		}

		return nil, fmt.Errorf("getting reservation: %w", err)
	}

	return res, nil
}

func (s *Store) ListReservations(ctx context.Context, filter reservation.ListFilter) ([]*reservation.Reservation, error) {
	query := `SELECT ` + selectReservationColumns + `
		FROM reservations r
		WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND r.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.VehicleID != nil {
		query += fmt.Sprintf(" AND r.vehicle_id = $%d", argIdx)

		args = append(args, *filter.VehicleID)
		argIdx++
	}

	query += " ORDER BY r.start_date ASC, r.created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*reservation.Reservation

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning reservation: %w", err)
		}

		reservations = append(reservations, res)
	}

	return reservations, rows.Err()
}

func (s *Store) UpdateReservation(ctx context.Context, res *reservation.Reservation) error {
	query := `
		UPDATE reservations
		SET client_id = $1, vehicle_id = $2, start_date = $3, return_date = $4,
			status = $5, price_per_day = $6, total = $7, updated_at = NOW()
		WHERE id = $8
	`

	result, err := s.db.ExecContext(ctx, query,
		res.ClientID,
		res.VehicleID,
		res.StartDate,
		res.ReturnDate,
		res.Status,
		res.PricePerDay,
		res.Total,
		res.ID,
	)
	if err != nil {
		return fmt.Errorf("updating reservation: %w", err)
	}

	if aff, _ := result.RowsAffected(); aff == 0 {
		return reservation.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteReservation(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting reservation: %w", err)
	}

	if aff, _ := result.RowsAffected(); aff == 0 {
		return reservation.ErrNotFound
	}

	return nil
}

func (s *Store) HasOverlapping(ctx context.Context, clientID, vehicleID, exclude uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE client_id = $1 AND vehicle_id = $2
				AND status IN ('pending', 'active')
				AND ($3::uuid = '00000000-0000-0000-0000-000000000000' OR id <> $3)
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, clientID, vehicleID, exclude).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking overlapping reservation: %w", err)
	}

	return exists, nil
}

// HasActiveForVehicle reports whether any active reservation holds the
// vehicle. The lifecycle coordinator uses it to derive availability.
func (s *Store) HasActiveForVehicle(ctx context.Context, vehicleID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE vehicle_id = $1 AND status = 'active'
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, vehicleID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking active reservation: %w", err)
	}

	return exists, nil
}
