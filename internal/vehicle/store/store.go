package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/vehicle"
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

const selectVehicleColumns = `
	v.id, v.brand, v.model, v.year, v.color, v.plate, v.price_per_day, v.status,
	v.created_at, v.updated_at
`

func scanVehicle(s scanner) (*vehicle.Vehicle, error) {
	var v vehicle.Vehicle

	var statusStr string

	if err := s.Scan(
		&v.ID, &v.Brand, &v.Model, &v.Year, &v.Color, &v.Plate, &v.PricePerDay,
		&statusStr, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}

	v.Status = vehicle.Status(statusStr)

	return &v, nil
}

func (s *Store) GetVehicle(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	query := `SELECT ` + selectVehicleColumns + `
		FROM vehicles v
		WHERE v.id = $1`

	v, err := scanVehicle(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, vehicle.ErrNotFound
		}

		return nil, fmt.Errorf("getting vehicle: %w", err)
	}

	return v, nil
}

func (s *Store) ListVehicles(ctx context.Context) ([]*vehicle.Vehicle, error) {
	query := `SELECT ` + selectVehicleColumns + `
		FROM vehicles v
		ORDER BY v.brand, v.model, v.plate`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []*vehicle.Vehicle

	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning vehicle: %w", err)
		}

		vehicles = append(vehicles, v)
	}

	return vehicles, rows.Err()
}

func (s *Store) ListVehicleIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM vehicles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing vehicle ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning vehicle id: %w", err)
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status vehicle.Status) error {
	query := `
		UPDATE vehicles
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	res, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating vehicle status: %w", err)
	}

	if aff, _ := res.RowsAffected(); aff == 0 {
		return vehicle.ErrNotFound
	}

	return nil
}

func (s *Store) HasActiveMaintenance(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM maintenance_records
			WHERE vehicle_id = $1 AND active = TRUE
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking active maintenance: %w", err)
	}

	return exists, nil
}
