package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/client"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetClient(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	query := `
		SELECT id, name, last_name, email, phone, passport_number, license_number, address, created_at
		FROM clients
		WHERE id = $1
	`

	var c client.Client

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.LastName, &c.Email, &c.Phone,
		&c.PassportNumber, &c.LicenseNumber, &c.Address, &c.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, client.ErrNotFound
		}

		return nil, fmt.Errorf("getting client: %w", err)
	}

	return &c, nil
}

func (s *Store) ClientExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1)`, id,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking client existence: %w", err)
	}

	return exists, nil
}
