package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AmarisOsorio/DiunsoloRentaCar-sub001/internal/contract"
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

const selectContractColumns = `
	c.id, c.reservation_id, c.status, c.start_date, c.end_date,
	c.status_sheet, c.lease, c.lease_pdf, c.generation_status,
	c.created_at, c.updated_at
`

func scanContract(s scanner) (*contract.Contract, error) {
	var c contract.Contract

	var (
		statusStr     string
		genStatusStr  string
		statusSheetJS []byte
		leaseJS       []byte
		leasePDF      sql.NullString
	)

	if err := s.Scan(
		&c.ID, &c.ReservationID, &statusStr, &c.StartDate, &c.EndDate,
		&statusSheetJS, &leaseJS, &leasePDF, &genStatusStr,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	c.Status = contract.Status(statusStr)
	c.GenerationStatus = contract.GenerationStatus(genStatusStr)
	c.Documents.LeasePDF = leasePDF.String

	if len(statusSheetJS) > 0 {
		if err := json.Unmarshal(statusSheetJS, &c.StatusSheet); err != nil {
			return nil, fmt.Errorf("decoding status sheet: %w", err)
		}
	}

	if len(leaseJS) > 0 {
		if err := json.Unmarshal(leaseJS, &c.Lease); err != nil {
			return nil, fmt.Errorf("decoding lease: %w", err)
		}
	}

	return &c, nil
}

func encodeNested(c *contract.Contract) (statusSheet, lease []byte, err error) {
	statusSheet, err = json.Marshal(c.StatusSheet)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding status sheet: %w", err)
	}

	lease, err = json.Marshal(c.Lease)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding lease: %w", err)
	}

	return statusSheet, lease, nil
}

// UpsertContract inserts the contract keyed by reservation_id. A conflicting
// insert updates the row in place; the previous lease_pdf reference is kept
// so the last published artifact stays addressable until the next render.
func (s *Store) UpsertContract(ctx context.Context, c *contract.Contract) error {
	statusSheet, lease, err := encodeNested(c)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO contracts (reservation_id, status, start_date, end_date, status_sheet, lease, generation_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (reservation_id) DO UPDATE SET
			status = EXCLUDED.status,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			status_sheet = EXCLUDED.status_sheet,
			lease = EXCLUDED.lease,
			generation_status = EXCLUDED.generation_status,
			updated_at = NOW()
		RETURNING id, lease_pdf, created_at, updated_at
	`

	var leasePDF sql.NullString

	err = s.db.QueryRowContext(ctx, query,
		c.ReservationID,
		c.Status,
		c.StartDate,
		c.EndDate,
		statusSheet,
		lease,
		c.GenerationStatus,
	).Scan(&c.ID, &leasePDF, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting contract: %w", err)
	}

	c.Documents.LeasePDF = leasePDF.String

	return nil
}

func (s *Store) GetContract(ctx context.Context, id uuid.UUID) (*contract.Contract, error) {
	query := `SELECT ` + selectContractColumns + `
		FROM contracts c
		WHERE c.id = $1`

	c, err := scanContract(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, contract.ErrNotFound
		}

		return nil, fmt.Errorf("getting contract: %w", err)
	}

	return c, nil
}

func (s *Store) GetByReservation(ctx context.Context, reservationID uuid.UUID) (*contract.Contract, error) {
	query := `SELECT ` + selectContractColumns + `
		FROM contracts c
		WHERE c.reservation_id = $1`

	c, err := scanContract(s.db.QueryRowContext(ctx, query, reservationID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, contract.ErrNotFound
		}

		return nil, fmt.Errorf("getting contract by reservation: %w", err)
	}

	return c, nil
}

func (s *Store) ListContracts(ctx context.Context) ([]*contract.Contract, error) {
	query := `SELECT ` + selectContractColumns + `
		FROM contracts c
		ORDER BY c.created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing contracts: %w", err)
	}
	defer rows.Close()

	var contracts []*contract.Contract

	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contract: %w", err)
		}

		contracts = append(contracts, c)
	}

	return contracts, rows.Err()
}

func (s *Store) UpdateContract(ctx context.Context, c *contract.Contract) error {
	statusSheet, lease, err := encodeNested(c)
	if err != nil {
		return err
	}

	query := `
		UPDATE contracts
		SET status = $1, end_date = $2, status_sheet = $3, lease = $4, updated_at = NOW()
		WHERE id = $5
	`

	result, err := s.db.ExecContext(ctx, query,
		c.Status,
		c.EndDate,
		statusSheet,
		lease,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating contract: %w", err)
	}

	if aff, _ := result.RowsAffected(); aff == 0 {
		return contract.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteContract(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting contract: %w", err)
	}

	if aff, _ := result.RowsAffected(); aff == 0 {
		return contract.ErrNotFound
	}

	return nil
}

func (s *Store) ExistsForReservation(ctx context.Context, reservationID uuid.UUID) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM contracts WHERE reservation_id = $1)`, reservationID,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking contract existence: %w", err)
	}

	return exists, nil
}

// UpdateDocuments publishes a new artifact reference together with the
// generation outcome. The reference is overwritten, never appended.
func (s *Store) UpdateDocuments(ctx context.Context, id uuid.UUID, leasePDF string, status contract.GenerationStatus) error {
	query := `
		UPDATE contracts
		SET lease_pdf = $1, generation_status = $2, updated_at = NOW()
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, leasePDF, status, id)
	if err != nil {
		return fmt.Errorf("updating contract documents: %w", err)
	}

	if aff, _ := result.RowsAffected(); aff == 0 {
		return contract.ErrNotFound
	}

	return nil
}

func (s *Store) UpdateGenerationStatus(ctx context.Context, id uuid.UUID, status contract.GenerationStatus) error {
	query := `
		UPDATE contracts
		SET generation_status = $1, updated_at = NOW()
		WHERE id = $2
	`

	result, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating generation status: %w", err)
	}

	if aff, _ := result.RowsAffected(); aff == 0 {
		return contract.ErrNotFound
	}

	return nil
}

// ListStaleGenerations returns contracts whose document generation failed or
// has been pending since before the cutoff, so the retry job can re-enqueue
// them. Pending covers a crash between the contract write and the render.
func (s *Store) ListStaleGenerations(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	query := `
		SELECT id FROM contracts
		WHERE generation_status = 'failed'
			OR (generation_status = 'pending' AND updated_at < $1)
		ORDER BY updated_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("listing stale generations: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning contract id: %w", err)
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}
