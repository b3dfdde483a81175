package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/ocluk/caolan/internal/models"
)

// DetailRepo handles all detail-related database operations.
type DetailRepo struct {
	db *sql.DB
}

// CreateDetail inserts a new detail row and returns it with the assigned ID
func (r *DetailRepo) CreateDetail(ctx context.Context, name, address, dob, telephone string) (*models.Detail, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO Details (Name, Address, DOB, Telephone) VALUES (?, ?, ?, ?)`,
		name, address, dob, telephone,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert detail '%s': %w", name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get detail ID after insert: %w", err)
	}

	return &models.Detail{
		ID:          id,
		Name:        name,
		Address:     address,
		DateOfBirth: dob,
		Telephone:   telephone,
	}, nil
}

// GetDetailByID retrieves a single detail by its ID
func (r *DetailRepo) GetDetailByID(ctx context.Context, id int64) (*models.Detail, error) {
	detail := &models.Detail{}
	err := r.db.QueryRowContext(ctx,
		`SELECT _id, Name, Address, DOB, Telephone FROM Details WHERE _id = ?`,
		id,
	).Scan(&detail.ID, &detail.Name, &detail.Address, &detail.DateOfBirth, &detail.Telephone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("detail %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get detail %d: %w", id, err)
	}
	return detail, nil
}

// GetAllDetails retrieves every detail ordered by ID
func (r *DetailRepo) GetAllDetails(ctx context.Context) ([]*models.Detail, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT _id, Name, Address, DOB, Telephone FROM Details ORDER BY _id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query all details: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	details := make([]*models.Detail, 0, 10)
	for rows.Next() {
		detail := &models.Detail{}
		if err := rows.Scan(&detail.ID, &detail.Name, &detail.Address, &detail.DateOfBirth, &detail.Telephone); err != nil {
			return nil, fmt.Errorf("failed to scan detail row: %w", err)
		}
		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating detail rows: %w", err)
	}
	return details, nil
}

// UpdateDetail replaces all four fields of a detail.
// Reports false when no row has the given ID.
func (r *DetailRepo) UpdateDetail(ctx context.Context, id int64, name, address, dob, telephone string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE Details SET Name = ?, Address = ?, DOB = ?, Telephone = ? WHERE _id = ?`,
		name, address, dob, telephone, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update detail %d: %w", id, err)
	}
	return rowsAffected(result, "update", id)
}

// DeleteDetail removes a detail. Reports false when no row has the given ID.
func (r *DetailRepo) DeleteDetail(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM Details WHERE _id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete detail %d: %w", id, err)
	}
	return rowsAffected(result, "delete", id)
}
