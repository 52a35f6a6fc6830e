package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/recruithub/internal/app/models"
	"github.com/campushq/recruithub/internal/pkg/apperrors"
	"github.com/campushq/recruithub/internal/pkg/dberrors"
)

// CollegeRepository handles database operations for colleges
type CollegeRepository struct {
	db *pgxpool.Pool
}

// NewCollegeRepository creates a new college repository
func NewCollegeRepository(db *pgxpool.Pool) *CollegeRepository {
	return &CollegeRepository{
		db: db,
	}
}

// Create creates a new college
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	query := `
		INSERT INTO colleges (name, city, spoc_name, spoc_email, spoc_phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		college.Name, college.City, college.SpocName, college.SpocEmail, college.SpocPhone,
	).Scan(&college.ID, &college.CreatedAt, &college.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "colleges_name_key") {
			return apperrors.ErrCollegeAlreadyExists
		}
		return fmt.Errorf("error creating college: %w", err)
	}

	return nil
}

// GetByID retrieves a college by ID
func (r *CollegeRepository) GetByID(ctx context.Context, id int64) (*models.College, error) {
	query := `
		SELECT id, name, city, spoc_name, spoc_email, spoc_phone, created_at, updated_at
		FROM colleges
		WHERE id = $1
	`

	var college models.College
	err := r.db.QueryRow(ctx, query, id).Scan(
		&college.ID,
		&college.Name,
		&college.City,
		&college.SpocName,
		&college.SpocEmail,
		&college.SpocPhone,
		&college.CreatedAt,
		&college.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, fmt.Errorf("error retrieving college: %w", err)
	}

	return &college, nil
}

// GetAll retrieves all colleges ordered by name
func (r *CollegeRepository) GetAll(ctx context.Context) ([]*models.College, error) {
	query := `
		SELECT id, name, city, spoc_name, spoc_email, spoc_phone, created_at, updated_at
		FROM colleges
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var colleges []*models.College
	for rows.Next() {
		var college models.College
		if err := rows.Scan(
			&college.ID,
			&college.Name,
			&college.City,
			&college.SpocName,
			&college.SpocEmail,
			&college.SpocPhone,
			&college.CreatedAt,
			&college.UpdatedAt,
		); err != nil {
			return nil, err
		}
		colleges = append(colleges, &college)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return colleges, nil
}

// Update updates an existing college
func (r *CollegeRepository) Update(ctx context.Context, college *models.College) error {
	query := `
		UPDATE colleges
		SET name = $1, city = $2, spoc_name = $3, spoc_email = $4, spoc_phone = $5, updated_at = NOW()
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		college.Name, college.City, college.SpocName, college.SpocEmail, college.SpocPhone, college.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "colleges_name_key") {
			return apperrors.ErrCollegeAlreadyExists
		}
		return fmt.Errorf("error updating college: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCollegeNotFound
	}

	return nil
}

// Delete deletes a college by ID. Colleges with drives cannot be deleted.
func (r *CollegeRepository) Delete(ctx context.Context, id int64) error {
	var hasDrives bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM drives WHERE college_id = $1)`,
		id).Scan(&hasDrives)
	if err != nil {
		return fmt.Errorf("error checking college drives: %w", err)
	}
	if hasDrives {
		return apperrors.ErrCollegeHasDrives
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM colleges WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting college: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCollegeNotFound
	}

	return nil
}
