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

// DriveRepository handles database operations for drives and their round
// configuration
type DriveRepository struct {
	db *pgxpool.Pool
}

// NewDriveRepository creates a new drive repository
func NewDriveRepository(db *pgxpool.Pool) *DriveRepository {
	return &DriveRepository{
		db: db,
	}
}

// Create creates a new drive together with its configured rounds
func (r *DriveRepository) Create(ctx context.Context, drive *models.Drive) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO drives (name, company, college_id, status, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRow(ctx, query,
		drive.Name, drive.Company, drive.CollegeID, drive.Status, drive.StartDate, drive.EndDate,
	).Scan(&drive.ID, &drive.CreatedAt, &drive.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "drives_college_id_name_key") {
			return apperrors.ErrDriveAlreadyExists
		}
		return fmt.Errorf("error creating drive: %w", err)
	}

	if err := insertRounds(ctx, tx, drive.ID, drive.Rounds); err != nil {
		return err
	}
	for i := range drive.Rounds {
		drive.Rounds[i].DriveID = drive.ID
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a drive by ID, including its round configuration
func (r *DriveRepository) GetByID(ctx context.Context, id int64) (*models.Drive, error) {
	query := `
		SELECT id, name, company, college_id, status, start_date, end_date, created_at, updated_at
		FROM drives
		WHERE id = $1
	`

	var drive models.Drive
	err := r.db.QueryRow(ctx, query, id).Scan(
		&drive.ID,
		&drive.Name,
		&drive.Company,
		&drive.CollegeID,
		&drive.Status,
		&drive.StartDate,
		&drive.EndDate,
		&drive.CreatedAt,
		&drive.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDriveNotFound
		}
		return nil, fmt.Errorf("error retrieving drive: %w", err)
	}

	rounds, err := r.GetRounds(ctx, id)
	if err != nil {
		return nil, err
	}
	drive.Rounds = rounds

	return &drive, nil
}

// GetAll retrieves all drives, optionally filtered by college
func (r *DriveRepository) GetAll(ctx context.Context, collegeID int64) ([]*models.Drive, error) {
	query := `
		SELECT id, name, company, college_id, status, start_date, end_date, created_at, updated_at
		FROM drives
	`
	var args []interface{}
	if collegeID > 0 {
		query += ` WHERE college_id = $1`
		args = append(args, collegeID)
	}
	query += ` ORDER BY start_date DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drives []*models.Drive
	for rows.Next() {
		var drive models.Drive
		if err := rows.Scan(
			&drive.ID,
			&drive.Name,
			&drive.Company,
			&drive.CollegeID,
			&drive.Status,
			&drive.StartDate,
			&drive.EndDate,
			&drive.CreatedAt,
			&drive.UpdatedAt,
		); err != nil {
			return nil, err
		}
		drives = append(drives, &drive)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return drives, nil
}

// GetRounds retrieves the configured rounds of a drive in round-number order
func (r *DriveRepository) GetRounds(ctx context.Context, driveID int64) ([]models.DriveRound, error) {
	query := `
		SELECT id, drive_id, round_number, name, starts_at, ends_at, min_score
		FROM drive_rounds
		WHERE drive_id = $1
		ORDER BY round_number
	`

	rows, err := r.db.Query(ctx, query, driveID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving drive rounds: %w", err)
	}
	defer rows.Close()

	var rounds []models.DriveRound
	for rows.Next() {
		var round models.DriveRound
		if err := rows.Scan(
			&round.ID,
			&round.DriveID,
			&round.RoundNumber,
			&round.Name,
			&round.StartsAt,
			&round.EndsAt,
			&round.MinScore,
		); err != nil {
			return nil, err
		}
		rounds = append(rounds, round)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rounds, nil
}

// Update updates a drive's fields and replaces its round configuration when
// rounds are provided.
func (r *DriveRepository) Update(ctx context.Context, drive *models.Drive) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE drives
		SET name = $1, company = $2, college_id = $3, status = $4, start_date = $5, end_date = $6, updated_at = NOW()
		WHERE id = $7
	`

	cmdTag, err := tx.Exec(ctx, query,
		drive.Name, drive.Company, drive.CollegeID, drive.Status, drive.StartDate, drive.EndDate, drive.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "drives_college_id_name_key") {
			return apperrors.ErrDriveAlreadyExists
		}
		return fmt.Errorf("error updating drive: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDriveNotFound
	}

	if drive.Rounds != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM drive_rounds WHERE drive_id = $1`, drive.ID); err != nil {
			return fmt.Errorf("error clearing drive rounds: %w", err)
		}
		if err := insertRounds(ctx, tx, drive.ID, drive.Rounds); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Delete deletes a drive and its dependent rows
func (r *DriveRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM drives WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting drive: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDriveNotFound
	}

	return nil
}

func insertRounds(ctx context.Context, tx pgx.Tx, driveID int64, rounds []models.DriveRound) error {
	for i := range rounds {
		err := tx.QueryRow(ctx, `
			INSERT INTO drive_rounds (drive_id, round_number, name, starts_at, ends_at, min_score)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			driveID, rounds[i].RoundNumber, rounds[i].Name, rounds[i].StartsAt, rounds[i].EndsAt, rounds[i].MinScore,
		).Scan(&rounds[i].ID)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "drive_rounds_drive_id_round_number_key") {
				return apperrors.NewConflictError(fmt.Sprintf("round %d configured twice", rounds[i].RoundNumber))
			}
			return fmt.Errorf("error creating drive round: %w", err)
		}
	}
	return nil
}
