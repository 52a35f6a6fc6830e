package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/recruithub/internal/app/models"
	"github.com/campushq/recruithub/internal/pkg/apperrors"
)

// RoundRepository handles database operations for per-student round records
type RoundRepository struct {
	db *pgxpool.Pool
}

// NewRoundRepository creates a new round repository
func NewRoundRepository(db *pgxpool.Pool) *RoundRepository {
	return &RoundRepository{
		db: db,
	}
}

// SetStudentRound upserts a student's record for one round. One record per
// (student, round) pair; repeating the same write is a no-op apart from the
// updated timestamp, which makes board transitions safe to retry.
func (r *RoundRepository) SetStudentRound(ctx context.Context, record *models.RoundRecord) error {
	query := `
		INSERT INTO round_records (student_id, drive_id, round_number, status, panel_id, evaluator_id, score, feedback, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (student_id, round_number) DO UPDATE
		SET status = EXCLUDED.status,
		    panel_id = EXCLUDED.panel_id,
		    evaluator_id = EXCLUDED.evaluator_id,
		    score = EXCLUDED.score,
		    feedback = EXCLUDED.feedback,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		record.StudentID, record.DriveID, record.RoundNumber, record.Status,
		record.PanelID, record.EvaluatorID, record.Score, record.Feedback,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error upserting round record: %w", err)
	}

	return nil
}

// UpdateOutcome records the evaluation result of a student's round
func (r *RoundRepository) UpdateOutcome(ctx context.Context, studentID int64, roundNumber int, status models.RoundStatus, score *float64, feedback *string, evaluatorID *int64) error {
	query := `
		UPDATE round_records
		SET status = $1, score = $2, feedback = $3, evaluator_id = $4, updated_at = NOW()
		WHERE student_id = $5 AND round_number = $6
	`

	cmdTag, err := r.db.Exec(ctx, query, status, score, feedback, evaluatorID, studentID, roundNumber)
	if err != nil {
		return fmt.Errorf("error updating round outcome: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotInDrive
	}

	return nil
}

// AssignPanel attaches a panel to a student's round record
func (r *RoundRepository) AssignPanel(ctx context.Context, studentID int64, roundNumber int, panelID int64) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE round_records
		SET panel_id = $1, updated_at = NOW()
		WHERE student_id = $2 AND round_number = $3`,
		panelID, studentID, roundNumber)
	if err != nil {
		return fmt.Errorf("error assigning panel: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotInDrive
	}

	return nil
}

// GetByStudentID retrieves a student's round history in chronological order
func (r *RoundRepository) GetByStudentID(ctx context.Context, studentID int64) ([]models.RoundRecord, error) {
	query := `
		SELECT id, student_id, drive_id, round_number, status, panel_id, evaluator_id, score, feedback, created_at, updated_at
		FROM round_records
		WHERE student_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving round records: %w", err)
	}
	defer rows.Close()

	var records []models.RoundRecord
	for rows.Next() {
		var record models.RoundRecord
		if err := rows.Scan(
			&record.ID,
			&record.StudentID,
			&record.DriveID,
			&record.RoundNumber,
			&record.Status,
			&record.PanelID,
			&record.EvaluatorID,
			&record.Score,
			&record.Feedback,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetByStudentAndRound retrieves a single round record
func (r *RoundRepository) GetByStudentAndRound(ctx context.Context, studentID int64, roundNumber int) (*models.RoundRecord, error) {
	query := `
		SELECT id, student_id, drive_id, round_number, status, panel_id, evaluator_id, score, feedback, created_at, updated_at
		FROM round_records
		WHERE student_id = $1 AND round_number = $2
	`

	var record models.RoundRecord
	err := r.db.QueryRow(ctx, query, studentID, roundNumber).Scan(
		&record.ID,
		&record.StudentID,
		&record.DriveID,
		&record.RoundNumber,
		&record.Status,
		&record.PanelID,
		&record.EvaluatorID,
		&record.Score,
		&record.Feedback,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotInDrive
		}
		return nil, fmt.Errorf("error retrieving round record: %w", err)
	}

	return &record, nil
}
