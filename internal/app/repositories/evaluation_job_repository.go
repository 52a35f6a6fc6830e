package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushq/recruithub/internal/app/models"
	"github.com/campushq/recruithub/internal/pkg/apperrors"
)

// EvaluationJobRepository handles database operations for pre-screening jobs
type EvaluationJobRepository struct {
	db *pgxpool.Pool
}

// NewEvaluationJobRepository creates a new evaluation job repository
func NewEvaluationJobRepository(db *pgxpool.Pool) *EvaluationJobRepository {
	return &EvaluationJobRepository{
		db: db,
	}
}

const jobColumns = `id, drive_id, status, total, processed, passed_count, failed_count, error_message, started_at, finished_at, created_at, updated_at`

func scanJob(row pgx.Row) (*models.EvaluationJob, error) {
	var job models.EvaluationJob
	err := row.Scan(
		&job.ID,
		&job.DriveID,
		&job.Status,
		&job.Total,
		&job.Processed,
		&job.PassedCount,
		&job.FailedCount,
		&job.ErrorMessage,
		&job.StartedAt,
		&job.FinishedAt,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Create creates a new pending job for a drive. The partial unique index on
// non-terminal jobs guarantees at most one running job per drive.
func (r *EvaluationJobRepository) Create(ctx context.Context, job *models.EvaluationJob) error {
	query := `
		INSERT INTO evaluation_jobs (drive_id, status, total, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, job.DriveID, job.Status, job.Total).
		Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		var pgErr interface{ SQLState() string }
		if errors.As(err, &pgErr) && pgErr.SQLState() == "23505" {
			return apperrors.ErrJobAlreadyRunning
		}
		return fmt.Errorf("error creating evaluation job: %w", err)
	}

	return nil
}

// GetByID retrieves a job by ID
func (r *EvaluationJobRepository) GetByID(ctx context.Context, id int64) (*models.EvaluationJob, error) {
	query := `SELECT ` + jobColumns + ` FROM evaluation_jobs WHERE id = $1`

	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("error retrieving evaluation job: %w", err)
	}

	return job, nil
}

// GetByDriveID retrieves all jobs of a drive, newest first
func (r *EvaluationJobRepository) GetByDriveID(ctx context.Context, driveID int64) ([]*models.EvaluationJob, error) {
	query := `SELECT ` + jobColumns + ` FROM evaluation_jobs WHERE drive_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, driveID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*models.EvaluationJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

// HasActiveJob reports whether a drive has a job that has not finished yet
func (r *EvaluationJobRepository) HasActiveJob(ctx context.Context, driveID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM evaluation_jobs
			WHERE drive_id = $1 AND status IN ($2, $3))`,
		driveID, models.JobStatusPending, models.JobStatusInProgress).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking active jobs: %w", err)
	}

	return exists, nil
}

// MarkInProgress transitions a pending job to IN_PROGRESS and stamps its start
// time. Returns ErrJobNotFound when the job is no longer pending.
func (r *EvaluationJobRepository) MarkInProgress(ctx context.Context, id int64, startedAt time.Time) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE evaluation_jobs
		SET status = $1, started_at = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4`,
		models.JobStatusInProgress, startedAt, id, models.JobStatusPending)
	if err != nil {
		return fmt.Errorf("error marking job in progress: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// UpdateProgress updates the running counters of a job
func (r *EvaluationJobRepository) UpdateProgress(ctx context.Context, id int64, processed, passed, failed int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE evaluation_jobs
		SET processed = $1, passed_count = $2, failed_count = $3, updated_at = NOW()
		WHERE id = $4`,
		processed, passed, failed, id)
	if err != nil {
		return fmt.Errorf("error updating job progress: %w", err)
	}

	return nil
}

// MarkCompleted finishes a job successfully with its final counters
func (r *EvaluationJobRepository) MarkCompleted(ctx context.Context, id int64, processed, passed, failed int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE evaluation_jobs
		SET status = $1, processed = $2, passed_count = $3, failed_count = $4, finished_at = NOW(), updated_at = NOW()
		WHERE id = $5`,
		models.JobStatusCompleted, processed, passed, failed, id)
	if err != nil {
		return fmt.Errorf("error completing job: %w", err)
	}

	return nil
}

// MarkFailed finishes a job with an error message
func (r *EvaluationJobRepository) MarkFailed(ctx context.Context, id int64, message string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE evaluation_jobs
		SET status = $1, error_message = $2, finished_at = NOW(), updated_at = NOW()
		WHERE id = $3`,
		models.JobStatusFailed, message, id)
	if err != nil {
		return fmt.Errorf("error failing job: %w", err)
	}

	return nil
}

// ListNonTerminal retrieves every job still pending or in progress
func (r *EvaluationJobRepository) ListNonTerminal(ctx context.Context) ([]*models.EvaluationJob, error) {
	query := `SELECT ` + jobColumns + ` FROM evaluation_jobs WHERE status IN ($1, $2) ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, models.JobStatusPending, models.JobStatusInProgress)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*models.EvaluationJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

// MarkAbandoned fails jobs whose runner goroutine is gone, identified by a
// stale updated_at. Used at startup and by the supervising poller.
func (r *EvaluationJobRepository) MarkAbandoned(ctx context.Context, staleBefore time.Time) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE evaluation_jobs
		SET status = $1, error_message = 'job abandoned: no progress from runner', finished_at = NOW(), updated_at = NOW()
		WHERE status IN ($2, $3) AND updated_at < $4`,
		models.JobStatusFailed, models.JobStatusPending, models.JobStatusInProgress, staleBefore)
	if err != nil {
		return 0, fmt.Errorf("error marking abandoned jobs: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
