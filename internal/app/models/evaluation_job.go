package models

import "time"

// EvaluationJobStatus represents the lifecycle state of a pre-screening job
type EvaluationJobStatus string

// Evaluation job status constants
const (
	JobStatusPending    EvaluationJobStatus = "PENDING"
	JobStatusInProgress EvaluationJobStatus = "IN_PROGRESS"
	JobStatusCompleted  EvaluationJobStatus = "COMPLETED"
	JobStatusFailed     EvaluationJobStatus = "FAILED"
)

// IsTerminal reports whether the job has finished, successfully or not
func (s EvaluationJobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// EvaluationJob represents an asynchronous pre-screening evaluation run for a
// drive. The job scores every student's round-1 result against the configured
// threshold and writes PASSED/FAILED round records.
type EvaluationJob struct {
	ID           int64               `json:"id" db:"id"`
	DriveID      int64               `json:"driveId" db:"drive_id"`
	Status       EvaluationJobStatus `json:"status" db:"status"`
	Total        int                 `json:"total" db:"total"`
	Processed    int                 `json:"processed" db:"processed"`
	PassedCount  int                 `json:"passedCount" db:"passed_count"`
	FailedCount  int                 `json:"failedCount" db:"failed_count"`
	ErrorMessage *string             `json:"errorMessage,omitempty" db:"error_message"`
	StartedAt    *time.Time          `json:"startedAt,omitempty" db:"started_at"`
	FinishedAt   *time.Time          `json:"finishedAt,omitempty" db:"finished_at"`
	CreatedAt    time.Time           `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time           `json:"updatedAt" db:"updated_at"`
}
