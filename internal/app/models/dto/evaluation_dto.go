package dto

import (
	"time"

	"github.com/campushq/recruithub/internal/app/models"
)

// EvaluationJobResponse represents a pre-screening job in API responses
type EvaluationJobResponse struct {
	ID           int64                      `json:"id" example:"5"`
	DriveID      int64                      `json:"driveId" example:"1"`
	Status       models.EvaluationJobStatus `json:"status" example:"IN_PROGRESS" enums:"PENDING,IN_PROGRESS,COMPLETED,FAILED"`
	Total        int                        `json:"total" example:"120"`
	Processed    int                        `json:"processed" example:"45"`
	PassedCount  int                        `json:"passedCount" example:"30"`
	FailedCount  int                        `json:"failedCount" example:"15"`
	ErrorMessage *string                    `json:"errorMessage,omitempty"`
	StartedAt    *time.Time                 `json:"startedAt,omitempty"`
	FinishedAt   *time.Time                 `json:"finishedAt,omitempty"`
	CreatedAt    time.Time                  `json:"createdAt"`
}

// FromEvaluationJob converts a job model to its response representation
func FromEvaluationJob(job *models.EvaluationJob) EvaluationJobResponse {
	return EvaluationJobResponse{
		ID:           job.ID,
		DriveID:      job.DriveID,
		Status:       job.Status,
		Total:        job.Total,
		Processed:    job.Processed,
		PassedCount:  job.PassedCount,
		FailedCount:  job.FailedCount,
		ErrorMessage: job.ErrorMessage,
		StartedAt:    job.StartedAt,
		FinishedAt:   job.FinishedAt,
		CreatedAt:    job.CreatedAt,
	}
}
