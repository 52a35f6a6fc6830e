package models

import "time"

// RoundStatus represents the status of a student within one interview round
type RoundStatus string

// Round status constants
const (
	RoundStatusNotStarted RoundStatus = "NOT_STARTED"
	RoundStatusInProgress RoundStatus = "IN_PROGRESS"
	RoundStatusCompleted  RoundStatus = "COMPLETED"
	RoundStatusPassed     RoundStatus = "PASSED"
	RoundStatusFailed     RoundStatus = "FAILED"
)

// IsValid checks whether the status is one of the known round statuses
func (s RoundStatus) IsValid() bool {
	switch s {
	case RoundStatusNotStarted, RoundStatusInProgress, RoundStatusCompleted,
		RoundStatusPassed, RoundStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether the status represents a finished evaluation
func (s RoundStatus) IsTerminal() bool {
	return s == RoundStatusPassed || s == RoundStatusFailed
}

// RoundRecord is one historical entry of a student's progress within a
// specific round of a drive
type RoundRecord struct {
	ID          int64       `json:"id" db:"id"`
	StudentID   int64       `json:"studentId" db:"student_id"`
	DriveID     int64       `json:"driveId" db:"drive_id"`
	RoundNumber int         `json:"roundNumber" db:"round_number"`
	Status      RoundStatus `json:"status" db:"status"`
	PanelID     *int64      `json:"panelId,omitempty" db:"panel_id"`
	EvaluatorID *int64      `json:"evaluatorId,omitempty" db:"evaluator_id"`
	Score       *float64    `json:"score,omitempty" db:"score"`
	Feedback    *string     `json:"feedback,omitempty" db:"feedback"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`
}
