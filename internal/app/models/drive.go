package models

import "time"

// DriveStatus represents the lifecycle state of a recruitment drive
type DriveStatus string

// Drive status constants
const (
	DriveStatusDraft     DriveStatus = "DRAFT"
	DriveStatusActive    DriveStatus = "ACTIVE"
	DriveStatusCompleted DriveStatus = "COMPLETED"
)

// Drive represents a campus recruitment drive in the database
type Drive struct {
	ID        int64       `json:"id" db:"id"`
	Name      string      `json:"name" db:"name"`
	Company   string      `json:"company" db:"company"`
	CollegeID int64       `json:"collegeId" db:"college_id"`
	Status    DriveStatus `json:"status" db:"status"`
	StartDate time.Time   `json:"startDate" db:"start_date"`
	EndDate   *time.Time  `json:"endDate,omitempty" db:"end_date"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time   `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	College *College     `json:"college,omitempty"`
	Rounds  []DriveRound `json:"rounds,omitempty"`
}

// DriveRound defines one configured interview round of a drive.
// Round numbers start at 1; round 1 is the pre-screening round handled by the
// evaluation job rather than the multi-round board.
type DriveRound struct {
	ID          int64      `json:"id" db:"id"`
	DriveID     int64      `json:"driveId" db:"drive_id"`
	RoundNumber int        `json:"roundNumber" db:"round_number"`
	Name        string     `json:"name" db:"name"`
	StartsAt    *time.Time `json:"startsAt,omitempty" db:"starts_at"`
	EndsAt      *time.Time `json:"endsAt,omitempty" db:"ends_at"`
	MinScore    *float64   `json:"minScore,omitempty" db:"min_score"` // Pass threshold used by pre-screening evaluation
}
