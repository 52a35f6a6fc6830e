package models

import "time"

// Student defines a recruitment candidate based on the 'students' table.
// Department and registration number are display-only attributes; progress
// through a drive lives in the Rounds history.
type Student struct {
	ID             int64     `json:"id" db:"id"`
	DriveID        int64     `json:"driveId" db:"drive_id"`
	FirstName      string    `json:"firstName" db:"first_name"`
	LastName       string    `json:"lastName" db:"last_name"`
	Email          string    `json:"email" db:"email"`
	Department     string    `json:"department" db:"department"`
	RegistrationNo string    `json:"registrationNo" db:"registration_no"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`

	// Rounds holds the student's full round history, ordered by creation.
	// A student may accumulate several records while progressing through a
	// drive, or none at all if never assigned.
	Rounds []RoundRecord `json:"rounds,omitempty"`
}
