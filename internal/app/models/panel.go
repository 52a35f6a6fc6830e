package models

import "time"

// Panel represents an interviewer panel assigned to one round of a drive
type Panel struct {
	ID          int64     `json:"id" db:"id"`
	DriveID     int64     `json:"driveId" db:"drive_id"`
	RoundNumber int       `json:"roundNumber" db:"round_number"`
	Name        string    `json:"name" db:"name"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Members []PanelMember `json:"members,omitempty"`
}

// PanelMember links a user (interviewer) to a panel
type PanelMember struct {
	ID       int64     `json:"id" db:"id"`
	PanelID  int64     `json:"panelId" db:"panel_id"`
	UserID   int64     `json:"userId" db:"user_id"`
	JoinedAt time.Time `json:"joinedAt" db:"joined_at"`

	User *User `json:"user,omitempty"` // Relation, no db tag
}
