package models

import "time"

// College represents a partner college in the database
type College struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	City      string    `json:"city" db:"city"`
	SpocName  string    `json:"spocName" db:"spoc_name"`   // Single point of contact on the college side
	SpocEmail string    `json:"spocEmail" db:"spoc_email"` // Contact email of the SPOC
	SpocPhone *string   `json:"spocPhone,omitempty" db:"spoc_phone"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
