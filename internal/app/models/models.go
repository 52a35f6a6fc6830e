package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin     RoleType = "ADMIN"
	RoleRecruiter RoleType = "RECRUITER"
)

// IsValid checks whether the role is one of the known roles
func (r RoleType) IsValid() bool {
	return r == RoleAdmin || r == RoleRecruiter
}
