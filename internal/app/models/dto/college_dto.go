package dto

import "github.com/campushq/recruithub/internal/app/models"

// CreateCollegeRequest represents the payload for creating a college
type CreateCollegeRequest struct {
	Name      string  `json:"name" binding:"required,min=2,max=150"`
	City      string  `json:"city" binding:"required,min=2,max=100"`
	SpocName  string  `json:"spocName" binding:"required"`
	SpocEmail string  `json:"spocEmail" binding:"required,email"`
	SpocPhone *string `json:"spocPhone,omitempty"`
}

// UpdateCollegeRequest represents the payload for updating a college
type UpdateCollegeRequest struct {
	Name      string  `json:"name" binding:"required,min=2,max=150"`
	City      string  `json:"city" binding:"required,min=2,max=100"`
	SpocName  string  `json:"spocName" binding:"required"`
	SpocEmail string  `json:"spocEmail" binding:"required,email"`
	SpocPhone *string `json:"spocPhone,omitempty"`
}

// CollegeResponse represents a college in API responses
type CollegeResponse struct {
	ID        int64   `json:"id" example:"1"`
	Name      string  `json:"name" example:"National Institute of Technology"`
	City      string  `json:"city" example:"Pune"`
	SpocName  string  `json:"spocName" example:"Priya Sharma"`
	SpocEmail string  `json:"spocEmail" example:"placements@nit.edu"`
	SpocPhone *string `json:"spocPhone,omitempty" example:"+91-9800000000"`
}

// FromCollege converts a college model to its response representation
func FromCollege(college *models.College) CollegeResponse {
	return CollegeResponse{
		ID:        college.ID,
		Name:      college.Name,
		City:      college.City,
		SpocName:  college.SpocName,
		SpocEmail: college.SpocEmail,
		SpocPhone: college.SpocPhone,
	}
}
