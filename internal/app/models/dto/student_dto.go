package dto

import (
	"time"

	"github.com/campushq/recruithub/internal/app/models"
)

// CreateStudentRequest represents the payload for adding a student to a roster
type CreateStudentRequest struct {
	FirstName      string `json:"firstName" binding:"required,min=2,max=50"`
	LastName       string `json:"lastName" binding:"required,min=2,max=50"`
	Email          string `json:"email" binding:"required,email"`
	Department     string `json:"department" binding:"required,min=2,max=100"`
	RegistrationNo string `json:"registrationNo" binding:"required"`
}

// UpdateStudentRequest represents the payload for updating a student
type UpdateStudentRequest struct {
	FirstName      string `json:"firstName" binding:"required,min=2,max=50"`
	LastName       string `json:"lastName" binding:"required,min=2,max=50"`
	Email          string `json:"email" binding:"required,email"`
	Department     string `json:"department" binding:"required,min=2,max=100"`
	RegistrationNo string `json:"registrationNo" binding:"required"`
}

// RoundRecordResponse represents one round history entry in API responses
type RoundRecordResponse struct {
	RoundNumber int                `json:"roundNumber" example:"2"`
	Status      models.RoundStatus `json:"status" example:"IN_PROGRESS" enums:"NOT_STARTED,IN_PROGRESS,COMPLETED,PASSED,FAILED"`
	PanelID     *int64             `json:"panelId,omitempty"`
	Score       *float64           `json:"score,omitempty" example:"72.5"`
	Feedback    *string            `json:"feedback,omitempty"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// StudentResponse represents a student in API responses
type StudentResponse struct {
	ID             int64                 `json:"id" example:"42"`
	DriveID        int64                 `json:"driveId" example:"1"`
	FirstName      string                `json:"firstName" example:"Arjun"`
	LastName       string                `json:"lastName" example:"Mehta"`
	Email          string                `json:"email" example:"arjun.mehta@nit.edu"`
	Department     string                `json:"department" example:"Computer Science"`
	RegistrationNo string                `json:"registrationNo" example:"CS20210042"`
	Rounds         []RoundRecordResponse `json:"rounds,omitempty"`
}

// FromStudent converts a student model to its response representation,
// including the round history when loaded
func FromStudent(student *models.Student) StudentResponse {
	resp := StudentResponse{
		ID:             student.ID,
		DriveID:        student.DriveID,
		FirstName:      student.FirstName,
		LastName:       student.LastName,
		Email:          student.Email,
		Department:     student.Department,
		RegistrationNo: student.RegistrationNo,
	}
	for _, record := range student.Rounds {
		resp.Rounds = append(resp.Rounds, RoundRecordResponse{
			RoundNumber: record.RoundNumber,
			Status:      record.Status,
			PanelID:     record.PanelID,
			Score:       record.Score,
			Feedback:    record.Feedback,
			UpdatedAt:   record.UpdatedAt,
		})
	}
	return resp
}
