package dto

import (
	"time"

	"github.com/campushq/recruithub/internal/app/models"
)

// DriveRoundRequest configures one interview round when creating or updating
// a drive
type DriveRoundRequest struct {
	RoundNumber int        `json:"roundNumber" binding:"required,min=1"`
	Name        string     `json:"name" binding:"required,min=2,max=100"`
	StartsAt    *time.Time `json:"startsAt,omitempty"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
	MinScore    *float64   `json:"minScore,omitempty" binding:"omitempty,min=0,max=100"`
}

// CreateDriveRequest represents the payload for creating a drive
type CreateDriveRequest struct {
	Name      string              `json:"name" binding:"required,min=2,max=150"`
	Company   string              `json:"company" binding:"required,min=2,max=150"`
	CollegeID int64               `json:"collegeId" binding:"required,min=1"`
	StartDate time.Time           `json:"startDate" binding:"required"`
	EndDate   *time.Time          `json:"endDate,omitempty"`
	Rounds    []DriveRoundRequest `json:"rounds" binding:"required,min=1,dive"`
}

// UpdateDriveRequest represents the payload for updating a drive. Omitting
// rounds keeps the existing round configuration.
type UpdateDriveRequest struct {
	Name      string              `json:"name" binding:"required,min=2,max=150"`
	Company   string              `json:"company" binding:"required,min=2,max=150"`
	Status    models.DriveStatus  `json:"status" binding:"required,oneof=DRAFT ACTIVE COMPLETED"`
	StartDate time.Time           `json:"startDate" binding:"required"`
	EndDate   *time.Time          `json:"endDate,omitempty"`
	Rounds    []DriveRoundRequest `json:"rounds,omitempty" binding:"omitempty,min=1,dive"`
}

// DriveRoundResponse represents one configured round in API responses
type DriveRoundResponse struct {
	RoundNumber int        `json:"roundNumber" example:"2"`
	Name        string     `json:"name" example:"Technical Interview"`
	StartsAt    *time.Time `json:"startsAt,omitempty"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
	MinScore    *float64   `json:"minScore,omitempty" example:"60"`
}

// DriveResponse represents a drive in API responses
type DriveResponse struct {
	ID        int64                `json:"id" example:"1"`
	Name      string               `json:"name" example:"Campus Hiring 2026"`
	Company   string               `json:"company" example:"Acme Corp"`
	CollegeID int64                `json:"collegeId" example:"1"`
	Status    models.DriveStatus   `json:"status" example:"ACTIVE" enums:"DRAFT,ACTIVE,COMPLETED"`
	StartDate time.Time            `json:"startDate"`
	EndDate   *time.Time           `json:"endDate,omitempty"`
	Rounds    []DriveRoundResponse `json:"rounds,omitempty"`
}

// FromDrive converts a drive model to its response representation
func FromDrive(drive *models.Drive) DriveResponse {
	resp := DriveResponse{
		ID:        drive.ID,
		Name:      drive.Name,
		Company:   drive.Company,
		CollegeID: drive.CollegeID,
		Status:    drive.Status,
		StartDate: drive.StartDate,
		EndDate:   drive.EndDate,
	}
	for _, round := range drive.Rounds {
		resp.Rounds = append(resp.Rounds, DriveRoundResponse{
			RoundNumber: round.RoundNumber,
			Name:        round.Name,
			StartsAt:    round.StartsAt,
			EndsAt:      round.EndsAt,
			MinScore:    round.MinScore,
		})
	}
	return resp
}
