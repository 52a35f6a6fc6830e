package dto

import (
	"time"

	"github.com/campushq/recruithub/internal/app/models"
)

// CreatePanelRequest represents the payload for creating a panel
type CreatePanelRequest struct {
	RoundNumber int     `json:"roundNumber" binding:"required,min=2"`
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	MemberIDs   []int64 `json:"memberIds,omitempty" binding:"omitempty,dive,min=1"`
}

// AddPanelMemberRequest represents the payload for adding an interviewer
type AddPanelMemberRequest struct {
	UserID int64 `json:"userId" binding:"required,min=1"`
}

// PanelMemberResponse represents one interviewer of a panel
type PanelMemberResponse struct {
	UserID    int64     `json:"userId" example:"7"`
	FirstName string    `json:"firstName" example:"Ravi"`
	LastName  string    `json:"lastName" example:"Iyer"`
	Email     string    `json:"email" example:"ravi.iyer@acme.com"`
	JoinedAt  time.Time `json:"joinedAt"`
}

// PanelResponse represents a panel in API responses
type PanelResponse struct {
	ID          int64                 `json:"id" example:"3"`
	DriveID     int64                 `json:"driveId" example:"1"`
	RoundNumber int                   `json:"roundNumber" example:"2"`
	Name        string                `json:"name" example:"Tech Panel A"`
	Members     []PanelMemberResponse `json:"members,omitempty"`
}

// FromPanel converts a panel model to its response representation
func FromPanel(panel *models.Panel) PanelResponse {
	resp := PanelResponse{
		ID:          panel.ID,
		DriveID:     panel.DriveID,
		RoundNumber: panel.RoundNumber,
		Name:        panel.Name,
	}
	for _, member := range panel.Members {
		memberResp := PanelMemberResponse{
			UserID:   member.UserID,
			JoinedAt: member.JoinedAt,
		}
		if member.User != nil {
			memberResp.FirstName = member.User.FirstName
			memberResp.LastName = member.User.LastName
			memberResp.Email = member.User.Email
		}
		resp.Members = append(resp.Members, memberResp)
	}
	return resp
}
