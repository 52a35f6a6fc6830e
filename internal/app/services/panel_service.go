package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campushq/recruithub/internal/app/models"
	"github.com/campushq/recruithub/internal/app/models/dto"
	"github.com/campushq/recruithub/internal/app/repositories"
	"github.com/campushq/recruithub/internal/pkg/apperrors"
)

// PanelService handles interviewer panel operations
type PanelService struct {
	panelRepo *repositories.PanelRepository
	driveRepo *repositories.DriveRepository
	userRepo  *repositories.UserRepository
	roundRepo *repositories.RoundRepository
	logger    zerolog.Logger
}

// NewPanelService creates a new PanelService
func NewPanelService(
	panelRepo *repositories.PanelRepository,
	driveRepo *repositories.DriveRepository,
	userRepo *repositories.UserRepository,
	roundRepo *repositories.RoundRepository,
	logger zerolog.Logger,
) *PanelService {
	return &PanelService{
		panelRepo: panelRepo,
		driveRepo: driveRepo,
		userRepo:  userRepo,
		roundRepo: roundRepo,
		logger:    logger,
	}
}

// Create creates a panel for one round of a drive, optionally with initial
// members
func (s *PanelService) Create(ctx context.Context, driveID int64, req *dto.CreatePanelRequest) (*dto.PanelResponse, error) {
	drive, err := s.driveRepo.GetByID(ctx, driveID)
	if err != nil {
		return nil, err
	}

	configured := false
	for _, round := range drive.Rounds {
		if round.RoundNumber == req.RoundNumber {
			configured = true
			break
		}
	}
	if !configured {
		return nil, apperrors.NewCustomError(apperrors.ErrRoundNotConfigured,
			fmt.Sprintf("round %d is not configured for drive %d", req.RoundNumber, driveID))
	}

	panel := &models.Panel{
		DriveID:     driveID,
		RoundNumber: req.RoundNumber,
		Name:        req.Name,
	}

	if err := s.panelRepo.Create(ctx, panel); err != nil {
		return nil, err
	}

	for _, userID := range req.MemberIDs {
		if err := s.addMember(ctx, panel.ID, userID); err != nil {
			return nil, err
		}
	}

	s.logger.Info().Int64("panelId", panel.ID).Int64("driveId", driveID).Int("round", req.RoundNumber).Msg("Panel created")

	return s.GetByID(ctx, panel.ID)
}

// GetByID retrieves a panel with its members
func (s *PanelService) GetByID(ctx context.Context, id int64) (*dto.PanelResponse, error) {
	panel, err := s.panelRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromPanel(panel)
	return &resp, nil
}

// GetByDriveID lists the panels of a drive
func (s *PanelService) GetByDriveID(ctx context.Context, driveID int64) ([]dto.PanelResponse, error) {
	if _, err := s.driveRepo.GetByID(ctx, driveID); err != nil {
		return nil, err
	}

	panels, err := s.panelRepo.GetByDriveID(ctx, driveID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PanelResponse, 0, len(panels))
	for _, panel := range panels {
		members, err := s.panelRepo.GetMembers(ctx, panel.ID)
		if err != nil {
			return nil, err
		}
		panel.Members = members
		responses = append(responses, dto.FromPanel(panel))
	}

	return responses, nil
}

// Delete removes a panel
func (s *PanelService) Delete(ctx context.Context, id int64) error {
	return s.panelRepo.Delete(ctx, id)
}

// AddMember adds an interviewer to a panel
func (s *PanelService) AddMember(ctx context.Context, panelID int64, req *dto.AddPanelMemberRequest) (*dto.PanelResponse, error) {
	if _, err := s.panelRepo.GetByID(ctx, panelID); err != nil {
		return nil, err
	}

	if err := s.addMember(ctx, panelID, req.UserID); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, panelID)
}

// RemoveMember removes an interviewer from a panel
func (s *PanelService) RemoveMember(ctx context.Context, panelID, userID int64) error {
	return s.panelRepo.RemoveMember(ctx, panelID, userID)
}

// AssignToStudent attaches a panel to a student's record for the panel's round
func (s *PanelService) AssignToStudent(ctx context.Context, panelID, studentID int64) error {
	panel, err := s.panelRepo.GetByID(ctx, panelID)
	if err != nil {
		return err
	}

	return s.roundRepo.AssignPanel(ctx, studentID, panel.RoundNumber, panelID)
}

func (s *PanelService) addMember(ctx context.Context, panelID, userID int64) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.panelRepo.AddMember(ctx, panelID, userID)
}
