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

// DriveService handles recruitment drive operations
type DriveService struct {
	driveRepo   *repositories.DriveRepository
	collegeRepo *repositories.CollegeRepository
	logger      zerolog.Logger
}

// NewDriveService creates a new DriveService
func NewDriveService(
	driveRepo *repositories.DriveRepository,
	collegeRepo *repositories.CollegeRepository,
	logger zerolog.Logger,
) *DriveService {
	return &DriveService{
		driveRepo:   driveRepo,
		collegeRepo: collegeRepo,
		logger:      logger,
	}
}

// validateRounds rejects duplicate round numbers before they reach the
// database constraint
func validateRounds(rounds []dto.DriveRoundRequest) error {
	seen := make(map[int]bool, len(rounds))
	for _, round := range rounds {
		if seen[round.RoundNumber] {
			return apperrors.NewBadRequestError(fmt.Sprintf("round %d configured twice", round.RoundNumber))
		}
		seen[round.RoundNumber] = true
	}
	return nil
}

func toDriveRounds(rounds []dto.DriveRoundRequest) []models.DriveRound {
	result := make([]models.DriveRound, 0, len(rounds))
	for _, round := range rounds {
		result = append(result, models.DriveRound{
			RoundNumber: round.RoundNumber,
			Name:        round.Name,
			StartsAt:    round.StartsAt,
			EndsAt:      round.EndsAt,
			MinScore:    round.MinScore,
		})
	}
	return result
}

// Create creates a drive with its round configuration. New drives start in
// DRAFT status.
func (s *DriveService) Create(ctx context.Context, req *dto.CreateDriveRequest) (*dto.DriveResponse, error) {
	if _, err := s.collegeRepo.GetByID(ctx, req.CollegeID); err != nil {
		return nil, err
	}

	if err := validateRounds(req.Rounds); err != nil {
		return nil, err
	}

	drive := &models.Drive{
		Name:      req.Name,
		Company:   req.Company,
		CollegeID: req.CollegeID,
		Status:    models.DriveStatusDraft,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Rounds:    toDriveRounds(req.Rounds),
	}

	if err := s.driveRepo.Create(ctx, drive); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("driveId", drive.ID).Str("name", drive.Name).Int("rounds", len(drive.Rounds)).Msg("Drive created")

	resp := dto.FromDrive(drive)
	return &resp, nil
}

// GetByID retrieves one drive with its round configuration
func (s *DriveService) GetByID(ctx context.Context, id int64) (*dto.DriveResponse, error) {
	drive, err := s.driveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromDrive(drive)
	return &resp, nil
}

// GetAll lists drives, optionally filtered by college
func (s *DriveService) GetAll(ctx context.Context, collegeID int64) ([]dto.DriveResponse, error) {
	drives, err := s.driveRepo.GetAll(ctx, collegeID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.DriveResponse, 0, len(drives))
	for _, drive := range drives {
		responses = append(responses, dto.FromDrive(drive))
	}

	return responses, nil
}

// Update modifies a drive. Rounds are replaced only when present in the
// request.
func (s *DriveService) Update(ctx context.Context, id int64, req *dto.UpdateDriveRequest) (*dto.DriveResponse, error) {
	existing, err := s.driveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	drive := &models.Drive{
		ID:        id,
		Name:      req.Name,
		Company:   req.Company,
		CollegeID: existing.CollegeID,
		Status:    req.Status,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	if req.Rounds != nil {
		if err := validateRounds(req.Rounds); err != nil {
			return nil, err
		}
		drive.Rounds = toDriveRounds(req.Rounds)
	}

	if err := s.driveRepo.Update(ctx, drive); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete removes a drive and everything that hangs off it
func (s *DriveService) Delete(ctx context.Context, id int64) error {
	return s.driveRepo.Delete(ctx, id)
}
