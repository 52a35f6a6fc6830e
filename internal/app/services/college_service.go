package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/recruithub/internal/app/models"
	"github.com/campushq/recruithub/internal/app/models/dto"
	"github.com/campushq/recruithub/internal/app/repositories"
)

// CollegeService handles partner college operations
type CollegeService struct {
	collegeRepo *repositories.CollegeRepository
	logger      zerolog.Logger
}

// NewCollegeService creates a new CollegeService
func NewCollegeService(collegeRepo *repositories.CollegeRepository, logger zerolog.Logger) *CollegeService {
	return &CollegeService{
		collegeRepo: collegeRepo,
		logger:      logger,
	}
}

// Create registers a new partner college
func (s *CollegeService) Create(ctx context.Context, req *dto.CreateCollegeRequest) (*dto.CollegeResponse, error) {
	college := &models.College{
		Name:      req.Name,
		City:      req.City,
		SpocName:  req.SpocName,
		SpocEmail: req.SpocEmail,
		SpocPhone: req.SpocPhone,
	}

	if err := s.collegeRepo.Create(ctx, college); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("collegeId", college.ID).Str("name", college.Name).Msg("College created")

	resp := dto.FromCollege(college)
	return &resp, nil
}

// GetByID retrieves one college
func (s *CollegeService) GetByID(ctx context.Context, id int64) (*dto.CollegeResponse, error) {
	college, err := s.collegeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromCollege(college)
	return &resp, nil
}

// GetAll lists every partner college
func (s *CollegeService) GetAll(ctx context.Context) ([]dto.CollegeResponse, error) {
	colleges, err := s.collegeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CollegeResponse, 0, len(colleges))
	for _, college := range colleges {
		responses = append(responses, dto.FromCollege(college))
	}

	return responses, nil
}

// Update modifies a college's details
func (s *CollegeService) Update(ctx context.Context, id int64, req *dto.UpdateCollegeRequest) (*dto.CollegeResponse, error) {
	college := &models.College{
		ID:        id,
		Name:      req.Name,
		City:      req.City,
		SpocName:  req.SpocName,
		SpocEmail: req.SpocEmail,
		SpocPhone: req.SpocPhone,
	}

	if err := s.collegeRepo.Update(ctx, college); err != nil {
		return nil, err
	}

	resp := dto.FromCollege(college)
	return &resp, nil
}

// Delete removes a college. Colleges with drives are protected.
func (s *CollegeService) Delete(ctx context.Context, id int64) error {
	return s.collegeRepo.Delete(ctx, id)
}
