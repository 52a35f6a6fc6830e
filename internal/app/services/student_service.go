package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/recruithub/internal/app/models"
	"github.com/campushq/recruithub/internal/app/models/dto"
	"github.com/campushq/recruithub/internal/app/repositories"
	"github.com/campushq/recruithub/internal/pkg/apperrors"
	"github.com/campushq/recruithub/internal/pkg/helpers"
	"github.com/campushq/recruithub/internal/pkg/validation"
)

// StudentService handles drive roster operations
type StudentService struct {
	studentRepo *repositories.StudentRepository
	driveRepo   *repositories.DriveRepository
	roundRepo   *repositories.RoundRepository
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo *repositories.StudentRepository,
	driveRepo *repositories.DriveRepository,
	roundRepo *repositories.RoundRepository,
	logger zerolog.Logger,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		driveRepo:   driveRepo,
		roundRepo:   roundRepo,
		logger:      logger,
	}
}

// Create adds a student to a drive's roster
func (s *StudentService) Create(ctx context.Context, driveID int64, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	if _, err := s.driveRepo.GetByID(ctx, driveID); err != nil {
		return nil, err
	}

	if !validation.CompiledPatterns.RegistrationNo.MatchString(req.RegistrationNo) {
		return nil, apperrors.NewBadRequestError("registration number must match the college format")
	}

	student := &models.Student{
		DriveID:        driveID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Department:     req.Department,
		RegistrationNo: req.RegistrationNo,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	resp := dto.FromStudent(student)
	return &resp, nil
}

// GetByID retrieves a student with their round history
func (s *StudentService) GetByID(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rounds, err := s.roundRepo.GetByStudentID(ctx, id)
	if err != nil {
		return nil, err
	}
	student.Rounds = rounds

	resp := dto.FromStudent(student)
	return &resp, nil
}

// GetRoster lists one page of a drive's roster
func (s *StudentService) GetRoster(ctx context.Context, driveID int64, page, size int) (*dto.PaginatedResponse, error) {
	if _, err := s.driveRepo.GetByID(ctx, driveID); err != nil {
		return nil, err
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	students, err := s.studentRepo.GetByDriveID(ctx, driveID, offset, limit)
	if err != nil {
		return nil, err
	}

	total, err := s.studentRepo.CountByDriveID(ctx, driveID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		items = append(items, dto.FromStudent(student))
	}

	return &dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}, nil
}

// Update modifies a student's display attributes
func (s *StudentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !validation.CompiledPatterns.RegistrationNo.MatchString(req.RegistrationNo) {
		return nil, apperrors.NewBadRequestError("registration number must match the college format")
	}

	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.Email = req.Email
	student.Department = req.Department
	student.RegistrationNo = req.RegistrationNo

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	resp := dto.FromStudent(student)
	return &resp, nil
}

// Delete removes a student from the roster
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}
