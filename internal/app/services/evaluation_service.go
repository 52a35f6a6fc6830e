package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/recruithub/internal/app/models"
	"github.com/campushq/recruithub/internal/app/models/dto"
	"github.com/campushq/recruithub/internal/app/repositories"
	"github.com/campushq/recruithub/internal/pkg/apperrors"
	"github.com/campushq/recruithub/internal/pkg/poller"
)

// EvaluationJobStore is the persistence surface EvaluationService needs for
// jobs. *repositories.EvaluationJobRepository implements it.
type EvaluationJobStore interface {
	Create(ctx context.Context, job *models.EvaluationJob) error
	GetByID(ctx context.Context, id int64) (*models.EvaluationJob, error)
	GetByDriveID(ctx context.Context, driveID int64) ([]*models.EvaluationJob, error)
	HasActiveJob(ctx context.Context, driveID int64) (bool, error)
	MarkInProgress(ctx context.Context, id int64, startedAt time.Time) error
	UpdateProgress(ctx context.Context, id int64, processed, passed, failed int) error
	MarkCompleted(ctx context.Context, id int64, processed, passed, failed int) error
	MarkFailed(ctx context.Context, id int64, message string) error
	ListNonTerminal(ctx context.Context) ([]*models.EvaluationJob, error)
	MarkAbandoned(ctx context.Context, staleBefore time.Time) (int64, error)
}

// EvaluationService runs asynchronous pre-screening jobs. A job scores every
// student's round-1 result against the drive's configured threshold and writes
// PASSED or FAILED round records. Each job runs in its own goroutine; a
// supervising poller fails jobs whose runner stopped reporting progress, which
// covers crashes and restarts.
type EvaluationService struct {
	jobRepo     EvaluationJobStore
	driveRepo   *repositories.DriveRepository
	studentRepo *repositories.StudentRepository
	roundRepo   *repositories.RoundRepository
	logger      zerolog.Logger

	staleAfter time.Duration
	supervisor *poller.Task

	mu      sync.Mutex
	running map[int64]struct{} // jobs owned by this process
}

// NewEvaluationService creates a new EvaluationService. The supervisor poller
// is created lazily on the first job and stops once no job is left running.
func NewEvaluationService(
	jobRepo EvaluationJobStore,
	driveRepo *repositories.DriveRepository,
	studentRepo *repositories.StudentRepository,
	roundRepo *repositories.RoundRepository,
	pollInterval time.Duration,
	staleAfter time.Duration,
	logger zerolog.Logger,
) *EvaluationService {
	if staleAfter <= 0 {
		staleAfter = 2 * time.Minute
	}
	s := &EvaluationService{
		jobRepo:     jobRepo,
		driveRepo:   driveRepo,
		studentRepo: studentRepo,
		roundRepo:   roundRepo,
		logger:      logger,
		staleAfter:  staleAfter,
		running:     make(map[int64]struct{}),
	}
	s.supervisor = poller.New("evaluation-supervisor", pollInterval, s.superviseCycle, logger)
	return s
}

// Resume restarts supervision of jobs left over from a previous process. Such
// jobs have no runner anymore; once their last progress write is older than
// staleAfter the supervisor marks them FAILED, which also releases the drive's
// active-job slot. Called once at startup.
func (s *EvaluationService) Resume(ctx context.Context) error {
	jobs, err := s.jobRepo.ListNonTerminal(ctx)
	if err != nil {
		return fmt.Errorf("error listing outstanding evaluation jobs: %w", err)
	}
	if len(jobs) == 0 {
		return nil
	}

	s.logger.Info().Int("count", len(jobs)).Msg("Supervising evaluation jobs left over from previous run")
	s.supervisor.Start(context.Background())
	return nil
}

// StartJob creates and launches a pre-screening job for a drive. At most one
// job may be active per drive.
func (s *EvaluationService) StartJob(ctx context.Context, driveID int64) (*dto.EvaluationJobResponse, error) {
	drive, err := s.driveRepo.GetByID(ctx, driveID)
	if err != nil {
		return nil, err
	}

	threshold, err := screeningThreshold(drive)
	if err != nil {
		return nil, err
	}

	active, err := s.jobRepo.HasActiveJob(ctx, driveID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, apperrors.ErrJobAlreadyRunning
	}

	students, err := s.studentRepo.GetRosterWithRounds(ctx, driveID)
	if err != nil {
		return nil, err
	}

	job := &models.EvaluationJob{
		DriveID: driveID,
		Status:  models.JobStatusPending,
		Total:   len(students),
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.running[job.ID] = struct{}{}
	s.mu.Unlock()

	// The runner outlives the request; it gets a fresh context.
	go s.runJob(context.Background(), job.ID, driveID, threshold, students)
	s.supervisor.Start(context.Background())

	resp := dto.FromEvaluationJob(job)
	return &resp, nil
}

// GetJob retrieves one job's state
func (s *EvaluationService) GetJob(ctx context.Context, id int64) (*dto.EvaluationJobResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromEvaluationJob(job)
	return &resp, nil
}

// GetJobsByDrive lists a drive's jobs, newest first
func (s *EvaluationService) GetJobsByDrive(ctx context.Context, driveID int64) ([]dto.EvaluationJobResponse, error) {
	if _, err := s.driveRepo.GetByID(ctx, driveID); err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.GetByDriveID(ctx, driveID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.EvaluationJobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, dto.FromEvaluationJob(job))
	}

	return responses, nil
}

// Shutdown stops the supervisor. Running jobs finish their current student and
// are picked up as abandoned by the next process if interrupted.
func (s *EvaluationService) Shutdown() {
	s.supervisor.Stop()
}

// screeningThreshold extracts the round-1 pass threshold from a drive's
// configuration
func screeningThreshold(drive *models.Drive) (float64, error) {
	for _, round := range drive.Rounds {
		if round.RoundNumber == 1 {
			if round.MinScore == nil {
				return 0, apperrors.NewCustomError(apperrors.ErrNoScreeningRound,
					"round 1 has no minimum score configured")
			}
			return *round.MinScore, nil
		}
	}
	return 0, apperrors.ErrNoScreeningRound
}

// runJob executes one pre-screening job to completion
func (s *EvaluationService) runJob(ctx context.Context, jobID, driveID int64, threshold float64, students []*models.Student) {
	defer func() {
		s.mu.Lock()
		delete(s.running, jobID)
		s.mu.Unlock()
	}()

	log := s.logger.With().Int64("jobId", jobID).Int64("driveId", driveID).Logger()

	if err := s.jobRepo.MarkInProgress(ctx, jobID, time.Now()); err != nil {
		log.Error().Err(err).Msg("Could not start evaluation job")
		return
	}

	log.Info().Int("students", len(students)).Float64("threshold", threshold).Msg("Evaluation job started")

	processed, passed, failed := 0, 0, 0
	for _, student := range students {
		score := screeningScore(student)
		status := models.RoundStatusFailed
		if score != nil && *score >= threshold {
			status = models.RoundStatusPassed
		}

		record := &models.RoundRecord{
			StudentID:   student.ID,
			DriveID:     driveID,
			RoundNumber: 1,
			Status:      status,
			Score:       score,
		}
		if err := s.roundRepo.SetStudentRound(ctx, record); err != nil {
			log.Error().Err(err).Int64("studentId", student.ID).Msg("Evaluation write failed")
			if markErr := s.jobRepo.MarkFailed(ctx, jobID, fmt.Sprintf("failed at student %d: %v", student.ID, err)); markErr != nil {
				log.Error().Err(markErr).Msg("Could not mark job failed")
			}
			return
		}

		processed++
		if status == models.RoundStatusPassed {
			passed++
		} else {
			failed++
		}

		// Progress writes double as the supervisor's liveness signal.
		if err := s.jobRepo.UpdateProgress(ctx, jobID, processed, passed, failed); err != nil {
			log.Warn().Err(err).Msg("Could not update job progress")
		}
	}

	if err := s.jobRepo.MarkCompleted(ctx, jobID, processed, passed, failed); err != nil {
		log.Error().Err(err).Msg("Could not complete evaluation job")
		return
	}

	log.Info().Int("processed", processed).Int("passed", passed).Int("failed", failed).Msg("Evaluation job completed")
}

// screeningScore returns the student's recorded round-1 score, if any
func screeningScore(student *models.Student) *float64 {
	for i := range student.Rounds {
		if student.Rounds[i].RoundNumber == 1 && student.Rounds[i].Score != nil {
			return student.Rounds[i].Score
		}
	}
	return nil
}

// superviseCycle fails abandoned jobs and reports done when nothing is left to
// watch, which stops the poller until the next StartJob.
func (s *EvaluationService) superviseCycle(ctx context.Context) (bool, error) {
	abandoned, err := s.jobRepo.MarkAbandoned(ctx, time.Now().Add(-s.staleAfter))
	if err != nil {
		return false, err
	}
	if abandoned > 0 {
		s.logger.Warn().Int64("count", abandoned).Msg("Marked abandoned evaluation jobs as failed")
	}

	jobs, err := s.jobRepo.ListNonTerminal(ctx)
	if err != nil {
		return false, err
	}

	return len(jobs) == 0, nil
}
