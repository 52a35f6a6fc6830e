package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campushq/recruithub/internal/app/board"
	"github.com/campushq/recruithub/internal/app/models/dto"
	"github.com/campushq/recruithub/internal/app/repositories"
	"github.com/campushq/recruithub/internal/pkg/apperrors"
)

// BoardService derives pipeline boards and applies drag-and-drop transitions.
// The board itself is never stored; it is recomputed from the roster's round
// histories on every request, so the database stays the single source of truth.
type BoardService struct {
	driveRepo   *repositories.DriveRepository
	studentRepo *repositories.StudentRepository
	roundRepo   *repositories.RoundRepository
	logger      zerolog.Logger
}

// NewBoardService creates a new BoardService
func NewBoardService(
	driveRepo *repositories.DriveRepository,
	studentRepo *repositories.StudentRepository,
	roundRepo *repositories.RoundRepository,
	logger zerolog.Logger,
) *BoardService {
	return &BoardService{
		driveRepo:   driveRepo,
		studentRepo: studentRepo,
		roundRepo:   roundRepo,
		logger:      logger,
	}
}

// GetBoard derives the current board of a drive
func (s *BoardService) GetBoard(ctx context.Context, driveID int64) (*dto.BoardResponse, error) {
	b, err := s.deriveBoard(ctx, driveID)
	if err != nil {
		return nil, err
	}

	resp := dto.FromBoard(driveID, b)
	return &resp, nil
}

// MoveStudent applies one drag-and-drop transition and persists the resulting
// round record. The board mutation is optimistic: a failed write discards the
// mutated board and surfaces ErrPersistFailure so the UI rolls the card back
// to the untouched state.
func (s *BoardService) MoveStudent(ctx context.Context, driveID int64, req *dto.TransitionRequest) (*dto.BoardResponse, error) {
	from, err := board.ParseBucketKey(req.From)
	if err != nil {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("invalid source bucket %q", req.From))
	}
	to, err := board.ParseBucketKey(req.To)
	if err != nil {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("invalid destination bucket %q", req.To))
	}

	b, err := s.deriveBoard(ctx, driveID)
	if err != nil {
		return nil, err
	}

	transition, err := board.ApplyTransition(b, req.StudentID, from, to)
	if err != nil {
		return nil, err
	}

	record := transition.Record
	record.DriveID = driveID
	if err := s.roundRepo.SetStudentRound(ctx, &record); err != nil {
		s.logger.Error().Err(err).
			Int64("driveId", driveID).
			Int64("studentId", req.StudentID).
			Str("from", req.From).
			Str("to", req.To).
			Msg("Round transition write failed, reverting board")
		return nil, apperrors.NewCustomError(apperrors.ErrPersistFailure, "could not save the move, the board was not changed")
	}

	s.logger.Info().
		Int64("driveId", driveID).
		Int64("studentId", req.StudentID).
		Str("from", req.From).
		Str("to", req.To).
		Msg("Student moved")

	resp := dto.FromBoard(driveID, transition.Board)
	return &resp, nil
}

// deriveBoard loads the drive's configuration and roster and builds the board
func (s *BoardService) deriveBoard(ctx context.Context, driveID int64) (*board.Board, error) {
	drive, err := s.driveRepo.GetByID(ctx, driveID)
	if err != nil {
		return nil, err
	}

	students, err := s.studentRepo.GetRosterWithRounds(ctx, driveID)
	if err != nil {
		return nil, err
	}

	b := board.BuildBoard(students, drive.Rounds)

	d := b.Diagnostics
	if d.UnknownRounds > 0 || d.AmbiguousTies > 0 {
		s.logger.Warn().
			Int64("driveId", driveID).
			Int("unknownRounds", d.UnknownRounds).
			Int("ambiguousTies", d.AmbiguousTies).
			Int("unassigned", d.Unassigned).
			Msg("Board derived with data-quality findings")
	}

	return b, nil
}
