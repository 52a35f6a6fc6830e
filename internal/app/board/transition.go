package board

import (
	"errors"

	"github.com/campushq/recruithub/internal/app/models"
)

// Transition validation errors. They are signals for the caller to translate
// into user feedback, not failures of the board itself.
var (
	// ErrNoOpTransition: source and destination are the same bucket.
	ErrNoOpTransition = errors.New("transition is a no-op")

	// ErrStaleTransition: the student is no longer in the source bucket. The
	// board was rebuilt underneath the caller, who must re-fetch before
	// allowing further moves.
	ErrStaleTransition = errors.New("stale transition: student not in source bucket")

	// ErrUnsupportedTransition: the destination is not a droppable round
	// bucket. Hired and Rejected are outcomes of evaluation, never direct
	// drop targets.
	ErrUnsupportedTransition = errors.New("unsupported transition target")
)

// Transition is the result of a successful ApplyTransition call
type Transition struct {
	// Board is the mutated board, returned for immediate rendering.
	Board *Board

	// Previous is an exact snapshot of the board before the move. Callers
	// revert to it when persistence fails, instead of re-deriving.
	Previous *Board

	// Record is the new round record to persist for the student. Manual moves
	// always enter the destination round as NOT_STARTED; terminal statuses
	// are assigned by evaluators, not by drags.
	Record models.RoundRecord
}

// ApplyTransition models one drag of a student between two buckets as an
// optimistic local update: the board is mutated synchronously and the caller
// persists Record afterwards, exactly once, reverting to Previous on failure.
func ApplyTransition(b *Board, studentID int64, from, to BucketKey) (*Transition, error) {
	if from == to {
		return nil, ErrNoOpTransition
	}
	if to.Kind != KindRound {
		return nil, ErrUnsupportedTransition
	}

	target := b.Bucket(to)
	if target == nil {
		return nil, ErrUnsupportedTransition
	}

	source := b.Bucket(from)
	if source == nil {
		return nil, ErrStaleTransition
	}

	idx := -1
	for i, entry := range source.Entries {
		if entry.Student != nil && entry.Student.ID == studentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrStaleTransition
	}

	previous := b.Clone()

	entry := source.Entries[idx]
	source.Entries = append(source.Entries[:idx], source.Entries[idx+1:]...)

	record := models.RoundRecord{
		StudentID:   studentID,
		DriveID:     entryDriveID(entry),
		RoundNumber: to.Round,
		Status:      models.RoundStatusNotStarted,
	}

	moved := entry
	moved.CurrentRecord = &record
	// New arrivals go to the back of the destination column.
	target.Entries = append(target.Entries, moved)

	return &Transition{Board: b, Previous: previous, Record: record}, nil
}

func entryDriveID(e Entry) int64 {
	if e.CurrentRecord != nil {
		return e.CurrentRecord.DriveID
	}
	if e.Student != nil {
		return e.Student.DriveID
	}
	return 0
}
