package board

import (
	"errors"
	"reflect"
	"testing"

	"github.com/campushq/recruithub/internal/app/models"
)

func testBoard(t *testing.T) *Board {
	t.Helper()
	return BuildBoard([]*models.Student{
		student(1, record(2, models.RoundStatusInProgress)),
		student(2, record(2, models.RoundStatusNotStarted)),
	}, rounds(2, 3))
}

func TestApplyTransition_MovesStudent(t *testing.T) {
	b := testBoard(t)

	tr, err := ApplyTransition(b, 1, RoundKey(2), RoundKey(3))
	if err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}

	if tr.Record.RoundNumber != 3 || tr.Record.Status != models.RoundStatusNotStarted {
		t.Errorf("expected new record {round 3, NOT_STARTED}, got %+v", tr.Record)
	}
	if tr.Record.StudentID != 1 {
		t.Errorf("record targets student %d, want 1", tr.Record.StudentID)
	}

	// Exclusivity: present in destination, absent from source, count unchanged.
	for _, entry := range tr.Board.Bucket(RoundKey(2)).Entries {
		if entry.Student.ID == 1 {
			t.Error("student still present in source bucket")
		}
	}
	dest := tr.Board.Bucket(RoundKey(3)).Entries
	if len(dest) != 1 || dest[0].Student.ID != 1 {
		t.Fatalf("expected student 1 in destination, got %+v", dest)
	}
	if tr.Board.Size() != 2 {
		t.Errorf("board size changed: %d", tr.Board.Size())
	}
}

func TestApplyTransition_AppendsToBack(t *testing.T) {
	b := testBoard(t)

	if _, err := ApplyTransition(b, 1, RoundKey(2), RoundKey(3)); err != nil {
		t.Fatalf("first move: %v", err)
	}
	if _, err := ApplyTransition(b, 2, RoundKey(2), RoundKey(3)); err != nil {
		t.Fatalf("second move: %v", err)
	}

	dest := b.Bucket(RoundKey(3)).Entries
	if len(dest) != 2 || dest[0].Student.ID != 1 || dest[1].Student.ID != 2 {
		t.Fatalf("expected arrivals appended in order [1 2], got %+v", dest)
	}
}

func TestApplyTransition_NoOp(t *testing.T) {
	b := testBoard(t)
	before := b.Clone()

	_, err := ApplyTransition(b, 1, RoundKey(2), RoundKey(2))
	if !errors.Is(err, ErrNoOpTransition) {
		t.Fatalf("expected ErrNoOpTransition, got %v", err)
	}
	if !reflect.DeepEqual(b, before) {
		t.Error("no-op transition mutated the board")
	}
}

func TestApplyTransition_Stale(t *testing.T) {
	b := testBoard(t)

	// Student 1 is in round-2, not round-3.
	_, err := ApplyTransition(b, 1, RoundKey(3), RoundKey(2))
	if !errors.Is(err, ErrStaleTransition) {
		t.Fatalf("expected ErrStaleTransition, got %v", err)
	}

	// Unknown student behaves the same way.
	_, err = ApplyTransition(b, 99, RoundKey(2), RoundKey(3))
	if !errors.Is(err, ErrStaleTransition) {
		t.Fatalf("expected ErrStaleTransition for unknown student, got %v", err)
	}
}

func TestApplyTransition_TerminalTargetsRejected(t *testing.T) {
	for _, target := range []BucketKey{Hired, Rejected} {
		b := testBoard(t)
		before := b.Clone()

		_, err := ApplyTransition(b, 1, RoundKey(2), target)
		if !errors.Is(err, ErrUnsupportedTransition) {
			t.Fatalf("drop onto %s: expected ErrUnsupportedTransition, got %v", target, err)
		}
		if !reflect.DeepEqual(b, before) {
			t.Errorf("rejected transition onto %s mutated the board", target)
		}
	}
}

func TestApplyTransition_UnknownTargetBucket(t *testing.T) {
	b := testBoard(t)
	_, err := ApplyTransition(b, 1, RoundKey(2), RoundKey(9))
	if !errors.Is(err, ErrUnsupportedTransition) {
		t.Fatalf("expected ErrUnsupportedTransition for unconfigured round, got %v", err)
	}
}

func TestApplyTransition_PreviousIsExactSnapshot(t *testing.T) {
	b := testBoard(t)
	want := b.Clone()

	tr, err := ApplyTransition(b, 1, RoundKey(2), RoundKey(3))
	if err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}
	if !reflect.DeepEqual(tr.Previous, want) {
		t.Error("Previous snapshot differs from the pre-transition board")
	}
	// The snapshot must be isolated from further mutation of the live board.
	if _, err := ApplyTransition(tr.Board, 2, RoundKey(2), RoundKey(3)); err != nil {
		t.Fatalf("second move: %v", err)
	}
	if !reflect.DeepEqual(tr.Previous, want) {
		t.Error("Previous snapshot mutated by later transition")
	}
}

func TestParseBucketKey(t *testing.T) {
	tests := []struct {
		in      string
		want    BucketKey
		wantErr bool
	}{
		{in: "round-2", want: RoundKey(2)},
		{in: "round-10", want: RoundKey(10)},
		{in: "hired", want: Hired},
		{in: "rejected", want: Rejected},
		{in: "round-0", wantErr: true},
		{in: "round-x", wantErr: true},
		{in: "", wantErr: true},
		{in: "fired", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseBucketKey(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseBucketKey(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseBucketKey(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBucketKey(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if got.String() != tt.in {
			t.Errorf("round trip of %q produced %q", tt.in, got.String())
		}
	}
}
