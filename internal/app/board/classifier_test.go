package board

import (
	"testing"

	"github.com/campushq/recruithub/internal/app/models"
)

func record(round int, status models.RoundStatus) models.RoundRecord {
	return models.RoundRecord{RoundNumber: round, Status: status}
}

func TestClassifyCurrentRound_EmptyHistory(t *testing.T) {
	c := ClassifyCurrentRound(nil)
	if c.Record != nil {
		t.Fatalf("expected nil record for empty history, got %+v", c.Record)
	}
	if c.IsFinalPass {
		t.Fatal("empty history must not be a final pass")
	}
}

func TestClassifyCurrentRound_InProgressBeatsNotStarted(t *testing.T) {
	// IN_PROGRESS wins regardless of array order.
	orders := [][]models.RoundRecord{
		{record(2, models.RoundStatusInProgress), record(3, models.RoundStatusNotStarted)},
		{record(3, models.RoundStatusNotStarted), record(2, models.RoundStatusInProgress)},
	}
	for i, records := range orders {
		c := ClassifyCurrentRound(records)
		if c.Record == nil || c.Record.Status != models.RoundStatusInProgress {
			t.Errorf("order %d: expected IN_PROGRESS record selected, got %+v", i, c.Record)
		}
		if c.Record.RoundNumber != 2 {
			t.Errorf("order %d: expected round 2 selected, got %d", i, c.Record.RoundNumber)
		}
	}
}

func TestClassifyCurrentRound_TieBreakFirstOccurrence(t *testing.T) {
	tests := []struct {
		name      string
		records   []models.RoundRecord
		wantRound int
	}{
		{
			name: "two in progress",
			records: []models.RoundRecord{
				record(3, models.RoundStatusInProgress),
				record(2, models.RoundStatusInProgress),
			},
			wantRound: 3,
		},
		{
			name: "two not started",
			records: []models.RoundRecord{
				record(4, models.RoundStatusNotStarted),
				record(2, models.RoundStatusNotStarted),
			},
			wantRound: 4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ClassifyCurrentRound(tt.records)
			if c.Record.RoundNumber != tt.wantRound {
				t.Errorf("expected first occurrence (round %d) to win, got round %d", tt.wantRound, c.Record.RoundNumber)
			}
			if !c.Ambiguous {
				t.Error("expected tie-break to be flagged as ambiguous")
			}
		})
	}
}

func TestClassifyCurrentRound_SettledHistorySelectsMaxRound(t *testing.T) {
	records := []models.RoundRecord{
		record(1, models.RoundStatusPassed),
		record(3, models.RoundStatusCompleted),
		record(2, models.RoundStatusPassed),
	}
	c := ClassifyCurrentRound(records)
	if c.Record.RoundNumber != 3 {
		t.Fatalf("expected max round 3 selected, got %d", c.Record.RoundNumber)
	}
	if c.IsFinalPass {
		t.Error("COMPLETED at max round is not a final pass")
	}
}

func TestClassifyCurrentRound_FinalPass(t *testing.T) {
	tests := []struct {
		name    string
		records []models.RoundRecord
		want    bool
	}{
		{
			name:    "single passed record at its own max",
			records: []models.RoundRecord{record(3, models.RoundStatusPassed)},
			want:    true,
		},
		{
			name: "passed earlier rounds but round 3 pending",
			records: []models.RoundRecord{
				record(1, models.RoundStatusPassed),
				record(2, models.RoundStatusPassed),
				record(3, models.RoundStatusNotStarted),
			},
			want: false,
		},
		{
			name: "passed every round including the last",
			records: []models.RoundRecord{
				record(1, models.RoundStatusPassed),
				record(2, models.RoundStatusPassed),
				record(3, models.RoundStatusPassed),
			},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ClassifyCurrentRound(tt.records)
			if c.IsFinalPass != tt.want {
				t.Errorf("IsFinalPass = %v, want %v", c.IsFinalPass, tt.want)
			}
		})
	}
}

func TestClassifyCurrentRound_FailedSelected(t *testing.T) {
	records := []models.RoundRecord{
		record(1, models.RoundStatusPassed),
		record(2, models.RoundStatusFailed),
	}
	c := ClassifyCurrentRound(records)
	if c.Record.Status != models.RoundStatusFailed {
		t.Fatalf("expected FAILED record selected, got %s", c.Record.Status)
	}
	if c.IsFinalPass {
		t.Error("failed history must not be a final pass")
	}
}
