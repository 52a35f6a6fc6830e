package board

import "github.com/campushq/recruithub/internal/app/models"

// Classification is the result of selecting a student's current round record
type Classification struct {
	// Record is the round record the student currently occupies, or nil when
	// the history is empty (the caller defaults such students to round 1).
	Record *models.RoundRecord

	// IsFinalPass is true when the student passed the last round they have
	// ever been in: terminal success, rendered as the Hired bucket.
	IsFinalPass bool

	// Ambiguous is true when several records matched the winning priority
	// tier and the first-occurrence tie-break decided. Diagnostic only.
	Ambiguous bool
}

// ClassifyCurrentRound selects the single round record that represents a
// student's current position in the pipeline.
//
// Priority order, first match wins:
//  1. any IN_PROGRESS record
//  2. any NOT_STARTED record
//  3. the record with the highest round number (histories that are all
//     COMPLETED/PASSED/FAILED)
//
// Ties within tiers 1 and 2 are broken by input order: the first occurrence
// wins. The rule is deterministic and covered by tests; Ambiguous flags when
// it fired so callers can log it.
func ClassifyCurrentRound(records []models.RoundRecord) Classification {
	if len(records) == 0 {
		return Classification{}
	}

	selected, ambiguous := selectByStatus(records, models.RoundStatusInProgress)
	if selected == nil {
		selected, ambiguous = selectByStatus(records, models.RoundStatusNotStarted)
	}

	maxRound := records[0].RoundNumber
	for i := range records[1:] {
		if records[i+1].RoundNumber > maxRound {
			maxRound = records[i+1].RoundNumber
		}
	}

	if selected == nil {
		// All records are settled; the furthest round reached is current.
		for i := range records {
			if records[i].RoundNumber == maxRound {
				selected = &records[i]
				break
			}
		}
	}

	return Classification{
		Record:      selected,
		IsFinalPass: selected.Status == models.RoundStatusPassed && selected.RoundNumber == maxRound,
		Ambiguous:   ambiguous,
	}
}

// selectByStatus returns the first record with the given status, and whether
// more than one matched.
func selectByStatus(records []models.RoundRecord, status models.RoundStatus) (*models.RoundRecord, bool) {
	var found *models.RoundRecord
	count := 0
	for i := range records {
		if records[i].Status == status {
			if found == nil {
				found = &records[i]
			}
			count++
		}
	}
	return found, count > 1
}
