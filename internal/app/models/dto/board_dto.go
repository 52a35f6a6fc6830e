package dto

import "github.com/campushq/recruithub/internal/app/board"

// BoardEntryResponse represents one card of a board bucket
type BoardEntryResponse struct {
	Student StudentResponse      `json:"student"`
	Current *RoundRecordResponse `json:"current,omitempty"`
}

// BucketResponse represents one column of the board
type BucketResponse struct {
	Key     string               `json:"key" example:"round-2"`
	Name    string               `json:"name,omitempty" example:"Technical Interview"`
	Entries []BoardEntryResponse `json:"entries"`
}

// BoardDiagnosticsResponse surfaces data-quality counters observed while the
// board was derived
type BoardDiagnosticsResponse struct {
	UnknownRounds int `json:"unknownRounds" example:"0"`
	AmbiguousTies int `json:"ambiguousTies" example:"0"`
	Unassigned    int `json:"unassigned" example:"3"`
}

// BoardResponse represents the derived pipeline board of a drive
type BoardResponse struct {
	DriveID     int64                    `json:"driveId" example:"1"`
	Buckets     []BucketResponse         `json:"buckets"`
	Unassigned  []StudentResponse        `json:"unassigned"`
	Diagnostics BoardDiagnosticsResponse `json:"diagnostics"`
}

// TransitionRequest represents a drag-and-drop move of a student between
// buckets. From and To are bucket keys in wire form ("round-2", "hired",
// "rejected").
type TransitionRequest struct {
	StudentID int64  `json:"studentId" binding:"required,min=1"`
	From      string `json:"from" binding:"required"`
	To        string `json:"to" binding:"required"`
}

// FromBoard converts a derived board to its response representation
func FromBoard(driveID int64, b *board.Board) BoardResponse {
	resp := BoardResponse{
		DriveID:    driveID,
		Buckets:    make([]BucketResponse, 0, len(b.Buckets)),
		Unassigned: make([]StudentResponse, 0, len(b.Unassigned)),
		Diagnostics: BoardDiagnosticsResponse{
			UnknownRounds: b.Diagnostics.UnknownRounds,
			AmbiguousTies: b.Diagnostics.AmbiguousTies,
			Unassigned:    b.Diagnostics.Unassigned,
		},
	}

	for _, bucket := range b.Buckets {
		bucketResp := BucketResponse{
			Key:     bucket.Key.String(),
			Name:    bucket.Name,
			Entries: make([]BoardEntryResponse, 0, len(bucket.Entries)),
		}
		for _, entry := range bucket.Entries {
			entryResp := BoardEntryResponse{Student: FromStudent(entry.Student)}
			if entry.CurrentRecord != nil {
				record := entry.CurrentRecord
				entryResp.Current = &RoundRecordResponse{
					RoundNumber: record.RoundNumber,
					Status:      record.Status,
					PanelID:     record.PanelID,
					Score:       record.Score,
					Feedback:    record.Feedback,
					UpdatedAt:   record.UpdatedAt,
				}
			}
			bucketResp.Entries = append(bucketResp.Entries, entryResp)
		}
		resp.Buckets = append(resp.Buckets, bucketResp)
	}

	for _, student := range b.Unassigned {
		resp.Unassigned = append(resp.Unassigned, FromStudent(student))
	}

	return resp
}
