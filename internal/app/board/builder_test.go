package board

import (
	"testing"

	"github.com/campushq/recruithub/internal/app/models"
)

func student(id int64, records ...models.RoundRecord) *models.Student {
	return &models.Student{ID: id, DriveID: 1, Rounds: records}
}

func rounds(numbers ...int) []models.DriveRound {
	configured := make([]models.DriveRound, len(numbers))
	for i, n := range numbers {
		configured[i] = models.DriveRound{DriveID: 1, RoundNumber: n}
	}
	return configured
}

func TestBuildBoard_Scenario(t *testing.T) {
	// Student A is mid round 2; student B has no history.
	a := student(1, record(2, models.RoundStatusInProgress))
	b := student(2)

	board := BuildBoard([]*models.Student{a, b}, rounds(2, 3))

	round2 := board.Bucket(RoundKey(2))
	if round2 == nil || len(round2.Entries) != 1 || round2.Entries[0].Student.ID != 1 {
		t.Fatalf("expected student A alone in round-2, got %+v", round2)
	}
	round3 := board.Bucket(RoundKey(3))
	if round3 == nil || len(round3.Entries) != 0 {
		t.Fatalf("expected empty round-3 bucket, got %+v", round3)
	}
	if n := len(board.Bucket(Hired).Entries); n != 0 {
		t.Errorf("expected empty hired bucket, got %d entries", n)
	}
	if n := len(board.Bucket(Rejected).Entries); n != 0 {
		t.Errorf("expected empty rejected bucket, got %d entries", n)
	}
	if len(board.Unassigned) != 1 || board.Unassigned[0].ID != 2 {
		t.Fatalf("expected student B in the unassigned list, got %+v", board.Unassigned)
	}
}

func TestBuildBoard_Totality(t *testing.T) {
	students := []*models.Student{
		student(1, record(2, models.RoundStatusInProgress)),
		student(2),
		student(3, record(3, models.RoundStatusPassed)),
		student(4, record(2, models.RoundStatusFailed)),
		student(5, record(7, models.RoundStatusNotStarted)), // unknown round
	}
	board := BuildBoard(students, rounds(2, 3))

	if board.Size() != len(students) {
		t.Fatalf("board size %d != student count %d", board.Size(), len(students))
	}

	// Every student appears exactly once.
	seen := map[int64]int{}
	for _, bucket := range board.Buckets {
		for _, entry := range bucket.Entries {
			seen[entry.Student.ID]++
		}
	}
	for _, s := range board.Unassigned {
		seen[s.ID]++
	}
	for _, s := range students {
		if seen[s.ID] != 1 {
			t.Errorf("student %d appears %d times, want exactly once", s.ID, seen[s.ID])
		}
	}
}

func TestBuildBoard_BucketOrdering(t *testing.T) {
	students := []*models.Student{
		student(1, record(7, models.RoundStatusNotStarted)), // ad-hoc bucket
	}
	board := BuildBoard(students, rounds(1, 3, 2))

	// Round 1 excluded, numbered ascending with the ad-hoc 7 merged in,
	// terminals fixed last.
	want := []BucketKey{RoundKey(2), RoundKey(3), RoundKey(7), Hired, Rejected}
	if len(board.Buckets) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(board.Buckets))
	}
	for i, key := range want {
		if board.Buckets[i].Key != key {
			t.Errorf("bucket %d: got %s, want %s", i, board.Buckets[i].Key, key)
		}
	}
	if board.Diagnostics.UnknownRounds != 1 {
		t.Errorf("expected 1 unknown-round diagnostic, got %d", board.Diagnostics.UnknownRounds)
	}
}

func TestBuildBoard_FinalPassGoesToHired(t *testing.T) {
	board := BuildBoard([]*models.Student{
		student(1, record(3, models.RoundStatusPassed)),
		student(2,
			record(1, models.RoundStatusPassed),
			record(2, models.RoundStatusPassed),
			record(3, models.RoundStatusNotStarted),
		),
	}, rounds(2, 3))

	hired := board.Bucket(Hired)
	if len(hired.Entries) != 1 || hired.Entries[0].Student.ID != 1 {
		t.Fatalf("expected only student 1 hired, got %+v", hired.Entries)
	}
	round3 := board.Bucket(RoundKey(3))
	if len(round3.Entries) != 1 || round3.Entries[0].Student.ID != 2 {
		t.Fatalf("expected student 2 in round-3, got %+v", round3.Entries)
	}
}

func TestBuildBoard_FailedAlwaysRejected(t *testing.T) {
	for _, round := range []int{2, 3, 9} {
		board := BuildBoard([]*models.Student{
			student(1, record(round, models.RoundStatusFailed)),
		}, rounds(2, 3))

		rejected := board.Bucket(Rejected)
		if len(rejected.Entries) != 1 {
			t.Fatalf("round %d: expected student in rejected bucket", round)
		}
		for _, bucket := range board.Buckets {
			if bucket.Key.Kind == KindRound && len(bucket.Entries) != 0 {
				t.Errorf("round %d: failed student leaked into %s", round, bucket.Key)
			}
		}
	}
}

func TestBuildBoard_EntriesCarryCurrentRecord(t *testing.T) {
	rec := record(2, models.RoundStatusInProgress)
	board := BuildBoard([]*models.Student{student(1, rec)}, rounds(2))

	entry := board.Bucket(RoundKey(2)).Entries[0]
	if entry.CurrentRecord == nil {
		t.Fatal("bucket entry missing its current record")
	}
	if entry.CurrentRecord.RoundNumber != 2 || entry.CurrentRecord.Status != models.RoundStatusInProgress {
		t.Errorf("unexpected current record %+v", entry.CurrentRecord)
	}
}

func TestBuildBoard_RosterOrderPreserved(t *testing.T) {
	students := []*models.Student{
		student(3, record(2, models.RoundStatusNotStarted)),
		student(1, record(2, models.RoundStatusNotStarted)),
		student(2, record(2, models.RoundStatusNotStarted)),
	}
	board := BuildBoard(students, rounds(2))

	entries := board.Bucket(RoundKey(2)).Entries
	for i, wantID := range []int64{3, 1, 2} {
		if entries[i].Student.ID != wantID {
			t.Errorf("entry %d: got student %d, want %d", i, entries[i].Student.ID, wantID)
		}
	}
}
