package board

import (
	"sort"

	"github.com/campushq/recruithub/internal/app/models"
)

// BuildBoard derives the full pipeline board for one drive from its roster and
// configured rounds.
//
// One bucket is seeded per configured round except round 1, which is owned by
// the pre-screening view; the Hired and Rejected terminal buckets always come
// last, in that order. Students whose classified round has no configured
// bucket get an ad-hoc bucket rather than being dropped. The function is total
// over its input: every student lands in exactly one bucket or in the
// unassigned list, and malformed histories degrade to diagnostics instead of
// errors so the dashboard always renders.
//
// Entry order within a bucket preserves roster order; no extra sort is applied.
func BuildBoard(students []*models.Student, rounds []models.DriveRound) *Board {
	buckets := make(map[int]*Bucket)
	for _, round := range rounds {
		if round.RoundNumber == 1 {
			continue
		}
		buckets[round.RoundNumber] = &Bucket{
			Key:  RoundKey(round.RoundNumber),
			Name: round.Name,
		}
	}

	b := &Board{}
	hired := &Bucket{Key: Hired}
	rejected := &Bucket{Key: Rejected}

	for _, student := range students {
		if student == nil {
			continue
		}

		c := ClassifyCurrentRound(student.Rounds)
		if c.Ambiguous {
			b.Diagnostics.AmbiguousTies++
		}

		switch {
		case c.Record == nil:
			b.Unassigned = append(b.Unassigned, student)
			b.Diagnostics.Unassigned++
		case c.IsFinalPass:
			hired.Entries = append(hired.Entries, Entry{Student: student, CurrentRecord: c.Record})
		case c.Record.Status == models.RoundStatusFailed:
			rejected.Entries = append(rejected.Entries, Entry{Student: student, CurrentRecord: c.Record})
		default:
			bucket, ok := buckets[c.Record.RoundNumber]
			if !ok {
				// Stale or unknown round number: keep the student visible.
				bucket = &Bucket{Key: RoundKey(c.Record.RoundNumber)}
				buckets[c.Record.RoundNumber] = bucket
				b.Diagnostics.UnknownRounds++
			}
			bucket.Entries = append(bucket.Entries, Entry{Student: student, CurrentRecord: c.Record})
		}
	}

	numbers := make([]int, 0, len(buckets))
	for number := range buckets {
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)

	b.Buckets = make([]*Bucket, 0, len(numbers)+2)
	for _, number := range numbers {
		b.Buckets = append(b.Buckets, buckets[number])
	}
	b.Buckets = append(b.Buckets, hired, rejected)

	return b
}
