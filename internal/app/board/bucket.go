// Package board derives the multi-round pipeline board of a drive from the
// roster's round histories and models the drag-and-drop transitions that move
// a student between rounds. It is pure: no I/O, no framework types. The
// services layer feeds it repository data and persists the records it emits.
package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/campushq/recruithub/internal/app/models"
)

// BucketKind discriminates the variants of a BucketKey
type BucketKind int

// Bucket kinds. Hired and Rejected are synthetic terminal buckets and carry no
// round number; keeping them out of the numeric round space avoids the
// sentinel-value confusion of mixing -1/-2 with real rounds.
const (
	KindRound BucketKind = iota
	KindHired
	KindRejected
)

// BucketKey identifies one column of the board: a real interview round, or one
// of the two terminal buckets.
type BucketKey struct {
	Kind  BucketKind
	Round int // Valid only when Kind == KindRound
}

// RoundKey returns the key of a numbered round bucket
func RoundKey(round int) BucketKey {
	return BucketKey{Kind: KindRound, Round: round}
}

// Terminal bucket keys
var (
	Hired    = BucketKey{Kind: KindHired}
	Rejected = BucketKey{Kind: KindRejected}
)

// String renders the key in its wire form ("round-2", "hired", "rejected")
func (k BucketKey) String() string {
	switch k.Kind {
	case KindHired:
		return "hired"
	case KindRejected:
		return "rejected"
	default:
		return fmt.Sprintf("round-%d", k.Round)
	}
}

// ParseBucketKey parses the wire form of a bucket key
func ParseBucketKey(s string) (BucketKey, error) {
	switch s {
	case "hired":
		return Hired, nil
	case "rejected":
		return Rejected, nil
	}
	if rest, ok := strings.CutPrefix(s, "round-"); ok {
		round, err := strconv.Atoi(rest)
		if err == nil && round > 0 {
			return RoundKey(round), nil
		}
	}
	return BucketKey{}, fmt.Errorf("invalid bucket key %q", s)
}

// Entry is one card of a bucket: the student paired with the round record the
// classifier selected as current (nil only for unassigned students, which are
// never bucket entries).
type Entry struct {
	Student       *models.Student
	CurrentRecord *models.RoundRecord
}

// Bucket is one column of the board
type Bucket struct {
	Key     BucketKey
	Name    string // Configured round name; empty for ad-hoc and terminal buckets
	Entries []Entry
}

// Diagnostics counts data-quality findings observed while building a board.
// They are informational; building never fails.
type Diagnostics struct {
	UnknownRounds int // Students classified into a round with no configured bucket
	AmbiguousTies int // Classifications resolved by the first-occurrence tie-break
	Unassigned    int // Students with no round history, defaulted to round 1
}

// Board is the derived pipeline structure for one drive's roster. It is
// recomputed from scratch on every roster load and mutated only by
// ApplyTransition between loads.
type Board struct {
	Buckets []*Bucket

	// Unassigned holds students with no round history. They belong to the
	// dedicated round-1 view, not to a rendered column, but are retained so
	// that no student is ever silently dropped.
	Unassigned []*models.Student

	Diagnostics Diagnostics
}

// Bucket returns the bucket with the given key, or nil if the board has none
func (b *Board) Bucket(key BucketKey) *Bucket {
	for _, bucket := range b.Buckets {
		if bucket.Key == key {
			return bucket
		}
	}
	return nil
}

// Size returns the total number of students on the board, unassigned included
func (b *Board) Size() int {
	n := len(b.Unassigned)
	for _, bucket := range b.Buckets {
		n += len(bucket.Entries)
	}
	return n
}

// Clone returns a deep copy of the board's structure. Students and records are
// shared: they are immutable snapshots owned by the roster fetch.
func (b *Board) Clone() *Board {
	clone := &Board{
		Unassigned:  append([]*models.Student(nil), b.Unassigned...),
		Diagnostics: b.Diagnostics,
		Buckets:     make([]*Bucket, len(b.Buckets)),
	}
	for i, bucket := range b.Buckets {
		clone.Buckets[i] = &Bucket{
			Key:     bucket.Key,
			Name:    bucket.Name,
			Entries: append([]Entry(nil), bucket.Entries...),
		}
	}
	return clone
}
