// Package suspects maps clue texts to the suspect they incriminate.
//
// The table is a fixed number of buckets with chained entries. All inserts are expected to happen before the first
// lookup and the table is not safe for concurrent use.
package suspects

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/myrjola/detectivequest/internal/errors"
)

const (
	// BucketCount is the fixed number of hash buckets.
	BucketCount = 10
	// MaxClueLength is the longest clue text in bytes that the table accepts.
	MaxClueLength = 99
	// MaxSuspectLength is the longest suspect name in bytes that the table accepts.
	MaxSuspectLength = 49
)

var ErrInvalidEntry = errors.NewSentinel("invalid suspect entry")

type entry struct {
	clue    string
	suspect string
	next    *entry
}

// Table is a chained hash map from clue to suspect.
type Table struct {
	buckets [BucketCount]*entry
	size    int
}

// New creates a table with every bucket empty.
func New() *Table {
	return &Table{}
}

// Hash sums the bytes of s. The sum wraps around like any uint32 arithmetic.
func Hash(s string) uint32 {
	var h uint32
	for i := range len(s) {
		h += uint32(s[i])
	}
	return h
}

func bucket(clue string) int {
	return int(Hash(clue) % BucketCount)
}

// Reset empties every bucket.
func (t *Table) Reset() {
	t.buckets = [BucketCount]*entry{}
	t.size = 0
}

// Insert associates clue with suspect. The new entry is prepended to its bucket chain, so inserting the same clue
// again shadows the earlier association.
func (t *Table) Insert(clue, suspect string) error {
	switch {
	case clue == "" || suspect == "":
		return errors.Wrap(ErrInvalidEntry, "empty clue or suspect",
			slog.String("clue", clue), slog.String("suspect", suspect))
	case len(clue) > MaxClueLength:
		return errors.Wrap(ErrInvalidEntry, "clue too long",
			slog.String("clue", clue), slog.Int("maxLength", MaxClueLength))
	case len(suspect) > MaxSuspectLength:
		return errors.Wrap(ErrInvalidEntry, "suspect name too long",
			slog.String("suspect", suspect), slog.Int("maxLength", MaxSuspectLength))
	}

	i := bucket(clue)
	t.buckets[i] = &entry{clue: clue, suspect: suspect, next: t.buckets[i]}
	t.size++
	return nil
}

// Lookup returns the suspect of the most recent association for clue.
func (t *Table) Lookup(clue string) (string, bool) {
	for e := t.buckets[bucket(clue)]; e != nil; e = e.next {
		if e.clue == clue {
			return e.suspect, true
		}
	}
	return "", false
}

// Len returns the number of stored associations, shadowed ones included.
func (t *Table) Len() int {
	return t.size
}

// Suspects returns the distinct suspect names in ascending order.
func (t *Table) Suspects() []string {
	var names []string
	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			if !slices.Contains(names, e.suspect) {
				names = append(names, e.suspect)
			}
		}
	}
	slices.Sort(names)
	return names
}

// Association is a clue and the suspect it currently points to.
type Association struct {
	Clue    string
	Suspect string
}

// Associations returns the reachable associations ordered by clue. Shadowed entries are left out.
func (t *Table) Associations() []Association {
	var out []Association
	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			if slices.ContainsFunc(out, func(a Association) bool { return a.Clue == e.clue }) {
				continue
			}
			out = append(out, Association{Clue: e.clue, Suspect: e.suspect})
		}
	}
	slices.SortFunc(out, func(a, b Association) int {
		return strings.Compare(a.Clue, b.Clue)
	})
	return out
}
