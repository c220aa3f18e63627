// Package selection manages the working collection of verse references for a
// flashcard set being authored.
//
// A Set keeps references in insertion order and never holds the same verse
// twice. It is owned by a single authoring session and performs no locking:
// hosts that share a Set across goroutines must guard it with their own mutex,
// one per Set.
package selection

import (
	"slices"

	"github.com/FocuswithJustin/VerseCards/core/catalog"
	verrors "github.com/FocuswithJustin/VerseCards/core/errors"
	"github.com/FocuswithJustin/VerseCards/core/verse"
)

// Set is an ordered, duplicate-free collection of references.
// The zero value is an empty set ready to use.
type Set struct {
	entries []verse.Ref
	keys    map[verse.Key]struct{}
}

// New returns an empty Set.
func New() *Set {
	return &Set{}
}

// AddMany validates every verse number for book and chapter, then appends the
// ones not already present, in ascending verse order.
//
// The batch is all-or-nothing: if any number fails validation the error is
// returned and the set is left exactly as it was. Numbers already in the set,
// or repeated within the batch, are counted as skipped rather than rejected.
func (s *Set) AddMany(book string, chapter int, numbers []int, cat catalog.Catalog) (added, skipped int, err error) {
	sorted := slices.Clone(numbers)
	slices.Sort(sorted)

	refs := make([]verse.Ref, 0, len(sorted))
	for _, n := range sorted {
		ref, err := verse.Validate(book, chapter, n, cat)
		if err != nil {
			return 0, 0, err
		}
		refs = append(refs, ref)
	}

	fresh := make([]verse.Ref, 0, len(refs))
	batch := make(map[verse.Key]struct{}, len(refs))
	for _, ref := range refs {
		k := ref.Key()
		if _, dup := batch[k]; dup || s.has(k) {
			skipped++
			continue
		}
		batch[k] = struct{}{}
		fresh = append(fresh, ref)
	}

	// Nothing below can fail, so the set only changes once the whole batch is known good.
	for _, ref := range fresh {
		s.insert(ref)
	}
	return len(fresh), skipped, nil
}

// Add appends a single already-validated reference unless it is present.
// It reports whether the set changed.
func (s *Set) Add(ref verse.Ref) bool {
	if ref.IsZero() || s.has(ref.Key()) {
		return false
	}
	s.insert(ref)
	return true
}

// Remove deletes the entry at index, shifting later entries down.
func (s *Set) Remove(index int) error {
	if index < 0 || index >= len(s.entries) {
		return verrors.NewIndex(index, len(s.entries))
	}
	delete(s.keys, s.entries[index].Key())
	s.entries = slices.Delete(s.entries, index, index+1)
	return nil
}

// Snapshot returns a copy of the entries in insertion order. Later changes to
// the set are not visible through it.
func (s *Set) Snapshot() []verse.Ref {
	return slices.Clone(s.entries)
}

// Clear empties the set.
func (s *Set) Clear() {
	s.entries = nil
	s.keys = nil
}

// Len returns the number of entries.
func (s *Set) Len() int {
	return len(s.entries)
}

// IsEmpty reports whether the set has no entries.
func (s *Set) IsEmpty() bool {
	return len(s.entries) == 0
}

// Contains reports whether the verse named by ref is in the set.
func (s *Set) Contains(ref verse.Ref) bool {
	return s.has(ref.Key())
}

// IndexOf returns the position of ref, or -1.
func (s *Set) IndexOf(ref verse.Ref) int {
	if !s.has(ref.Key()) {
		return -1
	}
	return slices.IndexFunc(s.entries, ref.Equal)
}

// Summary groups the entries into passages for display.
func (s *Set) Summary() []verse.Passage {
	return Summary(s.entries)
}

func (s *Set) has(k verse.Key) bool {
	_, ok := s.keys[k]
	return ok
}

func (s *Set) insert(ref verse.Ref) {
	if s.keys == nil {
		s.keys = make(map[verse.Key]struct{})
	}
	s.keys[ref.Key()] = struct{}{}
	s.entries = append(s.entries, ref)
}
