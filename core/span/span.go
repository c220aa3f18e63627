// Package span compresses sets of verse numbers into maximal runs of
// consecutive integers and renders them for display.
//
//	Compress([]int{1, 2, 3, 5, 6}) // [{1 3} {5 6}]
//	Describe([]int{1, 2, 4, 5, 7}) // "Verses 1-2, 4-5, 7"
//
// All functions are pure: the input slice is never modified and the same
// input always yields the same output.
package span

import (
	"slices"
	"strconv"
	"strings"
)

// Span is one maximal run of consecutive integers, Start <= End.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// String renders "n" for a single number or "a-b" for a run.
func (s Span) String() string {
	if s.Start == s.End {
		return strconv.Itoa(s.Start)
	}
	return strconv.Itoa(s.Start) + "-" + strconv.Itoa(s.End)
}

// Len returns how many numbers the span covers.
func (s Span) Len() int {
	return s.End - s.Start + 1
}

// Contains reports whether n lies within the span.
func (s Span) Contains(n int) bool {
	return n >= s.Start && n <= s.End
}

// Compress groups numbers into maximal ascending spans in a single pass over
// the sorted input. Repeated numbers collapse, so callers may pass any slice
// that represents a set.
func Compress(numbers []int) []Span {
	if len(numbers) == 0 {
		return []Span{}
	}

	sorted := slices.Clone(numbers)
	slices.Sort(sorted)

	spans := make([]Span, 0, 1)
	cur := Span{Start: sorted[0], End: sorted[0]}
	for _, n := range sorted[1:] {
		switch {
		case n == cur.End:
			// duplicate
		case n == cur.End+1:
			cur.End = n
		default:
			spans = append(spans, cur)
			cur = Span{Start: n, End: n}
		}
	}
	return append(spans, cur)
}

// Format joins spans with ", ".
func Format(spans []Span) string {
	parts := make([]string, len(spans))
	for i, s := range spans {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

// Describe returns the selection summary shown while picking verses:
// "Select verses", "Verse n", or "Verses a-b, c".
func Describe(numbers []int) string {
	spans := Compress(numbers)
	switch {
	case len(spans) == 0:
		return "Select verses"
	case len(spans) == 1 && spans[0].Len() == 1:
		return "Verse " + spans[0].String()
	default:
		return "Verses " + Format(spans)
	}
}

// Expand lists every number covered by spans, in span order.
func Expand(spans []Span) []int {
	total := 0
	for _, s := range spans {
		if s.End >= s.Start {
			total += s.Len()
		}
	}
	out := make([]int, 0, total)
	for _, s := range spans {
		for n := s.Start; n <= s.End; n++ {
			out = append(out, n)
		}
	}
	return out
}
