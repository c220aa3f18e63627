package span

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompress(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []Span
	}{
		{"empty", nil, []Span{}},
		{"single", []int{7}, []Span{{7, 7}}},
		{"contiguous", []int{1, 2, 3}, []Span{{1, 3}}},
		{"two runs", []int{1, 2, 3, 5, 6}, []Span{{1, 3}, {5, 6}}},
		{"unsorted input", []int{6, 1, 5, 3, 2}, []Span{{1, 3}, {5, 6}}},
		{"all isolated", []int{1, 3, 5}, []Span{{1, 1}, {3, 3}, {5, 5}}},
		{"duplicates collapse", []int{4, 4, 5, 5, 9}, []Span{{4, 5}, {9, 9}}},
		{"mixed", []int{1, 2, 4, 5, 7}, []Span{{1, 2}, {4, 5}, {7, 7}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compress(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Compress(%v) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestCompressDoesNotMutateInput(t *testing.T) {
	input := []int{5, 3, 1}
	Compress(input)
	if !slices.Equal(input, []int{5, 3, 1}) {
		t.Errorf("input mutated to %v", input)
	}
}

// TestCompressProperties checks partition, maximality and ordering on random sets.
func TestCompressProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 500; iter++ {
		set := make(map[int]bool)
		for i := rng.Intn(40); i > 0; i-- {
			set[1+rng.Intn(60)] = true
		}
		var input []int
		for n := range set {
			input = append(input, n)
		}

		spans := Compress(input)

		covered := make(map[int]int)
		for i, s := range spans {
			if s.Start > s.End {
				t.Fatalf("span %v has Start > End", s)
			}
			if i > 0 {
				prev := spans[i-1]
				if s.Start <= prev.End {
					t.Fatalf("spans %v and %v overlap or are unordered", prev, s)
				}
				if s.Start == prev.End+1 {
					t.Fatalf("spans %v and %v are mergeable", prev, s)
				}
			}
			for n := s.Start; n <= s.End; n++ {
				covered[n]++
			}
		}

		if len(covered) != len(set) {
			t.Fatalf("spans cover %d numbers, set has %d", len(covered), len(set))
		}
		for n, count := range covered {
			if !set[n] {
				t.Fatalf("span covers %d which is not in the set", n)
			}
			if count != 1 {
				t.Fatalf("%d covered %d times", n, count)
			}
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		input []int
		want  string
	}{
		{nil, "Select verses"},
		{[]int{}, "Select verses"},
		{[]int{5}, "Verse 5"},
		{[]int{5, 5}, "Verse 5"},
		{[]int{1, 2, 3}, "Verses 1-3"},
		{[]int{1, 2, 4, 5, 7}, "Verses 1-2, 4-5, 7"},
		{[]int{3, 1}, "Verses 1, 3"},
		{[]int{16, 17, 18, 20}, "Verses 16-18, 20"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := Describe(tt.input)
			if got != tt.want {
				t.Errorf("Describe(%v) = %q, want %q", tt.input, got, tt.want)
			}
			if again := Describe(tt.input); again != got {
				t.Errorf("Describe is not deterministic: %q then %q", got, again)
			}
		})
	}
}

func TestSpanMethods(t *testing.T) {
	s := Span{Start: 4, End: 6}
	if s.String() != "4-6" {
		t.Errorf("String() = %q", s.String())
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d", s.Len())
	}
	if !s.Contains(4) || !s.Contains(6) || s.Contains(7) || s.Contains(3) {
		t.Errorf("Contains wrong for %v", s)
	}
	if got := (Span{Start: 9, End: 9}).String(); got != "9" {
		t.Errorf("single String() = %q", got)
	}
}

func TestExpandInvertsCompress(t *testing.T) {
	input := []int{9, 1, 2, 3, 7, 8}
	got := Expand(Compress(input))
	want := []int{1, 2, 3, 7, 8, 9}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand(Compress) mismatch (-want +got):\n%s", diff)
	}
	if got := Expand(nil); len(got) != 0 {
		t.Errorf("Expand(nil) = %v", got)
	}
}

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q", got)
	}
	if got := Format([]Span{{1, 2}, {4, 4}}); got != "1-2, 4" {
		t.Errorf("Format = %q", got)
	}
}
