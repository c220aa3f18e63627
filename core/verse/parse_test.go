package verse

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/FocuswithJustin/VerseCards/core/catalog"
	verrors "github.com/FocuswithJustin/VerseCards/core/errors"
)

func TestParse(t *testing.T) {
	cat := catalog.KJV()

	tests := []struct {
		input string
		want  Passage
	}{
		{"John 3:16", Passage{Book: "John", Chapter: 3, Verses: []int{16}}},
		{"John 3:16-18", Passage{Book: "John", Chapter: 3, Verses: []int{16, 17, 18}}},
		{"jn 3:16", Passage{Book: "John", Chapter: 3, Verses: []int{16}}},
		{"1 John 3:1-3, 5", Passage{Book: "1 John", Chapter: 3, Verses: []int{1, 2, 3, 5}}},
		{"1John 4:8", Passage{Book: "1 John", Chapter: 4, Verses: []int{8}}},
		{"Ps. 23:1", Passage{Book: "Psalms", Chapter: 23, Verses: []int{1}}},
		{"Ps 117", Passage{Book: "Psalms", Chapter: 117, Verses: []int{1, 2}}},
		{"Song of Songs 2:4", Passage{Book: "Song of Solomon", Chapter: 2, Verses: []int{4}}},
		{"Rom 8:28, 28, 27", Passage{Book: "Romans", Chapter: 8, Verses: []int{27, 28}}},
		{"Prov 3:5–6", Passage{Book: "Proverbs", Chapter: 3, Verses: []int{5, 6}}},
		{"  Obad 1:21  ", Passage{Book: "Obadiah", Chapter: 1, Verses: []int{21}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input, cat)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cat := catalog.KJV()

	tests := []struct {
		input   string
		wantErr error
	}{
		{"", verrors.ErrInvalidInput},
		{"John", verrors.ErrInvalidInput},
		{"3:16", verrors.ErrInvalidInput},
		{"John 3:", verrors.ErrInvalidInput},
		{"Hezekiah 1:1", verrors.ErrUnknownBook},
		{"John 22:1", verrors.ErrChapterOutOfRange},
		{"John 22", verrors.ErrChapterOutOfRange},
		{"John 3:37", verrors.ErrVerseOutOfRange},
		{"John 3:35-40", verrors.ErrVerseOutOfRange},
		{"John 3:18-16", verrors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input, cat)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParseGrammarErrorIsParseError(t *testing.T) {
	_, err := Parse("John three:16", catalog.KJV())
	var parseErr *verrors.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %T %v, want *ParseError", err, err)
	}
	if parseErr.Format != "reference" {
		t.Errorf("Format = %q, want reference", parseErr.Format)
	}
}

func TestParseReversedRange(t *testing.T) {
	_, err := Parse("John 3:18-16", catalog.KJV())
	var parseErr *verrors.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %T %v, want *ParseError", err, err)
	}
	if errors.Is(err, verrors.ErrVerseOutOfRange) {
		t.Errorf("reversed range should not report an out-of-range verse: %v", err)
	}
	if !strings.Contains(err.Error(), "reversed range 18-16") {
		t.Errorf("error = %q, want it to name the range", err)
	}
}

func TestParseList(t *testing.T) {
	got, err := ParseList("John 3:16; Ps 23:1-3;", catalog.KJV())
	if err != nil {
		t.Fatalf("ParseList failed: %v", err)
	}
	want := []Passage{
		{Book: "John", Chapter: 3, Verses: []int{16}},
		{Book: "Psalms", Chapter: 23, Verses: []int{1, 2, 3}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseList mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseList(" ; ", catalog.KJV()); err == nil {
		t.Error("ParseList of blanks should fail")
	}
	if _, err := ParseList("John 3:16; Nope 1:1", catalog.KJV()); !errors.Is(err, verrors.ErrUnknownBook) {
		t.Errorf("ParseList error = %v, want ErrUnknownBook", err)
	}
}

// plainCatalog has no Resolver, so names must match exactly.
type plainCatalog struct{ catalog.Catalog }

func TestParseWithoutResolver(t *testing.T) {
	cat := plainCatalog{catalog.KJV()}

	if _, err := Parse("John 3:16", cat); err != nil {
		t.Fatalf("exact name should parse: %v", err)
	}
	if _, err := Parse("Jn 3:16", cat); !errors.Is(err, verrors.ErrUnknownBook) {
		t.Errorf("alias without resolver: error = %v, want ErrUnknownBook", err)
	}
}

func TestPassageString(t *testing.T) {
	tests := []struct {
		p    Passage
		want string
	}{
		{Passage{Book: "John", Chapter: 3, Verses: []int{16, 17, 18, 20}}, "John 3:16-18, 20"},
		{Passage{Book: "Psalms", Chapter: 23}, "Psalms 23"},
		{Passage{Book: "Jude", Chapter: 1, Verses: []int{3}}, "Jude 1:3"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestPassageRefs(t *testing.T) {
	cat := catalog.KJV()
	p := Passage{Book: "John", Chapter: 3, Verses: []int{16, 17}}
	refs, err := p.Refs(cat)
	if err != nil {
		t.Fatalf("Refs failed: %v", err)
	}
	if len(refs) != 2 || refs[0].Label() != "John 3:16" || refs[1].Label() != "John 3:17" {
		t.Errorf("Refs() = %v", refs)
	}

	bad := Passage{Book: "John", Chapter: 3, Verses: []int{16, 99}}
	if _, err := bad.Refs(cat); !errors.Is(err, verrors.ErrVerseOutOfRange) {
		t.Errorf("Refs error = %v, want ErrVerseOutOfRange", err)
	}
}
