package verse

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/FocuswithJustin/VerseCards/core/catalog"
	verrors "github.com/FocuswithJustin/VerseCards/core/errors"
)

// Ref is a validated reference to a single verse. The zero value is not a
// valid reference; obtain one from Validate or Parse. Ref is immutable and
// safe to copy.
type Ref struct {
	book      string
	bookIndex int
	chapter   int
	verse     int
}

// Key is the comparable identity of a Ref: two references are the same verse
// iff their keys are equal.
type Key struct {
	Book    string
	Chapter int
	Verse   int
}

// Validate checks (book, chapter, verse) against the catalog and returns the
// reference. Missing catalog data is reported as a failure, never defaulted.
func Validate(book string, chapter, verse int, cat catalog.Catalog) (Ref, error) {
	idx := cat.BookIndex(book)
	if book == "" || idx < 0 {
		return Ref{}, verrors.NewUnknownBook(book)
	}

	chapters := cat.ChapterCount(book)
	if chapters <= 0 {
		return Ref{}, verrors.NewUnknownBook(book)
	}
	if chapter < 1 || chapter > chapters {
		return Ref{}, verrors.NewChapterOutOfRange(book, chapter, chapters)
	}

	verses := cat.VerseCount(book, chapter)
	if verses <= 0 {
		return Ref{}, verrors.NewChapterOutOfRange(book, chapter, chapters)
	}
	if verse < 1 || verse > verses {
		return Ref{}, verrors.NewVerseOutOfRange(book, chapter, verse, verses)
	}

	return Ref{book: book, bookIndex: idx, chapter: chapter, verse: verse}, nil
}

// Book returns the catalog display name of the book.
func (r Ref) Book() string { return r.book }

// BookIndex returns the canonical position of the book in its catalog.
func (r Ref) BookIndex() int { return r.bookIndex }

// Chapter returns the 1-based chapter number.
func (r Ref) Chapter() int { return r.chapter }

// Verse returns the 1-based verse number.
func (r Ref) Verse() int { return r.verse }

// Key returns the identity triple.
func (r Ref) Key() Key {
	return Key{Book: r.book, Chapter: r.chapter, Verse: r.verse}
}

// IsZero reports whether r is the zero Ref.
func (r Ref) IsZero() bool {
	return r.book == ""
}

// Label returns the display form, e.g. "John 3:16".
func (r Ref) Label() string {
	return r.book + " " + strconv.Itoa(r.chapter) + ":" + strconv.Itoa(r.verse)
}

// String implements fmt.Stringer.
func (r Ref) String() string {
	return r.Label()
}

// Equal reports whether both references name the same verse.
func (r Ref) Equal(other Ref) bool {
	return r.Key() == other.Key()
}

// Compare orders references by canonical book position, then chapter, then
// verse. Book names are never compared alphabetically, except as a final
// tie-break between different books that claim the same position.
func (r Ref) Compare(other Ref) int {
	if c := cmp.Compare(r.bookIndex, other.bookIndex); c != 0 {
		return c
	}
	if c := cmp.Compare(r.book, other.book); c != 0 {
		return c
	}
	if c := cmp.Compare(r.chapter, other.chapter); c != 0 {
		return c
	}
	return cmp.Compare(r.verse, other.verse)
}

// Less reports whether r sorts before other.
func (r Ref) Less(other Ref) bool {
	return r.Compare(other) < 0
}

// Sort orders refs in canonical order. The sort is stable.
func Sort(refs []Ref) {
	slices.SortStableFunc(refs, Ref.Compare)
}
