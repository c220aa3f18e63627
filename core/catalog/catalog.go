// Package catalog provides the static chapter and verse counts that references
// are validated against.
//
// A catalog is a closed list of books in canonical order. Book names are the
// display names used in labels ("John", "1 Samuel", "Song of Solomon"); OSIS IDs
// and common abbreviations are accepted only through Resolve, at parsing boundaries.
package catalog

import (
	"fmt"
	"strings"

	verrors "github.com/FocuswithJustin/VerseCards/core/errors"
)

// Catalog answers chapter and verse counts for the books it knows.
// Counts of zero and a book index of -1 mean "unknown".
type Catalog interface {
	BookIndex(book string) int
	ChapterCount(book string) int
	VerseCount(book string, chapter int) int
}

// VersificationID identifies a versification system.
type VersificationID string

// Supported versification systems.
const (
	VersKJV  VersificationID = "KJV"
	VersNRSV VersificationID = "NRSV"
	VersOSIS VersificationID = "OSIS" // derived from an OSIS document
)

// Book contains verse counts for each chapter of a book.
type Book struct {
	Name     string
	OSIS     string
	Chapters []int // Verse counts per chapter
}

// Versification is a Catalog backed by an ordered book table.
type Versification struct {
	ID    VersificationID
	books []Book
	index map[string]int
	alias map[string]string
}

// New returns the built-in versification for id.
// NRSV shares the KJV table; unknown systems are an error rather than a silent KJV fallback.
func New(id VersificationID) (*Versification, error) {
	switch id {
	case VersKJV, "":
		return KJV(), nil
	case VersNRSV:
		v := KJV()
		v.ID = VersNRSV
		return v, nil
	default:
		return nil, verrors.NewValidation("versification", fmt.Sprintf("unsupported system %q", id))
	}
}

// KJV returns a fresh copy of the KJV versification.
func KJV() *Versification {
	return NewVersification(VersKJV, kjvBooks)
}

// NewVersification builds a catalog from books in canonical order.
// The slice is copied so later edits by the caller do not leak in.
func NewVersification(id VersificationID, books []Book) *Versification {
	v := &Versification{
		ID:    id,
		books: make([]Book, len(books)),
		index: make(map[string]int, len(books)),
		alias: make(map[string]string, len(books)*3),
	}
	for i, b := range books {
		chapters := make([]int, len(b.Chapters))
		copy(chapters, b.Chapters)
		v.books[i] = Book{Name: b.Name, OSIS: b.OSIS, Chapters: chapters}
		v.index[b.Name] = i
		v.addAlias(b.Name, b.Name)
		v.addAlias(b.OSIS, b.Name)
	}
	for alias, name := range commonAliases {
		if _, ok := v.index[name]; ok {
			v.addAlias(alias, name)
		}
	}
	return v
}

func (v *Versification) addAlias(alias, name string) {
	key := normalizeAlias(alias)
	if key == "" {
		return
	}
	if _, taken := v.alias[key]; !taken {
		v.alias[key] = name
	}
}

// BookIndex returns the canonical position of the book, or -1.
func (v *Versification) BookIndex(book string) int {
	if i, ok := v.index[book]; ok {
		return i
	}
	return -1
}

// ChapterCount returns the number of chapters in a book.
func (v *Versification) ChapterCount(book string) int {
	idx := v.BookIndex(book)
	if idx < 0 {
		return 0
	}
	return len(v.books[idx].Chapters)
}

// VerseCount returns the number of verses in a specific chapter.
func (v *Versification) VerseCount(book string, chapter int) int {
	idx := v.BookIndex(book)
	if idx < 0 {
		return 0
	}
	if chapter < 1 || chapter > len(v.books[idx].Chapters) {
		return 0
	}
	return v.books[idx].Chapters[chapter-1]
}

// TotalVerses returns the total verse count for a book.
func (v *Versification) TotalVerses(book string) int {
	idx := v.BookIndex(book)
	if idx < 0 {
		return 0
	}
	total := 0
	for _, count := range v.books[idx].Chapters {
		total += count
	}
	return total
}

// Books returns the books in canonical order.
func (v *Versification) Books() []Book {
	out := make([]Book, len(v.books))
	copy(out, v.books)
	return out
}

// Resolve maps a display name, OSIS ID, or abbreviation to the display name.
// Matching ignores case, spacing, and trailing periods ("1 jn.", "1John", "Ps").
func (v *Versification) Resolve(name string) (string, bool) {
	book, ok := v.alias[normalizeAlias(name)]
	return book, ok
}

func normalizeAlias(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, ".")
	return strings.Join(strings.Fields(s), "")
}

// Resolver maps user-typed book names to catalog display names.
type Resolver interface {
	Resolve(name string) (string, bool)
}
