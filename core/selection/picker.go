package selection

import (
	"slices"

	"github.com/FocuswithJustin/VerseCards/core/catalog"
	"github.com/FocuswithJustin/VerseCards/core/span"
	"github.com/FocuswithJustin/VerseCards/core/verse"
)

// Picker holds the verse numbers ticked for one book and chapter before they
// are committed to a Set.
type Picker struct {
	book    string
	chapter int
	max     int
	cat     catalog.Catalog
	numbers []int // ascending
}

// NewPicker opens a picker for book and chapter. The chapter must exist in cat.
func NewPicker(book string, chapter int, cat catalog.Catalog) (*Picker, error) {
	// Validating the first verse checks the book and chapter, and that the
	// catalog actually has a verse count for them.
	if _, err := verse.Validate(book, chapter, 1, cat); err != nil {
		return nil, err
	}
	return &Picker{
		book:    book,
		chapter: chapter,
		max:     cat.VerseCount(book, chapter),
		cat:     cat,
	}, nil
}

// Book returns the picker's book.
func (p *Picker) Book() string { return p.book }

// Chapter returns the picker's chapter.
func (p *Picker) Chapter() int { return p.chapter }

// Available returns the number of verses in the chapter.
func (p *Picker) Available() int { return p.max }

// Toggle selects n if it is not selected and deselects it otherwise.
func (p *Picker) Toggle(n int) error {
	if _, err := verse.Validate(p.book, p.chapter, n, p.cat); err != nil {
		return err
	}
	i, found := slices.BinarySearch(p.numbers, n)
	if found {
		p.numbers = slices.Delete(p.numbers, i, i+1)
	} else {
		p.numbers = slices.Insert(p.numbers, i, n)
	}
	return nil
}

// Selected reports whether n is ticked.
func (p *Picker) Selected(n int) bool {
	_, found := slices.BinarySearch(p.numbers, n)
	return found
}

// Numbers returns the ticked verse numbers in ascending order.
func (p *Picker) Numbers() []int {
	return slices.Clone(p.numbers)
}

// Describe summarises the ticked numbers ("Verses 1-3, 5").
func (p *Picker) Describe() string {
	return span.Describe(p.numbers)
}

// Reset clears the ticked numbers.
func (p *Picker) Reset() {
	p.numbers = nil
}

// Commit adds the ticked verses to set and resets the picker. On error the
// picker keeps its selection and set is unchanged.
func (p *Picker) Commit(set *Set) (added, skipped int, err error) {
	added, skipped, err = set.AddMany(p.book, p.chapter, p.numbers, p.cat)
	if err != nil {
		return 0, 0, err
	}
	p.Reset()
	return added, skipped, nil
}
