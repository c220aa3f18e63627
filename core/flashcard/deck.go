package flashcard

import (
	"fmt"

	verrors "github.com/FocuswithJustin/VerseCards/core/errors"
	"github.com/FocuswithJustin/VerseCards/core/verse"
)

// Card is one flashcard: the reference on the front, the passage on the back.
type Card struct {
	Reference verse.Ref
	Passage   string // empty when no text source was supplied
}

// PassageFunc supplies the text shown on the back of a card.
type PassageFunc func(ref verse.Ref) string

// Deck is the review state for one set: a current card and whether it is flipped.
type Deck struct {
	title   string
	cards   []Card
	current int
	flipped bool
}

// NewDeck builds a deck from set. passages may be nil.
func NewDeck(set *Set, passages PassageFunc) (*Deck, error) {
	if set == nil || len(set.Verses) == 0 {
		return nil, verrors.Wrap(verrors.ErrEmptySelection, "build deck")
	}
	cards := make([]Card, len(set.Verses))
	for i, ref := range set.Verses {
		cards[i] = Card{Reference: ref}
		if passages != nil {
			cards[i].Passage = passages(ref)
		}
	}
	return &Deck{title: set.Title, cards: cards}, nil
}

// Title returns the title of the set under review.
func (d *Deck) Title() string { return d.title }

// Len returns the number of cards.
func (d *Deck) Len() int { return len(d.cards) }

// Index returns the 0-based position of the current card.
func (d *Deck) Index() int { return d.current }

// Current returns the current card.
func (d *Deck) Current() Card { return d.cards[d.current] }

// Flipped reports whether the current card shows its back.
func (d *Deck) Flipped() bool { return d.flipped }

// Flip turns the current card over.
func (d *Deck) Flip() { d.flipped = !d.flipped }

// Next moves to the following card face up. It reports false, and does
// nothing, on the last card.
func (d *Deck) Next() bool {
	if d.current >= len(d.cards)-1 {
		return false
	}
	d.current++
	d.flipped = false
	return true
}

// Previous moves to the preceding card face up. It reports false, and does
// nothing, on the first card.
func (d *Deck) Previous() bool {
	if d.current == 0 {
		return false
	}
	d.current--
	d.flipped = false
	return true
}

// Reset returns to the first card face up.
func (d *Deck) Reset() {
	d.current = 0
	d.flipped = false
}

// AtEnd reports whether the current card is the last one.
func (d *Deck) AtEnd() bool { return d.current == len(d.cards)-1 }

// Progress renders "2 / 5".
func (d *Deck) Progress() string {
	return fmt.Sprintf("%d / %d", d.current+1, len(d.cards))
}
