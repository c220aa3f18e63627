package flashcard

import (
	"errors"
	"testing"

	verrors "github.com/FocuswithJustin/VerseCards/core/errors"
	"github.com/FocuswithJustin/VerseCards/core/verse"
)

func TestNewDeckEmpty(t *testing.T) {
	for _, set := range []*Set{nil, {Title: "empty"}} {
		if _, err := NewDeck(set, nil); !errors.Is(err, verrors.ErrEmptySelection) {
			t.Errorf("NewDeck(%v) error = %v", set, err)
		}
	}
}

func TestDeckNavigation(t *testing.T) {
	set, err := Finalize("Psalm 23", "", refs(t, "Psalms 23:1-3"))
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	deck, err := NewDeck(set, func(r verse.Ref) string { return "text of " + r.Label() })
	if err != nil {
		t.Fatalf("NewDeck failed: %v", err)
	}

	if deck.Title() != "Psalm 23" || deck.Len() != 3 {
		t.Fatalf("deck = %q with %d cards", deck.Title(), deck.Len())
	}
	if deck.Progress() != "1 / 3" || deck.Flipped() {
		t.Errorf("initial state: %s flipped=%v", deck.Progress(), deck.Flipped())
	}
	if deck.Previous() {
		t.Error("Previous on first card should report false")
	}

	deck.Flip()
	if !deck.Flipped() {
		t.Error("Flip did not flip")
	}
	if got := deck.Current().Passage; got != "text of Psalms 23:1" {
		t.Errorf("Passage = %q", got)
	}

	if !deck.Next() || deck.Flipped() {
		t.Error("Next should advance face up")
	}
	if !deck.Next() || !deck.AtEnd() {
		t.Error("expected to be on the last card")
	}
	if deck.Next() {
		t.Error("Next on last card should report false")
	}
	if deck.Current().Reference.Label() != "Psalms 23:3" || deck.Index() != 2 {
		t.Errorf("Current() = %v at %d", deck.Current().Reference, deck.Index())
	}

	deck.Flip()
	if !deck.Previous() || deck.Flipped() || deck.Progress() != "2 / 3" {
		t.Errorf("Previous: %s flipped=%v", deck.Progress(), deck.Flipped())
	}

	deck.Flip()
	deck.Reset()
	if deck.Index() != 0 || deck.Flipped() {
		t.Errorf("Reset left index=%d flipped=%v", deck.Index(), deck.Flipped())
	}
}

func TestDeckWithoutPassages(t *testing.T) {
	set, _ := Finalize("solo", "", refs(t, "Jude 1:24"))
	deck, err := NewDeck(set, nil)
	if err != nil {
		t.Fatalf("NewDeck failed: %v", err)
	}
	if deck.Current().Passage != "" {
		t.Errorf("Passage = %q, want empty", deck.Current().Passage)
	}
	if !deck.AtEnd() || deck.Next() || deck.Previous() {
		t.Error("single-card deck navigation wrong")
	}
}
