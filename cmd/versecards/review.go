package main

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/VerseCards/core/flashcard"
	"github.com/FocuswithJustin/VerseCards/core/selection"
	"github.com/FocuswithJustin/VerseCards/core/verse"
	"github.com/FocuswithJustin/VerseCards/internal/logging"
)

// ReviewCmd steps through a stored set reading commands from stdin.
type ReviewCmd struct {
	ID string `arg:"" help:"Set ID"`
}

const reviewHelp = "n next, p previous, f flip, r restart, q quit"

func (c *ReviewCmd) Run(a *app) error {
	st, err := a.openStoreReadOnly()
	if err != nil {
		return err
	}
	set, err := st.Get(a.ctx, c.ID, a.cat)
	st.Close()
	if err != nil {
		return err
	}

	deck, err := flashcard.NewDeck(set, nil)
	if err != nil {
		return err
	}

	a.printf("%s (%d cards) - %s\n", deck.Title(), deck.Len(), reviewHelp)
	showCard(a, deck)

	scanner := bufio.NewScanner(a.in)
	for scanner.Scan() {
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "n", "next", "":
			if !deck.Next() {
				a.printf("last card\n")
				continue
			}
		case "p", "prev", "previous":
			if !deck.Previous() {
				a.printf("first card\n")
				continue
			}
		case "f", "flip":
			deck.Flip()
		case "r", "restart":
			deck.Reset()
		case "q", "quit":
			return nil
		default:
			a.printf("%s\n", reviewHelp)
			continue
		}
		showCard(a, deck)
	}
	return scanner.Err()
}

func showCard(a *app, deck *flashcard.Deck) {
	card := deck.Current()
	if !deck.Flipped() {
		a.printf("[%s] %s\n", deck.Progress(), card.Reference.Label())
		return
	}
	text := card.Passage
	if text == "" {
		text = "(no passage text)"
	}
	a.printf("[%s] %s: %s\n", deck.Progress(), card.Reference.Label(), text)
}

// SelectCmd is a line-oriented selection builder: open a chapter, toggle
// verses, add them to the working set, then save it.
type SelectCmd struct{}

const selectHelp = `commands:
  open <book> <chapter>   pick verses from a chapter
  toggle <n>...           tick or untick verse numbers
  add                     add ticked verses to the set
  remove <index>          remove the set entry at index (from "list")
  list                    show the set
  clear                   empty the set
  save <title>            save the set and exit
  quit                    exit without saving`

func (c *SelectCmd) Run(a *app) error {
	sel := selection.New()
	var picker *selection.Picker

	a.printf("%s\n", selectHelp)
	scanner := bufio.NewScanner(a.in)
	for scanner.Scan() {
		cmd, rest, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		rest = strings.TrimSpace(rest)

		switch strings.ToLower(cmd) {
		case "":
		case "open":
			p, err := verse.Parse(rest, a.cat)
			if err != nil {
				a.printf("error: %v\n", err)
				continue
			}
			picker, err = selection.NewPicker(p.Book, p.Chapter, a.cat)
			if err != nil {
				a.printf("error: %v\n", err)
				continue
			}
			a.printf("%s %d: %d verses\n", picker.Book(), picker.Chapter(), picker.Available())
		case "toggle":
			if picker == nil {
				a.printf("open a chapter first\n")
				continue
			}
			for _, field := range strings.FieldsFunc(rest, func(r rune) bool { return r == ' ' || r == ',' }) {
				n, err := strconv.Atoi(field)
				if err == nil {
					err = picker.Toggle(n)
				}
				if err != nil {
					a.printf("error: %v\n", err)
				}
			}
			a.printf("%s\n", picker.Describe())
		case "add":
			if picker == nil {
				a.printf("open a chapter first\n")
				continue
			}
			label := picker.Describe()
			added, skipped, err := picker.Commit(sel)
			if err != nil {
				a.printf("error: %v\n", err)
				continue
			}
			logging.SelectionChanged(a.ctx, "add", picker.Book()+" "+strconv.Itoa(picker.Chapter()), added, skipped, sel.Len())
			a.printf("%s: added %d, skipped %d (%d in set)\n", label, added, skipped, sel.Len())
		case "remove":
			idx, err := strconv.Atoi(rest)
			if err == nil {
				err = sel.Remove(idx)
			}
			if err != nil {
				a.printf("error: %v\n", err)
				continue
			}
			logging.SelectionChanged(a.ctx, "remove", rest, 0, 0, sel.Len())
		case "list":
			if sel.IsEmpty() {
				a.printf("set is empty\n")
				continue
			}
			for i, ref := range sel.Snapshot() {
				a.printf("%3d  %s\n", i, ref.Label())
			}
			a.printf("%s\n", selection.Describe(sel.Snapshot()))
		case "clear":
			sel.Clear()
		case "save":
			set, err := flashcard.Finalize(rest, "", sel.Snapshot())
			if err != nil {
				a.printf("error: %v\n", err)
				continue
			}
			return saveSet(a, set)
		case "quit", "q":
			return nil
		default:
			a.printf("%s\n", selectHelp)
		}
	}
	return scanner.Err()
}
