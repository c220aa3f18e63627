package verse

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/VerseCards/core/catalog"
	verrors "github.com/FocuswithJustin/VerseCards/core/errors"
	"github.com/FocuswithJustin/VerseCards/core/span"
)

// Passage is a run of verses within one chapter, as typed by a user
// ("John 3:16-18, 20") or as grouped for display.
type Passage struct {
	Book    string
	Chapter int
	Verses  []int // ascending, unique
}

// String renders the passage, e.g. "John 3:16-18, 20" or "Psalms 23" when
// no verses are listed.
func (p Passage) String() string {
	head := p.Book + " " + strconv.Itoa(p.Chapter)
	if len(p.Verses) == 0 {
		return head
	}
	return head + ":" + span.Format(span.Compress(p.Verses))
}

// Refs validates every verse of the passage against the catalog.
func (p Passage) Refs(cat catalog.Catalog) ([]Ref, error) {
	refs := make([]Ref, 0, len(p.Verses))
	for _, v := range p.Verses {
		ref, err := Validate(p.Book, p.Chapter, v, cat)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// passageGrammar is the participle grammar for human-typed references.
// Examples: "John 3:16", "1 John 3:1-3, 5", "Song of Solomon 2", "ps 23"
//
//nolint:govet // participle grammar tags are not standard struct tags
type passageGrammar struct {
	BookPrefix string       `@Int?`
	BookWords  []string     `@Ident+`
	Chapter    int          `@Int`
	Verses     []*verseItem `( ":" @@ ( "," @@ )* )?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type verseItem struct {
	Start int  `@Int`
	End   *int `( "-" @Int )?`
}

var passageLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z]+\.?`},
	{Name: "Punct", Pattern: `[:,\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var passageParser = participle.MustBuild[passageGrammar](
	participle.Lexer(passageLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a single passage and validates it against the catalog.
// Book names go through the catalog's Resolver when it has one. A chapter
// with no verse list expands to every verse the catalog records for it.
func Parse(s string, cat catalog.Catalog) (Passage, error) {
	s = strings.TrimSpace(strings.NewReplacer("–", "-", "—", "-").Replace(s))
	if s == "" {
		return Passage{}, verrors.NewParse("reference", "", "empty reference")
	}

	parsed, err := passageParser.ParseString("", s)
	if err != nil {
		return Passage{}, &verrors.ParseError{Format: "reference", Message: strconv.Quote(s), Err: err}
	}

	words := parsed.BookWords
	for i, w := range words {
		words[i] = strings.TrimSuffix(w, ".")
	}
	name := strings.Join(words, " ")
	if parsed.BookPrefix != "" {
		name = parsed.BookPrefix + " " + name
	}
	book, err := resolveBook(name, cat)
	if err != nil {
		return Passage{}, err
	}

	p := Passage{Book: book, Chapter: parsed.Chapter}
	if len(parsed.Verses) == 0 {
		count := cat.VerseCount(book, parsed.Chapter)
		if count <= 0 {
			return Passage{}, verrors.NewChapterOutOfRange(book, parsed.Chapter, cat.ChapterCount(book))
		}
		p.Verses = make([]int, count)
		for i := range p.Verses {
			p.Verses[i] = i + 1
		}
		return p, nil
	}

	for _, item := range parsed.Verses {
		end := item.Start
		if item.End != nil {
			end = *item.End
		}
		if end < item.Start {
			return Passage{}, verrors.NewParse("reference", "", fmt.Sprintf("reversed range %d-%d in %q", item.Start, end, s))
		}
		for v := item.Start; v <= end; v++ {
			if _, err := Validate(book, parsed.Chapter, v, cat); err != nil {
				return Passage{}, err
			}
			p.Verses = append(p.Verses, v)
		}
	}
	slices.Sort(p.Verses)
	p.Verses = slices.Compact(p.Verses)
	return p, nil
}

// ParseList parses passages separated by semicolons ("John 3:16; Ps 23:1-3").
func ParseList(s string, cat catalog.Catalog) ([]Passage, error) {
	var out []Passage
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		p, err := Parse(part, cat)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, verrors.NewParse("reference", "", "empty reference")
	}
	return out, nil
}

func resolveBook(name string, cat catalog.Catalog) (string, error) {
	if r, ok := cat.(catalog.Resolver); ok {
		if book, ok := r.Resolve(name); ok {
			return book, nil
		}
		return "", verrors.NewUnknownBook(name)
	}
	if cat.BookIndex(name) < 0 {
		return "", verrors.NewUnknownBook(name)
	}
	return name, nil
}
