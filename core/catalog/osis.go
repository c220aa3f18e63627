package catalog

import (
	"fmt"
	"strconv"
	"strings"

	verrors "github.com/FocuswithJustin/VerseCards/core/errors"
	"github.com/FocuswithJustin/VerseCards/core/xml"
)

// verseQuery matches both container and milestone (sID) verse elements;
// end milestones carry no osisID and are skipped.
const verseQuery = "//*[local-name()='verse'][@osisID]"

const rootQuery = "/*[local-name()='osis']"

// Upper bounds for chapter and verse numbers in an osisID. Psalms has 150
// chapters and Psalm 119 has 176 verses in every common versification.
const (
	maxChapters = 250
	maxVerses   = 250
)

// FromOSIS derives a catalog from the verse osisIDs of an OSIS document.
// Books keep their order of first appearance. OSIS IDs known to the KJV table
// are given their display names; unknown books keep the OSIS ID as their name.
// Only structure is read, never verse text.
func FromOSIS(data []byte) (*Versification, error) {
	doc, err := xml.Parse(data)
	if err != nil {
		return nil, &verrors.ParseError{Format: "OSIS", Message: "malformed document", Err: err}
	}
	root, err := doc.XPathFirst(rootQuery)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, verrors.NewParse("OSIS", "", "missing osis root element")
	}
	nodes, err := doc.XPath(verseQuery)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(kjvBooks))
	for _, b := range kjvBooks {
		names[b.OSIS] = b.Name
	}

	var order []string
	counts := make(map[string][]int)
	for _, n := range nodes {
		for _, id := range strings.Fields(n.Attr("osisID")) {
			book, chapter, verse, ok := splitOSISID(id)
			if !ok {
				return nil, verrors.NewParse("OSIS", "", "invalid verse osisID "+strconv.Quote(id))
			}
			if chapter > maxChapters || verse > maxVerses {
				return nil, verrors.NewParse("OSIS", "", "verse osisID out of range "+strconv.Quote(id))
			}
			chapters, seen := counts[book]
			if !seen {
				order = append(order, book)
			}
			for len(chapters) < chapter {
				chapters = append(chapters, 0)
			}
			if verse > chapters[chapter-1] {
				chapters[chapter-1] = verse
			}
			counts[book] = chapters
		}
	}
	if len(order) == 0 {
		return nil, verrors.NewParse("OSIS", "", "document contains no verses")
	}

	books := make([]Book, 0, len(order))
	for _, osis := range order {
		for i, n := range counts[osis] {
			if n == 0 {
				return nil, verrors.NewParse("OSIS", "", fmt.Sprintf("%s chapter %d has no verses", osis, i+1))
			}
		}
		name, ok := names[osis]
		if !ok {
			name = osis
		}
		books = append(books, Book{Name: name, OSIS: osis, Chapters: counts[osis]})
	}
	return NewVersification(VersOSIS, books), nil
}

// splitOSISID splits "1John.3.16" into its parts. Sub-verse suffixes ("16a")
// and work prefixes ("KJV:John.3.16") are tolerated.
func splitOSISID(id string) (book string, chapter, verse int, ok bool) {
	if i := strings.IndexByte(id, ':'); i >= 0 {
		id = id[i+1:]
	}
	parts := strings.Split(id, ".")
	if len(parts) != 3 || parts[0] == "" {
		return "", 0, 0, false
	}
	chapter, err := strconv.Atoi(parts[1])
	if err != nil || chapter < 1 {
		return "", 0, 0, false
	}
	verse, err = strconv.Atoi(strings.TrimRight(parts[2], "abcdefghijklmnopqrstuvwxyz"))
	if err != nil || verse < 1 {
		return "", 0, 0, false
	}
	return parts[0], chapter, verse, true
}
