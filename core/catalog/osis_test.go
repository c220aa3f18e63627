package catalog

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	verrors "github.com/FocuswithJustin/VerseCards/core/errors"
)

const osisFixture = `<?xml version="1.0" encoding="UTF-8"?>
<osis xmlns="http://www.bibletechnologies.net/2003/OSIS/namespace">
  <osisText osisIDWork="Fixture">
    <div type="book" osisID="Jude">
      <chapter osisID="Jude.1">
        <verse osisID="Jude.1.1">Jude, the servant</verse>
        <verse osisID="Jude.1.2 Jude.1.3">Mercy unto you</verse>
      </chapter>
    </div>
    <div type="book" osisID="Tob">
      <chapter osisID="Tob.1">
        <verse sID="Tob.1.1" osisID="Tob.1.1"/>The book of the words of Tobit<verse eID="Tob.1.1"/>
      </chapter>
      <chapter osisID="Tob.2">
        <verse osisID="Tob.2.1">Now when I was come home</verse>
        <verse osisID="Tob.2.2a">And when I saw</verse>
      </chapter>
    </div>
  </osisText>
</osis>`

func TestFromOSIS(t *testing.T) {
	v, err := FromOSIS([]byte(osisFixture))
	if err != nil {
		t.Fatalf("FromOSIS failed: %v", err)
	}

	want := []Book{
		{Name: "Jude", OSIS: "Jude", Chapters: []int{3}},
		{Name: "Tob", OSIS: "Tob", Chapters: []int{1, 2}},
	}
	if diff := cmp.Diff(want, v.Books()); diff != "" {
		t.Errorf("Books() mismatch (-want +got):\n%s", diff)
	}
	if v.ID != VersOSIS {
		t.Errorf("ID = %q, want %q", v.ID, VersOSIS)
	}
	if got, ok := v.Resolve("tob"); !ok || got != "Tob" {
		t.Errorf("Resolve(tob) = (%q, %v)", got, ok)
	}
}

func TestFromOSISErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", "<osis><verse></osis>"},
		{"no verses", "<osis><osisText/></osis>"},
		{"bad osisID", `<osis><verse osisID="John.three.16"/></osis>`},
		{"short osisID", `<osis><verse osisID="John.3"/></osis>`},
		{"huge chapter", `<osis><verse osisID="Gen.30000000.1"/></osis>`},
		{"huge verse", `<osis><verse osisID="Gen.1.30000000"/></osis>`},
		{"chapter gap", `<osis><verse osisID="Gen.1.1"/><verse osisID="Gen.3.1"/></osis>`},
		{"not osis", `<tei><verse osisID="Gen.1.1"/></tei>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromOSIS([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			var parseErr *verrors.ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("error = %T %v, want *ParseError", err, err)
			}
		})
	}
}

func TestFromOSISChapterBounds(t *testing.T) {
	v, err := FromOSIS([]byte(`<osis><verse osisID="Ps.250.1"/></osis>`))
	if err == nil {
		t.Fatalf("expected a gap error, got %d chapters", v.ChapterCount("Ps"))
	}

	var b strings.Builder
	b.WriteString("<osis>")
	for ch := 1; ch <= maxChapters; ch++ {
		fmt.Fprintf(&b, `<verse osisID="Ps.%d.%d"/>`, ch, maxVerses)
	}
	b.WriteString("</osis>")
	v, err = FromOSIS([]byte(b.String()))
	if err != nil {
		t.Fatalf("FromOSIS at the bounds failed: %v", err)
	}
	if got := v.ChapterCount("Psalms"); got != maxChapters {
		t.Errorf("ChapterCount = %d, want %d", got, maxChapters)
	}
	if got := v.VerseCount("Psalms", maxChapters); got != maxVerses {
		t.Errorf("VerseCount = %d, want %d", got, maxVerses)
	}
}

func TestSplitOSISID(t *testing.T) {
	tests := []struct {
		id      string
		book    string
		chapter int
		verse   int
		ok      bool
	}{
		{"John.3.16", "John", 3, 16, true},
		{"1John.4.8", "1John", 4, 8, true},
		{"KJV:Gen.1.1", "Gen", 1, 1, true},
		{"Ps.23.1b", "Ps", 23, 1, true},
		{"Ps.0.1", "", 0, 0, false},
		{".1.1", "", 0, 0, false},
		{"Gen.1", "", 0, 0, false},
	}
	for _, tt := range tests {
		book, chapter, verse, ok := splitOSISID(tt.id)
		if book != tt.book || chapter != tt.chapter || verse != tt.verse || ok != tt.ok {
			t.Errorf("splitOSISID(%q) = (%q, %d, %d, %v)", tt.id, book, chapter, verse, ok)
		}
	}
}
