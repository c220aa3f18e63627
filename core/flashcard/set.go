// Package flashcard turns a finished selection into a named flashcard set and
// drives flip-style review of it.
package flashcard

import (
	"context"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"

	verrors "github.com/FocuswithJustin/VerseCards/core/errors"
	"github.com/FocuswithJustin/VerseCards/core/verse"
	"github.com/FocuswithJustin/VerseCards/internal/validation"
)

// Set is a finalized flashcard set.
type Set struct {
	ID          string
	Title       string
	Description string
	Verses      []verse.Ref
	// Fingerprint is the BLAKE3 hash of the ordered verse keys; two sets with
	// the same verses in the same order share it regardless of title.
	Fingerprint string
	CreatedAt   time.Time
}

// Sink receives finalized sets. Storage is the sink's concern, not this package's.
type Sink interface {
	Save(ctx context.Context, set *Set) error
}

// Finalize builds a Set from a selection snapshot. The title is required and
// at least one verse must be selected. The snapshot is copied.
func Finalize(title, description string, verses []verse.Ref) (*Set, error) {
	title = strings.TrimSpace(title)
	if err := validation.ValidateTitle(title); err != nil {
		return nil, &verrors.ValidationError{Field: "title", Value: title, Message: err.Error(), Err: err}
	}
	description = strings.TrimSpace(description)
	if err := validation.ValidateDescription(description); err != nil {
		return nil, &verrors.ValidationError{Field: "description", Message: err.Error(), Err: err}
	}
	if len(verses) == 0 {
		return nil, &verrors.ValidationError{Field: "verses", Message: "select at least one verse", Err: verrors.ErrEmptySelection}
	}

	refs := make([]verse.Ref, len(verses))
	copy(refs, verses)

	return &Set{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Verses:      refs,
		Fingerprint: Fingerprint(refs),
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Fingerprint hashes the ordered verse keys with BLAKE3 and returns hex.
func Fingerprint(refs []verse.Ref) string {
	h := blake3.New()
	var buf []byte
	for _, r := range refs {
		buf = buf[:0]
		buf = append(buf, r.Book()...)
		buf = append(buf, 0x1f)
		buf = strconv.AppendInt(buf, int64(r.Chapter()), 10)
		buf = append(buf, 0x1f)
		buf = strconv.AppendInt(buf, int64(r.Verse()), 10)
		buf = append(buf, '\n')
		_, _ = h.Write(buf)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Labels returns the display label of every verse, in order.
func (s *Set) Labels() []string {
	out := make([]string, len(s.Verses))
	for i, r := range s.Verses {
		out[i] = r.Label()
	}
	return out
}
