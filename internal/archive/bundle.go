package archive

import (
	"archive/tar"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/FocuswithJustin/VerseCards/core/catalog"
	verrors "github.com/FocuswithJustin/VerseCards/core/errors"
	"github.com/FocuswithJustin/VerseCards/core/flashcard"
	"github.com/FocuswithJustin/VerseCards/core/verse"
	"github.com/FocuswithJustin/VerseCards/internal/validation"
)

// Bundle layout.
const (
	BundleFormat  = "versecards-bundle"
	BundleVersion = 1
	ManifestName  = "manifest.json"
	setsDir       = "sets/"
)

// Manifest lists the sets in a bundle, in export order.
type Manifest struct {
	Format    string          `json:"format"`
	Version   int             `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	Sets      []ManifestEntry `json:"sets"`
}

// ManifestEntry describes one set file.
type ManifestEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Fingerprint string `json:"fingerprint"`
	Verses      int    `json:"verses"`
}

type setRecord struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Fingerprint string        `json:"fingerprint"`
	CreatedAt   time.Time     `json:"created_at"`
	Verses      []verseRecord `json:"verses"`
}

type verseRecord struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
}

// KindForPath picks gzip for ".tar.gz" and ".tgz" paths and xz otherwise.
func KindForPath(p string) validation.FileType {
	if strings.HasSuffix(p, ".tar.gz") || strings.HasSuffix(p, ".tgz") {
		return validation.FileTypeGzip
	}
	return validation.FileTypeXZ
}

// WriteBundle writes sets to a new archive at p. A partially written file is
// removed on failure.
func WriteBundle(p string, sets []*flashcard.Set) (err error) {
	if len(sets) == 0 {
		return verrors.Wrap(verrors.ErrEmptySelection, "write bundle")
	}
	if err := validation.ValidatePath(p); err != nil {
		return err
	}

	f, err := os.Create(p)
	if err != nil {
		return verrors.NewIO("create", p, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = verrors.NewIO("close", p, cerr)
		}
		if err != nil {
			os.Remove(p)
		}
	}()

	return EncodeBundle(f, KindForPath(p), sets, time.Now().UTC())
}

// EncodeBundle writes sets as a bundle stream to w.
func EncodeBundle(w io.Writer, kind validation.FileType, sets []*flashcard.Set, now time.Time) error {
	aw, err := NewWriter(w, kind, now)
	if err != nil {
		return err
	}

	manifest := Manifest{Format: BundleFormat, Version: BundleVersion, CreatedAt: now.UTC()}
	seen := make(map[string]bool, len(sets))
	for _, s := range sets {
		if s == nil || len(s.Verses) == 0 {
			aw.Close()
			return verrors.Wrap(verrors.ErrEmptySelection, "write bundle")
		}
		if seen[s.ID] {
			aw.Close()
			return fmt.Errorf("set %s listed twice: %w", s.ID, verrors.ErrAlreadyExists)
		}
		seen[s.ID] = true

		data, err := json.MarshalIndent(toRecord(s), "", "  ")
		if err != nil {
			aw.Close()
			return fmt.Errorf("marshal set %s: %w", s.ID, err)
		}
		if err := aw.WriteFile(setsDir+s.ID+".json", data); err != nil {
			aw.Close()
			return err
		}
		manifest.Sets = append(manifest.Sets, ManifestEntry{
			ID:          s.ID,
			Title:       s.Title,
			Fingerprint: s.Fingerprint,
			Verses:      len(s.Verses),
		})
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		aw.Close()
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := aw.WriteFile(ManifestName, data); err != nil {
		aw.Close()
		return err
	}
	return aw.Close()
}

// ReadBundle reads every set in the bundle at p, in manifest order. Each
// verse is validated against cat and each fingerprint is recomputed.
func ReadBundle(p string, cat catalog.Catalog) (*Manifest, []*flashcard.Set, error) {
	var manifest *Manifest
	records := make(map[string]setRecord)

	err := IterateFile(p, func(header *tar.Header, r io.Reader) (bool, error) {
		if header.Typeflag != tar.TypeReg {
			return false, nil
		}
		name := strings.TrimPrefix(header.Name, "./")
		switch {
		case name == ManifestName:
			var m Manifest
			if err := json.NewDecoder(r).Decode(&m); err != nil {
				return true, &verrors.ParseError{Format: "bundle", Path: p, Message: "bad manifest", Err: err}
			}
			manifest = &m
		case strings.HasPrefix(name, setsDir) && path.Ext(name) == ".json":
			var rec setRecord
			if err := json.NewDecoder(r).Decode(&rec); err != nil {
				return true, &verrors.ParseError{Format: "bundle", Path: p, Message: "bad set file " + name, Err: err}
			}
			records[rec.ID] = rec
		}
		return false, nil
	})
	if err != nil {
		return nil, nil, err
	}

	if manifest == nil {
		return nil, nil, verrors.NewParse("bundle", p, "missing "+ManifestName)
	}
	if err := checkManifest(p, manifest); err != nil {
		return nil, nil, err
	}

	sets := make([]*flashcard.Set, 0, len(manifest.Sets))
	for _, entry := range manifest.Sets {
		rec, ok := records[entry.ID]
		if !ok {
			return nil, nil, &verrors.NotFoundError{Resource: "bundle set", ID: entry.ID}
		}
		set, err := fromRecord(rec, cat)
		if err != nil {
			return nil, nil, fmt.Errorf("bundle set %s: %w", entry.ID, err)
		}
		sets = append(sets, set)
	}
	return manifest, sets, nil
}

// ReadManifest reads only the manifest of the bundle at p. Set files are not
// decoded or validated.
func ReadManifest(p string) (*Manifest, error) {
	data, err := ReadFile(p, ManifestName)
	if errors.Is(err, verrors.ErrNotFound) {
		return nil, verrors.NewParse("bundle", p, "missing "+ManifestName)
	}
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &verrors.ParseError{Format: "bundle", Path: p, Message: "bad manifest", Err: err}
	}
	if err := checkManifest(p, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func checkManifest(p string, m *Manifest) error {
	if m.Format != BundleFormat || m.Version != BundleVersion {
		return verrors.NewParse("bundle", p, fmt.Sprintf("unsupported bundle %s v%d", m.Format, m.Version))
	}
	return nil
}

func toRecord(s *flashcard.Set) setRecord {
	rec := setRecord{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Fingerprint: s.Fingerprint,
		CreatedAt:   s.CreatedAt.UTC(),
		Verses:      make([]verseRecord, len(s.Verses)),
	}
	for i, r := range s.Verses {
		rec.Verses[i] = verseRecord{Book: r.Book(), Chapter: r.Chapter(), Verse: r.Verse()}
	}
	return rec
}

func fromRecord(rec setRecord, cat catalog.Catalog) (*flashcard.Set, error) {
	if err := validation.ValidateTitle(rec.Title); err != nil {
		return nil, &verrors.ValidationError{Field: "title", Value: rec.Title, Message: err.Error(), Err: err}
	}
	if err := validation.ValidateDescription(rec.Description); err != nil {
		return nil, &verrors.ValidationError{Field: "description", Message: err.Error(), Err: err}
	}
	if len(rec.Verses) == 0 {
		return nil, verrors.ErrEmptySelection
	}

	refs := make([]verse.Ref, 0, len(rec.Verses))
	for _, v := range rec.Verses {
		ref, err := verse.Validate(v.Book, v.Chapter, v.Verse, cat)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	if fp := flashcard.Fingerprint(refs); fp != rec.Fingerprint {
		return nil, verrors.NewParse("bundle", "", "fingerprint does not match verses")
	}

	return &flashcard.Set{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Verses:      refs,
		Fingerprint: rec.Fingerprint,
		CreatedAt:   rec.CreatedAt,
	}, nil
}
