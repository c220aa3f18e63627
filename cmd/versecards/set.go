package main

import (
	"errors"
	"fmt"
	"time"

	verrors "github.com/FocuswithJustin/VerseCards/core/errors"
	"github.com/FocuswithJustin/VerseCards/core/flashcard"
	"github.com/FocuswithJustin/VerseCards/core/selection"
	"github.com/FocuswithJustin/VerseCards/core/verse"
	"github.com/FocuswithJustin/VerseCards/internal/archive"
	"github.com/FocuswithJustin/VerseCards/internal/logging"
	"github.com/FocuswithJustin/VerseCards/internal/validation"
)

// SetGroup contains flashcard set operations.
type SetGroup struct {
	Create  SetCreateCmd  `cmd:"" help:"Create a set from references"`
	List    SetListCmd    `cmd:"" help:"List stored sets"`
	Show    SetShowCmd    `cmd:"" help:"Show one set"`
	Delete  SetDeleteCmd  `cmd:"" help:"Delete a set"`
	Export  SetExportCmd  `cmd:"" help:"Export sets to a .tar.xz bundle"`
	Import  SetImportCmd  `cmd:"" help:"Import sets from a bundle"`
	Inspect SetInspectCmd `cmd:"" help:"List the sets in a bundle without importing them"`
}

// SetCreateCmd builds a set from one or more reference lists.
type SetCreateCmd struct {
	Title       string   `required:"" short:"t" help:"Set title"`
	Description string   `short:"d" help:"Optional description"`
	Ref         []string `required:"" short:"r" sep:"none" help:"References, e.g. \"John 3:16-18; Ps 23:1\" (repeatable)"`
	DryRun      bool     `name:"dry-run" help:"Print the set without saving it"`
}

func (c *SetCreateCmd) Run(a *app) error {
	sel := selection.New()
	for _, r := range c.Ref {
		passages, err := verse.ParseList(r, a.cat)
		if err != nil {
			return err
		}
		for _, p := range passages {
			added, skipped, err := sel.AddMany(p.Book, p.Chapter, p.Verses, a.cat)
			if err != nil {
				return err
			}
			logging.SelectionChanged(a.ctx, "add", p.String(), added, skipped, sel.Len())
		}
	}

	set, err := flashcard.Finalize(c.Title, c.Description, sel.Snapshot())
	if err != nil {
		return err
	}
	if c.DryRun {
		printSet(a, set)
		return nil
	}
	return saveSet(a, set)
}

// saveSet stores set and prints its ID. Shared by create and select.
func saveSet(a *app, set *flashcard.Set) error {
	st, err := a.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	var sink flashcard.Sink = st
	if err := sink.Save(a.ctx, set); err != nil {
		return err
	}
	a.printf("saved %s %q: %s\n", set.ID, set.Title, selection.Describe(set.Verses))
	return nil
}

func printSet(a *app, set *flashcard.Set) {
	a.printf("ID:          %s\n", set.ID)
	a.printf("Title:       %s\n", set.Title)
	if set.Description != "" {
		a.printf("Description: %s\n", set.Description)
	}
	a.printf("Created:     %s\n", set.CreatedAt.Format(time.RFC3339))
	a.printf("Fingerprint: %s\n", set.Fingerprint)
	a.printf("Verses:      %d\n", len(set.Verses))
	for _, p := range selection.Summary(set.Verses) {
		a.printf("  %s\n", p)
	}
}

// SetListCmd lists stored sets.
type SetListCmd struct {
	Search string `short:"s" help:"Only sets whose title contains this text (case-insensitive)"`
}

func (c *SetListCmd) Run(a *app) error {
	st, err := a.openStoreReadOnly()
	if err != nil {
		return err
	}
	defer st.Close()

	sets, err := st.List(a.ctx, c.Search)
	if err != nil {
		return err
	}
	if len(sets) == 0 {
		if c.Search != "" {
			a.printf("no sets match %q\n", c.Search)
			return nil
		}
		a.printf("no sets\n")
		return nil
	}
	for _, s := range sets {
		a.printf("%s  %-30s %4d verses  %s\n", s.ID, s.Title, s.Verses, s.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

// SetShowCmd prints one set.
type SetShowCmd struct {
	ID string `arg:"" help:"Set ID"`
}

func (c *SetShowCmd) Run(a *app) error {
	st, err := a.openStoreReadOnly()
	if err != nil {
		return err
	}
	defer st.Close()

	set, err := st.Get(a.ctx, c.ID, a.cat)
	if err != nil {
		return err
	}
	printSet(a, set)
	return nil
}

// SetDeleteCmd deletes a set.
type SetDeleteCmd struct {
	ID string `arg:"" help:"Set ID"`
}

func (c *SetDeleteCmd) Run(a *app) error {
	st, err := a.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Delete(a.ctx, c.ID); err != nil {
		return err
	}
	a.printf("deleted %s\n", c.ID)
	return nil
}

// SetExportCmd writes sets to a bundle.
type SetExportCmd struct {
	IDs    []string `arg:"" optional:"" name:"id" help:"Set IDs (default: all)"`
	Output string   `short:"o" help:"Bundle path, .tar.xz or .tar.gz (default: <title>.tar.xz for one set, versecards-sets.tar.xz otherwise)" type:"path"`
}

// defaultBundle names the bundle when export is given no output path.
const defaultBundle = "versecards-sets.tar.xz"

func (c *SetExportCmd) Run(a *app) error {
	if c.Output != "" {
		if err := validation.ValidatePath(c.Output); err != nil {
			return err
		}
	}

	st, err := a.openStoreReadOnly()
	if err != nil {
		return err
	}
	defer st.Close()

	ids := c.IDs
	if len(ids) == 0 {
		all, err := st.List(a.ctx, "")
		if err != nil {
			return err
		}
		for _, s := range all {
			ids = append(ids, s.ID)
		}
	}
	if len(ids) == 0 {
		return verrors.Wrap(verrors.ErrEmptySelection, "nothing to export")
	}

	sets := make([]*flashcard.Set, 0, len(ids))
	for _, id := range ids {
		set, err := st.Get(a.ctx, id, a.cat)
		if err != nil {
			return err
		}
		sets = append(sets, set)
	}

	out := c.Output
	if out == "" {
		out = bundleName(sets)
	}
	start := time.Now()
	if err := archive.WriteBundle(out, sets); err != nil {
		return err
	}
	logging.SetExported(a.ctx, out, len(sets), time.Since(start))
	a.printf("exported %d sets to %s\n", len(sets), out)
	return nil
}

// bundleName derives a file name from the title of a single set, falling back
// to its ID when the title leaves nothing usable.
func bundleName(sets []*flashcard.Set) string {
	if len(sets) != 1 {
		return defaultBundle
	}
	if name, err := validation.SanitizeFilename(sets[0].Title); err == nil {
		name += ".tar.xz"
		if validation.ValidateFilename(name) == nil {
			return name
		}
	}
	return sets[0].ID + ".tar.xz"
}

// SetImportCmd reads sets from a bundle. Sets whose verses are already
// stored are skipped.
type SetImportCmd struct {
	Path string `arg:"" help:"Bundle path" type:"existingfile"`
}

func (c *SetImportCmd) Run(a *app) error {
	_, sets, err := archive.ReadBundle(c.Path, a.cat)
	if err != nil {
		return err
	}

	st, err := a.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	imported, skipped := 0, 0
	for _, set := range sets {
		err := st.Save(a.ctx, set)
		switch {
		case errors.Is(err, verrors.ErrAlreadyExists):
			skipped++
			logging.WarnContext(a.ctx, "set skipped", "set_id", set.ID, "error", err)
			a.printf("skip %q: %v\n", set.Title, err)
		case err != nil:
			return fmt.Errorf("import %s: %w", set.ID, err)
		default:
			imported++
		}
	}
	logging.InfoContext(a.ctx, "bundle imported", "path", c.Path, "imported", imported, "skipped", skipped)
	a.printf("imported %d sets, skipped %d\n", imported, skipped)
	return nil
}

// SetInspectCmd prints a bundle's manifest.
type SetInspectCmd struct {
	Path string `arg:"" help:"Bundle path" type:"existingfile"`
}

func (c *SetInspectCmd) Run(a *app) error {
	m, err := archive.ReadManifest(c.Path)
	if err != nil {
		return err
	}
	a.printf("%s v%d, %d sets, created %s\n", m.Format, m.Version, len(m.Sets), m.CreatedAt.Format(time.RFC3339))
	for _, e := range m.Sets {
		a.printf("%s  %-30s %4d verses\n", e.ID, e.Title, e.Verses)
	}
	return nil
}
