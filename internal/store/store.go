// Package store persists finalized flashcard sets in SQLite.
//
// Verses are stored by display name, chapter and verse, in selection order,
// and are validated again against the caller's catalog when read back.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/FocuswithJustin/VerseCards/core/catalog"
	verrors "github.com/FocuswithJustin/VerseCards/core/errors"
	"github.com/FocuswithJustin/VerseCards/core/flashcard"
	"github.com/FocuswithJustin/VerseCards/core/sqlite"
	"github.com/FocuswithJustin/VerseCards/core/verse"
	"github.com/FocuswithJustin/VerseCards/internal/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS sets (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  fingerprint TEXT NOT NULL UNIQUE,
  created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS set_verses (
  set_id TEXT NOT NULL REFERENCES sets(id) ON DELETE CASCADE,
  position INTEGER NOT NULL,
  book TEXT NOT NULL,
  chapter INTEGER NOT NULL,
  verse INTEGER NOT NULL,
  PRIMARY KEY (set_id, position)
);
`

// dbtx is the subset of database/sql shared by *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Summary is one row of List.
type Summary struct {
	ID        string
	Title     string
	Verses    int
	CreatedAt time.Time
}

// Store is a SQLite-backed flashcard.Sink.
type Store struct {
	db *sql.DB
}

var _ flashcard.Sink = (*Store)(nil)

// Open opens (creating if needed) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sqlite.OpenContext(ctx, path)
	if err != nil {
		return nil, err
	}
	s, err := New(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	logging.StoreOpened(path, sqlite.DriverName())
	return s, nil
}

// OpenReadOnly opens the database at path for reading only. A database that
// does not exist yet reads as empty and is not created.
func OpenReadOnly(ctx context.Context, path string) (*Store, error) {
	if path == sqlite.Memory {
		return Open(ctx, path)
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Open(ctx, sqlite.Memory)
	}

	db, err := sqlite.OpenReadOnly(ctx, path)
	if err != nil {
		return nil, err
	}
	var tables int
	err = db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('sets', 'set_verses')`).Scan(&tables)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	if tables != 2 {
		db.Close()
		return nil, verrors.NewValidation("database", path+" is not a flashcard database")
	}
	logging.StoreOpened(path, sqlite.DriverName(), "read_only", true)
	return &Store{db: db}, nil
}

// New wraps an open database and applies the schema.
func New(ctx context.Context, db *sql.DB) (*Store, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes a finalized set and its verses in one transaction. A set whose
// ID or fingerprint is already stored is rejected with ErrAlreadyExists.
func (s *Store) Save(ctx context.Context, set *flashcard.Set) error {
	if set == nil || len(set.Verses) == 0 {
		return verrors.Wrap(verrors.ErrEmptySelection, "save set")
	}

	err := s.withTx(ctx, func(ctx context.Context, tx dbtx) error {
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM sets WHERE id = ?`, set.ID).Scan(&n); err != nil {
			return fmt.Errorf("query row scan failed: %w", err)
		}
		if n > 0 {
			return fmt.Errorf("set id %s is already stored: %w", set.ID, verrors.ErrAlreadyExists)
		}

		existing, err := findByFingerprint(ctx, tx, set.Fingerprint)
		switch {
		case err == nil:
			return fmt.Errorf("set %q has the same verses: %w", existing, verrors.ErrAlreadyExists)
		case !errors.Is(err, verrors.ErrNotFound):
			return err
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO sets (id, title, description, fingerprint, created_at) VALUES (?, ?, ?, ?, ?)`,
			set.ID, set.Title, set.Description, set.Fingerprint, set.CreatedAt.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("failed to insert set: %w", err)
		}

		for i, ref := range set.Verses {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO set_verses (set_id, position, book, chapter, verse) VALUES (?, ?, ?, ?, ?)`,
				set.ID, i, ref.Book(), ref.Chapter(), ref.Verse())
			if err != nil {
				return fmt.Errorf("failed to insert verse %s: %w", ref, err)
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, verrors.ErrAlreadyExists) {
			logging.StoreError(ctx, "save", err, "set_id", set.ID)
		}
		return err
	}

	logging.SetSaved(ctx, set.ID, set.Title, len(set.Verses))
	return nil
}

// Get loads a set by ID and validates every verse against cat.
func (s *Store) Get(ctx context.Context, id string, cat catalog.Catalog) (*flashcard.Set, error) {
	set := &flashcard.Set{ID: id}
	var created string
	err := s.db.QueryRowContext(ctx,
		`SELECT title, description, fingerprint, created_at FROM sets WHERE id = ?`, id).
		Scan(&set.Title, &set.Description, &set.Fingerprint, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, verrors.NewNotFound("set", id)
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	if set.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return nil, fmt.Errorf("bad created_at for set %s: %w", id, errors.Join(verrors.ErrInternal, err))
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT book, chapter, verse FROM set_verses WHERE set_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to select verses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var book string
		var chapter, v int
		if err := rows.Scan(&book, &chapter, &v); err != nil {
			return nil, err
		}
		ref, err := verse.Validate(book, chapter, v, cat)
		if err != nil {
			return nil, verrors.Wrapf(err, "set %s", id)
		}
		set.Verses = append(set.Verses, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if flashcard.Fingerprint(set.Verses) != set.Fingerprint {
		return nil, fmt.Errorf("set %s: stored verses do not match fingerprint: %w", id, verrors.ErrInternal)
	}
	return set, nil
}

// List returns the stored sets, oldest first. A non-empty search keeps only
// sets whose title contains it, ignoring case.
func (s *Store) List(ctx context.Context, search string) ([]Summary, error) {
	search = strings.ToLower(search)
	rows, err := s.db.QueryContext(ctx, `
SELECT s.id, s.title, s.created_at, COUNT(v.position)
FROM sets s LEFT JOIN set_verses v ON v.set_id = s.id
GROUP BY s.id
ORDER BY s.created_at, s.title`)
	if err != nil {
		return nil, fmt.Errorf("failed to select sets: %w", err)
	}
	defer rows.Close()

	var result []Summary
	for rows.Next() {
		var item Summary
		var created string
		if err := rows.Scan(&item.ID, &item.Title, &created, &item.Verses); err != nil {
			return nil, err
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Title), search) {
			continue
		}
		if item.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("bad created_at for set %s: %w", item.ID, errors.Join(verrors.ErrInternal, err))
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes a set and its verses.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete set: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return verrors.NewNotFound("set", id)
	}
	return nil
}

// FindByFingerprint returns the ID of the set with the given fingerprint.
func (s *Store) FindByFingerprint(ctx context.Context, fingerprint string) (string, error) {
	return findByFingerprint(ctx, s.db, fingerprint)
}

func findByFingerprint(ctx context.Context, db dbtx, fingerprint string) (string, error) {
	var id string
	err := db.QueryRowContext(ctx, `SELECT id FROM sets WHERE fingerprint = ?`, fingerprint).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", verrors.NewNotFound("set with fingerprint", fingerprint)
	}
	if err != nil {
		return "", fmt.Errorf("query row scan failed: %w", err)
	}
	return id, nil
}

// withTx runs fn in a transaction, committing on success and rolling back on
// error or panic.
func (s *Store) withTx(ctx context.Context, fn func(ctx context.Context, tx dbtx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fn(ctx, tx)
}
