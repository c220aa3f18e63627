// Package errors provides the error kinds shared by the VerseCards packages.
//
// Every concrete error type unwraps to one of the sentinels below so callers can
// branch with errors.Is without caring which package produced the failure.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrAlreadyExists indicates a resource already exists
	ErrAlreadyExists = errors.New("already exists")
	// ErrInternal indicates an internal system error
	ErrInternal = errors.New("internal error")
)

// Reference and selection failures.
var (
	ErrUnknownBook       = errors.New("unknown book")
	ErrChapterOutOfRange = errors.New("chapter out of range")
	ErrVerseOutOfRange   = errors.New("verse out of range")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrEmptySelection    = errors.New("empty selection")
)

// ReferenceKind identifies which part of a (book, chapter, verse) triple failed validation.
type ReferenceKind int

const (
	// UnknownBook means the catalog has no entry for the book.
	UnknownBook ReferenceKind = iota
	// ChapterOutOfRange means the chapter is outside [1, chapterCount].
	ChapterOutOfRange
	// VerseOutOfRange means the verse is outside [1, verseCount].
	VerseOutOfRange
)

func (k ReferenceKind) String() string {
	switch k {
	case UnknownBook:
		return "UnknownBook"
	case ChapterOutOfRange:
		return "ChapterOutOfRange"
	case VerseOutOfRange:
		return "VerseOutOfRange"
	default:
		return fmt.Sprintf("ReferenceKind(%d)", int(k))
	}
}

func (k ReferenceKind) sentinel() error {
	switch k {
	case UnknownBook:
		return ErrUnknownBook
	case ChapterOutOfRange:
		return ErrChapterOutOfRange
	default:
		return ErrVerseOutOfRange
	}
}

// ReferenceError reports a reference that does not exist in the catalog.
type ReferenceError struct {
	Kind    ReferenceKind
	Book    string
	Chapter int
	Verse   int
	Limit   int // chapter or verse count the value was checked against; 0 if unknown
}

func (e *ReferenceError) Error() string {
	switch e.Kind {
	case UnknownBook:
		return fmt.Sprintf("unknown book: %q", e.Book)
	case ChapterOutOfRange:
		if e.Limit > 0 {
			return fmt.Sprintf("chapter %d out of range for %s (1-%d)", e.Chapter, e.Book, e.Limit)
		}
		return fmt.Sprintf("chapter %d out of range for %s", e.Chapter, e.Book)
	default:
		if e.Limit > 0 {
			return fmt.Sprintf("verse %d out of range for %s %d (1-%d)", e.Verse, e.Book, e.Chapter, e.Limit)
		}
		return fmt.Sprintf("verse %d out of range for %s %d", e.Verse, e.Book, e.Chapter)
	}
}

// Unwrap exposes both the kind sentinel and ErrInvalidInput.
func (e *ReferenceError) Unwrap() []error {
	return []error{e.Kind.sentinel(), ErrInvalidInput}
}

// IndexError reports a position outside an ordered collection.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// NotFoundError represents a resource not found error with context
type NotFoundError struct {
	Resource string // Type of resource (e.g., "set", "bundle entry")
	ID       string // Identifier of the resource
	Err      error  // Underlying error, if any
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotFound
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string // Field name that failed validation
	Value   string // Value that failed validation (may be redacted)
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Err, ErrInvalidInput}
	}
	return []error{ErrInvalidInput}
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "open")
	Path      string // File/resource path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing or deserialization error
type ParseError struct {
	Format  string // Format being parsed (e.g., "reference", "OSIS", "bundle")
	Path    string // File path, if applicable
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

// Unwrap reports both the underlying cause and ErrInvalidInput: malformed
// input is always invalid input.
func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Err, ErrInvalidInput}
	}
	return []error{ErrInvalidInput}
}

// Helper functions for creating common errors

// NewUnknownBook creates a ReferenceError of kind UnknownBook.
func NewUnknownBook(book string) *ReferenceError {
	return &ReferenceError{Kind: UnknownBook, Book: book}
}

// NewChapterOutOfRange creates a ReferenceError of kind ChapterOutOfRange.
func NewChapterOutOfRange(book string, chapter, limit int) *ReferenceError {
	return &ReferenceError{Kind: ChapterOutOfRange, Book: book, Chapter: chapter, Limit: limit}
}

// NewVerseOutOfRange creates a ReferenceError of kind VerseOutOfRange.
func NewVerseOutOfRange(book string, chapter, verse, limit int) *ReferenceError {
	return &ReferenceError{Kind: VerseOutOfRange, Book: book, Chapter: chapter, Verse: verse, Limit: limit}
}

// NewIndex creates an IndexError
func NewIndex(index, length int) *IndexError {
	return &IndexError{Index: index, Len: length}
}

// NewNotFound creates a NotFoundError
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// NewValidation creates a ValidationError
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewParse creates a ParseError
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
