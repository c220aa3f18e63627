// Package validation checks user-supplied text before it reaches storage or
// the filesystem: set titles and descriptions, export paths, and bundle files.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Limits on user input.
const (
	// MaxTitleLength is the maximum set title length in characters.
	MaxTitleLength = 200
	// MaxDescriptionLength is the maximum set description length in characters.
	MaxDescriptionLength = 2000
	// MaxFilenameLength is the maximum allowed filename length.
	MaxFilenameLength = 255
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
)

// Common validation errors.
var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrTitleTooLong     = errors.New("title too long")
	ErrTextTooLong      = errors.New("text too long")
	ErrInvalidFilename  = errors.New("invalid filename")
	ErrPathTooLong      = errors.New("path too long")
	ErrFilenameTooLong  = errors.New("filename too long")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrEmptyPath        = errors.New("path cannot be empty")
)

// ValidateTitle checks a flashcard set title: non-blank, at most
// MaxTitleLength characters, valid UTF-8, and free of control characters.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if !utf8.ValidString(title) {
		return fmt.Errorf("%w: not valid UTF-8", ErrInvalidCharacter)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	for _, r := range title {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}
	return nil
}

// ValidateDescription checks an optional set description. Newlines and tabs
// are allowed; other control characters are not.
func ValidateDescription(desc string) error {
	if !utf8.ValidString(desc) {
		return fmt.Errorf("%w: not valid UTF-8", ErrInvalidCharacter)
	}
	if utf8.RuneCountInString(desc) > MaxDescriptionLength {
		return ErrTextTooLong
	}
	for _, r := range desc {
		if unicode.IsControl(r) && r != '\n' && r != '\t' && r != '\r' {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}
	return nil
}

// ValidateFilename checks if a filename is safe and does not contain malicious characters.
// It rejects filenames with path separators, control characters, and dangerous patterns.
func ValidateFilename(filename string) error {
	if filename == "" {
		return ErrInvalidFilename
	}

	if len(filename) > MaxFilenameLength {
		return ErrFilenameTooLong
	}

	if filename == "." || filename == ".." {
		return fmt.Errorf("%w: reserved name", ErrInvalidFilename)
	}

	if strings.ContainsAny(filename, "/\\") {
		return fmt.Errorf("%w: path separator not allowed", ErrInvalidFilename)
	}

	for _, r := range filename {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidFilename)
		}
	}

	// Leading hyphens read as command flags.
	if strings.HasPrefix(filename, "-") {
		return fmt.Errorf("%w: filename cannot start with hyphen", ErrInvalidFilename)
	}

	return nil
}

// ValidatePath checks a path for length limits and invalid characters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}

	return nil
}

// SanitizeFilename turns arbitrary text, typically a set title, into a safe
// filename: separators become underscores, runs of spaces become single
// hyphens, control characters and leading hyphens are dropped.
func SanitizeFilename(name string) (string, error) {
	name = strings.TrimSpace(name)

	var cleaned strings.Builder
	for _, r := range name {
		switch {
		case r == '/' || r == '\\':
			cleaned.WriteRune('_')
		case unicode.IsControl(r):
		case unicode.IsSpace(r):
			cleaned.WriteRune('-')
		default:
			cleaned.WriteRune(r)
		}
	}
	name = strings.TrimLeft(cleaned.String(), "-")
	for strings.Contains(name, "--") {
		name = strings.ReplaceAll(name, "--", "-")
	}
	if len(name) > MaxFilenameLength {
		name = name[:MaxFilenameLength]
		for !utf8.ValidString(name) {
			name = name[:len(name)-1]
		}
	}

	if err := ValidateFilename(name); err != nil {
		return "", err
	}
	return name, nil
}

// FileType represents a detected archive type.
type FileType string

const (
	FileTypeXZ      FileType = "xz"
	FileTypeGzip    FileType = "gzip"
	FileTypeUnknown FileType = "unknown"
)

var magicBytes = []struct {
	fileType FileType
	magic    []byte
}{
	{FileTypeXZ, []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
	{FileTypeGzip, []byte{0x1f, 0x8b}},
}

// DetectArchive reads the leading magic bytes of r to tell xz from gzip.
// It consumes up to six bytes from r.
func DetectArchive(r io.Reader) (FileType, error) {
	buf := make([]byte, 6)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return FileTypeUnknown, fmt.Errorf("read magic bytes: %w", err)
	}
	buf = buf[:n]
	for _, m := range magicBytes {
		if bytes.HasPrefix(buf, m.magic) {
			return m.fileType, nil
		}
	}
	return FileTypeUnknown, nil
}
