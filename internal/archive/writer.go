package archive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"time"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/VerseCards/internal/validation"
)

// Writer writes regular files into a compressed tar stream.
type Writer struct {
	tw      *tar.Writer
	comp    io.WriteCloser
	modTime time.Time
}

// NewWriter compresses with xz or gzip. Every entry gets modTime, so equal
// input yields equal archives.
func NewWriter(w io.Writer, kind validation.FileType, modTime time.Time) (*Writer, error) {
	var comp io.WriteCloser
	switch kind {
	case validation.FileTypeXZ:
		xzw, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("xz writer: %w", err)
		}
		comp = xzw
	case validation.FileTypeGzip:
		comp = gzip.NewWriter(w)
	default:
		return nil, fmt.Errorf("unsupported archive format: %s", kind)
	}
	return &Writer{tw: tar.NewWriter(comp), comp: comp, modTime: modTime.UTC()}, nil
}

// WriteFile adds one regular file.
func (w *Writer) WriteFile(name string, data []byte) error {
	header := &tar.Header{
		Name:     name,
		Mode:     0644,
		Size:     int64(len(data)),
		ModTime:  w.modTime,
		Typeflag: tar.TypeReg,
		Format:   tar.FormatPAX,
	}
	if err := w.tw.WriteHeader(header); err != nil {
		return fmt.Errorf("write header %s: %w", name, err)
	}
	if _, err := w.tw.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// Close flushes the tar stream and the compressor. It does not close the
// underlying writer.
func (w *Writer) Close() error {
	if err := w.tw.Close(); err != nil {
		w.comp.Close()
		return fmt.Errorf("close tar: %w", err)
	}
	if err := w.comp.Close(); err != nil {
		return fmt.Errorf("close compressor: %w", err)
	}
	return nil
}
