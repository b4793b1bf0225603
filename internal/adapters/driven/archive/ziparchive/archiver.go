// Package ziparchive finalises archive entries into a ZIP container.
package ziparchive

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/flowpack/internal/core/domain"
	"github.com/custodia-labs/flowpack/internal/core/ports/driven"
)

// ContentType is the MIME type of produced archives.
const ContentType = "application/zip"

// Ensure Archiver implements the interface.
var _ driven.Archiver = (*Archiver)(nil)

// Archiver writes entries into an in-memory ZIP archive.
// Entries are stored flat at the archive root using deflate compression.
type Archiver struct {
	method uint16
}

// NewArchiver creates a deflate ZIP archiver.
func NewArchiver() *Archiver {
	return &Archiver{method: zip.Deflate}
}

// NewStoreArchiver creates a ZIP archiver that stores entries uncompressed.
func NewStoreArchiver() *Archiver {
	return &Archiver{method: zip.Store}
}

// ContentType returns the MIME type of the produced archive.
func (a *Archiver) ContentType() string {
	return ContentType
}

// Build writes entries in order and returns the finalised archive.
func (a *Archiver) Build(ctx context.Context, entries []domain.Entry, modified time.Time) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			zw.Close() //nolint:errcheck // archive is discarded
			return nil, ctx.Err()
		default:
		}

		header := &zip.FileHeader{
			Name:     entry.Filename,
			Method:   a.method,
			Modified: modified,
		}
		w, err := zw.CreateHeader(header)
		if err != nil {
			zw.Close() //nolint:errcheck // archive is discarded
			return nil, fmt.Errorf("create entry %q: %w", entry.Filename, err)
		}
		if _, err := w.Write(entry.Content); err != nil {
			zw.Close() //nolint:errcheck // archive is discarded
			return nil, fmt.Errorf("write entry %q: %w", entry.Filename, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

// ReadEntries opens a ZIP archive and returns its entries in archive order.
func ReadEntries(data []byte) ([]domain.Entry, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	entries := make([]domain.Entry, 0, len(zr.File))
	for _, f := range zr.File {
		content, err := readFile(f)
		if err != nil {
			return nil, fmt.Errorf("read entry %q: %w", f.Name, err)
		}
		entries = append(entries, domain.Entry{Filename: f.Name, Content: content})
	}
	return entries, nil
}

func readFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
