// Package filesystem saves finalised archives into a local directory.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/flowpack/internal/core/ports/driven"
)

// ErrInvalidArchiveName indicates an archive name that is empty or would
// escape the output directory.
var ErrInvalidArchiveName = errors.New("filesystem: invalid archive name")

// Ensure Saver implements the interface.
var _ driven.ArchiveSaver = (*Saver)(nil)

// Saver writes archives into a directory.
// Writes are atomic: content goes to a temporary file in the same directory
// which is then renamed over the destination.
type Saver struct {
	dir      string
	permFile os.FileMode
	permDir  os.FileMode
}

// NewSaver creates a saver rooted at dir. An empty dir means the working directory.
func NewSaver(dir string) *Saver {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	return &Saver{
		dir:      dir,
		permFile: 0o644,
		permDir:  0o755,
	}
}

// Dir returns the output directory.
func (s *Saver) Dir() string {
	return s.dir
}

// Save writes data to <dir>/<name> and returns the absolute path.
func (s *Saver) Save(ctx context.Context, name string, data []byte) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	dest, err := s.mapPath(name)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, s.permDir); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	if err := s.writeAtomic(dest, data); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(dest)
	if err != nil {
		return dest, nil
	}
	return abs, nil
}

// mapPath keeps only a plain file name inside the output directory.
func (s *Saver) mapPath(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrInvalidArchiveName
	}
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidArchiveName, name)
	}
	if name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidArchiveName, name)
	}
	return filepath.Join(s.dir, name), nil
}

func (s *Saver) writeAtomic(dest string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".flowpack-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write archive: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("sync archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close archive: %w", err)
	}
	_ = os.Chmod(tmpPath, s.permFile)

	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename archive: %w", err)
	}
	return nil
}
