package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/flowpack/internal/core/domain"
	"github.com/custodia-labs/flowpack/internal/core/ports/driven"
)

// Ensure ArchiveStore implements the interface.
var _ driven.ArchiveSaver = (*ArchiveStore)(nil)

// ArchiveStore is an in-memory implementation of driven.ArchiveSaver.
// Saved archives are kept by name; saving the same name replaces it.
type ArchiveStore struct {
	mu       sync.RWMutex
	archives map[string][]byte
}

// NewArchiveStore creates a new in-memory archive store.
func NewArchiveStore() *ArchiveStore {
	return &ArchiveStore{
		archives: make(map[string][]byte),
	}
}

// Save stores a copy of data under name. The returned location is
// "memory://<name>".
func (s *ArchiveStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.archives[name] = stored

	return "memory://" + name, nil
}

// Get returns a copy of a saved archive.
func (s *ArchiveStore) Get(name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.archives[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// List returns the saved archive names in sorted order.
func (s *ArchiveStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.archives))
	for name := range s.archives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of saved archives.
func (s *ArchiveStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.archives)
}
