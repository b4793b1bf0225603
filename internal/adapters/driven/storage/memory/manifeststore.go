package memory

import (
	"sync"

	"github.com/custodia-labs/flowpack/internal/core/domain"
	"github.com/custodia-labs/flowpack/internal/core/ports/driven"
)

// Ensure ManifestStore implements the interface.
var _ driven.ManifestStore = (*ManifestStore)(nil)

// ManifestStore is an in-memory implementation of driven.ManifestStore for testing.
type ManifestStore struct {
	mu       sync.RWMutex
	manifest *domain.Manifest
	settings domain.ExportSettings
	loadErr  error
}

// NewManifestStore creates a store holding manifest and settings.
// A nil manifest makes Load return domain.ErrNotFound.
func NewManifestStore(manifest *domain.Manifest, settings domain.ExportSettings) *ManifestStore {
	return &ManifestStore{
		manifest: manifest,
		settings: settings,
	}
}

// Load returns the stored manifest and settings.
func (s *ManifestStore) Load() (*domain.Manifest, domain.ExportSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.loadErr != nil {
		return nil, domain.ExportSettings{}, s.loadErr
	}
	if s.manifest == nil {
		return nil, domain.ExportSettings{}, domain.ErrNotFound
	}
	return s.manifest, s.settings, nil
}

// Write replaces the stored manifest and settings.
func (s *ManifestStore) Write(manifest *domain.Manifest, settings domain.ExportSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.manifest = manifest
	s.settings = settings
	return nil
}

// Path returns an empty string; the store is not persisted.
func (s *ManifestStore) Path() string {
	return ""
}

// SetLoadError makes subsequent Load calls fail with err.
func (s *ManifestStore) SetLoadError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}
