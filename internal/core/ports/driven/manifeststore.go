package driven

import "github.com/custodia-labs/flowpack/internal/core/domain"

// ManifestStore provides the manifest and export settings.
// Implementations handle persistence (e.g., TOML files).
type ManifestStore interface {
	// Load reads the manifest and settings.
	// Settings missing from storage take their default values.
	Load() (*domain.Manifest, domain.ExportSettings, error)

	// Write persists a manifest and settings.
	Write(manifest *domain.Manifest, settings domain.ExportSettings) error

	// Path returns the storage location, empty for built-in configuration.
	Path() string
}
