package file

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/flowpack/internal/core/domain"
	"github.com/custodia-labs/flowpack/internal/core/ports/driven"
)

// DefaultFilename is the conventional manifest file name.
const DefaultFilename = "flowpack.toml"

// Ensure ManifestStore implements the interface.
var _ driven.ManifestStore = (*ManifestStore)(nil)

// manifestFile is the on-disk layout of a manifest.
type manifestFile struct {
	ArchiveName string      `toml:"archive_name" yaml:"archive_name"`
	Export      exportTable `toml:"export" yaml:"export"`
	Flows       []flowEntry `toml:"flows" yaml:"flows"`
}

// exportTable holds optional settings; nil fields keep their defaults.
type exportTable struct {
	Timeout           *string  `toml:"timeout,omitempty" yaml:"timeout,omitempty"`
	MaxConcurrency    *int     `toml:"max_concurrency,omitempty" yaml:"max_concurrency,omitempty"`
	RequestsPerSecond *float64 `toml:"requests_per_second,omitempty" yaml:"requests_per_second,omitempty"`
	MaxBytes          *int64   `toml:"max_bytes,omitempty" yaml:"max_bytes,omitempty"`
	EmptyArchive      *string  `toml:"empty_archive,omitempty" yaml:"empty_archive,omitempty"`
	OutputDir         *string  `toml:"output_dir,omitempty" yaml:"output_dir,omitempty"`
}

type flowEntry struct {
	Name string `toml:"name" yaml:"name"`
	URL  string `toml:"url" yaml:"url"`
}

// ManifestStore is a file implementation of driven.ManifestStore.
// Files ending in .yaml or .yml are read and written as YAML, everything
// else as TOML. An empty path serves the built-in flow pack with default
// settings.
type ManifestStore struct {
	filePath string
}

// NewManifestStore creates a store backed by the file at path.
func NewManifestStore(path string) *ManifestStore {
	return &ManifestStore{filePath: path}
}

// Path returns the manifest file path, empty for the built-in manifest.
func (s *ManifestStore) Path() string {
	return s.filePath
}

// Load reads the manifest and settings from the file.
// A missing archive_name uses the built-in name and a file without flows
// uses the built-in flows, so a file may only tune settings.
func (s *ManifestStore) Load() (*domain.Manifest, domain.ExportSettings, error) {
	settings := domain.DefaultExportSettings()
	if s.filePath == "" {
		return domain.DefaultManifest(), settings, nil
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, settings, fmt.Errorf("%w: manifest %s", domain.ErrNotFound, s.filePath)
		}
		return nil, settings, fmt.Errorf("read manifest: %w", err)
	}

	var file manifestFile
	if err := s.decode(data, &file); err != nil {
		return nil, settings, fmt.Errorf("%w: parse %s: %w", domain.ErrInvalidInput, s.filePath, err)
	}

	if err := file.Export.apply(&settings); err != nil {
		return nil, settings, err
	}
	if err := settings.Validate(); err != nil {
		return nil, settings, err
	}

	manifest, err := file.manifest()
	if err != nil {
		return nil, settings, err
	}
	return manifest, settings, nil
}

// Write persists manifest and settings to the file.
func (s *ManifestStore) Write(manifest *domain.Manifest, settings domain.ExportSettings) error {
	if s.filePath == "" {
		return fmt.Errorf("%w: no manifest path", domain.ErrInvalidInput)
	}
	if manifest == nil {
		return fmt.Errorf("%w: manifest is required", domain.ErrInvalidInput)
	}

	data, err := s.encode(newManifestFile(manifest, settings))
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if dir := filepath.Dir(s.filePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	return os.WriteFile(s.filePath, data, 0644)
}

func (s *ManifestStore) isYAML() bool {
	switch strings.ToLower(filepath.Ext(s.filePath)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// decode parses data strictly; unknown keys are rejected.
func (s *ManifestStore) decode(data []byte, file *manifestFile) error {
	if s.isYAML() {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(file); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(file)
}

func (s *ManifestStore) encode(file manifestFile) ([]byte, error) {
	if s.isYAML() {
		return yaml.Marshal(file)
	}
	return toml.Marshal(file)
}

func newManifestFile(manifest *domain.Manifest, settings domain.ExportSettings) manifestFile {
	timeout := settings.FetchTimeout.String()
	policy := settings.EmptyArchive.String()

	file := manifestFile{
		ArchiveName: manifest.ArchiveName(),
		Export: exportTable{
			Timeout:           &timeout,
			MaxConcurrency:    &settings.MaxConcurrency,
			RequestsPerSecond: &settings.RequestsPerSecond,
			MaxBytes:          &settings.MaxBytes,
			EmptyArchive:      &policy,
			OutputDir:         &settings.OutputDir,
		},
	}
	for _, d := range manifest.Descriptors() {
		file.Flows = append(file.Flows, flowEntry{Name: d.Name, URL: d.Locator})
	}
	return file
}

func (f manifestFile) manifest() (*domain.Manifest, error) {
	name := f.ArchiveName
	if name == "" {
		name = domain.DefaultArchiveName
	}
	if len(f.Flows) == 0 {
		return domain.NewManifest(name, domain.DefaultDescriptors())
	}

	descriptors := make([]domain.Descriptor, len(f.Flows))
	for i, flow := range f.Flows {
		descriptors[i] = domain.Descriptor{Name: flow.Name, Locator: flow.URL}
	}
	return domain.NewManifest(name, descriptors)
}

// apply overlays the values present in the table onto settings.
func (t exportTable) apply(settings *domain.ExportSettings) error {
	if t.Timeout != nil {
		d, err := time.ParseDuration(*t.Timeout)
		if err != nil {
			return fmt.Errorf("%w: timeout: %w", domain.ErrInvalidInput, err)
		}
		settings.FetchTimeout = d
	}
	if t.MaxConcurrency != nil {
		settings.MaxConcurrency = *t.MaxConcurrency
	}
	if t.RequestsPerSecond != nil {
		settings.RequestsPerSecond = *t.RequestsPerSecond
	}
	if t.MaxBytes != nil {
		settings.MaxBytes = *t.MaxBytes
	}
	if t.EmptyArchive != nil {
		settings.EmptyArchive = domain.EmptyArchivePolicy(*t.EmptyArchive)
	}
	if t.OutputDir != nil {
		settings.OutputDir = *t.OutputDir
	}
	return nil
}
