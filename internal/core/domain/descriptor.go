package domain

import (
	"fmt"
	"strings"
)

// EntryExtension is appended to a descriptor name to form its archive filename.
const EntryExtension = ".json"

// ArchiveExtension is appended to a manifest's archive name when saving.
const ArchiveExtension = ".zip"

// Descriptor identifies one document to retrieve.
type Descriptor struct {
	// Name is the logical name. It becomes the archive filename stem.
	Name string

	// Locator is where the document is fetched from (https:// or github://).
	Locator string
}

// Filename returns the archive entry filename for this descriptor.
// The name is passed through unchanged; no sanitisation is applied.
func (d Descriptor) Filename() string {
	return d.Name + EntryExtension
}

// Manifest is the immutable configuration for one flow pack: the archive
// name and the ordered descriptors to export. Build it with NewManifest.
type Manifest struct {
	archiveName string
	descriptors []Descriptor
}

// NewManifest validates and copies the descriptors into a Manifest.
// Descriptor order is preserved and determines archive entry order.
func NewManifest(archiveName string, descriptors []Descriptor) (*Manifest, error) {
	archiveName = strings.TrimSpace(archiveName)
	if archiveName == "" {
		return nil, fmt.Errorf("%w: archive name is required", ErrInvalidInput)
	}
	if len(descriptors) == 0 {
		return nil, fmt.Errorf("%w: at least one descriptor is required", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(descriptors))
	for i, d := range descriptors {
		if d.Name == "" {
			return nil, fmt.Errorf("%w: descriptor %d has no name", ErrInvalidInput, i)
		}
		if _, ok := seen[d.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, d.Name)
		}
		seen[d.Name] = struct{}{}
	}

	copied := make([]Descriptor, len(descriptors))
	copy(copied, descriptors)

	return &Manifest{
		archiveName: archiveName,
		descriptors: copied,
	}, nil
}

// ArchiveName returns the archive name without extension.
func (m *Manifest) ArchiveName() string {
	return m.archiveName
}

// ArchiveFilename returns the archive name with the .zip extension.
func (m *Manifest) ArchiveFilename() string {
	if strings.HasSuffix(strings.ToLower(m.archiveName), ArchiveExtension) {
		return m.archiveName
	}
	return m.archiveName + ArchiveExtension
}

// Descriptors returns a copy of the descriptors in manifest order.
func (m *Manifest) Descriptors() []Descriptor {
	out := make([]Descriptor, len(m.descriptors))
	copy(out, m.descriptors)
	return out
}

// Len returns the number of descriptors.
func (m *Manifest) Len() int {
	return len(m.descriptors)
}

// Lookup returns the descriptor with the given name.
func (m *Manifest) Lookup(name string) (Descriptor, bool) {
	for _, d := range m.descriptors {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}
