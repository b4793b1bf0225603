package mcp

import (
	"github.com/custodia-labs/flowpack/internal/core/domain"
	"github.com/custodia-labs/flowpack/internal/core/ports/driving"
)

// ArchiveReader reads archives kept in memory.
type ArchiveReader interface {
	Get(name string) ([]byte, error)
}

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Exporter builds and saves the archive.
	Exporter driving.Exporter

	// Manifest is the flow pack to export.
	Manifest *domain.Manifest

	// Links resolves locators to web URLs. Optional.
	Links driving.LinkService

	// Archives exposes in-memory archives as resources. Optional.
	Archives ArchiveReader
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Exporter == nil {
		return ErrMissingExporter
	}
	if p.Manifest == nil {
		return ErrMissingManifest
	}
	return nil
}
