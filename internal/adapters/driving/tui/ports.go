// Package tui provides an interactive terminal user interface for flowpack.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/flowpack/internal/core/domain"
	"github.com/custodia-labs/flowpack/internal/core/ports/driving"
)

// Ports aggregates the driving ports and configuration required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Exporter builds and saves the archive.
	Exporter driving.Exporter

	// Links opens documentation pages. Optional.
	Links driving.LinkService

	// Manifest is the flow pack to export.
	Manifest *domain.Manifest
}

// NewPorts creates a new Ports aggregate.
func NewPorts(exporter driving.Exporter, links driving.LinkService, manifest *domain.Manifest) *Ports {
	return &Ports{
		Exporter: exporter,
		Links:    links,
		Manifest: manifest,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Exporter == nil {
		return ErrMissingExporter
	}
	if p.Manifest == nil {
		return ErrMissingManifest
	}
	return nil
}
