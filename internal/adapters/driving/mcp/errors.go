// Package mcp provides an MCP (Model Context Protocol) server adapter for flowpack.
// It lets AI assistants export the flow pack and inspect its manifest.
package mcp

import "errors"

// ErrMissingExporter is returned when the exporter is not provided.
var ErrMissingExporter = errors.New("mcp: exporter is required")

// ErrMissingManifest is returned when the manifest is not provided.
var ErrMissingManifest = errors.New("mcp: manifest is required")
