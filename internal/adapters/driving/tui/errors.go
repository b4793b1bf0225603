package tui

import "errors"

// ErrMissingExporter is returned when the exporter is not provided.
var ErrMissingExporter = errors.New("tui: exporter is required")

// ErrMissingManifest is returned when the manifest is not provided.
var ErrMissingManifest = errors.New("tui: manifest is required")

// ErrMissingLinks is returned when a link action runs without a link service.
var ErrMissingLinks = errors.New("tui: link service is not configured")
