package domain

import (
	"fmt"
	"time"
)

const unknownDescription = "Unknown"

// EmptyArchivePolicy decides what happens when every retrieval fails.
type EmptyArchivePolicy string

// Available empty archive policies.
const (
	// EmptyArchiveAllow produces and saves an archive with zero entries.
	EmptyArchiveAllow EmptyArchivePolicy = "allow"

	// EmptyArchiveFail aborts the export with ErrNoDocuments.
	EmptyArchiveFail EmptyArchivePolicy = "fail"
)

// IsValid returns true if the policy is recognised.
func (p EmptyArchivePolicy) IsValid() bool {
	switch p {
	case EmptyArchiveAllow, EmptyArchiveFail:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p EmptyArchivePolicy) String() string {
	return string(p)
}

// Description returns a human-readable description of the policy.
func (p EmptyArchivePolicy) Description() string {
	switch p {
	case EmptyArchiveAllow:
		return "Allow (save an empty archive)"
	case EmptyArchiveFail:
		return "Fail (abort when nothing was retrieved)"
	default:
		return unknownDescription
	}
}

// Default export settings.
const (
	// DefaultFetchTimeout bounds each retrieval.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultMaxBytes caps a single response body (10 MiB).
	DefaultMaxBytes int64 = 10 * 1024 * 1024

	// DefaultOutputDir is where archives are saved.
	DefaultOutputDir = "."
)

// ExportSettings tunes an export run.
type ExportSettings struct {
	// FetchTimeout bounds each retrieval. Zero disables the timeout.
	FetchTimeout time.Duration

	// MaxConcurrency bounds in-flight retrievals. Zero means unbounded.
	MaxConcurrency int

	// RequestsPerSecond throttles outbound HTTP requests. Zero means unlimited.
	RequestsPerSecond float64

	// MaxBytes caps a single response body.
	MaxBytes int64

	// EmptyArchive decides what happens when every retrieval fails.
	EmptyArchive EmptyArchivePolicy

	// OutputDir is where the archive is saved.
	OutputDir string
}

// DefaultExportSettings returns the default export settings.
func DefaultExportSettings() ExportSettings {
	return ExportSettings{
		FetchTimeout:      DefaultFetchTimeout,
		MaxConcurrency:    0,
		RequestsPerSecond: 0,
		MaxBytes:          DefaultMaxBytes,
		EmptyArchive:      EmptyArchiveAllow,
		OutputDir:         DefaultOutputDir,
	}
}

// Validate checks the settings for invalid values.
func (s ExportSettings) Validate() error {
	if s.FetchTimeout < 0 {
		return fmt.Errorf("%w: fetch timeout must not be negative", ErrInvalidInput)
	}
	if s.MaxConcurrency < 0 {
		return fmt.Errorf("%w: max concurrency must not be negative", ErrInvalidInput)
	}
	if s.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: requests per second must not be negative", ErrInvalidInput)
	}
	if s.MaxBytes <= 0 {
		return fmt.Errorf("%w: max bytes must be positive", ErrInvalidInput)
	}
	if !s.EmptyArchive.IsValid() {
		return fmt.Errorf("%w: unknown empty archive policy %q", ErrInvalidInput, s.EmptyArchive)
	}
	return nil
}
