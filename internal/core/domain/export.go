package domain

import (
	"fmt"
	"time"
)

// FetchFailure records a descriptor whose retrieval failed.
// Failures are reported but never abort an export.
type FetchFailure struct {
	// Name is the descriptor's logical name.
	Name string

	// Locator is the descriptor's locator.
	Locator string

	// Err is the underlying cause.
	Err error
}

// Error implements error so failures can be joined and inspected.
func (f FetchFailure) Error() string {
	return fmt.Sprintf("fetch %q from %s: %v", f.Name, f.Locator, f.Err)
}

// Unwrap returns the underlying cause.
func (f FetchFailure) Unwrap() error {
	return f.Err
}

// EntrySummary describes an entry written into an archive.
type EntrySummary struct {
	Filename string
	Size     int
}

// ExportResult is the outcome of one export run.
type ExportResult struct {
	// RunID uniquely identifies the run in logs.
	RunID string

	// ArchiveName is the archive filename including the extension.
	ArchiveName string

	// Archive is the finalised archive content.
	Archive []byte

	// Entries lists the entries written, in manifest order.
	Entries []EntrySummary

	// Failures lists the descriptors that could not be retrieved.
	Failures []FetchFailure

	// Location is where the saver placed the archive. Empty if not saved.
	Location string

	// StartedAt is when the run began.
	StartedAt time.Time

	// FinishedAt is when the run completed.
	FinishedAt time.Time
}

// Empty returns true if the archive holds no entries.
func (r *ExportResult) Empty() bool {
	return len(r.Entries) == 0
}

// Duration returns how long the run took.
func (r *ExportResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// FailedNames returns the names of descriptors that failed to fetch.
func (r *ExportResult) FailedNames() []string {
	names := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		names[i] = f.Name
	}
	return names
}
