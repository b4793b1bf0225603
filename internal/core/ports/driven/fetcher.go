package driven

import (
	"context"
	"encoding/json"
)

// DocumentFetcher retrieves one JSON document from a locator.
// Implementations must be safe for concurrent use; the exporter calls
// Fetch from one goroutine per descriptor.
type DocumentFetcher interface {
	// Fetch retrieves the document at locator.
	// The returned body is a complete, valid JSON document.
	Fetch(ctx context.Context, locator string) (json.RawMessage, error)
}

// SchemeFetcher is a DocumentFetcher bound to specific locator schemes.
type SchemeFetcher interface {
	DocumentFetcher

	// Schemes returns the locator schemes handled (e.g. "https").
	Schemes() []string
}

// WebURLResolver converts a locator to a browser-openable URL.
// It returns an empty string for locators it does not handle.
type WebURLResolver func(locator string) string
