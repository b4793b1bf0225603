package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateName indicates two descriptors share a logical name.
	ErrDuplicateName = errors.New("duplicate descriptor name")

	// Export Errors.

	// ErrNoDocuments indicates every retrieval failed and the empty
	// archive policy forbids producing an empty archive.
	ErrNoDocuments = errors.New("no documents retrieved")

	// ErrSerialise indicates a retrieved document could not be re-serialised.
	// It aborts the whole export.
	ErrSerialise = errors.New("failed to serialise document")

	// ErrArchive indicates the archive could not be finalised.
	ErrArchive = errors.New("failed to finalise archive")

	// ErrSave indicates the finalised archive could not be saved.
	ErrSave = errors.New("failed to save archive")

	// Fetch Errors.

	// ErrUnsupportedScheme indicates no fetcher handles a locator's scheme.
	ErrUnsupportedScheme = errors.New("unsupported locator scheme")

	// ErrNotJSON indicates a response body is not a JSON document.
	ErrNotJSON = errors.New("response body is not valid JSON")

	// ErrBodyTooLarge indicates a response body exceeded the configured limit.
	ErrBodyTooLarge = errors.New("response body too large")
)
