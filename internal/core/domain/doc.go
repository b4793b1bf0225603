// Package domain defines the core business entities for flowpack.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Descriptor: A logical name paired with a remote locator
//   - Manifest: The immutable, ordered set of descriptors for one pack
//   - Document: A retrieved JSON document awaiting packaging
//   - Entry: A file written into the produced archive
//   - ExportResult: The outcome of one export run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
