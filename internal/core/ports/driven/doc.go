// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DocumentFetcher: Retrieves a JSON document from a locator
//   - Archiver: Finalises entries into an archive blob
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ArchiveSaver: Hands the finalised archive to its destination.
//     Without it, the archive is only returned to the caller.
//   - ManifestStore: Loads the manifest and export settings.
//     Without it, the built-in flow pack is used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or driving package
package driven
