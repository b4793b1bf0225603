// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ManifestStore: TOML or YAML manifest and export settings
package file
