// Package connectors provides implementations of the DocumentFetcher
// interface for the locator schemes flowpack understands. Each connector
// knows how to retrieve a JSON document from one kind of source
// (plain HTTPS, GitHub repositories).
//
// Connectors are registered with the Router at startup, which dispatches
// each locator to the connector owning its scheme.
package connectors
