// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO. Outside the standard library they
// only import the logger, google/uuid for run ids and x/sync for the
// fetch join.
package services
