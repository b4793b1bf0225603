// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/flowpack/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMain is the export summary and action menu.
	ViewMain ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMain:
		return "main"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Action identifies a menu action.
type Action int

const (
	// ActionDownload runs the export again.
	ActionDownload Action = iota
	// ActionDocumentation opens the documentation page.
	ActionDocumentation
	// ActionMarketplace opens the marketplace listing.
	ActionMarketplace
	// ActionQuit exits the application.
	ActionQuit
)

// String returns the string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionDownload:
		return "download"
	case ActionDocumentation:
		return "documentation"
	case ActionMarketplace:
		return "marketplace"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ActionSelected is sent when a menu action is chosen.
type ActionSelected struct {
	Action Action
}

// ExportCompleted carries the outcome of an export run.
type ExportCompleted struct {
	Result *domain.ExportResult
	Err    error
}

// LinkOpened signals a browser open attempt finished.
type LinkOpened struct {
	Target string
	Err    error
}

// CopyCompleted signals a clipboard copy finished.
type CopyCompleted struct {
	Text string
	Err  error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
