package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/flowpack/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/flowpack/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/flowpack/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/flowpack/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/flowpack/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/flowpack/internal/adapters/driving/tui/views/summary"
	"github.com/custodia-labs/flowpack/internal/core/domain"
)

// Title is the application header and window title.
const Title = "CIAM Passwordless Flow Pack"

// docsHint is shown under the title.
const docsHint = "After downloading, visit the documentation to get started."

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	// menuView lists the available actions.
	menuView *menu.View

	// summaryView shows export progress and the last result.
	summaryView *summary.View

	statusBar *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		menuView:    menu.NewView(s),
		summaryView: summary.NewView(s),
		statusBar:   status.NewBar(s, km),
		currentView: messages.ViewMain,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// The export starts as soon as the program does.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(Title),
		a.startExport(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ActionSelected:
		return a, a.runAction(msg.Action)

	case messages.ExportCompleted:
		a.summaryView.SetResult(msg.Result, msg.Err)
		a.statusBar.SetMessage("")
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetState(status.StateError)
			a.statusBar.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.err = nil
		a.statusBar.SetState(status.StateDone)
		a.statusBar.SetCounts(len(msg.Result.Entries), len(msg.Result.Failures))
		return a, nil

	case messages.LinkOpened:
		if msg.Err != nil {
			return a, a.fail(msg.Err)
		}
		a.statusBar.SetMessage("Opened " + msg.Target)
		return a, nil

	case messages.CopyCompleted:
		if msg.Err != nil {
			return a, a.fail(msg.Err)
		}
		a.statusBar.SetMessage("Copied " + msg.Text)
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Spinner ticks and other messages go to the summary
	a.summaryView, cmd = a.summaryView.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	// Global quit with ctrl+c
	if keyStr == "ctrl+c" {
		return a, tea.Quit
	}

	if a.currentView == messages.ViewHelp {
		if keymap.Matches(keyStr, a.keymap.Back) || keymap.Matches(keyStr, a.keymap.Help) {
			a.currentView = messages.ViewMain
			a.statusBar.SetState(a.resultState())
			return a, nil
		}
		if keyStr == "q" {
			return a, tea.Quit
		}
		return a, nil
	}

	switch {
	case keymap.Matches(keyStr, a.keymap.Help):
		a.currentView = messages.ViewHelp
		a.statusBar.SetState(status.StateHelp)
		return a, nil
	case keymap.Matches(keyStr, a.keymap.Download):
		return a, a.runAction(messages.ActionDownload)
	case keymap.Matches(keyStr, a.keymap.Copy):
		return a, a.copyLocation()
	}

	var cmd tea.Cmd
	a.menuView, cmd = a.menuView.Update(msg)
	return a, cmd
}

// runAction performs a menu action.
func (a *App) runAction(action messages.Action) tea.Cmd {
	switch action {
	case messages.ActionDownload:
		if a.summaryView.Exporting() {
			a.statusBar.SetMessage("Download already in progress")
			return nil
		}
		return a.startExport()
	case messages.ActionDocumentation:
		return a.openLink(domain.DocumentationURL)
	case messages.ActionMarketplace:
		return a.openLink(domain.MarketplaceURL)
	case messages.ActionQuit:
		return tea.Quit
	}
	return nil
}

// startExport starts an export in the background.
func (a *App) startExport() tea.Cmd {
	a.statusBar.Clear()
	a.statusBar.SetState(status.StateExporting)

	exporter := a.ports.Exporter
	manifest := a.ports.Manifest
	ctx := a.ctx

	return tea.Batch(
		a.summaryView.Start(),
		func() tea.Msg {
			result, err := exporter.Export(ctx, manifest)
			return messages.ExportCompleted{Result: result, Err: err}
		},
	)
}

func (a *App) openLink(target string) tea.Cmd {
	links := a.ports.Links
	if links == nil {
		return a.fail(ErrMissingLinks)
	}
	ctx := a.ctx
	return func() tea.Msg {
		return messages.LinkOpened{Target: target, Err: links.Open(ctx, target)}
	}
}

func (a *App) copyLocation() tea.Cmd {
	result := a.summaryView.Result()
	if result == nil || result.Location == "" {
		a.statusBar.SetMessage("No saved archive to copy")
		return nil
	}
	links := a.ports.Links
	if links == nil {
		return a.fail(ErrMissingLinks)
	}
	ctx := a.ctx
	location := result.Location
	return func() tea.Msg {
		return messages.CopyCompleted{Text: location, Err: links.CopyToClipboard(ctx, location)}
	}
}

func (a *App) fail(err error) tea.Cmd {
	return func() tea.Msg {
		return messages.ErrorOccurred{Err: err}
	}
}

// resultState returns the status bar state matching the last export.
func (a *App) resultState() status.State {
	switch {
	case a.summaryView.Exporting():
		return status.StateExporting
	case a.summaryView.Err() != nil:
		return status.StateError
	case a.summaryView.Result() != nil:
		return status.StateDone
	default:
		return status.StateReady
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.currentView == messages.ViewHelp {
		return a.viewHelp() + "\n\n" + a.statusBar.View()
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render(Title))
	b.WriteString("\n")
	b.WriteString(a.styles.Muted.Render(docsHint))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Panel.Render(a.summaryView.View()))
	b.WriteString("\n\n")
	b.WriteString(a.menuView.View())
	b.WriteString("\n\n")
	b.WriteString(a.statusBar.View())
	return b.String()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Subtitle.Render("Help"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	b.WriteString("Documentation: ")
	b.WriteString(a.styles.Link.Render(domain.DocumentationURL))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back"))
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Result returns the last export result.
func (a *App) Result() *domain.ExportResult {
	return a.summaryView.Result()
}

// Exporting returns true while an export runs.
func (a *App) Exporting() bool {
	return a.summaryView.Exporting()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.summaryView.SetWidth(width - 4)
	a.statusBar.SetWidth(width)
}
