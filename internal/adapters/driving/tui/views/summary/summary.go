// Package summary provides the export progress and result view for the TUI.
package summary

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/flowpack/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/flowpack/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/flowpack/internal/core/domain"
)

// View shows a spinner while an export runs and its outcome afterwards.
type View struct {
	styles    *styles.Styles
	spinner   spinner.Model
	flows     *list.FlowList
	exporting bool
	result    *domain.ExportResult
	err       error
	width     int
}

// NewView creates a new summary view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(s.Spinner),
		),
		flows: list.NewFlowList(s),
		width: 80,
	}
}

// Init initialises the summary view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Start marks an export as running and starts the spinner.
func (v *View) Start() tea.Cmd {
	v.exporting = true
	v.result = nil
	v.err = nil
	v.flows.SetResult(nil)
	return v.spinner.Tick
}

// SetResult records the outcome of the running export.
func (v *View) SetResult(result *domain.ExportResult, err error) {
	v.exporting = false
	v.result = result
	v.err = err
	v.flows.SetResult(result)
}

// Update advances the spinner while an export runs.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); ok && v.exporting {
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}
	return v, nil
}

// View renders the summary.
func (v *View) View() string {
	switch {
	case v.exporting:
		return v.spinner.View() + " " + v.styles.Normal.Render("Downloading flows...")

	case v.err != nil:
		return v.styles.Error.Render(fmt.Sprintf("Export failed: %v", v.err))

	case v.result != nil:
		var b strings.Builder
		b.WriteString(v.headline())
		b.WriteString("\n\n")
		b.WriteString(v.flows.View())
		if v.result.Location != "" {
			b.WriteString("\n\n")
			b.WriteString(v.styles.Muted.Render("Saved to "))
			b.WriteString(v.styles.Normal.Render(v.result.Location))
		}
		return b.String()

	default:
		return v.styles.Muted.Render("No export yet")
	}
}

func (v *View) headline() string {
	r := v.result
	switch {
	case r.Empty():
		return v.styles.Warning.Render(fmt.Sprintf("No flows could be downloaded into %s", r.ArchiveName))
	case len(r.Failures) > 0:
		return v.styles.Warning.Render(fmt.Sprintf("%d of %d flows downloaded into %s",
			len(r.Entries), len(r.Entries)+len(r.Failures), r.ArchiveName))
	default:
		return v.styles.Success.Render(fmt.Sprintf("%d flows downloaded into %s",
			len(r.Entries), r.ArchiveName))
	}
}

// SetWidth sets the view width.
func (v *View) SetWidth(width int) {
	v.width = width
	v.flows.SetWidth(width)
}

// Exporting returns true while an export runs.
func (v *View) Exporting() bool {
	return v.exporting
}

// Result returns the outcome of the last export.
func (v *View) Result() *domain.ExportResult {
	return v.result
}

// Err returns the error of the last export.
func (v *View) Err() error {
	return v.err
}
