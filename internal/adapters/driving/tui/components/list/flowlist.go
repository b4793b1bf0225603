// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/flowpack/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/flowpack/internal/core/domain"
)

// FlowList displays the entries and failures of an export.
type FlowList struct {
	entries  []domain.EntrySummary
	failures []domain.FetchFailure
	styles   *styles.Styles
	width    int
}

// NewFlowList creates a new flow list component.
func NewFlowList(s *styles.Styles) *FlowList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &FlowList{
		styles: s,
		width:  80,
	}
}

// Init initialises the flow list.
func (l *FlowList) Init() tea.Cmd {
	return nil
}

// Update handles messages; the list has no interaction.
func (l *FlowList) Update(msg tea.Msg) (*FlowList, tea.Cmd) {
	return l, nil
}

// View renders the flow list.
func (l *FlowList) View() string {
	if len(l.entries) == 0 && len(l.failures) == 0 {
		return l.styles.Muted.Render("No flows")
	}

	lines := make([]string, 0, len(l.entries)+len(l.failures))
	for _, e := range l.entries {
		name := truncate(e.Filename, l.width-16)
		lines = append(lines, fmt.Sprintf("%s %s %s",
			l.styles.Success.Render("✓"),
			l.styles.Normal.Render(name),
			l.styles.Muted.Render("("+FormatSize(e.Size)+")"),
		))
	}
	for _, f := range l.failures {
		name := truncate(f.Name, l.width-6)
		lines = append(lines, fmt.Sprintf("%s %s",
			l.styles.Error.Render("✗"),
			l.styles.Normal.Render(name),
		))
		if f.Err != nil {
			lines = append(lines, "    "+l.styles.Muted.Render(truncate(f.Err.Error(), l.width-6)))
		}
	}

	return strings.Join(lines, "\n")
}

// SetResult shows the outcome of an export. A nil result clears the list.
func (l *FlowList) SetResult(result *domain.ExportResult) {
	if result == nil {
		l.entries = nil
		l.failures = nil
		return
	}
	l.entries = result.Entries
	l.failures = result.Failures
}

// Len returns the number of rows (entries plus failures).
func (l *FlowList) Len() int {
	return len(l.entries) + len(l.failures)
}

// SetWidth sets the list width.
func (l *FlowList) SetWidth(width int) {
	l.width = width
}

// FormatSize renders a byte count for display.
func FormatSize(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	if n < unit*unit {
		return fmt.Sprintf("%.1f KiB", float64(n)/unit)
	}
	return fmt.Sprintf("%.1f MiB", float64(n)/(unit*unit))
}

func truncate(s string, maxLen int) string {
	if maxLen < 10 {
		maxLen = 10
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
