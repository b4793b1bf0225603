// Package menu provides the action menu view for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/flowpack/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/flowpack/internal/adapters/driving/tui/styles"
)

// Item represents a single menu option.
type Item struct {
	Label  string
	Action messages.Action
}

// View represents the action menu.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		items: []Item{
			{Label: "Download", Action: messages.ActionDownload},
			{Label: "Documentation", Action: messages.ActionDocumentation},
			{Label: "Back to Marketplace", Action: messages.ActionMarketplace},
			{Label: "Quit", Action: messages.ActionQuit},
		},
		selected: 0,
		width:    80,
		height:   24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			item := v.items[v.selected]
			if item.Action == messages.ActionQuit {
				return v, tea.Quit
			}
			return v, func() tea.Msg {
				return messages.ActionSelected{Action: item.Action}
			}

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the menu items.
func (v *View) View() string {
	var b strings.Builder

	for i, item := range v.items {
		cursor := "  "
		style := v.styles.Normal

		if i == v.selected {
			cursor = "> "
			style = v.styles.Selected
		}

		b.WriteString(cursor + style.Render(item.Label))
		if i < len(v.items)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the menu items.
func (v *View) Items() []Item {
	return v.items
}
