package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/flowpack/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/flowpack/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/flowpack/internal/core/domain"
)

func newTestApp(t *testing.T, exporter *MockExporter, links *MockLinkService) *App {
	t.Helper()
	ports := &Ports{Exporter: exporter, Manifest: domain.DefaultManifest()}
	if links != nil {
		ports.Links = links
	}
	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(120, 40)
	return app
}

// runCmd executes cmd and expands batches into their messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func savedResult() *domain.ExportResult {
	return &domain.ExportResult{
		ArchiveName: "PasswordlessFlowPackForCustomers.zip",
		Entries: []domain.EntrySummary{
			{Filename: "OOTB_Device Management - Main Flow.json", Size: 120},
		},
		Failures: []domain.FetchFailure{
			{Name: "OOTB_Password Reset - Main Flow", Err: errors.New("404")},
		},
		Location: "/tmp/PasswordlessFlowPackForCustomers.zip",
	}
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(NewPorts(&MockExporter{}, nil, domain.DefaultManifest()))

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewMain, app.CurrentView())
	assert.False(t, app.Ready())
	assert.Equal(t, "Initialising...", app.View())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{Manifest: domain.DefaultManifest()})

	assert.ErrorIs(t, err, ErrMissingExporter)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app := newTestApp(t, &MockExporter{}, nil)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Same(t, app, app.WithContext(ctx))
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_Init_ExportsImmediately(t *testing.T) {
	var gotManifest *domain.Manifest
	exporter := &MockExporter{
		ExportFunc: func(_ context.Context, m *domain.Manifest) (*domain.ExportResult, error) {
			gotManifest = m
			return savedResult(), nil
		},
	}
	app := newTestApp(t, exporter, nil)

	msgs := runCmd(app.Init())

	assert.True(t, app.Exporting())
	assert.Contains(t, app.View(), "Downloading flows...")
	assert.Equal(t, 1, exporter.Calls())
	assert.Equal(t, domain.DefaultArchiveName, gotManifest.ArchiveName())

	_, ok := findMsg[spinner.TickMsg](msgs)
	assert.True(t, ok, "spinner starts with the export")
	completed, ok := findMsg[messages.ExportCompleted](msgs)
	require.True(t, ok)
	assert.NoError(t, completed.Err)
}

func TestApp_Update_ExportCompleted(t *testing.T) {
	app := newTestApp(t, &MockExporter{}, nil)
	app.Init()

	app.Update(messages.ExportCompleted{Result: savedResult()})

	assert.False(t, app.Exporting())
	assert.Equal(t, status.StateDone, app.statusBar.State())
	view := app.View()
	assert.Contains(t, view, Title)
	assert.Contains(t, view, "1 of 2 flows downloaded")
	assert.Contains(t, view, "OOTB_Device Management - Main Flow.json")
	assert.Contains(t, view, "Back to Marketplace")
}

func TestApp_Update_ExportFailed(t *testing.T) {
	app := newTestApp(t, &MockExporter{}, nil)
	app.Init()

	app.Update(messages.ExportCompleted{Err: domain.ErrNoDocuments})

	assert.ErrorIs(t, app.Err(), domain.ErrNoDocuments)
	assert.Equal(t, status.StateError, app.statusBar.State())
	assert.Contains(t, app.View(), "Export failed")
}

func TestApp_DownloadReExports(t *testing.T) {
	exporter := &MockExporter{}
	app := newTestApp(t, exporter, nil)
	runCmd(app.Init())
	app.Update(messages.ExportCompleted{Result: savedResult()})

	_, cmd := app.Update(messages.ActionSelected{Action: messages.ActionDownload})
	msgs := runCmd(cmd)

	assert.Equal(t, 2, exporter.Calls())
	_, ok := findMsg[messages.ExportCompleted](msgs)
	assert.True(t, ok)
}

func TestApp_DownloadKey(t *testing.T) {
	exporter := &MockExporter{}
	app := newTestApp(t, exporter, nil)
	app.Update(messages.ExportCompleted{Result: savedResult()})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	runCmd(cmd)

	assert.Equal(t, 1, exporter.Calls())
}

func TestApp_DownloadWhileExporting(t *testing.T) {
	exporter := &MockExporter{}
	app := newTestApp(t, exporter, nil)
	app.Init()

	_, cmd := app.Update(messages.ActionSelected{Action: messages.ActionDownload})

	assert.Nil(t, cmd)
	assert.Equal(t, "Download already in progress", app.statusBar.Message())
}

func TestApp_OpenLinks(t *testing.T) {
	tests := []struct {
		action messages.Action
		want   string
	}{
		{messages.ActionDocumentation, domain.DocumentationURL},
		{messages.ActionMarketplace, domain.MarketplaceURL},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			links := &MockLinkService{}
			app := newTestApp(t, &MockExporter{}, links)

			_, cmd := app.Update(messages.ActionSelected{Action: tt.action})
			msgs := runCmd(cmd)

			assert.Equal(t, []string{tt.want}, links.Opened)
			opened, ok := findMsg[messages.LinkOpened](msgs)
			require.True(t, ok)
			app.Update(opened)
			assert.Contains(t, app.statusBar.Message(), "Opened")
		})
	}
}

func TestApp_OpenLink_Error(t *testing.T) {
	links := &MockLinkService{OpenErr: errors.New("no browser")}
	app := newTestApp(t, &MockExporter{}, links)

	_, cmd := app.Update(messages.ActionSelected{Action: messages.ActionDocumentation})
	opened, ok := findMsg[messages.LinkOpened](runCmd(cmd))
	require.True(t, ok)

	_, cmd = app.Update(opened)
	failed, ok := findMsg[messages.ErrorOccurred](runCmd(cmd))
	require.True(t, ok)
	app.Update(failed)

	assert.EqualError(t, app.Err(), "no browser")
	assert.Equal(t, status.StateError, app.statusBar.State())
}

func TestApp_OpenLink_NoLinkService(t *testing.T) {
	app := newTestApp(t, &MockExporter{}, nil)

	_, cmd := app.Update(messages.ActionSelected{Action: messages.ActionMarketplace})
	failed, ok := findMsg[messages.ErrorOccurred](runCmd(cmd))

	require.True(t, ok)
	assert.ErrorIs(t, failed.Err, ErrMissingLinks)
}

func TestApp_CopyLocation(t *testing.T) {
	links := &MockLinkService{}
	app := newTestApp(t, &MockExporter{}, links)

	// Nothing saved yet
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	assert.Nil(t, cmd)
	assert.Equal(t, "No saved archive to copy", app.statusBar.Message())

	app.Update(messages.ExportCompleted{Result: savedResult()})
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	copied, ok := findMsg[messages.CopyCompleted](runCmd(cmd))
	require.True(t, ok)
	app.Update(copied)

	assert.Equal(t, []string{"/tmp/PasswordlessFlowPackForCustomers.zip"}, links.Copied)
	assert.Contains(t, app.statusBar.Message(), "Copied")
}

func TestApp_HelpView(t *testing.T) {
	app := newTestApp(t, &MockExporter{}, nil)
	app.Update(messages.ExportCompleted{Result: savedResult()})

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "Help")
	assert.Contains(t, app.View(), "download")

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewMain, app.CurrentView())
	assert.Equal(t, status.StateDone, app.statusBar.State())
}

func TestApp_MenuNavigation(t *testing.T) {
	app := newTestApp(t, &MockExporter{}, &MockLinkService{})

	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	selected, ok := findMsg[messages.ActionSelected](runCmd(cmd))
	require.True(t, ok)
	assert.Equal(t, messages.ActionDocumentation, selected.Action)
}

func TestApp_Quit(t *testing.T) {
	app := newTestApp(t, &MockExporter{}, nil)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	_, ok := findMsg[tea.QuitMsg](runCmd(cmd))
	assert.True(t, ok)

	_, cmd = app.Update(messages.Quit{})
	_, ok = findMsg[tea.QuitMsg](runCmd(cmd))
	assert.True(t, ok)

	cmd = app.runAction(messages.ActionQuit)
	_, ok = findMsg[tea.QuitMsg](runCmd(cmd))
	assert.True(t, ok)
}

func TestApp_WindowSize(t *testing.T) {
	app, err := NewApp(NewPorts(&MockExporter{}, nil, domain.DefaultManifest()))
	require.NoError(t, err)

	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.True(t, app.Ready())
	assert.Equal(t, 100, app.statusBar.Width())
}
