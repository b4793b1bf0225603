package cli

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/flowpack/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/flowpack/internal/core/domain"
	"github.com/custodia-labs/flowpack/internal/core/ports/driven"
	"github.com/custodia-labs/flowpack/internal/core/ports/driving"
)

// MockExporter implements driving.Exporter for CLI tests.
type MockExporter struct {
	ExportFunc func(ctx context.Context, manifest *domain.Manifest) (*domain.ExportResult, error)
	Manifests  []*domain.Manifest
}

func (m *MockExporter) Export(ctx context.Context, manifest *domain.Manifest) (*domain.ExportResult, error) {
	m.Manifests = append(m.Manifests, manifest)
	if m.ExportFunc != nil {
		return m.ExportFunc(ctx, manifest)
	}
	return testResult(), nil
}

// MockLinkService implements driving.LinkService for CLI tests.
type MockLinkService struct{}

func (m *MockLinkService) WebURL(locator string) string {
	return strings.Replace(locator, "github://", "https://github.com/", 1)
}

func (m *MockLinkService) Open(_ context.Context, _ string) error { return nil }

func (m *MockLinkService) CopyToClipboard(_ context.Context, _ string) error { return nil }

// testEnv captures what the command tree asked the configuration for.
type testEnv struct {
	exporter   *MockExporter
	manifests  *memory.ManifestStore
	archives   *memory.ArchiveStore
	settings   []domain.ExportSettings
	saverDirs  []string
	configArgs []string
}

func testManifest() *domain.Manifest {
	m, err := domain.NewManifest("TestPack", []domain.Descriptor{
		{Name: "Alpha", Locator: "https://example.com/alpha.json"},
		{Name: "Beta", Locator: "github://owner/repo/beta.json"},
	})
	if err != nil {
		panic(err)
	}
	return m
}

func testResult() *domain.ExportResult {
	started := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.ExportResult{
		RunID:       "run-1",
		ArchiveName: "TestPack.zip",
		Archive:     []byte("PK\x05\x06"),
		Entries:     []domain.EntrySummary{{Filename: "Alpha.json", Size: 12}},
		Failures: []domain.FetchFailure{
			{Name: "Beta", Locator: "github://owner/repo/beta.json", Err: errors.New("not found")},
		},
		Location:   "memory://TestPack.zip",
		StartedAt:  started,
		FinishedAt: started.Add(time.Second),
	}
}

// setupTestConfig installs a Config backed by mocks and memory stores and
// restores global command state when the test ends.
func setupTestConfig(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		exporter:  &MockExporter{},
		manifests: memory.NewManifestStore(testManifest(), domain.DefaultExportSettings()),
		archives:  memory.NewArchiveStore(),
	}

	SetConfig(&Config{
		OpenManifest: func(path string) driven.ManifestStore {
			env.configArgs = append(env.configArgs, path)
			return env.manifests
		},
		NewSaver: func(outputDir string) driven.ArchiveSaver {
			env.saverDirs = append(env.saverDirs, outputDir)
			return env.archives
		},
		NewExporter: func(settings domain.ExportSettings, _ driven.ArchiveSaver) driving.Exporter {
			env.settings = append(env.settings, settings)
			return env.exporter
		},
		Links: &MockLinkService{},
	})

	t.Cleanup(resetCommandState)
	return env
}

// resetCommandState clears configuration and flag values left over from a
// previous Execute.
func resetCommandState() {
	appConfig = nil
	rootCmd.SetArgs(nil)
	resetFlags(rootCmd)
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}
