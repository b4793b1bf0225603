package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/flowpack/internal/core/domain"
)

func TestServer_handleExport(t *testing.T) {
	ctx := context.Background()

	t.Run("returns export summary", func(t *testing.T) {
		started := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		exporter := &mockExporter{result: &domain.ExportResult{
			RunID:       "run-1",
			ArchiveName: "TestPack.zip",
			Archive:     []byte("PK\x05\x06"),
			Entries:     []domain.EntrySummary{{Filename: "Alpha.json", Size: 12}},
			Failures: []domain.FetchFailure{
				{Name: "Beta", Locator: "github://owner/repo/beta.json", Err: errors.New("not found")},
			},
			Location:   "/out/TestPack.zip",
			StartedAt:  started,
			FinishedAt: started.Add(1500 * time.Millisecond),
		}}
		server, err := NewServer(&Ports{Exporter: exporter, Manifest: testManifest()})
		require.NoError(t, err)

		_, output, err := server.handleExport(ctx, nil, ExportInput{})

		require.NoError(t, err)
		assert.Equal(t, 1, exporter.calls)
		assert.Equal(t, "run-1", output.RunID)
		assert.Equal(t, "TestPack.zip", output.ArchiveName)
		assert.Equal(t, "/out/TestPack.zip", output.Location)
		assert.Equal(t, 4, output.Size)
		assert.Equal(t, "1.5s", output.Duration)
		assert.Equal(t, []EntryOutput{{Filename: "Alpha.json", Size: 12}}, output.Entries)
		require.Len(t, output.Failures, 1)
		assert.Equal(t, "Beta", output.Failures[0].Name)
		assert.Equal(t, "not found", output.Failures[0].Error)
	})

	t.Run("returns error on export failure", func(t *testing.T) {
		exporter := &mockExporter{err: domain.ErrNoDocuments}
		server, err := NewServer(&Ports{Exporter: exporter, Manifest: testManifest()})
		require.NoError(t, err)

		_, _, err = server.handleExport(ctx, nil, ExportInput{})

		assert.ErrorIs(t, err, domain.ErrNoDocuments)
	})
}

func TestServer_handleListFlows(t *testing.T) {
	ctx := context.Background()

	t.Run("lists manifest flows", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Exporter: &mockExporter{},
			Manifest: testManifest(),
			Links:    &mockLinkService{},
		})
		require.NoError(t, err)

		_, output, err := server.handleListFlows(ctx, nil, ListFlowsInput{})

		require.NoError(t, err)
		assert.Equal(t, "TestPack.zip", output.ArchiveName)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, FlowOutput{
			Name:     "Alpha",
			Filename: "Alpha.json",
			Locator:  "https://example.com/alpha.json",
			WebURL:   "https://example.com/alpha.json",
		}, output.Flows[0])
		assert.Equal(t, "https://github.com/owner/repo/beta.json", output.Flows[1].WebURL)
	})

	t.Run("omits web urls without link service", func(t *testing.T) {
		server, err := NewServer(&Ports{Exporter: &mockExporter{}, Manifest: testManifest()})
		require.NoError(t, err)

		_, output, err := server.handleListFlows(ctx, nil, ListFlowsInput{})

		require.NoError(t, err)
		assert.Empty(t, output.Flows[0].WebURL)
	})
}
