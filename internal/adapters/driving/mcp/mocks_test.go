package mcp

import (
	"context"
	"strings"

	"github.com/custodia-labs/flowpack/internal/core/domain"
)

// mockExporter is a mock implementation of driving.Exporter.
type mockExporter struct {
	result *domain.ExportResult
	err    error
	calls  int
}

func (m *mockExporter) Export(_ context.Context, _ *domain.Manifest) (*domain.ExportResult, error) {
	m.calls++
	return m.result, m.err
}

// mockLinkService is a mock implementation of driving.LinkService.
type mockLinkService struct{}

func (m *mockLinkService) WebURL(locator string) string {
	return strings.Replace(locator, "github://", "https://github.com/", 1)
}

func (m *mockLinkService) Open(_ context.Context, _ string) error { return nil }

func (m *mockLinkService) CopyToClipboard(_ context.Context, _ string) error { return nil }

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
