// Command flowpack downloads the CIAM Passwordless flow pack into a ZIP archive.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/flowpack/internal/adapters/driven/archive/ziparchive"
	"github.com/custodia-labs/flowpack/internal/adapters/driven/config/file"
	"github.com/custodia-labs/flowpack/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/flowpack/internal/adapters/driving/cli"
	"github.com/custodia-labs/flowpack/internal/connectors"
	"github.com/custodia-labs/flowpack/internal/connectors/github"
	"github.com/custodia-labs/flowpack/internal/connectors/web"
	"github.com/custodia-labs/flowpack/internal/core/domain"
	"github.com/custodia-labs/flowpack/internal/core/ports/driven"
	"github.com/custodia-labs/flowpack/internal/core/ports/driving"
	"github.com/custodia-labs/flowpack/internal/core/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetConfig(&cli.Config{
		OpenManifest: openManifest,
		NewSaver:     newSaver,
		NewExporter:  newExporter,
		Links:        services.NewLinkService(github.ResolveWebURL),
	})

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func openManifest(path string) driven.ManifestStore {
	return file.NewManifestStore(path)
}

func newSaver(outputDir string) driven.ArchiveSaver {
	return filesystem.NewSaver(outputDir)
}

// newExporter wires the fetchers, archiver and saver for one set of settings.
func newExporter(settings domain.ExportSettings, saver driven.ArchiveSaver) driving.Exporter {
	router := connectors.NewRouter(
		web.New(web.Config{
			MaxBytes:          settings.MaxBytes,
			RequestsPerSecond: settings.RequestsPerSecond,
		}),
		github.NewFetcher(newGitHubClient(), settings.MaxBytes),
	)

	return services.NewExporter(router, ziparchive.NewArchiver(), saver, settings)
}

// newGitHubClient returns a client without an HTTP timeout so the
// per-fetch deadline from the export settings is the only limit.
func newGitHubClient() *github.Client {
	return github.NewClient(&http.Client{})
}
