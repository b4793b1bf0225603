// Package cli provides the cobra command tree for flowpack.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/flowpack/internal/core/domain"
	"github.com/custodia-labs/flowpack/internal/core/ports/driven"
	"github.com/custodia-labs/flowpack/internal/core/ports/driving"
	"github.com/custodia-labs/flowpack/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose    bool
	configPath string
)

// errNotConfigured is returned when a command runs before SetConfig.
var errNotConfigured = errors.New("exporter not configured")

// Config wires the core services into the command tree.
type Config struct {
	// OpenManifest returns the manifest store for a config path.
	// An empty path selects the built-in manifest.
	OpenManifest func(path string) driven.ManifestStore

	// NewSaver returns the saver for an output directory.
	NewSaver func(outputDir string) driven.ArchiveSaver

	// NewExporter builds an exporter for the given settings and saver.
	NewExporter func(settings domain.ExportSettings, saver driven.ArchiveSaver) driving.Exporter

	// Links resolves and opens web links. Optional.
	Links driving.LinkService
}

// appConfig holds the current configuration.
var appConfig *Config

// stdoutIsTerminal reports whether stdout is attached to a terminal.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var rootCmd = &cobra.Command{
	Use:   "flowpack",
	Short: "Download the CIAM Passwordless flow pack",
	Long: `flowpack fetches a fixed set of JSON flow documents, bundles them into a
ZIP archive and saves it.

Run without a subcommand to open the interactive screen (or, when output is
not a terminal, to export straight away).`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a flowpack.toml manifest")
}

// SetConfig sets the configuration for all commands.
func SetConfig(config *Config) {
	appConfig = config
}

// Execute runs the root command. Cancelling ctx cancels in-flight exports.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func runRoot(cmd *cobra.Command, args []string) error {
	if stdoutIsTerminal() {
		return runTUI(cmd, args)
	}
	return runExport(cmd, args)
}

// loadManifest reads the manifest and settings for the --config path.
func loadManifest() (*domain.Manifest, domain.ExportSettings, error) {
	if appConfig == nil || appConfig.OpenManifest == nil {
		return domain.DefaultManifest(), domain.DefaultExportSettings(), nil
	}

	manifest, settings, err := appConfig.OpenManifest(configPath).Load()
	if err != nil {
		return nil, domain.ExportSettings{}, fmt.Errorf("failed to load manifest: %w", err)
	}
	return manifest, settings, nil
}

// newExporter builds an exporter that saves into settings.OutputDir.
func newExporter(settings domain.ExportSettings) (driving.Exporter, error) {
	var saver driven.ArchiveSaver
	if appConfig != nil && appConfig.NewSaver != nil {
		saver = appConfig.NewSaver(settings.OutputDir)
	}
	return newExporterWithSaver(settings, saver)
}

func newExporterWithSaver(settings domain.ExportSettings, saver driven.ArchiveSaver) (driving.Exporter, error) {
	if appConfig == nil || appConfig.NewExporter == nil {
		return nil, errNotConfigured
	}
	return appConfig.NewExporter(settings, saver), nil
}

func links() driving.LinkService {
	if appConfig == nil {
		return nil
	}
	return appConfig.Links
}
