package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/flowpack/internal/core/domain"
	"github.com/custodia-labs/flowpack/internal/logger"
)

var (
	exportOutput      string
	exportTimeout     time.Duration
	exportConcurrency int
	exportRate        float64
	exportFailOnEmpty bool
	exportJSON        bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download the flows and save the archive",
	Long: `Fetches every flow in the manifest concurrently, re-formats each document
and writes them into a ZIP archive named after the pack.

Flows that cannot be downloaded are reported and left out of the archive.
Use --fail-on-empty to treat a run where nothing could be downloaded as an
error instead of saving an empty archive.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", domain.DefaultOutputDir, "directory to save the archive in")
	exportCmd.Flags().DurationVar(&exportTimeout, "timeout", domain.DefaultFetchTimeout, "timeout per download (0 = none)")
	exportCmd.Flags().IntVar(&exportConcurrency, "concurrency", 0, "maximum parallel downloads (0 = unbounded)")
	exportCmd.Flags().Float64Var(&exportRate, "rate", 0, "maximum requests per second (0 = unlimited)")
	exportCmd.Flags().BoolVar(&exportFailOnEmpty, "fail-on-empty", false, "fail when no flow could be downloaded")
	exportCmd.Flags().BoolVar(&exportJSON, "json", false, "output the result as JSON")
	rootCmd.AddCommand(exportCmd)
}

// applyExportFlags overrides settings with flags the user set explicitly.
func applyExportFlags(cmd *cobra.Command, settings *domain.ExportSettings) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		settings.OutputDir = exportOutput
	}
	if flags.Changed("timeout") {
		settings.FetchTimeout = exportTimeout
	}
	if flags.Changed("concurrency") {
		settings.MaxConcurrency = exportConcurrency
	}
	if flags.Changed("rate") {
		settings.RequestsPerSecond = exportRate
	}
	if flags.Changed("fail-on-empty") {
		if exportFailOnEmpty {
			settings.EmptyArchive = domain.EmptyArchiveFail
		} else {
			settings.EmptyArchive = domain.EmptyArchiveAllow
		}
	}
}

func runExport(cmd *cobra.Command, _ []string) error {
	manifest, settings, err := loadManifest()
	if err != nil {
		return err
	}

	applyExportFlags(cmd, &settings)
	if err := settings.Validate(); err != nil {
		return err
	}

	exporter, err := newExporter(settings)
	if err != nil {
		return err
	}

	result, err := exporter.Export(cmd.Context(), manifest)
	if err != nil {
		logger.Error("export of %s failed: %v", manifest.ArchiveFilename(), err)
		return fmt.Errorf("export failed: %w", err)
	}

	if exportJSON {
		return outputExportJSON(cmd, result)
	}
	return outputExportText(cmd, result)
}

// exportSummary is the JSON shape of an export result.
type exportSummary struct {
	RunID       string           `json:"run_id"`
	ArchiveName string           `json:"archive_name"`
	Location    string           `json:"location,omitempty"`
	Size        int              `json:"size"`
	Duration    string           `json:"duration"`
	Entries     []entrySummary   `json:"entries"`
	Failures    []failureSummary `json:"failures"`
}

type entrySummary struct {
	Filename string `json:"filename"`
	Size     int    `json:"size"`
}

type failureSummary struct {
	Name    string `json:"name"`
	Locator string `json:"locator"`
	Error   string `json:"error"`
}

func outputExportJSON(cmd *cobra.Command, result *domain.ExportResult) error {
	summary := exportSummary{
		RunID:       result.RunID,
		ArchiveName: result.ArchiveName,
		Location:    result.Location,
		Size:        len(result.Archive),
		Duration:    result.Duration().String(),
		Entries:     make([]entrySummary, 0, len(result.Entries)),
		Failures:    make([]failureSummary, 0, len(result.Failures)),
	}
	for _, e := range result.Entries {
		summary.Entries = append(summary.Entries, entrySummary{Filename: e.Filename, Size: e.Size})
	}
	for _, f := range result.Failures {
		summary.Failures = append(summary.Failures, failureSummary{
			Name:    f.Name,
			Locator: f.Locator,
			Error:   f.Err.Error(),
		})
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputExportText(cmd *cobra.Command, result *domain.ExportResult) error {
	total := len(result.Entries) + len(result.Failures)
	cmd.Printf("Downloaded %d of %d flows into %s\n", len(result.Entries), total, result.ArchiveName)

	for _, e := range result.Entries {
		cmd.Printf("  ✓ %s (%d bytes)\n", e.Filename, e.Size)
	}
	for _, f := range result.Failures {
		cmd.Printf("  ✗ %s: %v\n", f.Name, f.Err)
	}

	if result.Location != "" {
		cmd.Printf("Saved to %s\n", result.Location)
	}
	cmd.Println("After downloading, visit the documentation to get started:")
	cmd.Printf("  %s\n", domain.DocumentationURL)
	return nil
}
