package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/flowpack/internal/core/domain"
)

// defaultConfigFilename is written by "config init" when no path is given.
const defaultConfigFilename = "flowpack.toml"

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the manifest file",
	Long:  `Commands for creating and inspecting flowpack.toml manifests.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the built-in manifest to a file",
	Long: `Writes the built-in flow pack and default export settings to a TOML file
(flowpack.toml by default) so it can be edited and passed back with --config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective export settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if appConfig == nil || appConfig.OpenManifest == nil {
		return errors.New("manifest store not configured")
	}

	path := defaultConfigFilename
	if len(args) == 1 {
		path = args[0]
	}

	if !configForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	store := appConfig.OpenManifest(path)
	if err := store.Write(domain.DefaultManifest(), domain.DefaultExportSettings()); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	cmd.Printf("Wrote %s\n", store.Path())
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	manifest, settings, err := loadManifest()
	if err != nil {
		return err
	}

	source := "built-in"
	if configPath != "" {
		source = configPath
	}

	cmd.Printf("Manifest:         %s\n", source)
	cmd.Printf("Archive:          %s\n", manifest.ArchiveFilename())
	cmd.Printf("Flows:            %d\n", manifest.Len())
	cmd.Printf("Timeout:          %s\n", settings.FetchTimeout)
	cmd.Printf("Max concurrency:  %s\n", unboundedOr(settings.MaxConcurrency))
	cmd.Printf("Requests/second:  %s\n", unlimitedOr(settings.RequestsPerSecond))
	cmd.Printf("Max bytes:        %d\n", settings.MaxBytes)
	cmd.Printf("Empty archive:    %s\n", settings.EmptyArchive.Description())
	cmd.Printf("Output directory: %s\n", settings.OutputDir)
	return nil
}

func unboundedOr(n int) string {
	if n == 0 {
		return "unbounded"
	}
	return fmt.Sprintf("%d", n)
}

func unlimitedOr(rps float64) string {
	if rps == 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%g", rps)
}
