package cli

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the flows in the manifest",
	Long: `Lists every flow the export will download, with the archive entry it
becomes and the location it is fetched from.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	manifest, _, err := loadManifest()
	if err != nil {
		return err
	}

	cmd.Printf("%s (%d flows)\n", manifest.ArchiveFilename(), manifest.Len())
	cmd.Println()

	linkService := links()
	for i, d := range manifest.Descriptors() {
		cmd.Printf("[%d] %s\n", i+1, d.Filename())
		cmd.Printf("    Locator: %s\n", d.Locator)
		if linkService == nil {
			continue
		}
		if webURL := linkService.WebURL(d.Locator); webURL != "" && webURL != d.Locator {
			cmd.Printf("    Web:     %s\n", webURL)
		}
	}
	return nil
}
