package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/flowpack/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/flowpack/internal/adapters/driving/mcp"
	"github.com/custodia-labs/flowpack/internal/core/ports/driving"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Use --no-save to keep exported archives in memory. They are then served as
flowpack://archives/{name} resources instead of being written to disk.

Examples:
  # Stdio mode (default, for Claude Desktop)
  flowpack mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  flowpack mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "flowpack": {
        "command": "/path/to/flowpack",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("no-save", false, "keep archives in memory instead of writing them to disk")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

// newMCPPorts builds the MCP ports. With noSave, archives go to an
// in-memory store that the server also reads from.
func newMCPPorts(noSave bool) (*mcp.Ports, error) {
	manifest, settings, err := loadManifest()
	if err != nil {
		return nil, err
	}

	ports := &mcp.Ports{
		Manifest: manifest,
		Links:    links(),
	}

	var exporter driving.Exporter
	if noSave {
		store := memory.NewArchiveStore()
		exporter, err = newExporterWithSaver(settings, store)
		ports.Archives = store
	} else {
		exporter, err = newExporter(settings)
	}
	if err != nil {
		return nil, err
	}
	ports.Exporter = exporter

	return ports, nil
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return fmt.Errorf("getting no-save flag: %w", err)
	}

	ports, err := newMCPPorts(noSave)
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
