package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ExportInput is the input schema for the export tool.
type ExportInput struct{}

// ExportOutput is the output schema for the export tool.
type ExportOutput struct {
	RunID       string          `json:"run_id"`
	ArchiveName string          `json:"archive_name"`
	Location    string          `json:"location,omitempty"`
	Size        int             `json:"size"`
	Duration    string          `json:"duration"`
	Entries     []EntryOutput   `json:"entries"`
	Failures    []FailureOutput `json:"failures"`
}

// EntryOutput describes an entry written to the archive.
type EntryOutput struct {
	Filename string `json:"filename"`
	Size     int    `json:"size"`
}

// FailureOutput describes a flow that could not be downloaded.
type FailureOutput struct {
	Name    string `json:"name"`
	Locator string `json:"locator"`
	Error   string `json:"error"`
}

// ListFlowsInput is the input schema for the list_flows tool.
type ListFlowsInput struct{}

// ListFlowsOutput is the output schema for the list_flows tool.
type ListFlowsOutput struct {
	ArchiveName string       `json:"archive_name"`
	Flows       []FlowOutput `json:"flows"`
	Count       int          `json:"count"`
}

// FlowOutput describes one flow of the manifest.
type FlowOutput struct {
	Name     string `json:"name"`
	Filename string `json:"filename"`
	Locator  string `json:"locator"`
	WebURL   string `json:"web_url,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "export_flow_pack",
		Description: "Download every flow of the flow pack, bundle them into a ZIP archive " +
			"and save it. Flows that fail to download are reported and left out.",
	}, s.handleExport)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_flows",
		Description: "List the flows bundled by the flow pack and where they are downloaded from",
	}, s.handleListFlows)
}

// handleExport handles the export_flow_pack tool invocation.
func (s *Server) handleExport(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ExportInput,
) (*mcp.CallToolResult, ExportOutput, error) {
	result, err := s.ports.Exporter.Export(ctx, s.ports.Manifest)
	if err != nil {
		return nil, ExportOutput{}, err
	}

	output := ExportOutput{
		RunID:       result.RunID,
		ArchiveName: result.ArchiveName,
		Location:    result.Location,
		Size:        len(result.Archive),
		Duration:    result.Duration().Round(time.Millisecond).String(),
		Entries:     make([]EntryOutput, len(result.Entries)),
		Failures:    make([]FailureOutput, len(result.Failures)),
	}
	for i, e := range result.Entries {
		output.Entries[i] = EntryOutput{Filename: e.Filename, Size: e.Size}
	}
	for i, f := range result.Failures {
		output.Failures[i] = FailureOutput{Name: f.Name, Locator: f.Locator, Error: f.Err.Error()}
	}

	return nil, output, nil
}

// handleListFlows handles the list_flows tool invocation.
func (s *Server) handleListFlows(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListFlowsInput,
) (*mcp.CallToolResult, ListFlowsOutput, error) {
	return nil, s.listFlows(), nil
}

func (s *Server) listFlows() ListFlowsOutput {
	descriptors := s.ports.Manifest.Descriptors()
	output := ListFlowsOutput{
		ArchiveName: s.ports.Manifest.ArchiveFilename(),
		Flows:       make([]FlowOutput, len(descriptors)),
		Count:       len(descriptors),
	}
	for i, d := range descriptors {
		flow := FlowOutput{
			Name:     d.Name,
			Filename: d.Filename(),
			Locator:  d.Locator,
		}
		if s.ports.Links != nil {
			flow.WebURL = s.ports.Links.WebURL(d.Locator)
		}
		output.Flows[i] = flow
	}
	return output
}
