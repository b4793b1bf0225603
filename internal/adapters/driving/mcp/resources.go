package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for flowpack resources.
	uriScheme = "flowpack://"

	zipMIMEType = "application/zip"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the manifest.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "manifest",
		Name:        "manifest",
		Description: "The flows bundled by the flow pack",
		MIMEType:    "application/json",
	}, s.handleManifestResource)

	// Template for archives kept in memory.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "archives/{name}",
		Name:        "archive",
		Description: "A ZIP archive produced by export_flow_pack",
		MIMEType:    zipMIMEType,
	}, s.handleArchiveResource)
}

// handleManifestResource returns the manifest as JSON.
func (s *Server) handleManifestResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(s.listFlows(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling manifest: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleArchiveResource returns an in-memory archive.
func (s *Server) handleArchiveResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Archives == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	name := extractArchiveName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := s.ports.Archives.Get(name)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: zipMIMEType,
			Blob:     data,
		}},
	}, nil
}

// extractArchiveName extracts the archive name from a URI like flowpack://archives/{name}.
func extractArchiveName(uri string) string {
	const prefix = uriScheme + "archives/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	name := strings.TrimPrefix(uri, prefix)
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	if strings.Contains(name, "/") {
		return ""
	}
	return name
}
