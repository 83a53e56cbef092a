package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for github-browser resources.
	uriScheme = "github-browser://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the supported sort modes.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sort-modes",
		Name:        "sort-modes",
		Description: "Sort modes accepted by list_recent_repositories",
		MIMEType:    "application/json",
	}, s.handleSortModesResource)

	// Template for a plain text listing.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "recent/{count}",
		Name:        "recent-repositories",
		Description: "Text report of the most recently created repositories",
		MIMEType:    "text/plain",
	}, s.handleRecentResource)
}

// handleSortModesResource returns every sort mode with its description.
func (s *Server) handleSortModesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type modeInfo struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	modes := domain.AllSortModes()
	infos := make([]modeInfo, len(modes))
	for i, m := range modes {
		infos[i] = modeInfo{Name: m.String(), Description: m.Description()}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling sort modes: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleRecentResource returns the text report for the requested count.
func (s *Server) handleRecentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract count from URI: github-browser://recent/{count}
	count := extractCount(req.Params.URI)
	if count <= 0 || count > maxCount {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	result, err := s.ports.List.List(ctx, domain.ListOptions{Count: count})
	if err != nil {
		return nil, fmt.Errorf("listing repositories: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     s.ports.Formatter.Format(result.Items, true),
		}},
	}, nil
}

// extractCount extracts the count from a URI like github-browser://recent/{count}.
// Returns 0 when the URI does not match or the count is not a number.
func extractCount(uri string) int {
	const prefix = uriScheme + "recent/"

	if !strings.HasPrefix(uri, prefix) {
		return 0
	}

	n, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return 0
	}
	return n
}
