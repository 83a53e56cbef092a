package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
)

// maxCount bounds the count a client may request in one call.
const maxCount = 500

// ListInput is the input schema for the list_recent_repositories tool.
type ListInput struct {
	Count    int    `json:"count" jsonschema:"number of repositories to return (1-500)"`
	Language string `json:"language,omitempty" jsonschema:"only repositories in this language, e.g. go"`
	Sort     string `json:"sort,omitempty" jsonschema:"default (creation date), stars, forks, help-wanted-issues or updated"`
	Extended bool   `json:"extended,omitempty" jsonschema:"include index and creation date in the text report"`
	Until    string `json:"until,omitempty" jsonschema:"newest creation time to consider, RFC3339 (default now)"`
}

// ListOutput is the output schema for the list_recent_repositories tool.
type ListOutput struct {
	Repositories []RepositoryOutput `json:"repositories"`
	Count        int                `json:"count"`
	TotalCount   int                `json:"total_count"`
	Requests     int                `json:"requests"`
	Degraded     bool               `json:"degraded"`
	Report       string             `json:"report"`
}

// RepositoryOutput represents a single repository.
type RepositoryOutput struct {
	FullName    string `json:"full_name"`
	CreatedAt   string `json:"created_at"`
	HTMLURL     string `json:"html_url,omitempty"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
	Stars       int    `json:"stars"`
}

// RateLimitInput is the input schema for the search_rate_limit tool.
type RateLimitInput struct{}

// RateLimitOutput is the output schema for the search_rate_limit tool.
type RateLimitOutput struct {
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
	Reset     string `json:"reset"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_recent_repositories",
		Description: "List the most recently created public GitHub repositories, newest first",
	}, s.handleList)

	if s.ports.RateLimit != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "search_rate_limit",
			Description: "Show the remaining GitHub search API quota",
		}, s.handleRateLimit)
	}
}

// handleList handles the list_recent_repositories tool invocation.
func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListInput,
) (*mcp.CallToolResult, ListOutput, error) {
	if input.Count <= 0 || input.Count > maxCount {
		return nil, ListOutput{}, fmt.Errorf("%w: count must be between 1 and %d", domain.ErrInvalidInput, maxCount)
	}

	opts := domain.ListOptions{
		Count:    input.Count,
		Language: input.Language,
		Sort:     domain.SortMode(input.Sort),
	}
	if input.Until != "" {
		until, err := domain.ParseTimestamp(input.Until)
		if err != nil {
			return nil, ListOutput{}, err
		}
		opts.Until = until
	}

	result, err := s.ports.List.List(ctx, opts)
	if err != nil {
		return nil, ListOutput{}, err
	}

	output := ListOutput{
		Repositories: make([]RepositoryOutput, len(result.Items)),
		Count:        len(result.Items),
		TotalCount:   result.TotalCount,
		Requests:     result.Requests,
		Degraded:     result.Degraded,
		Report:       s.ports.Formatter.Format(result.Items, input.Extended),
	}

	for i := range result.Items {
		item := result.Items[i]
		output.Repositories[i] = RepositoryOutput{
			FullName:    item.FullName,
			CreatedAt:   item.CreatedAt.UTC().Format(time.RFC3339),
			HTMLURL:     item.HTMLURL,
			Description: item.Description,
			Language:    item.Language,
			Stars:       item.Stars,
		}
	}

	return nil, output, nil
}

// handleRateLimit handles the search_rate_limit tool invocation.
func (s *Server) handleRateLimit(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ RateLimitInput,
) (*mcp.CallToolResult, RateLimitOutput, error) {
	status, err := s.ports.RateLimit.SearchRateLimit(ctx)
	if err != nil {
		return nil, RateLimitOutput{}, err
	}

	return nil, RateLimitOutput{
		Limit:     status.Limit,
		Remaining: status.Remaining,
		Reset:     status.Reset.UTC().Format(time.RFC3339),
	}, nil
}
