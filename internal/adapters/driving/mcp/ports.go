package mcp

import (
	"github.com/nikola-miljkovic/github-browser/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// List finds recently created repositories.
	List driving.ListService

	// Formatter renders listings as text.
	Formatter driving.Formatter

	// RateLimit reports the search quota. Optional; the search_rate_limit
	// tool is only registered when set.
	RateLimit driving.RateLimitService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.List == nil {
		return ErrMissingListService
	}
	if p.Formatter == nil {
		return ErrMissingFormatter
	}
	return nil
}
