// Package tui provides an interactive terminal browser for recently created
// repositories. It is a driving adapter like the CLI and MCP server.
package tui

import (
	"github.com/nikola-miljkovic/github-browser/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// List finds recently created repositories.
	List driving.ListService

	// RateLimit reports the search quota. Optional; shown in the status line.
	RateLimit driving.RateLimitService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.List == nil {
		return ErrMissingListService
	}
	return nil
}
