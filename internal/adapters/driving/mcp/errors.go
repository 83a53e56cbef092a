// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants list recently created GitHub repositories and check
// the search quota.
package mcp

import "errors"

// ErrMissingListService is returned when the list service is not provided.
var ErrMissingListService = errors.New("mcp: list service is required")

// ErrMissingFormatter is returned when the formatter is not provided.
var ErrMissingFormatter = errors.New("mcp: formatter is required")
