// Package driving defines the interfaces the CLI, TUI and MCP adapters use
// to reach core services. These are the "driving" ports in hexagonal
// architecture terminology - they drive the application.
//
// Implementations of these interfaces live in internal/core/services.
package driving
