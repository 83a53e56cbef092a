// Package domain defines the core entities of github-browser.
//
// This package is the innermost layer of the hexagonal architecture.
// It has NO external dependencies and defines the fundamental types:
//
//   - TimeWindow: a half-open creation-date range used to filter searches
//   - SearchRequest: an immutable search endpoint descriptor
//   - RepositoryItem: a repository as returned by the search API
//   - SearchPolicy: the tunable constants of the adaptive window search
//   - AppSettings: typed application configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
