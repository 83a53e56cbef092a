// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The listing core lives here: BuildQuery turns a time window into a search
// request, ListService runs the adaptive window search over a
// driven.Transport, and Report renders the result.
//
// Services are pure Go with no CGO dependencies.
package services
