// Package messages defines Bubbletea message types for the TUI.
// Messages represent events that flow through the Elm architecture.
package messages

import (
	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
)

// ListCompleted carries a listing back to the model.
type ListCompleted struct {
	Options domain.ListOptions
	Result  *domain.ListResult
	Err     error
}

// RateLimitLoaded carries the search quota back to the model.
type RateLimitLoaded struct {
	Status *domain.RateStatus
	Err    error
}
