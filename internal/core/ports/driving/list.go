package driving

import (
	"context"

	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
)

// ListService lists recently created repositories.
type ListService interface {
	// List returns up to opts.Count repositories. With the default sort
	// mode they are ordered by creation date, newest first.
	List(ctx context.Context, opts domain.ListOptions) (*domain.ListResult, error)
}

// RateLimitService reports API quota to external actors.
type RateLimitService interface {
	// SearchRateLimit returns the current search API quota.
	SearchRateLimit(ctx context.Context) (*domain.RateStatus, error)
}

// Formatter renders listings as text.
type Formatter interface {
	// Format returns the report for items: a header, a separator and one
	// line per repository. Extended lines add an index and creation date.
	Format(items []domain.RepositoryItem, extended bool) string
}
