package driven

import (
	"context"

	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
)

// Response is one page returned by a Transport.
type Response struct {
	// Body is the raw JSON body. On success it holds "items" and
	// "total_count"; on failure it holds "message" and no "items".
	Body []byte

	// NextURL is the absolute URL of the next page, or empty when the
	// current page is the last one. It is opaque and used verbatim.
	NextURL string
}

// Transport performs GET requests against the search API.
// Implementations handle authentication, throttling and HTTP details.
type Transport interface {
	// Get fetches url and returns its body with the next-page link.
	// An error means the request could not produce a page at all.
	Get(ctx context.Context, url string) (*Response, error)
}

// RateLimitReporter reports the remaining search quota.
type RateLimitReporter interface {
	// SearchRateLimit returns the current search API quota.
	SearchRateLimit(ctx context.Context) (*domain.RateStatus, error)
}
