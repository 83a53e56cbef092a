package github

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
)

const (
	// SearchRateLimit is the authenticated search quota per minute.
	SearchRateLimit = 30

	// DefaultRate spreads SearchRateLimit evenly over the minute.
	DefaultRate = 0.5

	HeaderRateLimit     = "X-RateLimit-Limit"
	HeaderRateRemaining = "X-RateLimit-Remaining"
	HeaderRateReset     = "X-RateLimit-Reset" // Unix seconds
)

// RateLimiter paces search requests with a token bucket and refuses them
// outright while the quota last reported by GitHub is exhausted.
type RateLimiter struct {
	mu     sync.Mutex
	status domain.RateStatus
	bucket *rate.Limiter
	now    func() time.Time
}

// NewRateLimiter allows perSecond requests; a non-positive rate means
// DefaultRate. The quota is assumed full until GitHub reports otherwise.
func NewRateLimiter(perSecond float64) *RateLimiter {
	if perSecond <= 0 {
		perSecond = DefaultRate
	}
	return &RateLimiter{
		status: domain.RateStatus{Limit: SearchRateLimit, Remaining: SearchRateLimit},
		bucket: rate.NewLimiter(rate.Limit(perSecond), 1),
		now:    time.Now,
	}
}

// Wait blocks until the bucket has a token. An exhausted quota returns a
// RateLimitError immediately; nothing waits for the reset.
func (r *RateLimiter) Wait(ctx context.Context) error {
	status := r.Status()
	if status.Exhausted(r.now()) {
		return &RateLimitError{
			ResetAt:   status.Reset,
			Remaining: status.Remaining,
			Limit:     status.Limit,
			Message:   "search quota exhausted",
		}
	}

	if err := r.bucket.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	return nil
}

// UpdateFromResponse copies the X-RateLimit headers of resp. Missing or
// malformed headers leave the matching field unchanged.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if n, ok := intHeader(resp.Header, HeaderRateLimit); ok {
		r.status.Limit = int(n)
	}
	if n, ok := intHeader(resp.Header, HeaderRateRemaining); ok {
		r.status.Remaining = int(n)
	}
	if n, ok := intHeader(resp.Header, HeaderRateReset); ok {
		r.status.Reset = time.Unix(n, 0)
	}
}

func intHeader(h http.Header, name string) (int64, bool) {
	n, err := strconv.ParseInt(h.Get(name), 10, 64)
	return n, err == nil
}

// Update replaces the known quota, e.g. with the /rate_limit result.
func (r *RateLimiter) Update(status domain.RateStatus) {
	r.mu.Lock()
	r.status = status
	r.mu.Unlock()
}

// Status returns the last known search quota.
func (r *RateLimiter) Status() domain.RateStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}
