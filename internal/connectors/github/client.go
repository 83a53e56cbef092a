package github

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
	"github.com/nikola-miljkovic/github-browser/internal/core/ports/driven"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// userAgent identifies the client to GitHub.
const userAgent = "github-browser"

// Verify interface compliance.
var (
	_ driven.Transport         = (*Client)(nil)
	_ driven.RateLimitReporter = (*Client)(nil)
)

// Options configures a Client.
type Options struct {
	// BaseURL is the REST API root. Defaults to domain.DefaultBaseURL.
	BaseURL string

	// Token is an optional access token.
	Token string

	// Timeout bounds a single HTTP request. Defaults to DefaultTimeout.
	Timeout time.Duration

	// RequestsPerSecond is the proactive throttle rate. Defaults to DefaultRate.
	RequestsPerSecond float64
}

// Client wraps the go-github client for search requests.
type Client struct {
	gh          *gh.Client
	rateLimiter *RateLimiter
}

// NewClient creates a GitHub API client.
// The context is only used to build the oauth2 HTTP client.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	baseURL, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var httpClient *http.Client
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: opts.Token},
		)
		httpClient = oauth2.NewClient(ctx, ts)
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = timeout

	client := gh.NewClient(httpClient)
	client.BaseURL = baseURL
	client.UserAgent = userAgent

	return &Client{
		gh:          client,
		rateLimiter: NewRateLimiter(opts.RequestsPerSecond),
	}, nil
}

// parseBaseURL validates the API root and ensures the trailing slash
// go-github requires.
func parseBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		raw = domain.DefaultBaseURL
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: base url %q: %w", domain.ErrInvalidInput, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: base url %q must be http or https", domain.ErrInvalidInput, raw)
	}
	return u, nil
}

// BaseURL returns the API root the client talks to, without trailing slash.
func (c *Client) BaseURL() string {
	return strings.TrimSuffix(c.gh.BaseURL.String(), "/")
}

// Get fetches an absolute URL and returns the raw body and the next page link.
// Non-2xx responses are returned as APIError or RateLimitError.
func (c *Client) Get(ctx context.Context, rawURL string) (*driven.Response, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := c.gh.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	var body bytes.Buffer
	resp, err := c.gh.Do(ctx, req, &body)
	c.updateRateLimitFromResponse(resp)
	if err != nil {
		return nil, c.wrapError(err, "search")
	}

	return &driven.Response{
		Body:    body.Bytes(),
		NextURL: ParseNextLink(resp.Header.Get("Link")),
	}, nil
}

// SearchRateLimit returns the search quota. The call itself does not count
// against the quota.
func (c *Client) SearchRateLimit(ctx context.Context) (*domain.RateStatus, error) {
	limits, _, err := c.gh.RateLimit.Get(ctx)
	if err != nil {
		return nil, c.wrapError(err, "get rate limit")
	}
	if limits == nil || limits.Search == nil {
		return nil, ErrNoSearchLimit
	}

	status := &domain.RateStatus{
		Limit:     limits.Search.Limit,
		Remaining: limits.Search.Remaining,
		Reset:     limits.Search.Reset.Time,
	}
	c.rateLimiter.Update(*status)
	return status, nil
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// updateRateLimitFromResponse updates the rate limiter from GitHub response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   rateLimitErr.Rate.Reset.Time,
			Remaining: rateLimitErr.Rate.Remaining,
			Limit:     rateLimitErr.Rate.Limit,
			Message:   rateLimitErr.Message,
		}
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		resetAt := c.rateLimiter.now()
		if abuseErr.RetryAfter != nil {
			resetAt = resetAt.Add(*abuseErr.RetryAfter)
		}
		return &RateLimitError{
			ResetAt: resetAt,
			Message: abuseErr.Message,
		}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		apiErr := &APIError{Message: ghErr.Message}
		if ghErr.Response != nil {
			apiErr.StatusCode = ghErr.Response.StatusCode
			if ghErr.Response.Request != nil {
				apiErr.URL = ghErr.Response.Request.URL.String()
			}
		}
		return apiErr
	}

	return fmt.Errorf("%s: %w", operation, err)
}
