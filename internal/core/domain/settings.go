package domain

import (
	"fmt"
	"time"
)

// DefaultBaseURL is the public GitHub REST API root.
const DefaultBaseURL = "https://api.github.com/"

// AppSettings holds all application configuration.
type AppSettings struct {
	GitHub GitHubSettings
	Search SearchSettings
	Output OutputSettings
}

// GitHubSettings configures the API client.
type GitHubSettings struct {
	// BaseURL is the REST API root. GitHub Enterprise uses https://host/api/v3/.
	BaseURL string

	// Token is an optional access token. Unauthenticated search is limited
	// to 10 requests per minute.
	Token string

	// Timeout bounds a single HTTP request.
	Timeout time.Duration

	// RequestsPerSecond is the proactive throttle rate.
	RequestsPerSecond float64
}

// HasToken returns true if a token is configured.
func (g GitHubSettings) HasToken() bool {
	return g.Token != ""
}

// SearchSettings configures the adaptive window search.
type SearchSettings struct {
	InitialSpanMinutes int
	EmptyGrowth        int
	Growth             int
	MaxIterations      int
}

// Policy converts the settings into a SearchPolicy.
func (s SearchSettings) Policy() SearchPolicy {
	p := DefaultSearchPolicy()
	p.InitialSpan = s.InitialSpanMinutes
	p.EmptyGrowth = s.EmptyGrowth
	p.Growth = s.Growth
	p.MaxIterations = s.MaxIterations
	return p
}

// OutputSettings configures text rendering.
type OutputSettings struct {
	// Timezone is an IANA zone name, "Local" or "UTC".
	Timezone string
}

// Location resolves Timezone.
func (o OutputSettings) Location() (*time.Location, error) {
	if o.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %w", ErrInvalidInput, o.Timezone, err)
	}
	return loc, nil
}

// DefaultAppSettings returns sensible defaults.
func DefaultAppSettings() AppSettings {
	policy := DefaultSearchPolicy()
	return AppSettings{
		GitHub: GitHubSettings{
			BaseURL:           DefaultBaseURL,
			Timeout:           30 * time.Second,
			RequestsPerSecond: 0.5,
		},
		Search: SearchSettings{
			InitialSpanMinutes: policy.InitialSpan,
			EmptyGrowth:        policy.EmptyGrowth,
			Growth:             policy.Growth,
			MaxIterations:      policy.MaxIterations,
		},
		Output: OutputSettings{
			Timezone: "Local",
		},
	}
}

// Validate checks the settings for values the search cannot work with.
func (s AppSettings) Validate() error {
	if s.GitHub.BaseURL == "" {
		return fmt.Errorf("%w: github.base_url is empty", ErrInvalidInput)
	}
	if s.GitHub.Timeout <= 0 {
		return fmt.Errorf("%w: github.timeout_seconds must be positive", ErrInvalidInput)
	}
	if s.GitHub.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: github.requests_per_second must be positive", ErrInvalidInput)
	}
	if s.Search.InitialSpanMinutes <= 0 {
		return fmt.Errorf("%w: search.initial_span_minutes must be positive", ErrInvalidInput)
	}
	if s.Search.EmptyGrowth < 2 || s.Search.Growth < 2 {
		return fmt.Errorf("%w: search growth factors must be at least 2", ErrInvalidInput)
	}
	if s.Search.MaxIterations <= 0 {
		return fmt.Errorf("%w: search.max_iterations must be positive", ErrInvalidInput)
	}
	if _, err := s.Output.Location(); err != nil {
		return err
	}
	return nil
}

// RateStatus is the search API quota as reported by GitHub.
type RateStatus struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// Exhausted returns true if no requests remain before Reset at now.
func (r RateStatus) Exhausted(now time.Time) bool {
	return r.Remaining <= 0 && now.Before(r.Reset)
}
