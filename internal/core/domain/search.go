package domain

import (
	"strings"
	"time"
)

const unknownDescription = "Unknown"

// SortMode selects how the listing is ordered.
type SortMode string

// Available sort modes.
const (
	// SortDefault orders by creation date, newest first. The API cannot sort
	// by creation date, so results are sorted locally.
	SortDefault SortMode = "default"

	// SortStars orders by stargazer count (API side).
	SortStars SortMode = "stars"

	// SortForks orders by fork count (API side).
	SortForks SortMode = "forks"

	// SortHelpWantedIssues orders by help-wanted issue count (API side).
	SortHelpWantedIssues SortMode = "help-wanted-issues"

	// SortUpdated orders by last update (API side).
	SortUpdated SortMode = "updated"
)

// AllSortModes returns every supported sort mode.
func AllSortModes() []SortMode {
	return []SortMode{SortDefault, SortStars, SortForks, SortHelpWantedIssues, SortUpdated}
}

// IsValid returns true if the sort mode is recognised.
func (m SortMode) IsValid() bool {
	switch m {
	case SortDefault, SortStars, SortForks, SortHelpWantedIssues, SortUpdated:
		return true
	default:
		return false
	}
}

// APIValue returns the value sent as the sort query parameter.
// Default mode maps to "updated" because "created" is not accepted.
func (m SortMode) APIValue() string {
	if m == SortDefault || m == "" {
		return string(SortUpdated)
	}
	return string(m)
}

// String returns the string representation.
func (m SortMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m SortMode) Description() string {
	switch m {
	case SortDefault:
		return "Creation date (local sort)"
	case SortStars:
		return "Stars"
	case SortForks:
		return "Forks"
	case SortHelpWantedIssues:
		return "Help-wanted issues"
	case SortUpdated:
		return "Last updated"
	default:
		return unknownDescription
	}
}

// QueryParam is a single key/value query parameter.
type QueryParam struct {
	Key   string
	Value string
}

// SearchRequest describes one search call. It is built fresh for every
// window and never modified afterwards.
type SearchRequest struct {
	// BaseURL is the API root, e.g. https://api.github.com.
	BaseURL string

	// Path is the endpoint path, e.g. /search/repositories.
	Path string

	// Params are the query parameters in order. Values are already encoded.
	Params []QueryParam
}

// RawQuery renders the parameters as key=value pairs joined by '&'.
func (r SearchRequest) RawQuery() string {
	parts := make([]string, 0, len(r.Params))
	for _, p := range r.Params {
		parts = append(parts, p.Key+"="+p.Value)
	}
	return strings.Join(parts, "&")
}

// URL returns the absolute request URL.
func (r SearchRequest) URL() string {
	u := strings.TrimSuffix(r.BaseURL, "/") + r.Path
	if q := r.RawQuery(); q != "" {
		u += "?" + q
	}
	return u
}

// SearchPolicy holds the tunable constants of the adaptive window search.
type SearchPolicy struct {
	// InitialSpan is the width of the first window, in minutes.
	InitialSpan int

	// EmptyGrowth multiplies the span when nothing was collected yet.
	EmptyGrowth int

	// Growth multiplies the span when items were collected.
	Growth int

	// MaxIterations bounds the number of requests in one run.
	MaxIterations int

	// Floor is the earliest creation time worth searching.
	Floor time.Time

	// PageSize is the per_page value; 100 is the API maximum.
	PageSize int

	// ResultCap is the most results one search can page through. A window
	// reporting more is narrowed before it is paginated. Zero disables it.
	ResultCap int
}

// DefaultSearchPolicy returns the policy used when nothing is configured.
func DefaultSearchPolicy() SearchPolicy {
	return SearchPolicy{
		InitialSpan:   10,
		EmptyGrowth:   6,
		Growth:        3,
		MaxIterations: 64,
		Floor:         time.Date(2007, time.October, 1, 0, 0, 0, 0, time.UTC),
		PageSize:      100,
		ResultCap:     1000,
	}
}

// ListOptions are the inputs of one listing run.
type ListOptions struct {
	// Count is the number of repositories requested (N).
	Count int `json:"count" validate:"gt=0"`

	// Language optionally restricts results to one language.
	Language string `json:"language,omitempty" validate:"omitempty,max=64"`

	// Sort selects the ordering. Empty means SortDefault.
	Sort SortMode `json:"sort,omitempty" validate:"omitempty,oneof=default stars forks help-wanted-issues updated"`

	// Until is the upper bound of the first window. Zero means now.
	Until time.Time `json:"until,omitempty"`
}

// ListResult is the outcome of one listing run.
type ListResult struct {
	// Items are the repositories, at most Count of them.
	Items []RepositoryItem

	// TotalCount is the sum of total_count over every searched window.
	TotalCount int

	// Requests is the number of API calls made.
	Requests int

	// Windows are the windows searched, in order.
	Windows []TimeWindow

	// Degraded is true when fewer than Count items could be reached.
	Degraded bool
}
