package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
	"github.com/nikola-miljkovic/github-browser/internal/core/ports/driven"
	"github.com/nikola-miljkovic/github-browser/internal/core/ports/driving"
	"github.com/nikola-miljkovic/github-browser/internal/logger"
)

// Ensure ListService implements the interface.
var _ driving.ListService = (*ListService)(nil)

// searchPage is the subset of a search response the executor reads.
// Items is nil when the body has no items field, which is how the API
// signals an error payload.
type searchPage struct {
	TotalCount int                      `json:"total_count"`
	Items      *[]domain.RepositoryItem `json:"items"`
	Message    string                   `json:"message"`
}

// ListService finds the most recently created repositories.
type ListService struct {
	transport driven.Transport
	baseURL   string
	policy    domain.SearchPolicy
	now       func() time.Time
}

// NewListService creates a new list service.
func NewListService(transport driven.Transport, baseURL string, policy domain.SearchPolicy) *ListService {
	return &ListService{
		transport: transport,
		baseURL:   baseURL,
		policy:    policy,
		now:       time.Now,
	}
}

// Policy returns the search policy in use.
func (s *ListService) Policy() domain.SearchPolicy {
	return s.policy
}

// List returns up to opts.Count repositories.
//
// With SortDefault the adaptive window search runs and the result is ordered
// by creation date, newest first. Any other sort mode issues one request and
// keeps the API's order.
func (s *ListService) List(ctx context.Context, opts domain.ListOptions) (*domain.ListResult, error) {
	if err := ValidateOptions(opts); err != nil {
		return nil, err
	}
	if opts.Sort == "" {
		opts.Sort = domain.SortDefault
	}

	upper := opts.Until
	if upper.IsZero() {
		upper = s.now()
	}

	run := logger.ForRun()
	logger.Section("Repository Listing")
	run.Debug("count=%d language=%q sort=%s until=%s",
		opts.Count, opts.Language, opts.Sort, upper.UTC().Format(domain.TimestampLayout))

	if opts.Sort != domain.SortDefault {
		return s.listSorted(ctx, run, opts, upper)
	}
	return s.listByCreation(ctx, run, opts, upper)
}

// listSorted issues a single request and delegates ordering to the API.
func (s *ListService) listSorted(
	ctx context.Context, run *logger.Run, opts domain.ListOptions, upper time.Time,
) (*domain.ListResult, error) {
	window := domain.ComputeWindow(s.policy.InitialSpan, upper)
	req := BuildQuery(s.baseURL, window, opts.Language, opts.Sort, s.policy.PageSize)

	run.Debug("single request: %s", req.URL())
	page, _, err := s.fetch(ctx, req.URL())
	if err != nil {
		return nil, err
	}

	items := *page.Items
	if len(items) > opts.Count {
		items = items[:opts.Count]
	}

	return &domain.ListResult{
		Items:      items,
		TotalCount: page.TotalCount,
		Requests:   1,
		Windows:    []domain.TimeWindow{window},
	}, nil
}

// listByCreation runs the adaptive window search.
//
// Each window is drained page by page, because pages arrive in "updated"
// order and any of them may hold the newest creations. A window's
// total_count is added once. When the drained windows hold fewer than Count
// repositories the search moves backwards: the span grows by EmptyGrowth
// while nothing was found, otherwise by Growth with the upper bound anchored
// one second before the earliest creation seen. The anchor only moves
// backwards, so windows never overlap on a collected repository.
func (s *ListService) listByCreation(
	ctx context.Context, run *logger.Run, opts domain.ListOptions, upper time.Time,
) (*domain.ListResult, error) {
	policy := s.policy
	result := &domain.ListResult{}

	if !upper.After(policy.Floor) {
		run.Warn("upper bound %s is not after the floor, nothing to search", upper.UTC().Format(domain.TimestampLayout))
		result.Degraded = true
		return result, nil
	}

	var (
		items     []domain.RepositoryItem
		seen      = make(map[string]struct{})
		span      = policy.InitialSpan
		window    = clampWindow(domain.ComputeWindow(span, upper), policy.Floor)
		nextURL   = BuildQuery(s.baseURL, window, opts.Language, opts.Sort, policy.PageSize).URL()
		firstPage = true
	)
	result.Windows = append(result.Windows, window)
	run.Debug("searching window %s", window)

	for {
		if result.Requests >= policy.MaxIterations {
			run.Warn("stopping after %d requests with %d of %d repositories", result.Requests, len(items), opts.Count)
			result.Degraded = true
			break
		}

		page, next, err := s.fetch(ctx, nextURL)
		result.Requests++
		if err != nil {
			return nil, err
		}

		if firstPage {
			if policy.ResultCap > 0 && page.TotalCount > policy.ResultCap && span > 1 {
				// Pagination stops at ResultCap results.
				span = max(span/2, 1)
				window = clampWindow(domain.ComputeWindow(span, window.Upper), policy.Floor)
				nextURL = BuildQuery(s.baseURL, window, opts.Language, opts.Sort, policy.PageSize).URL()
				result.Windows = append(result.Windows, window)
				run.Debug("window held %d results, narrowing to %s", page.TotalCount, window)
				continue
			}
			result.TotalCount += page.TotalCount
			firstPage = false
		}

		for _, item := range *page.Items {
			if item.FullName != "" {
				if _, dup := seen[item.FullName]; dup {
					continue
				}
				seen[item.FullName] = struct{}{}
			}
			items = append(items, item)
		}
		run.Debug("page: %d items, total %d, collected %d", len(*page.Items), result.TotalCount, len(items))

		if next != "" {
			nextURL = next
			continue
		}

		if result.TotalCount >= opts.Count {
			break
		}

		if !window.Lower.After(policy.Floor) {
			run.Debug("window reached the floor, no older repositories to search")
			result.Degraded = true
			break
		}

		anchor := upper
		growth := policy.EmptyGrowth
		if earliest, ok := domain.EarliestCreated(items); ok {
			anchor = earliest.Add(-time.Second)
			growth = policy.Growth
		}
		if !anchor.After(policy.Floor) {
			result.Degraded = true
			break
		}

		// Never grow past the floor; repeated growth would overflow.
		span = min(span*growth, minutesUntil(policy.Floor, anchor))
		window = clampWindow(domain.ComputeWindow(span, anchor), policy.Floor)
		nextURL = BuildQuery(s.baseURL, window, opts.Language, opts.Sort, policy.PageSize).URL()
		firstPage = true
		result.Windows = append(result.Windows, window)
		run.Debug("total %d < %d, expanding to %s (span %d min)", result.TotalCount, opts.Count, window, span)
	}

	slices.SortStableFunc(items, func(a, b domain.RepositoryItem) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(items) > opts.Count {
		items = items[:opts.Count]
	}
	if len(items) < opts.Count {
		result.Degraded = true
	}
	result.Items = items

	run.Info("found %d repositories in %d requests over %d windows",
		len(result.Items), result.Requests, len(result.Windows))
	return result, nil
}

// fetch performs one request and decodes the page.
// A body without items is an API error carrying the API's message.
func (s *ListService) fetch(ctx context.Context, url string) (*searchPage, string, error) {
	resp, err := s.transport.Get(ctx, url)
	if err != nil {
		return nil, "", fmt.Errorf("search request: %w", err)
	}

	var page searchPage
	if err := json.Unmarshal(resp.Body, &page); err != nil {
		return nil, "", &domain.APIError{Message: fmt.Sprintf("decode response: %v", err)}
	}
	if page.Items == nil {
		msg := page.Message
		if msg == "" {
			msg = "response has no items"
		}
		return nil, "", &domain.APIError{Message: msg}
	}

	return &page, resp.NextURL, nil
}

// clampWindow raises the window's lower bound to floor.
func clampWindow(w domain.TimeWindow, floor time.Time) domain.TimeWindow {
	if w.Lower.Before(floor) {
		w.Lower = floor
	}
	return w
}

// minutesUntil returns the whole minutes from floor to t, at least 1.
func minutesUntil(floor, t time.Time) int {
	return max(int(t.Sub(floor)/time.Minute)+1, 1)
}
