package mcp

import (
	"context"
	"strings"

	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
)

// mockListService is a mock implementation of driving.ListService.
type mockListService struct {
	result *domain.ListResult
	err    error
	opts   []domain.ListOptions
}

func (m *mockListService) List(_ context.Context, opts domain.ListOptions) (*domain.ListResult, error) {
	m.opts = append(m.opts, opts)
	if m.err != nil {
		return nil, m.err
	}
	if m.result == nil {
		return &domain.ListResult{}, nil
	}
	return m.result, nil
}

// mockFormatter is a mock implementation of driving.Formatter.
// It joins full names and marks extended output.
type mockFormatter struct{}

func (mockFormatter) Format(items []domain.RepositoryItem, extended bool) string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.FullName)
	}
	out := strings.Join(names, ",")
	if extended {
		out = "extended:" + out
	}
	return out
}

// mockRateLimitService is a mock implementation of driving.RateLimitService.
type mockRateLimitService struct {
	status *domain.RateStatus
	err    error
}

func (m *mockRateLimitService) SearchRateLimit(_ context.Context) (*domain.RateStatus, error) {
	return m.status, m.err
}
