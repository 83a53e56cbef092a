package tui

import (
	"context"
	"sync"

	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
)

// mockListService is a mock implementation of driving.ListService.
type mockListService struct {
	mu     sync.Mutex
	result *domain.ListResult
	err    error
	opts   []domain.ListOptions
}

func (m *mockListService) List(_ context.Context, opts domain.ListOptions) (*domain.ListResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opts = append(m.opts, opts)
	if m.err != nil {
		return nil, m.err
	}
	if m.result == nil {
		return &domain.ListResult{}, nil
	}
	return m.result, nil
}

// mockRateLimitService is a mock implementation of driving.RateLimitService.
type mockRateLimitService struct {
	status *domain.RateStatus
	err    error
}

func (m *mockRateLimitService) SearchRateLimit(_ context.Context) (*domain.RateStatus, error) {
	return m.status, m.err
}
