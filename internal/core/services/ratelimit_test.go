package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
)

func TestRateLimitService_SearchRateLimit(t *testing.T) {
	status := &domain.RateStatus{Limit: 30, Remaining: 12, Reset: time.Date(2024, 1, 1, 0, 1, 0, 0, time.UTC)}
	service := NewRateLimitService(&mockRateLimitReporter{status: status})

	got, err := service.SearchRateLimit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, status, got)
}

func TestRateLimitService_Error(t *testing.T) {
	service := NewRateLimitService(&mockRateLimitReporter{err: domain.ErrRateLimited})

	_, err := service.SearchRateLimit(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRateLimited))
	assert.Contains(t, err.Error(), "search rate limit")
}

func TestRateLimitService_NoReporter(t *testing.T) {
	service := NewRateLimitService(nil)

	_, err := service.SearchRateLimit(context.Background())

	assert.EqualError(t, err, "rate limit reporter not configured")
}
