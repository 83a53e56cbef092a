package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
	"github.com/nikola-miljkovic/github-browser/internal/core/ports/driven"
	"github.com/nikola-miljkovic/github-browser/internal/core/ports/driving"
	"github.com/nikola-miljkovic/github-browser/internal/logger"
)

// Ensure RateLimitService implements the interface.
var _ driving.RateLimitService = (*RateLimitService)(nil)

// RateLimitService reports the search API quota.
type RateLimitService struct {
	reporter driven.RateLimitReporter
}

// NewRateLimitService creates a new rate limit service.
func NewRateLimitService(reporter driven.RateLimitReporter) *RateLimitService {
	return &RateLimitService{reporter: reporter}
}

// SearchRateLimit returns the current search quota.
func (s *RateLimitService) SearchRateLimit(ctx context.Context) (*domain.RateStatus, error) {
	if s.reporter == nil {
		return nil, errors.New("rate limit reporter not configured")
	}

	status, err := s.reporter.SearchRateLimit(ctx)
	if err != nil {
		return nil, fmt.Errorf("search rate limit: %w", err)
	}

	logger.Debug("search quota: %d/%d, resets %s", status.Remaining, status.Limit, status.Reset.Format(domain.TimestampLayout))
	return status, nil
}
