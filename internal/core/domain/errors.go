package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAPIFailure indicates the search API returned an error payload
	// instead of results.
	ErrAPIFailure = errors.New("api failure")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)

// APIError is an error payload returned by the search API.
// It carries the API's own message text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return "api error: " + e.Message
}

// Unwrap lets errors.Is match ErrAPIFailure.
func (e *APIError) Unwrap() error {
	return ErrAPIFailure
}

// IsAPIFailure reports whether err ends the run because of the API:
// an error payload or an exhausted rate limit.
func IsAPIFailure(err error) bool {
	return errors.Is(err, ErrAPIFailure) || errors.Is(err, ErrRateLimited)
}
