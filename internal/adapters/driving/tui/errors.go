package tui

import "errors"

// ErrMissingListService is returned when the list service is not provided.
var ErrMissingListService = errors.New("tui: list service is required")
