package domain

import (
	"fmt"
	"time"
)

// TimestampLayout is the format the search API accepts in created: ranges
// and returns in created_at fields.
const TimestampLayout = "2006-01-02T15:04:05Z"

// TimeWindow is a creation-date range [Lower, Upper] used to filter a search.
// Windows are values: a new window is always computed, never modified.
type TimeWindow struct {
	// Lower is the earliest creation time included by the window.
	Lower time.Time

	// Upper is the latest creation time included by the window.
	Upper time.Time
}

// ComputeWindow returns the window of spanMinutes ending at upper.
// Both bounds are converted to UTC and truncated to the second.
// A non-positive span violates the caller contract and panics.
func ComputeWindow(spanMinutes int, upper time.Time) TimeWindow {
	if spanMinutes <= 0 {
		panic(fmt.Sprintf("domain: window span must be positive, got %d", spanMinutes))
	}

	upper = upper.UTC().Truncate(time.Second)
	return TimeWindow{
		Lower: upper.Add(-time.Duration(spanMinutes) * time.Minute),
		Upper: upper,
	}
}

// LowerString returns the lower bound in TimestampLayout.
func (w TimeWindow) LowerString() string {
	return w.Lower.Format(TimestampLayout)
}

// UpperString returns the upper bound in TimestampLayout.
func (w TimeWindow) UpperString() string {
	return w.Upper.Format(TimestampLayout)
}

// Span returns the width of the window.
func (w TimeWindow) Span() time.Duration {
	return w.Upper.Sub(w.Lower)
}

// String returns the window as "lower .. upper".
func (w TimeWindow) String() string {
	return w.LowerString() + " .. " + w.UpperString()
}

// ParseTimestamp parses a timestamp in the API format.
// RFC 3339 values with an offset are accepted and converted to UTC.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: timestamp %q: %w", ErrInvalidInput, s, err)
	}
	return t.UTC(), nil
}
