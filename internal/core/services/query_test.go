package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
)

func testWindow() domain.TimeWindow {
	return domain.ComputeWindow(10, time.Date(2024, time.January, 1, 0, 10, 0, 0, time.UTC))
}

func TestBuildQuery_URL(t *testing.T) {
	req := BuildQuery("https://api.github.com/", testWindow(), "", domain.SortDefault, 100)

	assert.Equal(t,
		"https://api.github.com/search/repositories"+
			"?q=created:%222024-01-01T00:00:00Z+..+2024-01-01T00:10:00Z%22&per_page=100&sort=updated",
		req.URL())
	assert.Equal(t, SearchPath, req.Path)
}

func TestBuildQuery_Language(t *testing.T) {
	t.Run("includes language clause", func(t *testing.T) {
		req := BuildQuery(testBaseURL, testWindow(), "Go", domain.SortDefault, 100)

		assert.Contains(t, req.RawQuery(), "+language:Go")
		assert.Equal(t, "q", req.Params[0].Key)
		assert.Equal(t, "created:%222024-01-01T00:00:00Z+..+2024-01-01T00:10:00Z%22+language:Go", req.Params[0].Value)
	})

	t.Run("omits language clause", func(t *testing.T) {
		req := BuildQuery(testBaseURL, testWindow(), "", domain.SortDefault, 100)

		assert.NotContains(t, req.RawQuery(), "language")
	})

	t.Run("escapes special characters", func(t *testing.T) {
		req := BuildQuery(testBaseURL, testWindow(), "C#", domain.SortDefault, 100)

		assert.Contains(t, req.RawQuery(), "+language:C%23")
	})
}

func TestBuildQuery_Sort(t *testing.T) {
	tests := []struct {
		mode domain.SortMode
		want string
	}{
		{domain.SortDefault, "sort=updated"},
		{"", "sort=updated"},
		{domain.SortStars, "sort=stars"},
		{domain.SortForks, "sort=forks"},
		{domain.SortHelpWantedIssues, "sort=help-wanted-issues"},
		{domain.SortUpdated, "sort=updated"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			req := BuildQuery(testBaseURL, testWindow(), "", tt.mode, 100)

			assert.Contains(t, req.RawQuery(), tt.want)
		})
	}
}

func TestBuildQuery_PageSize(t *testing.T) {
	req := BuildQuery(testBaseURL, testWindow(), "", domain.SortDefault, 100)

	assert.Equal(t, domain.QueryParam{Key: "per_page", Value: "100"}, req.Params[1])
	assert.Len(t, req.Params, 3)
}
