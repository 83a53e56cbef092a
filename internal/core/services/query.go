package services

import (
	"net/url"
	"strconv"

	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
)

// SearchPath is the repository search endpoint.
const SearchPath = "/search/repositories"

// BuildQuery builds the search request for one window.
//
// The window is encoded as created:"<lower> .. <upper>" with the quotes
// percent-encoded and '+' standing for the spaces. The language clause is
// appended only when language is set. SortDefault is sent as "updated"
// because the API cannot sort by creation date.
func BuildQuery(
	baseURL string, window domain.TimeWindow, language string, sort domain.SortMode, perPage int,
) domain.SearchRequest {
	q := "created:%22" + window.LowerString() + "+..+" + window.UpperString() + "%22"
	if language != "" {
		q += "+language:" + url.QueryEscape(language)
	}

	return domain.SearchRequest{
		BaseURL: baseURL,
		Path:    SearchPath,
		Params: []domain.QueryParam{
			{Key: "q", Value: q},
			{Key: "per_page", Value: strconv.Itoa(perPage)},
			{Key: "sort", Value: sort.APIValue()},
		},
	}
}
