package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
	"github.com/nikola-miljkovic/github-browser/internal/core/ports/driven"
)

// --- Mock implementations ---

// scriptedResponse is one canned reply of scriptedTransport.
type scriptedResponse struct {
	body string
	next string
	err  error
}

// scriptedTransport implements driven.Transport with canned replies in order.
type scriptedTransport struct {
	responses []scriptedResponse
	urls      []string
}

func (m *scriptedTransport) Get(_ context.Context, rawURL string) (*driven.Response, error) {
	m.urls = append(m.urls, rawURL)
	if len(m.urls) > len(m.responses) {
		return nil, fmt.Errorf("unexpected request %d: %s", len(m.urls), rawURL)
	}
	r := m.responses[len(m.urls)-1]
	if r.err != nil {
		return nil, r.err
	}
	return &driven.Response{Body: []byte(r.body), NextURL: r.next}, nil
}

// repoJSON renders a search item.
func repoJSON(name string, created time.Time) string {
	return fmt.Sprintf(`{"full_name":%q,"created_at":%q}`, name, created.UTC().Format(domain.TimestampLayout))
}

// pageJSON renders a search response body.
func pageJSON(total int, items ...string) string {
	return fmt.Sprintf(`{"total_count":%d,"incomplete_results":false,"items":[%s]}`, total, strings.Join(items, ","))
}

var (
	createdRangeRe = regexp.MustCompile(`created:"([^"]+) \.\. ([^"]+)"`)
	languageRe     = regexp.MustCompile(`language:(\S+)`)
)

// fakeRepo is one repository known to searchBackend.
type fakeRepo struct {
	name     string
	language string
	created  time.Time
}

// searchBackend implements driven.Transport by evaluating the created range
// and language of the q parameter against a fixed set of repositories.
// Matches are ordered by reversed name, which is unrelated to creation
// order, and returned pageSize at a time with a next link while more remain.
type searchBackend struct {
	repos    []fakeRepo
	pageSize int
	urls     []string
}

// newSearchBackend creates count repositories, one every interval before
// newest, named repo-001 (newest) upwards.
func newSearchBackend(newest time.Time, interval time.Duration, count, pageSize int) *searchBackend {
	b := &searchBackend{pageSize: pageSize}
	for i := 1; i <= count; i++ {
		b.repos = append(b.repos, fakeRepo{
			name:     fmt.Sprintf("owner/repo-%03d", i),
			language: "Go",
			created:  newest.Add(-time.Duration(i-1) * interval),
		})
	}
	return b
}

func (b *searchBackend) Get(_ context.Context, rawURL string) (*driven.Response, error) {
	b.urls = append(b.urls, rawURL)

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	values, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return nil, err
	}

	m := createdRangeRe.FindStringSubmatch(values.Get("q"))
	if m == nil {
		return &driven.Response{Body: []byte(`{"message":"Validation Failed"}`)}, nil
	}
	lower, err := time.Parse(time.RFC3339, m[1])
	if err != nil {
		return nil, err
	}
	upper, err := time.Parse(time.RFC3339, m[2])
	if err != nil {
		return nil, err
	}
	var language string
	if lm := languageRe.FindStringSubmatch(values.Get("q")); lm != nil {
		language = lm[1]
	}

	var matched []fakeRepo
	for _, r := range b.repos {
		if r.created.Before(lower) || r.created.After(upper) {
			continue
		}
		if language != "" && !strings.EqualFold(language, r.language) {
			continue
		}
		matched = append(matched, r)
	}
	sort.Slice(matched, func(i, j int) bool {
		return reverse(matched[i].name) < reverse(matched[j].name)
	})

	page := 1
	if p := values.Get("page"); p != "" {
		if page, err = strconv.Atoi(p); err != nil {
			return nil, err
		}
	}
	start := min((page-1)*b.pageSize, len(matched))
	end := min(start+b.pageSize, len(matched))

	items := make([]string, 0, end-start)
	for _, r := range matched[start:end] {
		items = append(items, repoJSON(r.name, r.created))
	}

	var next string
	if end < len(matched) {
		base, _, _ := strings.Cut(rawURL, "&page=")
		next = base + "&page=" + strconv.Itoa(page+1)
	}

	return &driven.Response{Body: []byte(pageJSON(len(matched), items...)), NextURL: next}, nil
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// mockRateLimitReporter implements driven.RateLimitReporter for testing.
type mockRateLimitReporter struct {
	status *domain.RateStatus
	err    error
}

func (m *mockRateLimitReporter) SearchRateLimit(_ context.Context) (*domain.RateStatus, error) {
	return m.status, m.err
}

// decodeNames returns the full names of items in order.
func decodeNames(items []domain.RepositoryItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.FullName)
	}
	return names
}

var errTransport = errors.New("connection reset")
