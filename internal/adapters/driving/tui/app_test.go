package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikola-miljkovic/github-browser/internal/adapters/driving/tui/messages"
	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleResult() *domain.ListResult {
	created := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	return &domain.ListResult{
		Items: []domain.RepositoryItem{
			{FullName: "octo/newest", CreatedAt: created, HTMLURL: "https://github.com/octo/newest"},
			{FullName: "octo/older", CreatedAt: created.Add(-time.Minute)},
		},
		TotalCount: 2,
		Requests:   3,
		Windows:    make([]domain.TimeWindow, 2),
	}
}

func newTestApp(t *testing.T, svc *mockListService, rl *mockRateLimitService) *App {
	t.Helper()
	ports := &Ports{List: svc}
	if rl != nil {
		ports.RateLimit = rl
	}
	app, err := NewApp(ports, domain.ListOptions{Count: 2, Language: "go"}, time.UTC)
	require.NoError(t, err)
	return app
}

// complete feeds a finished listing into the app.
func complete(t *testing.T, app *App, opts domain.ListOptions, result *domain.ListResult, err error) {
	t.Helper()
	_, _ = app.Update(messages.ListCompleted{Options: opts, Result: result, Err: err})
}

func TestNewApp(t *testing.T) {
	t.Run("requires list service", func(t *testing.T) {
		app, err := NewApp(&Ports{}, domain.ListOptions{Count: 1}, nil)
		require.Error(t, err)
		assert.Nil(t, app)
		assert.ErrorIs(t, err, ErrMissingListService)
	})

	t.Run("starts loading", func(t *testing.T) {
		app := newTestApp(t, &mockListService{}, nil)

		assert.True(t, app.Loading())
		assert.Equal(t, 2, app.Options().Count)
		assert.NotNil(t, app.Init())
	})
}

func TestApp_WithContext(t *testing.T) {
	app := newTestApp(t, &mockListService{}, nil)
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "x")

	assert.Same(t, app, app.WithContext(ctx))
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_ListCmdCallsService(t *testing.T) {
	svc := &mockListService{result: sampleResult()}
	app := newTestApp(t, svc, nil)

	msg := app.listCmd(app.Options())()

	completed, ok := msg.(messages.ListCompleted)
	require.True(t, ok)
	require.NoError(t, completed.Err)
	assert.Len(t, completed.Result.Items, 2)
	require.Len(t, svc.opts, 1)
	assert.Equal(t, domain.ListOptions{Count: 2, Language: "go"}, svc.opts[0])
}

func TestApp_ListCompleted(t *testing.T) {
	app := newTestApp(t, &mockListService{}, nil)

	complete(t, app, app.Options(), sampleResult(), nil)

	assert.False(t, app.Loading())
	assert.NoError(t, app.Err())
	assert.Equal(t, 2, app.List().Count())

	view := app.View()
	assert.Contains(t, view, "2 most recently created repositories in go")
	assert.Contains(t, view, "octo/newest")
	assert.Contains(t, view, "octo/older")
	assert.Contains(t, view, "3 requests, 2 windows")
}

func TestApp_ListFailed(t *testing.T) {
	app := newTestApp(t, &mockListService{}, nil)

	complete(t, app, app.Options(), nil, &domain.APIError{Message: "API rate limit exceeded"})

	assert.False(t, app.Loading())
	require.Error(t, app.Err())
	view := app.View()
	assert.Contains(t, view, "API rate limit exceeded")
	assert.Contains(t, view, "Press r to retry.")
}

func TestApp_LoadingView(t *testing.T) {
	app := newTestApp(t, &mockListService{}, nil)

	assert.Contains(t, app.View(), "Searching for recently created repositories...")
}

func TestApp_DegradedStatus(t *testing.T) {
	app := newTestApp(t, &mockListService{}, nil)
	result := sampleResult()
	result.Items = result.Items[:1]
	result.Degraded = true

	complete(t, app, app.Options(), result, nil)

	assert.Contains(t, app.View(), "only 1 found")
}

func TestApp_RateLimitLoaded(t *testing.T) {
	rl := &mockRateLimitService{status: &domain.RateStatus{Limit: 30, Remaining: 27}}
	app := newTestApp(t, &mockListService{}, rl)

	msg := app.rateLimitCmd()()
	_, _ = app.Update(msg)
	complete(t, app, app.Options(), sampleResult(), nil)

	assert.Contains(t, app.View(), "quota 27/30")
}

func TestApp_RateLimitCmdWithoutService(t *testing.T) {
	app := newTestApp(t, &mockListService{}, nil)

	assert.Nil(t, app.rateLimitCmd())
}

func TestApp_RateLimitErrorIgnored(t *testing.T) {
	app := newTestApp(t, &mockListService{}, nil)

	_, _ = app.Update(messages.RateLimitLoaded{Err: errors.New("offline")})

	assert.Nil(t, app.quota)
}

func TestApp_Navigation(t *testing.T) {
	app := newTestApp(t, &mockListService{}, nil)
	complete(t, app, app.Options(), sampleResult(), nil)

	_, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, app.List().Selected())

	_, _ = app.Update(keyRunes("k"))
	assert.Equal(t, 0, app.List().Selected())
}

func TestApp_NavigationIgnoredWhileLoading(t *testing.T) {
	app := newTestApp(t, &mockListService{}, nil)
	app.List().SetRepos(sampleResult().Items)

	_, _ = app.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, 0, app.List().Selected())
}

func TestApp_Details(t *testing.T) {
	app := newTestApp(t, &mockListService{}, nil)
	complete(t, app, app.Options(), sampleResult(), nil)

	_, _ = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, app.View(), "https://github.com/octo/newest")

	_, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotContains(t, app.View(), "https://github.com/octo/newest")
}

func TestApp_More(t *testing.T) {
	svc := &mockListService{result: sampleResult()}
	app := newTestApp(t, svc, nil)
	complete(t, app, app.Options(), sampleResult(), nil)

	_, cmd := app.Update(keyRunes("+"))

	require.NotNil(t, cmd)
	assert.True(t, app.Loading())

	msg := app.listCmd(domain.ListOptions{Count: 4, Language: "go"})()
	_, _ = app.Update(msg)
	assert.Equal(t, 4, app.Options().Count)
	assert.False(t, app.Loading())
}

func TestApp_MoreStopsAtMax(t *testing.T) {
	app := newTestApp(t, &mockListService{}, nil)
	complete(t, app, domain.ListOptions{Count: MaxCount}, sampleResult(), nil)

	_, cmd := app.Update(keyRunes("+"))

	assert.Nil(t, cmd)
	assert.False(t, app.Loading())
}

func TestApp_Refresh(t *testing.T) {
	app := newTestApp(t, &mockListService{}, nil)
	complete(t, app, app.Options(), nil, errors.New("boom"))

	_, cmd := app.Update(keyRunes("r"))

	require.NotNil(t, cmd)
	assert.True(t, app.Loading())
	assert.NoError(t, app.Err())
}

func TestApp_Quit(t *testing.T) {
	app := newTestApp(t, &mockListService{}, nil)

	_, cmd := app.Update(keyRunes("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_HelpToggle(t *testing.T) {
	app := newTestApp(t, &mockListService{}, nil)
	complete(t, app, app.Options(), sampleResult(), nil)

	short := app.View()
	_, _ = app.Update(keyRunes("?"))
	full := app.View()

	assert.NotContains(t, short, "refresh")
	assert.Contains(t, full, "refresh")
}

func TestApp_WindowSize(t *testing.T) {
	app := newTestApp(t, &mockListService{}, nil)

	_, cmd := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Nil(t, cmd)
	assert.Equal(t, 120, app.width)
	assert.Equal(t, 40, app.height)
	assert.Equal(t, 36, app.listHeight())
}
