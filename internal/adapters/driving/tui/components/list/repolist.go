// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nikola-miljkovic/github-browser/internal/adapters/driving/tui/styles"
	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
)

// dateLayout formats creation dates in list rows.
const dateLayout = "2006-01-02 15:04:05"

// RepoList displays repositories in a navigable list, one per row.
type RepoList struct {
	repos    []domain.RepositoryItem
	selected int
	styles   *styles.Styles
	loc      *time.Location
	width    int
	height   int
}

// NewRepoList creates a new repository list component.
// A nil location shows dates in UTC.
func NewRepoList(s *styles.Styles, loc *time.Location) *RepoList {
	if s == nil {
		s = styles.NewStyles(nil)
	}
	if loc == nil {
		loc = time.UTC
	}

	return &RepoList{
		styles: s,
		loc:    loc,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (r *RepoList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *RepoList) Update(msg tea.Msg) (*RepoList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		case "home", "g":
			r.SetSelected(0)
		case "end", "G":
			r.SetSelected(len(r.repos) - 1)
		}
	}
	return r, nil
}

// View renders the visible rows.
func (r *RepoList) View() string {
	if len(r.repos) == 0 {
		return r.styles.Muted("No repositories")
	}

	lines := make([]string, 0, len(r.repos)+2)
	lines = append(lines, r.styles.Subtitle(fmt.Sprintf("Repositories (%d)", len(r.repos))), "")

	start, end := r.visibleRange()
	for i := start; i < end; i++ {
		lines = append(lines, r.renderRow(i))
	}

	return strings.Join(lines, "\n")
}

// visibleRange returns the rows that fit the height, keeping the
// selection in view.
func (r *RepoList) visibleRange() (int, int) {
	// Two lines are taken by the header.
	visible := max(r.height-2, 1)

	start := 0
	if r.selected >= visible {
		start = r.selected - visible + 1
	}
	end := min(start+visible, len(r.repos))
	return start, end
}

func (r *RepoList) renderRow(index int) string {
	repo := r.repos[index]

	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	date := repo.CreatedAt.In(r.loc).Format(dateLayout)
	nameWidth := max(r.width-len(date)-12, 10)
	name := truncate(repo.FullName, nameWidth)

	row := fmt.Sprintf("%s%-4s %-*s  %s", indicator, fmt.Sprintf("#%d", index), nameWidth, name, date)
	if index == r.selected {
		return r.styles.Selected(row)
	}
	return row
}

// Details renders the selected repository's fields for the detail pane.
func (r *RepoList) Details() string {
	repo := r.SelectedRepo()
	if repo == nil {
		return ""
	}

	lines := []string{
		r.styles.Title(repo.FullName),
		r.styles.Label("Created:     ") + repo.CreatedAt.In(r.loc).Format(dateLayout),
	}
	if repo.HTMLURL != "" {
		lines = append(lines, r.styles.Label("URL:         ")+repo.HTMLURL)
	}
	if repo.Language != "" {
		lines = append(lines, r.styles.Label("Language:    ")+repo.Language)
	}
	lines = append(lines, r.styles.Label("Stars:       ")+fmt.Sprintf("%d", repo.Stars))
	if repo.Description != "" {
		lines = append(lines, "", truncate(repo.Description, max(r.width-2, 20)))
	}
	return strings.Join(lines, "\n")
}

// SetRepos replaces the list contents and resets the selection.
func (r *RepoList) SetRepos(repos []domain.RepositoryItem) {
	r.repos = repos
	r.selected = 0
}

// Repos returns the current repositories.
func (r *RepoList) Repos() []domain.RepositoryItem {
	return r.repos
}

// Selected returns the index of the selected repository.
func (r *RepoList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index. Out of range values are ignored.
func (r *RepoList) SetSelected(index int) {
	if index >= 0 && index < len(r.repos) {
		r.selected = index
	}
}

// SelectedRepo returns the selected repository, or nil if none.
func (r *RepoList) SelectedRepo() *domain.RepositoryItem {
	if len(r.repos) == 0 || r.selected < 0 || r.selected >= len(r.repos) {
		return nil
	}
	return &r.repos[r.selected]
}

// MoveUp moves selection up.
func (r *RepoList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *RepoList) MoveDown() {
	if r.selected < len(r.repos)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *RepoList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of repositories.
func (r *RepoList) Count() int {
	return len(r.repos)
}

// IsEmpty returns whether the list is empty.
func (r *RepoList) IsEmpty() bool {
	return len(r.repos) == 0
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
