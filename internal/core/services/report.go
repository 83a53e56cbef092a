package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
	"github.com/nikola-miljkovic/github-browser/internal/core/ports/driving"
)

const (
	reportHeader    = "Total entries found: %d"
	reportSeparator = "----------------------------------------"

	// ReportTimeLayout formats creation dates in extended output.
	ReportTimeLayout = "2006-01-02 15:04:05"
)

// Report renders a listing as text. The text is computed on first use and
// cached.
type Report struct {
	items    []domain.RepositoryItem
	extended bool
	loc      *time.Location

	once sync.Once
	text string
}

// NewReport creates a report. A nil location means UTC.
func NewReport(items []domain.RepositoryItem, extended bool, loc *time.Location) *Report {
	if loc == nil {
		loc = time.UTC
	}
	return &Report{items: items, extended: extended, loc: loc}
}

// Len returns the number of repositories in the report.
func (r *Report) Len() int {
	return len(r.items)
}

// String returns the header, a separator and one line per repository:
// the full name, or "#idx", full name and creation date when extended.
func (r *Report) String() string {
	r.once.Do(func() {
		lines := make([]string, 0, len(r.items))
		for idx, item := range r.items {
			if r.extended {
				lines = append(lines, fmt.Sprintf("#%d\t\t\t%s\t\t\t\t\t\t%s",
					idx, item.FullName, item.CreatedAt.In(r.loc).Format(ReportTimeLayout)))
			} else {
				lines = append(lines, item.FullName)
			}
		}

		var b strings.Builder
		fmt.Fprintf(&b, reportHeader, len(r.items))
		b.WriteString("\n")
		b.WriteString(reportSeparator)
		b.WriteString("\n")
		b.WriteString(strings.Join(lines, "\n"))
		r.text = b.String()
	})
	return r.text
}

// Ensure ReportFormatter implements the interface.
var _ driving.Formatter = (*ReportFormatter)(nil)

// ReportFormatter renders reports with creation dates in a fixed location.
type ReportFormatter struct {
	loc *time.Location
}

// NewReportFormatter creates a formatter. A nil location means UTC.
func NewReportFormatter(loc *time.Location) *ReportFormatter {
	return &ReportFormatter{loc: loc}
}

// Format renders items as a Report.
func (f *ReportFormatter) Format(items []domain.RepositoryItem, extended bool) string {
	return NewReport(items, extended, f.loc).String()
}
