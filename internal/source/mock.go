package source

import (
	"context"
	"fmt"
	"time"

	"github.com/Praashon/devtrackr/internal/domain"
)

// mockEventTemplate describes one deterministic sample event relative to
// the week start
type mockEventTemplate struct {
	repoID    string
	repoName  string
	kind      domain.EventKind
	title     string
	dayOffset int
	hour      int
	minute    int
	url       string
	status    string
}

var mockEventTemplates = []mockEventTemplate{
	{"repo-001", "devtrackr-api", domain.EventKindPullRequest, "Add weekly aggregate calculation endpoint", 0, 14, 30, "https://github.com/alexmorgan/devtrackr-api/pull/142", domain.StatusMerged},
	{"repo-001", "devtrackr-api", domain.EventKindPullRequest, "Fix timezone handling in week boundaries", 1, 10, 15, "https://github.com/alexmorgan/devtrackr-api/pull/143", domain.StatusMerged},
	{"repo-001", "devtrackr-api", domain.EventKindReview, "Review: Update authentication middleware", 1, 16, 45, "https://github.com/alexmorgan/devtrackr-api/pull/140#review-12345", domain.StatusApproved},
	{"repo-002", "devtrackr-web", domain.EventKindPullRequest, "Implement dashboard weekly navigation", 2, 9, 0, "https://github.com/alexmorgan/devtrackr-web/pull/87", domain.StatusMerged},
	{"repo-002", "devtrackr-web", domain.EventKindReview, "Review: Update design tokens", 3, 13, 20, "https://github.com/alexmorgan/devtrackr-web/pull/86#review-23456", domain.StatusApproved},
	{"repo-003", "docs", domain.EventKindPullRequest, "Document weekly aggregate API endpoints", 2, 11, 30, "https://github.com/alexmorgan/docs/pull/24", domain.StatusMerged},
	{"repo-001", "devtrackr-api", domain.EventKindCommit, "Update dependencies", 4, 15, 0, "https://github.com/alexmorgan/devtrackr-api/commit/abc123", domain.StatusCommitted},
	{"repo-001", "devtrackr-api", domain.EventKindCommit, "Fix typo in README", 0, 8, 30, "https://github.com/alexmorgan/devtrackr-api/commit/def456", domain.StatusCommitted},
}

// MockSource generates deterministic sample events for development.
// The same window always yields the same events.
type MockSource struct {
	now func() time.Time
}

// NewMockSource creates a mock event source
func NewMockSource() *MockSource {
	return &MockSource{now: time.Now}
}

// EventsForWeek generates the sample events for a window. Future weeks
// have no activity yet and yield an empty slice.
func (m *MockSource) EventsForWeek(_ context.Context, _ string, window domain.WeekWindow, repos []domain.UserRepository) ([]domain.Event, error) {
	events := []domain.Event{}

	if m.now().Before(window.StartDate) {
		return events, nil
	}

	included := includedByID(repos)
	for i, tpl := range mockEventTemplates {
		if _, ok := included[tpl.repoID]; !ok {
			continue
		}
		day := window.StartDate.AddDate(0, 0, tpl.dayOffset)
		timestamp := time.Date(day.Year(), day.Month(), day.Day(), tpl.hour, tpl.minute, 0, 0, day.Location())
		events = append(events, domain.Event{
			ID:        fmt.Sprintf("evt-%03d", i+1),
			WeekID:    window.ID,
			RepoID:    tpl.repoID,
			RepoName:  tpl.repoName,
			Kind:      tpl.kind,
			Title:     tpl.title,
			Timestamp: timestamp,
			URL:       tpl.url,
			Status:    tpl.status,
		})
	}
	return events, nil
}
