package source

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Praashon/devtrackr/internal/domain"
)

func mockWindow(start string) domain.WeekWindow {
	startDate, _ := time.Parse("2006-01-02", start)
	return domain.WeekWindow{
		ID:        "week-" + start,
		StartDate: startDate,
		EndDate:   startDate.AddDate(0, 0, 6),
	}
}

func includedRepos() []domain.UserRepository {
	return []domain.UserRepository{
		{RepoID: "repo-001", RepoName: "devtrackr-api", Included: true},
		{RepoID: "repo-002", RepoName: "devtrackr-web", Included: true},
		{RepoID: "repo-003", RepoName: "docs", Included: true},
	}
}

func TestMockSourceDeterministic(t *testing.T) {
	s := NewMockSource()
	window := mockWindow("2025-12-22")

	first, err := s.EventsForWeek(context.Background(), "dev-user-1", window, includedRepos())
	require.NoError(t, err)
	second, err := s.EventsForWeek(context.Background(), "dev-user-1", window, includedRepos())
	require.NoError(t, err)

	require.Len(t, first, 8)
	assert.Equal(t, first, second)
}

func TestMockSourceFutureWeekIsEmpty(t *testing.T) {
	s := NewMockSource()
	s.now = func() time.Time { return time.Date(2025, 12, 22, 12, 0, 0, 0, time.UTC) }
	window := mockWindow("2026-06-01")

	events, err := s.EventsForWeek(context.Background(), "dev-user-1", window, includedRepos())
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestMockSourceEventsStayInsideWindow(t *testing.T) {
	s := NewMockSource()
	window := mockWindow("2025-12-22")

	events, err := s.EventsForWeek(context.Background(), "dev-user-1", window, includedRepos())
	require.NoError(t, err)

	end := window.StartDate.AddDate(0, 0, 7)
	for _, e := range events {
		assert.False(t, e.Timestamp.Before(window.StartDate), "event %s before window", e.ID)
		assert.True(t, e.Timestamp.Before(end), "event %s after window", e.ID)
		assert.Equal(t, window.ID, e.WeekID)
	}
}

func TestMockSourceFiltersExcludedRepos(t *testing.T) {
	s := NewMockSource()
	window := mockWindow("2025-12-22")
	repos := []domain.UserRepository{
		{RepoID: "repo-001", RepoName: "devtrackr-api", Included: true},
		{RepoID: "repo-002", RepoName: "devtrackr-web", Included: false, Excluded: true},
		{RepoID: "repo-003", RepoName: "docs", Included: false, Excluded: true},
	}

	events, err := s.EventsForWeek(context.Background(), "dev-user-1", window, repos)
	require.NoError(t, err)
	require.Len(t, events, 5)
	for _, e := range events {
		assert.Equal(t, "repo-001", e.RepoID)
	}
}
