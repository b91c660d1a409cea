package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Praashon/devtrackr/internal/domain"
	apperrors "github.com/Praashon/devtrackr/internal/errors"
	"github.com/Praashon/devtrackr/internal/store"
)

const testUser = "dev-user-1"

func seededReviewStore() *ReviewStore {
	return NewReviewStore(SeedReviews(testUser))
}

func windowFor(t *testing.T, start string) domain.WeekWindow {
	t.Helper()
	startDate, err := time.Parse("2006-01-02", start)
	require.NoError(t, err)
	return domain.WeekWindow{
		ID:        "week-" + start,
		StartDate: startDate,
		EndDate:   startDate.AddDate(0, 0, 6),
	}
}

func TestReviewListSortedMostRecentFirst(t *testing.T) {
	s := seededReviewStore()

	reviews := s.List(testUser)
	require.Len(t, reviews, 4)
	assert.Equal(t, "2025-12-22", reviews[0].WeekStartDate)
	assert.Equal(t, "2025-12-01", reviews[3].WeekStartDate)
}

func TestReviewListFiltersByUser(t *testing.T) {
	s := seededReviewStore()
	assert.Empty(t, s.List("someone-else"))
}

func TestReviewGetByWeekID(t *testing.T) {
	s := seededReviewStore()

	r, err := s.GetByWeekID(testUser, "week-2025-12-22")
	require.NoError(t, err)
	assert.Equal(t, "review-2025-w52", r.ID)

	_, err = s.GetByWeekID(testUser, "week-2030-01-07")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestReviewGetOrCreateCreatesIncomplete(t *testing.T) {
	s := seededReviewStore()
	window := windowFor(t, "2026-01-05")
	summary := domain.ActivitySummary{TotalCommits: 3, ReposWorkedOn: []string{"devtrackr-api"}, ImpactScore: 13}

	r := s.GetOrCreate(testUser, window, summary)
	assert.Equal(t, "review-week-2026-01-05", r.ID)
	assert.Equal(t, domain.ReviewStatusIncomplete, r.Status)
	assert.Equal(t, "2026-01-05", r.WeekStartDate)
	assert.Equal(t, "2026-01-11", r.WeekEndDate)
	assert.Equal(t, summary, r.ActivitySummary)
	assert.NotNil(t, r.Targets)
	assert.Empty(t, r.Targets)

	// Creating again returns the same review, not a duplicate
	again := s.GetOrCreate(testUser, window, summary)
	assert.Equal(t, r.ID, again.ID)
	assert.Len(t, s.List(testUser), 5)
}

func TestReviewGetOrCreateRefreshesSummary(t *testing.T) {
	s := seededReviewStore()
	window := windowFor(t, "2025-12-22")
	fresh := domain.ActivitySummary{TotalCommits: 30, PullRequests: 4, Reviews: 6, ReposWorkedOn: []string{"devtrackr"}, ImpactScore: 100}

	r := s.GetOrCreate(testUser, window, fresh)
	assert.Equal(t, "review-2025-w52", r.ID)
	assert.Equal(t, fresh, r.ActivitySummary)
	// Reflections and targets survive the refresh
	assert.NotEmpty(t, r.Reflections.Wins)
	assert.Len(t, r.Targets, 3)
}

func TestReviewUpdateReflectionsPartial(t *testing.T) {
	s := seededReviewStore()
	wins := "Landed the sync pipeline"

	r, err := s.UpdateReflections(testUser, "week-2025-12-01", store.ReflectionsPatch{Wins: &wins})
	require.NoError(t, err)
	assert.Equal(t, wins, r.Reflections.Wins)
	assert.Empty(t, r.Reflections.Blockers)
}

func TestReviewTargetLifecycle(t *testing.T) {
	s := seededReviewStore()

	r, err := s.AddTarget(testUser, "week-2025-12-01", "Ship the aggregate endpoint")
	require.NoError(t, err)
	require.Len(t, r.Targets, 1)
	targetID := r.Targets[0].ID
	assert.False(t, r.Targets[0].Completed)

	r, err = s.ToggleTarget(testUser, "week-2025-12-01", targetID)
	require.NoError(t, err)
	assert.True(t, r.Targets[0].Completed)

	r, err = s.RemoveTarget(testUser, "week-2025-12-01", targetID)
	require.NoError(t, err)
	assert.Empty(t, r.Targets)

	_, err = s.ToggleTarget(testUser, "week-2025-12-01", targetID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestReviewReplaceTargets(t *testing.T) {
	s := seededReviewStore()
	targets := []domain.Target{
		{ID: "t-a", Text: "First", Completed: true},
		{ID: "t-b", Text: "Second"},
	}

	r, err := s.ReplaceTargets(testUser, "week-2025-12-22", targets)
	require.NoError(t, err)
	assert.Equal(t, targets, r.Targets)
}

func TestReviewCompleteRequiresReflectionAndTarget(t *testing.T) {
	s := seededReviewStore()

	// The 2025-12-01 fixture has neither reflections nor targets
	_, err := s.Complete(testUser, "week-2025-12-01")
	assert.True(t, apperrors.IsValidation(err))

	wins := "Got unblocked"
	_, err = s.UpdateReflections(testUser, "week-2025-12-01", store.ReflectionsPatch{Wins: &wins})
	require.NoError(t, err)

	_, err = s.Complete(testUser, "week-2025-12-01")
	assert.True(t, apperrors.IsValidation(err))

	_, err = s.AddTarget(testUser, "week-2025-12-01", "Keep momentum")
	require.NoError(t, err)

	r, err := s.Complete(testUser, "week-2025-12-01")
	require.NoError(t, err)
	assert.Equal(t, domain.ReviewStatusComplete, r.Status)
	require.NotNil(t, r.CompletedAt)
	_, err = time.Parse(time.RFC3339, *r.CompletedAt)
	assert.NoError(t, err)
}

func TestReviewWhitespaceReflectionDoesNotCount(t *testing.T) {
	s := seededReviewStore()
	blank := "   "

	_, err := s.UpdateReflections(testUser, "week-2025-12-01", store.ReflectionsPatch{Wins: &blank})
	require.NoError(t, err)
	_, err = s.AddTarget(testUser, "week-2025-12-01", "Something")
	require.NoError(t, err)

	_, err = s.Complete(testUser, "week-2025-12-01")
	assert.True(t, apperrors.IsValidation(err))
}

func TestReviewSnapshotsAreIsolated(t *testing.T) {
	s := seededReviewStore()

	r, err := s.GetByWeekID(testUser, "week-2025-12-22")
	require.NoError(t, err)
	r.Targets[0].Text = "mutated"
	r.ActivitySummary.ReposWorkedOn[0] = "mutated"

	fresh, err := s.GetByWeekID(testUser, "week-2025-12-22")
	require.NoError(t, err)
	assert.Equal(t, "Complete Weekly Review UI component", fresh.Targets[0].Text)
	assert.Equal(t, "devtrackr", fresh.ActivitySummary.ReposWorkedOn[0])
}
