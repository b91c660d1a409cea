package aggregator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Praashon/devtrackr/internal/domain"
)

func weekEvents(t *testing.T, window domain.WeekWindow) []domain.Event {
	t.Helper()
	day := func(offset int, hour int) time.Time {
		return window.StartDate.AddDate(0, 0, offset).Add(time.Duration(hour) * time.Hour)
	}
	return []domain.Event{
		{ID: "e1", RepoID: "repo-1", RepoName: "devtrackr-api", Kind: domain.EventKindPullRequest, Status: domain.StatusMerged, Timestamp: day(0, 14)},
		{ID: "e2", RepoID: "repo-1", RepoName: "devtrackr-api", Kind: domain.EventKindPullRequest, Status: domain.StatusMerged, Timestamp: day(1, 10)},
		{ID: "e3", RepoID: "repo-1", RepoName: "devtrackr-api", Kind: domain.EventKindReview, Status: domain.StatusApproved, Timestamp: day(1, 16)},
		{ID: "e4", RepoID: "repo-1", RepoName: "devtrackr-api", Kind: domain.EventKindReview, Status: domain.StatusApproved, Timestamp: day(2, 9)},
		{ID: "e5", RepoID: "repo-1", RepoName: "devtrackr-api", Kind: domain.EventKindReview, Status: domain.StatusApproved, Timestamp: day(3, 13)},
		{ID: "e6", RepoID: "repo-1", RepoName: "devtrackr-api", Kind: domain.EventKindCommit, Status: domain.StatusCommitted, Timestamp: day(0, 8)},
		{ID: "e7", RepoID: "repo-1", RepoName: "devtrackr-api", Kind: domain.EventKindCommit, Status: domain.StatusCommitted, Timestamp: day(2, 15)},
		{ID: "e8", RepoID: "repo-1", RepoName: "devtrackr-api", Kind: domain.EventKindCommit, Status: domain.StatusCommitted, Timestamp: day(4, 11)},
	}
}

func TestComputeWeekAggregateSingleRepo(t *testing.T) {
	window := testWindow(t, "2025-12-22")
	events := weekEvents(t, window)

	agg := ComputeWeekAggregate(window.ID, "dev-user-1", events, window)

	// 2 merged PRs, 3 reviews, 3 commits: 2x10 + 3x5 + 3x1 = 38
	assert.Equal(t, 2, agg.TotalPRsMerged)
	assert.Equal(t, 3, agg.TotalReviews)
	assert.Equal(t, 3, agg.TotalCommits)
	assert.Equal(t, 38, agg.WeightedScore)

	require.Len(t, agg.RepositoryStats, 1)
	assert.Equal(t, 1, agg.RepositoryStats[0].ImpactRank)
	assert.Equal(t, 38, agg.RepositoryStats[0].WeightedScore)

	require.Len(t, agg.DailyDistribution, 7)
	total := 0
	for _, d := range agg.DailyDistribution {
		total += d.Activity
	}
	assert.Equal(t, 38, total)

	// Single repo holds 100% of a non-zero score
	require.NotEmpty(t, agg.Insights)
	assert.Equal(t, "Primary focus: devtrackr-api (100% of weighted activity)", agg.Insights[0])
	assert.LessOrEqual(t, len(agg.Insights), 3)
}

func TestComputeWeekAggregateEmpty(t *testing.T) {
	window := testWindow(t, "2025-12-22")

	agg := ComputeWeekAggregate(window.ID, "dev-user-1", nil, window)

	assert.Equal(t, 0, agg.TotalPRsMerged)
	assert.Equal(t, 0, agg.TotalReviews)
	assert.Equal(t, 0, agg.TotalCommits)
	assert.Equal(t, 0, agg.WeightedScore)
	assert.Empty(t, agg.Insights)
	assert.NotNil(t, agg.Insights)
	assert.Empty(t, agg.RepositoryStats)
	require.Len(t, agg.DailyDistribution, 7)
	for _, d := range agg.DailyDistribution {
		assert.Equal(t, 0, d.Activity)
	}
}

func TestComputeWeekAggregateUnknownKindsTolerated(t *testing.T) {
	window := testWindow(t, "2025-12-22")
	events := []domain.Event{
		{ID: "e1", RepoID: "repo-1", RepoName: "core", Kind: domain.EventKind("deployment"), Timestamp: window.StartDate.Add(10 * time.Hour)},
		{ID: "e2", RepoID: "repo-1", RepoName: "core", Kind: domain.EventKindCommit, Status: domain.StatusCommitted, Timestamp: window.StartDate.Add(12 * time.Hour)},
	}

	agg := ComputeWeekAggregate(window.ID, "dev-user-1", events, window)

	assert.Equal(t, 1, agg.TotalCommits)
	assert.Equal(t, 1, agg.WeightedScore)
	require.Len(t, agg.RepositoryStats, 1)
	assert.Equal(t, 1, agg.RepositoryStats[0].WeightedScore)
}

func TestActivitySummaryFrom(t *testing.T) {
	window := testWindow(t, "2025-12-22")
	agg := ComputeWeekAggregate(window.ID, "dev-user-1", weekEvents(t, window), window)

	summary := ActivitySummaryFrom(agg)

	assert.Equal(t, 3, summary.TotalCommits)
	assert.Equal(t, 2, summary.PullRequests)
	assert.Equal(t, 3, summary.Reviews)
	assert.Equal(t, []string{"devtrackr-api"}, summary.ReposWorkedOn)
	assert.Equal(t, 38, summary.ImpactScore)
}
