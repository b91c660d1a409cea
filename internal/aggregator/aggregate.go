package aggregator

import (
	"sort"

	"github.com/Praashon/devtrackr/internal/domain"
)

// ComputeWeekAggregate derives the full weekly rollup from a week's events:
// totals, weighted score, ranked repository stats, the 7-day distribution
// and insights. An empty event list produces a zero-valued aggregate with
// 7 zero-activity days and no insights.
func ComputeWeekAggregate(weekID, userID string, events []domain.Event, window domain.WeekWindow) domain.WeekAggregate {
	totalPRsMerged := 0
	totalReviews := 0
	totalCommits := 0
	for _, e := range events {
		switch e.Kind {
		case domain.EventKindPullRequest:
			if e.Status == domain.StatusMerged {
				totalPRsMerged++
			}
		case domain.EventKindReview:
			totalReviews++
		case domain.EventKindCommit:
			totalCommits++
		}
	}

	repoStats := RepositoryStats(events)
	daily := DailyDistribution(events, window)
	insights := Insights(repoStats, daily, totalPRsMerged, totalReviews)

	return domain.WeekAggregate{
		WeekID:            weekID,
		UserID:            userID,
		TotalPRsMerged:    totalPRsMerged,
		TotalReviews:      totalReviews,
		TotalCommits:      totalCommits,
		WeightedScore:     WeightedScore(events),
		Insights:          insights,
		DailyDistribution: daily,
		RepositoryStats:   repoStats,
	}
}

// ActivitySummaryFrom condenses a week aggregate into the snapshot shape
// attached to weekly reviews
func ActivitySummaryFrom(agg domain.WeekAggregate) domain.ActivitySummary {
	repos := make([]string, 0, len(agg.RepositoryStats))
	for _, s := range agg.RepositoryStats {
		repos = append(repos, s.RepoName)
	}
	sort.Strings(repos)

	return domain.ActivitySummary{
		TotalCommits:  agg.TotalCommits,
		PullRequests:  agg.TotalPRsMerged,
		Reviews:       agg.TotalReviews,
		ReposWorkedOn: repos,
		ImpactScore:   agg.WeightedScore,
	}
}
