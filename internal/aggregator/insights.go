package aggregator

import (
	"fmt"
	"math"

	"github.com/Praashon/devtrackr/internal/domain"
)

const maxInsights = 3

// Insights derives up to 3 natural-language observations from a week's
// rollups. The four heuristics are evaluated in fixed priority order and
// independently gated; the final list is truncated to 3 entries.
func Insights(repoStats []domain.RepositoryStat, daily []domain.DailyActivity, totalPRsMerged, totalReviews int) []string {
	insights := []string{}

	// Dominant repository: top-ranked repo holding more than 40% of the
	// total weighted score. Skipped when the total score is zero.
	if len(repoStats) > 0 && repoStats[0].WeightedScore > 0 {
		totalScore := 0
		for _, s := range repoStats {
			totalScore += s.WeightedScore
		}
		percentage := int(math.Round(float64(repoStats[0].WeightedScore) / float64(totalScore) * 100))
		if percentage > 40 {
			insights = append(insights, fmt.Sprintf("Primary focus: %s (%d%% of weighted activity)",
				repoStats[0].RepoName, percentage))
		}
	}

	totalActivity := 0
	for _, d := range daily {
		totalActivity += d.Activity
	}

	// Midweek concentration: the 2nd through 4th days holding more than
	// 60% of the week's activity. The day-range label follows the actual
	// weekdays at those positions rather than assuming a Monday start.
	if len(daily) == 7 && totalActivity > 0 {
		midweek := daily[1].Activity + daily[2].Activity + daily[3].Activity
		if float64(midweek)/float64(totalActivity) > 0.6 {
			insights = append(insights, fmt.Sprintf("Activity concentrated mid-week (%s-%s)",
				daily[1].Day, daily[3].Day))
		}
	}

	// Review-heavy vs PR-heavy, mutually exclusive in this order
	if totalReviews > totalPRsMerged && totalReviews > 5 {
		insights = append(insights, fmt.Sprintf("Review-heavy week: %d reviews vs %d PRs merged",
			totalReviews, totalPRsMerged))
	} else if totalPRsMerged > totalReviews && totalPRsMerged > 5 {
		insights = append(insights, fmt.Sprintf("PR-focused week: %d PRs merged vs %d reviews",
			totalPRsMerged, totalReviews))
	}

	// Weekend quietness: the last two days under 10% of the total
	if len(daily) == 7 && totalActivity > 0 {
		weekend := daily[5].Activity + daily[6].Activity
		if float64(weekend)/float64(totalActivity) < 0.1 {
			insights = append(insights, "Strong work-life balance: minimal weekend activity")
		}
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}
