package aggregator

import (
	"math"
	"sort"
	"time"

	"github.com/Praashon/devtrackr/internal/domain"
)

// CurrentStreak counts the consecutive most-recent weeks with a completed
// weekly review. The walk starts at the most recent completed review and
// stops at the first gap larger than one calendar week.
func CurrentStreak(reviews []domain.WeeklyReview) int {
	var completed []domain.WeeklyReview
	for _, r := range reviews {
		if r.Status == domain.ReviewStatusComplete {
			completed = append(completed, r)
		}
	}
	if len(completed) == 0 {
		return 0
	}

	// ISO dates sort lexicographically in chronological order
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].WeekStartDate > completed[j].WeekStartDate
	})

	streak := 1
	for i := 1; i < len(completed); i++ {
		previous, err := time.Parse(dateLayout, completed[i-1].WeekStartDate)
		if err != nil {
			break
		}
		current, err := time.Parse(dateLayout, completed[i].WeekStartDate)
		if err != nil {
			break
		}
		weeksBetween := int(math.Round(previous.Sub(current).Hours() / (24 * 7)))
		if weeksBetween != 1 {
			break
		}
		streak++
	}

	return streak
}
