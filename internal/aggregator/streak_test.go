package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Praashon/devtrackr/internal/domain"
)

func review(weekStart string, status domain.ReviewStatus) domain.WeeklyReview {
	return domain.WeeklyReview{WeekStartDate: weekStart, Status: status}
}

func TestCurrentStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, CurrentStreak(nil))
	assert.Equal(t, 0, CurrentStreak([]domain.WeeklyReview{}))
}

func TestCurrentStreakAllIncomplete(t *testing.T) {
	reviews := []domain.WeeklyReview{
		review("2025-12-22", domain.ReviewStatusIncomplete),
		review("2025-12-15", domain.ReviewStatusIncomplete),
	}
	assert.Equal(t, 0, CurrentStreak(reviews))
}

func TestCurrentStreakConsecutiveWeeks(t *testing.T) {
	reviews := []domain.WeeklyReview{
		review("2025-12-22", domain.ReviewStatusComplete),
		review("2025-12-15", domain.ReviewStatusComplete),
		review("2025-12-08", domain.ReviewStatusComplete),
		review("2025-12-01", domain.ReviewStatusIncomplete),
	}
	assert.Equal(t, 3, CurrentStreak(reviews))
}

func TestCurrentStreakBrokenByGap(t *testing.T) {
	reviews := []domain.WeeklyReview{
		review("2025-12-22", domain.ReviewStatusComplete),
		review("2025-12-08", domain.ReviewStatusComplete), // two weeks back
		review("2025-12-01", domain.ReviewStatusComplete),
	}
	assert.Equal(t, 1, CurrentStreak(reviews))
}

func TestCurrentStreakSingleComplete(t *testing.T) {
	reviews := []domain.WeeklyReview{
		review("2025-12-22", domain.ReviewStatusComplete),
	}
	assert.Equal(t, 1, CurrentStreak(reviews))
}

func TestCurrentStreakUnsortedInput(t *testing.T) {
	reviews := []domain.WeeklyReview{
		review("2025-12-08", domain.ReviewStatusComplete),
		review("2025-12-22", domain.ReviewStatusComplete),
		review("2025-12-15", domain.ReviewStatusComplete),
	}
	assert.Equal(t, 3, CurrentStreak(reviews))
}

func TestCurrentStreakIgnoresIncompleteInBetween(t *testing.T) {
	// An incomplete review is filtered out before the walk, so it breaks
	// the chain by leaving a two-week gap between completed neighbors
	reviews := []domain.WeeklyReview{
		review("2025-12-22", domain.ReviewStatusComplete),
		review("2025-12-15", domain.ReviewStatusIncomplete),
		review("2025-12-08", domain.ReviewStatusComplete),
	}
	assert.Equal(t, 1, CurrentStreak(reviews))
}
