package aggregator

import (
	"github.com/Praashon/devtrackr/internal/domain"
)

const dateLayout = "2006-01-02"

// DailyDistribution buckets events into the 7 calendar days of the window
// and sums weighted activity per day. The result always has exactly 7
// entries covering consecutive dates from the window start, in order.
// Day labels are derived from each bucket's actual weekday, so the first
// label is Sun for Sunday-start weeks and Mon for Monday-start weeks.
// Events dated outside the window are dropped; supplying only in-window
// events is the caller's contract.
func DailyDistribution(events []domain.Event, window domain.WeekWindow) []domain.DailyActivity {
	loc := window.StartDate.Location()

	buckets := make([]domain.DailyActivity, 7)
	index := make(map[string]int, 7)
	for i := 0; i < 7; i++ {
		date := window.StartDate.AddDate(0, 0, i)
		key := date.Format(dateLayout)
		buckets[i] = domain.DailyActivity{
			Day:  date.Format("Mon"),
			Date: key,
		}
		index[key] = i
	}

	for _, e := range events {
		key := e.Timestamp.In(loc).Format(dateLayout)
		if i, ok := index[key]; ok {
			buckets[i].Activity += Weight(e.Kind)
		}
	}

	return buckets
}
