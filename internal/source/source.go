// Package source provides activity event sources. A source produces the
// raw events for one user and one week window; the aggregation engine
// never talks to GitHub directly.
package source

import (
	"context"

	"github.com/Praashon/devtrackr/internal/domain"
)

// Source produces the activity events for a week window. Only events
// belonging to the included repositories are returned.
type Source interface {
	EventsForWeek(ctx context.Context, userID string, window domain.WeekWindow, repos []domain.UserRepository) ([]domain.Event, error)
}

// includedByID builds a lookup of the repositories that participate in
// aggregation
func includedByID(repos []domain.UserRepository) map[string]domain.UserRepository {
	included := make(map[string]domain.UserRepository, len(repos))
	for _, r := range repos {
		if r.Included && !r.Excluded {
			included[r.RepoID] = r
		}
	}
	return included
}
