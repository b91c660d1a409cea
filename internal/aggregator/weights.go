// Package aggregator implements the weekly activity aggregation engine:
// event weighting, daily distribution, repository rollups, insight
// heuristics and review streaks. Every function is a pure, synchronous
// computation over the inputs it is given.
package aggregator

import "github.com/Praashon/devtrackr/internal/domain"

// Impact weights per event kind: PR=10, Review=5, Commit=1
var weights = map[domain.EventKind]int{
	domain.EventKindPullRequest: 10,
	domain.EventKindReview:      5,
	domain.EventKindCommit:      1,
}

// Weight returns the impact weight for an event kind. Unknown kinds weigh
// zero so that forward-compatible kinds never corrupt aggregates.
func Weight(kind domain.EventKind) int {
	return weights[kind]
}

// WeightedScore sums the weights of all events
func WeightedScore(events []domain.Event) int {
	total := 0
	for _, e := range events {
		total += Weight(e.Kind)
	}
	return total
}
