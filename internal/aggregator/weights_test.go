package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Praashon/devtrackr/internal/domain"
)

func TestWeight(t *testing.T) {
	assert.Equal(t, 10, Weight(domain.EventKindPullRequest))
	assert.Equal(t, 5, Weight(domain.EventKindReview))
	assert.Equal(t, 1, Weight(domain.EventKindCommit))
}

func TestWeightUnknownKindIsInert(t *testing.T) {
	assert.Equal(t, 0, Weight(domain.EventKind("deployment")))
	assert.Equal(t, 0, Weight(domain.EventKind("")))
}

func TestWeightedScoreAdditivity(t *testing.T) {
	events := []domain.Event{
		{Kind: domain.EventKindPullRequest},
		{Kind: domain.EventKindPullRequest},
		{Kind: domain.EventKindReview},
		{Kind: domain.EventKindReview},
		{Kind: domain.EventKindReview},
		{Kind: domain.EventKindCommit},
		{Kind: domain.EventKindCommit},
		{Kind: domain.EventKindCommit},
	}

	assert.Equal(t, 2*10+3*5+3*1, WeightedScore(events))

	// Reordering must not change the total
	reversed := make([]domain.Event, 0, len(events))
	for i := len(events) - 1; i >= 0; i-- {
		reversed = append(reversed, events[i])
	}
	assert.Equal(t, WeightedScore(events), WeightedScore(reversed))
}

func TestWeightedScoreEmpty(t *testing.T) {
	assert.Equal(t, 0, WeightedScore(nil))
}
