package aggregator

import (
	"sort"
	"strings"

	"github.com/Praashon/devtrackr/internal/domain"
)

// RepositoryStats groups events by repository and computes per-repository
// counts, weighted score and a 1-based impact rank. Repositories with no
// events are omitted entirely; merging in the user's full registered
// repository list is the presentation layer's job. The sort is stable so
// tied scores keep input-relative order and repeated calls on the same
// event multiset return identical rankings.
func RepositoryStats(events []domain.Event) []domain.RepositoryStat {
	grouped := make(map[string][]domain.Event)
	var order []string
	for _, e := range events {
		if _, ok := grouped[e.RepoID]; !ok {
			order = append(order, e.RepoID)
		}
		grouped[e.RepoID] = append(grouped[e.RepoID], e)
	}

	stats := make([]domain.RepositoryStat, 0, len(order))
	for _, repoID := range order {
		evts := grouped[repoID]
		stat := domain.RepositoryStat{
			RepoID:    repoID,
			RepoName:  evts[0].RepoName,
			RepoOwner: repoOwner(evts[0].RepoName),
		}
		for _, e := range evts {
			switch e.Kind {
			case domain.EventKindPullRequest:
				if e.Status == domain.StatusMerged {
					stat.MergedPRs++
				}
			case domain.EventKindReview:
				stat.Reviews++
			case domain.EventKindCommit:
				stat.Commits++
			}
			stat.WeightedScore += Weight(e.Kind)
		}
		stats = append(stats, stat)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].WeightedScore > stats[j].WeightedScore
	})
	for i := range stats {
		stats[i].ImpactRank = i + 1
	}

	return stats
}

func repoOwner(repoName string) string {
	if owner, _, found := strings.Cut(repoName, "/"); found && owner != "" {
		return owner
	}
	if repoName == "" {
		return "unknown"
	}
	return repoName
}
