package memory

import (
	"sync"

	"github.com/Praashon/devtrackr/internal/domain"
	apperrors "github.com/Praashon/devtrackr/internal/errors"
)

// RepositoryStore holds the user's registered repositories in memory
type RepositoryStore struct {
	mu    sync.RWMutex
	repos []domain.UserRepository
}

// NewRepositoryStore creates a repository store seeded with the given
// repositories
func NewRepositoryStore(initial []domain.UserRepository) *RepositoryStore {
	repos := make([]domain.UserRepository, len(initial))
	copy(repos, initial)
	return &RepositoryStore{repos: repos}
}

// List returns the user's registered repositories
func (s *RepositoryStore) List(userID string) []domain.UserRepository {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.UserRepository
	for _, r := range s.repos {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

// Toggle flips a repository's inclusion in aggregation
func (s *RepositoryStore) Toggle(repoID string, included bool) (domain.UserRepository, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.repos {
		if s.repos[i].RepoID == repoID {
			s.repos[i].Included = included
			s.repos[i].Excluded = !included
			return s.repos[i], nil
		}
	}
	return domain.UserRepository{}, apperrors.NewNotFoundError("repository " + repoID)
}
