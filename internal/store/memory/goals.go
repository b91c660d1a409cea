package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Praashon/devtrackr/internal/domain"
	apperrors "github.com/Praashon/devtrackr/internal/errors"
	"github.com/Praashon/devtrackr/internal/store"
)

// GoalStore holds goals in memory
type GoalStore struct {
	mu    sync.RWMutex
	goals []domain.Goal
}

// NewGoalStore creates a goal store seeded with the given goals
func NewGoalStore(initial []domain.Goal) *GoalStore {
	goals := make([]domain.Goal, len(initial))
	copy(goals, initial)
	return &GoalStore{goals: goals}
}

// List returns the user's goals
func (s *GoalStore) List(userID string) []domain.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Goal
	for _, g := range s.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out
}

// Create adds a new goal
func (s *GoalStore) Create(userID string, input store.GoalInput) domain.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal := domain.Goal{
		ID:                "goal-" + uuid.New().String(),
		UserID:            userID,
		Title:             input.Title,
		Description:       input.Description,
		Status:            input.Status,
		TargetDate:        input.TargetDate,
		CreatedDate:       time.Now().Format("2006-01-02"),
		CreatedFromReview: input.CreatedFromReview,
	}
	s.goals = append(s.goals, goal)
	return goal
}

// Update applies a partial update to a goal. Moving a goal to completed
// stamps its completion date.
func (s *GoalStore) Update(goalID string, patch store.GoalPatch) (domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.indexOf(goalID)
	if err != nil {
		return domain.Goal{}, err
	}
	if patch.Title != nil {
		s.goals[i].Title = *patch.Title
	}
	if patch.Description != nil {
		s.goals[i].Description = patch.Description
	}
	if patch.TargetDate != nil {
		s.goals[i].TargetDate = patch.TargetDate
	}
	if patch.Status != nil {
		s.goals[i].Status = *patch.Status
		if *patch.Status == domain.GoalStatusCompleted && s.goals[i].CompletedDate == nil {
			completed := time.Now().Format("2006-01-02")
			s.goals[i].CompletedDate = &completed
		}
	}
	return s.goals[i], nil
}

// Delete removes a goal
func (s *GoalStore) Delete(goalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.indexOf(goalID)
	if err != nil {
		return err
	}
	s.goals = append(s.goals[:i], s.goals[i+1:]...)
	return nil
}

// Archive moves a goal to the archived status
func (s *GoalStore) Archive(goalID string) (domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.indexOf(goalID)
	if err != nil {
		return domain.Goal{}, err
	}
	s.goals[i].Status = domain.GoalStatusArchived
	return s.goals[i], nil
}

func (s *GoalStore) indexOf(goalID string) (int, error) {
	for i, g := range s.goals {
		if g.ID == goalID {
			return i, nil
		}
	}
	return 0, apperrors.NewNotFoundError("goal " + goalID)
}
