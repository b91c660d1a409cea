package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Praashon/devtrackr/internal/domain"
	apperrors "github.com/Praashon/devtrackr/internal/errors"
	"github.com/Praashon/devtrackr/internal/store"
)

// HabitStore holds habits in memory
type HabitStore struct {
	mu     sync.RWMutex
	habits []domain.Habit
}

// NewHabitStore creates a habit store seeded with the given habits
func NewHabitStore(initial []domain.Habit) *HabitStore {
	habits := make([]domain.Habit, 0, len(initial))
	for _, h := range initial {
		habits = append(habits, copyHabit(h))
	}
	return &HabitStore{habits: habits}
}

// List returns the user's habits
func (s *HabitStore) List(userID string) []domain.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Habit
	for _, h := range s.habits {
		if h.UserID == userID {
			out = append(out, copyHabit(h))
		}
	}
	return out
}

// Create adds a new habit with empty progress
func (s *HabitStore) Create(userID string, input store.HabitInput) domain.Habit {
	s.mu.Lock()
	defer s.mu.Unlock()

	habit := domain.Habit{
		ID:             "habit-" + uuid.New().String(),
		UserID:         userID,
		Title:          input.Title,
		Description:    input.Description,
		CreatedDate:    time.Now().Format("2006-01-02"),
		WeeklyProgress: []domain.HabitWeeklyProgress{},
	}
	s.habits = append(s.habits, habit)
	return copyHabit(habit)
}

// Update applies a partial update to a habit
func (s *HabitStore) Update(habitID string, patch store.HabitPatch) (domain.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.indexOf(habitID)
	if err != nil {
		return domain.Habit{}, err
	}
	if patch.Title != nil {
		s.habits[i].Title = *patch.Title
	}
	if patch.Description != nil {
		s.habits[i].Description = patch.Description
	}
	return copyHabit(s.habits[i]), nil
}

// Delete removes a habit
func (s *HabitStore) Delete(habitID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.indexOf(habitID)
	if err != nil {
		return err
	}
	s.habits = append(s.habits[:i], s.habits[i+1:]...)
	return nil
}

// ToggleWeek sets the habit's completion for one week, creating the
// progress entry if the week has not been recorded yet
func (s *HabitStore) ToggleWeek(habitID, weekStartDate string, completed bool) (domain.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.indexOf(habitID)
	if err != nil {
		return domain.Habit{}, err
	}
	for j := range s.habits[i].WeeklyProgress {
		if s.habits[i].WeeklyProgress[j].WeekStartDate == weekStartDate {
			s.habits[i].WeeklyProgress[j].Completed = completed
			return copyHabit(s.habits[i]), nil
		}
	}
	s.habits[i].WeeklyProgress = append(s.habits[i].WeeklyProgress, domain.HabitWeeklyProgress{
		WeekStartDate: weekStartDate,
		Completed:     completed,
	})
	return copyHabit(s.habits[i]), nil
}

func (s *HabitStore) indexOf(habitID string) (int, error) {
	for i, h := range s.habits {
		if h.ID == habitID {
			return i, nil
		}
	}
	return 0, apperrors.NewNotFoundError("habit " + habitID)
}

func copyHabit(h domain.Habit) domain.Habit {
	out := h
	out.WeeklyProgress = make([]domain.HabitWeeklyProgress, len(h.WeeklyProgress))
	copy(out.WeeklyProgress, h.WeeklyProgress)
	return out
}
