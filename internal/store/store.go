// Package store defines the abstract interfaces for the application's
// keyed collections. Implementations own their data behind per-operation
// locking and hand out snapshots, so the aggregation engine never observes
// shared mutable state.
package store

import "github.com/Praashon/devtrackr/internal/domain"

// ReflectionsPatch is a partial update to a review's reflections;
// nil fields are left unchanged
type ReflectionsPatch struct {
	Wins      *string `json:"wins"`
	Blockers  *string `json:"blockers"`
	NextFocus *string `json:"nextFocus"`
}

// GoalInput is the payload for creating a goal
type GoalInput struct {
	Title             string
	Description       *string
	Status            domain.GoalStatus
	TargetDate        *string
	CreatedFromReview *string
}

// GoalPatch is a partial update to a goal; nil fields are left unchanged
type GoalPatch struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Status      *domain.GoalStatus `json:"status"`
	TargetDate  *string            `json:"targetDate"`
}

// HabitInput is the payload for creating a habit
type HabitInput struct {
	Title       string
	Description *string
}

// HabitPatch is a partial update to a habit; nil fields are left unchanged
type HabitPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Events stores raw activity events per (user, week)
type Events interface {
	EventsForWeek(userID, weekID string) []domain.Event
	ReplaceWeek(userID, weekID string, events []domain.Event)
}

// Reviews stores weekly reviews and their targets
type Reviews interface {
	List(userID string) []domain.WeeklyReview
	GetByWeekID(userID, weekID string) (domain.WeeklyReview, error)
	GetOrCreate(userID string, window domain.WeekWindow, summary domain.ActivitySummary) domain.WeeklyReview
	UpdateReflections(userID, weekID string, patch ReflectionsPatch) (domain.WeeklyReview, error)
	ReplaceTargets(userID, weekID string, targets []domain.Target) (domain.WeeklyReview, error)
	AddTarget(userID, weekID, text string) (domain.WeeklyReview, error)
	RemoveTarget(userID, weekID, targetID string) (domain.WeeklyReview, error)
	ToggleTarget(userID, weekID, targetID string) (domain.WeeklyReview, error)
	Complete(userID, weekID string) (domain.WeeklyReview, error)
}

// Goals stores goal records
type Goals interface {
	List(userID string) []domain.Goal
	Create(userID string, input GoalInput) domain.Goal
	Update(goalID string, patch GoalPatch) (domain.Goal, error)
	Delete(goalID string) error
	Archive(goalID string) (domain.Goal, error)
}

// Habits stores habit records and their weekly progress
type Habits interface {
	List(userID string) []domain.Habit
	Create(userID string, input HabitInput) domain.Habit
	Update(habitID string, patch HabitPatch) (domain.Habit, error)
	Delete(habitID string) error
	ToggleWeek(habitID, weekStartDate string, completed bool) (domain.Habit, error)
}

// Repositories stores the user's registered repositories and their
// inclusion preferences
type Repositories interface {
	List(userID string) []domain.UserRepository
	Toggle(repoID string, included bool) (domain.UserRepository, error)
}

// Connections tracks the state of the GitHub connection
type Connections interface {
	Get() domain.Connection
	SetSyncing(inProgress bool)
	MarkSynced(username, syncedAt string)
}
