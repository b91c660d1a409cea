package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Praashon/devtrackr/internal/domain"
	apperrors "github.com/Praashon/devtrackr/internal/errors"
	"github.com/Praashon/devtrackr/internal/store"
)

// ReviewStore holds weekly reviews in memory
type ReviewStore struct {
	mu      sync.RWMutex
	reviews []domain.WeeklyReview
}

// NewReviewStore creates a review store seeded with the given reviews
func NewReviewStore(initial []domain.WeeklyReview) *ReviewStore {
	reviews := make([]domain.WeeklyReview, 0, len(initial))
	for _, r := range initial {
		reviews = append(reviews, copyReview(r))
	}
	return &ReviewStore{reviews: reviews}
}

// List returns the user's reviews sorted by week start date, most recent
// first
func (s *ReviewStore) List(userID string) []domain.WeeklyReview {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.WeeklyReview
	for _, r := range s.reviews {
		if r.UserID == userID {
			out = append(out, copyReview(r))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].WeekStartDate > out[j].WeekStartDate
	})
	return out
}

// GetByWeekID returns the user's review for the given week
func (s *ReviewStore) GetByWeekID(userID, weekID string) (domain.WeeklyReview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.reviews {
		if r.UserID == userID && r.WeekID == weekID {
			return copyReview(r), nil
		}
	}
	return domain.WeeklyReview{}, apperrors.NewNotFoundError("review for " + weekID)
}

// GetOrCreate returns the review for the window, creating an incomplete
// one if missing. An existing review gets its activity summary refreshed
// with the latest snapshot.
func (s *ReviewStore) GetOrCreate(userID string, window domain.WeekWindow, summary domain.ActivitySummary) domain.WeeklyReview {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.reviews {
		if r.UserID == userID && r.WeekID == window.ID {
			s.reviews[i].ActivitySummary = copySummary(summary)
			return copyReview(s.reviews[i])
		}
	}

	created := domain.WeeklyReview{
		ID:              "review-" + window.ID,
		UserID:          userID,
		WeekID:          window.ID,
		WeekStartDate:   window.StartDate.Format("2006-01-02"),
		WeekEndDate:     window.EndDate.Format("2006-01-02"),
		Status:          domain.ReviewStatusIncomplete,
		CreatedDate:     time.Now().Format("2006-01-02"),
		ActivitySummary: copySummary(summary),
		Targets:         []domain.Target{},
	}
	s.reviews = append(s.reviews, created)
	return copyReview(created)
}

// UpdateReflections applies a partial reflections update
func (s *ReviewStore) UpdateReflections(userID, weekID string, patch store.ReflectionsPatch) (domain.WeeklyReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.indexOf(userID, weekID)
	if err != nil {
		return domain.WeeklyReview{}, err
	}
	if patch.Wins != nil {
		s.reviews[i].Reflections.Wins = *patch.Wins
	}
	if patch.Blockers != nil {
		s.reviews[i].Reflections.Blockers = *patch.Blockers
	}
	if patch.NextFocus != nil {
		s.reviews[i].Reflections.NextFocus = *patch.NextFocus
	}
	return copyReview(s.reviews[i]), nil
}

// ReplaceTargets replaces the review's target list
func (s *ReviewStore) ReplaceTargets(userID, weekID string, targets []domain.Target) (domain.WeeklyReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.indexOf(userID, weekID)
	if err != nil {
		return domain.WeeklyReview{}, err
	}
	replaced := make([]domain.Target, len(targets))
	copy(replaced, targets)
	s.reviews[i].Targets = replaced
	return copyReview(s.reviews[i]), nil
}

// AddTarget appends a new incomplete target
func (s *ReviewStore) AddTarget(userID, weekID, text string) (domain.WeeklyReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.indexOf(userID, weekID)
	if err != nil {
		return domain.WeeklyReview{}, err
	}
	s.reviews[i].Targets = append(s.reviews[i].Targets, domain.Target{
		ID:   "target-" + uuid.New().String(),
		Text: text,
	})
	return copyReview(s.reviews[i]), nil
}

// RemoveTarget deletes a target by ID
func (s *ReviewStore) RemoveTarget(userID, weekID, targetID string) (domain.WeeklyReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.indexOf(userID, weekID)
	if err != nil {
		return domain.WeeklyReview{}, err
	}
	kept := s.reviews[i].Targets[:0]
	for _, target := range s.reviews[i].Targets {
		if target.ID != targetID {
			kept = append(kept, target)
		}
	}
	s.reviews[i].Targets = kept
	return copyReview(s.reviews[i]), nil
}

// ToggleTarget flips a target's completion flag
func (s *ReviewStore) ToggleTarget(userID, weekID, targetID string) (domain.WeeklyReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.indexOf(userID, weekID)
	if err != nil {
		return domain.WeeklyReview{}, err
	}
	for j := range s.reviews[i].Targets {
		if s.reviews[i].Targets[j].ID == targetID {
			s.reviews[i].Targets[j].Completed = !s.reviews[i].Targets[j].Completed
			return copyReview(s.reviews[i]), nil
		}
	}
	return domain.WeeklyReview{}, apperrors.NewNotFoundError("target " + targetID)
}

// Complete marks the review complete. The review must have at least one
// non-empty reflection and at least one target.
func (s *ReviewStore) Complete(userID, weekID string) (domain.WeeklyReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.indexOf(userID, weekID)
	if err != nil {
		return domain.WeeklyReview{}, err
	}
	r := s.reviews[i]

	hasReflections := strings.TrimSpace(r.Reflections.Wins) != "" ||
		strings.TrimSpace(r.Reflections.Blockers) != "" ||
		strings.TrimSpace(r.Reflections.NextFocus) != ""
	if !hasReflections {
		return domain.WeeklyReview{}, apperrors.NewValidationError("at least one reflection is required before completing")
	}
	if len(r.Targets) == 0 {
		return domain.WeeklyReview{}, apperrors.NewValidationError("at least one target is required before completing")
	}

	completedAt := time.Now().UTC().Format(time.RFC3339)
	s.reviews[i].Status = domain.ReviewStatusComplete
	s.reviews[i].CompletedAt = &completedAt
	return copyReview(s.reviews[i]), nil
}

func (s *ReviewStore) indexOf(userID, weekID string) (int, error) {
	for i, r := range s.reviews {
		if r.UserID == userID && r.WeekID == weekID {
			return i, nil
		}
	}
	return 0, apperrors.NewNotFoundError("review for " + weekID)
}

func copyReview(r domain.WeeklyReview) domain.WeeklyReview {
	out := r
	out.Targets = make([]domain.Target, len(r.Targets))
	copy(out.Targets, r.Targets)
	out.ActivitySummary = copySummary(r.ActivitySummary)
	return out
}

func copySummary(s domain.ActivitySummary) domain.ActivitySummary {
	out := s
	out.ReposWorkedOn = make([]string, len(s.ReposWorkedOn))
	copy(out.ReposWorkedOn, s.ReposWorkedOn)
	return out
}
