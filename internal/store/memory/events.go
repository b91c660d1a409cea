// Package memory provides the in-memory store implementations. All data
// lives in process memory and resets on restart; every store guards its
// collection with a mutex and returns copies, never internal slices.
package memory

import (
	"sync"

	"github.com/Praashon/devtrackr/internal/domain"
)

// EventStore holds raw activity events keyed by (user, week)
type EventStore struct {
	mu     sync.RWMutex
	events map[string][]domain.Event
}

// NewEventStore creates an empty event store
func NewEventStore() *EventStore {
	return &EventStore{
		events: make(map[string][]domain.Event),
	}
}

// EventsForWeek returns a snapshot of the events stored for a week
func (s *EventStore) EventsForWeek(userID, weekID string) []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.events[eventKey(userID, weekID)]
	out := make([]domain.Event, len(stored))
	copy(out, stored)
	return out
}

// ReplaceWeek replaces the stored events for a week with a copy of the
// given slice
func (s *EventStore) ReplaceWeek(userID, weekID string, events []domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]domain.Event, len(events))
	copy(stored, events)
	s.events[eventKey(userID, weekID)] = stored
}

func eventKey(userID, weekID string) string {
	return userID + "/" + weekID
}
