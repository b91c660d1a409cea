package memory

import (
	"sync"

	"github.com/Praashon/devtrackr/internal/domain"
)

// ConnectionStore tracks the GitHub connection state in memory
type ConnectionStore struct {
	mu         sync.RWMutex
	connection domain.Connection
}

// NewConnectionStore creates a connection store with the given initial
// state
func NewConnectionStore(initial domain.Connection) *ConnectionStore {
	return &ConnectionStore{connection: initial}
}

// Get returns the current connection state
func (s *ConnectionStore) Get() domain.Connection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connection
}

// SetSyncing flips the sync-in-progress flag
func (s *ConnectionStore) SetSyncing(inProgress bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connection.SyncInProgress = inProgress
}

// MarkSynced records a completed sync
func (s *ConnectionStore) MarkSynced(username, syncedAt string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connection.Connected = true
	s.connection.GitHubUsername = &username
	s.connection.LastSyncedAt = &syncedAt
	s.connection.SyncInProgress = false
}
