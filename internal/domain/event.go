package domain

import "time"

// EventKind represents the kind of developer activity event
type EventKind string

const (
	EventKindPullRequest EventKind = "pull_request"
	EventKindReview      EventKind = "review"
	EventKindCommit      EventKind = "commit"
)

// Event statuses as reported by the activity source
const (
	StatusMerged    = "merged"
	StatusApproved  = "approved"
	StatusCommitted = "committed"
)

// Event represents a single unit of developer activity within a week.
// Events are produced by an event source and are read-only to the
// aggregation engine.
type Event struct {
	ID        string    `json:"id"`
	WeekID    string    `json:"weekId"`
	RepoID    string    `json:"repoId"`
	RepoName  string    `json:"repoName"`
	Kind      EventKind `json:"eventType"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"date"`
	URL       string    `json:"url"`
	Status    string    `json:"status"`
}

// IsMergedPR reports whether the event is a merged pull request
func (e *Event) IsMergedPR() bool {
	return e.Kind == EventKindPullRequest && e.Status == StatusMerged
}
