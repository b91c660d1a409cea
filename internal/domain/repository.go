package domain

// UserRepository is a repository registered against a user's dashboard,
// with inclusion/exclusion preferences for aggregation
type UserRepository struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	RepoID          string `json:"repoId"`
	RepoName        string `json:"repoName"`
	RepoOwner       string `json:"repoOwner"`
	Included        bool   `json:"included"`
	Excluded        bool   `json:"excluded"`
	DefaultCategory string `json:"defaultCategory"`
}

// Connection describes the state of the user's GitHub connection
type Connection struct {
	Connected      bool    `json:"connected"`
	GitHubUsername *string `json:"githubUsername"`
	LastSyncedAt   *string `json:"lastSyncedAt"`
	SyncInProgress bool    `json:"syncInProgress"`
}
