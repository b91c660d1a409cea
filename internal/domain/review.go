package domain

// ReviewStatus represents the completion state of a weekly review
type ReviewStatus string

const (
	ReviewStatusComplete   ReviewStatus = "complete"
	ReviewStatusIncomplete ReviewStatus = "incomplete"
)

// ActivitySummary is the activity snapshot attached to a weekly review
type ActivitySummary struct {
	TotalCommits  int      `json:"totalCommits"`
	PullRequests  int      `json:"pullRequests"`
	Reviews       int      `json:"reviews"`
	ReposWorkedOn []string `json:"reposWorkedOn"`
	ImpactScore   int      `json:"impactScore"`
}

// Target is a single goal item set during a weekly review
type Target struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Reflections holds the three free-text review prompts
type Reflections struct {
	Wins      string `json:"wins"`
	Blockers  string `json:"blockers"`
	NextFocus string `json:"nextFocus"`
}

// WeeklyReview is one user's reflective review for a single week
type WeeklyReview struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	WeekID          string          `json:"weekId"`
	WeekStartDate   string          `json:"weekStartDate"`
	WeekEndDate     string          `json:"weekEndDate"`
	Status          ReviewStatus    `json:"status"`
	CompletedAt     *string         `json:"completedAt"`
	CreatedDate     string          `json:"createdDate"`
	ActivitySummary ActivitySummary `json:"activitySummary"`
	Reflections     Reflections     `json:"reflections"`
	Targets         []Target        `json:"targets"`
}
