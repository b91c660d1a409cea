package domain

// DailyActivity is one calendar day of a week's distribution
type DailyActivity struct {
	Day      string `json:"day"`
	Date     string `json:"date"`
	Activity int    `json:"activity"`
}

// RepositoryStat holds per-repository counts and ranking for one week
type RepositoryStat struct {
	RepoID        string `json:"repoId"`
	RepoName      string `json:"repoName"`
	RepoOwner     string `json:"repoOwner"`
	MergedPRs     int    `json:"mergedPrs"`
	Reviews       int    `json:"reviews"`
	Commits       int    `json:"commits"`
	WeightedScore int    `json:"weightedScore"`
	ImpactRank    int    `json:"impactRank"`
}

// WeekAggregate is the derived weekly rollup: totals, insights, the 7-day
// distribution and ranked repository stats. It is recomputed from the event
// collection on every request and never persisted.
type WeekAggregate struct {
	WeekID            string           `json:"weekId"`
	UserID            string           `json:"userId"`
	TotalPRsMerged    int              `json:"totalPrsMerged"`
	TotalReviews      int              `json:"totalReviews"`
	TotalCommits      int              `json:"totalCommits"`
	WeightedScore     int              `json:"weightedScore"`
	Insights          []string         `json:"insights"`
	DailyDistribution []DailyActivity  `json:"dailyDistribution"`
	RepositoryStats   []RepositoryStat `json:"repositoryStats"`
}
