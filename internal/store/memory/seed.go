package memory

import (
	"time"

	"github.com/Praashon/devtrackr/internal/domain"
)

func strPtr(s string) *string { return &s }

// SeedReviews returns the development fixture reviews for a Monday-start
// user. Three consecutive completed weeks followed by an older incomplete
// one, which yields a three week streak.
func SeedReviews(userID string) []domain.WeeklyReview {
	return []domain.WeeklyReview{
		{
			ID:            "review-2025-w52",
			UserID:        userID,
			WeekID:        "week-2025-12-22",
			WeekStartDate: "2025-12-22",
			WeekEndDate:   "2025-12-28",
			Status:        domain.ReviewStatusComplete,
			CompletedAt:   strPtr("2025-12-28T18:30:00Z"),
			CreatedDate:   "2025-12-22",
			ActivitySummary: domain.ActivitySummary{
				TotalCommits:  28,
				PullRequests:  3,
				Reviews:       5,
				ReposWorkedOn: []string{"devtrackr", "api-gateway", "design-system"},
				ImpactScore:   82,
			},
			Reflections: domain.Reflections{
				Wins:      "Shipped the new authentication flow ahead of schedule. Got positive feedback from the team on code review quality. Finally debugged that elusive race condition in the API gateway.",
				Blockers:  "Spent too much time context-switching between projects. The CI pipeline was flaky and cost me 3 hours of debugging.",
				NextFocus: "Focus on completing the weekly review UI this week. Block out dedicated deep work time for the data model refactor. Set up better CI monitoring.",
			},
			Targets: []domain.Target{
				{ID: "t1", Text: "Complete Weekly Review UI component", Completed: true},
				{ID: "t2", Text: "Refactor data model layer", Completed: false},
				{ID: "t3", Text: "Set up CI monitoring dashboard", Completed: false},
			},
		},
		{
			ID:            "review-2025-w51",
			UserID:        userID,
			WeekID:        "week-2025-12-15",
			WeekStartDate: "2025-12-15",
			WeekEndDate:   "2025-12-21",
			Status:        domain.ReviewStatusComplete,
			CompletedAt:   strPtr("2025-12-21T16:45:00Z"),
			CreatedDate:   "2025-12-15",
			ActivitySummary: domain.ActivitySummary{
				TotalCommits:  35,
				PullRequests:  4,
				Reviews:       7,
				ReposWorkedOn: []string{"devtrackr", "mobile-app"},
				ImpactScore:   91,
			},
			Reflections: domain.Reflections{
				Wins:      "Had a really productive week with consistent commits. Mentored a junior dev on React patterns. Made significant progress on the mobile app redesign.",
				Blockers:  "Meeting overload on Tuesday and Wednesday disrupted flow state. Unclear requirements for the settings page delayed implementation.",
				NextFocus: "Ship authentication flow. Reduce meeting time by declining non-essential ones. Get clarification on settings requirements before starting.",
			},
			Targets: []domain.Target{
				{ID: "t4", Text: "Complete auth flow implementation", Completed: true},
				{ID: "t5", Text: "Review mobile app PR from Sarah", Completed: true},
				{ID: "t6", Text: "Document API endpoints", Completed: false},
			},
		},
		{
			ID:            "review-2025-w50",
			UserID:        userID,
			WeekID:        "week-2025-12-08",
			WeekStartDate: "2025-12-08",
			WeekEndDate:   "2025-12-14",
			Status:        domain.ReviewStatusComplete,
			CompletedAt:   strPtr("2025-12-14T20:15:00Z"),
			CreatedDate:   "2025-12-08",
			ActivitySummary: domain.ActivitySummary{
				TotalCommits:  22,
				PullRequests:  2,
				Reviews:       4,
				ReposWorkedOn: []string{"devtrackr"},
				ImpactScore:   68,
			},
			Reflections: domain.Reflections{
				Wins:      "Pushed through some difficult TypeScript type issues. Got the data fetching layer working smoothly with error handling.",
				Blockers:  "Lower energy week, maybe burned out from last sprint. Struggled with motivation mid-week.",
				NextFocus: "Take it easier but maintain consistency. Focus on small wins. Start the mobile app redesign.",
			},
			Targets: []domain.Target{
				{ID: "t7", Text: "Start mobile app redesign", Completed: true},
				{ID: "t8", Text: "Write unit tests for data layer", Completed: true},
				{ID: "t9", Text: "Plan architecture for notifications", Completed: false},
			},
		},
		{
			ID:            "review-2025-w49",
			UserID:        userID,
			WeekID:        "week-2025-12-01",
			WeekStartDate: "2025-12-01",
			WeekEndDate:   "2025-12-07",
			Status:        domain.ReviewStatusIncomplete,
			CreatedDate:   "2025-12-01",
			ActivitySummary: domain.ActivitySummary{
				TotalCommits:  18,
				PullRequests:  2,
				Reviews:       3,
				ReposWorkedOn: []string{"devtrackr", "docs"},
				ImpactScore:   55,
			},
			Targets: []domain.Target{},
		},
	}
}

// SeedGoals returns the development fixture goals
func SeedGoals(userID string) []domain.Goal {
	return []domain.Goal{
		{
			ID:            "goal-1",
			UserID:        userID,
			Title:         "Complete DevTrackr weekly review feature",
			Description:   strPtr("Ship the complete weekly review workflow with reflection prompts, activity summary, and target setting"),
			Status:        domain.GoalStatusCompleted,
			TargetDate:    strPtr("2025-12-28"),
			CreatedDate:   "2025-12-01",
			CompletedDate: strPtr("2025-12-27"),
		},
		{
			ID:                "goal-2",
			UserID:            userID,
			Title:             "Refactor data model layer",
			Description:       strPtr("Clean up the data fetching logic, add proper error handling, and improve types across all sections"),
			Status:            domain.GoalStatusActive,
			TargetDate:        strPtr("2026-01-15"),
			CreatedDate:       "2025-12-22",
			CreatedFromReview: strPtr("review-2025-w52"),
		},
		{
			ID:                "goal-3",
			UserID:            userID,
			Title:             "Set up CI monitoring dashboard",
			Description:       strPtr("Create a dashboard to track CI pipeline health and catch flaky tests early"),
			Status:            domain.GoalStatusActive,
			TargetDate:        strPtr("2026-01-31"),
			CreatedDate:       "2025-12-22",
			CreatedFromReview: strPtr("review-2025-w52"),
		},
		{
			ID:          "goal-4",
			UserID:      userID,
			Title:       "Learn Rust fundamentals",
			Description: strPtr("Complete the Rust book and build a small CLI tool to practice ownership concepts"),
			Status:      domain.GoalStatusActive,
			TargetDate:  strPtr("2026-03-01"),
			CreatedDate: "2025-12-10",
		},
		{
			ID:            "goal-5",
			UserID:        userID,
			Title:         "Migrate authentication to OAuth",
			Status:        domain.GoalStatusArchived,
			TargetDate:    strPtr("2025-11-30"),
			CreatedDate:   "2025-10-15",
			CompletedDate: strPtr("2025-11-28"),
		},
	}
}

// SeedHabits returns the development fixture habits
func SeedHabits(userID string) []domain.Habit {
	return []domain.Habit{
		{
			ID:          "habit-1",
			UserID:      userID,
			Title:       "Write tests for every PR",
			Description: strPtr("Maintain test coverage by writing unit tests for all new features and bug fixes before merging"),
			CreatedDate: "2025-11-01",
			WeeklyProgress: []domain.HabitWeeklyProgress{
				{WeekStartDate: "2025-11-04", Completed: true},
				{WeekStartDate: "2025-11-11", Completed: true},
				{WeekStartDate: "2025-11-18", Completed: false},
				{WeekStartDate: "2025-11-25", Completed: true},
				{WeekStartDate: "2025-12-02", Completed: true},
				{WeekStartDate: "2025-12-09", Completed: true},
				{WeekStartDate: "2025-12-16", Completed: true},
				{WeekStartDate: "2025-12-23", Completed: true},
				{WeekStartDate: "2025-12-30", Completed: false},
			},
		},
		{
			ID:          "habit-2",
			UserID:      userID,
			Title:       "Complete weekly review by Sunday",
			Description: strPtr("Finish the weekly review ritual every Sunday evening to maintain consistency and clarity"),
			CreatedDate: "2025-11-15",
			WeeklyProgress: []domain.HabitWeeklyProgress{
				{WeekStartDate: "2025-11-18", Completed: true},
				{WeekStartDate: "2025-11-25", Completed: false},
				{WeekStartDate: "2025-12-02", Completed: true},
				{WeekStartDate: "2025-12-09", Completed: true},
				{WeekStartDate: "2025-12-16", Completed: true},
				{WeekStartDate: "2025-12-23", Completed: true},
				{WeekStartDate: "2025-12-30", Completed: false},
			},
		},
		{
			ID:          "habit-3",
			UserID:      userID,
			Title:       "Read technical content",
			Description: strPtr("Spend time each week reading blog posts, documentation, or technical books to stay current"),
			CreatedDate: "2025-12-01",
			WeeklyProgress: []domain.HabitWeeklyProgress{
				{WeekStartDate: "2025-12-02", Completed: true},
				{WeekStartDate: "2025-12-09", Completed: false},
				{WeekStartDate: "2025-12-16", Completed: true},
				{WeekStartDate: "2025-12-23", Completed: true},
				{WeekStartDate: "2025-12-30", Completed: true},
			},
		},
		{
			ID:          "habit-4",
			UserID:      userID,
			Title:       "Code review for teammates",
			Description: strPtr("Dedicate time each week to reviewing pull requests and providing thoughtful feedback"),
			CreatedDate: "2025-10-20",
			WeeklyProgress: []domain.HabitWeeklyProgress{
				{WeekStartDate: "2025-11-04", Completed: true},
				{WeekStartDate: "2025-11-11", Completed: true},
				{WeekStartDate: "2025-11-18", Completed: true},
				{WeekStartDate: "2025-11-25", Completed: false},
				{WeekStartDate: "2025-12-02", Completed: false},
				{WeekStartDate: "2025-12-09", Completed: true},
				{WeekStartDate: "2025-12-16", Completed: true},
				{WeekStartDate: "2025-12-23", Completed: true},
				{WeekStartDate: "2025-12-30", Completed: true},
			},
		},
		{
			ID:          "habit-5",
			UserID:      userID,
			Title:       "Commit to open source",
			Description: strPtr("Make at least one contribution to an open source project each week"),
			CreatedDate: "2025-12-15",
			WeeklyProgress: []domain.HabitWeeklyProgress{
				{WeekStartDate: "2025-12-16", Completed: false},
				{WeekStartDate: "2025-12-23", Completed: true},
				{WeekStartDate: "2025-12-30", Completed: false},
			},
		},
	}
}

// SeedRepositories returns the development fixture repositories, two of
// which are excluded from aggregation
func SeedRepositories(userID string) []domain.UserRepository {
	return []domain.UserRepository{
		{ID: "user-repo-001", UserID: userID, RepoID: "repo-001", RepoName: "devtrackr-api", RepoOwner: "alexmorgan", Included: true, DefaultCategory: "core-product"},
		{ID: "user-repo-002", UserID: userID, RepoID: "repo-002", RepoName: "devtrackr-web", RepoOwner: "alexmorgan", Included: true, DefaultCategory: "core-product"},
		{ID: "user-repo-003", UserID: userID, RepoID: "repo-003", RepoName: "docs", RepoOwner: "alexmorgan", Included: true, DefaultCategory: "documentation"},
		{ID: "user-repo-004", UserID: userID, RepoID: "repo-004", RepoName: "design-system", RepoOwner: "company-org", Included: true, DefaultCategory: "external"},
		{ID: "user-repo-005", UserID: userID, RepoID: "repo-005", RepoName: "experimental-scripts", RepoOwner: "alexmorgan", Included: false, Excluded: true, DefaultCategory: "experimental"},
		{ID: "user-repo-006", UserID: userID, RepoID: "repo-006", RepoName: "legacy-app", RepoOwner: "alexmorgan", Included: false, Excluded: true, DefaultCategory: "archived"},
	}
}

// SeedConnection returns the development fixture connection state
func SeedConnection() domain.Connection {
	syncedAt := time.Now().UTC().Format(time.RFC3339)
	return domain.Connection{
		Connected:      true,
		GitHubUsername: strPtr("alexmorgan"),
		LastSyncedAt:   &syncedAt,
	}
}
