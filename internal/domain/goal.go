package domain

// GoalStatus represents the lifecycle state of a goal
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusArchived  GoalStatus = "archived"
)

// Goal is a longer-term objective, optionally created from a weekly review
type Goal struct {
	ID                string     `json:"id"`
	UserID            string     `json:"userId"`
	Title             string     `json:"title"`
	Description       *string    `json:"description"`
	Status            GoalStatus `json:"status"`
	TargetDate        *string    `json:"targetDate"`
	CreatedDate       string     `json:"createdDate"`
	CompletedDate     *string    `json:"completedDate"`
	CreatedFromReview *string    `json:"createdFromReview"`
}

// HabitWeeklyProgress records whether a habit was kept for one week
type HabitWeeklyProgress struct {
	WeekStartDate string `json:"weekStartDate"`
	Completed     bool   `json:"completed"`
}

// Habit is a recurring weekly practice with per-week completion history
type Habit struct {
	ID             string                `json:"id"`
	UserID         string                `json:"userId"`
	Title          string                `json:"title"`
	Description    *string               `json:"description"`
	CreatedDate    string                `json:"createdDate"`
	WeeklyProgress []HabitWeeklyProgress `json:"weeklyProgress"`
}
