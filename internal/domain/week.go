package domain

import "time"

// WeekStart represents the user's week-start convention
type WeekStart string

const (
	WeekStartSunday WeekStart = "sunday"
	WeekStartMonday WeekStart = "monday"
)

// Weekday returns the time.Weekday the convention starts on
func (w WeekStart) Weekday() time.Weekday {
	if w == WeekStartSunday {
		return time.Sunday
	}
	return time.Monday
}

// Valid reports whether the convention is one of the supported values
func (w WeekStart) Valid() bool {
	return w == WeekStartSunday || w == WeekStartMonday
}

// WeekStatus represents whether a week has started yet.
// A week is "open" when its start date is today or in the past;
// a week entirely in the future is "closed". This polarity is a fixed
// contract carried over from the original product behavior.
type WeekStatus string

const (
	WeekStatusOpen   WeekStatus = "open"
	WeekStatusClosed WeekStatus = "closed"
)

// WeekWindow is the canonical 7-day window for a reference date, timezone
// and week-start convention. StartDate and EndDate are local midnights in
// the target timezone; EndDate is always exactly 6 days after StartDate.
// ID is derived from the local calendar date of the start, so every instant
// within the same local week yields the same ID.
type WeekWindow struct {
	ID        string    `json:"weekId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Week is the presentation wrapper around a week window
type Week struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	StartDate string     `json:"startDate"`
	EndDate   string     `json:"endDate"`
	Status    WeekStatus `json:"status"`
	LockedAt  *string    `json:"lockedAt"`
}
