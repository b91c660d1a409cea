// Package week implements timezone-correct calendar week boundary
// calculation, navigation and status checks.
package week

import (
	"strings"
	"time"

	"github.com/Praashon/devtrackr/internal/domain"
	apperrors "github.com/Praashon/devtrackr/internal/errors"
)

const (
	// IDPrefix is the literal tag week identifiers start with
	IDPrefix = "week-"

	dateLayout = "2006-01-02"
)

// Calculate returns the canonical week window containing the reference
// instant. The instant is converted to local wall-clock time in the given
// timezone; the window starts at local midnight of the most recent
// occurrence of the configured start-of-week day and ends 6 days later.
// The window ID is derived from the local calendar date of the start, so
// any instant within the same local week yields the same ID.
func Calculate(ref time.Time, timezone string, startsOn domain.WeekStart) (domain.WeekWindow, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return domain.WeekWindow{}, apperrors.NewConfigurationError("invalid timezone: "+timezone, err)
	}

	local := ref.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	back := (int(day.Weekday()) - int(startsOn.Weekday()) + 7) % 7
	start := day.AddDate(0, 0, -back)
	end := start.AddDate(0, 0, 6)

	return domain.WeekWindow{
		ID:        IDPrefix + start.Format(dateLayout),
		StartDate: start,
		EndDate:   end,
	}, nil
}

// Previous returns the week window immediately before the given one
func Previous(w domain.WeekWindow, timezone string, startsOn domain.WeekStart) (domain.WeekWindow, error) {
	return Calculate(w.StartDate.AddDate(0, 0, -7), timezone, startsOn)
}

// Next returns the week window immediately after the given one
func Next(w domain.WeekWindow, timezone string, startsOn domain.WeekStart) (domain.WeekWindow, error) {
	return Calculate(w.StartDate.AddDate(0, 0, 7), timezone, startsOn)
}

// FromID resolves a week identifier back into the window it encodes.
// The start date embedded in the ID is interpreted in the given timezone.
func FromID(weekID, timezone string, startsOn domain.WeekStart) (domain.WeekWindow, error) {
	raw, ok := strings.CutPrefix(weekID, IDPrefix)
	if !ok {
		return domain.WeekWindow{}, apperrors.NewNotFoundError("week " + weekID)
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return domain.WeekWindow{}, apperrors.NewConfigurationError("invalid timezone: "+timezone, err)
	}
	start, err := time.ParseInLocation(dateLayout, raw, loc)
	if err != nil {
		return domain.WeekWindow{}, apperrors.NewNotFoundError("week " + weekID)
	}
	return Calculate(start, timezone, startsOn)
}

// Status reports whether a week is open or closed. A week is open when its
// start date is today's local date or earlier; a week entirely in the
// future is closed. The polarity is deliberate and matches the product's
// established contract.
func Status(startDate, timezone string) (domain.WeekStatus, error) {
	return StatusAt(startDate, timezone, time.Now())
}

// StatusAt is Status evaluated against an explicit reference instant
func StatusAt(startDate, timezone string, now time.Time) (domain.WeekStatus, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return "", apperrors.NewConfigurationError("invalid timezone: "+timezone, err)
	}
	start, err := time.ParseInLocation(dateLayout, startDate, loc)
	if err != nil {
		return "", apperrors.NewValidationError("invalid week start date: " + startDate)
	}

	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	if start.After(today) {
		return domain.WeekStatusClosed, nil
	}
	return domain.WeekStatusOpen, nil
}

// IsDateInWeek reports whether a calendar date falls within the window
func IsDateInWeek(date string, w domain.WeekWindow) bool {
	d, err := time.ParseInLocation(dateLayout, date, w.StartDate.Location())
	if err != nil {
		return false
	}
	return !d.Before(w.StartDate) && !d.After(w.EndDate)
}
