// Package datefilter decides whether a calendar day falls inside the range a
// dashboard filter selects.
package datefilter

import (
	"time"

	"tableflip.dev/pumpdesk/pkg/calendar"
)

// Mode names the range selection offered by the date filter dropdowns.
type Mode string

const (
	All    Mode = "all"
	Today  Mode = "today"
	Week   Mode = "week"
	Month  Mode = "month"
	Custom Mode = "custom"
)

// ModeForAlias maps a user-supplied label onto a Mode, defaulting to All.
func ModeForAlias(s string) Mode {
	switch Mode(s) {
	case Today, Week, Month, Custom:
		return Mode(s)
	default:
		return All
	}
}

// Range is a date filter: a mode plus, for Custom, inclusive calendar-day
// bounds. The zero value matches everything.
type Range struct {
	Mode  Mode
	Start *time.Time
	End   *time.Time
}

// Contains reports whether candidate falls inside the range relative to now.
// All comparisons happen on midnight-normalized values.
func (r Range) Contains(candidate, now time.Time) bool {
	day := calendar.Midnight(candidate)
	today := calendar.Midnight(now)

	switch r.Mode {
	case Today:
		return day.Equal(today)
	case Week:
		// Week runs Sunday through Saturday.
		weekStart := today.AddDate(0, 0, -int(today.Weekday()))
		weekEnd := weekStart.AddDate(0, 0, 6)
		return !day.Before(weekStart) && !day.After(weekEnd)
	case Month:
		return calendar.SameMonth(day, today)
	case Custom:
		// A missing bound matches everything; the UI clears one side of the
		// range while the user is still picking the other.
		if r.Start == nil || r.End == nil {
			return true
		}
		start := calendar.Midnight(*r.Start)
		end := calendar.Midnight(*r.End)
		return !day.Before(start) && !day.After(end)
	default:
		return true
	}
}

// Between builds a Custom range from two inclusive calendar days.
func Between(start, end time.Time) Range {
	s := calendar.Midnight(start)
	e := calendar.Midnight(end)
	return Range{Mode: Custom, Start: &s, End: &e}
}
