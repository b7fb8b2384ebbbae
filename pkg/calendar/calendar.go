// Package calendar holds the shared date arithmetic for duty and task views.
// Every screen compares calendar days through these helpers so the rules only
// exist once.
package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const layoutISO = "2006-01-02"

var isoDatePattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)

// fallback layouts tried when the input is not a plain YYYY-MM-DD date.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// MalformedDateError reports a date string that failed every parse strategy.
type MalformedDateError struct {
	Value string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date %q", e.Value)
}

// Midnight strips the time-of-day in the local zone, producing a calendar-day
// key that is safe to compare with Equal, Before and After.
func Midnight(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// ParseLocalDate parses a YYYY-MM-DD string into a local midnight value.
//
// Plain dates are constructed from the explicit year/month/day components
// rather than fed through a date-time parser; parsing "2024-01-09" as UTC and
// converting would land on January 8 in any zone behind UTC. Anything else
// falls back to the generic layouts, normalized to local midnight.
func ParseLocalDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if m := isoDatePattern.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
		}
		return time.Time{}, &MalformedDateError{Value: s}
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Midnight(t), nil
		}
	}
	return time.Time{}, &MalformedDateError{Value: s}
}

// FormatDate renders a calendar day back to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Local().Format(layoutISO)
}

// SameDay reports whether two moments fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return Midnight(a).Equal(Midnight(b))
}

// SameMonth reports whether two moments fall in the same local month and year.
func SameMonth(a, b time.Time) bool {
	a = a.Local()
	b = b.Local()
	return a.Month() == b.Month() && a.Year() == b.Year()
}

// ShiftDuration computes the length of a shift between two HH:mm clock
// values, rendered with one decimal place. A shift that ends numerically
// before it starts is treated as crossing midnight, so the result is always
// in [0, 24). Missing or malformed inputs yield "0.0".
func ShiftDuration(start, end string) string {
	startH, startM, ok := parseClock(start)
	if !ok {
		return "0.0"
	}
	endH, endM, ok := parseClock(end)
	if !ok {
		return "0.0"
	}

	hours := endH - startH
	minutes := endM - startM
	if minutes < 0 {
		minutes += 60
		hours--
	}
	if hours < 0 {
		hours += 24
	}
	return fmt.Sprintf("%.1f", float64(hours)+float64(minutes)/60)
}

func parseClock(s string) (hour, minute int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, false
	}
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
