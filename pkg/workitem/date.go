package workitem

import (
	"encoding/json"
	"time"

	"tableflip.dev/pumpdesk/pkg/calendar"
)

// Date is a calendar-day field as the backend sends it. Decoding keeps the
// raw string and parses leniently: a record with a broken date still loads,
// it just never matches a dated filter.
type Date struct {
	Raw  string
	Time time.Time

	valid bool
}

// NewDate builds a Date from a known calendar day.
func NewDate(t time.Time) Date {
	day := calendar.Midnight(t)
	return Date{Raw: calendar.FormatDate(day), Time: day, valid: true}
}

// ParseDate builds a Date from a backend string.
func ParseDate(s string) Date {
	d := Date{Raw: s}
	if t, err := calendar.ParseLocalDate(s); err == nil {
		d.Time = t
		d.valid = true
	}
	return d
}

// Day returns the local-midnight calendar day, or a MalformedDateError when
// the raw value failed every parse strategy.
func (d Date) Day() (time.Time, error) {
	if !d.valid {
		return time.Time{}, &calendar.MalformedDateError{Value: d.Raw}
	}
	return d.Time, nil
}

func (d Date) Valid() bool {
	return d.valid
}

func (d Date) String() string {
	if d.valid {
		return calendar.FormatDate(d.Time)
	}
	return d.Raw
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*d = ParseDate(raw)
	return nil
}
