package utils

import (
	"time"
)

// DateLayout is the calendar-date wire format used by query params and the
// daily mood series.
const DateLayout = "2006-01-02"

// CalendarDate truncates t to midnight of its calendar day in loc. Every
// piece of code that derives "the day of an activity" goes through this one
// function so the storage backends cannot disagree on date boundaries.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DateKey renders the calendar day of t in loc as YYYY-MM-DD.
func DateKey(t time.Time, loc *time.Location) string {
	return CalendarDate(t, loc).Format(DateLayout)
}

// NextDay returns midnight of the day after day. Used to turn an inclusive
// calendar-date upper bound into an exclusive timestamp bound.
func NextDay(day time.Time) time.Time {
	return day.AddDate(0, 0, 1)
}

// ParseDate parses a YYYY-MM-DD value as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, loc)
}
