package models

import "time"

// DateLayout is the wire and storage format of reservation dates.
const DateLayout = "2006-01-02"

// DateOnly drops the time of day, keeping the calendar date of t in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween is the number of whole calendar days from start to end.
func DaysBetween(start, end time.Time) int {
	return int(DateOnly(end).Sub(DateOnly(start)).Hours() / 24)
}
