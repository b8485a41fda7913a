package domain

import "time"

// DaySchedule is the placement result for one calendar day: the segments
// and blocked intervals whose boundaries touch that date, plus any
// conflict descriptions attributed to it.
type DaySchedule struct {
	Date      time.Time
	Scheduled []ScheduledTask
	Blocked   []TimeBlock
	Conflicts []string
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate reports whether a and b fall on the same calendar day,
// compared in a's location.
func SameDate(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
