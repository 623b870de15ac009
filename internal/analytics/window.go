package analytics

import (
	"math"
	"time"
)

const hoursPerDay = 24

// DurationDays returns the billed duration of an inclusive [start, end]
// interval: ceil of the elapsed days with a minimum of 1, so a same-day
// booking counts as one day.
func DurationDays(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / hoursPerDay))
	if days < 1 {
		return 1
	}
	return days
}

// elapsedDays is the raw (end - start) difference in days, ceil'd, floored at
// zero. Unlike DurationDays it has no 1-day minimum; utilization math uses it
// so a same-day booking contributes zero booked time.
func elapsedDays(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours() / hoursPerDay))
	if days < 0 {
		return 0
	}
	return days
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
