// Package calweek computes the Monday-first week layout of a month,
// extended so weeks overlapping adjacent months carry the real calendar
// dates of the spillover days. Date-keyed entries on those days stay
// addressable when the month view changes.
package calweek

import "time"

// DaysPerWeek is always seven; named to keep the grid math readable.
const DaysPerWeek = 7

// Week is seven consecutive dates starting on a Monday.
type Week [DaysPerWeek]time.Time

// Contains reports whether d falls inside the week.
func (w Week) Contains(d time.Time) bool {
	d = Midnight(d)
	return !d.Before(w[0]) && !d.After(w[DaysPerWeek-1])
}

// Midnight truncates a time to its calendar date in UTC. All grid math is
// done on UTC midnights so DST shifts cannot split a week.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Date builds a UTC midnight from calendar components.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// startOfWeek returns the Monday on or before d.
func startOfWeek(d time.Time) time.Time {
	d = Midnight(d)
	offset := (int(d.Weekday()) + 6) % 7 // Monday == 0
	return d.AddDate(0, 0, -offset)
}

// DaysIn reports the number of days in the month.
func DaysIn(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

// WeeksOf returns the ordered extended weeks of the month (4-6 of them).
// Every slot holds a real date; the first and last weeks may reach into the
// adjacent months.
func WeeksOf(year int, month time.Month) []Week {
	first := Date(year, month, 1)
	last := Date(year, month, DaysIn(year, month))

	weeks := make([]Week, 0, 6)
	for monday := startOfWeek(first); !monday.After(last); monday = monday.AddDate(0, 0, DaysPerWeek) {
		var w Week
		for i := 0; i < DaysPerWeek; i++ {
			w[i] = monday.AddDate(0, 0, i)
		}
		weeks = append(weeks, w)
	}
	return weeks
}

// WeekIndexOf locates the week of the (year, month) grid containing d, or
// -1 when d is not visible in that grid. Callers resolving a date that may
// sit in another month should pass that date's own year and month.
func WeekIndexOf(year int, month time.Month, d time.Time) int {
	for i, w := range WeeksOf(year, month) {
		if w.Contains(d) {
			return i
		}
	}
	return -1
}

// PrevMonth and NextMonth step the month cursor with year carry.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
