// Package holiday provides the external holiday data source contract and a
// computed US federal source. Sources are read-only and swappable; an
// absent or failing source degrades to "no holidays" rather than breaking
// the calendar view.
package holiday

import "time"

const layoutISO = "2006-01-02"

// Source maps a year to that year's holidays as ISO date -> name.
type Source interface {
	ForYear(year int) map[string]string
}

// SourceFunc adapts a plain function to a Source.
type SourceFunc func(year int) map[string]string

func (f SourceFunc) ForYear(year int) map[string]string {
	if f == nil {
		return nil
	}
	return f(year)
}

// None is the degraded source used when holiday data is unavailable.
var None = SourceFunc(func(int) map[string]string { return nil })

// Federal computes the eleven US federal holidays for a year on their
// actual calendar dates (no observed-date shifting).
type Federal struct{}

func (Federal) ForYear(year int) map[string]string {
	out := make(map[string]string, 11)
	add := func(d time.Time, name string) {
		out[d.Format(layoutISO)] = name
	}
	add(date(year, time.January, 1), "New Year's Day")
	add(nthWeekday(year, time.January, time.Monday, 3), "Martin Luther King Jr. Day")
	add(nthWeekday(year, time.February, time.Monday, 3), "Washington's Birthday")
	add(lastWeekday(year, time.May, time.Monday), "Memorial Day")
	add(date(year, time.June, 19), "Juneteenth")
	add(date(year, time.July, 4), "Independence Day")
	add(nthWeekday(year, time.September, time.Monday, 1), "Labor Day")
	add(nthWeekday(year, time.October, time.Monday, 2), "Columbus Day")
	add(date(year, time.November, 11), "Veterans Day")
	add(nthWeekday(year, time.November, time.Thursday, 4), "Thanksgiving Day")
	add(date(year, time.December, 25), "Christmas Day")
	return out
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// nthWeekday returns the nth (1-based) weekday of the month.
func nthWeekday(year int, month time.Month, day time.Weekday, n int) time.Time {
	d := date(year, month, 1)
	offset := (int(day) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset+(n-1)*7)
}

// lastWeekday returns the final weekday of the month.
func lastWeekday(year int, month time.Month, day time.Weekday) time.Time {
	d := date(year, month+1, 0) // last day of month
	offset := (int(d.Weekday()) - int(day) + 7) % 7
	return d.AddDate(0, 0, -offset)
}
