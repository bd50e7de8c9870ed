// Package autofill populates weekend and holiday placeholder entries for
// the visible month. The pass is idempotent and never touches rows the
// user has written real content into.
package autofill

import (
	"strings"
	"time"

	"tableflip.dev/prodsched/pkg/calweek"
	"tableflip.dev/prodsched/pkg/holiday"
	"tableflip.dev/prodsched/pkg/schedule"
)

// WeekendText is the literal placed in row 0 of Saturdays and Sundays.
const WeekendText = "Weekend"

// Fill stamps weekends and holidays into row 0 of every visible day of the
// month. User content is never overwritten: only absent, empty, or
// "Weekend" cells are touched, and holidays take precedence over the
// weekend placeholder.
func Fill(s *schedule.Store, year int, month time.Month, cal holiday.Calendar) {
	names := map[int]map[string]string{}
	holidayFor := func(d time.Time) (string, bool) {
		y := d.Year()
		if _, ok := names[y]; !ok {
			names[y] = cal.Names(y)
		}
		name, ok := names[y][d.Format("2006-01-02")]
		return name, ok
	}

	for _, week := range calweek.WeeksOf(year, month) {
		for _, d := range week {
			cur, _ := s.Get(d, 0)
			text := strings.TrimSpace(cur.Text)
			fillable := text == "" || strings.EqualFold(text, WeekendText)

			if name, ok := holidayFor(d); ok {
				if fillable || strings.EqualFold(text, name) {
					s.Set(d, 0, schedule.Entry{Text: name})
				}
				continue
			}
			if isWeekendDay(d) && fillable {
				s.Set(d, 0, schedule.Entry{Text: WeekendText})
			}
		}
	}
}

// IsFillText reports whether text is auto-fill content for the given year:
// the weekend placeholder or a holiday/closure name. Fill text counts as
// empty when deciding whether a week's last row may be removed.
func IsFillText(text string, year int, cal holiday.Calendar) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.EqualFold(trimmed, WeekendText) {
		return true
	}
	return cal.IsHolidayName(trimmed, year)
}

func isWeekendDay(d time.Time) bool {
	return d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
}
