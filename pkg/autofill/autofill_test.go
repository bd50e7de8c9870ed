package autofill

import (
	"reflect"
	"testing"
	"time"

	"tableflip.dev/prodsched/pkg/calweek"
	"tableflip.dev/prodsched/pkg/holiday"
	"tableflip.dev/prodsched/pkg/schedule"
)

func TestFillWeekendsAndHolidays(t *testing.T) {
	s := schedule.New(2025, time.November)
	cal := holiday.Calendar{Source: holiday.Federal{}, Store: s}

	Fill(s, 2025, time.November, cal)

	// Nov 1 2025 is a Saturday.
	if e, _ := s.Get(calweek.Date(2025, time.November, 1), 0); e.Text != WeekendText {
		t.Fatalf("Saturday not filled: %+v", e)
	}
	// Veterans Day lands on a Tuesday.
	if e, _ := s.Get(calweek.Date(2025, time.November, 11), 0); e.Text != "Veterans Day" {
		t.Fatalf("holiday not filled: %+v", e)
	}
	// Thanksgiving Day, Thursday Nov 27.
	if e, _ := s.Get(calweek.Date(2025, time.November, 27), 0); e.Text != "Thanksgiving Day" {
		t.Fatalf("holiday not filled: %+v", e)
	}
	// Plain weekdays stay empty.
	if _, ok := s.Get(calweek.Date(2025, time.November, 12), 0); ok {
		t.Fatalf("plain weekday should stay empty")
	}
}

func TestFillIdempotent(t *testing.T) {
	s := schedule.New(2025, time.November)
	cal := holiday.Calendar{Source: holiday.Federal{}, Store: s}

	Fill(s, 2025, time.November, cal)
	snapshot := map[string]schedule.Entry{}
	for k, v := range s.Entries {
		snapshot[k] = v
	}
	Fill(s, 2025, time.November, cal)

	if !reflect.DeepEqual(snapshot, s.Entries) {
		t.Fatalf("second fill changed the store")
	}
}

func TestFillNonDestructive(t *testing.T) {
	s := schedule.New(2025, time.November)
	cal := holiday.Calendar{Source: holiday.Federal{}, Store: s}

	sat := calweek.Date(2025, time.November, 8)
	s.Set(sat, 0, schedule.Entry{Text: "10234-001 AC225 Initial Dose"})
	vets := calweek.Date(2025, time.November, 11)
	s.Set(vets, 0, schedule.Entry{Text: "Shutdown"})

	Fill(s, 2025, time.November, cal)

	if e, _ := s.Get(sat, 0); e.Text != "10234-001 AC225 Initial Dose" {
		t.Fatalf("user content on Saturday overwritten: %q", e.Text)
	}
	if e, _ := s.Get(vets, 0); e.Text != "Shutdown" {
		t.Fatalf("user content on holiday overwritten: %q", e.Text)
	}
}

func TestHolidayOverridesWeekendPlaceholder(t *testing.T) {
	s := schedule.New(2026, time.July)
	cal := holiday.Calendar{Source: holiday.Federal{}, Store: s}

	// July 4 2026 is a Saturday: first pass may stamp Weekend, the
	// holiday must win.
	Fill(s, 2026, time.July, cal)
	if e, _ := s.Get(calweek.Date(2026, time.July, 4), 0); e.Text != "Independence Day" {
		t.Fatalf("holiday should override weekend placeholder, got %q", e.Text)
	}
}

func TestIsFillText(t *testing.T) {
	s := schedule.New(2025, time.January)
	s.Closures = []schedule.Closure{{Name: "Deep Clean", Date: "2025-03-14"}}
	cal := holiday.Calendar{Source: holiday.Federal{}, Store: s}

	for _, text := range []string{"", "  ", "Weekend", "weekend", "Christmas Day", "Deep Clean"} {
		if !IsFillText(text, 2025, cal) {
			t.Errorf("%q should count as fill text", text)
		}
	}
	for _, text := range []string{"Shutdown", "10234-001 AC225"} {
		if IsFillText(text, 2025, cal) {
			t.Errorf("%q must not count as fill text", text)
		}
	}
}
