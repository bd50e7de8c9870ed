package holiday

import (
	"testing"
	"time"

	"tableflip.dev/prodsched/pkg/schedule"
)

func TestFederal2025(t *testing.T) {
	got := Federal{}.ForYear(2025)
	want := map[string]string{
		"2025-01-01": "New Year's Day",
		"2025-01-20": "Martin Luther King Jr. Day",
		"2025-02-17": "Washington's Birthday",
		"2025-05-26": "Memorial Day",
		"2025-06-19": "Juneteenth",
		"2025-07-04": "Independence Day",
		"2025-09-01": "Labor Day",
		"2025-10-13": "Columbus Day",
		"2025-11-11": "Veterans Day",
		"2025-11-27": "Thanksgiving Day",
		"2025-12-25": "Christmas Day",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d holidays, got %d: %v", len(want), len(got), got)
	}
	for iso, name := range want {
		if got[iso] != name {
			t.Errorf("expected %s on %s, got %q", name, iso, got[iso])
		}
	}
}

func TestCalendarClosuresAndSuppression(t *testing.T) {
	s := schedule.New(2025, time.January)
	s.Closures = []schedule.Closure{
		{Name: "Facility Deep Clean", Date: "2025-03-14"},
		{Name: "Next Year Closure", Date: "2026-03-14"},
	}
	s.SuppressedHolidays = []string{"columbus day"}

	cal := Calendar{Source: Federal{}, Store: s}
	names := cal.Names(2025)

	if names["2025-03-14"] != "Facility Deep Clean" {
		t.Fatalf("closure missing: %v", names["2025-03-14"])
	}
	if _, ok := names["2026-03-14"]; ok {
		t.Fatalf("closure from another year leaked in")
	}
	if _, ok := names["2025-10-13"]; ok {
		t.Fatalf("suppressed holiday still present")
	}
	if !cal.IsHolidayName(" facility deep clean ", 2025) {
		t.Fatalf("IsHolidayName should match case-insensitively")
	}
	if cal.IsHolidayName("Columbus Day", 2025) {
		t.Fatalf("suppressed name should not match")
	}
}

func TestCalendarDegradesWithoutSource(t *testing.T) {
	cal := Calendar{Source: None}
	if len(cal.Names(2025)) != 0 {
		t.Fatalf("None source should yield no holidays")
	}
	cal = Calendar{}
	if len(cal.Names(2025)) != 0 {
		t.Fatalf("nil source should yield no holidays")
	}
}
