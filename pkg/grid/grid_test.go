package grid

import (
	"testing"
	"time"

	"tableflip.dev/prodsched/pkg/autofill"
	"tableflip.dev/prodsched/pkg/calweek"
	"tableflip.dev/prodsched/pkg/holiday"
	"tableflip.dev/prodsched/pkg/palette"
	"tableflip.dev/prodsched/pkg/schedule"
)

func TestBuildMatchesLiveLayout(t *testing.T) {
	s := schedule.New(2025, time.January)
	cal := holiday.Calendar{Source: holiday.Federal{}, Store: s}

	s.Set(calweek.Date(2025, time.January, 6), 0, schedule.Entry{Text: "10234-001 AC225 Initial Dose"})
	s.Set(calweek.Date(2025, time.January, 7), 1, schedule.Entry{Text: "AC225 Run EVG"})
	s.WeekRows[schedule.WeekKey(2025, time.January, 1)] = 2

	m := Build(s, 2025, time.January, cal, Options{})

	if len(m.Weeks) != 5 {
		t.Fatalf("January 2025 spans 5 extended weeks, got %d", len(m.Weeks))
	}
	// Week 0 starts on Monday Dec 30 2024.
	if d := m.Weeks[0].Days[0]; d.Day() != 30 || d.Month() != time.December {
		t.Fatalf("week 0 should start Dec 30, got %v", d)
	}
	if m.Weeks[1].Rows != 2 {
		t.Fatalf("week 1 row count not honored: %d", m.Weeks[1].Rows)
	}

	cell := m.Weeks[1].Cells[0][0] // Monday Jan 6, row 0
	if cell.Text != "10234-001 AC225 Initial Dose" || cell.Color != palette.Confirmed {
		t.Fatalf("confirmed entry misprojected: %+v", cell)
	}
	run := m.Weeks[1].Cells[1][1] // Tuesday Jan 7, row 1
	if run.Color != palette.AC225RunEVG {
		t.Fatalf("run entry misclassified: %+v", run)
	}
}

func TestBuildBlanksFillByDefault(t *testing.T) {
	s := schedule.New(2025, time.November)
	cal := holiday.Calendar{Source: holiday.Federal{}, Store: s}
	autofill.Fill(s, 2025, time.November, cal)

	m := Build(s, 2025, time.November, cal, Options{})
	// Nov 1 2025 is Saturday of week 0.
	sat := m.Weeks[0].Cells[0][5]
	if sat.Text != "" || sat.Color != palette.White {
		t.Fatalf("weekend placeholder should export blank, got %+v", sat)
	}

	kept := Build(s, 2025, time.November, cal, Options{KeepFill: true})
	sat = kept.Weeks[0].Cells[0][5]
	if sat.Text != autofill.WeekendText || sat.Color != palette.Weekend {
		t.Fatalf("KeepFill should retain the placeholder, got %+v", sat)
	}
}

func TestBuildCancelledAndCustomLegend(t *testing.T) {
	s := schedule.New(2025, time.March)
	s.CustomLegends = []palette.Legend{{Label: "QC Hold", Color: "#123456"}}
	cal := holiday.Calendar{Source: holiday.None, Store: s}

	s.Set(calweek.Date(2025, time.March, 3), 0, schedule.Entry{Text: "51234-002 MD1", Cancelled: true})
	s.Set(calweek.Date(2025, time.March, 4), 0, schedule.Entry{Text: "QC Hold sterility"})

	// March 2025 week 0 starts Feb 24; Mar 3 opens week 1.
	m := Build(s, 2025, time.March, cal, Options{})
	if c := m.Weeks[1].Cells[0][0]; !c.Cancelled || c.Color != palette.Cancelled {
		t.Fatalf("cancelled cell misprojected: %+v", c)
	}
	if c := m.Weeks[1].Cells[0][1]; c.Color != palette.Color("#123456") {
		t.Fatalf("custom legend not applied: %+v", c)
	}
}
