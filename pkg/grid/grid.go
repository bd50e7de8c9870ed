// Package grid projects the store into a positioned month grid for
// printers and exporters. The projection is read-only and reproduces the
// live view exactly: same week layout, same classifier colors, same
// emptiness rules.
package grid

import (
	"time"

	"tableflip.dev/prodsched/pkg/autofill"
	"tableflip.dev/prodsched/pkg/calweek"
	"tableflip.dev/prodsched/pkg/classify"
	"tableflip.dev/prodsched/pkg/holiday"
	"tableflip.dev/prodsched/pkg/palette"
	"tableflip.dev/prodsched/pkg/schedule"
)

// Cell is one positioned day/row slot.
type Cell struct {
	Date      time.Time
	Row       int
	Text      string
	Cancelled bool
	Color     palette.Color
}

// Week is one extended week of the month: Cells[row][day], day running
// Monday through Sunday.
type Week struct {
	Days  calweek.Week
	Rows  int
	Cells [][]Cell
}

// Month is the exporter-facing projection of one month.
type Month struct {
	Year  int
	Month time.Month
	Weeks []Week
}

// Options adjusts the projection.
type Options struct {
	// KeepFill retains weekend/holiday placeholder text in cells that hold
	// nothing else. By default such cells come out blank, the way exports
	// want them.
	KeepFill bool
}

// Build projects year/month of the store into a positioned grid. Every
// cell is classified with the same rule table the live view uses; custom
// legends and the effective holiday calendar both apply.
func Build(s *schedule.Store, year int, month time.Month, cal holiday.Calendar, opts Options) Month {
	ctx := ContextFor(s, cal, year)

	weeks := calweek.WeeksOf(year, month)
	out := Month{Year: year, Month: month, Weeks: make([]Week, 0, len(weeks))}

	for _, days := range weeks {
		rows := 1
		for _, d := range days {
			if r := s.RowCount(d); r > rows {
				rows = r
			}
		}

		w := Week{Days: days, Rows: rows, Cells: make([][]Cell, rows)}
		for row := 0; row < rows; row++ {
			w.Cells[row] = make([]Cell, len(days))
			for col, d := range days {
				e, _ := s.Get(d, row)
				cell := Cell{Date: d, Row: row, Text: e.Text, Cancelled: e.Cancelled}

				if !opts.KeepFill && !e.Cancelled && autofill.IsFillText(e.Text, d.Year(), cal) {
					cell.Text = ""
				}
				if cell.Text == "" {
					cell.Color = palette.White
				} else {
					cell.Color = classify.Color(schedule.Entry{Text: cell.Text, Cancelled: cell.Cancelled}, ctx)
				}
				w.Cells[row][col] = cell
			}
		}
		out.Weeks = append(out.Weeks, w)
	}
	return out
}

// ContextFor assembles the classification context for a year: the store's
// custom legends plus the effective (lowercased) holiday names.
func ContextFor(s *schedule.Store, cal holiday.Calendar, year int) classify.Context {
	return classify.Context{
		Legends:      s.CustomLegends,
		HolidayNames: cal.NameSet(year),
	}
}
