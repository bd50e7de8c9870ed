// Package export renders the positioned month grid into portable document
// formats. CSV is the spreadsheet-shaped output; richer renderers consume
// the same grid.Month contract.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"tableflip.dev/prodsched/pkg/grid"
)

// CSV writes one month as a spreadsheet-shaped CSV: per extended week, a
// date header row followed by one record per action row. Cancelled cells
// keep their text with a "(cancelled)" marker since CSV carries no color.
func CSV(w io.Writer, m grid.Month) error {
	cw := csv.NewWriter(w)

	title := fmt.Sprintf("%s %d", m.Month.String(), m.Year)
	if err := cw.Write([]string{title}); err != nil {
		return fmt.Errorf("export: write title: %w", err)
	}

	for _, week := range m.Weeks {
		header := make([]string, len(week.Days))
		for i, d := range week.Days {
			header[i] = fmt.Sprintf("%s %d", d.Weekday().String()[:3], d.Day())
		}
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("export: write week header: %w", err)
		}

		for _, row := range week.Cells {
			record := make([]string, len(row))
			for i, cell := range row {
				record[i] = cellText(cell)
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("export: write row: %w", err)
			}
		}
		if err := cw.Write([]string{""}); err != nil {
			return fmt.Errorf("export: write separator: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	return nil
}

func cellText(cell grid.Cell) string {
	text := strings.TrimSpace(cell.Text)
	if text == "" {
		return ""
	}
	if cell.Cancelled {
		return text + " (cancelled)"
	}
	return text
}
