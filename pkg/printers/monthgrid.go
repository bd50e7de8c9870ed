package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/prodsched/pkg/grid"
	"tableflip.dev/prodsched/pkg/palette"
)

// GridOptions controls the styling of the rendered month grid.
type GridOptions struct {
	TitleStyle   lipgloss.Style
	WeekdayStyle lipgloss.Style
	DateStyle    lipgloss.Style
	SpillStyle   lipgloss.Style
	TodayStyle   lipgloss.Style
	CellWidth    int
}

// DefaultGridOptions returns the standard terminal styling.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		TitleStyle:   lipgloss.NewStyle().Bold(true),
		WeekdayStyle: lipgloss.NewStyle().Faint(true),
		DateStyle:    lipgloss.NewStyle(),
		SpillStyle:   lipgloss.NewStyle().Faint(true),
		TodayStyle:   lipgloss.NewStyle().Bold(true).Underline(true),
		CellWidth:    14,
	}
}

// MonthGrid prints the month projection as a colored week-by-week grid.
func (pp *PrettyPrint) MonthGrid(m grid.Month) {
	fmt.Println(RenderMonth(m, DefaultGridOptions()))
}

// RenderMonth produces a multi-line string for the month: a title, a
// weekday header, and per extended week a date line followed by one line
// per action row with cells painted in their classified colors.
func RenderMonth(m grid.Month, opts GridOptions) string {
	if opts.CellWidth < 4 {
		opts.CellWidth = 4
	}
	w := opts.CellWidth
	rowWidth := 7*w + 6

	var lines []string

	title := fmt.Sprintf("%s %d", m.Month.String(), m.Year)
	mid := (rowWidth - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	lines = append(lines, strings.Repeat(" ", mid)+opts.TitleStyle.Render(title))

	var head []string
	for _, name := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		head = append(head, opts.WeekdayStyle.Render(pad(name, w)))
	}
	lines = append(lines, strings.Join(head, " "))

	today := time.Now()
	for _, week := range m.Weeks {
		var dates []string
		for _, d := range week.Days {
			style := opts.DateStyle
			if d.Month() != m.Month {
				style = opts.SpillStyle
			}
			if sameDay(d, today) {
				style = style.Inherit(opts.TodayStyle)
			}
			dates = append(dates, style.Render(pad(fmt.Sprintf("%2d", d.Day()), w)))
		}
		lines = append(lines, strings.Join(dates, " "))

		for _, row := range week.Cells {
			var cells []string
			for _, cell := range row {
				cells = append(cells, renderCell(cell, w))
			}
			lines = append(lines, strings.Join(cells, " "))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

func renderCell(cell grid.Cell, w int) string {
	text := pad(truncate(cell.Text, w), w)
	if strings.TrimSpace(cell.Text) == "" {
		return text
	}

	style := lipgloss.NewStyle().
		Background(lipgloss.Color(cell.Color.String())).
		Foreground(lipgloss.Color(cell.Color.TextColor().String()))
	if cell.Cancelled && cell.Color == palette.Cancelled {
		style = style.Strikethrough(true)
	}
	return style.Render(text)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func truncate(s string, w int) string {
	if len(s) <= w {
		return s
	}
	if w <= 1 {
		return s[:w]
	}
	return s[:w-1] + "…"
}
