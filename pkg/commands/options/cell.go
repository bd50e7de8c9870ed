package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// CellOptions addresses one day/row slot of the grid.
type CellOptions struct {
	OnString string
	Row      int
}

func AddCellArgs(cmd *cobra.Command, o *CellOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Date of the cell, example: --on="2025-2-28" or --on="2/28".`)
	cmd.Flags().IntVarP(&o.Row, "row", "r", 0,
		"Action row of the cell, 0-based.")
}

// GetOn parses the date flag. A short month/day form resolves to the
// current year, or the next one when the date already passed.
func (o *CellOptions) GetOn() (time.Time, error) {
	if o.OnString == "" {
		return time.Time{}, fmt.Errorf("a cell date is required, use --on")
	}
	t, err := time.Parse(layoutISO, o.OnString)
	if err != nil {
		t, err = time.Parse(layoutISOShort, o.OnString)
		if err != nil {
			return time.Time{}, fmt.Errorf("bad date %q: %w", o.OnString, err)
		}
		t = t.AddDate(time.Now().Year(), 0, 0)
		if t.Before(time.Now()) {
			t = t.AddDate(1, 0, 0)
		}
	}
	if o.Row < 0 {
		return time.Time{}, fmt.Errorf("row %d is negative", o.Row)
	}
	return t, nil
}
