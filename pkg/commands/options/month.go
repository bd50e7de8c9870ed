package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// MonthOptions selects a month other than the store's saved cursor.
type MonthOptions struct {
	Year  int
	Month int
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().IntVarP(&o.Year, "year", "y", 0,
		"Year to show (defaults to the saved cursor).")
	cmd.Flags().IntVarP(&o.Month, "month", "m", 0,
		"Month to show, 1-12 (defaults to the saved cursor).")
}

// Get validates the pair. Zero values mean "use the saved cursor"; setting
// one of the two requires the other.
func (o *MonthOptions) Get() (int, time.Month, bool, error) {
	if o.Year == 0 && o.Month == 0 {
		return 0, 0, false, nil
	}
	if o.Year == 0 || o.Month == 0 {
		return 0, 0, false, fmt.Errorf("both --year and --month are required together")
	}
	if o.Month < 1 || o.Month > 12 {
		return 0, 0, false, fmt.Errorf("month %d out of range", o.Month)
	}
	return o.Year, time.Month(o.Month), true, nil
}
