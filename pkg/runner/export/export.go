package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"tableflip.dev/prodsched/pkg/app"
	csvout "tableflip.dev/prodsched/pkg/export"
	"tableflip.dev/prodsched/pkg/grid"
)

// Export writes one month of the schedule as CSV.
type Export struct {
	Session *app.Service
	Out     string // "" or "-" means stdout

	// Zero means the store's saved cursor.
	Year  int
	Month time.Month

	KeepFill bool
}

func (n *Export) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not export, no session")
	}
	if _, err := n.Session.Refresh(); err != nil {
		return err
	}

	year, month := n.Session.Store.Year, n.Session.Store.Month
	if n.Year != 0 && n.Month != 0 {
		year, month = n.Year, n.Month
	}

	m := grid.Build(n.Session.Store, year, month, n.Session.Calendar(), grid.Options{KeepFill: n.KeepFill})

	if n.Out == "" || n.Out == "-" {
		return csvout.CSV(os.Stdout, m)
	}

	f, err := os.Create(n.Out)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", n.Out, err)
	}
	if err := csvout.CSV(f, m); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", n.Out, err)
	}
	fmt.Printf("exported %s %d to %s\n", month.String(), year, n.Out)
	return nil
}
