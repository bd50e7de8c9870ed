package show

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/prodsched/pkg/app"
	"tableflip.dev/prodsched/pkg/grid"
	"tableflip.dev/prodsched/pkg/palette"
	"tableflip.dev/prodsched/pkg/printers"
)

// Show renders one month of the schedule to the terminal.
type Show struct {
	Session *app.Service

	// Zero means the store's saved cursor.
	Year  int
	Month time.Month

	Legends bool
}

func (n *Show) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not show, no session")
	}

	if reloaded, err := n.Session.Refresh(); err != nil {
		return err
	} else if reloaded {
		pp := printers.PrettyPrint{}
		pp.Conflict(n.Session.Status.Path)
	}

	if n.Year != 0 && n.Month != 0 {
		n.Session.GoTo(n.Year, n.Month)
	}

	pp := printers.PrettyPrint{}
	pp.Banner(n.Session.Status.Path)
	pp.NewLine()
	// The live view keeps the weekend/holiday placeholders; only exports
	// blank them.
	pp.MonthGrid(n.Session.View(grid.Options{KeepFill: true}))

	if n.Legends {
		pp.Legends(palette.BuiltinLegends(), n.Session.Store.CustomLegends)
	}

	pp.Status(n.Session.Status.SavedAt, n.Session.Status.Err)
	return nil
}
