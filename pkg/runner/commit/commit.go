package commit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/prodsched/pkg/app"
	"tableflip.dev/prodsched/pkg/printers"
)

// Commit applies raw text to one cell and reports what the dosing
// derivation did with it.
type Commit struct {
	Session *app.Service
	On      time.Time
	Row     int
	Text    string
}

func (n *Commit) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not commit, no session")
	}

	if reloaded, err := n.Session.Refresh(); err != nil {
		return err
	} else if reloaded {
		pp := printers.PrettyPrint{}
		pp.Conflict(n.Session.Status.Path)
	}

	res := n.Session.Commit(n.On, n.Row, n.Text)

	day := n.On.Format("2006-01-02")
	switch {
	case res.Deleted:
		fmt.Printf("deleted %s row %d", day, n.Row)
		if res.Cascaded > 0 {
			fmt.Printf(" and %d maintenance doses", res.Cascaded)
		}
		fmt.Println()
	case res.Cancelled:
		c := color.New(color.FgHiYellow)
		_, _ = c.Printf("cancelled %q on %s", res.Text, day)
		if res.Cascaded > 0 {
			_, _ = c.Printf(", %d maintenance doses flagged", res.Cascaded)
		}
		_, _ = c.Println()
	default:
		fmt.Printf("committed %q on %s row %d\n", res.Text, day, n.Row)
		for _, d := range res.Scheduled {
			fmt.Printf("  scheduled maintenance dose on %s\n", d.Format("2006-01-02"))
		}
	}

	pp := printers.PrettyPrint{}
	pp.Status(n.Session.Status.SavedAt, n.Session.Status.Err)
	return nil
}
