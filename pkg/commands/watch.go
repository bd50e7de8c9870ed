package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/prodsched/pkg/app"
	"tableflip.dev/prodsched/pkg/commands/options"
	"tableflip.dev/prodsched/pkg/grid"
	"tableflip.dev/prodsched/pkg/printers"
	"tableflip.dev/prodsched/pkg/store"
)

func addWatch(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-render the month whenever the document changes on disk.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := so.Resolve()
			if err != nil {
				return oo.HandleError(err)
			}
			session, err := app.Open(dir)
			if err != nil {
				return oo.HandleError(err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			events, err := store.Watch(ctx, store.Path(dir))
			if err != nil {
				return oo.HandleError(err)
			}

			pp := printers.PrettyPrint{}
			render := func() {
				pp.Banner(session.Status.Path)
				pp.MonthGrid(session.View(grid.Options{KeepFill: true}))
			}
			render()

			for range events {
				if reloaded, err := session.Refresh(); err != nil {
					return oo.HandleError(err)
				} else if reloaded {
					pp.Conflict(session.Status.Path)
					render()
				}
			}
			return nil
		},
	}

	options.AddScheduleArgs(cmd, so)
	topLevel.AddCommand(cmd)
}
