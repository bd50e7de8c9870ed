package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/prodsched/pkg/app"
	"tableflip.dev/prodsched/pkg/commands/options"
)

func addRow(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}
	week := 0

	cmd := &cobra.Command{
		Use:   "row",
		Short: "Manage the action rows of a week.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Append an action row to a week of the visible month.",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(so)
			if err != nil {
				return oo.HandleError(err)
			}
			session.AddRow(week)
			fmt.Printf("week %d now has more room\n", week)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm"},
		Short:   "Drop the last action row of a week if it is empty.",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(so)
			if err != nil {
				return oo.HandleError(err)
			}
			if !session.RemoveRow(week) {
				return oo.HandleError(errors.New("the last row still holds entries, or only one row remains"))
			}
			fmt.Printf("removed the last row of week %d\n", week)
			return nil
		},
	}

	options.AddSchedulePersistentArgs(cmd, so)
	cmd.PersistentFlags().IntVarP(&week, "week", "w", 0, "Week of the visible month, 0-based.")
	cmd.AddCommand(add, remove)

	topLevel.AddCommand(cmd)
}

func openSession(so *options.ScheduleOptions) (*app.Service, error) {
	dir, err := so.Resolve()
	if err != nil {
		return nil, err
	}
	return app.Open(dir)
}
