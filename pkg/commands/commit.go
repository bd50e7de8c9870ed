package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/prodsched/pkg/app"
	"tableflip.dev/prodsched/pkg/commands/options"
	"tableflip.dev/prodsched/pkg/runner/commit"
)

func addCommit(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}
	co := &options.CellOptions{}

	cmd := &cobra.Command{
		Use:   "commit [text]",
		Short: "Commit text into a cell and run the dosing rules.",
		Long: options.Wrap80("Commit raw text into one day/row cell. " +
			"A confirmed AC225 initial dose schedules its three maintenance " +
			"doses six weeks apart; the word \"delete\" (or empty text) clears " +
			"the cell, and a trailing \"cancelled\" flags the dose and its " +
			"maintenance entries."),
		Example: `
prodsched commit --on 2025-1-6 "10234-001 AC225"
prodsched commit --on 2025-1-6 "10234-001 AC225 - Cancelled"
prodsched commit --on 2025-1-6 --row 1 delete
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := co.GetOn()
			if err != nil {
				return oo.HandleError(err)
			}
			dir, err := so.Resolve()
			if err != nil {
				return oo.HandleError(err)
			}
			session, err := app.Open(dir)
			if err != nil {
				return oo.HandleError(err)
			}

			c := commit.Commit{
				Session: session,
				On:      on,
				Row:     co.Row,
				Text:    strings.Join(args, " "),
			}
			return oo.HandleError(c.Do(context.Background()))
		},
	}

	options.AddScheduleArgs(cmd, so)
	options.AddCellArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
