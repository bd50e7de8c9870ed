package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/prodsched/pkg/app"
	"tableflip.dev/prodsched/pkg/commands/options"
	"tableflip.dev/prodsched/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}
	mo := &options.MonthOptions{}
	legends := false

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a month of the schedule.",
		Example: `
prodsched show
prodsched show --year 2025 --month 8
prodsched show --legends
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := so.Resolve()
			if err != nil {
				return oo.HandleError(err)
			}
			session, err := app.Open(dir)
			if err != nil {
				return oo.HandleError(err)
			}

			year, month, set, err := mo.Get()
			if err != nil {
				return oo.HandleError(err)
			}
			s := show.Show{
				Session: session,
				Legends: legends,
			}
			if set {
				s.Year, s.Month = year, month
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddScheduleArgs(cmd, so)
	options.AddMonthArgs(cmd, mo)
	cmd.Flags().BoolVar(&legends, "legends", false, "Print the legend catalog under the grid.")

	topLevel.AddCommand(cmd)
}
