package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/prodsched/pkg/app"
	"tableflip.dev/prodsched/pkg/commands/options"
	"tableflip.dev/prodsched/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}
	mo := &options.MonthOptions{}
	out := ""
	keepFill := false

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a month as CSV.",
		Example: `
prodsched export -o schedule.csv
prodsched export --year 2025 --month 8 -o august.csv
prodsched export  # stdout
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

			e := export.Export{
				Session:  session,
				Out:      out,
				KeepFill: keepFill,
			}
			if set {
				e.Year, e.Month = year, month
			}
			return oo.HandleError(e.Do(context.Background()))
		},
	}

	options.AddScheduleArgs(cmd, so)
	options.AddMonthArgs(cmd, mo)
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout).")
	cmd.Flags().BoolVar(&keepFill, "keep-fill", false,
		"Keep weekend/holiday placeholder text instead of blanking it.")

	topLevel.AddCommand(cmd)
}
