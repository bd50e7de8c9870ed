package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/prodsched/pkg/commands/options"
)

func addClosure(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}
	date := ""

	cmd := &cobra.Command{
		Use:   "closure <name>",
		Short: "Record a site closure; it behaves like a holiday on its date.",
		Example: `
prodsched closure "Deep Clean" --date 2025-03-14
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				return oo.HandleError(errors.New("a date is required, use --date YYYY-MM-DD"))
			}
			session, err := openSession(so)
			if err != nil {
				return oo.HandleError(err)
			}
			name := strings.Join(args, " ")
			if err := session.AddClosure(name, date); err != nil {
				return oo.HandleError(err)
			}
			fmt.Printf("recorded closure %q on %s\n", name, date)
			return nil
		},
	}

	options.AddScheduleArgs(cmd, so)
	cmd.Flags().StringVar(&date, "date", "", "Closure date as YYYY-MM-DD.")

	topLevel.AddCommand(cmd)
}
