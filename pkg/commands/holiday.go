package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"tableflip.dev/prodsched/pkg/commands/options"
)

func addHoliday(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}
	yearFlag := 0

	cmd := &cobra.Command{
		Use:   "holiday",
		Short: "List or suppress holidays.",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(so)
			if err != nil {
				return oo.HandleError(err)
			}
			year := session.Store.Year
			if yearFlag != 0 {
				year = yearFlag
			}

			names := session.Calendar().Names(year)
			dates := make([]string, 0, len(names))
			for iso := range names {
				dates = append(dates, iso)
			}
			sort.Strings(dates)

			table := uitable.New()
			table.AddRow("DATE", "NAME")
			for _, iso := range dates {
				table.AddRow(iso, names[iso])
			}
			fmt.Println(table)
			if len(session.Store.SuppressedHolidays) > 0 {
				fmt.Printf("suppressed: %s\n", strings.Join(session.Store.SuppressedHolidays, ", "))
			}
			return nil
		},
	}

	suppress := &cobra.Command{
		Use:   "suppress <name>",
		Short: "Hide a holiday by name, across all years.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(so)
			if err != nil {
				return oo.HandleError(err)
			}
			name := strings.Join(args, " ")
			session.SuppressHoliday(name)
			fmt.Printf("suppressed %q\n", name)
			return nil
		},
	}

	restore := &cobra.Command{
		Use:   "restore <name>",
		Short: "Undo a holiday suppression.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(so)
			if err != nil {
				return oo.HandleError(err)
			}
			name := strings.Join(args, " ")
			if !session.RestoreHoliday(name) {
				return oo.HandleError(fmt.Errorf("%q is not suppressed", name))
			}
			fmt.Printf("restored %q\n", name)
			return nil
		},
	}

	options.AddSchedulePersistentArgs(cmd, so)
	cmd.Flags().IntVarP(&yearFlag, "year", "y", 0, "Year to list (defaults to the saved cursor).")
	cmd.AddCommand(suppress, restore)

	topLevel.AddCommand(cmd)
}
