package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/prodsched/pkg/commands/options"
	"tableflip.dev/prodsched/pkg/palette"
	"tableflip.dev/prodsched/pkg/printers"
)

func addLegend(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}

	cmd := &cobra.Command{
		Use:   "legend",
		Short: "List or edit the color legend.",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(so)
			if err != nil {
				return oo.HandleError(err)
			}
			pp := printers.PrettyPrint{}
			pp.Legends(palette.BuiltinLegends(), session.Store.CustomLegends)
			return nil
		},
	}

	colorHex := ""
	description := ""
	add := &cobra.Command{
		Use:   "add <label>",
		Short: "Add a user legend; its label outranks every built-in rule.",
		Example: `
prodsched legend add "QC Hold" --color "#A85BC2" --description "quality hold"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if colorHex == "" {
				return oo.HandleError(errors.New("a color is required, use --color \"#RRGGBB\""))
			}
			session, err := openSession(so)
			if err != nil {
				return oo.HandleError(err)
			}
			label := strings.Join(args, " ")
			if err := session.AddLegend(label, description, colorHex); err != nil {
				return oo.HandleError(err)
			}
			fmt.Printf("added legend %q\n", label)
			return nil
		},
	}
	add.Flags().StringVar(&colorHex, "color", "", `Cell color as "#RRGGBB".`)
	add.Flags().StringVar(&description, "description", "", "Optional description for the catalog.")

	remove := &cobra.Command{
		Use:     "remove <label>",
		Aliases: []string{"rm"},
		Short:   "Remove a user legend by label.",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := openSession(so)
			if err != nil {
				return oo.HandleError(err)
			}
			label := strings.Join(args, " ")
			if !session.RemoveLegend(label) {
				return oo.HandleError(fmt.Errorf("no user legend %q", label))
			}
			fmt.Printf("removed legend %q\n", label)
			return nil
		},
	}

	options.AddSchedulePersistentArgs(cmd, so)
	cmd.AddCommand(add, remove)

	topLevel.AddCommand(cmd)
}
