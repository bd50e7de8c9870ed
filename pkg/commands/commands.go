package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/prodsched/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "prodsched",
		Short: options.Wrap80("Radiopharmaceutical production schedule on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputPersistentArg(cmd, oo)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addShow(topLevel)
	addCommit(topLevel)
	addExport(topLevel)
	addRow(topLevel)
	addLegend(topLevel)
	addHoliday(topLevel)
	addClosure(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
}
