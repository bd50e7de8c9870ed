// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/prodsched/pkg/store"
)

// ScheduleOptions selects the schedule directory a command operates on.
type ScheduleOptions struct {
	Dir string
}

// AddScheduleArgs wires the directory flag. An empty value falls back to
// the remembered latest_dir from the user config.
func AddScheduleArgs(cmd *cobra.Command, o *ScheduleOptions) {
	cmd.Flags().StringVarP(&o.Dir, "dir", "d", "",
		"Schedule directory (defaults to the last used one).")
}

// AddSchedulePersistentArgs registers the directory flag on a parent
// command so its subcommands inherit it.
func AddSchedulePersistentArgs(cmd *cobra.Command, o *ScheduleOptions) {
	cmd.PersistentFlags().StringVarP(&o.Dir, "dir", "d", "",
		"Schedule directory (defaults to the last used one).")
}

// Resolve returns the effective directory, consulting the user config
// when the flag was not set, and remembers the choice for next time.
func (o *ScheduleOptions) Resolve() (string, error) {
	if o.Dir != "" {
		dir := store.SanitizeDir(o.Dir)
		if err := store.SaveLatestDir(dir); err != nil {
			// Remembering the directory is best effort.
			return dir, nil
		}
		return dir, nil
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return "", err
	}
	return cfg.LatestDir(), nil
}
