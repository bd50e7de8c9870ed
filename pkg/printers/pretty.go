// Package printers renders schedule state for the terminal.
package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/prodsched/pkg/palette"
)

type PrettyPrint struct {
	ShowColors bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// Banner prints the working-file line shown at the top of every view.
func (pp *PrettyPrint) Banner(path string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Printf("working file: %s\n", path)
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Status prints the autosave caption: last save time on success, the
// failure on stderr otherwise.
func (pp *PrettyPrint) Status(savedAt time.Time, err error) {
	if err != nil {
		e := color.New(color.FgHiRed)
		_, _ = e.Fprintf(color.Error, "autosave failed: %v\n", err)
		return
	}
	if savedAt.IsZero() {
		return
	}
	f := color.New(color.Faint)
	_, _ = f.Printf("autosaved %s\n", savedAt.Format("15:04:05"))
}

// Legends prints the legend catalog as a table, built-ins first then
// user-defined items.
func (pp *PrettyPrint) Legends(builtin, custom []palette.Legend) {
	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("LABEL", "COLOR", "DESCRIPTION")
	for _, l := range builtin {
		table.AddRow(l.Label, l.Color.String(), l.Description)
	}
	for _, l := range custom {
		table.AddRow(l.Label+" *", l.Color.String(), l.Description)
	}
	fmt.Println(table)
	if len(custom) > 0 {
		f := color.New(color.Faint)
		_, _ = f.Println("* user-defined")
	}
}

// Conflict warns that the document changed on disk outside this session.
func (pp *PrettyPrint) Conflict(path string) {
	w := color.New(color.FgHiYellow, color.Bold)
	_, _ = w.Printf("%s changed on disk; reloading\n", path)
}
