package holiday

import (
	"strings"
	"time"

	"tableflip.dev/prodsched/pkg/schedule"
)

// Calendar merges a federal source with user-defined closures and applies
// name-based suppression. Suppression is global per name across years; the
// persisted file format tracks names, not (year, name) pairs.
type Calendar struct {
	Source Source
	Store  *schedule.Store
}

// Names returns the effective ISO date -> name map for the year: federal
// holidays plus closures, minus suppressed names. A nil source contributes
// nothing.
func (c Calendar) Names(year int) map[string]string {
	out := map[string]string{}
	if c.Source != nil {
		for iso, name := range c.Source.ForYear(year) {
			out[iso] = name
		}
	}
	if c.Store != nil {
		for _, cl := range c.Store.Closures {
			d, err := time.ParseInLocation(layoutISO, cl.Date, time.UTC)
			if err != nil || d.Year() != year {
				continue
			}
			out[cl.Date] = cl.Name
		}
		for _, name := range c.Store.SuppressedHolidays {
			for iso, n := range out {
				if strings.EqualFold(n, name) {
					delete(out, iso)
				}
			}
		}
	}
	return out
}

// NameSet returns the lowercased holiday and closure names effective for
// the year, for case-insensitive classification matches.
func (c Calendar) NameSet(year int) map[string]bool {
	set := map[string]bool{}
	for _, name := range c.Names(year) {
		set[strings.ToLower(strings.TrimSpace(name))] = true
	}
	return set
}

// IsHolidayName reports whether text exactly matches (case-insensitively)
// a holiday or closure name effective in the year.
func (c Calendar) IsHolidayName(text string, year int) bool {
	return c.NameSet(year)[strings.ToLower(strings.TrimSpace(text))]
}
