// Package dosing derives maintenance-dose entries from confirmed-patient
// initial doses. It is a derivation rule that runs on every cell commit:
// the only state is the text and cancelled fields of the initial dose and
// its three maintenance doses.
package dosing

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"tableflip.dev/prodsched/pkg/calweek"
	"tableflip.dev/prodsched/pkg/schedule"
)

const (
	// IntervalWeeks separates consecutive doses in a maintenance cycle.
	IntervalWeeks = 6
	// Cycles is the number of follow-up doses per initial dose.
	Cycles = 3
	// boosterMarker tags the isotope that routinely requires boosters.
	// Eligibility is a plain substring test on the initial dose text.
	boosterMarker = "ac225"

	initialDoseSuffix = "Initial Dose"
	deleteKeyword     = "delete"
)

var (
	codePattern    = regexp.MustCompile(`^\d{5}-\d{3}`)
	mdTokenPattern = regexp.MustCompile(`(?i)\bMD([1-3])\b`)
	// Optional dash, en dash, or em dash separator before the keyword.
	cancelPattern  = regexp.MustCompile(`(?i)\s*[-\x{2013}\x{2014}]?\s*\bcancel(?:led)?$`)
	initialPattern = regexp.MustCompile(`(?i)\s*\binitial dose\b`)
)

// PatientCode extracts the NNNNN-NNN code prefix, or "" when absent.
func PatientCode(text string) string {
	return codePattern.FindString(strings.TrimSpace(text))
}

// IsMaintenance reports whether text carries an MD1-MD3 token.
func IsMaintenance(text string) bool {
	return mdTokenPattern.MatchString(text)
}

// IsInitialDose reports whether text is a confirmed-patient entry that is
// not itself a maintenance dose.
func IsInitialDose(text string) bool {
	return PatientCode(text) != "" && !IsMaintenance(text)
}

// Result summarizes what a commit did, for status reporting.
type Result struct {
	Text      string // final stored text, "" when the cell was deleted
	Deleted   bool
	Cancelled bool
	Cascaded  int         // maintenance entries deleted or cancelled
	Scheduled []time.Time // maintenance dates created this commit
}

// Engine mutates the store it is given but never owns it; persisting after
// a commit is the caller's job.
type Engine struct {
	Store *schedule.Store
}

// Commit applies text to (d, row), runs the derivation rules, and reports
// what changed. Any malformed stored key encountered while cascading is
// skipped so one bad entry cannot abort the rest of the commit.
func (g *Engine) Commit(d time.Time, row int, text string) Result {
	d = calweek.Midnight(d)
	old, _ := g.Store.Get(d, row)
	trimmed := strings.TrimSpace(text)

	// Deletion: empty text or the literal "delete" keyword.
	if trimmed == "" || strings.EqualFold(trimmed, deleteKeyword) {
		res := Result{Deleted: true}
		if IsInitialDose(old.Text) {
			res.Cascaded = g.deleteMaintenance(PatientCode(old.Text))
		}
		g.Store.Delete(d, row)
		return res
	}

	// Cancellation suffix: trailing "cancel"/"cancelled", optionally led
	// by a dash. The suffix is stripped; the flag is sticky until the
	// entry is deleted.
	cancelled := old.Cancelled
	if loc := cancelPattern.FindStringIndex(trimmed); loc != nil && loc[0] > 0 {
		base := strings.TrimSpace(trimmed[:loc[0]])
		if base != "" {
			trimmed = base
		}
		if IsInitialDose(trimmed) && !old.Cancelled {
			g.cancelMaintenance(PatientCode(trimmed))
		}
		cancelled = true
	}

	// Confirmed initial doses get a persisted " Initial Dose" suffix.
	if IsInitialDose(trimmed) && !strings.Contains(strings.ToLower(trimmed), strings.ToLower(initialDoseSuffix)) {
		trimmed += " " + initialDoseSuffix
	}

	g.Store.Set(d, row, schedule.Entry{Text: trimmed, Cancelled: cancelled})

	res := Result{Text: trimmed, Cancelled: cancelled}
	if cancelled {
		res.Cascaded = g.countMaintenance(PatientCode(trimmed))
	}

	// Auto-scheduling of the MD1-MD3 cycle.
	if !cancelled && IsInitialDose(trimmed) && strings.Contains(strings.ToLower(trimmed), boosterMarker) {
		res.Scheduled = g.scheduleCycle(d, trimmed)
	}
	return res
}

// scheduleCycle writes the three maintenance doses at 6, 12, and 18 weeks
// after the initial date. If an MD1 for this code already sits at the
// 6-week offset the whole cycle is presumed present; re-commits of an
// already-scheduled dose must not cascade duplicates.
func (g *Engine) scheduleCycle(initial time.Time, text string) []time.Time {
	code := PatientCode(text)
	md1 := initial.AddDate(0, 0, IntervalWeeks*calweek.DaysPerWeek)
	if g.hasMaintenanceOn(md1, code) {
		return nil
	}

	label := cleanLabel(text, code)
	var created []time.Time
	for k := 1; k <= Cycles; k++ {
		target := initial.AddDate(0, 0, k*IntervalWeeks*calweek.DaysPerWeek)
		mdText := fmt.Sprintf("%s MD%d", label, k)
		if g.hasTextOn(target, mdText) {
			continue
		}
		slot := g.Store.FirstEmptySlot(target)
		g.Store.GrowRows(target, slot+1)
		g.Store.Set(target, slot, schedule.Entry{Text: mdText})
		created = append(created, target)
	}
	return created
}

// cleanLabel strips MD and Initial Dose tokens plus any trailing dash, and
// guarantees the patient code prefix before the label is reused.
func cleanLabel(text, code string) string {
	label := mdTokenPattern.ReplaceAllString(text, "")
	label = initialPattern.ReplaceAllString(label, "")
	label = strings.TrimRight(strings.TrimSpace(label), "-–— ")
	label = strings.Join(strings.Fields(label), " ")
	if code != "" && !strings.HasPrefix(label, code) {
		label = strings.TrimSpace(code + " " + label)
	}
	return label
}

// hasMaintenanceOn reports whether any row at d holds an MD entry for code.
func (g *Engine) hasMaintenanceOn(d time.Time, code string) bool {
	for _, e := range g.Store.EntriesOn(d) {
		if strings.Contains(e.Text, code) && IsMaintenance(e.Text) {
			return true
		}
	}
	return false
}

// hasTextOn reports whether any row at d holds text equal to want after
// normalization.
func (g *Engine) hasTextOn(d time.Time, want string) bool {
	norm := strings.ToLower(strings.TrimSpace(want))
	for _, e := range g.Store.EntriesOn(d) {
		if strings.ToLower(strings.TrimSpace(e.Text)) == norm {
			return true
		}
	}
	return false
}

// deleteMaintenance removes every maintenance entry for code anywhere in
// the store, not just at the computed offsets; a dose may have been moved
// by hand. Returns the number removed.
func (g *Engine) deleteMaintenance(code string) int {
	if code == "" {
		return 0
	}
	removed := 0
	for key, e := range g.Store.Entries {
		if !strings.Contains(e.Text, code) || !IsMaintenance(e.Text) {
			continue
		}
		if _, _, err := schedule.ParseDateKey(key); err != nil {
			continue
		}
		delete(g.Store.Entries, key)
		removed++
	}
	return removed
}

// cancelMaintenance flags every maintenance entry for code as cancelled,
// preserving its text. Returns the number flagged.
func (g *Engine) cancelMaintenance(code string) int {
	if code == "" {
		return 0
	}
	flagged := 0
	for key, e := range g.Store.Entries {
		if !strings.Contains(e.Text, code) || !IsMaintenance(e.Text) {
			continue
		}
		e.Cancelled = true
		g.Store.Entries[key] = e
		flagged++
	}
	return flagged
}

// countMaintenance counts the maintenance entries for code.
func (g *Engine) countMaintenance(code string) int {
	if code == "" {
		return 0
	}
	n := 0
	for _, e := range g.Store.Entries {
		if strings.Contains(e.Text, code) && IsMaintenance(e.Text) {
			n++
		}
	}
	return n
}
