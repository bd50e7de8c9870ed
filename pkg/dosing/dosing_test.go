package dosing

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/prodsched/pkg/calweek"
	"tableflip.dev/prodsched/pkg/schedule"
)

func newEngine() *Engine {
	return &Engine{Store: schedule.New(2025, time.January)}
}

func mdEntries(s *schedule.Store, code string) map[string]schedule.Entry {
	out := map[string]schedule.Entry{}
	for key, e := range s.Entries {
		if strings.Contains(e.Text, code) && IsMaintenance(e.Text) {
			out[key] = e
		}
	}
	return out
}

func TestMaintenanceCascadeDates(t *testing.T) {
	g := newEngine()
	initial := calweek.Date(2025, time.January, 6)
	res := g.Commit(initial, 0, "10234-001 AC225")

	if res.Text != "10234-001 AC225 Initial Dose" {
		t.Fatalf("initial dose text not normalized: %q", res.Text)
	}
	if len(res.Scheduled) != 3 {
		t.Fatalf("expected 3 scheduled doses, got %d", len(res.Scheduled))
	}

	want := map[string]string{
		"2025-02-17_0": "10234-001 AC225 MD1",
		"2025-03-31_0": "10234-001 AC225 MD2",
		"2025-05-12_0": "10234-001 AC225 MD3",
	}
	for key, text := range want {
		e, ok := g.Store.Entries[key]
		if !ok {
			t.Fatalf("missing maintenance entry at %s", key)
		}
		if e.Text != text {
			t.Errorf("entry at %s = %q, want %q", key, e.Text, text)
		}
		if e.Cancelled {
			t.Errorf("fresh maintenance entry at %s should not be cancelled", key)
		}
	}
}

func TestCascadeIdempotence(t *testing.T) {
	g := newEngine()
	initial := calweek.Date(2025, time.January, 6)
	g.Commit(initial, 0, "10234-001 AC225")
	g.Commit(initial, 0, "10234-001 AC225 Initial Dose") // re-save unchanged
	g.Commit(initial, 0, "10234-001 AC225")              // and again raw

	if got := len(mdEntries(g.Store, "10234-001")); got != 3 {
		t.Fatalf("expected exactly 3 maintenance entries, got %d", got)
	}
}

func TestNoCycleWithoutBoosterIsotope(t *testing.T) {
	g := newEngine()
	res := g.Commit(calweek.Date(2025, time.January, 6), 0, "10234-001 IN111")
	if res.Text != "10234-001 IN111 Initial Dose" {
		t.Fatalf("suffixing should still apply: %q", res.Text)
	}
	if len(res.Scheduled) != 0 {
		t.Fatalf("IN111 dose must not trigger a maintenance cycle")
	}
}

func TestCancellationPropagation(t *testing.T) {
	g := newEngine()
	initial := calweek.Date(2025, time.January, 6)
	g.Commit(initial, 0, "10234-001 AC225")

	res := g.Commit(initial, 0, "10234-001 AC225 - cancel")
	if !res.Cancelled {
		t.Fatalf("cancel suffix should set cancelled")
	}
	if res.Text != "10234-001 AC225 Initial Dose" {
		t.Fatalf("cancel suffix should be stripped, got %q", res.Text)
	}

	e, _ := g.Store.Get(initial, 0)
	if !e.Cancelled {
		t.Fatalf("initial entry should be cancelled")
	}
	mds := mdEntries(g.Store, "10234-001")
	if len(mds) != 3 {
		t.Fatalf("maintenance entries must survive cancellation, got %d", len(mds))
	}
	for key, e := range mds {
		if !e.Cancelled {
			t.Errorf("maintenance entry %s not cancelled", key)
		}
		if !strings.HasSuffix(e.Text, "MD1") && !strings.HasSuffix(e.Text, "MD2") && !strings.HasSuffix(e.Text, "MD3") {
			t.Errorf("maintenance text altered: %q", e.Text)
		}
	}

	// A cancelled dose must not reschedule on re-commit.
	res = g.Commit(initial, 0, "10234-001 AC225")
	if res.Scheduled != nil {
		t.Fatalf("cancelled dose must not schedule new maintenance")
	}
}

func TestCancelledSuffixVariants(t *testing.T) {
	for _, text := range []string{
		"10234-001 AC225 cancel",
		"10234-001 AC225 - cancelled",
		"10234-001 AC225 – Cancelled",
		"10234-001 AC225-cancel",
	} {
		g := newEngine()
		d := calweek.Date(2025, time.April, 7)
		res := g.Commit(d, 0, text)
		if !res.Cancelled {
			t.Errorf("%q should be recognized as cancellation", text)
		}
		if strings.Contains(strings.ToLower(res.Text), "cancel") {
			t.Errorf("%q: suffix not stripped from %q", text, res.Text)
		}
	}
}

func TestDeletionCascade(t *testing.T) {
	g := newEngine()
	initial := calweek.Date(2025, time.January, 6)
	g.Commit(initial, 0, "10234-001 AC225")
	g.Commit(calweek.Date(2025, time.January, 7), 0, "55555-002 AC225")

	res := g.Commit(initial, 0, "delete")
	if !res.Deleted || res.Cascaded != 3 {
		t.Fatalf("expected deletion with 3 cascaded removals, got %+v", res)
	}
	if _, ok := g.Store.Get(initial, 0); ok {
		t.Fatalf("initial entry should be gone")
	}
	if got := len(mdEntries(g.Store, "10234-001")); got != 0 {
		t.Fatalf("maintenance entries for deleted dose remain: %d", got)
	}
	// The other patient is untouched.
	if got := len(mdEntries(g.Store, "55555-002")); got != 3 {
		t.Fatalf("unrelated patient lost maintenance entries: %d", got)
	}
}

func TestDeleteRelocatedMaintenance(t *testing.T) {
	g := newEngine()
	initial := calweek.Date(2025, time.January, 6)
	g.Commit(initial, 0, "10234-001 AC225")

	// Simulate a hand-moved MD2: different date than the computed offset.
	g.Store.Delete(calweek.Date(2025, time.March, 31), 0)
	g.Store.Set(calweek.Date(2025, time.April, 2), 0, schedule.Entry{Text: "10234-001 AC225 MD2"})

	g.Commit(initial, 0, "")
	if got := len(mdEntries(g.Store, "10234-001")); got != 0 {
		t.Fatalf("relocated maintenance dose survived deletion cascade: %d", got)
	}
}

func TestDeletingMaintenanceDoseDoesNotCascade(t *testing.T) {
	g := newEngine()
	initial := calweek.Date(2025, time.January, 6)
	g.Commit(initial, 0, "10234-001 AC225")

	g.Commit(calweek.Date(2025, time.February, 17), 0, "delete")
	if got := len(mdEntries(g.Store, "10234-001")); got != 2 {
		t.Fatalf("deleting one MD should leave the other two, got %d", got)
	}
	if _, ok := g.Store.Get(initial, 0); !ok {
		t.Fatalf("initial entry must survive")
	}
}

func TestScheduleFindsFreeSlotAndGrowsRows(t *testing.T) {
	g := newEngine()
	md1 := calweek.Date(2025, time.February, 17)
	g.Store.Set(md1, 0, schedule.Entry{Text: "Shutdown"})

	g.Commit(calweek.Date(2025, time.January, 6), 0, "10234-001 AC225")

	e, ok := g.Store.Get(md1, 1)
	if !ok || !IsMaintenance(e.Text) {
		t.Fatalf("MD1 should land in row 1 below the occupied row, got %+v ok=%v", e, ok)
	}
	// Feb 17 2025 sits in week 3 of February; the week must have grown.
	if got := g.Store.WeekRows[schedule.WeekKey(2025, time.February, 3)]; got < 2 {
		t.Fatalf("week row count should have grown to fit MD1, got %d", got)
	}
}

func TestTextHelpers(t *testing.T) {
	if PatientCode("10234-001 AC225") != "10234-001" {
		t.Fatalf("PatientCode failed")
	}
	if PatientCode("note about 10234-001") != "" {
		t.Fatalf("PatientCode must anchor at the start")
	}
	if !IsMaintenance("10234-001 AC225 md2") {
		t.Fatalf("MD token match should be case-insensitive")
	}
	if IsMaintenance("10234-001 AC225 MD4") {
		t.Fatalf("MD4 is not a maintenance token")
	}
	if !IsInitialDose("10234-001 AC225") || IsInitialDose("10234-001 AC225 MD1") {
		t.Fatalf("IsInitialDose misclassified")
	}
}
