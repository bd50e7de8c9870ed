package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/prodsched/pkg/calweek"
	"tableflip.dev/prodsched/pkg/palette"
	"tableflip.dev/prodsched/pkg/schedule"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := schedule.New(2025, time.August)
	s.Set(calweek.Date(2025, time.August, 4), 0, schedule.Entry{Text: "10234-001 AC225 Initial Dose"})
	s.Set(calweek.Date(2025, time.August, 5), 1, schedule.Entry{Text: "51234-002 MD2", Cancelled: true})
	s.WeekRows[schedule.WeekKey(2025, time.August, 1)] = 2
	s.CustomLegends = []palette.Legend{{Label: "QC Hold", Description: "quality hold", Color: "#123456"}}
	s.SuppressedHolidays = []string{"Columbus Day"}
	s.Closures = []schedule.Closure{{Name: "Deep Clean", Date: "2025-08-15"}}

	path, err := Save(s, dir)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if path != Path(dir) {
		t.Fatalf("unexpected path %q", path)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatalf("expected a document")
	}
	if got.Year != 2025 || got.Month != time.August {
		t.Fatalf("cursor lost: %d-%d", got.Year, got.Month)
	}
	if e, _ := got.Get(calweek.Date(2025, time.August, 5), 1); !e.Cancelled || e.Text != "51234-002 MD2" {
		t.Fatalf("cancelled entry lost: %+v", e)
	}
	if got.WeekRows[schedule.WeekKey(2025, time.August, 1)] != 2 {
		t.Fatalf("week rows lost")
	}
	if len(got.CustomLegends) != 1 || got.CustomLegends[0].Color != "#123456" {
		t.Fatalf("custom legends lost: %+v", got.CustomLegends)
	}
	if len(got.SuppressedHolidays) != 1 || got.SuppressedHolidays[0] != "Columbus Day" {
		t.Fatalf("suppressed holidays lost")
	}
	if len(got.Closures) != 1 || got.Closures[0].Date != "2025-08-15" {
		t.Fatalf("closures lost")
	}
}

func TestLoadLegacyFlatStrings(t *testing.T) {
	dir := t.TempDir()
	legacy := `{
  "meta": {"year": 2024, "month": 12},
  "entries": {
    "2024-12-02_0": "10234-001 AC225 Initial Dose",
    "2024-12-03_0": {"text": "Shutdown", "cancelled": true}
  },
  "week_action_rows": {"2024-12_0": 2}
}`
	path := Path(dir)
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s == nil {
		t.Fatalf("expected a document")
	}
	if e, _ := s.Get(calweek.Date(2024, time.December, 2), 0); e.Text != "10234-001 AC225 Initial Dose" || e.Cancelled {
		t.Fatalf("flat string not upgraded: %+v", e)
	}
	if e, _ := s.Get(calweek.Date(2024, time.December, 3), 0); !e.Cancelled {
		t.Fatalf("structured entry lost its flag: %+v", e)
	}

	// Writing back produces the structured form and survives another load.
	if _, err := Save(s, dir); err != nil {
		t.Fatalf("resave: %v", err)
	}
	again, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if e, _ := again.Get(calweek.Date(2024, time.December, 2), 0); e.Text != "10234-001 AC225 Initial Dose" {
		t.Fatalf("round trip lost text: %+v", e)
	}
}

func TestLoadMissingAndGarbage(t *testing.T) {
	dir := t.TempDir()

	s, err := Load(Path(dir))
	if err != nil || s != nil {
		t.Fatalf("missing file should be (nil, nil), got %v %v", s, err)
	}

	if err := os.WriteFile(Path(dir), []byte("not json at all"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s, err = Load(Path(dir))
	if err != nil || s != nil {
		t.Fatalf("garbage file should be (nil, nil), got %v %v", s, err)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	s := schedule.New(2025, time.March)
	if _, err := Save(s, dir); err != nil {
		t.Fatalf("save: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != Filename {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected only %s, got %v", Filename, names)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "schedules")
	s := schedule.New(2025, time.March)
	if _, err := Save(s, dir); err != nil {
		t.Fatalf("save into missing directory: %v", err)
	}
	if _, err := os.Stat(Path(dir)); err != nil {
		t.Fatalf("document not written: %v", err)
	}
}
