// Package store persists the schedule to a single JSON document per
// directory and watches that file for external modification.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tableflip.dev/prodsched/pkg/palette"
	"tableflip.dev/prodsched/pkg/schedule"
)

// Filename is the fixed document name inside the schedule directory.
const Filename = "production_schedule.json"

// document is the on-disk shape. Entry values may be legacy flat strings;
// schedule.Entry upgrades them on decode.
type document struct {
	Meta               meta                      `json:"meta"`
	Entries            map[string]schedule.Entry `json:"entries"`
	WeekRows           map[string]int            `json:"week_action_rows"`
	CustomLegends      []palette.Legend          `json:"custom_legend_entries"`
	SuppressedHolidays []string                  `json:"suppressed_us_holidays"`
	Closures           []schedule.Closure        `json:"custom_closures"`
}

type meta struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Path returns the document path for a schedule directory.
func Path(dir string) string {
	return filepath.Join(dir, Filename)
}

// Save serializes the whole store to dir, creating the directory when
// absent. The write goes to a temp file first and is renamed into place so
// a crash mid-write cannot corrupt the previous document. Returns the
// final path.
func Save(s *schedule.Store, dir string) (string, error) {
	if s == nil {
		return "", errors.New("store: nothing to save")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("store: ensure directory: %w", err)
	}

	doc := document{
		Meta:               meta{Year: s.Year, Month: int(s.Month)},
		Entries:            s.Entries,
		WeekRows:           s.WeekRows,
		CustomLegends:      s.CustomLegends,
		SuppressedHolidays: s.SuppressedHolidays,
		Closures:           s.Closures,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("store: encode document: %w", err)
	}

	path := Path(dir)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("store: write document: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("store: replace document: %w", err)
	}
	return path, nil
}

// Load reads the document at path. A missing or unparseable file is "no
// saved data": it returns (nil, nil) and never fails the view. Real read
// errors (permissions and the like) are returned.
func Load(path string) (*schedule.Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: read document: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %v\n", path, err)
		return nil, nil
	}
	if doc.Entries == nil && doc.Meta.Year == 0 {
		// Not a schedule document.
		return nil, nil
	}

	now := time.Now()
	s := schedule.New(now.Year(), now.Month())
	if doc.Meta.Year != 0 && doc.Meta.Month >= 1 && doc.Meta.Month <= 12 {
		s.Year = doc.Meta.Year
		s.Month = time.Month(doc.Meta.Month)
	}
	if doc.Entries != nil {
		s.Entries = doc.Entries
	}
	if doc.WeekRows != nil {
		s.WeekRows = doc.WeekRows
	}
	s.CustomLegends = doc.CustomLegends
	s.SuppressedHolidays = doc.SuppressedHolidays
	s.Closures = doc.Closures
	return s, nil
}
