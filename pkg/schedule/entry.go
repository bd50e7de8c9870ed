// Package schedule holds the calendar data model: the entry record, its
// date/row keying, and the store that owns all per-month state.
package schedule

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/prodsched/pkg/calweek"
)

const layoutISO = "2006-01-02"

// Entry is one cell's content.
type Entry struct {
	Text      string `json:"text"`
	Cancelled bool   `json:"cancelled,omitempty"`
}

// IsZero reports whether the entry carries no content at all.
func (e Entry) IsZero() bool {
	return strings.TrimSpace(e.Text) == "" && !e.Cancelled
}

// UnmarshalJSON accepts both the structured {text, cancelled} shape and the
// legacy flat-string shape, upgrading the latter to cancelled=false.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.Text = s
		e.Cancelled = false
		return nil
	}
	type plain Entry
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = Entry(p)
	return nil
}

// DateKey builds the persisted entry key, e.g. "2025-08-13_0".
func DateKey(d time.Time, row int) string {
	return fmt.Sprintf("%s_%d", calweek.Midnight(d).Format(layoutISO), row)
}

// ParseDateKey splits an entry key back into its date and row index.
func ParseDateKey(key string) (time.Time, int, error) {
	datePart, rowPart, ok := strings.Cut(key, "_")
	if !ok {
		return time.Time{}, 0, fmt.Errorf("schedule: malformed entry key %q", key)
	}
	d, err := time.ParseInLocation(layoutISO, datePart, time.UTC)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("schedule: malformed date in key %q: %w", key, err)
	}
	row, err := strconv.Atoi(rowPart)
	if err != nil || row < 0 {
		return time.Time{}, 0, fmt.Errorf("schedule: malformed row in key %q", key)
	}
	return d, row, nil
}

// WeekKey builds the persisted week-row-count key, e.g. "2025-8_0".
// The month is unpadded; historical files were written that way.
func WeekKey(year int, month time.Month, weekIdx int) string {
	return fmt.Sprintf("%d-%d_%d", year, int(month), weekIdx)
}
