package schedule

import (
	"strings"
	"time"

	"tableflip.dev/prodsched/pkg/calweek"
	"tableflip.dev/prodsched/pkg/palette"
)

// Closure is a user-defined facility closure date.
type Closure struct {
	Name string `json:"name"`
	Date string `json:"date"` // ISO date
}

// Store is the single writable source of truth for the loaded schedule
// file: entries keyed by (date, row), per-week row counts, custom legends,
// holiday suppression, custom closures, and the last-viewed month cursor.
// It has no internal locking; the process is single-threaded by design.
type Store struct {
	Year  int
	Month time.Month

	Entries            map[string]Entry
	WeekRows           map[string]int
	CustomLegends      []palette.Legend
	SuppressedHolidays []string
	Closures           []Closure
}

// New returns an empty store positioned on the given month.
func New(year int, month time.Month) *Store {
	return &Store{
		Year:     year,
		Month:    month,
		Entries:  map[string]Entry{},
		WeekRows: map[string]int{},
	}
}

// Get returns the entry at (date, row) and whether one exists.
func (s *Store) Get(d time.Time, row int) (Entry, bool) {
	e, ok := s.Entries[DateKey(d, row)]
	return e, ok
}

// Set upserts the entry at (date, row). Row bounds are the caller's
// responsibility; grow the week's row count first.
func (s *Store) Set(d time.Time, row int, e Entry) {
	s.Entries[DateKey(d, row)] = e
}

// Delete removes the entry at (date, row); no-op when absent.
func (s *Store) Delete(d time.Time, row int) {
	delete(s.Entries, DateKey(d, row))
}

// RowCount reports the number of stacked rows for the week containing d,
// looked up against d's own month grid. Weeks default to one row.
func (s *Store) RowCount(d time.Time) int {
	idx := calweek.WeekIndexOf(d.Year(), d.Month(), d)
	if idx < 0 {
		return 1
	}
	if n, ok := s.WeekRows[WeekKey(d.Year(), d.Month(), idx)]; ok && n >= 1 {
		return n
	}
	return 1
}

// GrowRows raises the row count of the week containing d to at least n.
// Shrinking never happens here.
func (s *Store) GrowRows(d time.Time, n int) {
	idx := calweek.WeekIndexOf(d.Year(), d.Month(), d)
	if idx < 0 || n < 1 {
		return
	}
	key := WeekKey(d.Year(), d.Month(), idx)
	if cur, ok := s.WeekRows[key]; !ok || n > cur {
		s.WeekRows[key] = n
	}
}

// EnsureRowCapacity scans persisted entries for the month and raises each
// week's row count to cover the highest occupied row index. Counts only
// ever move upward. Run this after a load and before any row-dependent
// lookup; a freshly loaded file may hold rows beyond the cached counts.
func (s *Store) EnsureRowCapacity(year int, month time.Month) {
	weeks := calweek.WeeksOf(year, month)
	required := make(map[int]int, len(weeks))

	for key := range s.Entries {
		d, row, err := ParseDateKey(key)
		if err != nil {
			continue // malformed keys are skipped, not fatal
		}
		if d.Year() != year || d.Month() != month {
			continue
		}
		idx := calweek.WeekIndexOf(year, month, d)
		if idx < 0 {
			continue
		}
		if need := row + 1; need > required[idx] {
			required[idx] = need
		}
	}

	for idx := range weeks {
		key := WeekKey(year, month, idx)
		cur := s.WeekRows[key]
		if cur < 1 {
			cur = 1
		}
		if req := required[idx]; req > cur {
			cur = req
		}
		s.WeekRows[key] = cur
	}
}

// placeholderText reports whether text is one of the literals that count
// as an empty slot for scheduling purposes.
func placeholderText(text string) bool {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "", "weekend", "placeholder":
		return true
	}
	return false
}

// FirstEmptySlot scans the rows at d top to bottom and returns the first
// row whose entry is absent, empty, or a recognized placeholder. When all
// rows are occupied it returns the current row count: the next free index,
// which the caller must make room for via GrowRows.
func (s *Store) FirstEmptySlot(d time.Time) int {
	rows := s.RowCount(d)
	for row := 0; row < rows; row++ {
		e, ok := s.Get(d, row)
		if !ok || placeholderText(e.Text) {
			return row
		}
	}
	return rows
}

// AddRow appends one row to the given week of the month grid.
func (s *Store) AddRow(year int, month time.Month, weekIdx int) {
	key := WeekKey(year, month, weekIdx)
	cur := s.WeekRows[key]
	if cur < 1 {
		cur = 1
	}
	s.WeekRows[key] = cur + 1
}

// RemoveRow drops the last row of the given week if that row is empty on
// every day of the week. Auto-filled weekend/holiday text counts as empty;
// ignorable reports those fill texts. Removed entries are purged. Returns
// false when the row is occupied or only one row remains.
func (s *Store) RemoveRow(year int, month time.Month, weekIdx int, ignorable func(string) bool) bool {
	weeks := calweek.WeeksOf(year, month)
	if weekIdx < 0 || weekIdx >= len(weeks) {
		return false
	}
	key := WeekKey(year, month, weekIdx)
	cur := s.WeekRows[key]
	if cur < 1 {
		cur = 1
	}
	if cur == 1 {
		return false
	}

	last := cur - 1
	for _, d := range weeks[weekIdx] {
		e, ok := s.Get(d, last)
		if !ok {
			continue
		}
		text := strings.TrimSpace(e.Text)
		if text == "" {
			continue
		}
		if ignorable != nil && ignorable(text) {
			continue
		}
		return false
	}

	for _, d := range weeks[weekIdx] {
		s.Delete(d, last)
	}
	s.WeekRows[key] = last
	return true
}

// EntriesOn returns the occupied rows at d in row order.
func (s *Store) EntriesOn(d time.Time) map[int]Entry {
	out := map[int]Entry{}
	rows := s.RowCount(d)
	for row := 0; row < rows; row++ {
		if e, ok := s.Get(d, row); ok {
			out[row] = e
		}
	}
	return out
}
