// Package app holds the explicit session state and the high-level
// operations the CLI drives: commit, navigation, row management, legend
// and closure edits. Every edit flows commit -> derivation -> autosave.
package app

import (
	"errors"
	"fmt"
	"time"

	"tableflip.dev/prodsched/pkg/autofill"
	"tableflip.dev/prodsched/pkg/calweek"
	"tableflip.dev/prodsched/pkg/dosing"
	"tableflip.dev/prodsched/pkg/grid"
	"tableflip.dev/prodsched/pkg/holiday"
	"tableflip.dev/prodsched/pkg/palette"
	"tableflip.dev/prodsched/pkg/schedule"
	"tableflip.dev/prodsched/pkg/store"
)

// Status is the autosave caption: where the document lives, when it was
// last written, and the last failure if any. A failed save never aborts
// the session; the in-memory store keeps the edit.
type Status struct {
	Path    string
	SavedAt time.Time
	Err     error
}

// Service is one editing session over one schedule directory.
type Service struct {
	Dir    string
	Store  *schedule.Store
	Source holiday.Source
	Status Status

	watchdog store.Watchdog
}

// Open loads the schedule document in dir, or starts a fresh store on the
// current month when none exists. The visible month is prepared (row
// capacity, weekend/holiday fill) before the service is returned.
func Open(dir string) (*Service, error) {
	if dir == "" {
		return nil, errors.New("app: no schedule directory")
	}
	path := store.Path(dir)

	s, err := store.Load(path)
	if err != nil {
		return nil, fmt.Errorf("app: open %s: %w", dir, err)
	}
	if s == nil {
		now := time.Now()
		s = schedule.New(now.Year(), now.Month())
	}

	svc := &Service{
		Dir:      dir,
		Store:    s,
		Source:   holiday.Federal{},
		Status:   Status{Path: path},
		watchdog: store.Watchdog{Path: path},
	}
	svc.watchdog.Mark()
	svc.prepareMonth()
	return svc, nil
}

// Calendar returns the effective holiday calendar for this session.
func (s *Service) Calendar() holiday.Calendar {
	return holiday.Calendar{Source: s.Source, Store: s.Store}
}

// Commit applies raw text to a cell, runs the dosing derivation, re-fills
// the visible month (a cascade can grow rows on weekend spillover days),
// and autosaves. The result reports what the derivation did.
func (s *Service) Commit(d time.Time, row int, text string) dosing.Result {
	engine := dosing.Engine{Store: s.Store}
	res := engine.Commit(d, row, text)
	s.prepareMonth()
	s.Save()
	return res
}

// Save writes the document and records the outcome in Status. Errors are
// captured, not returned: the session continues with unsaved state and
// the caption shows the failure.
func (s *Service) Save() {
	path, err := store.Save(s.Store, s.Dir)
	if err != nil {
		s.Status.Err = err
		return
	}
	s.Status = Status{Path: path, SavedAt: time.Now()}
	s.watchdog.Mark()
}

// Refresh reloads the document if something else rewrote it on disk.
// Returns true when a reload happened.
func (s *Service) Refresh() (bool, error) {
	if !s.watchdog.Changed() {
		return false, nil
	}
	loaded, err := store.Load(s.watchdog.Path)
	if err != nil {
		return false, fmt.Errorf("app: refresh: %w", err)
	}
	if loaded == nil {
		// The file became unreadable; keep the in-memory state.
		s.watchdog.Mark()
		return false, nil
	}
	s.Store = loaded
	s.watchdog.Mark()
	s.prepareMonth()
	return true, nil
}

// NextMonth autosaves and advances the visible month.
func (s *Service) NextMonth() {
	s.step(calweek.NextMonth(s.Store.Year, s.Store.Month))
}

// PrevMonth autosaves and steps the visible month back.
func (s *Service) PrevMonth() {
	s.step(calweek.PrevMonth(s.Store.Year, s.Store.Month))
}

// GoTo autosaves and jumps the visible month.
func (s *Service) GoTo(year int, month time.Month) {
	s.step(year, month)
}

func (s *Service) step(year int, month time.Month) {
	s.Save()
	s.Store.Year = year
	s.Store.Month = month
	s.prepareMonth()
	s.Save()
}

// AddRow appends an action row to a week of the visible month.
func (s *Service) AddRow(weekIdx int) {
	s.Store.AddRow(s.Store.Year, s.Store.Month, weekIdx)
	s.Save()
}

// RemoveRow drops the last action row of a week if it holds nothing but
// auto-fill content. Returns false when the guard refuses.
func (s *Service) RemoveRow(weekIdx int) bool {
	cal := s.Calendar()
	ok := s.Store.RemoveRow(s.Store.Year, s.Store.Month, weekIdx, func(text string) bool {
		return autofill.IsFillText(text, s.Store.Year, cal)
	})
	if ok {
		s.Save()
	}
	return ok
}

// AddLegend appends a user legend; its label outranks every built-in
// pattern during classification.
func (s *Service) AddLegend(label, description, colorHex string) error {
	c, err := palette.Parse(colorHex)
	if err != nil {
		return fmt.Errorf("app: legend %q: %w", label, err)
	}
	s.Store.CustomLegends = append(s.Store.CustomLegends, palette.Legend{
		Label:       label,
		Description: description,
		Color:       c,
	})
	s.Save()
	return nil
}

// RemoveLegend drops the first user legend with the given label.
func (s *Service) RemoveLegend(label string) bool {
	for i, l := range s.Store.CustomLegends {
		if l.Label == label {
			s.Store.CustomLegends = append(s.Store.CustomLegends[:i], s.Store.CustomLegends[i+1:]...)
			s.Save()
			return true
		}
	}
	return false
}

// AddClosure records a site closure; it behaves like a holiday on its
// date from then on.
func (s *Service) AddClosure(name, isoDate string) error {
	if _, err := time.ParseInLocation("2006-01-02", isoDate, time.UTC); err != nil {
		return fmt.Errorf("app: closure %q: bad date %q", name, isoDate)
	}
	s.Store.Closures = append(s.Store.Closures, schedule.Closure{Name: name, Date: isoDate})
	s.prepareMonth()
	s.Save()
	return nil
}

// SuppressHoliday hides a holiday by name, across all years.
func (s *Service) SuppressHoliday(name string) {
	for _, n := range s.Store.SuppressedHolidays {
		if n == name {
			return
		}
	}
	s.Store.SuppressedHolidays = append(s.Store.SuppressedHolidays, name)
	s.Save()
}

// RestoreHoliday undoes a suppression.
func (s *Service) RestoreHoliday(name string) bool {
	for i, n := range s.Store.SuppressedHolidays {
		if n == name {
			s.Store.SuppressedHolidays = append(s.Store.SuppressedHolidays[:i], s.Store.SuppressedHolidays[i+1:]...)
			s.Save()
			return true
		}
	}
	return false
}

// View projects the visible month for printers and exporters.
func (s *Service) View(opts grid.Options) grid.Month {
	return grid.Build(s.Store, s.Store.Year, s.Store.Month, s.Calendar(), opts)
}

// prepareMonth makes the visible month presentable: row capacity honors
// the stored counts and every weekend/holiday carries its placeholder.
func (s *Service) prepareMonth() {
	s.Store.EnsureRowCapacity(s.Store.Year, s.Store.Month)
	autofill.Fill(s.Store, s.Store.Year, s.Store.Month, s.Calendar())
}
