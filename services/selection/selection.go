// Package selection owns the set of selected calendar days for one booking
// session. Dates are normalized to midnight and compared by calendar day.
// Illegal mutations are silently rejected; callers poll SelectionError for
// user-facing diagnostics.
package selection

import (
	"time"

	"venuebook/models"
)

// DaySelection is the day-selection state machine for one booking session.
// It is the sole owner and mutator of its selection set; it is not safe for
// concurrent use and is not meant to be shared between sessions.
type DaySelection struct {
	cfg      models.SelectionConfig
	selected []time.Time
	now      func() time.Time
}

// New creates an empty selection for the given event window and constraints.
func New(cfg models.SelectionConfig) *DaySelection {
	return &DaySelection{cfg: cfg, now: time.Now}
}

// NormalizeDay truncates a date to midnight in its own location.
func NormalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsDateInRange reports whether d falls within the event window, inclusive.
func (s *DaySelection) IsDateInRange(d time.Time) bool {
	day := NormalizeDay(d)
	start := NormalizeDay(s.cfg.EventStartDate)
	end := NormalizeDay(s.cfg.EventEndDate)
	return !day.Before(start) && !day.After(end)
}

// IsDateDisabled reports whether d is blocked, either explicitly or because
// past dates are not allowed.
func (s *DaySelection) IsDateDisabled(d time.Time) bool {
	for _, blocked := range s.cfg.DisabledDates {
		if sameDay(d, blocked) {
			return true
		}
	}
	if !s.cfg.AllowPastDates && NormalizeDay(d).Before(NormalizeDay(s.now())) {
		return true
	}
	return false
}

// IsDateAvailable reports whether d may appear in a selection at all.
func (s *DaySelection) IsDateAvailable(d time.Time) bool {
	return s.IsDateInRange(d) && !s.IsDateDisabled(d)
}

// IsDateSelected reports day-equality against the selection set.
func (s *DaySelection) IsDateSelected(d time.Time) bool {
	for _, sel := range s.selected {
		if sameDay(sel, d) {
			return true
		}
	}
	return false
}

// CanSelectDate reports whether a click on d should be accepted. An already
// selected date is always selectable so a toggle can deselect it.
func (s *DaySelection) CanSelectDate(d time.Time) bool {
	if !s.IsDateAvailable(d) {
		return false
	}
	if s.IsDateSelected(d) {
		return true
	}
	if len(s.selected) >= s.cfg.MaxDays {
		return false
	}
	if s.cfg.RequireConsecutive && len(s.selected) > 0 {
		return s.isAdjacent(d)
	}
	return true
}

// isAdjacent reports whether d is exactly one day before or after any
// selected date.
func (s *DaySelection) isAdjacent(d time.Time) bool {
	day := NormalizeDay(d)
	for _, sel := range s.selected {
		if sameDay(sel.AddDate(0, 0, 1), day) || sameDay(sel.AddDate(0, 0, -1), day) {
			return true
		}
	}
	return false
}

// SelectDate adds d to the selection; a disallowed date is a silent no-op.
func (s *DaySelection) SelectDate(d time.Time) {
	if !s.CanSelectDate(d) || s.IsDateSelected(d) {
		return
	}
	s.selected = append(s.selected, NormalizeDay(d))
}

// DeselectDate removes any selected date matching d by calendar day.
func (s *DaySelection) DeselectDate(d time.Time) {
	kept := s.selected[:0]
	for _, sel := range s.selected {
		if !sameDay(sel, d) {
			kept = append(kept, sel)
		}
	}
	s.selected = kept
}

// ToggleDate deselects d if selected, otherwise selects it.
func (s *DaySelection) ToggleDate(d time.Time) {
	if s.IsDateSelected(d) {
		s.DeselectDate(d)
		return
	}
	s.SelectDate(d)
}

// ClearSelection empties the selection set.
func (s *DaySelection) ClearSelection() {
	s.selected = nil
}

// SetSelectedDates bulk-replaces the selection, keeping only available dates
// in input order and truncating to the day limit. Bulk replace does not
// enforce consecutiveness; only interactive single-date selection does.
func (s *DaySelection) SetSelectedDates(dates []time.Time) {
	s.selected = nil
	for _, d := range dates {
		if !s.IsDateAvailable(d) || s.IsDateSelected(d) {
			continue
		}
		s.selected = append(s.selected, NormalizeDay(d))
		if len(s.selected) >= s.cfg.MaxDays {
			break
		}
	}
}

// SelectedDates returns a copy of the selection in insertion order.
func (s *DaySelection) SelectedDates() []time.Time {
	out := make([]time.Time, len(s.selected))
	copy(out, s.selected)
	return out
}

// SelectedCount returns the number of selected days.
func (s *DaySelection) SelectedCount() int {
	return len(s.selected)
}

// IsMaxReached reports whether the selection is at its day limit.
func (s *DaySelection) IsMaxReached() bool {
	return len(s.selected) >= s.cfg.MaxDays
}

// IsValidSelection reports whether the count sits within [MinDays, MaxDays].
func (s *DaySelection) IsValidSelection() bool {
	return len(s.selected) >= s.cfg.MinDays && len(s.selected) <= s.cfg.MaxDays
}
