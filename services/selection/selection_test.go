package selection

import (
	"testing"
	"time"

	"venuebook/models"
)

func day(d int) time.Time {
	return time.Date(2026, time.June, d, 0, 0, 0, 0, time.UTC)
}

func testConfig() models.SelectionConfig {
	return models.SelectionConfig{
		EventStartDate: day(1),
		EventEndDate:   day(30),
		MinDays:        1,
		MaxDays:        5,
		AllowPastDates: true,
	}
}

func newTestSelection(cfg models.SelectionConfig) *DaySelection {
	s := New(cfg)
	s.now = func() time.Time { return day(1) }
	return s
}

func TestSelectDate_WithinWindow(t *testing.T) {
	s := newTestSelection(testConfig())
	s.SelectDate(day(10))
	if !s.IsDateSelected(day(10)) || s.SelectedCount() != 1 {
		t.Fatalf("expected day 10 selected, count=%d", s.SelectedCount())
	}
}

func TestSelectDate_OutsideWindowRejected(t *testing.T) {
	s := newTestSelection(testConfig())
	s.SelectDate(time.Date(2026, time.July, 2, 0, 0, 0, 0, time.UTC))
	if s.SelectedCount() != 0 {
		t.Fatal("expected out-of-range date rejected")
	}
}

func TestSelectDate_DisabledDateRejected(t *testing.T) {
	cfg := testConfig()
	cfg.DisabledDates = []time.Time{day(12)}
	s := newTestSelection(cfg)
	s.SelectDate(day(12))
	if s.SelectedCount() != 0 {
		t.Fatal("expected disabled date rejected")
	}
}

func TestSelectDate_PastDatePolicy(t *testing.T) {
	cfg := testConfig()
	cfg.AllowPastDates = false
	s := newTestSelection(cfg)
	s.now = func() time.Time { return day(10) }

	s.SelectDate(day(5))
	if s.SelectedCount() != 0 {
		t.Fatal("expected past date rejected")
	}
	s.SelectDate(day(10))
	if s.SelectedCount() != 1 {
		t.Fatal("expected today selectable")
	}
}

func TestSelectDate_MaxDaysCap(t *testing.T) {
	cfg := testConfig()
	cfg.MaxDays = 2
	s := newTestSelection(cfg)
	s.SelectDate(day(1))
	s.SelectDate(day(2))
	s.SelectDate(day(3))
	if s.SelectedCount() != 2 {
		t.Fatalf("expected cap at 2 days, got %d", s.SelectedCount())
	}
	if !s.IsMaxReached() {
		t.Fatal("expected IsMaxReached")
	}
}

func TestSelectDate_IdempotentRepeatedSelect(t *testing.T) {
	s := newTestSelection(testConfig())
	s.SelectDate(day(10))
	s.SelectDate(day(10))
	if s.SelectedCount() != 1 {
		t.Fatalf("repeated select must be a no-op, count=%d", s.SelectedCount())
	}
}

func TestConsecutiveSelection_NonAdjacentRejected(t *testing.T) {
	cfg := testConfig()
	cfg.MaxDays = 3
	cfg.RequireConsecutive = true
	s := newTestSelection(cfg)

	s.SelectDate(day(1))
	s.SelectDate(day(2))
	s.SelectDate(day(5))
	if s.SelectedCount() != 2 {
		t.Fatalf("expected day 5 rejected, count=%d", s.SelectedCount())
	}
	if s.IsDateSelected(day(5)) {
		t.Fatal("day 5 must not be selected")
	}
}

func TestConsecutiveSelection_BackwardAdjacencyAllowed(t *testing.T) {
	cfg := testConfig()
	cfg.RequireConsecutive = true
	s := newTestSelection(cfg)
	s.SelectDate(day(10))
	s.SelectDate(day(9))
	if s.SelectedCount() != 2 {
		t.Fatal("expected day before an existing selection to be selectable")
	}
}

func TestToggleDate(t *testing.T) {
	s := newTestSelection(testConfig())
	s.ToggleDate(day(10))
	if !s.IsDateSelected(day(10)) {
		t.Fatal("toggle should select")
	}
	s.ToggleDate(day(10))
	if s.IsDateSelected(day(10)) {
		t.Fatal("toggle should deselect")
	}
}

func TestToggleDate_DeselectsEvenWhenMaxReached(t *testing.T) {
	cfg := testConfig()
	cfg.MaxDays = 1
	s := newTestSelection(cfg)
	s.SelectDate(day(10))
	s.ToggleDate(day(10))
	if s.SelectedCount() != 0 {
		t.Fatal("a selected date must stay toggleable at the max")
	}
}

func TestSetSelectedDates_FiltersAndTruncates(t *testing.T) {
	cfg := testConfig()
	cfg.MaxDays = 2
	cfg.DisabledDates = []time.Time{day(3)}
	s := newTestSelection(cfg)

	s.SetSelectedDates([]time.Time{
		day(3),                                               // disabled
		time.Date(2026, time.May, 30, 0, 0, 0, 0, time.UTC), // out of range
		day(7), day(9), day(11),
	})
	got := s.SelectedDates()
	if len(got) != 2 || !sameDay(got[0], day(7)) || !sameDay(got[1], day(9)) {
		t.Fatalf("expected [7, 9], got %v", got)
	}
}

func TestSetSelectedDates_DoesNotEnforceConsecutiveness(t *testing.T) {
	// Bulk replace intentionally skips the adjacency rule that single-date
	// selection enforces; SelectionError still reports the gap.
	cfg := testConfig()
	cfg.RequireConsecutive = true
	s := newTestSelection(cfg)

	s.SetSelectedDates([]time.Time{day(1), day(5)})
	if s.SelectedCount() != 2 {
		t.Fatalf("bulk replace must accept non-adjacent dates, count=%d", s.SelectedCount())
	}
	if got := s.SelectionError(); got != "selected days must be consecutive" {
		t.Fatalf("expected consecutiveness error, got %q", got)
	}
}

func TestSelectionInvariants_AfterMutationSequence(t *testing.T) {
	cfg := testConfig()
	cfg.MaxDays = 3
	cfg.DisabledDates = []time.Time{day(4)}
	s := newTestSelection(cfg)

	s.SelectDate(day(2))
	s.ToggleDate(day(4)) // disabled, no-op
	s.SelectDate(day(6))
	s.DeselectDate(day(2))
	s.SelectDate(day(8))
	s.SelectDate(day(10))
	s.SelectDate(day(12)) // over max

	for _, d := range s.SelectedDates() {
		if !s.IsDateAvailable(d) {
			t.Fatalf("selected date %v is not available", d)
		}
	}
	if s.SelectedCount() > cfg.MaxDays {
		t.Fatalf("count %d exceeds max %d", s.SelectedCount(), cfg.MaxDays)
	}
}

func TestConsecutiveRanges(t *testing.T) {
	s := newTestSelection(testConfig())
	s.SetSelectedDates([]time.Time{day(6), day(2), day(1), day(3), day(7)})

	ranges := s.ConsecutiveRanges()
	if len(ranges) != 2 {
		t.Fatalf("expected 2 ranges, got %+v", ranges)
	}
	if ranges[0].Length != 3 || !sameDay(ranges[0].Start, day(1)) || !sameDay(ranges[0].End, day(3)) {
		t.Fatalf("unexpected first range: %+v", ranges[0])
	}
	if ranges[1].Length != 2 || !sameDay(ranges[1].Start, day(6)) {
		t.Fatalf("unexpected second range: %+v", ranges[1])
	}
}

func TestSelectionError_Priorities(t *testing.T) {
	cfg := testConfig()
	cfg.MinDays = 2
	cfg.RequireConsecutive = true
	s := newTestSelection(cfg)

	if got := s.SelectionError(); got != "select at least 2 days" {
		t.Fatalf("expected minimum error, got %q", got)
	}
	s.SetSelectedDates([]time.Time{day(1), day(2)})
	if got := s.SelectionError(); got != "" {
		t.Fatalf("expected valid selection, got %q", got)
	}
	if !s.IsValidSelection() {
		t.Fatal("expected IsValidSelection")
	}
}

func TestDayNormalization_ComparesByCalendarDay(t *testing.T) {
	s := newTestSelection(testConfig())
	s.SelectDate(time.Date(2026, time.June, 10, 15, 30, 0, 0, time.UTC))
	if !s.IsDateSelected(time.Date(2026, time.June, 10, 8, 0, 0, 0, time.UTC)) {
		t.Fatal("expected day-level equality regardless of time of day")
	}
	s.DeselectDate(time.Date(2026, time.June, 10, 23, 59, 0, 0, time.UTC))
	if s.SelectedCount() != 0 {
		t.Fatal("expected deselect by calendar day")
	}
}
