package selection

import (
	"fmt"
	"math"
	"sort"
	"time"

	"venuebook/models"
)

// ConsecutiveRanges groups the sorted selection into maximal runs of
// day-adjacent dates. Used to detect consecutiveness violations after bulk
// replaces, which do not enforce the constraint up front.
func (s *DaySelection) ConsecutiveRanges() []models.ConsecutiveRange {
	if len(s.selected) == 0 {
		return nil
	}

	sorted := make([]time.Time, len(s.selected))
	copy(sorted, s.selected)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	ranges := []models.ConsecutiveRange{}
	start, end := sorted[0], sorted[0]
	for _, d := range sorted[1:] {
		if sameDay(end.AddDate(0, 0, 1), d) {
			end = d
			continue
		}
		ranges = append(ranges, newRange(start, end))
		start, end = d, d
	}
	return append(ranges, newRange(start, end))
}

func newRange(start, end time.Time) models.ConsecutiveRange {
	// Round so a DST-shortened day still counts as a whole day.
	length := int(math.Round(NormalizeDay(end).Sub(NormalizeDay(start)).Hours()/24)) + 1
	return models.ConsecutiveRange{Start: start, End: end, Length: length}
}

// SelectionError returns the highest-priority problem with the current
// selection, or "" when it is valid.
func (s *DaySelection) SelectionError() string {
	if len(s.selected) < s.cfg.MinDays {
		return fmt.Sprintf("select at least %d days", s.cfg.MinDays)
	}
	// Unreachable through the mutators, which cap at MaxDays.
	if len(s.selected) > s.cfg.MaxDays {
		return fmt.Sprintf("cannot select more than %d days", s.cfg.MaxDays)
	}
	if s.cfg.RequireConsecutive && len(s.ConsecutiveRanges()) > 1 {
		return "selected days must be consecutive"
	}
	return ""
}
