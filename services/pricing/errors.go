package pricing

import (
	"fmt"

	"venuebook/models"
)

// Pricing error codes.
const (
	CodeNoTiersProvided  = "noTiersProvided"
	CodeInvalidDayCount  = "invalidDayCount"
	CodeNoMatchingTier   = "noMatchingTier"
	CodeCalculationError = "calculationError"
)

// PricingError carries enough context (requested day count, available tier
// day counts) for a caller to render a useful message.
type PricingError struct {
	Code          string
	Message       string
	DayCount      int
	AvailableDays []int
	Cause         error
}

func (e *PricingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PricingError) Unwrap() error {
	return e.Cause
}

func newNoTiersError(dayCount int) error {
	return &PricingError{
		Code:     CodeNoTiersProvided,
		Message:  "no pricing tiers provided",
		DayCount: dayCount,
	}
}

func newInvalidDayCountError(dayCount int, tiers []models.PricingTier) error {
	return &PricingError{
		Code:          CodeInvalidDayCount,
		Message:       fmt.Sprintf("day count must be a positive integer, got %d", dayCount),
		DayCount:      dayCount,
		AvailableDays: tierDayCounts(tiers),
	}
}

func newNoMatchingTierError(dayCount int, tiers []models.PricingTier) error {
	return &PricingError{
		Code:          CodeNoMatchingTier,
		Message:       fmt.Sprintf("no tier matches a booking of %d days", dayCount),
		DayCount:      dayCount,
		AvailableDays: tierDayCounts(tiers),
	}
}

func newCalculationError(dayCount int, tiers []models.PricingTier, cause error) error {
	return &PricingError{
		Code:          CodeCalculationError,
		Message:       fmt.Sprintf("price calculation failed for %d days", dayCount),
		DayCount:      dayCount,
		AvailableDays: tierDayCounts(tiers),
		Cause:         cause,
	}
}

func tierDayCounts(tiers []models.PricingTier) []int {
	days := make([]int, len(tiers))
	for i, t := range tiers {
		days[i] = t.NumberOfDays
	}
	return days
}
