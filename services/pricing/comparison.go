package pricing

import (
	"sort"

	"go.uber.org/zap"

	"venuebook/models"
)

// ComparePricing builds a price table across the given day counts. Day counts
// that fail to calculate are skipped with a warning, never aborting the table.
// Exactly one entry is flagged recommended: the first with the lowest per-day
// rate. Each entry's savings is measured against the most expensive entry.
func ComparePricing(dayCounts []int, tiers []models.PricingTier, opts models.PricingOptions, cfg models.PricingConfig) []models.PriceComparison {
	entries := []models.PriceComparison{}

	for _, dayCount := range dayCounts {
		res, err := Calculate(dayCount, tiers, opts, cfg)
		if err != nil {
			zap.L().Warn("comparison entry skipped",
				zap.Int("dayCount", dayCount), zap.Error(err))
			continue
		}
		entries = append(entries, models.PriceComparison{
			DayCount:       res.DayCount,
			TotalPrice:     res.TotalPrice,
			PricePerDay:    res.PricePerDay,
			FormattedPrice: res.FormattedPrice,
		})
	}
	if len(entries) == 0 {
		return entries
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DayCount < entries[j].DayCount
	})

	bestRate := entries[0].PricePerDay
	maxPrice := entries[0].TotalPrice
	for _, e := range entries[1:] {
		if e.PricePerDay < bestRate {
			bestRate = e.PricePerDay
		}
		if e.TotalPrice > maxPrice {
			maxPrice = e.TotalPrice
		}
	}
	recommended := false
	for i := range entries {
		entries[i].Savings = maxPrice - entries[i].TotalPrice
		if !recommended && entries[i].PricePerDay == bestRate {
			entries[i].IsRecommended = true
			recommended = true
		}
	}
	return entries
}
