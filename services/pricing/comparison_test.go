package pricing

import (
	"testing"

	"venuebook/models"
)

func TestComparePricing_Table(t *testing.T) {
	entries := ComparePricing([]int{1, 3, 5, 7}, standardTiers(),
		models.PricingOptions{}, models.DefaultPricingConfig())
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].DayCount < entries[i-1].DayCount {
			t.Fatal("entries not sorted ascending by day count")
		}
	}

	recommended := 0
	for _, e := range entries {
		if e.IsRecommended {
			recommended++
			if e.DayCount != 7 {
				t.Fatalf("expected the 7-day entry (best per-day rate) recommended, got %d", e.DayCount)
			}
		}
	}
	if recommended != 1 {
		t.Fatalf("expected exactly one recommended entry, got %d", recommended)
	}

	// Savings is measured against the most expensive entry (400).
	if !almostEqual(entries[0].Savings, 325) {
		t.Fatalf("expected 1-day savings 325, got %v", entries[0].Savings)
	}
	if !almostEqual(entries[3].Savings, 0) {
		t.Fatalf("expected 7-day savings 0, got %v", entries[3].Savings)
	}
}

func TestComparePricing_SkipsFailingDayCounts(t *testing.T) {
	entries := ComparePricing([]int{0, 3, -1, 5}, standardTiers(),
		models.PricingOptions{}, models.DefaultPricingConfig())
	if len(entries) != 2 {
		t.Fatalf("expected failing day counts skipped, got %d entries", len(entries))
	}
}

func TestComparePricing_EmptyWhenNothingComputes(t *testing.T) {
	entries := ComparePricing([]int{0, -1}, standardTiers(),
		models.PricingOptions{}, models.DefaultPricingConfig())
	if len(entries) != 0 {
		t.Fatalf("expected empty result, got %+v", entries)
	}
}

func TestComparePricing_TieOnPerDayRateFlagsFirst(t *testing.T) {
	tiers := []models.PricingTier{
		{NumberOfDays: 2, Price: 100},
		{NumberOfDays: 4, Price: 200}, // same 50/day
	}
	entries := ComparePricing([]int{2, 4}, tiers, models.PricingOptions{}, models.DefaultPricingConfig())
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if !entries[0].IsRecommended || entries[1].IsRecommended {
		t.Fatalf("expected first tied entry recommended: %+v", entries)
	}
}
