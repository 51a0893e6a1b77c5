package pricing

import (
	"testing"

	"venuebook/models"
)

func TestGetSuggestedPricing_AddDaysTowardBetterRate(t *testing.T) {
	res := GetSuggestedPricing(2, standardTiers(), models.DefaultPricingConfig())
	if res.Degraded {
		t.Fatalf("unexpected degradation: %s", res.Cause)
	}

	var found *models.PricingSuggestion
	for i := range res.Suggestions {
		if res.Suggestions[i].Type == models.SuggestionAddDays && res.Suggestions[i].SuggestedDays == 3 {
			found = &res.Suggestions[i]
		}
	}
	if found == nil {
		t.Fatalf("expected an add_days suggestion toward 3 days, got %+v", res.Suggestions)
	}
	if found.Savings <= 0 {
		t.Fatalf("expected positive savings, got %v", found.Savings)
	}
}

func TestGetSuggestedPricing_SortedBySavingsAndTruncated(t *testing.T) {
	cfg := models.DefaultPricingConfig()
	cfg.MaxSuggestions = 2
	res := GetSuggestedPricing(2, standardTiers(), cfg)
	if len(res.Suggestions) != 2 {
		t.Fatalf("expected truncation to 2 suggestions, got %d", len(res.Suggestions))
	}
	if res.Suggestions[0].Savings < res.Suggestions[1].Savings {
		t.Fatal("suggestions not sorted by savings descending")
	}
}

func TestGetSuggestedPricing_HighPriorityAboveDoubleThreshold(t *testing.T) {
	// 2 days resolves to the 3-day tier: 100/day. The 7-day tier saves
	// 700-400=300, well past twice the 10 threshold.
	res := GetSuggestedPricing(2, standardTiers(), models.DefaultPricingConfig())
	for _, s := range res.Suggestions {
		if s.SuggestedDays == 7 && s.Priority != models.PriorityHigh {
			t.Fatalf("expected high priority for savings %v, got %s", s.Savings, s.Priority)
		}
	}
}

func TestGetSuggestedPricing_RemoveDaysWhenShorterTierIsCheaperPerDay(t *testing.T) {
	// 4 days resolves to the 5-day tier (75/day); the 3-day tier runs 66.67/day.
	res := GetSuggestedPricing(4, standardTiers(), models.DefaultPricingConfig())

	var found *models.PricingSuggestion
	for i := range res.Suggestions {
		if res.Suggestions[i].Type == models.SuggestionRemoveDays {
			found = &res.Suggestions[i]
		}
	}
	if found == nil {
		t.Fatalf("expected a remove_days suggestion, got %+v", res.Suggestions)
	}
	if found.SuggestedDays != 3 || found.Priority != models.PriorityLow {
		t.Fatalf("unexpected remove_days suggestion: %+v", found)
	}
}

func TestGetSuggestedPricing_Disabled(t *testing.T) {
	cfg := models.DefaultPricingConfig()
	cfg.EnableSuggestions = false
	if res := GetSuggestedPricing(2, standardTiers(), cfg); len(res.Suggestions) != 0 {
		t.Fatalf("expected no suggestions when disabled, got %+v", res.Suggestions)
	}
	if res := GetSuggestedPricing(2, nil, models.DefaultPricingConfig()); len(res.Suggestions) != 0 {
		t.Fatalf("expected no suggestions for empty tiers, got %+v", res.Suggestions)
	}
	if res := GetSuggestedPricing(0, standardTiers(), models.DefaultPricingConfig()); len(res.Suggestions) != 0 {
		t.Fatalf("expected no suggestions for zero day count, got %+v", res.Suggestions)
	}
}

func TestGetSuggestedPricing_BelowThresholdFiltered(t *testing.T) {
	cfg := models.DefaultPricingConfig()
	cfg.MinSuggestedSavings = 1000
	res := GetSuggestedPricing(2, standardTiers(), cfg)
	if len(res.Suggestions) != 0 {
		t.Fatalf("expected savings below threshold to be filtered, got %+v", res.Suggestions)
	}
	if res.Degraded {
		t.Fatal("threshold filtering is not degradation")
	}
}
