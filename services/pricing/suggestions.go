package pricing

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"venuebook/models"
)

// GetSuggestedPricing compares the current day count against every other tier
// and recommends adding or removing days when it saves at least
// cfg.MinSuggestedSavings. Suggestions are advisory: any failure degrades to
// an empty, flagged result instead of propagating.
func GetSuggestedPricing(currentDayCount int, tiers []models.PricingTier, cfg models.PricingConfig) (result models.SuggestionResult) {
	result = models.SuggestionResult{Suggestions: []models.PricingSuggestion{}}

	defer func() {
		if r := recover(); r != nil {
			zap.L().Warn("suggestion generation failed", zap.Any("cause", r))
			result = models.SuggestionResult{
				Suggestions: []models.PricingSuggestion{},
				Degraded:    true,
				Cause:       fmt.Sprintf("%v", r),
			}
		}
	}()

	if !cfg.EnableSuggestions || len(tiers) == 0 || currentDayCount <= 0 {
		return result
	}

	current, err := Calculate(currentDayCount, tiers, models.PricingOptions{}, cfg)
	if err != nil {
		zap.L().Warn("suggestion generation degraded", zap.Error(err))
		return models.SuggestionResult{
			Suggestions: []models.PricingSuggestion{},
			Degraded:    true,
			Cause:       err.Error(),
		}
	}

	suggestions := []models.PricingSuggestion{}
	for _, tier := range sortedTiers(tiers) {
		if tier.NumberOfDays == currentDayCount {
			continue
		}

		if tier.NumberOfDays > currentDayCount {
			// What the current per-day rate would cost over the tier's span.
			projected := current.PricePerDay * float64(tier.NumberOfDays)
			savings := projected - tier.Price
			if savings < cfg.MinSuggestedSavings {
				continue
			}
			priority := models.PriorityMedium
			if savings > 2*cfg.MinSuggestedSavings {
				priority = models.PriorityHigh
			}
			suggestions = append(suggestions, models.PricingSuggestion{
				Type:           models.SuggestionAddDays,
				SuggestedDays:  tier.NumberOfDays,
				CurrentPrice:   current.TotalPrice,
				SuggestedPrice: tier.Price,
				Savings:        savings,
				Message: fmt.Sprintf("Book %d days for %s and save %s over your current rate",
					tier.NumberOfDays,
					FormatAmount(tier.Price, cfg.DefaultCurrency, cfg.Locale),
					FormatAmount(savings, cfg.DefaultCurrency, cfg.Locale)),
				Priority: priority,
			})
			continue
		}

		tierRate := tier.Price / float64(tier.NumberOfDays)
		if tierRate >= current.PricePerDay {
			continue
		}
		savings := current.TotalPrice - tier.Price
		if savings < cfg.MinSuggestedSavings {
			continue
		}
		suggestions = append(suggestions, models.PricingSuggestion{
			Type:           models.SuggestionRemoveDays,
			SuggestedDays:  tier.NumberOfDays,
			CurrentPrice:   current.TotalPrice,
			SuggestedPrice: tier.Price,
			Savings:        savings,
			Message: fmt.Sprintf("Drop to %d days for %s and save %s",
				tier.NumberOfDays,
				FormatAmount(tier.Price, cfg.DefaultCurrency, cfg.Locale),
				FormatAmount(savings, cfg.DefaultCurrency, cfg.Locale)),
			Priority: models.PriorityLow,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Savings > suggestions[j].Savings
	})
	if cfg.MaxSuggestions > 0 && len(suggestions) > cfg.MaxSuggestions {
		suggestions = suggestions[:cfg.MaxSuggestions]
	}

	result.Suggestions = suggestions
	return result
}
