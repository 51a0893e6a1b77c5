package pricing

import (
	"fmt"
	"math"

	"venuebook/models"
)

// Calculate produces the full price result for a booking of dayCount days.
// It is a pure function of its inputs: identical arguments yield identical
// results, which the quote flow relies on to discard stale recalculations.
func Calculate(dayCount int, tiers []models.PricingTier, opts models.PricingOptions, cfg models.PricingConfig) (result *models.PricingResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = newCalculationError(dayCount, tiers, fmt.Errorf("%v", r))
		}
	}()

	if len(tiers) == 0 {
		return nil, newNoTiersError(dayCount)
	}
	if dayCount <= 0 {
		return nil, newInvalidDayCountError(dayCount, tiers)
	}
	tier := ResolveTier(dayCount, tiers)
	if tier == nil {
		return nil, newNoMatchingTierError(dayCount, tiers)
	}

	currencyCode := opts.Currency
	if currencyCode == "" {
		currencyCode = cfg.DefaultCurrency
	}
	if currencyCode == "" {
		currencyCode = models.DefaultCurrency
	}
	locale := cfg.Locale
	if locale == "" {
		locale = models.DefaultLocale
	}

	basePrice := tier.Price
	totalPrice := basePrice
	items := []models.PriceLineItem{{Description: tierDescription(*tier), Amount: basePrice}}

	taxRate := cfg.DefaultTaxRate
	if opts.TaxRate != nil {
		taxRate = *opts.TaxRate
	}
	var taxAmount float64
	if opts.IncludeTax {
		taxAmount = basePrice * taxRate
		totalPrice += taxAmount
		items = append(items, models.PriceLineItem{
			Description: fmt.Sprintf("Tax (%g%%)", taxRate*100),
			Amount:      taxAmount,
		})
	}

	// Rounding applies to the total only, never per line item, so the
	// effective captured tax can shift under tax-then-round.
	strategy := cfg.RoundingStrategy
	if opts.RoundPrices && (strategy == "" || strategy == models.RoundingNone) {
		strategy = models.RoundingNearestDollar
	}
	totalPrice = applyRounding(totalPrice, strategy)

	pricePerDay := totalPrice / float64(dayCount)

	breakdown := models.PriceBreakdown{
		Items:       items,
		Explanation: []string{fmt.Sprintf("%d day(s) priced at the %s", dayCount, tierDescription(*tier))},
	}

	if dayCount > 1 {
		if single := exactTier(tiers, 1); single != nil {
			singleDayTotal := single.Price * float64(dayCount)
			if opts.IncludeTax {
				singleDayTotal *= 1 + taxRate
			}
			if savings := singleDayTotal - totalPrice; savings > 0 {
				breakdown.Savings = savings
				breakdown.Explanation = append(breakdown.Explanation, fmt.Sprintf(
					"Save %s compared to the daily rate of %s/day",
					FormatAmount(savings, currencyCode, locale),
					FormatAmount(single.Price, currencyCode, locale)))
			}
		}
	}

	return &models.PricingResult{
		TotalPrice:     totalPrice,
		BasePrice:      basePrice,
		AppliedTier:    tier,
		TaxAmount:      taxAmount,
		DayCount:       dayCount,
		PricePerDay:    pricePerDay,
		FormattedPrice: FormatAmount(totalPrice, currencyCode, locale),
		Breakdown:      breakdown,
	}, nil
}

func tierDescription(tier models.PricingTier) string {
	if tier.Label != "" {
		return tier.Label
	}
	return fmt.Sprintf("%d-day rate", tier.NumberOfDays)
}

func exactTier(tiers []models.PricingTier, days int) *models.PricingTier {
	for i := range tiers {
		if tiers[i].NumberOfDays == days {
			return &tiers[i]
		}
	}
	return nil
}

func applyRounding(v float64, strategy string) float64 {
	switch strategy {
	case models.RoundingNearestDollar:
		return math.RoundToEven(v)
	case models.RoundingNearestQuarter:
		return math.Round(v*4) / 4
	case models.RoundingUp:
		return math.Ceil(v)
	case models.RoundingDown:
		return math.Floor(v)
	default:
		return v
	}
}
