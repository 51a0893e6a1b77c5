package pricing

import "venuebook/models"

// ResolveTier selects the tier that applies to dayCount. Pricing never
// interpolates between tiers:
//  1. an exact day-count match wins;
//  2. otherwise the smallest tier above dayCount applies, so the customer
//     pays for a longer bracket rather than an extrapolated rate;
//  3. if dayCount exceeds every tier, the largest tier's flat rate applies.
//
// Returns nil for a non-positive day count or an empty tier set.
func ResolveTier(dayCount int, tiers []models.PricingTier) *models.PricingTier {
	if dayCount <= 0 || len(tiers) == 0 {
		return nil
	}

	sorted := sortedTiers(tiers)
	for i := range sorted {
		if sorted[i].NumberOfDays == dayCount {
			return &sorted[i]
		}
	}
	for i := range sorted {
		if sorted[i].NumberOfDays > dayCount {
			return &sorted[i]
		}
	}
	return &sorted[len(sorted)-1]
}
