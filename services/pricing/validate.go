package pricing

import (
	"fmt"
	"sort"

	"venuebook/models"
)

// ParseTiers converts untrusted input into a validated tier slice. It accepts
// a typed slice or the loose []any/map shapes produced by JSON decoding.
// Returned issues are terminal: a non-empty issue list means no usable tiers.
func ParseTiers(raw any) ([]models.PricingTier, []string) {
	switch v := raw.(type) {
	case []models.PricingTier:
		return v, nil
	case []any:
		tiers := make([]models.PricingTier, 0, len(v))
		for i, entry := range v {
			m, ok := entry.(map[string]any)
			if !ok {
				return nil, []string{fmt.Sprintf("Tier %d: must be an object", i)}
			}
			days, ok := asInt(m["numberOfDays"])
			if !ok {
				return nil, []string{fmt.Sprintf("Tier %d: numberOfDays must be an integer", i)}
			}
			price, ok := asFloat(m["price"])
			if !ok {
				return nil, []string{fmt.Sprintf("Tier %d: price must be a number", i)}
			}
			tier := models.PricingTier{NumberOfDays: days, Price: price}
			if label, ok := m["label"].(string); ok {
				tier.Label = label
			}
			tiers = append(tiers, tier)
		}
		return tiers, nil
	default:
		return nil, []string{"pricing tiers must be an array"}
	}
}

// ValidateTiers checks an admin-entered tier set. Structural problems are
// collected as issues; a worse per-day rate on a longer tier is only a warning.
func ValidateTiers(tiers []models.PricingTier) models.TierValidation {
	result := models.TierValidation{Issues: []string{}, Warnings: []string{}}

	if len(tiers) == 0 {
		result.Issues = append(result.Issues, "at least one pricing tier is required")
		return result
	}

	seen := make(map[int]bool, len(tiers))
	duplicate := false
	for i, tier := range tiers {
		if tier.NumberOfDays <= 0 {
			result.Issues = append(result.Issues, fmt.Sprintf("Tier %d: numberOfDays must be positive", i))
		}
		if tier.Price <= 0 {
			result.Issues = append(result.Issues, fmt.Sprintf("Tier %d: price must be positive", i))
		}
		if seen[tier.NumberOfDays] {
			duplicate = true
		}
		seen[tier.NumberOfDays] = true
	}
	if duplicate {
		result.Issues = append(result.Issues, "duplicate day counts found")
	}

	sorted := sortedTiers(tiers)
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if prev.NumberOfDays <= 0 || cur.NumberOfDays <= 0 {
			continue
		}
		prevRate := prev.Price / float64(prev.NumberOfDays)
		curRate := cur.Price / float64(cur.NumberOfDays)
		if curRate > prevRate {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"%d-day tier ($%.2f/day) has a worse rate than the %d-day tier ($%.2f/day)",
				cur.NumberOfDays, curRate, prev.NumberOfDays, prevRate))
		}
	}

	result.IsValid = len(result.Issues) == 0
	return result
}

// sortedTiers returns a copy sorted ascending by day count.
func sortedTiers(tiers []models.PricingTier) []models.PricingTier {
	sorted := make([]models.PricingTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].NumberOfDays < sorted[j].NumberOfDays
	})
	return sorted
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
