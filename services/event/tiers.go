package event

import (
	"context"
	"fmt"
	"sort"

	"venuebook/models"
	"venuebook/services/pricing"
)

// AddTier appends a tier to the event's set. The resulting set must validate;
// it is re-sorted ascending by day count before persisting.
func (s *DefaultEventService) AddTier(ctx context.Context, eventID string, tier models.PricingTier) (*models.VenueEvent, error) {
	return s.mutateTiers(ctx, eventID, func(tiers []models.PricingTier) ([]models.PricingTier, error) {
		return append(tiers, tier), nil
	})
}

// UpdateTier replaces the tier with the same day count.
func (s *DefaultEventService) UpdateTier(ctx context.Context, eventID string, tier models.PricingTier) (*models.VenueEvent, error) {
	return s.mutateTiers(ctx, eventID, func(tiers []models.PricingTier) ([]models.PricingTier, error) {
		for i := range tiers {
			if tiers[i].NumberOfDays == tier.NumberOfDays {
				tiers[i] = tier
				return tiers, nil
			}
		}
		return nil, fmt.Errorf("no %d-day tier on event %s", tier.NumberOfDays, eventID)
	})
}

// RemoveTier deletes the tier with the given day count. The last remaining
// tier cannot be removed; the validator requires at least one.
func (s *DefaultEventService) RemoveTier(ctx context.Context, eventID string, numberOfDays int) (*models.VenueEvent, error) {
	return s.mutateTiers(ctx, eventID, func(tiers []models.PricingTier) ([]models.PricingTier, error) {
		kept := tiers[:0]
		for _, t := range tiers {
			if t.NumberOfDays != numberOfDays {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(tiers) {
			return nil, fmt.Errorf("no %d-day tier on event %s", numberOfDays, eventID)
		}
		return kept, nil
	})
}

func (s *DefaultEventService) mutateTiers(ctx context.Context, eventID string, mutate func([]models.PricingTier) ([]models.PricingTier, error)) (*models.VenueEvent, error) {
	event, err := s.Repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event %s: %w", eventID, err)
	}

	tiers := make([]models.PricingTier, len(event.PricingTiers))
	copy(tiers, event.PricingTiers)

	tiers, err = mutate(tiers)
	if err != nil {
		return nil, err
	}

	validation := pricing.ValidateTiers(tiers)
	if !validation.IsValid {
		return nil, newTierValidationError(validation.Issues)
	}
	logTierWarnings(eventID, validation.Warnings)

	tiers = sortTiersAscending(tiers)
	if err := s.Repo.ReplaceTiers(ctx, eventID, tiers); err != nil {
		return nil, fmt.Errorf("failed to persist tiers for event %s: %w", eventID, err)
	}

	event.PricingTiers = tiers
	return event, nil
}

func sortTiersAscending(tiers []models.PricingTier) []models.PricingTier {
	sorted := make([]models.PricingTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].NumberOfDays < sorted[j].NumberOfDays
	})
	return sorted
}
