package event

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"venuebook/models"
	"venuebook/services/pricing"
)

// CreateEvent validates the window and tier set, then persists the event with
// its tiers sorted ascending by day count. Tier warnings (non-monotonic
// per-day rates) are logged, never rejected.
func (s *DefaultEventService) CreateEvent(ctx context.Context, event models.VenueEvent) (string, error) {
	if event.EndDate.Before(event.StartDate) {
		return "", fmt.Errorf("event window is inverted: ends before it starts")
	}
	if event.MaxDays <= 0 {
		return "", fmt.Errorf("maxDays must be positive")
	}
	if event.MinDays < 0 || event.MinDays > event.MaxDays {
		return "", fmt.Errorf("minDays must be between 0 and maxDays")
	}

	validation := pricing.ValidateTiers(event.PricingTiers)
	if !validation.IsValid {
		return "", newTierValidationError(validation.Issues)
	}
	logTierWarnings(event.ID, validation.Warnings)

	event.PricingTiers = sortTiersAscending(event.PricingTiers)
	if event.Currency == "" {
		event.Currency = models.DefaultCurrency
	}

	id, err := s.Repo.Create(ctx, event)
	if err != nil {
		return "", fmt.Errorf("failed to create event: %w", err)
	}
	return id, nil
}

func (s *DefaultEventService) GetEvent(ctx context.Context, id string) (*models.VenueEvent, error) {
	event, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event %s: %w", id, err)
	}
	return event, nil
}

func (s *DefaultEventService) ListEvents(ctx context.Context) ([]models.VenueEvent, error) {
	events, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *DefaultEventService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete event %s: %w", id, err)
	}
	return nil
}

// ValidateTiers exposes the tier validator for the admin UI's dry-run check.
func (s *DefaultEventService) ValidateTiers(tiers []models.PricingTier) models.TierValidation {
	return pricing.ValidateTiers(tiers)
}

func logTierWarnings(eventID string, warnings []string) {
	for _, w := range warnings {
		zap.L().Warn("pricing tier warning", zap.String("eventID", eventID), zap.String("warning", w))
	}
}
