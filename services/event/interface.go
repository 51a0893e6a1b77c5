package event

import (
	"context"

	eventRepo "venuebook/database/repository/event"
	"venuebook/models"
)

// EventService manages venue events and their admin-entered pricing tiers.
type EventService interface {
	CreateEvent(ctx context.Context, event models.VenueEvent) (string, error)
	GetEvent(ctx context.Context, id string) (*models.VenueEvent, error)
	ListEvents(ctx context.Context) ([]models.VenueEvent, error)
	DeleteEvent(ctx context.Context, id string) error

	AddTier(ctx context.Context, eventID string, tier models.PricingTier) (*models.VenueEvent, error)
	UpdateTier(ctx context.Context, eventID string, tier models.PricingTier) (*models.VenueEvent, error)
	RemoveTier(ctx context.Context, eventID string, numberOfDays int) (*models.VenueEvent, error)
	ValidateTiers(tiers []models.PricingTier) models.TierValidation
}

// DefaultEventService implements EventService.
type DefaultEventService struct {
	Repo eventRepo.EventRepository
}
