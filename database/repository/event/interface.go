package eventRepo

import (
	"context"

	"venuebook/models"
)

// EventRepository persists venue events and their pricing tiers.
type EventRepository interface {
	Create(ctx context.Context, event models.VenueEvent) (string, error)
	GetByID(ctx context.Context, id string) (*models.VenueEvent, error)
	List(ctx context.Context) ([]models.VenueEvent, error)
	Update(ctx context.Context, event models.VenueEvent) error
	Delete(ctx context.Context, id string) error

	// ReplaceTiers overwrites the event's tier set; callers hand in a set
	// already validated and sorted ascending by day count.
	ReplaceTiers(ctx context.Context, eventID string, tiers []models.PricingTier) error
}
