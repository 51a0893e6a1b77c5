package bookingRepo

import (
	"context"

	"venuebook/models"
)

// BookingRepository persists submitted bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByEventID(ctx context.Context, eventID string) ([]models.Booking, error)
}
