package booking

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"

	bookingRepo "venuebook/database/repository/booking"
	eventRepo "venuebook/database/repository/event"
	"venuebook/models"
)

// Selection actions accepted by ApplyDateAction.
const (
	ActionSelect   = "select"
	ActionDeselect = "deselect"
	ActionToggle   = "toggle"
	ActionClear    = "clear"
)

// BookingSessionService manages one customer's day selection between the
// first calendar click and submission.
type BookingSessionService interface {
	StartSession(ctx context.Context, eventID, userID string) (*models.BookingSession, *models.SelectionView, error)
	ApplyDateAction(ctx context.Context, sessionID, action string, date time.Time) (*models.SelectionView, error)
	SetDates(ctx context.Context, sessionID string, dates []time.Time) (*models.SelectionView, error)
	Quote(ctx context.Context, sessionID string, seq uint64, opts models.PricingOptions) (*models.QuoteResponse, error)
	SubmitBooking(ctx context.Context, sessionID string) (*models.Booking, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	EventRepo   eventRepo.EventRepository
	BookingRepo bookingRepo.BookingRepository
	Cache       *redis.Client
	Queue       *asynq.Client
	Pricing     models.PricingConfig
}
