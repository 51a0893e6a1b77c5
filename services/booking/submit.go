package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"venuebook/models"
	"venuebook/services/pricing"
	"venuebook/services/tasks"
)

// SubmitBooking finalizes a session: the selection must be valid, the price
// is calculated one last time, and the booking record is persisted. The
// session is discarded; the record carries a plain date array, not the state
// machine. A reminder is scheduled for the day before the event starts.
func (s *DefaultBookingSessionService) SubmitBooking(ctx context.Context, sessionID string) (*models.Booking, error) {
	session, event, err := s.sessionWithEvent(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sel := rebuildSelection(event, *session)
	if msg := sel.SelectionError(); msg != "" {
		return nil, fmt.Errorf("selection is not bookable: %s", msg)
	}

	cfg := s.pricingConfigFor(event)
	result, err := pricing.Calculate(sel.SelectedCount(), event.PricingTiers, models.PricingOptions{}, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to price booking: %w", err)
	}

	booking := models.Booking{
		EventID:       event.ID,
		UserID:        session.UserID,
		SelectedDates: sel.SelectedDates(),
		DayCount:      result.DayCount,
		AppliedTier:   result.AppliedTier,
		TotalPrice:    result.TotalPrice,
		Currency:      cfg.DefaultCurrency,
	}
	id, err := s.BookingRepo.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}
	booking.ID = id

	s.scheduleReminder(booking, event)

	if err := s.Cache.Del(ctx, sessionID).Err(); err != nil {
		zap.L().Warn("failed to discard booking session", zap.String("sessionID", sessionID), zap.Error(err))
	}
	return &booking, nil
}

// scheduleReminder enqueues an event-start reminder. Reminders are advisory;
// enqueue failures are logged and never fail the booking.
func (s *DefaultBookingSessionService) scheduleReminder(booking models.Booking, event *models.VenueEvent) {
	if s.Queue == nil {
		return
	}

	fireAt := event.StartDate.AddDate(0, 0, -1)
	if fireAt.Before(time.Now()) {
		return
	}
	payload := models.ReminderPayload{
		BookingID: booking.ID,
		EventID:   event.ID,
		UserID:    booking.UserID,
		Title:     fmt.Sprintf("%s starts tomorrow", event.Name),
		Body:      fmt.Sprintf("Your %d-day booking at %s begins on %s.", booking.DayCount, event.Venue, event.StartDate.Format("Jan 2")),
		FireDate:  fireAt.Format(time.RFC3339),
	}

	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		zap.L().Warn("failed to build reminder task", zap.String("bookingID", booking.ID), zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(task, opts...); err != nil {
		zap.L().Warn("failed to enqueue reminder", zap.String("bookingID", booking.ID), zap.Error(err))
	}
}
