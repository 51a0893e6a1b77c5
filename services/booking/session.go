package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"venuebook/models"
	"venuebook/services/selection"
)

const sessionTTL = 30 * time.Minute

// StartSession creates a new booking session for an event, assigns it a
// SessionID, and stores it in Redis with an empty selection.
func (s *DefaultBookingSessionService) StartSession(ctx context.Context, eventID, userID string) (*models.BookingSession, *models.SelectionView, error) {
	event, err := s.EventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch event %s: %w", eventID, err)
	}

	session := models.BookingSession{
		SessionID: uuid.New().String(),
		EventID:   event.ID,
		UserID:    userID,
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, nil, err
	}

	sel := rebuildSelection(event, session)
	return &session, selectionView(sel), nil
}

// ApplyDateAction routes one calendar click into the day-selection state
// machine. Disallowed mutations are silent no-ops; the returned view carries
// the selection error, if any, for display.
func (s *DefaultBookingSessionService) ApplyDateAction(ctx context.Context, sessionID, action string, date time.Time) (*models.SelectionView, error) {
	session, event, err := s.sessionWithEvent(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sel := rebuildSelection(event, *session)
	switch action {
	case ActionSelect:
		sel.SelectDate(date)
	case ActionDeselect:
		sel.DeselectDate(date)
	case ActionToggle:
		sel.ToggleDate(date)
	case ActionClear:
		sel.ClearSelection()
	default:
		return nil, fmt.Errorf("unknown selection action %q", action)
	}

	session.SelectedDates = sel.SelectedDates()
	if err := s.saveSession(ctx, *session); err != nil {
		return nil, err
	}
	return selectionView(sel), nil
}

// SetDates bulk-replaces the selection. Unavailable dates are dropped and the
// result is truncated to the event's day limit; consecutiveness is not
// enforced here, only surfaced through the view's selection error.
func (s *DefaultBookingSessionService) SetDates(ctx context.Context, sessionID string, dates []time.Time) (*models.SelectionView, error) {
	session, event, err := s.sessionWithEvent(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sel := selection.New(event.SelectionConfig())
	sel.SetSelectedDates(dates)

	session.SelectedDates = sel.SelectedDates()
	if err := s.saveSession(ctx, *session); err != nil {
		return nil, err
	}
	return selectionView(sel), nil
}

// CancelSession allows the client to explicitly abandon a booking session.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) getSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("booking session not found or expired: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingSessionService) saveSession(ctx context.Context, session models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, session.SessionID, data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) sessionWithEvent(ctx context.Context, sessionID string) (*models.BookingSession, *models.VenueEvent, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	event, err := s.EventRepo.GetByID(ctx, session.EventID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch event %s: %w", session.EventID, err)
	}
	return session, event, nil
}

// rebuildSelection reconstructs the state machine from the cached dates.
// Bulk-replace semantics apply: dates that became unavailable since the last
// click (a day passing, an admin disabling it) silently drop out.
func rebuildSelection(event *models.VenueEvent, session models.BookingSession) *selection.DaySelection {
	sel := selection.New(event.SelectionConfig())
	sel.SetSelectedDates(session.SelectedDates)
	return sel
}

func selectionView(sel *selection.DaySelection) *models.SelectionView {
	return &models.SelectionView{
		SelectedDates:     sel.SelectedDates(),
		SelectedCount:     sel.SelectedCount(),
		IsMaxReached:      sel.IsMaxReached(),
		IsValidSelection:  sel.IsValidSelection(),
		ConsecutiveRanges: sel.ConsecutiveRanges(),
		SelectionError:    sel.SelectionError(),
	}
}
