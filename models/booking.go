package models

import "time"

// Booking is the persisted record produced when a session is submitted.
type Booking struct {
	ID            string       `bson:"id" json:"id"`
	EventID       string       `bson:"eventId" json:"eventId"`
	UserID        string       `bson:"userId" json:"userId"`
	SelectedDates []time.Time  `bson:"selectedDates" json:"selectedDates"`
	DayCount      int          `bson:"dayCount" json:"dayCount"`
	AppliedTier   *PricingTier `bson:"appliedTier,omitempty" json:"appliedTier,omitempty"`
	TotalPrice    float64      `bson:"totalPrice" json:"totalPrice"`
	Currency      string       `bson:"currency" json:"currency"`
	CreatedAt     time.Time    `bson:"createdAt" json:"createdAt"`
}

// BookingSession holds one in-progress day selection between calendar clicks
// and submission. Cached, never persisted; discarded on submit or expiry.
type BookingSession struct {
	SessionID     string      `json:"sessionId"`
	EventID       string      `json:"eventId"`
	UserID        string      `json:"userId"`
	SelectedDates []time.Time `json:"selectedDates"`
	QuoteSeq      uint64      `json:"quoteSeq"`
}

// SelectionView is the calendar-facing snapshot of a session's selection.
type SelectionView struct {
	SelectedDates     []time.Time        `json:"selectedDates"`
	SelectedCount     int                `json:"selectedCount"`
	IsMaxReached      bool               `json:"isMaxReached"`
	IsValidSelection  bool               `json:"isValidSelection"`
	ConsecutiveRanges []ConsecutiveRange `json:"consecutiveRanges"`
	SelectionError    string             `json:"selectionError,omitempty"`
}

// QuoteResponse bundles one pricing pass. Seq implements the
// latest-request-wins contract: a response marked Stale carries a sequence
// below the session's high-water mark and must be discarded by the caller.
type QuoteResponse struct {
	Seq            uint64            `json:"seq"`
	Stale          bool              `json:"stale,omitempty"`
	Pricing        *PricingResult    `json:"pricing,omitempty"`
	Suggestions    SuggestionResult  `json:"suggestions"`
	Comparison     []PriceComparison `json:"comparison,omitempty"`
	SelectionError string            `json:"selectionError,omitempty"`
}

// ReminderPayload is the asynq task payload for an event-start reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	EventID   string `json:"eventId"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}
