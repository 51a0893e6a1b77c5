package models

import "time"

// VenueEvent is a reservation-type event configured by an administrator.
// Customers book a set of days inside [StartDate, EndDate]; PricingTiers is
// kept sorted ascending by day count.
type VenueEvent struct {
	ID                 string        `bson:"id" json:"id"`
	Name               string        `bson:"name" json:"name" binding:"required"`
	Venue              string        `bson:"venue" json:"venue,omitempty"`
	StartDate          time.Time     `bson:"startDate" json:"startDate" binding:"required"`
	EndDate            time.Time     `bson:"endDate" json:"endDate" binding:"required"`
	DisabledDates      []time.Time   `bson:"disabledDates,omitempty" json:"disabledDates,omitempty"`
	MinDays            int           `bson:"minDays" json:"minDays"`
	MaxDays            int           `bson:"maxDays" json:"maxDays"`
	RequireConsecutive bool          `bson:"requireConsecutive" json:"requireConsecutive"`
	AllowPastDates     bool          `bson:"allowPastDates" json:"allowPastDates"`
	Currency           string        `bson:"currency" json:"currency,omitempty"`
	PricingTiers       []PricingTier `bson:"pricingTiers" json:"pricingTiers"`
	CreatedAt          time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// SelectionConfig is the immutable day-selection configuration derived from an event.
type SelectionConfig struct {
	EventStartDate     time.Time   `json:"eventStartDate"`
	EventEndDate       time.Time   `json:"eventEndDate"`
	MinDays            int         `json:"minDays"`
	MaxDays            int         `json:"maxDays"`
	RequireConsecutive bool        `json:"requireConsecutive"`
	AllowPastDates     bool        `json:"allowPastDates"`
	DisabledDates      []time.Time `json:"disabledDates,omitempty"`
}

// SelectionConfig builds the day-selection config for this event.
func (e VenueEvent) SelectionConfig() SelectionConfig {
	return SelectionConfig{
		EventStartDate:     e.StartDate,
		EventEndDate:       e.EndDate,
		MinDays:            e.MinDays,
		MaxDays:            e.MaxDays,
		RequireConsecutive: e.RequireConsecutive,
		AllowPastDates:     e.AllowPastDates,
		DisabledDates:      e.DisabledDates,
	}
}

// ConsecutiveRange is one maximal run of day-adjacent selected dates.
type ConsecutiveRange struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Length int       `json:"length"`
}
