package models

// Suggestion types.
const (
	SuggestionAddDays             = "add_days"
	SuggestionRemoveDays          = "remove_days"
	SuggestionDifferentTier       = "different_tier"
	SuggestionConsecutiveDiscount = "consecutive_discount"
)

// Suggestion priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// PriceLineItem is one row of the price breakdown.
type PriceLineItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// PriceBreakdown itemizes a calculation for display.
type PriceBreakdown struct {
	Items       []PriceLineItem `json:"items"`
	Savings     float64         `json:"savings,omitempty"`
	Explanation []string        `json:"explanation,omitempty"`
}

// PricingResult is the output of one price calculation.
// Pre-rounding, TotalPrice = BasePrice + TaxAmount and PricePerDay = TotalPrice / DayCount.
type PricingResult struct {
	TotalPrice     float64        `json:"totalPrice"`
	BasePrice      float64        `json:"basePrice"`
	AppliedTier    *PricingTier   `json:"appliedTier"`
	TaxAmount      float64        `json:"taxAmount,omitempty"`
	DayCount       int            `json:"dayCount"`
	PricePerDay    float64        `json:"pricePerDay"`
	FormattedPrice string         `json:"formattedPrice"`
	Breakdown      PriceBreakdown `json:"breakdown"`
}

// PricingSuggestion recommends a different day count for better per-day value.
// Ephemeral: recomputed on every pricing pass, never persisted.
type PricingSuggestion struct {
	Type           string  `json:"type"`
	SuggestedDays  int     `json:"suggestedDays"`
	CurrentPrice   float64 `json:"currentPrice"`
	SuggestedPrice float64 `json:"suggestedPrice"`
	Savings        float64 `json:"savings"`
	Message        string  `json:"message"`
	Priority       string  `json:"priority"`
}

// SuggestionResult wraps the suggestion list. Degraded is set when generation
// failed and was swallowed; suggestions are advisory and must never block a booking.
type SuggestionResult struct {
	Suggestions []PricingSuggestion `json:"suggestions"`
	Degraded    bool                `json:"degraded,omitempty"`
	Cause       string              `json:"cause,omitempty"`
}

// PriceComparison is one entry of a cross-day-count comparison table.
type PriceComparison struct {
	DayCount       int     `json:"dayCount"`
	TotalPrice     float64 `json:"totalPrice"`
	PricePerDay    float64 `json:"pricePerDay"`
	FormattedPrice string  `json:"formattedPrice"`
	Savings        float64 `json:"savings"`
	IsRecommended  bool    `json:"isRecommended"`
}
