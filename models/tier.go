package models

// Rounding strategies applied to a calculated total.
const (
	RoundingNone           = "none"
	RoundingNearestDollar  = "nearest_dollar"
	RoundingNearestQuarter = "nearest_quarter"
	RoundingUp             = "up"
	RoundingDown           = "down"
)

// Defaults merged into a PricingConfig at the call boundary.
const (
	DefaultCurrency            = "USD"
	DefaultLocale              = "en-US"
	DefaultTaxRate             = 0.0
	DefaultRoundingStrategy    = RoundingNone
	DefaultMinSuggestedSavings = 10.0
	DefaultMaxSuggestions      = 5
	DefaultRecalcDebounceMS    = 300
)

// PricingTier prices a booking of exactly NumberOfDays days, or acts as the
// flat rate for bookings that exceed every configured tier.
type PricingTier struct {
	NumberOfDays int     `bson:"numberOfDays" json:"numberOfDays" binding:"required"`
	Price        float64 `bson:"price" json:"price" binding:"required"`
	Label        string  `bson:"label,omitempty" json:"label,omitempty"`
}

// PricingOptions are per-calculation flags supplied by the caller.
type PricingOptions struct {
	IncludeTax             bool     `json:"includeTax"`
	TaxRate                *float64 `json:"taxRate,omitempty"`
	RoundPrices            bool     `json:"roundPrices"`
	Currency               string   `json:"currency,omitempty"`
	RequireConsecutiveDays bool     `json:"requireConsecutiveDays"`
}

// PricingConfig carries the caller-supplied defaults for one pricing pass.
type PricingConfig struct {
	DefaultCurrency     string  `json:"defaultCurrency"`
	DefaultTaxRate      float64 `json:"defaultTaxRate"`
	RoundingStrategy    string  `json:"roundingStrategy"`
	Locale              string  `json:"locale"`
	EnableSuggestions   bool    `json:"enableSuggestions"`
	MinSuggestedSavings float64 `json:"minSuggestedSavings"`
	MaxSuggestions      int     `json:"maxSuggestions"`
}

// DefaultPricingConfig returns the named defaults as an explicit config value.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		DefaultCurrency:     DefaultCurrency,
		DefaultTaxRate:      DefaultTaxRate,
		RoundingStrategy:    DefaultRoundingStrategy,
		Locale:              DefaultLocale,
		EnableSuggestions:   true,
		MinSuggestedSavings: DefaultMinSuggestedSavings,
		MaxSuggestions:      DefaultMaxSuggestions,
	}
}

// TierValidation is the outcome of checking an admin-entered tier set.
// Warnings flag a worse per-day rate on a longer tier; they never affect IsValid.
type TierValidation struct {
	IsValid  bool     `json:"isValid"`
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
}
