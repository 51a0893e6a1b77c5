package booking

import (
	"context"

	"venuebook/models"
	"venuebook/services/pricing"
)

// Quote runs one pricing pass over the session's current selection.
//
// The caller (a debouncing UI) holds a monotonically increasing request
// counter and passes it as seq. A quote whose seq is at or below the
// session's high-water mark comes back flagged Stale and must be discarded;
// only the latest request's result is ever applied. The engine itself is
// stateless across calls, so superseding is just calling again.
func (s *DefaultBookingSessionService) Quote(ctx context.Context, sessionID string, seq uint64, opts models.PricingOptions) (*models.QuoteResponse, error) {
	session, event, err := s.sessionWithEvent(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if seq <= session.QuoteSeq {
		return &models.QuoteResponse{Seq: seq, Stale: true}, nil
	}
	session.QuoteSeq = seq
	if err := s.saveSession(ctx, *session); err != nil {
		return nil, err
	}

	cfg := s.pricingConfigFor(event)
	sel := rebuildSelection(event, *session)

	resp := &models.QuoteResponse{
		Seq:            seq,
		Suggestions:    models.SuggestionResult{Suggestions: []models.PricingSuggestion{}},
		SelectionError: sel.SelectionError(),
	}

	dayCount := sel.SelectedCount()
	if dayCount == 0 {
		return resp, nil
	}

	result, err := pricing.Calculate(dayCount, event.PricingTiers, opts, cfg)
	if err != nil {
		return nil, err
	}
	resp.Pricing = result
	resp.Suggestions = pricing.GetSuggestedPricing(dayCount, event.PricingTiers, cfg)
	resp.Comparison = pricing.ComparePricing(tierDayCounts(event.PricingTiers), event.PricingTiers, opts, cfg)
	return resp, nil
}

// pricingConfigFor overlays the event's currency on the service defaults.
func (s *DefaultBookingSessionService) pricingConfigFor(event *models.VenueEvent) models.PricingConfig {
	cfg := s.Pricing
	if event.Currency != "" {
		cfg.DefaultCurrency = event.Currency
	}
	return cfg
}

func tierDayCounts(tiers []models.PricingTier) []int {
	days := make([]int, len(tiers))
	for i, t := range tiers {
		days[i] = t.NumberOfDays
	}
	return days
}
