package pricing

import (
	"strings"
	"testing"

	"venuebook/models"
)

func TestValidateTiers_ValidSet(t *testing.T) {
	v := ValidateTiers(standardTiers())
	if !v.IsValid {
		t.Fatalf("expected valid set, issues: %v", v.Issues)
	}
	if len(v.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", v.Warnings)
	}
}

func TestValidateTiers_EmptySet(t *testing.T) {
	v := ValidateTiers(nil)
	if v.IsValid || len(v.Issues) != 1 {
		t.Fatalf("expected single issue for empty set, got %+v", v)
	}
}

func TestValidateTiers_CollectsAllIssues(t *testing.T) {
	v := ValidateTiers([]models.PricingTier{
		{NumberOfDays: 0, Price: 50},
		{NumberOfDays: 3, Price: -10},
	})
	if v.IsValid {
		t.Fatal("expected invalid set")
	}
	if len(v.Issues) != 2 {
		t.Fatalf("expected both issues collected, got %v", v.Issues)
	}
}

func TestValidateTiers_ZeroPriceRejected(t *testing.T) {
	// Free promotional tiers are rejected by construction; observed behavior.
	v := ValidateTiers([]models.PricingTier{{NumberOfDays: 1, Price: 0}})
	if v.IsValid {
		t.Fatal("expected zero-price tier to be invalid")
	}
}

func TestValidateTiers_DuplicateDayCounts(t *testing.T) {
	v := ValidateTiers([]models.PricingTier{
		{NumberOfDays: 3, Price: 200},
		{NumberOfDays: 3, Price: 220},
	})
	if v.IsValid {
		t.Fatal("expected duplicate day counts to be invalid")
	}
	found := false
	for _, issue := range v.Issues {
		if strings.Contains(issue, "duplicate day counts") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected duplicate-day-counts issue, got %v", v.Issues)
	}
}

func TestValidateTiers_NonMonotonicRateWarnsButStaysValid(t *testing.T) {
	v := ValidateTiers([]models.PricingTier{
		{NumberOfDays: 1, Price: 75},
		{NumberOfDays: 3, Price: 260}, // 86.67/day, worse than 75/day
	})
	if !v.IsValid {
		t.Fatalf("warnings must not flip validity, issues: %v", v.Issues)
	}
	if len(v.Warnings) == 0 {
		t.Fatal("expected a per-day rate warning")
	}
}

func TestParseTiers_RejectsNonArray(t *testing.T) {
	tiers, issues := ParseTiers("not an array")
	if tiers != nil || len(issues) != 1 {
		t.Fatalf("expected single issue, got tiers=%v issues=%v", tiers, issues)
	}
}

func TestParseTiers_DecodedJSONShapes(t *testing.T) {
	raw := []any{
		map[string]any{"numberOfDays": float64(3), "price": float64(200), "label": "weekend"},
		map[string]any{"numberOfDays": float64(5), "price": float64(300)},
	}
	tiers, issues := ParseTiers(raw)
	if len(issues) != 0 {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if len(tiers) != 2 || tiers[0].Label != "weekend" || tiers[1].Price != 300 {
		t.Fatalf("unexpected tiers: %+v", tiers)
	}
}

func TestParseTiers_FractionalDayCount(t *testing.T) {
	raw := []any{map[string]any{"numberOfDays": 2.5, "price": float64(100)}}
	if _, issues := ParseTiers(raw); len(issues) == 0 {
		t.Fatal("expected fractional day count to be rejected")
	}
}
