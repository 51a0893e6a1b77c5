package event

import (
	"fmt"
	"strings"
)

// TierValidationError rejects a tier-management operation whose resulting
// tier set has structural issues.
type TierValidationError struct {
	Code   string
	Issues []string
}

func (e *TierValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, strings.Join(e.Issues, "; "))
}

func newTierValidationError(issues []string) error {
	return &TierValidationError{Code: "invalidTiers", Issues: issues}
}
