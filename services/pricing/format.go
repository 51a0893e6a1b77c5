package pricing

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatAmount renders an amount as a locale-aware currency string. An
// unknown currency code or locale falls back to a fixed-point string so
// formatting can never fail a price calculation.
func FormatAmount(amount float64, currencyCode, locale string) string {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return fmt.Sprintf("$%.2f", amount)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	p := message.NewPrinter(tag)
	return p.Sprint(currency.NarrowSymbol(unit.Amount(amount)))
}
