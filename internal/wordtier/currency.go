package wordtier

import (
	"regexp"
	"strings"
)

// knownCurrencyCodes is the closed set of ISO codes a standalone currency
// line may name (§4.D.6 signal 1).
var knownCurrencyCodes = map[string]bool{
	"SGD": true, "USD": true, "EUR": true, "GBP": true, "CNY": true,
	"JPY": true, "AUD": true, "HKD": true, "MYR": true, "IDR": true,
	"THB": true, "PHP": true, "INR": true, "KRW": true, "NZD": true,
	"CHF": true, "CAD": true, "TWD": true, "VND": true,
}

var standaloneCurrencyLineRe = regexp.MustCompile(`^[A-Z]{3}$`)

// currencyLineIn scans a page's raw text for a standalone ISO-currency-code
// line (§4.D.6 signal 1) and returns it if found. The caller feeds the
// result in as the page's starting currency for AssembleRows; a change
// from the previous page's currency is itself a new-section signal,
// applied by the extractor alongside the CARRIED/BROUGHT FORWARD crossing
// the state machine already tracks (signal 2).
//
// Signal 3 (a discovered per-row currency column changing value) has no
// home in the current column-layout alias map: multi-currency statements
// (ANEXT) present the currency as a standalone line per section rather
// than a dedicated column, so signal 1 covers that case in practice.
func currencyLineIn(pageText string) (string, bool) {
	for _, line := range strings.Split(pageText, "\n") {
		trimmed := strings.TrimSpace(line)
		if standaloneCurrencyLineRe.MatchString(trimmed) && knownCurrencyCodes[trimmed] {
			return trimmed, true
		}
	}
	return "", false
}
