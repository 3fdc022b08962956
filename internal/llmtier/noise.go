package llmtier

import (
	"regexp"
	"strings"

	"ledgerlens/extractcore/internal/bankid"
)

// skipPageDominanceThreshold is the §4.E step 2 "dominant" bar: a page is
// skipped only when a skip pattern's matched span covers more than this
// fraction of the page's text.
const skipPageDominanceThreshold = 0.40

var (
	legendPatternRe    = regexp.MustCompile(`(?is)legend\s*[:\-].*(code|meaning)`)
	termsPatternRe     = regexp.MustCompile(`(?is)terms\s+and\s+conditions.{0,1000}`)
	interestScheduleRe = regexp.MustCompile(`(?is)interest\s+rate\s+(schedule|table).{0,1000}`)

	currencyAmountRe = regexp.MustCompile(`\d[\d,]*\.\d{2}`)
	datePatternRe    = regexp.MustCompile(`(?i)\d{1,2}[\s/\-][A-Za-z]{3,9}[\s/\-]\d{2,4}|\d{1,2}/\d{1,2}/\d{2,4}`)
)

var skipPatterns = []*regexp.Regexp{legendPatternRe, termsPatternRe, interestScheduleRe}

// ShouldSkipPage implements §4.E step 2: skip a page whose dominant content
// is boilerplate and which carries no transactional signal at all.
func ShouldSkipPage(pageText string) bool {
	if currencyAmountRe.MatchString(pageText) || datePatternRe.MatchString(pageText) {
		return false
	}
	total := len(pageText)
	if total == 0 {
		return true
	}
	for _, pattern := range skipPatterns {
		if match := pattern.FindString(pageText); match != "" {
			if float64(len(match))/float64(total) > skipPageDominanceThreshold {
				return true
			}
		}
	}
	return false
}

// StripNoise removes the per-bank boilerplate patterns (§4.E step 3, §6)
// from a page's text before it is added to a batch.
func StripNoise(pageText, bank string) string {
	stripped := pageText
	for _, pattern := range bankid.NoisePatternsFor(bank) {
		stripped = pattern.ReplaceAllString(stripped, "")
	}
	return strings.TrimSpace(stripped)
}
