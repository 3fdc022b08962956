package wordtier

import "regexp"

// hsbcSummaryRe strips HSBC's per-page running-total footer, e.g.
// "WITHDRAWALS 305,465.02DR ASAT 31OCT2025", before word assignment so it
// cannot be mistaken for a data row.
var hsbcSummaryRe = regexp.MustCompile(`(?i)WITHDRAWALS[\d,.\s]*DR\s*AS\s*AT\s*\d{2}[A-Z]{3}\d{4}|DEPOSITS[\d,.\s]*CR\s*AS\s*AT\s*\d{2}[A-Z]{3}\d{4}`)

// stripBankNoise removes per-bank boilerplate that would otherwise be
// picked up as a stray text-only row by the state machine. Only HSBC needs
// this at the word-geometry stage; other banks' noise is already excluded
// by column assignment (it falls outside every column interval).
func stripBankNoise(text, bank string) string {
	if bank == "HSBC" {
		return hsbcSummaryRe.ReplaceAllString(text, "")
	}
	return text
}
