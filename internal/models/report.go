package models

import "github.com/shopspring/decimal"

// BalanceChainBreak records one place where the arithmetic identity of
// §4.F.3 failed, kept for operator diagnosis. At most 20 are retained
// per BalanceChainReport.
type BalanceChainBreak struct {
	AccountSection int             `json:"account_section"`
	RowIndex       int             `json:"row_index"`
	Expected       decimal.Decimal `json:"expected"`
	Actual         decimal.Decimal `json:"actual"`
}

// SectionChainStats is the balance-chain tally for a single account
// section (currency partition).
type SectionChainStats struct {
	AccountSection   int     `json:"account_section"`
	TotalLinks       int     `json:"total_links"`
	ValidLinks       int     `json:"valid_links"`
	InvalidLinks     int     `json:"invalid_links"`
	ChainAccuracyPct float64 `json:"chain_accuracy_pct"`
}

// BalanceChainReport is the overall and per-section balance-chain
// validation result (§4.F.3).
type BalanceChainReport struct {
	Overall  SectionChainStats   `json:"overall"`
	Sections []SectionChainStats `json:"sections"`
	Breaks   []BalanceChainBreak `json:"breaks"`
}

// MaxRetainedBreaks bounds BalanceChainReport.Breaks (§3).
const MaxRetainedBreaks = 20

// AccuracyReport is the weighted composite score of §4.F.4.
type AccuracyReport struct {
	OverallScore float64            `json:"overall_score"`
	Grade        string             `json:"grade"`
	Breakdown    map[string]float64 `json:"breakdown"`
}

// Accuracy component keys used in AccuracyReport.Breakdown.
const (
	ComponentChainContinuity   = "balance_chain_continuity"
	ComponentOpeningClosing    = "opening_closing_presence"
	ComponentAccountingEq      = "accounting_equation"
	ComponentAmountComplete    = "amount_completeness"
	ComponentBalanceComplete   = "balance_completeness"
)

// Grade converts an overall score in [0,100] to a letter grade per §4.F.4.
func Grade(score float64) string {
	switch {
	case score >= 95:
		return "A+"
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}
