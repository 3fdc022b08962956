package normalize

import (
	"github.com/shopspring/decimal"

	"ledgerlens/extractcore/internal/models"
)

// BalanceChainTolerance is the default absolute slack allowed between an
// expected and actual running balance (§4.F.3). The orchestrator may
// override this from configuration.
const BalanceChainTolerance = 0.02

// ValidateBalanceChain walks each account_section independently in source
// order and checks balance[i-1] +/- amount[i] == balance[i] within
// tolerance, per §4.F.3. Opening/closing rows and any transaction with a
// nil balance break the chain: they are excluded from both the
// denominator and numerator, not counted as failures.
func ValidateBalanceChain(transactions []models.Transaction, tolerance float64) models.BalanceChainReport {
	bySection := map[int][]models.Transaction{}
	order := []int{}
	for _, tx := range transactions {
		if _, seen := bySection[tx.AccountSection]; !seen {
			order = append(order, tx.AccountSection)
		}
		bySection[tx.AccountSection] = append(bySection[tx.AccountSection], tx)
	}

	tol := decimal.NewFromFloat(tolerance)
	report := models.BalanceChainReport{}

	var overallTotal, overallValid int

	for _, section := range order {
		txs := bySection[section]
		stats := models.SectionChainStats{AccountSection: section}

		var prev *models.Transaction
		for i := range txs {
			tx := &txs[i]
			if !tx.HasBalance() || tx.TransactionType == models.OpeningBalance || tx.TransactionType == models.ClosingBalance {
				prev = tx
				continue
			}
			if prev == nil || !prev.HasBalance() {
				prev = tx
				continue
			}

			expected := prev.Balance.Add(tx.SignedAmount())
			diff := expected.Sub(*tx.Balance).Abs()
			stats.TotalLinks++
			if diff.LessThanOrEqual(tol) {
				stats.ValidLinks++
			} else {
				stats.InvalidLinks++
				if len(report.Breaks) < models.MaxRetainedBreaks {
					report.Breaks = append(report.Breaks, models.BalanceChainBreak{
						AccountSection: section,
						RowIndex:       i,
						Expected:       expected,
						Actual:         *tx.Balance,
					})
				}
			}
			prev = tx
		}

		if stats.TotalLinks > 0 {
			stats.ChainAccuracyPct = 100 * float64(stats.ValidLinks) / float64(stats.TotalLinks)
		} else {
			stats.ChainAccuracyPct = 100
		}
		report.Sections = append(report.Sections, stats)
		overallTotal += stats.TotalLinks
		overallValid += stats.ValidLinks
	}

	report.Overall = models.SectionChainStats{TotalLinks: overallTotal, ValidLinks: overallValid, InvalidLinks: overallTotal - overallValid}
	if overallTotal > 0 {
		report.Overall.ChainAccuracyPct = 100 * float64(overallValid) / float64(overallTotal)
	} else {
		report.Overall.ChainAccuracyPct = 100
	}

	return report
}
