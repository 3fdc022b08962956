package normalize

import (
	"github.com/shopspring/decimal"

	"ledgerlens/extractcore/internal/models"
)

// ScoreAccuracy implements the weighted composite of §4.F.4. chain is the
// already-computed BalanceChainReport for the same ledger.
func ScoreAccuracy(transactions []models.Transaction, chain models.BalanceChainReport) models.AccuracyReport {
	breakdown := map[string]float64{
		models.ComponentChainContinuity: chain.Overall.ChainAccuracyPct,
		models.ComponentOpeningClosing:  openingClosingScore(transactions),
		models.ComponentAccountingEq:    accountingEquationScore(transactions),
		models.ComponentAmountComplete:  amountCompletenessScore(transactions),
		models.ComponentBalanceComplete: balanceCompletenessScore(transactions),
	}

	if chain.Overall.ChainAccuracyPct >= 99.9 {
		breakdown[models.ComponentAccountingEq] = 100
	}

	overall := 0.40*breakdown[models.ComponentChainContinuity] +
		0.20*breakdown[models.ComponentOpeningClosing] +
		0.20*breakdown[models.ComponentAccountingEq] +
		0.10*breakdown[models.ComponentAmountComplete] +
		0.10*breakdown[models.ComponentBalanceComplete]

	overall = clamp(overall, 0, 100)

	return models.AccuracyReport{
		OverallScore: overall,
		Grade:        models.Grade(overall),
		Breakdown:    breakdown,
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func openingClosingScore(transactions []models.Transaction) float64 {
	hasOpening, hasClosing := false, false
	for _, tx := range transactions {
		if tx.TransactionType == models.OpeningBalance {
			hasOpening = true
		}
		if tx.TransactionType == models.ClosingBalance {
			hasClosing = true
		}
	}
	switch {
	case hasOpening && hasClosing:
		return 100
	case hasOpening || hasClosing:
		return 50
	default:
		return 0
	}
}

func accountingEquationScore(transactions []models.Transaction) float64 {
	var opening, closing, credits, debits decimal.Decimal
	haveOpening, haveClosing := false, false

	for _, tx := range transactions {
		switch tx.TransactionType {
		case models.OpeningBalance:
			if tx.HasBalance() {
				opening = *tx.Balance
				haveOpening = true
			}
		case models.ClosingBalance:
			if tx.HasBalance() {
				closing = *tx.Balance
				haveClosing = true
			}
		case models.Credit:
			credits = credits.Add(tx.Amount)
		case models.Debit:
			debits = debits.Add(tx.Amount)
		}
	}

	if !haveOpening || !haveClosing {
		return 0
	}

	diff := opening.Add(credits).Sub(debits).Sub(closing).Abs()
	limit := closing.Abs().Mul(decimal.NewFromFloat(0.05))

	if diff.LessThanOrEqual(limit) {
		return 100
	}
	if limit.IsZero() {
		return 0
	}
	proportional := 100 * (1 - diff.Div(limit.Mul(decimal.NewFromInt(20))).InexactFloat64())
	return clamp(proportional, 0, 100)
}

// ledgerTransactions restricts a completeness check to actual ledger
// entries, excluding opening_balance/closing_balance rows: those carry a
// balance by definition and an amount of zero is normal for them, so
// counting them alongside credit/debit rows would understate completeness
// on statements with many account_section boundaries.
func ledgerTransactions(transactions []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.TransactionType == models.Credit || tx.TransactionType == models.Debit {
			out = append(out, tx)
		}
	}
	return out
}

func amountCompletenessScore(transactions []models.Transaction) float64 {
	actual := ledgerTransactions(transactions)
	if len(actual) == 0 {
		return 100
	}
	missing := 0
	for _, tx := range actual {
		if tx.Amount.IsZero() {
			missing++
		}
	}
	pctMissing := 100 * float64(missing) / float64(len(actual))
	return clamp(100-5*pctMissing, 0, 100)
}

func balanceCompletenessScore(transactions []models.Transaction) float64 {
	actual := ledgerTransactions(transactions)
	if len(actual) == 0 {
		return 100
	}
	null := 0
	for _, tx := range actual {
		if !tx.HasBalance() {
			null++
		}
	}
	pctNull := 100 * float64(null) / float64(len(actual))
	return clamp(100-5*pctNull, 0, 100)
}
