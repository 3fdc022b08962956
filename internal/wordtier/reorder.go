package wordtier

import (
	"github.com/shopspring/decimal"

	"ledgerlens/extractcore/internal/models"
)

// chainScoreTolerance mirrors the balance-chain validation tolerance
// (§4.F.3) so the heuristic and the authoritative check agree on what
// counts as a match.
var chainScoreTolerance = decimal.NewFromFloat(0.02)

// quickChainScore returns the fraction of consecutive pairs for which
// prev.balance ± amount == curr.balance holds. Rows without a balance are
// skipped when computing pairs, since they cannot confirm or refute the
// chain either way.
func quickChainScore(transactions []models.Transaction) float64 {
	var checked, matched int
	var prev *models.Transaction
	for i := range transactions {
		tx := &transactions[i]
		if !tx.HasBalance() {
			continue
		}
		if prev != nil {
			checked++
			expected := prev.Balance.Add(tx.SignedAmount())
			if expected.Sub(*tx.Balance).Abs().LessThanOrEqual(chainScoreTolerance) {
				matched++
			}
		}
		prev = tx
	}
	if checked == 0 {
		return 0
	}
	return float64(matched) / float64(checked)
}

func reversed(transactions []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(transactions))
	for i, tx := range transactions {
		out[len(transactions)-1-i] = tx
	}
	return out
}

// ReorderIfReversed implements §4.D.5: reverse the list only if doing so
// strictly improves the quick chain score. Ties keep the forward (source)
// order.
func ReorderIfReversed(transactions []models.Transaction) []models.Transaction {
	if len(transactions) < 2 {
		return transactions
	}
	forwardScore := quickChainScore(transactions)
	rev := reversed(transactions)
	reverseScore := quickChainScore(rev)
	if reverseScore > forwardScore {
		return rev
	}
	return transactions
}
