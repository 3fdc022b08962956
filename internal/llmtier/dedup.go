package llmtier

import (
	"fmt"

	"ledgerlens/extractcore/internal/models"
)

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func balanceKey(tx models.Transaction) string {
	if tx.Balance == nil {
		return "none"
	}
	return tx.Balance.StringFixed(2)
}

// exactKey is the pass-1 key of §4.E step 6.
func exactKey(tx models.Transaction) string {
	return fmt.Sprintf("%s|%s|%s|%s|%s",
		tx.Date, truncate(tx.Description, 60), tx.Amount.StringFixed(2), balanceKey(tx), tx.TransactionType)
}

// fuzzyBalanceKey is the pass-2 key: drops the description, catching
// transactions whose description was rendered differently in overlapping
// batches but which share date, balance, type, and amount.
func fuzzyBalanceKey(tx models.Transaction) string {
	return fmt.Sprintf("%s|%s|%s|%s",
		tx.Date, balanceKey(tx), tx.TransactionType, tx.Amount.StringFixed(2))
}

// Deduplicate implements §4.E step 6's two passes, preserving first-seen
// order as the ordering guarantee in §5 requires.
func Deduplicate(transactions []models.Transaction) []models.Transaction {
	seenExact := map[string]bool{}
	var pass1 []models.Transaction
	for _, tx := range transactions {
		key := exactKey(tx)
		if seenExact[key] {
			continue
		}
		seenExact[key] = true
		pass1 = append(pass1, tx)
	}

	seenFuzzy := map[string]bool{}
	var pass2 []models.Transaction
	for _, tx := range pass1 {
		key := fuzzyBalanceKey(tx)
		if seenFuzzy[key] {
			continue
		}
		seenFuzzy[key] = true
		pass2 = append(pass2, tx)
	}

	return pass2
}
