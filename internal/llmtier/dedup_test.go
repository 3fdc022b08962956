package llmtier

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerlens/extractcore/internal/models"
)

func txn(date, desc string, amount float64, balance float64) models.Transaction {
	b := decimal.NewFromFloat(balance)
	return models.Transaction{
		Date: date, Description: desc, Amount: decimal.NewFromFloat(amount),
		TransactionType: models.Credit, Balance: &b,
	}
}

func TestDeduplicateExactPassRemovesIdenticalBatchOverlap(t *testing.T) {
	a := txn("01 Jan", "GIRO Payment", 100, 5100)
	b := txn("01 Jan", "GIRO Payment", 100, 5100)
	out := Deduplicate([]models.Transaction{a, b})
	assert.Len(t, out, 1)
}

func TestDeduplicateFuzzyPassCatchesDifferingDescription(t *testing.T) {
	a := txn("01 Jan", "GIRO Payment Acme", 100, 5100)
	b := txn("01 Jan", "GIRO Paymnt Acme Pte", 100, 5100)
	out := Deduplicate([]models.Transaction{a, b})
	require.Len(t, out, 1)
	assert.Equal(t, "GIRO Payment Acme", out[0].Description)
}

func TestDeduplicateKeepsDistinctTransactions(t *testing.T) {
	a := txn("01 Jan", "GIRO Payment", 100, 5100)
	b := txn("02 Jan", "NETS Purchase", 50, 5050)
	out := Deduplicate([]models.Transaction{a, b})
	assert.Len(t, out, 2)
}

func TestDeduplicateIsIdempotent(t *testing.T) {
	a := txn("01 Jan", "GIRO Payment", 100, 5100)
	b := txn("01 Jan", "GIRO Payment", 100, 5100)
	c := txn("02 Jan", "NETS Purchase", 50, 5050)
	once := Deduplicate([]models.Transaction{a, b, c})
	twice := Deduplicate(once)
	assert.Equal(t, once, twice)
}
