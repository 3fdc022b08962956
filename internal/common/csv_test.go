package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerlens/extractcore/internal/logging"
	"ledgerlens/extractcore/internal/models"
)

func TestWriteTransactionsToCSVCreatesFileWithHeader(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "nested", "ledger.csv")

	balance := decimal.NewFromInt(100)
	txns := []models.Transaction{
		{Date: "01 Jan", Description: "Giro Payment", TransactionType: models.Credit, Amount: decimal.NewFromInt(100), Balance: &balance, Currency: "SGD"},
	}

	err := WriteTransactionsToCSV(txns, out, &logging.MockLogger{})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "date")
	assert.Contains(t, string(data), "Giro Payment")
}

func TestWriteTransactionsToCSVRejectsNilSlice(t *testing.T) {
	err := WriteTransactionsToCSV(nil, filepath.Join(t.TempDir(), "out.csv"), &logging.MockLogger{})
	assert.Error(t, err)
}
