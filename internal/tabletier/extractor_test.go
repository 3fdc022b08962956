package tabletier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerlens/extractcore/internal/logging"
	"ledgerlens/extractcore/internal/models"
	"ledgerlens/extractcore/internal/pdfaccess"
)

func TestCanonicalizeRowRejectsTableWithoutBalance(t *testing.T) {
	columns := canonicalizeRow([]string{"Date", "Description", "Debit"})
	assert.Nil(t, columns)
}

func TestCanonicalizeRowAcceptsMinimalTable(t *testing.T) {
	columns := canonicalizeRow([]string{"Date", "Description", "Withdrawal", "Balance"})
	require.NotNil(t, columns)
	assert.Contains(t, columns, ColBalance)
	assert.Contains(t, columns, ColDebit)
}

func TestExtractRuledTable(t *testing.T) {
	doc := pdfaccess.NewMockAccess(1)
	doc.MockTables[1] = []models.Table{
		{
			{"Date", "Description", "Withdrawal", "Deposit", "Balance"},
			{"01 Jan 2024", "Opening Balance", "", "", "5,000.00"},
			{"02 Jan 2024", "Giro Payment", "", "100.00", "5,100.00"},
			{"03 Jan 2024", "Nets Purchase", "50.00", "", "5,050.00"},
		},
	}

	extractor := NewExtractor(&logging.MockLogger{})
	transactions, _, err := extractor.Extract(doc, "DBS")
	require.NoError(t, err)
	require.Len(t, transactions, 3)
	assert.Equal(t, models.OpeningBalance, transactions[0].TransactionType)
	assert.Equal(t, models.Credit, transactions[1].TransactionType)
	assert.Equal(t, models.Debit, transactions[2].TransactionType)
}

func TestExtractAccountInfoTable(t *testing.T) {
	doc := pdfaccess.NewMockAccess(1)
	doc.MockTables[1] = []models.Table{
		{
			{"Account Holder", "JOHN TAN", "Account Number", "1234567890"},
			{"Currency", "SGD", "Account Type", "Savings"},
		},
	}

	extractor := NewExtractor(&logging.MockLogger{})
	transactions, info, err := extractor.Extract(doc, "OCBC")
	require.NoError(t, err)
	assert.Empty(t, transactions)
	require.NotNil(t, info)
	assert.Equal(t, "JOHN TAN", info.AccountHolder)
	assert.Equal(t, "1234567890", info.AccountNumber)
	assert.Equal(t, "OCBC", info.Bank)
}

func TestExtractReusesHeaderAcrossContinuationTable(t *testing.T) {
	doc := pdfaccess.NewMockAccess(2)
	doc.MockTables[1] = []models.Table{
		{
			{"Date", "Description", "Withdrawal", "Deposit", "Balance"},
			{"01 Jan 2024", "Opening Balance", "", "", "5,000.00"},
			{"02 Jan 2024", "Giro Payment", "", "100.00", "5,100.00"},
		},
	}
	doc.MockTables[2] = []models.Table{
		{
			{"03 Jan 2024", "Nets Purchase", "50.00", "", "5,050.00"},
		},
	}

	extractor := NewExtractor(&logging.MockLogger{})
	transactions, _, err := extractor.Extract(doc, "DBS")
	require.NoError(t, err)
	require.Len(t, transactions, 3)
	assert.Equal(t, models.Debit, transactions[2].TransactionType)
	assert.Equal(t, "03 JAN", transactions[2].Date)
}

func TestExtractReturnsEmptyWhenNoTableQualifies(t *testing.T) {
	doc := pdfaccess.NewMockAccess(1)
	doc.MockTables[1] = []models.Table{
		{
			{"Date", "Description"},
			{"01 Jan", "Just a note"},
		},
	}
	extractor := NewExtractor(&logging.MockLogger{})
	transactions, _, err := extractor.Extract(doc, "DBS")
	require.NoError(t, err)
	assert.Empty(t, transactions)
}
