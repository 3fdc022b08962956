package wordtier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerlens/extractcore/internal/models"
)

func TestAssignRowsGroupsAndDiscardsUnmatched(t *testing.T) {
	layout := models.ColumnLayout{
		Columns: map[string]models.ColumnInterval{
			models.ColTransactionDate: {X0: 0, X1: 90},
			models.ColDescription:     {X0: 90, X1: 300},
			models.ColBalance:         {X0: 300, X1: 500},
		},
		YMin: 100, YMax: 110,
	}

	words := []models.Word{
		word("02", 10, 20, 200, 210),
		word("Jan", 25, 45, 200, 210),
		word("2024", 50, 80, 200, 210),
		word("GIRO", 100, 140, 200, 210),
		word("Payment", 150, 200, 200, 210),
		word("5,100.00", 350, 400, 200, 210),
		word("WATERMARK", 600, 650, 200, 210),
	}

	rows := AssignRows(words, layout)
	require.Len(t, rows, 1)
	assert.Equal(t, "02 Jan 2024", rows[0].Cells[models.ColTransactionDate])
	assert.Equal(t, "GIRO Payment", rows[0].Cells[models.ColDescription])
	assert.Equal(t, "5,100.00", rows[0].Cells[models.ColBalance])
	assert.NotContains(t, rows[0].Cells, "watermark")
}

func TestAssignRowsIgnoresWordsAboveHeaderSpan(t *testing.T) {
	layout := models.ColumnLayout{
		Columns: map[string]models.ColumnInterval{
			models.ColBalance: {X0: 0, X1: 500},
		},
		YMin: 100, YMax: 110,
	}
	words := []models.Word{
		word("Balance", 10, 60, 100, 108),
		word("5,000.00", 10, 60, 200, 210),
	}
	rows := AssignRows(words, layout)
	require.Len(t, rows, 1)
	assert.Equal(t, "5,000.00", rows[0].Cells[models.ColBalance])
}
