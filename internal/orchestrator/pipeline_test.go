package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerlens/extractcore/internal/bankid"
	"ledgerlens/extractcore/internal/llmtier"
	"ledgerlens/extractcore/internal/logging"
	"ledgerlens/extractcore/internal/models"
	"ledgerlens/extractcore/internal/pdfaccess"
	"ledgerlens/extractcore/internal/tabletier"
	"ledgerlens/extractcore/internal/wordtier"
	"ledgerlens/extractcore/internal/xerrors"
)

type emptyChatClient struct{}

func (emptyChatClient) Chat(ctx context.Context, prompt string) (string, error) {
	return "[]", nil
}

func (emptyChatClient) AnalyzeImage(ctx context.Context, imageBytes []byte, prompt string) (string, error) {
	return "", nil
}

func newTestPipeline(client llmtier.AIClient) *Pipeline {
	logger := &logging.MockLogger{}
	identifier := bankid.NewIdentifier(nil, logger, 150)
	tableTier := tabletier.NewExtractor(logger)
	wordTier := wordtier.NewExtractor(logger)
	llmTier := llmtier.NewExtractor(client, logger, llmtier.Options{
		ScannedPageCharThreshold: 20,
		VisionDPI:                150,
		WorkerPoolSize:           2,
		ChatTimeout:              1e9,
		VisionTimeout:            1e9,
		MaxBatchRetries:          0,
	})
	return NewPipeline(identifier, tableTier, wordTier, llmTier, logger, Options{
		MinViableTransactions:    3,
		ScannedPageCharThreshold: 20,
		BalanceChainTolerance:    0.02,
	})
}

func TestPipelineRunUsesTableTierWhenSufficient(t *testing.T) {
	doc := pdfaccess.NewMockAccess(1)
	doc.MockTables[1] = []models.Table{
		{
			{"Date", "Description", "Withdrawal", "Deposit", "Balance"},
			{"01 Jan 2024", "Opening Balance", "", "", "5,000.00"},
			{"02 Jan 2024", "Giro Payment", "", "100.00", "5,100.00"},
			{"03 Jan 2024", "Nets Purchase", "50.00", "", "5,050.00"},
		},
	}
	doc.MockText[1] = "DBS Bank Ltd statement"

	pipeline := newTestPipeline(emptyChatClient{})
	result, err := pipeline.Run(context.Background(), "statement.pdf", doc, nil)
	require.NoError(t, err)
	assert.Equal(t, models.MethodTable, result.ExtractionMethod)
	require.Len(t, result.Transactions, 3)
	assert.Equal(t, "SGD", result.Transactions[0].Currency)
	assert.Equal(t, []string{"SGD"}, result.Currencies)
	assert.Equal(t, "DBS", result.Bank)
	assert.GreaterOrEqual(t, result.Accuracy.OverallScore, 0.0)
	assert.LessOrEqual(t, result.Accuracy.OverallScore, 100.0)
	assert.Equal(t, 100.0, result.BalanceChain.Overall.ChainAccuracyPct)
}

func word(text string, x0, x1, top, bottom float64) models.Word {
	return models.Word{Text: text, X0: x0, X1: x1, Top: top, Bottom: bottom}
}

func TestPipelineRunReportsCurrenciesInFirstSeenOrder(t *testing.T) {
	doc := pdfaccess.NewMockAccess(2)
	doc.MockText[1] = "DBS BANK LTD - STATEMENT OF ACCOUNT\nUSD"
	doc.MockText[2] = "SGD"
	doc.MockWords[1] = []models.Word{
		word("Date", 10, 40, 100, 110),
		word("Description", 100, 160, 100, 110),
		word("Withdrawal", 250, 300, 100, 110),
		word("Deposit", 320, 370, 100, 110),
		word("Balance", 400, 450, 100, 110),

		word("BALANCE", 75, 115, 200, 210),
		word("BROUGHT", 118, 155, 200, 210),
		word("FORWARD", 158, 195, 200, 210),
		word("5,000.00", 405, 450, 200, 210),

		word("02", 10, 20, 220, 230),
		word("Jan", 25, 45, 220, 230),
		word("2024", 50, 80, 220, 230),
		word("GIRO", 100, 140, 220, 230),
		word("Payment", 150, 200, 220, 230),
		word("100.00", 325, 365, 220, 230),
		word("5,100.00", 405, 450, 220, 230),
	}
	doc.MockWords[2] = []models.Word{
		word("03", 10, 20, 240, 250),
		word("Jan", 25, 45, 240, 250),
		word("2024", 50, 80, 240, 250),
		word("NETS", 100, 140, 240, 250),
		word("Purchase", 150, 200, 240, 250),
		word("50.00", 255, 295, 240, 250),
		word("5,050.00", 405, 450, 240, 250),

		word("BALANCE", 75, 115, 260, 270),
		word("CARRIED", 118, 155, 260, 270),
		word("FORWARD", 158, 195, 260, 270),
		word("5,050.00", 405, 450, 260, 270),
	}

	pipeline := newTestPipeline(emptyChatClient{})
	result, err := pipeline.Run(context.Background(), "statement.pdf", doc, nil)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 4)
	assert.Equal(t, []string{"USD", "SGD"}, result.Currencies)
}

func TestPipelineRunReturnsPdfUnreadableForEmptyDocument(t *testing.T) {
	doc := pdfaccess.NewMockAccess(0)
	pipeline := newTestPipeline(emptyChatClient{})
	_, err := pipeline.Run(context.Background(), "empty.pdf", doc, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrPdfUnreadable)
}

func TestPipelineRunReturnsExtractionFailedWhenAllTiersInsufficient(t *testing.T) {
	doc := pdfaccess.NewMockAccess(1)
	doc.MockText[1] = "no transactional content here"
	doc.MockWords[1] = nil

	pipeline := newTestPipeline(emptyChatClient{})
	_, err := pipeline.Run(context.Background(), "sparse.pdf", doc, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrExtractionFailed)
}

func TestPipelineRunFallsBackToTierFailureWhenLLMTierIsNil(t *testing.T) {
	logger := &logging.MockLogger{}
	identifier := bankid.NewIdentifier(nil, logger, 150)
	tableTier := tabletier.NewExtractor(logger)
	wordTier := wordtier.NewExtractor(logger)
	pipeline := NewPipeline(identifier, tableTier, wordTier, nil, logger, Options{
		MinViableTransactions:    3,
		ScannedPageCharThreshold: 20,
		BalanceChainTolerance:    0.02,
	})

	doc := pdfaccess.NewMockAccess(1)
	doc.MockText[1] = "no transactional content here"
	doc.MockWords[1] = nil

	_, err := pipeline.Run(context.Background(), "sparse.pdf", doc, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrExtractionFailed)
}

func TestPipelineRunUsesBankHintWithoutRunningVision(t *testing.T) {
	doc := pdfaccess.NewMockAccess(1)
	doc.MockTables[1] = []models.Table{
		{
			{"Date", "Description", "Withdrawal", "Deposit", "Balance"},
			{"01 Jan 2024", "Opening Balance", "", "", "5,000.00"},
			{"02 Jan 2024", "Giro Payment", "", "100.00", "5,100.00"},
			{"03 Jan 2024", "Nets Purchase", "50.00", "", "5,050.00"},
		},
	}

	hint := &models.BankLayout{Bank: "OCBC", Confidence: 0.95, Source: models.DetectionProduct}
	pipeline := newTestPipeline(emptyChatClient{})
	result, err := pipeline.Run(context.Background(), "statement.pdf", doc, hint)
	require.NoError(t, err)
	assert.Equal(t, "OCBC", result.Bank)
}
