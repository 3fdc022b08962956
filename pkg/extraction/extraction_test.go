package extraction

import (
	"context"
	"testing"

	"ledgerlens/extractcore/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "error"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ","
	cfg.Extraction.MinViableTransactions = 3
	cfg.Extraction.ScannedPageCharThreshold = 20
	cfg.Extraction.VisionDPI = 150
	cfg.Extraction.WorkerPoolSize = 2
	cfg.Extraction.BalanceChainTolerance = 0.02
	cfg.AI.ChatTimeoutSeconds = 120
	cfg.AI.VisionTimeoutSeconds = 60
	cfg.AI.MaxBatchRetries = 2
	return cfg
}

func TestStatementReturnsErrorForMissingFile(t *testing.T) {
	_, err := Statement(context.Background(), testConfig(), "/no/such/statement.pdf", nil)
	require.Error(t, err)
}

func TestStatementRejectsNilConfig(t *testing.T) {
	_, err := Statement(context.Background(), nil, "/no/such/statement.pdf", nil)
	require.Error(t, err)
}

func TestBatchReturnsEmptyForDirectoryWithNoPDFs(t *testing.T) {
	summaries, err := Batch(context.Background(), testConfig(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestBatchRejectsUnreadableDirectory(t *testing.T) {
	_, err := Batch(context.Background(), testConfig(), "/no/such/directory")
	require.Error(t, err)
}
