package llmtier

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerlens/extractcore/internal/logging"
	"ledgerlens/extractcore/internal/pdfaccess"
)

type fakeClient struct {
	chatResponses map[int]string
	calls         int
	err           error
}

func (f *fakeClient) Chat(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.chatResponses[f.calls], nil
}

func (f *fakeClient) AnalyzeImage(ctx context.Context, imageBytes []byte, prompt string) (string, error) {
	return "", nil
}

func defaultOptions() Options {
	return Options{
		ScannedPageCharThreshold: 20,
		VisionDPI:                150,
		WorkerPoolSize:           2,
		ChatTimeout:              5 * time.Second,
		VisionTimeout:            5 * time.Second,
		MaxBatchRetries:          1,
	}
}

func TestExtractorRecoversTransactionsAcrossOnePageBatch(t *testing.T) {
	doc := pdfaccess.NewMockAccess(1)
	doc.MockText[1] = "01 Jan 2024 GIRO Payment 100.00 5,100.00"

	client := &fakeClient{chatResponses: map[int]string{
		1: `[{"date": "01 Jan", "description": "GIRO Payment", "amount": 100.00, "transaction_type": "credit", "balance": 5100.00}]`,
	}}

	extractor := NewExtractor(client, &logging.MockLogger{}, defaultOptions())
	txns, diagnostics, err := extractor.Extract(context.Background(), doc, "DBS")
	require.NoError(t, err)
	assert.Empty(t, diagnostics)
	require.Len(t, txns, 1)
	assert.Equal(t, "01 JAN", txns[0].Date)
}

func TestExtractorReturnsExtractionFailedWhenAllBatchesFail(t *testing.T) {
	doc := pdfaccess.NewMockAccess(1)
	doc.MockText[1] = "01 Jan 2024 GIRO Payment 100.00 5,100.00"

	client := &fakeClient{err: assertErr{}}
	opts := defaultOptions()
	opts.MaxBatchRetries = 0

	extractor := NewExtractor(client, &logging.MockLogger{}, opts)
	txns, diagnostics, err := extractor.Extract(context.Background(), doc, "DBS")
	require.Error(t, err)
	assert.Nil(t, txns)
	require.Len(t, diagnostics, 1)
}

type assertErr struct{}

func (assertErr) Error() string { return "chat call failed" }

func TestExtractorSkipsBoilerplateOnlyPages(t *testing.T) {
	doc := pdfaccess.NewMockAccess(1)
	doc.MockText[1] = "Legend: DR - Debit, CR - Credit\n" + repeatString("code meaning ", 400)

	client := &fakeClient{chatResponses: map[int]string{}}
	extractor := NewExtractor(client, &logging.MockLogger{}, defaultOptions())
	txns, diagnostics, err := extractor.Extract(context.Background(), doc, "DBS")
	require.NoError(t, err)
	assert.Empty(t, diagnostics)
	assert.Empty(t, txns)
	assert.Equal(t, 0, client.calls)
}

func repeatString(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
