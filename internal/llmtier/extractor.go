// Package llmtier implements the Tier-3 Language-Model Extractor: the
// fallback path when the ruled-table and word-geometry tiers can't
// recover a viable transaction list, and the only path for scanned
// (image-only) statements.
package llmtier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ledgerlens/extractcore/internal/logging"
	"ledgerlens/extractcore/internal/models"
	"ledgerlens/extractcore/internal/pdfaccess"
	"ledgerlens/extractcore/internal/xerrors"
)

// ocrPrompt is the fixed instruction used to turn a rendered page image
// into plain text when §4.A marks the document as scanned.
const ocrPrompt = "Transcribe all text visible on this bank statement page, preserving line breaks and column alignment as closely as possible. Return only the transcribed text."

// Options bundles the tunables §11's configuration section exposes for
// Tier-3.
type Options struct {
	ScannedPageCharThreshold int
	VisionDPI                int
	WorkerPoolSize           int
	ChatTimeout              time.Duration
	VisionTimeout            time.Duration
	MaxBatchRetries          int
}

// Extractor runs the Tier-3 pass over a whole document.
type Extractor struct {
	Client  AIClient
	Logger  logging.Logger
	Options Options
}

// NewExtractor builds an Extractor.
func NewExtractor(client AIClient, logger logging.Logger, opts Options) *Extractor {
	return &Extractor{Client: client, Logger: logger, Options: opts}
}

// Extract implements the §4.E contract. It returns any per-batch
// diagnostics alongside the transactions recovered from the batches that
// did succeed; a non-nil error means a page could not be read, the context
// was cancelled, or every batch failed.
func (e *Extractor) Extract(ctx context.Context, doc pdfaccess.Access, bank string) ([]models.Transaction, []*xerrors.BatchError, error) {
	pages, err := e.collectPages(ctx, doc, bank)
	if err != nil {
		return nil, nil, err
	}
	if len(pages) == 0 {
		return nil, nil, nil
	}

	batches := BuildBatches(pages)
	results := make([][]models.Transaction, len(batches))
	diagnostics := make([]*xerrors.BatchError, len(batches))

	sem := make(chan struct{}, maxInt(1, e.Options.WorkerPoolSize))
	var wg sync.WaitGroup
	for _, batch := range batches {
		batch := batch
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			txns, diag := e.runBatch(ctx, batch, bank)
			results[batch.Index] = txns
			diagnostics[batch.Index] = diag
		}()
	}
	wg.Wait()

	if ctx.Err() != nil {
		return nil, nil, xerrors.NewExtractionCancelled("tier3-llm-batch", ctx.Err())
	}

	var failed []*xerrors.BatchError
	var all []models.Transaction
	for i, txns := range results {
		all = append(all, txns...)
		if diagnostics[i] != nil {
			failed = append(failed, diagnostics[i])
		}
	}

	if len(failed) == len(batches) {
		return nil, failed, xerrors.NewExtractionFailed([]string{"llm"}, 0, fmt.Errorf("all %d batches failed", len(batches)))
	}

	return Deduplicate(all), failed, nil
}

func (e *Extractor) collectPages(ctx context.Context, doc pdfaccess.Access, bank string) ([]Page, error) {
	count, err := doc.PageCount()
	if err != nil {
		return nil, err
	}

	scanned, err := pdfaccess.IsScanned(doc, e.Options.ScannedPageCharThreshold)
	if err != nil {
		return nil, err
	}

	var pages []Page
	for p := 1; p <= count; p++ {
		text, err := e.pageText(ctx, doc, p, scanned)
		if err != nil {
			return nil, err
		}
		if ShouldSkipPage(text) {
			continue
		}
		pages = append(pages, Page{Number: p, Text: StripNoise(text, bank)})
	}
	return pages, nil
}

func (e *Extractor) pageText(ctx context.Context, doc pdfaccess.Access, page int, scanned bool) (string, error) {
	if !scanned {
		return doc.PageText(page)
	}

	image, err := doc.RenderPage(page, e.Options.VisionDPI)
	if err != nil {
		return "", err
	}

	visionCtx, cancel := context.WithTimeout(ctx, e.Options.VisionTimeout)
	defer cancel()
	text, err := e.Client.AnalyzeImage(visionCtx, image, ocrPrompt)
	if err != nil {
		if visionCtx.Err() != nil {
			return "", xerrors.NewExtractionCancelled("tier3-vision-ocr", err)
		}
		return "", err
	}
	return text, nil
}

func (e *Extractor) runBatch(ctx context.Context, batch Batch, bank string) ([]models.Transaction, *xerrors.BatchError) {
	prompt := BuildExtractionPrompt(bank, batch.Text())

	var lastErr error
	for attempt := 0; attempt <= e.Options.MaxBatchRetries; attempt++ {
		chatCtx, cancel := context.WithTimeout(ctx, e.Options.ChatTimeout)
		response, err := e.Client.Chat(chatCtx, prompt)
		cancel()
		if err == nil {
			firstPage := 0
			if len(batch.Pages) > 0 {
				firstPage = batch.Pages[0].Number
			}
			txns, parseErr := ParseBatchResponse(response, firstPage)
			if parseErr == nil {
				return txns, nil
			}
			lastErr = parseErr
			continue
		}
		lastErr = err
		e.Logger.WithField("batch", batch.Index).WithField("attempt", attempt).Debug("tier-3 batch call failed, retrying")
	}

	return nil, &xerrors.BatchError{BatchIndex: batch.Index, Reason: "chat call exhausted retries", Err: lastErr}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
