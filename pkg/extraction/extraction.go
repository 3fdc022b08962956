// Package extraction is the embeddable library surface over the
// extraction core: a caller that wants a normalized ledger out of a bank
// statement PDF without shelling out to the CLI wires nothing more than
// a *config.Config and calls Statement or Batch, the same way pkg/converter
// wrapped this codebase's original XML-to-CSV conversion behind a couple of
// top-level functions.
package extraction

import (
	"context"
	"fmt"

	"ledgerlens/extractcore/internal/batch"
	"ledgerlens/extractcore/internal/config"
	"ledgerlens/extractcore/internal/container"
	"ledgerlens/extractcore/internal/fileutils"
	"ledgerlens/extractcore/internal/models"
)

// Statement runs the full identify/extract/normalize pipeline over a single
// bank statement PDF. hint, if non-nil, is passed straight to the Bank
// Identifier as an upstream layout hint.
func Statement(ctx context.Context, cfg *config.Config, path string, hint *models.BankLayout) (models.ExtractionResult, error) {
	c, err := container.NewContainer(ctx, cfg)
	if err != nil {
		return models.ExtractionResult{}, fmt.Errorf("build container: %w", err)
	}
	defer func() { _ = c.Close() }()

	doc, err := c.GetOpener().Open(path)
	if err != nil {
		return models.ExtractionResult{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = doc.Close() }()

	return c.GetPipeline().Run(ctx, path, doc, hint)
}

// Batch runs Statement over every PDF in a directory, grouped by account via
// the same filename convention "extract batch" uses, and returns one
// AccountSummary per distinct account found. It does not write any files;
// callers that want the CLI's on-disk JSON/CSV output should shell out to
// the CLI, or serialize the returned summaries themselves.
func Batch(ctx context.Context, cfg *config.Config, dir string) ([]batch.AccountSummary, error) {
	c, err := container.NewContainer(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("build container: %w", err)
	}
	defer func() { _ = c.Close() }()

	files, err := fileutils.ListFilesWithExtension(dir, ".pdf")
	if err != nil {
		return nil, fmt.Errorf("list PDFs in %s: %w", dir, err)
	}

	aggregator := c.GetAggregator()
	groups := aggregator.GroupFilesByAccount(files)

	summaries := make([]batch.AccountSummary, 0, len(groups))
	for _, group := range groups {
		results := make(map[string]models.ExtractionResult)
		failures := make(map[string]error)

		for _, file := range group.Files {
			doc, openErr := c.GetOpener().Open(file)
			if openErr != nil {
				failures[file] = openErr
				continue
			}
			result, runErr := c.GetPipeline().Run(ctx, file, doc, nil)
			_ = doc.Close()
			if runErr != nil {
				failures[file] = runErr
				continue
			}
			results[file] = result
		}

		summaries = append(summaries, aggregator.Summarize(group, results, failures))
	}

	return summaries, nil
}
