package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"ledgerlens/extractcore/cmd/root"
	"ledgerlens/extractcore/internal/batch"
	"ledgerlens/extractcore/internal/common"
	"ledgerlens/extractcore/internal/container"
	"ledgerlens/extractcore/internal/fileutils"
	"ledgerlens/extractcore/internal/logging"
	"ledgerlens/extractcore/internal/models"

	"github.com/spf13/cobra"
)

var (
	batchOutputDir string
	batchTimeout   time.Duration
)

var batchCmd = &cobra.Command{
	Use:   "batch <directory>",
	Short: "Extract every bank statement PDF in a directory, grouped by account",
	Long: `extract batch walks a directory of PDFs, groups them by account using
this codebase's statement filename convention, and runs each file through
the extraction pipeline with a bounded worker pool. One JSON summary and
one consolidated CSV ledger is written per account.

Example:
  extractcore extract batch ./statements --output-dir ./out`,
	Args: cobra.ExactArgs(1),
	Run:  runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutputDir, "output-dir", "o", "./out", "Directory to write per-account summaries and ledgers to")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 5*time.Minute, "Deadline for each individual file's extraction")
}

func runBatch(cmd *cobra.Command, args []string) {
	logger := root.Log
	inputDir := args[0]

	if !fileutils.DirectoryExists(inputDir) {
		logger.Fatalf("input directory does not exist: %s", inputDir)
	}
	if err := fileutils.EnsureDirectoryExists(batchOutputDir); err != nil {
		logger.Fatalf("failed to create output directory: %v", err)
	}

	files, err := fileutils.ListFilesWithExtension(inputDir, ".pdf")
	if err != nil {
		logger.Fatalf("failed to list PDFs in %s: %v", inputDir, err)
	}
	if len(files) == 0 {
		logger.Warn("no PDF files found in input directory")
		return
	}

	c := root.RequireContainer()
	aggregator := c.GetAggregator()
	groups := aggregator.GroupFilesByAccount(files)

	logger.WithField("files", len(files)).WithField("accounts", len(groups)).Info("starting batch extraction")

	workers := c.GetConfig().Extraction.WorkerPoolSize
	if workers < 1 {
		workers = 1
	}

	for _, group := range groups {
		results, failures := runGroup(cmd.Context(), c, group, workers, logger)
		summary := aggregator.Summarize(group, results, failures)

		if err := writeAccountSummary(aggregator, group, summary, logger); err != nil {
			logger.WithError(err).Error("failed to write account summary")
		}
	}

	logger.Info("batch extraction completed")
}

// runGroup extracts every file in a group concurrently, bounded by
// workers, mirroring the semaphore-bounded fan-out the LLM tier already
// uses for its own batch concurrency.
func runGroup(ctx context.Context, c *container.Container, group batch.FileGroup, workers int, logger logging.Logger) (map[string]models.ExtractionResult, map[string]error) {
	results := make(map[string]models.ExtractionResult)
	failures := make(map[string]error)
	var mu sync.Mutex

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for _, file := range group.Files {
		file := file
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			fileCtx, cancel := context.WithTimeout(ctx, batchTimeout)
			defer cancel()

			result, err := extractOne(fileCtx, c, file)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.WithError(err).WithField("file", filepath.Base(file)).Warn("file failed extraction")
				failures[file] = err
				return
			}
			results[file] = result
		}()
	}
	wg.Wait()
	return results, failures
}

func extractOne(ctx context.Context, c *container.Container, file string) (models.ExtractionResult, error) {
	doc, err := c.GetOpener().Open(file)
	if err != nil {
		return models.ExtractionResult{}, fmt.Errorf("open %s: %w", file, err)
	}
	defer func() { _ = doc.Close() }()

	return c.GetPipeline().Run(ctx, file, doc, nil)
}

func writeAccountSummary(aggregator *batch.Aggregator, group batch.FileGroup, summary batch.AccountSummary, logger logging.Logger) error {
	summaryPath := filepath.Join(batchOutputDir, aggregator.GenerateOutputFilename(group.AccountID, group.DateRange, "summary.json"))
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := fileutils.WriteFile(summaryPath, data, 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	var allTxns []models.Transaction
	for _, r := range summary.Results {
		allTxns = append(allTxns, r.Transactions...)
	}
	if len(allTxns) > 0 {
		csvPath := filepath.Join(batchOutputDir, aggregator.GenerateOutputFilename(group.AccountID, group.DateRange, "csv"))
		if err := common.WriteTransactionsToCSV(allTxns, csvPath, logger); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}

	logger.WithField("account", summary.AccountID).
		WithField("transactions", summary.TotalTransactions).
		WithField("failures", len(summary.Failures)).
		Info("wrote account summary")

	return nil
}
