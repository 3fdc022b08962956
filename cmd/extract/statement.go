package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"ledgerlens/extractcore/cmd/root"
	"ledgerlens/extractcore/internal/common"
	"ledgerlens/extractcore/internal/fileutils"
	"ledgerlens/extractcore/internal/models"
	"ledgerlens/extractcore/internal/validation"

	"github.com/spf13/cobra"
)

var (
	statementOutput   string
	statementCSV      string
	statementBankHint string
	statementTimeout  time.Duration
)

var statementCmd = &cobra.Command{
	Use:   "statement <file.pdf>",
	Short: "Extract one bank statement PDF into a normalized ledger",
	Long: `extract statement runs the cascading table/word-geometry/LLM pipeline
over a single bank statement PDF and writes the resulting ExtractionResult
as JSON, optionally alongside a flat transaction ledger as CSV.

Example:
  extractcore extract statement input.pdf --output result.json --csv transactions.csv --bank-hint OCBC`,
	Args: cobra.ExactArgs(1),
	Run:  runStatement,
}

func init() {
	statementCmd.Flags().StringVarP(&statementOutput, "output", "o", "result.json", "Path to write the JSON extraction result")
	statementCmd.Flags().StringVar(&statementCSV, "csv", "", "Optional path to also write the ledger as CSV")
	statementCmd.Flags().StringVar(&statementBankHint, "bank-hint", "", "Skip bank identification and assume this bank (e.g. OCBC, DBS, UOB)")
	statementCmd.Flags().DurationVar(&statementTimeout, "timeout", 5*time.Minute, "Deadline for the whole extraction")
}

func runStatement(cmd *cobra.Command, args []string) {
	logger := root.Log
	inputFile := args[0]

	if !fileutils.FileExists(inputFile) {
		logger.Fatalf("input file does not exist: %s", inputFile)
	}

	if ext := strings.ToLower(filepath.Ext(statementOutput)); ext != ".json" {
		if err := validation.IsValidOutputFormat(strings.TrimPrefix(ext, ".")); err != nil {
			logger.Fatalf("invalid --output path: %v", err)
		}
	}

	c := root.RequireContainer()

	doc, err := c.GetOpener().Open(inputFile)
	if err != nil {
		logger.Fatalf("failed to open %s: %v", inputFile, err)
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			logger.WithError(cerr).Warn("failed to close document")
		}
	}()

	var hint *models.BankLayout
	if statementBankHint != "" {
		hint = &models.BankLayout{Bank: statementBankHint, Confidence: 1.0, Source: models.DetectionKeyword}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), statementTimeout)
	defer cancel()

	result, err := c.GetPipeline().Run(ctx, inputFile, doc, hint)
	if err != nil {
		logger.Fatalf("extraction failed: %v", err)
	}

	if err := writeJSONResult(result, statementOutput); err != nil {
		logger.Fatalf("failed to write result: %v", err)
	}
	logger.WithField("file", statementOutput).Info("wrote extraction result")

	if statementCSV != "" {
		if err := common.WriteTransactionsToCSV(result.Transactions, statementCSV, logger); err != nil {
			logger.Fatalf("failed to write CSV: %v", err)
		}
	}

	logger.WithField("bank", result.Bank).
		WithField("transactions", len(result.Transactions)).
		WithField("method", string(result.ExtractionMethod)).
		WithField("accuracy", result.Accuracy.Grade).
		Info("extraction completed")
}

func writeJSONResult(result models.ExtractionResult, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal extraction result: %w", err)
	}
	return fileutils.WriteFile(path, data, 0644)
}
