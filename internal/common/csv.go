package common

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"ledgerlens/extractcore/internal/logging"
	"ledgerlens/extractcore/internal/models"
)

// Delimiter is the CSV field separator used by WriteTransactionsToCSV. It
// changes only through SetDelimiter; the CLI does not apply
// Config.CSV.Delimiter to it.
var Delimiter rune = ','

// SetDelimiter changes the package-wide CSV delimiter, matching gocsv's
// own tag-separator convention.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// WriteTransactionsToCSV writes a normalized ledger to disk via gocsv,
// creating parent directories as needed. Every extraction tier's output
// converges on models.Transaction before reaching here, so this is the
// single place the CLI's CSV export path lives.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string, logger logging.Logger) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	if err := os.MkdirAll(filepath.Dir(csvFile), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logger.WithError(cerr).Warn("failed to close CSV file")
		}
	}()

	writer := csv.NewWriter(file)
	writer.Comma = Delimiter

	if err := gocsv.MarshalCSV(transactions, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	logger.WithField("file", csvFile).WithField("count", len(transactions)).Info("wrote transaction ledger to CSV")
	return nil
}
