// Package batch groups statement files belonging to the same account and
// rolls up their individual extraction results into a per-account summary,
// for the "extract batch <directory>" command.
package batch

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"ledgerlens/extractcore/internal/common"
	"ledgerlens/extractcore/internal/logging"
	"ledgerlens/extractcore/internal/models"
)

// DateRange represents a date range with start and end dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String returns the date range in the format "YYYY-MM-DD_YYYY-MM-DD".
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s_%s",
		dr.Start.Format("2006-01-02"),
		dr.End.Format("2006-01-02"))
}

// Merge combines this date range with another, returning the overall range.
func (dr DateRange) Merge(other DateRange) DateRange {
	start := dr.Start
	end := dr.End

	if dr.Start.IsZero() {
		start = other.Start
	} else if !other.Start.IsZero() && other.Start.Before(start) {
		start = other.Start
	}

	if dr.End.IsZero() {
		end = other.End
	} else if !other.End.IsZero() && other.End.After(end) {
		end = other.End
	}

	return DateRange{Start: start, End: end}
}

// FileGroup is a set of statement files sharing an account identifier.
type FileGroup struct {
	AccountID string
	Files     []string
	DateRange DateRange
}

// AccountSummary rolls up every file in a FileGroup's individually run
// extraction results into one per-account report.
type AccountSummary struct {
	AccountID         string                    `json:"account_id"`
	SourceFiles       []string                  `json:"source_files"`
	DateRange         string                    `json:"date_range,omitempty"`
	TotalTransactions int                       `json:"total_transactions"`
	Currencies        []string                  `json:"currencies"`
	NetChange         map[string]models.Money   `json:"net_change,omitempty"`
	Results           []models.ExtractionResult `json:"-"`
	Failures          []BatchError              `json:"failures,omitempty"`
}

// BatchError records a single file's extraction failure inside a batch run
// without aborting the rest of the group.
type BatchError struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// Aggregator groups statement files by account and rolls their per-file
// extraction results into per-account summaries.
type Aggregator struct {
	logger logging.Logger
}

// NewAggregator creates a new Aggregator.
func NewAggregator(logger logging.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// GroupFilesByAccount groups files by their account identifier, derived
// from each filename via internal/common's statement filename convention.
func (a *Aggregator) GroupFilesByAccount(files []string) []FileGroup {
	accountGroups := make(map[string]*FileGroup)

	for _, file := range files {
		accountID := common.ExtractAccountFromFilename(file)

		a.logger.Debug("file mapped to account",
			logging.Field{Key: "file", Value: filepath.Base(file)},
			logging.Field{Key: "account", Value: accountID.ID},
			logging.Field{Key: "source", Value: accountID.Source})

		group, exists := accountGroups[accountID.ID]
		if !exists {
			group = &FileGroup{AccountID: accountID.ID}
			accountGroups[accountID.ID] = group
		}

		group.Files = append(group.Files, file)

		if start, end, ok := common.ExtractDateRangeFromFilename(file); ok {
			group.DateRange = group.DateRange.Merge(DateRange{Start: start, End: end})
		}
	}

	groups := make([]FileGroup, 0, len(accountGroups))
	for _, group := range accountGroups {
		groups = append(groups, *group)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].AccountID < groups[j].AccountID
	})

	a.logger.Info("grouped files into account groups",
		logging.Field{Key: "total_files", Value: len(files)},
		logging.Field{Key: "account_groups", Value: len(groups)})

	return groups
}

// Summarize rolls up a FileGroup's already-run extraction results (and any
// per-file failures) into one AccountSummary. Results and failures are
// keyed by the path of the file they came from, as produced by a bounded
// worker pool running the pipeline over group.Files.
func (a *Aggregator) Summarize(group FileGroup, results map[string]models.ExtractionResult, failures map[string]error) AccountSummary {
	summary := AccountSummary{
		AccountID:   group.AccountID,
		SourceFiles: make([]string, 0, len(group.Files)),
		DateRange:   group.DateRange.String(),
	}

	currencySet := make(map[string]struct{})
	netChange := make(map[string]models.Money)

	for _, file := range group.Files {
		base := filepath.Base(file)
		summary.SourceFiles = append(summary.SourceFiles, base)

		if err, failed := failures[file]; failed {
			summary.Failures = append(summary.Failures, BatchError{File: base, Reason: err.Error()})
			continue
		}

		result, ok := results[file]
		if !ok {
			continue
		}

		summary.Results = append(summary.Results, result)
		summary.TotalTransactions += len(result.Transactions)
		for _, c := range result.Currencies {
			currencySet[c] = struct{}{}
		}

		for _, txn := range result.Transactions {
			running, seen := netChange[txn.Currency]
			if !seen {
				running = models.ZeroMoney(txn.Currency)
			}
			updated, addErr := running.Add(models.NewMoney(txn.SignedAmount(), txn.Currency))
			if addErr != nil {
				a.logger.WithError(addErr).Warn("skipping transaction with mismatched currency in net change")
				continue
			}
			netChange[txn.Currency] = updated
		}
	}

	for c := range currencySet {
		summary.Currencies = append(summary.Currencies, c)
	}
	sort.Strings(summary.Currencies)

	if len(netChange) > 0 {
		summary.NetChange = netChange
	}

	if len(summary.Failures) > 0 {
		a.logger.Warn("some files in account group failed extraction",
			logging.Field{Key: "account", Value: group.AccountID},
			logging.Field{Key: "failed", Value: len(summary.Failures)},
			logging.Field{Key: "total", Value: len(group.Files)})
	}

	return summary
}

// GenerateOutputFilename builds an output filename for a consolidated
// per-account report: {account_id}_{start_date}_{end_date}.{ext}, falling
// back to just the account ID when no date range is known.
func (a *Aggregator) GenerateOutputFilename(accountID string, dateRange DateRange, ext string) string {
	sanitized := common.SanitizeAccountID(accountID)

	if !dateRange.Start.IsZero() && !dateRange.End.IsZero() {
		return fmt.Sprintf("%s_%s.%s", sanitized, dateRange.String(), ext)
	}
	return fmt.Sprintf("%s.%s", sanitized, ext)
}

// GenerateSourceFileHeader creates a comment header listing an account
// summary's source files, for prepending to a human-readable report.
func (a *Aggregator) GenerateSourceFileHeader(sourceFiles []string) string {
	if len(sourceFiles) == 0 {
		return ""
	}

	var header strings.Builder
	header.WriteString("# Consolidated from source files:\n")
	for _, file := range sourceFiles {
		header.WriteString(fmt.Sprintf("# - %s\n", file))
	}
	header.WriteString("#\n")

	return header.String()
}
