// Package tabletier implements the Tier-1 Table Extractor: parsing ruled
// PDF tables via a fixed header-alias map, the first and cheapest of the
// three extraction strategies.
package tabletier

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"ledgerlens/extractcore/internal/logging"
	"ledgerlens/extractcore/internal/models"
	"ledgerlens/extractcore/internal/normalize"
	"ledgerlens/extractcore/internal/pdfaccess"
)

// Extractor runs the Tier-1 table pass over a whole document.
type Extractor struct {
	Logger logging.Logger
}

// NewExtractor builds an Extractor.
func NewExtractor(logger logging.Logger) *Extractor {
	return &Extractor{Logger: logger}
}

// Result is what a single table yields: either transactions or account
// info, never both.
type Result struct {
	Transactions []models.Transaction
	AccountInfo  *models.AccountInfo
}

// Extract implements the §4.C contract: PDF handle plus bank identifier in,
// a sequence of transactions (or empty) out. Empty means the caller should
// fall through to Tier 2.
func (e *Extractor) Extract(doc pdfaccess.Access, bank string) ([]models.Transaction, *models.AccountInfo, error) {
	count, err := doc.PageCount()
	if err != nil {
		return nil, nil, err
	}

	var transactions []models.Transaction
	var accountInfo *models.AccountInfo
	var lastColumns map[string]int

	for page := 1; page <= count; page++ {
		tables, err := doc.PageTables(page)
		if err != nil {
			return nil, nil, err
		}
		for _, table := range tables {
			result, columns := e.extractTable(table, page, lastColumns)
			if columns != nil {
				lastColumns = columns
			}
			if result.AccountInfo != nil && accountInfo == nil {
				accountInfo = result.AccountInfo
			}
			transactions = append(transactions, result.Transactions...)
		}
	}

	if accountInfo != nil {
		accountInfo.Bank = bank
	}

	return transactions, accountInfo, nil
}

func canonicalHeader(cell string) string {
	lower := strings.ToLower(cell)
	return strings.Join(strings.Fields(lower), " ")
}

// canonicalizeRow maps a table's header row to canonical column indices.
// Returns nil if the table lacks a balance column or an amount column,
// which triggers the caller to skip it (§4.C step 1).
func canonicalizeRow(header []string) map[string]int {
	columns := map[string]int{}
	for i, cell := range header {
		canon, ok := aliasMap[canonicalHeader(cell)]
		if !ok {
			continue
		}
		if _, exists := columns[canon]; !exists {
			columns[canon] = i
		}
	}

	_, hasBalance := columns[ColBalance]
	_, hasDebit := columns[ColDebit]
	_, hasCredit := columns[ColCredit]
	if !hasBalance || (!hasDebit && !hasCredit) {
		return nil
	}
	return columns
}

var accountInfoMarkerRe = regexp.MustCompile(`(?i)account number|opening balance`)

func isAccountInfoTable(table models.Table) bool {
	for _, row := range table {
		for _, cell := range row {
			if accountInfoMarkerRe.MatchString(cell) {
				return true
			}
		}
	}
	return false
}

// extractTable parses one table given the column layout carried forward
// from the nearest preceding valid header, mirroring the word-geometry
// tier's own lastLayout/haveLayout caching (§4.D.1) so a headers-only or
// continuation table on a later page or page break isn't dropped outright.
// It returns the columns actually used, so the caller can update its cache
// only when a header was freshly discovered.
func (e *Extractor) extractTable(table models.Table, page int, lastColumns map[string]int) (Result, map[string]int) {
	if len(table) == 0 {
		return Result{}, nil
	}

	columns := canonicalizeRow(table[0])
	if columns == nil && isAccountInfoTable(table) {
		return Result{AccountInfo: parseAccountInfoTable(table)}, nil
	}

	rows := table[1:]
	discovered := columns
	if columns == nil {
		if lastColumns == nil {
			return Result{}, nil
		}
		columns = lastColumns
		rows = table
	}

	var transactions []models.Transaction
	var lastDate string

	for _, row := range rows {
		tx, ok := e.parseRow(row, columns, page)
		if !ok {
			continue
		}
		if tx.Date == "" {
			tx.Date = lastDate
		} else {
			lastDate = tx.Date
		}
		transactions = append(transactions, tx)
	}

	return Result{Transactions: transactions}, discovered
}

var balanceKeywordRe = regexp.MustCompile(`(?i)opening balance|balance brought forward|balance b/f|closing balance|balance carried forward|balance c/f`)

func (e *Extractor) parseRow(row []string, columns map[string]int, page int) (models.Transaction, bool) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.Join(strings.Fields(row[idx]), " ")
	}

	dateRaw := cell(ColTransactionDate)
	if dateRaw == "" {
		dateRaw = cell(ColValueDate)
	}
	description := cell(ColDescription)

	date, _ := normalize.NormalizeDate(dateRaw)

	debitStr := cell(ColDebit)
	creditStr := cell(ColCredit)
	balanceStr := cell(ColBalance)

	balance, hasBalance, err := normalize.ParseAmount(balanceStr, false)
	if err != nil {
		e.Logger.WithField("row", row).Debug("tier-1 row rejected: unparsable balance")
		return models.Transaction{}, false
	}

	var amount decimal.Decimal
	var txType models.TransactionType
	var gotAmount bool

	if debit, ok, err := normalize.ParseAmount(debitStr, false); err == nil && ok {
		amount, txType, gotAmount = debit, models.Debit, true
	} else if credit, ok, err := normalize.ParseAmount(creditStr, false); err == nil && ok {
		amount, txType, gotAmount = credit, models.Credit, true
	}

	if !gotAmount && !hasBalance {
		return models.Transaction{}, false
	}

	if balanceKeywordRe.MatchString(description) {
		if strings.Contains(strings.ToLower(description), "opening") || strings.Contains(strings.ToLower(description), "brought forward") {
			txType = models.OpeningBalance
		} else {
			txType = models.ClosingBalance
		}
	}

	tx := models.Transaction{
		Date:            date,
		Description:     description,
		TransactionType: txType,
		Amount:          amount,
		Reference:       cell(ColReference),
		PageNumber:      page,
	}
	if hasBalance {
		tx.Balance = &balance
	}
	if cheque := cell(ColCheque); cheque != "" {
		tx.IsCheque = true
		tx.Reference = cheque
	}

	return tx, true
}
