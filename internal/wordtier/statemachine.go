package wordtier

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"ledgerlens/extractcore/internal/models"
	"ledgerlens/extractcore/internal/normalize"
)

type rowState int

const (
	stateIdle rowState = iota
	stateInTxn
	statePastClosing
)

var (
	// Matched against whitespace-stripped text, so these carry no internal
	// \s* — letting "BALANCE CARRIED FORWARD" and HSBC's concatenated
	// "BALANCECARRIEDFORWARD" match the same pattern.
	carriedForwardRe = regexp.MustCompile(`BALANCECARRIEDFORWARD|BALANCEC/?F\b`)
	broughtForwardRe = regexp.MustCompile(`BALANCEBROUGHTFORWARD|BALANCEB/?F\b`)

	// Matched against the original, space-preserved text: \b would not
	// see a boundary between "TOTAL" and an adjacent amount once spaces
	// are stripped.
	summaryRowRe = regexp.MustCompile(`(?i)\bTOTAL\b|\bEND OF STATEMENT\b|\bAS\s*AT\b`)
)

// stripSpaces collapses all whitespace, letting "BALANCE …FORWARD" match
// even when a bank emits it concatenated (e.g. BALANCEBROUGHTFORWARD).
func stripSpaces(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}

func rowText(row Row) string {
	parts := make([]string, 0, len(row.Cells))
	for _, v := range row.Cells {
		parts = append(parts, v)
	}
	return strings.Join(parts, " ")
}

func rowDescription(row Row) string {
	desc := row.Cells[models.ColDescription]
	if cp := row.Cells[models.ColCounterparty]; cp != "" {
		desc = strings.TrimSpace(desc + " " + cp)
	}
	return desc
}

// rowAmount parses whichever of the withdrawal/deposit columns is
// populated. A row is expected to carry at most one of the two. allow_dr
// (§4.D.4) applies only to the balance column, not here.
func rowAmount(row Row) (decimal.Decimal, models.TransactionType, bool) {
	if v := row.Cells[models.ColWithdrawal]; v != "" {
		if d, ok, err := normalize.ParseAmount(v, false); err == nil && ok {
			return d, models.Debit, true
		}
	}
	if v := row.Cells[models.ColDeposit]; v != "" {
		if d, ok, err := normalize.ParseAmount(v, false); err == nil && ok {
			return d, models.Credit, true
		}
	}
	return decimal.Zero, "", false
}

func rowDate(row Row) (string, bool) {
	raw := row.Cells[models.ColTransactionDate]
	if raw == "" {
		raw = row.Cells[models.ColValueDate]
	}
	if raw == "" {
		return "", false
	}
	return normalize.NormalizeDate(raw)
}

func rowBalance(row Row) (decimal.Decimal, bool) {
	v := row.Cells[models.ColBalance]
	if v == "" {
		return decimal.Zero, false
	}
	d, ok, err := normalize.ParseAmount(v, true)
	if err != nil || !ok {
		return decimal.Zero, false
	}
	return d, true
}

func balanceTx(txType models.TransactionType, balance decimal.Decimal, hasBalance bool, page, section int, currency string) models.Transaction {
	tx := models.Transaction{
		TransactionType: txType,
		PageNumber:      page,
		AccountSection:  section,
		Currency:        currency,
	}
	if hasBalance {
		b := balance
		tx.Balance = &b
		tx.Amount = balance
	}
	return tx
}

// AssembleRows implements the §4.D.3 state machine, converting a page's
// assigned rows into transactions. currency and startSection seed the
// account_section counter this page continues from; the returned int is
// the section counter to hand to the next page.
func AssembleRows(rows []Row, page int, currency string, startSection int) ([]models.Transaction, int) {
	state := stateIdle
	section := startSection
	var out []models.Transaction
	var current *models.Transaction
	var lastDate string

	flush := func() {
		if current != nil {
			out = append(out, *current)
			current = nil
		}
	}

	for _, row := range rows {
		raw := rowText(row)
		text := stripSpaces(raw)
		date, hasDate := rowDate(row)
		amount, txType, hasAmt := rowAmount(row)
		balance, hasBal := rowBalance(row)
		desc := rowDescription(row)

		switch {
		case carriedForwardRe.MatchString(text) && state != statePastClosing:
			flush()
			out = append(out, balanceTx(models.ClosingBalance, balance, hasBal, page, section, currency))
			state = statePastClosing

		case broughtForwardRe.MatchString(text):
			flush()
			if state == statePastClosing {
				section++
			}
			out = append(out, balanceTx(models.OpeningBalance, balance, hasBal, page, section, currency))
			state = stateInTxn

		case summaryRowRe.MatchString(raw):
			flush()
			state = stateIdle

		case hasDate && hasAmt && state != statePastClosing:
			flush()
			lastDate = date
			tx := models.Transaction{
				Date: date, Description: desc, TransactionType: txType, Amount: amount,
				PageNumber: page, AccountSection: section, Currency: currency,
			}
			if hasBal {
				b := balance
				tx.Balance = &b
			}
			current = &tx
			state = stateInTxn

		case hasAmt && !hasDate && state == stateInTxn && current != nil && current.HasBalance() && !current.Balance.Equal(balance) && hasBal:
			// Amount-only row whose balance differs from the running total:
			// a sub-transaction (e.g. an HSBC fee line) inheriting the last
			// dated row's date.
			flush()
			tx := models.Transaction{
				Date: lastDate, Description: desc, TransactionType: txType, Amount: amount,
				PageNumber: page, AccountSection: section, Currency: currency,
			}
			b := balance
			tx.Balance = &b
			current = &tx
			state = stateInTxn

		case hasAmt && !hasDate:
			if state == stateInTxn && current != nil {
				if current.Amount.IsZero() {
					current.Amount = amount
					current.TransactionType = txType
				}
				if hasBal && !current.HasBalance() {
					b := balance
					current.Balance = &b
				}
			}

		case hasBal && !hasDate && desc == "":
			// Balance-only row: supplies the current transaction's missing
			// running balance.
			if state == stateInTxn && current != nil && !current.HasBalance() {
				b := balance
				current.Balance = &b
			}

		default:
			if state == stateInTxn && current != nil && desc != "" {
				current.Description = strings.TrimSpace(current.Description + " " + desc)
			}
		}
	}

	flush()
	return out, section
}
