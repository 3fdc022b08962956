// Package models defines the data types that flow through the extraction
// pipeline: transactions, account metadata, layout discovery results, and
// the validation/accuracy reports the Normalizer produces.
package models

import (
	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger row.
type TransactionType string

const (
	Credit          TransactionType = "credit"
	Debit           TransactionType = "debit"
	OpeningBalance  TransactionType = "opening_balance"
	ClosingBalance  TransactionType = "closing_balance"
)

// Transaction is the central entity produced by every extraction tier and
// consumed by the Normalizer. Balance is a pointer because a PDF may omit
// the running balance on a given row; every other field defaults to its
// zero value when the source document does not carry it.
type Transaction struct {
	Date            string          `json:"date" csv:"date"`
	Description     string          `json:"description" csv:"description"`
	TransactionType TransactionType `json:"transaction_type" csv:"transaction_type"`
	Amount          decimal.Decimal `json:"amount" csv:"amount"`
	Balance         *decimal.Decimal `json:"balance,omitempty" csv:"balance"`
	Reference       string          `json:"reference,omitempty" csv:"reference"`
	Counterparty    string          `json:"counterparty,omitempty" csv:"counterparty"`
	Channel         string          `json:"channel,omitempty" csv:"channel"`
	Category        string          `json:"category,omitempty" csv:"category"`
	IsCash          bool            `json:"is_cash" csv:"is_cash"`
	IsCheque        bool            `json:"is_cheque" csv:"is_cheque"`
	PageNumber      int             `json:"page_number" csv:"page_number"`
	Currency        string          `json:"currency" csv:"currency"`
	AccountSection  int             `json:"account_section" csv:"account_section"`
}

// SignedAmount returns Amount with the sign implied by TransactionType:
// debits are negated; credits, opening balances and closing balances are
// returned unchanged.
func (t Transaction) SignedAmount() decimal.Decimal {
	switch t.TransactionType {
	case Debit:
		return t.Amount.Neg()
	default:
		return t.Amount
	}
}

// HasBalance reports whether the row carries a running balance.
func (t Transaction) HasBalance() bool {
	return t.Balance != nil
}

// IsSubTransaction reports whether the row has no date of its own and must
// inherit one from the preceding dated row (chiefly HSBC sub-lines).
func (t Transaction) IsSubTransaction() bool {
	return t.Date == ""
}
