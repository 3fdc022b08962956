package models

import "github.com/shopspring/decimal"

// CurrencyMetrics is the statistic set computed over a single currency's
// ledger. StatementMetrics embeds one for the whole statement and, when
// more than one currency is present, keys an additional one per currency.
type CurrencyMetrics struct {
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	MaxBalance     decimal.Decimal `json:"max_balance"`
	MinBalance     decimal.Decimal `json:"min_balance"`
	AvgBalance     decimal.Decimal `json:"avg_balance"`

	CreditCount int             `json:"credit_count"`
	CreditSum   decimal.Decimal `json:"credit_sum"`
	AvgCredit   decimal.Decimal `json:"avg_credit"`
	MaxCredit   decimal.Decimal `json:"max_credit"`
	MinCredit   decimal.Decimal `json:"min_credit"`

	DebitCount int             `json:"debit_count"`
	DebitSum   decimal.Decimal `json:"debit_sum"`
	AvgDebit   decimal.Decimal `json:"avg_debit"`
	MaxDebit   decimal.Decimal `json:"max_debit"`
	MinDebit   decimal.Decimal `json:"min_debit"`

	CashDepositCount    int             `json:"cash_deposit_count"`
	CashDepositSum      decimal.Decimal `json:"cash_deposit_sum"`
	CashWithdrawalCount int             `json:"cash_withdrawal_count"`
	CashWithdrawalSum   decimal.Decimal `json:"cash_withdrawal_sum"`

	ChequeWithdrawalCount int             `json:"cheque_withdrawal_count"`
	ChequeWithdrawalSum   decimal.Decimal `json:"cheque_withdrawal_sum"`

	TotalFeesCharged decimal.Decimal `json:"total_fees_charged"`
}

// StatementMetrics is the full metrics record named in §6, computed by the
// Normalizer from the normalized ledger. PerCurrency is populated only
// when the statement carries more than one currency.
type StatementMetrics struct {
	CurrencyMetrics `json:",inline"`
	PerCurrency     map[string]CurrencyMetrics `json:"per_currency,omitempty"`
}

// ExtractionMethod names which tier ultimately produced the ledger.
type ExtractionMethod string

const (
	MethodTable  ExtractionMethod = "table"
	MethodWords  ExtractionMethod = "words"
	MethodLLM    ExtractionMethod = "llm"
	MethodLLMOCR ExtractionMethod = "llm+ocr"
)

// ExtractionResult is the single structured record the extraction core
// returns to its caller (§6).
type ExtractionResult struct {
	Bank              string            `json:"bank"`
	AccountInfo       AccountInfo       `json:"account_info"`
	Transactions      []Transaction     `json:"transactions"`
	Metrics           StatementMetrics  `json:"metrics"`
	Accuracy          AccuracyReport    `json:"accuracy"`
	BalanceChain      BalanceChainReport `json:"balance_chain"`
	ExtractionMethod  ExtractionMethod  `json:"extraction_method"`
	PagesProcessed    int               `json:"pages_processed"`
	Currencies        []string          `json:"currencies"`
}
