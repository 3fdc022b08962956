package models

// AccountInfo describes the statement header: who owns the account and
// which period the statement covers. Every field is optional except
// Bank, since the caller always knows at least the identified bank by the
// time an AccountInfo is constructed.
type AccountInfo struct {
	AccountHolder        string `json:"account_holder,omitempty" yaml:"account_holder,omitempty"`
	Bank                 string `json:"bank" yaml:"bank"`
	AccountNumber        string `json:"account_number,omitempty" yaml:"account_number,omitempty"`
	Currency             string `json:"currency,omitempty" yaml:"currency,omitempty"`
	StatementPeriodStart string `json:"statement_period_start,omitempty" yaml:"statement_period_start,omitempty"`
	StatementPeriodEnd   string `json:"statement_period_end,omitempty" yaml:"statement_period_end,omitempty"`
	AccountType          string `json:"account_type,omitempty" yaml:"account_type,omitempty"`
}

// DetectionSource names which stage of the Bank Identifier cascade
// produced a BankLayout.
type DetectionSource string

const (
	DetectionVision   DetectionSource = "vision"
	DetectionProduct  DetectionSource = "product"
	DetectionKeyword  DetectionSource = "keyword"
	DetectionUnknown  DetectionSource = "unknown"
)

// BankLayout is the output of the Bank Identifier: the detected
// institution, how confident the cascade was, and which step produced it.
type BankLayout struct {
	Bank       string          `json:"bank"`
	Confidence float64         `json:"confidence"`
	Source     DetectionSource `json:"source"`
}

// Known returns whether identification succeeded.
func (b BankLayout) Known() bool {
	return b.Bank != "" && b.Bank != "unknown"
}
