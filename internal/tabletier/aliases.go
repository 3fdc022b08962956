package tabletier

// Canonical column names on the table path (§6's table-path canonical map).
const (
	ColTransactionDate = "transaction_date"
	ColValueDate       = "value_date"
	ColDescription     = "description"
	ColDebit           = "debit"
	ColCredit          = "credit"
	ColBalance         = "balance"
	ColCheque          = "cheque"
	ColReference       = "reference"
)

// aliasMap is the bit-exact table-path canonical map from §6. Every key is
// already lowercase with whitespace collapsed, matching how canonicalHeader
// prepares a raw header cell before lookup.
var aliasMap = map[string]string{
	"date":               ColTransactionDate,
	"txn date":           ColTransactionDate,
	"trans date":         ColTransactionDate,
	"transaction date":   ColTransactionDate,
	"posting date":       ColTransactionDate,
	"value date":         ColValueDate,
	"effective date":     ColValueDate,
	"description":        ColDescription,
	"particulars":        ColDescription,
	"details":            ColDescription,
	"narrative":          ColDescription,
	"remarks":            ColDescription,
	"transaction details": ColDescription,
	"debit":               ColDebit,
	"withdrawal":          ColDebit,
	"withdrawals":         ColDebit,
	"dr":                  ColDebit,
	"debit amount":        ColDebit,
	"payments":            ColDebit,
	"credit":              ColCredit,
	"deposit":             ColCredit,
	"deposits":            ColCredit,
	"cr":                  ColCredit,
	"credit amount":       ColCredit,
	"receipts":            ColCredit,
	"balance":             ColBalance,
	"running balance":     ColBalance,
	"closing balance":     ColBalance,
	"available balance":   ColBalance,
	"ledger balance":      ColBalance,
	"cheque":              ColCheque,
	"chq":                 ColCheque,
	"cheque no":           ColCheque,
	"reference":           ColReference,
	"ref":                 ColReference,
	"ref no":              ColReference,
}

// Note: "value date" maps to ColTransactionDate in the transaction_date
// alias set per §6 ("transaction_date ← {..., value date}") AND to
// ColValueDate in its own set ("value_date ← {value date, ...}"). The
// table path only ever needs one canonical name per header cell, so on
// this ambiguous literal it resolves to the more specific ColValueDate;
// a table with no other date column falls back to treating value_date as
// the transaction date in parseRow.
func init() {
	aliasMap["value date"] = ColValueDate
}
