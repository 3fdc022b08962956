package wordtier

import "ledgerlens/extractcore/internal/models"

// wordAliasMap is the word-geometry alias map of §6: a superset of the
// table-path canonical map (§4.C/§6) adding the geometry-only synonyms
// named there.
var wordAliasMap = map[string]string{
	"date":                 models.ColTransactionDate,
	"txn date":             models.ColTransactionDate,
	"trans date":           models.ColTransactionDate,
	"transaction date":     models.ColTransactionDate,
	"posting date":         models.ColTransactionDate,
	"date & time":          models.ColTransactionDate,
	"date and time":        models.ColTransactionDate,
	"transaction":          models.ColTransactionDate,
	"trans":                models.ColTransactionDate,
	"value date":           models.ColValueDate,
	"effective date":       models.ColValueDate,
	"description":          models.ColDescription,
	"particulars":          models.ColDescription,
	"details":              models.ColDescription,
	"narrative":            models.ColDescription,
	"remarks":              models.ColDescription,
	"transaction details":  models.ColDescription,
	"payee":                models.ColCounterparty,
	"beneficiary":          models.ColCounterparty,
	"sender":               models.ColCounterparty,
	"debit":                models.ColWithdrawal,
	"withdrawal":           models.ColWithdrawal,
	"withdrawals":          models.ColWithdrawal,
	"withdrawal amount":    models.ColWithdrawal,
	"dr":                   models.ColWithdrawal,
	"debit amount":         models.ColWithdrawal,
	"payments":             models.ColWithdrawal,
	"credit":               models.ColDeposit,
	"deposit":              models.ColDeposit,
	"deposits":             models.ColDeposit,
	"deposit amount":       models.ColDeposit,
	"cr":                   models.ColDeposit,
	"credit amount":        models.ColDeposit,
	"receipts":             models.ColDeposit,
	"balance":              models.ColBalance,
	"running balance":      models.ColBalance,
	"closing balance":      models.ColBalance,
	"available balance":    models.ColBalance,
	"ledger balance":       models.ColBalance,
	"cheque":               models.ColCheque,
	"chq":                  models.ColCheque,
	"cheque no":            models.ColCheque,
	"reference":            models.ColReference,
	"ref":                  models.ColReference,
	"ref no":               models.ColReference,
}

// amountColumns and balanceColumns identify which canonical names count as
// "an amount alias" and "a balance alias" for header-candidate scoring
// (§4.D.1 step 3: a header is valid only if it has >=1 amount alias AND a
// balance alias).
var amountColumns = map[string]bool{
	models.ColWithdrawal: true,
	models.ColDeposit:    true,
}

var balanceColumns = map[string]bool{
	models.ColBalance: true,
}
