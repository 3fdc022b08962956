package tabletier

import (
	"strings"

	"ledgerlens/extractcore/internal/models"
)

// accountInfoFields maps a lowercased key-cell literal to the AccountInfo
// field it populates.
var accountInfoFields = map[string]func(*models.AccountInfo, string){
	"account holder": func(a *models.AccountInfo, v string) { a.AccountHolder = v },
	"account name":   func(a *models.AccountInfo, v string) { a.AccountHolder = v },
	"account number": func(a *models.AccountInfo, v string) { a.AccountNumber = v },
	"account no":     func(a *models.AccountInfo, v string) { a.AccountNumber = v },
	"currency":       func(a *models.AccountInfo, v string) { a.Currency = v },
	"account type":   func(a *models.AccountInfo, v string) { a.AccountType = v },
	"statement period from": func(a *models.AccountInfo, v string) { a.StatementPeriodStart = v },
	"statement period to":   func(a *models.AccountInfo, v string) { a.StatementPeriodEnd = v },
	"period from": func(a *models.AccountInfo, v string) { a.StatementPeriodStart = v },
	"period to":   func(a *models.AccountInfo, v string) { a.StatementPeriodEnd = v },
}

// parseAccountInfoTable does a structured key-value parse of a table whose
// cells contain "Account Number" or "Opening Balance" (§4.C step 2). Each
// row is treated as one or more adjacent key/value cell pairs.
func parseAccountInfoTable(table models.Table) *models.AccountInfo {
	info := &models.AccountInfo{}
	for _, row := range table {
		for i := 0; i+1 < len(row); i += 2 {
			key := canonicalHeader(row[i])
			value := strings.TrimSpace(row[i+1])
			if value == "" {
				continue
			}
			if setter, ok := accountInfoFields[key]; ok {
				setter(info, value)
			}
		}
	}
	return info
}
