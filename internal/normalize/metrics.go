package normalize

import (
	"github.com/shopspring/decimal"

	"ledgerlens/extractcore/internal/models"
)

// ComputeMetrics implements §4.F.6: a single pass over the normalized
// ledger producing the full StatementMetrics record, plus a per_currency
// breakdown when more than one currency is present. This walks the same
// running balance sequence the chain validator does, so both stay derived
// from one reading of the ledger.
func ComputeMetrics(transactions []models.Transaction) models.StatementMetrics {
	currencies := map[string]bool{}
	for _, tx := range transactions {
		if tx.Currency != "" {
			currencies[tx.Currency] = true
		}
	}

	overall := computeCurrencyMetrics(transactions)
	result := models.StatementMetrics{CurrencyMetrics: overall}

	if len(currencies) > 1 {
		result.PerCurrency = map[string]models.CurrencyMetrics{}
		for currency := range currencies {
			var subset []models.Transaction
			for _, tx := range transactions {
				if tx.Currency == currency {
					subset = append(subset, tx)
				}
			}
			result.PerCurrency[currency] = computeCurrencyMetrics(subset)
		}
	}

	return result
}

func computeCurrencyMetrics(transactions []models.Transaction) models.CurrencyMetrics {
	m := models.CurrencyMetrics{}

	var balances []decimal.Decimal

	for _, tx := range transactions {
		switch tx.TransactionType {
		case models.OpeningBalance:
			if tx.HasBalance() {
				m.OpeningBalance = *tx.Balance
			}
		case models.ClosingBalance:
			if tx.HasBalance() {
				m.ClosingBalance = *tx.Balance
			}
		case models.Credit:
			m.CreditCount++
			m.CreditSum = m.CreditSum.Add(tx.Amount)
			if m.CreditCount == 1 || tx.Amount.GreaterThan(m.MaxCredit) {
				m.MaxCredit = tx.Amount
			}
			if m.CreditCount == 1 || tx.Amount.LessThan(m.MinCredit) {
				m.MinCredit = tx.Amount
			}
			if tx.IsCash {
				m.CashDepositCount++
				m.CashDepositSum = m.CashDepositSum.Add(tx.Amount)
			}
		case models.Debit:
			m.DebitCount++
			m.DebitSum = m.DebitSum.Add(tx.Amount)
			if m.DebitCount == 1 || tx.Amount.GreaterThan(m.MaxDebit) {
				m.MaxDebit = tx.Amount
			}
			if m.DebitCount == 1 || tx.Amount.LessThan(m.MinDebit) {
				m.MinDebit = tx.Amount
			}
			if tx.IsCash {
				m.CashWithdrawalCount++
				m.CashWithdrawalSum = m.CashWithdrawalSum.Add(tx.Amount)
			}
			if tx.IsCheque {
				m.ChequeWithdrawalCount++
				m.ChequeWithdrawalSum = m.ChequeWithdrawalSum.Add(tx.Amount)
			}
		}

		if tx.Category == CategoryFeesCharges {
			m.TotalFeesCharged = m.TotalFeesCharged.Add(tx.Amount)
		}

		if tx.HasBalance() {
			balances = append(balances, *tx.Balance)
		}
	}

	if m.CreditCount > 0 {
		m.AvgCredit = m.CreditSum.Div(decimal.NewFromInt(int64(m.CreditCount)))
	}
	if m.DebitCount > 0 {
		m.AvgDebit = m.DebitSum.Div(decimal.NewFromInt(int64(m.DebitCount)))
	}

	if len(balances) > 0 {
		sum := decimal.Zero
		m.MaxBalance = balances[0]
		m.MinBalance = balances[0]
		for _, b := range balances {
			sum = sum.Add(b)
			if b.GreaterThan(m.MaxBalance) {
				m.MaxBalance = b
			}
			if b.LessThan(m.MinBalance) {
				m.MinBalance = b
			}
		}
		m.AvgBalance = sum.Div(decimal.NewFromInt(int64(len(balances))))
	}

	return m
}
