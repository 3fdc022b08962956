package models

// ColumnInterval is a half-open x-coordinate span, in page units, that a
// discovered column owns. Words whose midpoint falls in [X0, X1) belong to
// this column.
type ColumnInterval struct {
	X0 float64 `json:"x0"`
	X1 float64 `json:"x1"`
}

// Contains reports whether the given x-midpoint falls inside the interval.
func (c ColumnInterval) Contains(xMid float64) bool {
	return xMid >= c.X0 && xMid < c.X1
}

// Canonical column names recognized by the word-geometry layout discovery
// (§4.D.1). They match the table-path canonical names except that the
// amount columns are withdrawal/deposit here (debit/credit on the table
// path), and counterparty exists only here.
const (
	ColTransactionDate = "transaction_date"
	ColValueDate       = "value_date"
	ColDescription     = "description"
	ColCounterparty    = "counterparty"
	ColCheque          = "cheque"
	ColReference       = "reference"
	ColWithdrawal      = "withdrawal"
	ColDeposit         = "deposit"
	ColBalance         = "balance"
)

// ColumnLayout is a per-page mapping from canonical column name to its
// x-interval, plus the vertical band the header row occupied.
type ColumnLayout struct {
	Columns map[string]ColumnInterval `json:"columns"`
	YMin    float64                   `json:"y_min"`
	YMax    float64                   `json:"y_max"`
}

// Valid reports whether the layout carries at least one amount column
// (withdrawal or deposit) and a balance column, the minimum bar set by
// §3's ColumnLayout invariant.
func (c ColumnLayout) Valid() bool {
	if c.Columns == nil {
		return false
	}
	_, hasBalance := c.Columns[ColBalance]
	_, hasWithdrawal := c.Columns[ColWithdrawal]
	_, hasDeposit := c.Columns[ColDeposit]
	return hasBalance && (hasWithdrawal || hasDeposit)
}

// ColumnAt returns the canonical column name whose interval contains xMid,
// and whether one was found. Assignment is undefined if intervals overlap,
// which the discovery algorithm never produces.
func (c ColumnLayout) ColumnAt(xMid float64) (string, bool) {
	for name, interval := range c.Columns {
		if interval.Contains(xMid) {
			return name, true
		}
	}
	return "", false
}
