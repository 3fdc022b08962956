package normalize

import "strings"

// Category names, the fixed 15-value set of §4.F.5.
const (
	CategorySalaryPayroll  = "salary_payroll"
	CategoryRent           = "rent"
	CategoryUtilities      = "utilities"
	CategoryFoodBeverage   = "food_beverage"
	CategoryTransport      = "transport"
	CategorySupplierPayment = "supplier_payment"
	CategoryRevenue        = "revenue"
	CategoryLoan           = "loan"
	CategoryTaxGovernment  = "tax_government"
	CategoryInsurance      = "insurance"
	CategoryFeesCharges    = "fees_charges"
	CategoryTransfer       = "transfer"
	CategoryPurchase       = "purchase"
	CategoryOther          = "other"
	CategoryRefund         = "refund"
)

// categoryKeywords is the keyword dictionary backing §4.F.5's category
// enrichment, following the original agent's _categorize_transaction.
// Order matters: the first matching category wins, most specific first.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{CategorySalaryPayroll, []string{"salary", "payroll", "wages", "bonus"}},
	{CategoryRent, []string{"rent", "rental", "lease payment"}},
	{CategoryUtilities, []string{"utilities", "electricity", "water bill", "sp group", "singtel", "starhub"}},
	{CategoryFoodBeverage, []string{"restaurant", "cafe", "food", "grabfood", "foodpanda", "hawker"}},
	{CategoryTransport, []string{"grab", "gojek", "comfortdelgro", "mrt", "taxi", "petrol", "parking"}},
	{CategoryTaxGovernment, []string{"iras", "cpf", "singapore customs", "tax payment"}},
	{CategoryInsurance, []string{"insurance", "premium", "aia ", "prudential", "great eastern", "ntuc income"}},
	{CategoryLoan, []string{"loan repayment", "mortgage", "instalment", "installment"}},
	{CategoryFeesCharges, []string{"service charge", "bank fee", "admin fee", "late fee", "processing fee", "gst"}},
	{CategoryRefund, []string{"refund", "reversal", "chargeback"}},
	{CategorySupplierPayment, []string{"supplier", "vendor payment", "invoice payment"}},
	{CategoryRevenue, []string{"sales revenue", "customer payment", "receipt from"}},
	{CategoryTransfer, []string{"transfer to", "transfer from", "paynow", "fund transfer"}},
	{CategoryPurchase, []string{"purchase", "payment to", "pos "}},
}

// cashKeywords and chequeKeywords back is_cash/is_cheque enrichment,
// carried unchanged in meaning from the original agent's
// _is_cash_transaction and _is_cheque_transaction.
var cashKeywords = []string{"atm", "cash deposit", "cash withdrawal", "nets cash"}
var chequeKeywords = []string{"cheque", "chq", "cheque deposit", "cheque no"}

// Categorize returns the category a description matches, or "other" when
// none of the keyword sets match.
func Categorize(description string) string {
	lower := strings.ToLower(description)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return CategoryOther
}

// IsCashTransaction reports whether a description matches any cash keyword.
func IsCashTransaction(description string) bool {
	return containsAny(strings.ToLower(description), cashKeywords)
}

// IsChequeTransaction reports whether a description matches any cheque
// keyword.
func IsChequeTransaction(description string) bool {
	return containsAny(strings.ToLower(description), chequeKeywords)
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
