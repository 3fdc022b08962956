package normalize

import (
	"regexp"
	"strings"

	"ledgerlens/extractcore/internal/models"
)

// channels is the fixed vocabulary §4.E step 5 draws from, checked in
// order so a longer literal like "DEBIT PURCHASE" wins over a shorter
// unrelated substring.
var channels = []string{
	"FAST", "GIRO", "ATM", "DEBIT PURCHASE", "CHEQUE", "NETS", "PayNow",
	"PAYMENT/TRANSFER", "REMITTANCE",
}

var referenceCodeRe = regexp.MustCompile(`\b[A-Z0-9]{6,}\b`)

// DetectChannel matches the fixed channel vocabulary against a
// description, case-insensitively, grounded on the original agent's
// _detect_channel.
func DetectChannel(description string) string {
	upper := strings.ToUpper(description)
	for _, ch := range channels {
		if strings.Contains(upper, strings.ToUpper(ch)) {
			return ch
		}
	}
	return ""
}

// ExtractCounterparty strips the detected channel keyword and any
// alphanumeric reference codes from a description, leaving the residual
// text as the likely counterparty name, grounded on the original agent's
// _extract_counterparty.
func ExtractCounterparty(description, channel string) string {
	result := description
	if channel != "" {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(channel))
		result = re.ReplaceAllString(result, "")
	}
	result = referenceCodeRe.ReplaceAllString(result, "")
	result = strings.Join(strings.Fields(result), " ")
	return strings.TrimSpace(result)
}

// Enrich populates Channel, Counterparty, Category, IsCash, and IsCheque
// on every transaction in a single pass, per §4.F.5.
func Enrich(transactions []models.Transaction) {
	for i := range transactions {
		tx := &transactions[i]
		tx.Channel = DetectChannel(tx.Description)
		tx.Counterparty = ExtractCounterparty(tx.Description, tx.Channel)
		tx.Category = Categorize(tx.Description)
		tx.IsCash = IsCashTransaction(tx.Description)
		tx.IsCheque = IsChequeTransaction(tx.Description)
	}
}
