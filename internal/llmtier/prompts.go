package llmtier

import (
	"fmt"
	"strings"
)

// channelVocabulary is the closed set of channel values §4.E step 5
// requires the model to choose from.
var channelVocabulary = []string{
	"FAST", "GIRO", "ATM", "DEBIT PURCHASE", "CHEQUE", "NETS",
	"PayNow", "PAYMENT/TRANSFER", "REMITTANCE",
}

const extractionPromptTemplate = `You are extracting transactions from a bank statement page for %s.

Return a JSON array only, no markdown fences, no commentary. Each element is an object with exactly these fields:
- "date": string, format "DD MMM" with an uppercase three-letter month, e.g. "01 DEC"
- "description": string
- "amount": number, always positive
- "transaction_type": one of "credit", "debit", "opening_balance", "closing_balance" (use "opening_balance" for a "BALANCE B/F"-style row and "closing_balance" for a "BALANCE C/F"-style row)
- "balance": number or null if no running balance is shown
- "channel": one of %s, or null if none apply
- "counterparty": string or null
- "reference": string or null

Statement text follows:

%s`

// BuildExtractionPrompt fills the fixed §4.E step 5 prompt for one batch of
// page text.
func BuildExtractionPrompt(bank, batchText string) string {
	channels := `"` + strings.Join(channelVocabulary, `", "`) + `"`
	return fmt.Sprintf(extractionPromptTemplate, bank, channels, batchText)
}
