package llmtier

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"ledgerlens/extractcore/internal/models"
	"ledgerlens/extractcore/internal/normalize"
)

// wireTransaction mirrors the JSON object shape §4.E step 5's prompt asks
// the model to emit.
type wireTransaction struct {
	Date            string   `json:"date"`
	Description     string   `json:"description"`
	Amount          float64  `json:"amount"`
	TransactionType string   `json:"transaction_type"`
	Balance         *float64 `json:"balance"`
	Channel         *string  `json:"channel"`
	Counterparty    *string  `json:"counterparty"`
	Reference       *string  `json:"reference"`
}

// stripFences removes Markdown code fences a model sometimes wraps its
// JSON in despite being told not to.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	if start := strings.Index(s, "["); start > 0 {
		if end := strings.LastIndex(s, "]"); end > start {
			s = s[start : end+1]
		}
	}
	return strings.TrimSpace(s)
}

// ParseBatchResponse decodes the model's JSON array and validates each
// element against §3's grammar and sign constraints, treating the model as
// an untrusted producer: a row failing validation is dropped, not fatal to
// the batch.
func ParseBatchResponse(raw string, page int) ([]models.Transaction, error) {
	var wire []wireTransaction
	if err := json.Unmarshal([]byte(stripFences(raw)), &wire); err != nil {
		return nil, fmt.Errorf("llmtier: decode batch response: %w", err)
	}

	var out []models.Transaction
	for _, w := range wire {
		tx, ok := toTransaction(w, page)
		if !ok {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

func toTransaction(w wireTransaction, page int) (models.Transaction, bool) {
	date, dateOK := normalize.NormalizeDate(w.Date)

	var txType models.TransactionType
	switch strings.ToLower(w.TransactionType) {
	case "credit":
		txType = models.Credit
	case "debit":
		txType = models.Debit
	case "opening_balance":
		txType = models.OpeningBalance
	case "closing_balance":
		txType = models.ClosingBalance
	default:
		return models.Transaction{}, false
	}

	if w.Amount < 0 {
		return models.Transaction{}, false
	}

	// A row with no parseable date is only kept when it carries a running
	// balance: that marks it a sub-transaction (e.g. an HSBC fee line) that
	// belongs to the preceding dated row, matching the table and
	// word-geometry tiers' contract of retaining rather than discarding
	// such rows. A dateless row with no balance is unidentifiable noise.
	if !dateOK {
		if w.Balance == nil {
			return models.Transaction{}, false
		}
		date = ""
	}

	tx := models.Transaction{
		Date:            date,
		Description:     strings.TrimSpace(w.Description),
		TransactionType: txType,
		Amount:          decimal.NewFromFloat(w.Amount),
		PageNumber:      page,
	}
	if w.Balance != nil {
		b := decimal.NewFromFloat(*w.Balance)
		tx.Balance = &b
	}
	if w.Channel != nil {
		tx.Channel = *w.Channel
	}
	if w.Counterparty != nil {
		tx.Counterparty = *w.Counterparty
	}
	if w.Reference != nil {
		tx.Reference = *w.Reference
	}
	return tx, true
}
