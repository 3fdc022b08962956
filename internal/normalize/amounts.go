package normalize

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount implements §4.F.2: strip thousands-separator commas, treat
// parentheses as negation, treat a bare "-" as empty (the Aspire
// convention — not zero), and in word-geometry mode accept an optional
// trailing "DR" on balance-column amounts, negating the value.
//
// ok is false only for empty input and the bare-dash case (including input
// left empty once parentheses or a DR/CR suffix are removed); every other
// unparseable input returns an error so a malformed amount is never
// silently zeroed.
func ParseAmount(raw string, wordGeometryMode bool) (amount decimal.Decimal, ok bool, err error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, false, nil
	}
	if trimmed == "-" {
		return decimal.Zero, false, nil
	}

	negative := false
	if strings.HasPrefix(trimmed, "(") && strings.HasSuffix(trimmed, ")") {
		negative = true
		trimmed = strings.TrimSuffix(strings.TrimPrefix(trimmed, "("), ")")
	}

	if wordGeometryMode {
		upper := strings.ToUpper(trimmed)
		if strings.HasSuffix(upper, "DR") {
			negative = true
			trimmed = strings.TrimSpace(trimmed[:len(trimmed)-2])
		} else if strings.HasSuffix(upper, "CR") {
			trimmed = strings.TrimSpace(trimmed[:len(trimmed)-2])
		}
	}

	trimmed = strings.ReplaceAll(trimmed, ",", "")
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" {
		return decimal.Zero, false, nil
	}

	value, parseErr := decimal.NewFromString(trimmed)
	if parseErr != nil {
		return decimal.Zero, false, parseErr
	}
	if negative {
		value = value.Neg()
	}
	return value, true, nil
}
