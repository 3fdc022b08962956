package normalize

import (
	"regexp"
	"strings"
	"time"
)

// dateGrammars holds four of the five input layouts §4.F.1 accepts, tried
// in order. The fifth, the no-separator DDMMMYYYY form, is matched by
// noSeparatorRe and then parsed with its own layout; input already in the
// year-free canonical DD MMM form is matched by canonicalRe.
var dateGrammars = []string{
	"02-Jan-2006",
	"02 Jan 2006",
	"02/01/2006",
	"02/01/06",
}

var noSeparatorRe = regexp.MustCompile(`^(\d{2})([A-Za-z]{3})(\d{4})$`)
var canonicalRe = regexp.MustCompile(`^(\d{2}) ([A-Za-z]{3})$`)

// NormalizeDate accepts any of the five input grammars named in §4.F.1 and
// always emits "DD MMM" with an uppercase month and a zero-padded day. It returns
// false when the input matches none of them; the caller keeps the row
// only if some other field identifies it as a sub-transaction.
func NormalizeDate(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", false
	}

	if m := canonicalRe.FindStringSubmatch(trimmed); m != nil {
		return m[1] + " " + strings.ToUpper(m[2]), true
	}

	if m := noSeparatorRe.FindStringSubmatch(trimmed); m != nil {
		if t, err := time.Parse("02Jan2006", m[1]+capitalize(m[2])+m[3]); err == nil {
			return canonicalize(t), true
		}
		return "", false
	}

	for _, layout := range dateGrammars {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return canonicalize(t), true
		}
	}

	return "", false
}

func canonicalize(t time.Time) string {
	return strings.ToUpper(t.Format("02 Jan"))
}

func capitalize(month string) string {
	if len(month) == 0 {
		return month
	}
	return strings.ToUpper(month[:1]) + strings.ToLower(month[1:])
}
