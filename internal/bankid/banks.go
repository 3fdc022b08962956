// Package bankid identifies the issuing bank of a statement PDF and
// carries the per-bank data (keywords, product names, noise patterns) that
// the rest of the pipeline conditions on.
package bankid

import "regexp"

// KnownBanks is the closed set §4.B ever returns.
var KnownBanks = []string{
	"OCBC", "DBS", "POSB", "UOB", "Standard Chartered", "HSBC", "Citibank",
	"Maybank", "CIMB", "Bank of China", "ICBC", "GXS", "Trust", "MariBank",
	"Revolut", "Wise", "Aspire", "Airwallex/ANEXT",
}

// BankIdentifiers maps a bank keyword to the bank name it identifies. Short
// names are matched with word-boundary anchoring (see keywordPattern)
// to prevent partial collisions such as "OCBC" matching inside "OCBCish".
var BankIdentifiers = map[string]string{
	"OCBC":                "OCBC",
	"DBS":                 "DBS",
	"POSB":                "POSB",
	"UOB":                 "UOB",
	"STANDARD CHARTERED":  "Standard Chartered",
	"HSBC":                "HSBC",
	"CITIBANK":            "Citibank",
	"CITI":                "Citibank",
	"MAYBANK":             "Maybank",
	"CIMB":                "CIMB",
	"BANK OF CHINA":       "Bank of China",
	"ICBC":                "ICBC",
	"GXS BANK":            "GXS",
	"GXS":                 "GXS",
	"TRUST BANK":          "Trust",
	"MARIBANK":            "MariBank",
	"REVOLUT":             "Revolut",
	"WISE":                "Wise",
	"ASPIRE":              "Aspire",
	"AIRWALLEX":           "Airwallex/ANEXT",
	"ANEXT BANK":          "Airwallex/ANEXT",
	"ANEXT":               "Airwallex/ANEXT",
}

// BankProductIdentifiers maps a literal product-line name to the bank that
// sells it. These are treated as high-confidence matches since product
// names rarely collide across issuers.
var BankProductIdentifiers = map[string]string{
	"AUTOSAVE ACCOUNT":         "DBS",
	"MULTIPLIER ACCOUNT":       "DBS",
	"POSB EVERYDAY ACCOUNT":    "POSB",
	"POSB SAVE AS YOU EARN":    "POSB",
	"360 ACCOUNT":              "OCBC",
	"FRANK ACCOUNT":            "OCBC",
	"ONE ACCOUNT":              "UOB",
	"UOB STASH ACCOUNT":        "UOB",
	"UNIPLUS":                  "UOB",
	"GLOBAL SAVINGS ACCOUNT":   "HSBC",
	"HSBC EVERYDAY GLOBAL":     "HSBC",
	"BONUSSAVER":               "Standard Chartered",
	"JUMPSTART":                "Standard Chartered",
	"CITIGOLD ACCOUNT":         "Citibank",
	"CITI PRIORITY":            "Citibank",
	"MAYBANK SAVE UP PROGRAMME": "Maybank",
	"CIMB FASTSAVER":           "CIMB",
	"GXS SAVINGS ACCOUNT":      "GXS",
	"TRUST SAVINGS ACCOUNT":    "Trust",
	"MARIBANK SAVINGS ACCOUNT": "MariBank",
	"BUSINESS ACCOUNT":         "Aspire",
	"MULTI-CURRENCY ACCOUNT":   "Airwallex/ANEXT",
}

// BankNoisePatterns are compiled per-bank regex sets §4.E uses to strip
// boilerplate (page numbers, regulatory disclaimers, issuer footers)
// before batching pages for the language model.
var BankNoisePatterns = map[string][]*regexp.Regexp{
	"OCBC": {
		regexp.MustCompile(`(?i)oversea-chinese banking corporation`),
		regexp.MustCompile(`(?i)member of sdic`),
		regexp.MustCompile(`(?i)page \d+ of \d+`),
	},
	"DBS": {
		regexp.MustCompile(`(?i)dbs bank ltd\.?`),
		regexp.MustCompile(`(?i)co\. reg\. no\.?\s*\S+`),
		regexp.MustCompile(`(?i)page \d+ of \d+`),
		regexp.MustCompile(`(?i)printed by\s*:.*`),
		regexp.MustCompile(`(?i)printed on\s*:.*`),
		regexp.MustCompile(`(?i)deposit insurance scheme.*`),
		regexp.MustCompile(`(?i)transactions performed on a non-working day.*`),
		regexp.MustCompile(`(?i)if date requested is a non[- ]business day.*`),
	},
	"POSB": {
		regexp.MustCompile(`(?i)posb is a member of the dbs group`),
		regexp.MustCompile(`(?i)page \d+ of \d+`),
	},
	"UOB": {
		regexp.MustCompile(`(?i)united overseas bank limited`),
		regexp.MustCompile(`(?i)page \d+ of \d+`),
	},
	"HSBC": {
		regexp.MustCompile(`(?i)hsbc bank \(singapore\) limited`),
		regexp.MustCompile(`(?i)issued by the hongkong and shanghai banking corporation`),
		regexp.MustCompile(`(?i)page \d+ of \d+`),
	},
	"Citibank": {
		regexp.MustCompile(`(?i)citibank singapore ltd\.?`),
		regexp.MustCompile(`(?i)page \d+ of \d+`),
	},
	"Standard Chartered": {
		regexp.MustCompile(`(?i)standard chartered bank \(singapore\) limited`),
		regexp.MustCompile(`(?i)page \d+ of \d+`),
	},
	"Aspire": {
		regexp.MustCompile(`(?i)aspire fintech pte\. ltd\.?`),
		regexp.MustCompile(`(?i)page \d+ of \d+`),
	},
	"Airwallex/ANEXT": {
		regexp.MustCompile(`(?i)anext bank pte\. ltd\.?`),
		regexp.MustCompile(`(?i)airwallex pte\. ltd\.?`),
		regexp.MustCompile(`(?i)page \d+ of \d+`),
	},
	"Revolut": {
		regexp.MustCompile(`(?i)revolut payments uab`),
		regexp.MustCompile(`(?i)page \d+ of \d+`),
	},
	"Wise": {
		regexp.MustCompile(`(?i)wise (asia-pacific|payments) pte\. ltd\.?`),
		regexp.MustCompile(`(?i)page \d+ of \d+`),
	},
	"GXS": {
		regexp.MustCompile(`(?i)gxs bank pte\. ltd\.?`),
		regexp.MustCompile(`(?i)page \d+ of \d+`),
	},
	"Trust": {
		regexp.MustCompile(`(?i)trust bank singapore limited`),
		regexp.MustCompile(`(?i)page \d+ of \d+`),
	},
	"MariBank": {
		regexp.MustCompile(`(?i)maribank singapore pte\. ltd\.?`),
		regexp.MustCompile(`(?i)page \d+ of \d+`),
	},
	"Maybank": {
		regexp.MustCompile(`(?i)malayan banking berhad`),
		regexp.MustCompile(`(?i)page \d+ of \d+`),
	},
	"CIMB": {
		regexp.MustCompile(`(?i)cimb bank berhad`),
		regexp.MustCompile(`(?i)page \d+ of \d+`),
	},
	"Bank of China": {
		regexp.MustCompile(`(?i)bank of china limited`),
		regexp.MustCompile(`(?i)page \d+ of \d+`),
	},
	"ICBC": {
		regexp.MustCompile(`(?i)industrial and commercial bank of china`),
		regexp.MustCompile(`(?i)page \d+ of \d+`),
	},
}

// NoisePatternsFor returns the compiled noise patterns for a bank, or a
// generic page-number pattern for unknown/unlisted banks.
func NoisePatternsFor(bank string) []*regexp.Regexp {
	if patterns, ok := BankNoisePatterns[bank]; ok {
		return patterns
	}
	return []*regexp.Regexp{regexp.MustCompile(`(?i)page \d+ of \d+`)}
}
