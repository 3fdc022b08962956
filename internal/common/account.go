// Package common holds small pieces of behavior shared by the extraction
// CLI's batch and single-file commands: mapping a statement filename to an
// account identifier, and writing the normalized ledger out as CSV.
package common

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// AccountIdentifier is an extracted account identifier plus how it was
// derived, so a batch summary can tell an operator whether grouping came
// from a reliable filename convention or a best-effort fallback.
type AccountIdentifier struct {
	ID     string
	Source string // "filename" or "default"
}

// statementFilenamePattern matches this codebase's own operator convention
// for naming exported statements: {ACCOUNT}_{start date}_{end date}.pdf,
// e.g. "1234567890_2024-01-01_2024-01-31.pdf" — generalized from the
// deleted CAMT filename convention's {account}_{start}_{end}_{seq} shape.
// A trailing numeric sequence suffix before ".pdf" is still accepted and
// ignored.
var statementFilenamePattern = regexp.MustCompile(`^([A-Za-z0-9]+)_(\d{4}-\d{2}-\d{2})_(\d{4}-\d{2}-\d{2})(?:_\d+)?\.pdf$`)

// ExtractAccountFromFilename derives an account identifier from a
// statement's filename. Statements that don't follow the naming
// convention fall back to their sanitized base filename, so batch
// processing never fails outright on an unrecognized name.
func ExtractAccountFromFilename(filename string) AccountIdentifier {
	baseName := filepath.Base(filename)

	if matches := statementFilenamePattern.FindStringSubmatch(baseName); len(matches) >= 2 {
		return AccountIdentifier{ID: matches[1], Source: "filename"}
	}

	baseWithoutExt := strings.TrimSuffix(baseName, filepath.Ext(baseName))
	return AccountIdentifier{ID: SanitizeAccountID(baseWithoutExt), Source: "default"}
}

// ExtractDateRangeFromFilename recovers the statement period encoded in a
// conforming filename. ok is false for names that don't follow the
// convention; no other source of statement dates is consulted, so such a
// file contributes no dates to its group's range.
func ExtractDateRangeFromFilename(filename string) (start, end time.Time, ok bool) {
	baseName := filepath.Base(filename)
	matches := statementFilenamePattern.FindStringSubmatch(baseName)
	if len(matches) < 4 {
		return time.Time{}, time.Time{}, false
	}

	start, errStart := time.Parse("2006-01-02", matches[2])
	end, errEnd := time.Parse("2006-01-02", matches[3])
	if errStart != nil || errEnd != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// SanitizeAccountID makes an account identifier safe to use as (part of)
// a filesystem path: alphanumerics, underscore, hyphen and dot survive,
// everything else collapses to an underscore, and path-traversal
// sequences are neutralized.
func SanitizeAccountID(accountID string) string {
	sanitized := strings.TrimSpace(accountID)
	sanitized = strings.ReplaceAll(sanitized, " ", "_")

	var result strings.Builder
	for _, r := range sanitized {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
			result.WriteRune(r)
		default:
			result.WriteRune('_')
		}
	}
	sanitized = result.String()

	for strings.Contains(sanitized, "..") {
		sanitized = strings.ReplaceAll(sanitized, "..", "_")
	}
	for strings.Contains(sanitized, "__") {
		sanitized = strings.ReplaceAll(sanitized, "__", "_")
	}
	sanitized = strings.Trim(sanitized, "_.")

	if sanitized == "" {
		sanitized = "UNKNOWN"
	}
	return sanitized
}
