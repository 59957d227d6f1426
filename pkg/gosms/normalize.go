package gosms

import "strings"

// countryCode is the Bangladesh prefix expected by the gateway.
const countryCode = "88"

// minBulkDigits is the shortest cleaned number the bulk path accepts.
const minBulkDigits = 10

// CleanNumber strips every non-digit rune from raw.
func CleanNumber(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeNumber converts a number to the international form the gateway
// expects: a local number keeps its trunk zero under the 88 prefix
// (01712345678 -> 8801712345678), anything else gets the prefix unless it
// already carries it. Applying it twice yields the same string.
//
// This lenient variant has no minimum-length check and is used by the
// single-send path only; bulk sends go through NormalizeBulkNumber.
func NormalizeNumber(raw string) string {
	n := CleanNumber(raw)
	if n == "" {
		return ""
	}
	if strings.HasPrefix(n, "0") {
		return countryCode + n
	}
	if !strings.HasPrefix(n, countryCode) {
		return countryCode + n
	}
	return n
}

// NormalizeBulkNumber is the strict variant used for bulk recipient lists:
// numbers cleaning to fewer than 10 digits are reported invalid.
func NormalizeBulkNumber(raw string) (string, bool) {
	n := CleanNumber(raw)
	if len(n) < minBulkDigits {
		return "", false
	}
	return NormalizeNumber(n), true
}
