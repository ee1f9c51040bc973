package auth

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeUsername canonicalizes a username for storage and comparison:
// NFKC normalization (inhibits visually-deceptive identifiers, see
// unicode.org/reports/tr36) followed by lowercasing and whitespace trim.
// Registration stores the normalized form and the gate compares path
// segments against it, so the two can never disagree on equivalence.
func NormalizeUsername(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}
