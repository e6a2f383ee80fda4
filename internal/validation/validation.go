package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// EmailPattern defines the accepted email shape: ASCII local part
// (letters, digits, ._%+-), domain of letters/digits/dots/hyphens,
// TLD of at least 2 letters.
var EmailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// MinPasswordLen is the minimum password length in characters
const MinPasswordLen = 6

// IsValidEmail reports whether s matches the accepted email shape.
// Callers are expected to normalize first; the pattern itself is
// case-insensitive by construction.
func IsValidEmail(s string) bool {
	return EmailPattern.MatchString(s)
}

// IsValidPassword reports whether the password is at least MinPasswordLen
// characters long. Length is counted in runes, not bytes.
func IsValidPassword(s string) bool {
	return utf8.RuneCountInString(s) >= MinPasswordLen
}

// NormalizeEmail trims surrounding whitespace and lowercases the email.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeName trims surrounding whitespace only.
func NormalizeName(s string) string {
	return strings.TrimSpace(s)
}
