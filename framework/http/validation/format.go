package validation

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^[+]?[1-9]\d{0,15}$`)
	plateRegex = regexp.MustCompile(`^[A-Z]{3}-\d{3,4}$`)

	// Separators a user may type inside a phone number. Dots are not included.
	phoneSeparators = regexp.MustCompile(`[\s()\-]`)
)

// IsValidEmail reports whether s looks like local@domain.tld.
// No further RFC 5322 rules are applied.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidPhone reports whether s is an international-style phone number:
// an optional leading '+', a non-zero first digit and at most 16 digits.
// Whitespace, parentheses and hyphens are ignored.
func IsValidPhone(s string) bool {
	return phoneRegex.MatchString(phoneSeparators.ReplaceAllString(s, ""))
}

// IsValidLicensePlate reports whether s is three letters, a hyphen and three or
// four digits, ignoring letter case. e.g. "abc-123", "XYZ-9876"
func IsValidLicensePlate(s string) bool {
	// Casers hold state, so one is built per call.
	return plateRegex.MatchString(cases.Upper(language.Und).String(s))
}
