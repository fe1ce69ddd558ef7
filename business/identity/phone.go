package identity

import (
	"strings"
	"unicode"
)

// PhoneDigits is the length of a national mobile number.
const PhoneDigits = 10

// Prefixes the backend may have stored a Mexican mobile number under.
var phonePrefixes = []string{"", "+52", "52", "521", "+521"}

// NormalizePhone keeps only the ASCII digits of s.
func NormalizePhone(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if r <= unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// PhoneVariants lists every stored form a bare number may take.
func PhoneVariants(digits string) []string {
	variants := make([]string, 0, len(phonePrefixes))
	for _, p := range phonePrefixes {
		variants = append(variants, p+digits)
	}

	return variants
}
