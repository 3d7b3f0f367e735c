// Package validation holds the field predicates applied to account input.
// They are pure and total: any string is accepted as input and no
// normalisation (case folding, trimming, Unicode mapping) is performed.
package validation

import (
	"regexp"
	"unicode/utf8"
)

const minPasswordLength = 8

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	fullNamePattern = regexp.MustCompile(`^[A-Za-z\s]+$`)
)

// IsValidEmail reports whether s has the rough local@domain.tld shape.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidFullName reports whether s is made only of ASCII letters and whitespace.
func IsValidFullName(s string) bool {
	return fullNamePattern.MatchString(s)
}

// IsStrongPassword requires at least eight characters including a lowercase
// letter, an uppercase letter, a digit and a symbol (anything outside
// [A-Za-z0-9_]).
func IsStrongPassword(s string) bool {
	if utf8.RuneCountInString(s) < minPasswordLength {
		return false
	}

	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case r == '_':
		default:
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}
