package perudoc

import (
	"fmt"
	"unicode/utf8"

	"github.com/dmitrymomot/perudoc/pkg/sanitizer"
)

// Normalize trims surrounding whitespace, rejects empty input and anything
// outside [0-9A-Za-z], and upper-cases letters. Errors wrap ErrInvalidFormat.
func Normalize(raw string) (string, error) {
	s, reason := normalize(raw)
	if reason != "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidFormat, reason)
	}
	return s, nil
}

// normalize returns the canonical form, or a non-empty rejection reason.
func normalize(raw string) (string, string) {
	s := sanitizer.Trim(raw)
	if s == "" {
		return "", "empty input"
	}
	for i, r := range s {
		if r >= utf8.RuneSelf || !isAlnum(byte(r)) {
			return "", fmt.Sprintf("disallowed character %q at offset %d", r, i)
		}
	}
	return sanitizer.ToUpper(s), ""
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

// allUpperAlnum expects canonical input, so lower-case letters fail.
func allUpperAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isDigit(c) && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
