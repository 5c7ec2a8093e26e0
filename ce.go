package perudoc

import "fmt"

// Default CE length bounds, inclusive.
const (
	DefaultCEMinLength = 9
	DefaultCEMaxLength = 12
)

// validateAlnum checks a document with no checksum: canonical length within
// [minLen, maxLen] and only digits and upper-case letters.
// CE and the supplementary catalog types go through here.
func validateAlnum(t DocumentType, raw string, minLen, maxLen int) Result {
	s, reason := normalize(raw)
	if reason != "" {
		return invalid(t, raw, StatusInvalidFormat, reason)
	}
	if len(s) < minLen || len(s) > maxLen {
		return invalid(t, raw, StatusInvalidLength, lengthReason(len(s), minLen, maxLen))
	}
	if !allUpperAlnum(s) {
		return invalid(t, raw, StatusInvalidCharset, "must contain only digits and letters")
	}
	return valid(t, raw, s)
}

func lengthReason(got, minLen, maxLen int) string {
	if minLen == maxLen {
		return fmt.Sprintf("length %d, want %d", got, minLen)
	}
	return fmt.Sprintf("length %d, want %d-%d", got, minLen, maxLen)
}
