package sanitizer

import "strings"

// MaskTail keeps only the last visibleChars characters, the usual way of
// showing identity and tax numbers ("*****678"). Strings no longer than
// visibleChars*2 are masked completely so short inputs are never revealed.
func MaskTail(s string, visibleChars int) string {
	if visibleChars < 0 {
		visibleChars = 0
	}

	runes := []rune(s)
	length := len(runes)

	if length <= visibleChars*2 {
		return strings.Repeat("*", length)
	}

	return strings.Repeat("*", length-visibleChars) + string(runes[length-visibleChars:])
}
