package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/perudoc/pkg/sanitizer"
)

func TestMaskTail(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		visibleChars int
		expected     string
	}{
		{"dni", "12345678", 3, "*****678"},
		{"ruc", "20100070970", 3, "********970"},
		{"ce", "AB1234567", 3, "******567"},
		{"too short to reveal", "123456", 3, "******"},
		{"empty", "", 3, ""},
		{"zero visible", "12345678", 0, "********"},
		{"negative visible", "12345678", -2, "********"},
		{"unicode", "ÑANDÚ12345", 2, "********45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.MaskTail(tt.input, tt.visibleChars))
		})
	}
}

func BenchmarkMaskTail(b *testing.B) {
	for b.Loop() {
		_ = sanitizer.MaskTail("20100070970", 3)
	}
}
