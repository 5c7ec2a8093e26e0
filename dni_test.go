package perudoc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/perudoc"
)

func TestValidateDNI(t *testing.T) {
	t.Parallel()

	t.Run("valid numbers", func(t *testing.T) {
		t.Parallel()

		for _, dni := range []string{"12345678", "87654321", "00000000", " 46801112 "} {
			res := perudoc.ValidateDNI(dni)
			require.True(t, res.Valid(), "DNI should be valid: %q (%s)", dni, res.Reason)
			assert.Equal(t, perudoc.DNI, res.Number.Type())
			assert.Equal(t, strings.TrimSpace(dni), res.Number.String())
			assert.Equal(t, dni, res.Input)
		}
	})

	t.Run("invalid numbers", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			input  string
			status perudoc.Status
		}{
			{"1234567", perudoc.StatusInvalidLength},
			{"123456789", perudoc.StatusInvalidLength},
			{"A2345678", perudoc.StatusInvalidCharset},
			{"abcdefgh", perudoc.StatusInvalidCharset},
			{"", perudoc.StatusInvalidFormat},
			{" ", perudoc.StatusInvalidFormat},
			{"1234-567", perudoc.StatusInvalidFormat},
		}

		for _, tt := range tests {
			res := perudoc.ValidateDNI(tt.input)
			assert.Equal(t, tt.status, res.Status, "input %q", tt.input)
			assert.True(t, res.Number.IsZero(), "input %q", tt.input)
			assert.NotEmpty(t, res.Reason, "input %q", tt.input)
		}
	})

	t.Run("any length other than eight is rejected", func(t *testing.T) {
		t.Parallel()

		for n := 0; n <= 20; n++ {
			if n == 8 {
				continue
			}
			res := perudoc.ValidateDNI(strings.Repeat("7", n))
			assert.False(t, res.Valid(), "length %d", n)
		}
	})

	t.Run("every eight-digit string is accepted", func(t *testing.T) {
		t.Parallel()

		for d := byte('0'); d <= '9'; d++ {
			dni := strings.Repeat(string(d), 4) + "1234"
			assert.True(t, perudoc.ValidateDNI(dni).Valid(), dni)
		}
	})
}

func TestDocumentNumber_Mask(t *testing.T) {
	res := perudoc.ValidateDNI("12345678")
	require.True(t, res.Valid())
	assert.Equal(t, "*****678", res.Number.Mask())
}

func TestDocumentNumber_Equal(t *testing.T) {
	a := perudoc.ValidateDNI(" 12345678").Number
	b := perudoc.ValidateDNI("12345678 ").Number
	other := perudoc.ValidateDNI("87654321").Number

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(other))
	assert.False(t, a.Equal(perudoc.DocumentNumber{}))
}
