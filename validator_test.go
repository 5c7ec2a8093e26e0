package perudoc_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/perudoc"
	"github.com/dmitrymomot/perudoc/pkg/logger"
	"github.com/dmitrymomot/perudoc/pkg/validator"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		v, err := perudoc.New()
		require.NoError(t, err)
		assert.Equal(t, []string{"10", "15", "16", "17", "20"}, v.RUCPrefixes())
		minLen, maxLen := v.CELength()
		assert.Equal(t, perudoc.DefaultCEMinLength, minLen)
		assert.Equal(t, perudoc.DefaultCEMaxLength, maxLen)
	})

	t.Run("custom prefixes are deduplicated and sorted", func(t *testing.T) {
		t.Parallel()

		v, err := perudoc.New(perudoc.WithRUCPrefixes("20", "20", "10"))
		require.NoError(t, err)
		assert.Equal(t, []string{"10", "20"}, v.RUCPrefixes())

		assert.True(t, v.ValidateRUC("20100070970").Valid())
		assert.Equal(t, perudoc.StatusInvalidFormat, v.ValidateRUC("15123456782").Status)
	})

	t.Run("extra prefix is accepted", func(t *testing.T) {
		t.Parallel()

		v, err := perudoc.New(perudoc.WithRUCPrefixes("99"))
		require.NoError(t, err)
		assert.True(t, v.ValidateRUC("99100070975").Valid())
		assert.False(t, perudoc.ValidateRUC("99100070975").Valid())
	})

	t.Run("option slice is copied", func(t *testing.T) {
		t.Parallel()

		prefixes := []string{"20"}
		v, err := perudoc.New(perudoc.WithRUCPrefixes(prefixes...))
		require.NoError(t, err)
		prefixes[0] = "10"

		assert.Equal(t, []string{"20"}, v.RUCPrefixes())
		got := v.RUCPrefixes()
		got[0] = "99"
		assert.Equal(t, []string{"20"}, v.RUCPrefixes())
	})

	t.Run("custom CE bounds", func(t *testing.T) {
		t.Parallel()

		v, err := perudoc.New(perudoc.WithCELength(8, 10))
		require.NoError(t, err)
		assert.True(t, v.ValidateCE("AB123456").Valid())
		assert.Equal(t, perudoc.StatusInvalidLength, v.ValidateCE("AB12345678X").Status)
	})

	t.Run("invalid settings", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name  string
			opts  []perudoc.Option
			field string
		}{
			{"empty prefixes", []perudoc.Option{perudoc.WithRUCPrefixes()}, "ruc_prefixes"},
			{"short prefix", []perudoc.Option{perudoc.WithRUCPrefixes("2")}, "ruc_prefixes"},
			{"letter prefix", []perudoc.Option{perudoc.WithRUCPrefixes("2A")}, "ruc_prefixes"},
			{"zero min", []perudoc.Option{perudoc.WithCELength(0, 12)}, "ce_min_length"},
			{"max below min", []perudoc.Option{perudoc.WithCELength(10, 9)}, "ce_max_length"},
			{"max above catalog", []perudoc.Option{perudoc.WithCELength(9, 16)}, "ce_max_length"},
		}

		for _, tt := range tests {
			v, err := perudoc.New(tt.opts...)
			require.Error(t, err, tt.name)
			assert.Nil(t, v, tt.name)
			assert.ErrorIs(t, err, perudoc.ErrInvalidConfig, tt.name)
			assert.ErrorIs(t, err, validator.ErrValidationFailed, tt.name)

			verrs := validator.ExtractValidationErrors(err)
			require.NotNil(t, verrs, tt.name)
			assert.True(t, verrs.Has(tt.field), tt.name)
		}
	})

	t.Run("MustNew panics on invalid settings", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { perudoc.MustNew(perudoc.WithRUCPrefixes()) })
		assert.NotPanics(t, func() { perudoc.MustNew() })
	})
}

func TestValidate_UnsupportedType(t *testing.T) {
	t.Parallel()

	res := perudoc.Validate(perudoc.DocumentType("LICENSE"), "12345678")
	assert.False(t, res.Valid())
	assert.Equal(t, perudoc.StatusInvalidFormat, res.Status)
	assert.Equal(t, perudoc.ErrUnsupportedType.Error(), res.Reason)
	assert.True(t, res.Number.IsZero())

	err := res.Err()
	assert.ErrorIs(t, err, perudoc.ErrInvalidFormat)
	assert.ErrorIs(t, err, perudoc.ErrUnsupportedType)
}

func TestValidate_Dispatch(t *testing.T) {
	t.Parallel()

	assert.Equal(t, perudoc.ValidateDNI("12345678"), perudoc.Validate(perudoc.DNI, "12345678"))
	assert.Equal(t, perudoc.ValidateRUC("20100070970"), perudoc.Validate(perudoc.RUC, "20100070970"))
	assert.Equal(t, perudoc.ValidateCE("AB1234567"), perudoc.Validate(perudoc.CE, "AB1234567"))

	// Same digits, different rules per type.
	assert.False(t, perudoc.Validate(perudoc.DNI, "20100070970").Valid())
	assert.True(t, perudoc.Validate(perudoc.RUC, "20100070970").Valid())
	assert.True(t, perudoc.Validate(perudoc.CE, "20100070970").Valid())
}

func TestResult_Err(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		res      perudoc.Result
		sentinel error
	}{
		{"format", perudoc.ValidateDNI("1234-5678"), perudoc.ErrInvalidFormat},
		{"length", perudoc.ValidateDNI("1234567"), perudoc.ErrInvalidLength},
		{"charset", perudoc.ValidateRUC("2010007097A"), perudoc.ErrInvalidCharset},
		{"checksum", perudoc.ValidateRUC("20100070971"), perudoc.ErrInvalidChecksum},
		{"zero value", perudoc.Result{}, perudoc.ErrInvalidFormat},
	}

	for _, tt := range tests {
		err := tt.res.Err()
		require.Error(t, err, tt.name)
		assert.ErrorIs(t, err, tt.sentinel, tt.name)
		if tt.res.Reason != "" {
			assert.Contains(t, err.Error(), tt.res.Reason, tt.name)
		}
	}

	assert.NoError(t, perudoc.ValidateDNI("12345678").Err())
}

func TestResult_TranslationKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "validation.document.valid", perudoc.ValidateDNI("12345678").TranslationKey())
	assert.Equal(t, "validation.document.invalid_checksum", perudoc.ValidateRUC("20100070971").TranslationKey())
	assert.Equal(t, "validation.document.unknown", perudoc.Result{}.TranslationKey())
}

func TestResult_ZeroValue(t *testing.T) {
	t.Parallel()

	var res perudoc.Result
	assert.False(t, res.Valid())
	assert.Equal(t, "unknown", res.Status.String())
	assert.True(t, res.Number.IsZero())
}

func TestValidateAll(t *testing.T) {
	t.Parallel()

	v := perudoc.MustNew()
	results := v.ValidateAll(
		perudoc.Input{Type: perudoc.DNI, Number: "12345678"},
		perudoc.Input{Type: perudoc.RUC, Number: "20100070971"},
		perudoc.Input{Type: perudoc.CE, Number: "ab1234567"},
		perudoc.Input{Type: perudoc.DocumentType("XYZ"), Number: "1"},
	)

	require.Len(t, results, 4)
	assert.Equal(t, perudoc.StatusValid, results[0].Status)
	assert.Equal(t, perudoc.StatusInvalidChecksum, results[1].Status)
	assert.Equal(t, "AB1234567", results[2].Number.String())
	assert.Equal(t, perudoc.StatusInvalidFormat, results[3].Status)

	assert.Empty(t, v.ValidateAll())
}

func TestValidator_LogsRejections(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatJSON),
		logger.WithLevel(slog.LevelDebug),
	)
	v := perudoc.MustNew(perudoc.WithLogger(l))

	require.True(t, v.ValidateRUC("20100070970").Valid())
	assert.Empty(t, buf.String(), "valid documents are not logged")

	require.False(t, v.ValidateRUC("20100070971").Valid())
	out := buf.String()
	assert.Contains(t, out, `"msg":"document rejected"`)
	assert.Contains(t, out, `"doc_type":"RUC"`)
	assert.Contains(t, out, `"doc_number":"********971"`)
	assert.Contains(t, out, `"status":"invalid_checksum"`)
	assert.NotContains(t, out, "20100070971")
}

func TestValidator_NilLoggerIgnored(t *testing.T) {
	t.Parallel()

	v := perudoc.MustNew(perudoc.WithLogger(nil))
	assert.NotPanics(t, func() { v.ValidateDNI("bad") })
}

func TestValidator_ConcurrentUse(t *testing.T) {
	t.Parallel()

	v := perudoc.MustNew(perudoc.WithRUCPrefixes("10", "20"))
	inputs := []perudoc.Input{
		{Type: perudoc.DNI, Number: "12345678"},
		{Type: perudoc.RUC, Number: "20100070970"},
		{Type: perudoc.RUC, Number: "15123456782"},
		{Type: perudoc.CE, Number: "x12345678"},
	}
	want := v.ValidateAll(inputs...)

	var wg sync.WaitGroup
	results := make([][]perudoc.Result, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = v.ValidateAll(inputs...)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
