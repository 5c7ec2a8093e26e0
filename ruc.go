package perudoc

import (
	"fmt"
	"slices"
)

const (
	rucLength    = 11
	rucPrefixLen = 2
)

// Taxpayer-type codes a RUC may start with.
var defaultRUCPrefixes = []string{"10", "15", "16", "17", "20"}

// DefaultRUCPrefixes returns a copy of the built-in taxpayer-type prefix allow-list.
func DefaultRUCPrefixes() []string {
	return slices.Clone(defaultRUCPrefixes)
}

// ChecksumContext is a weighted-sum modulus check-digit scheme.
// Its weights are fixed at construction.
type ChecksumContext struct {
	weights []int
	modulus int
}

// NewChecksumContext copies weights, so later changes to the slice have no effect.
func NewChecksumContext(modulus int, weights ...int) ChecksumContext {
	return ChecksumContext{weights: slices.Clone(weights), modulus: modulus}
}

var rucChecksum = NewChecksumContext(11, 5, 4, 3, 2, 7, 6, 5, 4, 3, 2)

// RUCChecksum returns the SUNAT modulo-11 scheme used for RUC check digits.
func RUCChecksum() ChecksumContext {
	return rucChecksum
}

func (c ChecksumContext) Modulus() int   { return c.modulus }
func (c ChecksumContext) Weights() []int { return slices.Clone(c.weights) }

// CheckDigit computes the expected check digit (0-9) from the leading
// len(weights) digits of digits. Extra trailing characters are ignored.
//
// The raw value is modulus minus the remainder of the weighted sum; 10 collapses
// to 0 and 11 to 1, so remainder 0 yields 1 and remainder 1 yields 0.
func (c ChecksumContext) CheckDigit(digits string) (int, error) {
	if c.modulus <= 0 || len(c.weights) == 0 {
		return 0, fmt.Errorf("%w: empty checksum context", ErrInvalidConfig)
	}
	if len(digits) < len(c.weights) {
		return 0, fmt.Errorf("%w: need at least %d digits, got %d", ErrInvalidLength, len(c.weights), len(digits))
	}
	sum := 0
	for i, w := range c.weights {
		d := digits[i]
		if !isDigit(d) {
			return 0, fmt.Errorf("%w: non-digit %q at index %d", ErrInvalidCharset, d, i)
		}
		sum += int(d-'0') * w
	}
	check := c.modulus - sum%c.modulus
	switch check {
	case 10:
		return 0, nil
	case 11:
		return 1, nil
	}
	return check, nil
}

// RUCCheckDigit computes the check digit of a 10-digit RUC body, or of a full
// 11-digit RUC (the supplied check digit is ignored). No prefix check is done.
func RUCCheckDigit(s string) (byte, error) {
	if len(s) != rucLength-1 && len(s) != rucLength {
		return 0, fmt.Errorf("%w: RUC check digit needs 10 or 11 digits, got %d", ErrInvalidLength, len(s))
	}
	d, err := rucChecksum.CheckDigit(s)
	if err != nil {
		return 0, err
	}
	return byte('0' + d), nil
}

func (v *Validator) validateRUC(raw string) Result {
	s, reason := normalize(raw)
	if reason != "" {
		return invalid(RUC, raw, StatusInvalidFormat, reason)
	}
	if len(s) != rucLength {
		return invalid(RUC, raw, StatusInvalidLength, lengthReason(len(s), rucLength, rucLength))
	}
	if !allDigits(s) {
		return invalid(RUC, raw, StatusInvalidCharset, "must contain only digits")
	}
	if _, ok := v.rucPrefixes[s[:rucPrefixLen]]; !ok {
		return invalid(RUC, raw, StatusInvalidFormat, fmt.Sprintf("taxpayer-type prefix %q not allowed", s[:rucPrefixLen]))
	}
	expected, err := rucChecksum.CheckDigit(s)
	if err != nil {
		return invalid(RUC, raw, StatusInvalidCharset, err.Error())
	}
	if got := int(s[rucLength-1] - '0'); got != expected {
		return invalid(RUC, raw, StatusInvalidChecksum, fmt.Sprintf("check digit %d, want %d", got, expected))
	}
	return valid(RUC, raw, s)
}

// TaxpayerKind classifies a RUC by its prefix.
type TaxpayerKind string

const (
	TaxpayerNaturalPerson TaxpayerKind = "natural_person"
	TaxpayerLegalEntity   TaxpayerKind = "legal_entity"
	TaxpayerOther         TaxpayerKind = "other"
)

// TaxpayerKind returns the taxpayer classification of a RUC number,
// or an empty kind for other document types.
func (n DocumentNumber) TaxpayerKind() TaxpayerKind {
	if n.docType != RUC || len(n.value) != rucLength {
		return ""
	}
	switch n.value[:rucPrefixLen] {
	case "10":
		return TaxpayerNaturalPerson
	case "20":
		return TaxpayerLegalEntity
	}
	return TaxpayerOther
}

// EmbeddedDNI extracts the DNI a natural-person RUC (prefix 10) is built from.
func (n DocumentNumber) EmbeddedDNI() (DocumentNumber, bool) {
	if n.TaxpayerKind() != TaxpayerNaturalPerson {
		return DocumentNumber{}, false
	}
	return DocumentNumber{docType: DNI, value: n.value[rucPrefixLen : rucPrefixLen+dniLength]}, true
}
