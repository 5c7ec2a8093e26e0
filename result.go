package perudoc

import (
	"fmt"

	"github.com/dmitrymomot/perudoc/pkg/sanitizer"
)

// Status is the outcome tag of a validation attempt.
// The zero value is never a successful outcome.
type Status uint8

const (
	StatusValid Status = iota + 1
	StatusInvalidFormat
	StatusInvalidLength
	StatusInvalidCharset
	StatusInvalidChecksum
)

func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusInvalidFormat:
		return "invalid_format"
	case StatusInvalidLength:
		return "invalid_length"
	case StatusInvalidCharset:
		return "invalid_charset"
	case StatusInvalidChecksum:
		return "invalid_checksum"
	}
	return "unknown"
}

func (s Status) sentinel() error {
	switch s {
	case StatusInvalidFormat:
		return ErrInvalidFormat
	case StatusInvalidLength:
		return ErrInvalidLength
	case StatusInvalidCharset:
		return ErrInvalidCharset
	case StatusInvalidChecksum:
		return ErrInvalidChecksum
	}
	return nil
}

// DocumentNumber is the canonical form of a document number together with its type.
// It can only be obtained from a successful validation.
type DocumentNumber struct {
	docType DocumentType
	value   string
}

func (n DocumentNumber) Type() DocumentType { return n.docType }
func (n DocumentNumber) String() string     { return n.value }
func (n DocumentNumber) IsZero() bool       { return n.value == "" }

// Equal reports whether both numbers have the same type and canonical value.
func (n DocumentNumber) Equal(other DocumentNumber) bool {
	return n.docType == other.docType && n.value == other.value
}

// Mask hides every character but the last three, e.g. "*****678".
func (n DocumentNumber) Mask() string {
	return sanitizer.MaskTail(n.value, 3)
}

// Result describes the outcome of validating one input.
type Result struct {
	Type   DocumentType
	Status Status
	// Input is the raw string as received, before normalization.
	Input string
	// Number is set only when Status is StatusValid.
	Number DocumentNumber
	Reason string

	cause error
}

// Valid reports whether every structural and arithmetic check passed.
func (r Result) Valid() bool {
	return r.Status == StatusValid
}

// Err returns nil for valid results and an error wrapping the status sentinel otherwise.
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	sentinel := r.Status.sentinel()
	if sentinel == nil {
		sentinel = ErrInvalidFormat
	}
	if r.cause != nil {
		return fmt.Errorf("%s: %w: %w", r.Type, sentinel, r.cause)
	}
	if r.Reason == "" {
		return fmt.Errorf("%s: %w", r.Type, sentinel)
	}
	return fmt.Errorf("%s: %w: %s", r.Type, sentinel, r.Reason)
}

// TranslationKey returns the i18n key for the outcome, e.g. "validation.document.invalid_checksum".
func (r Result) TranslationKey() string {
	return "validation.document." + r.Status.String()
}

func valid(t DocumentType, input, canonical string) Result {
	return Result{
		Type:   t,
		Status: StatusValid,
		Input:  input,
		Number: DocumentNumber{docType: t, value: canonical},
	}
}

func invalid(t DocumentType, input string, status Status, reason string) Result {
	return Result{Type: t, Status: status, Input: input, Reason: reason}
}
