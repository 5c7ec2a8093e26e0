package perudoc

import "errors"

// Sentinel errors matching each failure status. Result.Err wraps one of them.
var (
	ErrInvalidFormat   = errors.New("invalid document format")
	ErrInvalidLength   = errors.New("invalid document length")
	ErrInvalidCharset  = errors.New("invalid document charset")
	ErrInvalidChecksum = errors.New("invalid document check digit")

	// ErrUnsupportedType is returned for document types missing from the catalog.
	ErrUnsupportedType = errors.New("unsupported document type")

	// ErrInvalidConfig is returned when validator settings are rejected at construction.
	ErrInvalidConfig = errors.New("invalid document validator configuration")
)
