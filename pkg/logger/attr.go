package logger

import (
	"log/slog"

	"github.com/dmitrymomot/perudoc/pkg/sanitizer"
)

// Number of trailing characters DocumentNumber leaves readable.
const visibleDigits = 3

// DocumentType records the document type under the key "doc_type".
func DocumentType(t string) slog.Attr {
	return slog.String("doc_type", t)
}

// DocumentNumber records a document number under the key "doc_number".
// The value is always masked; only the last three characters stay readable.
func DocumentNumber(n string) slog.Attr {
	return slog.String("doc_number", sanitizer.MaskTail(n, visibleDigits))
}

// Status records a validation outcome under the key "status".
func Status(s string) slog.Attr {
	return slog.String("status", s)
}

// Reason records a rejection reason under the key "reason".
// If reason is empty, it returns an empty Attr.
func Reason(reason string) slog.Attr {
	if reason == "" {
		return slog.Attr{}
	}
	return slog.String("reason", reason)
}
