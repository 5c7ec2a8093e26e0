// Package sanitizer provides small string helpers for cleaning input and
// masking sensitive values before they are logged or rendered.
//
//   - Trim and ToUpper are the building blocks of document-number
//     normalization.
//   - MaskTail hides personal identifiers the way DNI, RUC and CE numbers
//     are usually shown ("*****678").
//
// None of the helpers returns an error and all of them are safe for
// concurrent use.
package sanitizer
