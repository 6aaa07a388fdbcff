// Package types defines the small shared vocabulary of bencodekit: the kind
// tags of decoded values and the typed errors returned by the decoder and the
// encoder.
//
// Design goals:
//   - Stable error categories (format/io/encode/limit) that callers branch on
//     with errors.Is or errors.As rather than message text.
//   - Never panic on malformed input; every failure is a returned *Error.
//
// This package has no dependencies beyond the standard library.
package types
