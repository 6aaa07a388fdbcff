// Package format houses the low-level wire vocabulary of the bencode format:
// the single-byte tokens that open and close each construct and the helpers
// that append canonical encodings to a byte slice. Higher-level packages
// (the reader and the public encoder) build on these so that the grammar is
// spelled out in exactly one place.
package format

const (
	// IntegerStart opens an integer: i<decimal>e.
	IntegerStart = 'i'

	// ListStart opens a list: l<value>*e.
	ListStart = 'l'

	// DictionaryStart opens a dictionary: d(<string><value>)*e.
	DictionaryStart = 'd'

	// End closes integers, lists and dictionaries.
	End = 'e'

	// LengthSeparator separates a byte string's decimal length from its payload.
	LengthSeparator = ':'

	// Minus is the only sign accepted in integer literals.
	Minus = '-'
)

const (
	// MaxIntegerLiteralLen bounds the number of bytes read for an integer
	// literal between 'i' and 'e'. The widest int64 literal is 20 bytes
	// ("-9223372036854775808"); the slack allows non-canonical leading zeros.
	MaxIntegerLiteralLen = 64

	// MaxLengthLiteralLen bounds the decimal length prefix of a byte string.
	MaxLengthLiteralLen = 32

	// SmallStringLen is the largest payload read into a single pre-sized
	// buffer. Longer payloads are read incrementally so a forged length
	// prefix cannot force a huge allocation before any data arrives.
	SmallStringLen = 64 << 10
)

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
