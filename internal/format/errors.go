package format

import "errors"

var (
	// ErrEmptyLiteral indicates an integer or length literal with no digits.
	ErrEmptyLiteral = errors.New("format: empty numeric literal")
	// ErrBadDigit indicates a numeric literal containing a non-digit byte.
	ErrBadDigit = errors.New("format: non-digit in numeric literal")
	// ErrLeadingZero indicates a non-canonical literal such as "03" or "-0".
	ErrLeadingZero = errors.New("format: non-canonical leading zero")
	// ErrOutOfRange indicates a literal that does not fit in int64.
	ErrOutOfRange = errors.New("format: numeric literal out of range")
)
