package format

import "strconv"

// AppendInteger appends the canonical encoding of v: 'i', the decimal digits
// (with '-' when negative, no leading zeros), then 'e'.
func AppendInteger(dst []byte, v int64) []byte {
	dst = append(dst, IntegerStart)
	dst = strconv.AppendInt(dst, v, 10)
	return append(dst, End)
}

// AppendStringHeader appends the length prefix of an n-byte string, including
// the ':' separator. The payload itself is written by the caller.
func AppendStringHeader(dst []byte, n int) []byte {
	dst = strconv.AppendInt(dst, int64(n), 10)
	return append(dst, LengthSeparator)
}

// AppendString appends the full encoding of b: length prefix and payload.
func AppendString(dst []byte, b []byte) []byte {
	dst = AppendStringHeader(dst, len(b))
	return append(dst, b...)
}

// ParseInteger validates and parses the digits of an integer literal (the
// bytes between 'i' and 'e'). An optional leading '-' is accepted. When
// canonical is true, leading zeros and negative zero are rejected as well.
func ParseInteger(lit []byte, canonical bool) (int64, error) {
	digits := lit
	if len(digits) > 0 && digits[0] == Minus {
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return 0, ErrEmptyLiteral
	}
	for _, c := range digits {
		if !IsDigit(c) {
			return 0, ErrBadDigit
		}
	}
	if canonical && digits[0] == '0' && (len(digits) > 1 || len(lit) != len(digits)) {
		return 0, ErrLeadingZero
	}
	v, err := strconv.ParseInt(string(lit), 10, 64)
	if err != nil {
		return 0, ErrOutOfRange
	}
	return v, nil
}

// ParseLength validates and parses the length prefix of a byte string. Only
// unsigned decimal digits are accepted; callers report a leading '-'
// separately so the message can name the negative length.
func ParseLength(lit []byte, canonical bool) (int64, error) {
	if len(lit) == 0 {
		return 0, ErrEmptyLiteral
	}
	for _, c := range lit {
		if !IsDigit(c) {
			return 0, ErrBadDigit
		}
	}
	if canonical && lit[0] == '0' && len(lit) > 1 {
		return 0, ErrLeadingZero
	}
	n, err := strconv.ParseInt(string(lit), 10, 64)
	if err != nil {
		return 0, ErrOutOfRange
	}
	return n, nil
}
