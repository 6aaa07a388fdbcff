package format

import (
	"errors"
	"math"
	"testing"
)

func TestAppendInteger(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "i0e"},
		{42, "i42e"},
		{-1, "i-1e"},
		{math.MaxInt64, "i9223372036854775807e"},
		{math.MinInt64, "i-9223372036854775808e"},
	}
	for _, tc := range cases {
		if got := string(AppendInteger(nil, tc.in)); got != tc.want {
			t.Fatalf("AppendInteger(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAppendString(t *testing.T) {
	if got := string(AppendString(nil, []byte("spam"))); got != "4:spam" {
		t.Fatalf("unexpected encoding %q", got)
	}
	if got := string(AppendString([]byte("l"), nil)); got != "l0:" {
		t.Fatalf("unexpected empty-string encoding %q", got)
	}
	bin := []byte{0x00, 0xff, ':'}
	if got := AppendString(nil, bin); string(got) != "3:\x00\xff:" {
		t.Fatalf("binary payload not copied verbatim: %q", got)
	}
}

func TestParseInteger(t *testing.T) {
	v, err := ParseInteger([]byte("9223372036854775807"), true)
	if err != nil || v != math.MaxInt64 {
		t.Fatalf("max int64: got %d, %v", v, err)
	}
	v, err = ParseInteger([]byte("-1"), true)
	if err != nil || v != -1 {
		t.Fatalf("-1: got %d, %v", v, err)
	}

	errCases := []struct {
		lit       string
		canonical bool
		want      error
	}{
		{"", false, ErrEmptyLiteral},
		{"-", false, ErrEmptyLiteral},
		{"+5", false, ErrBadDigit},
		{"1x", false, ErrBadDigit},
		{"9223372036854775808", false, ErrOutOfRange},
		{"03", true, ErrLeadingZero},
		{"-0", true, ErrLeadingZero},
	}
	for _, tc := range errCases {
		if _, err := ParseInteger([]byte(tc.lit), tc.canonical); !errors.Is(err, tc.want) {
			t.Fatalf("ParseInteger(%q) err = %v, want %v", tc.lit, err, tc.want)
		}
	}

	// Lenient mode keeps what strconv accepts once the digits are validated.
	if v, err := ParseInteger([]byte("007"), false); err != nil || v != 7 {
		t.Fatalf("lenient leading zeros: got %d, %v", v, err)
	}
}

func TestParseLength(t *testing.T) {
	if n, err := ParseLength([]byte("0"), true); err != nil || n != 0 {
		t.Fatalf("zero length: %d, %v", n, err)
	}
	if _, err := ParseLength([]byte("01"), true); !errors.Is(err, ErrLeadingZero) {
		t.Fatalf("expected leading zero error, got %v", err)
	}
	if _, err := ParseLength([]byte("1a"), false); !errors.Is(err, ErrBadDigit) {
		t.Fatalf("expected bad digit error, got %v", err)
	}
	if _, err := ParseLength([]byte("99999999999999999999"), false); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected out of range error, got %v", err)
	}
}
