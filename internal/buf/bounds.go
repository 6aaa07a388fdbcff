// Package buf holds the size arithmetic shared by the decoder: overflow-safe
// accumulation of consumed bytes and checks of declared lengths against what
// a source can still supply.
package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int64.
func AddOverflowSafe(a, b int64) (int64, bool) {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return 0, false
	case b < 0 && a < math.MinInt64-b:
		return 0, false
	default:
		return a + b, true
	}
}

// FitsRemaining reports whether a payload of declared bytes can be satisfied
// by a source with remaining bytes left. A negative remaining means the
// source cannot report its size and every non-negative declaration fits.
func FitsRemaining(declared, remaining int64) bool {
	if declared < 0 {
		return false
	}
	if remaining < 0 {
		return true
	}
	return declared <= remaining
}

// WithinLimit reports whether n respects limit, where a limit of zero or
// less means unlimited.
func WithinLimit(n, limit int64) bool {
	return limit <= 0 || n <= limit
}
