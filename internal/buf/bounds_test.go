package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt64, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt64")
	}
	if _, ok := AddOverflowSafe(math.MinInt64, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt64")
	}
}

func TestFitsRemaining(t *testing.T) {
	if !FitsRemaining(4, 4) {
		t.Fatalf("exact fit should be accepted")
	}
	if FitsRemaining(5, 4) {
		t.Fatalf("declared beyond remaining should be rejected")
	}
	if !FitsRemaining(1<<40, -1) {
		t.Fatalf("unknown remaining should accept any non-negative length")
	}
	if FitsRemaining(-1, 10) {
		t.Fatalf("negative declared length should be rejected")
	}
}

func TestWithinLimit(t *testing.T) {
	if !WithinLimit(1<<50, 0) {
		t.Fatalf("zero limit means unlimited")
	}
	if !WithinLimit(10, 10) || WithinLimit(11, 10) {
		t.Fatalf("limit boundary mismatch")
	}
}
