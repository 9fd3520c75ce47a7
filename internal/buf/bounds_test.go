package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if p, ok := MulOverflowSafe(16, 2); !ok || p != 32 {
		t.Fatalf("MulOverflowSafe(16,2)=%d,%v want 32,true", p, ok)
	}
	if p, ok := MulOverflowSafe(0, math.MaxInt); !ok || p != 0 {
		t.Fatalf("MulOverflowSafe(0,MaxInt)=%d,%v want 0,true", p, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt/2+1, 2); ok {
		t.Fatalf("expected overflow for MaxInt/2+1 * 2")
	}
	if _, ok := MulOverflowSafe(-1, 2); ok {
		t.Fatalf("negative operand should be rejected")
	}
}

func TestSpan(t *testing.T) {
	end, err := Span(8, 4, 4)
	if err != nil || end != 8 {
		t.Fatalf("Span(8,4,4)=%d,%v want 8,nil", end, err)
	}
	if _, err := Span(8, 6, 4); err == nil {
		t.Fatalf("Span should fail past the end")
	}
	if _, err := Span(8, -1, 1); err == nil {
		t.Fatalf("Span should reject negative offset")
	}
	if _, err := Span(8, 0, -1); err == nil {
		t.Fatalf("Span should reject negative length")
	}
	if _, err := Span(8, math.MaxInt, 1); err == nil {
		t.Fatalf("Span should reject overflowing end")
	}
}

func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if Has(data, 2, 4) {
		t.Fatalf("Has should be false for out-of-bounds range")
	}
	if !Has(data, 2, 1) {
		t.Fatalf("Has should be true for valid range")
	}
	if !Has(data, 5, 0) {
		t.Fatalf("Has should accept an empty range at the end")
	}

	// The returned view must not let appends clobber bytes past the range.
	got, _ := Slice(data, 0, 2)
	_ = append(got, 0xFF)
	if data[2] != 2 {
		t.Fatalf("append through Slice result overwrote backing array")
	}
}
