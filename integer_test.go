package bignum

import (
	"testing"

	"github.com/modcore/bignum/internal/testutils"
)

func TestGrowIsIdempotentAndNeverShrinks(t *testing.T) {
	var z Integer
	if err := z.Grow(10); err != nil {
		t.Fatalf("Grow: %v", err)
	}
	if z.Cap() != 10 {
		t.Fatalf("Cap after Grow(10) = %d, want 10", z.Cap())
	}
	if err := z.Grow(4); err != nil {
		t.Fatalf("Grow(4): %v", err)
	}
	if z.Cap() != 10 {
		t.Fatalf("Grow(4) shrank capacity to %d", z.Cap())
	}
}

func TestCopyIsIndependent(t *testing.T) {
	var src, dst Integer
	src.SetDigit(42)
	dst.Copy(&src)
	if testutils.CheckSliceAlias(src.digit, dst.digit) {
		t.Fatalf("Copy shares backing storage with its source")
	}
	src.SetDigit(7)
	if dst.ToBigInt().Int64() != 42 {
		t.Fatalf("Copy aliased storage: dst changed to %s after mutating src", dst.ToBigInt())
	}
}

func TestClampTrimsTrailingZeros(t *testing.T) {
	var z Integer
	if err := z.Grow(4); err != nil {
		t.Fatal(err)
	}
	z.digit[0] = 5
	z.used = 4
	z.Clamp()
	if z.Used() != 1 {
		t.Fatalf("Clamp left Used() = %d, want 1", z.Used())
	}
}

func TestCmpMag(t *testing.T) {
	var a, b Integer
	a.SetDigit(5)
	b.SetDigit(9)
	if a.CmpMag(&b) >= 0 {
		t.Fatalf("5 should compare less than 9")
	}
	if b.CmpMag(&a) <= 0 {
		t.Fatalf("9 should compare greater than 5")
	}
	if a.CmpMag(&a) != 0 {
		t.Fatalf("value should compare equal to itself")
	}
}

func TestSetDigitAtAndExtendUsed(t *testing.T) {
	var z Integer
	if err := z.SetDigitAt(3, 9); err != nil {
		t.Fatalf("SetDigitAt: %v", err)
	}
	if z.Used() != 4 {
		t.Fatalf("Used() = %d, want 4", z.Used())
	}
	if z.Digit(3) != 9 {
		t.Fatalf("Digit(3) = %d, want 9", z.Digit(3))
	}
	if err := z.ExtendUsed(6); err != nil {
		t.Fatalf("ExtendUsed: %v", err)
	}
	if z.Used() != 6 || z.Digit(5) != 0 {
		t.Fatalf("ExtendUsed did not zero-fill correctly: used=%d digit5=%d", z.Used(), z.Digit(5))
	}
	z.ClampUsed(6)
	if z.Used() != 4 {
		t.Fatalf("ClampUsed did not trim trailing zeros: Used() = %d", z.Used())
	}
}

func TestIsZeroAndDestroy(t *testing.T) {
	var z Integer
	if !z.IsZero() {
		t.Fatalf("fresh Integer should be zero")
	}
	z.SetDigit(1)
	if z.IsZero() {
		t.Fatalf("Integer holding 1 should not be zero")
	}
	z.Destroy()
	if !z.IsZero() || z.Cap() != 0 {
		t.Fatalf("Destroy did not reset to empty: used=%d cap=%d", z.Used(), z.Cap())
	}
}
