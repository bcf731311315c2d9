package bignum

import "math/bits"

// wide128 is an exact unsigned 128-bit accumulator used by the
// multiplication and reduction code to sum several digit products
// without losing precision before normalizing back into base beta.
// It plays the role the teacher library's add_mul_shift_64 /
// mul_four_one_64 helpers play for its fixed-width uint256: accumulate
// first, propagate carries once, normalize last.
type wide128 struct {
	lo, hi uint64
}

// addDigit adds a single digit (< beta) to w.
func (w wide128) addDigit(a Digit) wide128 {
	lo, c := bits.Add64(w.lo, uint64(a), 0)
	return wide128{lo, w.hi + c}
}

// addWide adds another wide128 value to w.
func (w wide128) addWide(o wide128) wide128 {
	lo, c := bits.Add64(w.lo, o.lo, 0)
	hi, _ := bits.Add64(w.hi, o.hi, c)
	return wide128{lo, hi}
}

// addProduct adds the exact product a*b (both digits, so the product is
// at most (beta-1)^2 < 2^120) to w.
func (w wide128) addProduct(a, b Digit) wide128 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	lo2, c := bits.Add64(w.lo, lo, 0)
	hi2, _ := bits.Add64(w.hi, hi, c)
	return wide128{lo2, hi2}
}

// extractDigit splits w into its low digit (mod beta) and the remainder
// shifted right by DigitBits, i.e. w = rest*beta + digit.
func (w wide128) extractDigit() (digit Digit, rest wide128) {
	digit = Digit(w.lo) & Mask
	newLo := (w.lo >> DigitBits) | (w.hi << (64 - DigitBits))
	newHi := w.hi >> DigitBits
	return digit, wide128{newLo, newHi}
}

func (w wide128) isZero() bool {
	return w.lo == 0 && w.hi == 0
}
