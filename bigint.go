package bignum

import "math/big"

// This file lets tests cross-check reduction and exponentiation results
// against math/big as an independent oracle, mirroring the teacher's
// bsFieldElement_BigInt round-trip (field_element_bigInt.go): every
// production algorithm in reduce/modexp/primality is implemented against
// Integer directly, never against *big.Int; these two conversions exist
// solely so tests can compare.

// SetBigInt sets z to the value of x (x must be nonnegative).
func (z *Integer) SetBigInt(x *big.Int) {
	z.Zero()
	if x.Sign() == 0 {
		return
	}
	bitlen := x.BitLen()
	digits := (bitlen + DigitBits - 1) / DigitBits
	if err := z.Grow(digits); err != nil {
		panic(err)
	}
	var tmp big.Int
	tmp.Set(x)
	mask := big.NewInt(1)
	mask.Lsh(mask, DigitBits)
	mask.Sub(mask, big.NewInt(1))
	var word big.Int
	for i := 0; i < digits; i++ {
		word.And(&tmp, mask)
		z.digit[i] = Digit(word.Uint64())
		tmp.Rsh(&tmp, DigitBits)
	}
	z.used = digits
	z.Clamp()
}

// ToBigInt returns z's value as a *big.Int.
func (z *Integer) ToBigInt() *big.Int {
	result := new(big.Int)
	for i := z.used - 1; i >= 0; i-- {
		result.Lsh(result, DigitBits)
		result.Or(result, new(big.Int).SetUint64(uint64(z.digit[i])))
	}
	return result
}
