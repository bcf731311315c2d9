package bignum

import "github.com/modcore/bignum/bnerrors"

// Add computes z = x + y.
func (z *Integer) Add(x, y *Integer) error {
	n := x.used
	if y.used > n {
		n = y.used
	}
	if err := z.Grow(n + 1); err != nil {
		return err
	}
	var carry Digit
	for i := 0; i < n; i++ {
		var xi, yi Digit
		if i < x.used {
			xi = x.digit[i]
		}
		if i < y.used {
			yi = y.digit[i]
		}
		s := xi + yi + carry
		z.digit[i] = s & Mask
		carry = s >> DigitBits
	}
	z.digit[n] = carry
	z.used = n + 1
	z.Clamp()
	return nil
}

// Sub computes z = x - y. The caller must ensure x >= y (in magnitude);
// this core never represents negative values, matching spec.md's
// non-goal of negative-magnitude support.
func (z *Integer) Sub(x, y *Integer) error {
	if x.CmpMag(y) < 0 {
		return bnerrors.WithData(bnerrors.ErrInvalidArgument, map[string]any{"reason": "Sub requires x >= y"})
	}
	if err := z.Grow(x.used); err != nil {
		return err
	}
	var borrow Digit
	for i := 0; i < x.used; i++ {
		var yi Digit
		if i < y.used {
			yi = y.digit[i]
		}
		xi := x.digit[i]
		sub := yi + borrow
		if xi >= sub {
			z.digit[i] = (xi - sub) & Mask
			borrow = 0
		} else {
			z.digit[i] = (xi + (Mask + 1) - sub) & Mask
			borrow = 1
		}
	}
	z.used = x.used
	z.Clamp()
	return nil
}

// Mul computes z = x * y using schoolbook multiplication. Each inner
// step mirrors the teacher's add_mul_shift_64: accumulate a product
// into the running column, write back the low digit, carry the rest.
func (z *Integer) Mul(x, y *Integer) error {
	if x.used == 0 || y.used == 0 {
		z.Zero()
		return nil
	}
	result := make([]Digit, x.used+y.used)
	for i := 0; i < x.used; i++ {
		var carry wide128
		for j := 0; j < y.used; j++ {
			carry = carry.addProduct(x.digit[i], y.digit[j]).addDigit(result[i+j])
			d, rest := carry.extractDigit()
			result[i+j] = d
			carry = rest
		}
		for k := i + y.used; !carry.isZero(); k++ {
			carry = carry.addDigit(result[k])
			d, rest := carry.extractDigit()
			result[k] = d
			carry = rest
		}
	}
	z.digit = result
	z.used = len(result)
	z.Clamp()
	return nil
}

// Sqr computes z = x * x.
func (z *Integer) Sqr(x *Integer) error {
	return z.Mul(x, x)
}

// Shl1 multiplies z by 2 in place.
func (z *Integer) Shl1() {
	var carry Digit
	for i := 0; i < z.used; i++ {
		v := (z.digit[i] << 1) | carry
		z.digit[i] = v & Mask
		carry = v >> DigitBits
	}
	if carry != 0 {
		if err := z.Grow(z.used + 1); err != nil {
			panic(err)
		}
		z.digit[z.used] = carry
		z.used++
	}
}

// ShlDigit shifts z left by k whole digit positions (multiplies by
// beta^k).
func (z *Integer) ShlDigit(k int) {
	if k <= 0 || z.used == 0 {
		return
	}
	if err := z.Grow(z.used + k); err != nil {
		panic(err)
	}
	for i := z.used - 1; i >= 0; i-- {
		z.digit[i+k] = z.digit[i]
	}
	for i := 0; i < k; i++ {
		z.digit[i] = 0
	}
	z.used += k
}

// ShrDigit shifts z right by k whole digit positions (divides by
// beta^k, discarding the remainder).
func (z *Integer) ShrDigit(k int) {
	if k <= 0 {
		return
	}
	if k >= z.used {
		z.Zero()
		return
	}
	copy(z.digit, z.digit[k:z.used])
	for i := z.used - k; i < z.used; i++ {
		z.digit[i] = 0
	}
	z.used -= k
	z.Clamp()
}

// shrBits shifts z right by b bits (0 <= b < DigitBits) in place.
func (z *Integer) shrBits(b uint) {
	if b == 0 || z.used == 0 {
		return
	}
	var carry Digit
	for i := z.used - 1; i >= 0; i-- {
		v := z.digit[i]
		z.digit[i] = (v >> b) | (carry << (DigitBits - b))
		carry = v & ((Digit(1) << b) - 1)
	}
	z.Clamp()
}

// ShrMod sets q = a >> p and r = a mod 2^p (shrmod yields quotient and
// remainder by 2^p).
func ShrMod(q, r, a *Integer, p int) error {
	if p < 0 {
		return bnerrors.WithData(bnerrors.ErrInvalidArgument, map[string]any{"p": p})
	}
	if err := r.ModBits(a, p); err != nil {
		return err
	}
	q.Copy(a)
	q.ShrDigit(p / DigitBits)
	q.shrBits(uint(p % DigitBits))
	return nil
}

// ModBits sets z = x mod 2^bits.
func (z *Integer) ModBits(x *Integer, bits int) error {
	if bits < 0 {
		return bnerrors.WithData(bnerrors.ErrInvalidArgument, map[string]any{"bits": bits})
	}
	fullDigits := bits / DigitBits
	extraBits := uint(bits % DigitBits)
	n := fullDigits
	if extraBits != 0 {
		n++
	}
	if n > x.used {
		n = x.used
	}
	if err := z.Grow(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		z.digit[i] = x.digit[i]
	}
	if extraBits != 0 && fullDigits < n {
		z.digit[fullDigits] &= (Digit(1) << extraBits) - 1
	}
	z.used = n
	z.Clamp()
	return nil
}

// ModDigit computes x mod d for a single-digit modulus d, processing one
// bit at a time so the running remainder never needs more than
// uint64 precision regardless of d's width.
func (x *Integer) ModDigit(d Digit) Digit {
	if d == 0 {
		panic(bnerrors.WithData(bnerrors.ErrInvalidArgument, map[string]any{"reason": "ModDigit by zero"}))
	}
	var rem Digit
	for i := x.used - 1; i >= 0; i-- {
		word := x.digit[i]
		for b := DigitBits - 1; b >= 0; b-- {
			bit := (word >> uint(b)) & 1
			rem = ((rem << 1) | bit) % d
		}
	}
	return rem
}

// DivMod computes q = floor(x/y) and r = x mod y via restoring
// shift-subtract division, bit by bit from the most significant bit of
// x down to the least. This is the simple, unconditionally-correct
// fallback division a self-contained bignum core needs for Barrett
// setup and the general Mod below; it is not optimized, matching
// spec.md's non-goal of constant-time/performance guarantees for this
// core.
func DivMod(q, r, x, y *Integer) error {
	if y.IsZero() {
		return bnerrors.WithData(bnerrors.ErrInvalidArgument, map[string]any{"reason": "division by zero"})
	}
	q.Zero()
	r.Zero()
	n := x.CountBits()
	for i := n - 1; i >= 0; i-- {
		r.Shl1()
		if x.bit(i) != 0 {
			r.setBit(0)
		}
		if r.CmpMag(y) >= 0 {
			if err := r.Sub(r, y); err != nil {
				return err
			}
			q.setBit(i)
		}
	}
	return nil
}

// Mod computes z = x mod m.
func (z *Integer) Mod(x, m *Integer) error {
	var q Integer
	defer q.Destroy()
	return DivMod(&q, z, x, m)
}

// MulMod computes z = (x*y) mod m.
func (z *Integer) MulMod(x, y, m *Integer) error {
	var t Integer
	defer t.Destroy()
	if err := t.Mul(x, y); err != nil {
		return err
	}
	return z.Mod(&t, m)
}
