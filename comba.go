package bignum

// MulLow computes z = (x*y) mod beta^k, the truncated product Barrett
// reduction needs for its HAC-optimization step (_private_int_mul in
// spec.md's external interface table). Only digits below position k are
// produced; exported so the sibling reduce package can use it without
// paying for a full-width multiply it would immediately truncate.
func (z *Integer) MulLow(x, y *Integer, k int) error {
	if x.used == 0 || y.used == 0 || k <= 0 {
		z.Zero()
		return nil
	}
	if err := z.Grow(k); err != nil {
		return err
	}
	for i := 0; i < k; i++ {
		z.digit[i] = 0
	}
	for i := 0; i < x.used && i < k; i++ {
		var carry wide128
		maxJ := k - i
		limit := y.used
		if limit > maxJ {
			limit = maxJ
		}
		for j := 0; j < limit; j++ {
			carry = carry.addProduct(x.digit[i], y.digit[j]).addDigit(z.digit[i+j])
			d, rest := carry.extractDigit()
			z.digit[i+j] = d
			carry = rest
		}
		for kk := i + limit; !carry.isZero() && kk < k; kk++ {
			carry = carry.addDigit(z.digit[kk])
			d, rest := carry.extractDigit()
			z.digit[kk] = d
			carry = rest
		}
	}
	z.used = k
	z.Clamp()
	return nil
}

// MulHigh computes the high half of x*y, retaining only the digits at
// position >= k (_private_int_mul_high in spec.md's external interface
// table). It is the counterpart to MulLow, used by Barrett reduction to
// compute q3. It forms the full product x*y and then drops the low k
// digits.
func (z *Integer) MulHigh(x, y *Integer, k int) error {
	var full Integer
	defer full.Destroy()
	if err := full.Mul(x, y); err != nil {
		return err
	}
	full.ShrDigit(k)
	z.Copy(&full)
	return nil
}
