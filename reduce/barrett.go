package reduce

import "github.com/modcore/bignum"

// ReduceSetup precomputes mu = floor(beta^(2k) / n) for a modulus n with
// k digits, the single reusable constant HAC Algorithm 14.42 needs for
// repeated reduction against n.
func ReduceSetup(n *bignum.Integer) (*bignum.Integer, error) {
	k := n.Used()
	var beta2k, mu, rem bignum.Integer
	defer beta2k.Destroy()
	defer rem.Destroy()
	beta2k.PowerOfTwo(2 * k * bignum.DigitBits)
	if err := bignum.DivMod(&mu, &rem, &beta2k, n); err != nil {
		return nil, err
	}
	return &mu, nil
}

// Reduce computes z = x mod n using a precomputed mu from ReduceSetup,
// following HAC Algorithm 14.42. x must satisfy x < beta^(2k) (e.g.
// x < n^2, the usual precondition after a single modular multiply). q3
// is computed via MulHigh, which forms the full product q1*mu and drops
// its low k+1 digits; r2 is computed via MulLow, which never produces
// the digits of q3*n beyond position k+1.
func Reduce(z, x, n, mu *bignum.Integer) error {
	k := n.Used()

	var q1, q3, r1, r2 bignum.Integer
	defer q1.Destroy()
	defer q3.Destroy()
	defer r1.Destroy()
	defer r2.Destroy()

	q1.Copy(x)
	if k-1 > 0 {
		q1.ShrDigit(k - 1)
	}
	if err := q3.MulHigh(&q1, mu, k+1); err != nil {
		return err
	}

	if err := r1.ModBits(x, (k+1)*bignum.DigitBits); err != nil {
		return err
	}
	if err := r2.MulLow(&q3, n, k+1); err != nil {
		return err
	}

	var beta bignum.Integer
	defer beta.Destroy()
	if r1.CmpMag(&r2) < 0 {
		beta.PowerOfTwo((k + 1) * bignum.DigitBits)
		if err := r1.Add(&r1, &beta); err != nil {
			return err
		}
	}
	if err := z.Sub(&r1, &r2); err != nil {
		return err
	}
	for z.CmpMag(n) >= 0 {
		if err := z.Sub(z, n); err != nil {
			return err
		}
	}
	return nil
}
