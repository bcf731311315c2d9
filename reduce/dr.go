package reduce

import "github.com/modcore/bignum"

// ReduceIs2k reports whether n is a diminished-radix modulus of the
// single-digit form 2^p - d (p = count_bits(n), d at most beta): a
// single-digit n always qualifies; otherwise every bit of n from
// position DigitBits up to its top bit must be set. Moduli of this shape
// (e.g. Mersenne-like primes) let reduction replace division with a
// shift, a multiply-by-d and an add, which is what Reduce2k implements.
func ReduceIs2k(n *bignum.Integer) bool {
	if n.Used() < 2 {
		return n.Used() == 1
	}
	top := n.CountBits()
	for b := bignum.DigitBits; b < top; b++ {
		if (n.Digit(b/bignum.DigitBits)>>uint(b%bignum.DigitBits))&1 == 0 {
			return false
		}
	}
	return true
}

// Reduce2kSetup computes d = 2^p - n for a single-digit-form DR modulus
// n (p = count_bits(n)), returning d's lowest digit.
func Reduce2kSetup(n *bignum.Integer) (bignum.Digit, error) {
	var full, d bignum.Integer
	defer full.Destroy()
	defer d.Destroy()
	full.PowerOfTwo(n.CountBits())
	if err := d.Sub(&full, n); err != nil {
		return 0, err
	}
	return d.Digit(0), nil
}

// Reduce2k reduces x modulo n = 2^p - d (p = count_bits(n)) in place,
// repeatedly folding the bits above position p back in multiplied by d
// (the multiply is skipped when d == 1), until the fold stops
// contributing, then finishing with plain conditional subtraction.
func Reduce2k(x, n *bignum.Integer, d bignum.Digit) error {
	p := n.CountBits()
	var top, low, dInt, add bignum.Integer
	defer top.Destroy()
	defer low.Destroy()
	defer dInt.Destroy()
	defer add.Destroy()
	dInt.SetDigit(d)
	for {
		if err := bignum.ShrMod(&top, &low, x, p); err != nil {
			return err
		}
		if top.IsZero() {
			break
		}
		if d == 1 {
			add.Copy(&top)
		} else if err := add.Mul(&top, &dInt); err != nil {
			return err
		}
		if err := x.Add(&low, &add); err != nil {
			return err
		}
	}
	for x.CmpMag(n) >= 0 {
		if err := x.Sub(x, n); err != nil {
			return err
		}
	}
	return nil
}

// ReduceIs2kL reports whether n is a diminished-radix modulus of the
// generalized, multi-digit form beta^k - d: true iff at least half of
// n's digits equal Mask.
func ReduceIs2kL(n *bignum.Integer) bool {
	k := n.Used()
	if k < 2 {
		return false
	}
	count := 0
	for i := 0; i < k; i++ {
		if n.Digit(i) == bignum.Mask {
			count++
		}
	}
	return count*2 >= k
}

// Reduce2kSetupL computes d = 2^p - n (p = count_bits(n)) for a
// generalized DR modulus n.
func Reduce2kSetupL(n *bignum.Integer) (*bignum.Integer, error) {
	var full bignum.Integer
	var d bignum.Integer
	defer full.Destroy()
	full.PowerOfTwo(n.CountBits())
	if err := d.Sub(&full, n); err != nil {
		return nil, err
	}
	return &d, nil
}

// Reduce2kL is Reduce2k generalized to a multi-digit d.
func Reduce2kL(x, n, d *bignum.Integer) error {
	p := n.CountBits()
	var top, low, add bignum.Integer
	defer top.Destroy()
	defer low.Destroy()
	defer add.Destroy()
	for {
		if err := bignum.ShrMod(&top, &low, x, p); err != nil {
			return err
		}
		if top.IsZero() {
			break
		}
		if err := add.Mul(&top, d); err != nil {
			return err
		}
		if err := x.Add(&low, &add); err != nil {
			return err
		}
	}
	for x.CmpMag(n) >= 0 {
		if err := x.Sub(x, n); err != nil {
			return err
		}
	}
	return nil
}
