// Package modexp implements the two sliding-window modular exponentiation
// engines shared by RSA-style modular arithmetic and primality testing:
// ExponentMod (Barrett/2^k-d backed) and ExponentModFast (Montgomery/2^k-d
// backed). Both share window-size selection and the left-to-right scan
// state machine; they differ only in which reduce package primitives they
// bind at entry.
package modexp

import (
	"github.com/modcore/bignum"
	"github.com/modcore/bignum/bnerrors"
	"github.com/modcore/bignum/reduce"
)

// windowSize picks the sliding-window width from the exponent's bit
// length, per the fixed table; maxWinSize caps the result when positive
// (0 disables the cap).
func windowSize(bits int, maxWinSize int) int {
	var w int
	switch {
	case bits <= 7:
		w = 2
	case bits <= 36:
		w = 3
	case bits <= 140:
		w = 4
	case bits <= 450:
		w = 5
	case bits <= 1303:
		w = 6
	case bits <= 3529:
		w = 7
	default:
		w = 8
	}
	if maxWinSize > 0 && w > maxWinSize {
		w = maxWinSize
	}
	return w
}

// reducer reduces x in place, modulo whatever modulus it was bound
// against at setup time.
type reducer func(x *bignum.Integer) error

// scanState is the left-to-right exponent scanner's mode, encoded as a
// tagged type rather than a bare int so the three transitions are
// checkable at the type level.
type scanState int

const (
	stateLeadingZeros scanState = iota
	stateSquaring
	stateAccumulating
)

// bitAt returns the b'th bit (0 = least significant) of X, scanning
// conceptually top-down digit by digit; out-of-range bits are 0.
func bitAt(X *bignum.Integer, b int) int {
	if b < 0 {
		return 0
	}
	d := b / bignum.DigitBits
	if d >= X.Used() {
		return 0
	}
	return int((X.Digit(d) >> uint(b%bignum.DigitBits)) & 1)
}

func squareReduce(res *bignum.Integer, reduceFn reducer) error {
	if err := res.Sqr(res); err != nil {
		return err
	}
	return reduceFn(res)
}

func mulReduce(res, m *bignum.Integer, reduceFn reducer) error {
	if err := res.Mul(res, m); err != nil {
		return err
	}
	return reduceFn(res)
}

// buildTable populates M[2^(winsize-1)..2^winsize) from M[1], which the
// caller must have already set. The lower half (besides index 1) is
// never materialized, matching the spec's table layout.
func buildTable(M []bignum.Integer, winsize int, reduceFn reducer) error {
	half := 1 << uint(winsize-1)
	capacity := M[1].Cap()
	if err := M[half].Grow(capacity); err != nil {
		return err
	}
	M[half].Copy(&M[1])
	for i := 0; i < winsize-1; i++ {
		if err := squareReduce(&M[half], reduceFn); err != nil {
			return err
		}
	}
	top := 1 << uint(winsize)
	for x := half + 1; x < top; x++ {
		if err := M[x].Grow(capacity); err != nil {
			return err
		}
		M[x].Copy(&M[x-1])
		if err := mulReduce(&M[x], &M[1], reduceFn); err != nil {
			return err
		}
	}
	return nil
}

func destroyTable(M []bignum.Integer, winsize int) {
	half := 1 << uint(winsize-1)
	top := 1 << uint(winsize)
	M[1].Destroy()
	for x := half; x < top; x++ {
		M[x].Destroy()
	}
}

// scan runs the left-to-right windowed scanner over X's bits, squaring
// and multiplying res by the precomputed table as described in
// spec.md section 4.6, then applies the tail for any leftover partial
// window once the exponent is exhausted.
func scan(res *bignum.Integer, X *bignum.Integer, winsize int, M []bignum.Integer, reduceFn reducer) error {
	state := stateLeadingZeros
	bitbuf := 0
	bitcpy := 0

	totalBits := X.Used() * bignum.DigitBits
	for i := totalBits - 1; i >= 0; i-- {
		bit := bitAt(X, i)
		switch state {
		case stateLeadingZeros:
			if bit == 1 {
				state = stateAccumulating
				bitbuf = 1 << uint(winsize-1)
				bitcpy = 1
			}
		case stateSquaring:
			if bit == 0 {
				if err := squareReduce(res, reduceFn); err != nil {
					return err
				}
			} else {
				state = stateAccumulating
				bitbuf = 1 << uint(winsize-1)
				bitcpy = 1
			}
		case stateAccumulating:
			bitcpy++
			bitbuf |= bit << uint(winsize-bitcpy)
			if bitcpy == winsize {
				for s := 0; s < winsize; s++ {
					if err := squareReduce(res, reduceFn); err != nil {
						return err
					}
				}
				if err := mulReduce(res, &M[bitbuf], reduceFn); err != nil {
					return err
				}
				bitcpy = 0
				bitbuf = 0
				state = stateSquaring
			}
		}
	}

	if state == stateAccumulating && bitcpy > 0 {
		for i := 0; i < bitcpy; i++ {
			if err := squareReduce(res, reduceFn); err != nil {
				return err
			}
			bitbuf <<= 1
			if bitbuf&(1<<uint(winsize)) != 0 {
				if err := mulReduce(res, &M[1], reduceFn); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// ExponentMod computes res = G^X mod P using the Barrett (redmode=0) or
// generalized 2^k-d (redmode != 0) reduction backend.
func ExponentMod(res, G, X, P *bignum.Integer, redmode int) error {
	var reduceFn reducer
	switch redmode {
	case 0:
		mu, err := reduce.ReduceSetup(P)
		if err != nil {
			return err
		}
		reduceFn = func(x *bignum.Integer) error {
			var tmp bignum.Integer
			defer tmp.Destroy()
			if err := reduce.Reduce(&tmp, x, P, mu); err != nil {
				return err
			}
			x.Copy(&tmp)
			return nil
		}
	default:
		d, err := reduce.Reduce2kSetupL(P)
		if err != nil {
			return err
		}
		reduceFn = func(x *bignum.Integer) error {
			return reduce.Reduce2kL(x, P, d)
		}
	}

	winsize := windowSize(X.CountBits(), bignum.MaxWinSize)
	if winsize > 63 {
		winsize = 63
	}
	M := make([]bignum.Integer, 1<<uint(winsize))
	defer destroyTable(M, winsize)

	if err := M[1].Grow(P.Cap()); err != nil {
		return err
	}
	if err := M[1].Mod(G, P); err != nil {
		return err
	}
	res.One()

	if err := buildTable(M, winsize, reduceFn); err != nil {
		return err
	}
	return scan(res, X, winsize, M, reduceFn)
}

// ExponentModFast computes res = G^X mod P using the Montgomery
// (redmode=0) or diminished-radix (redmode=2) reduction backend.
// redmode=1 (multi-digit diminished-radix fast path) is not implemented.
func ExponentModFast(res, G, X, P *bignum.Integer, redmode int) error {
	var reduceFn reducer
	isMontgomery := false

	switch redmode {
	case 0:
		isMontgomery = true
		rho, err := reduce.MontgomerySetup(P)
		if err != nil {
			return err
		}
		reduceFn = func(x *bignum.Integer) error {
			return reduce.MontgomeryReduce(x, P, rho)
		}
	case 1:
		return bnerrors.WithData(bnerrors.ErrUnimplemented, map[string]any{"redmode": redmode})
	case 2:
		d, err := reduce.Reduce2kSetup(P)
		if err != nil {
			return err
		}
		reduceFn = func(x *bignum.Integer) error {
			return reduce.Reduce2k(x, P, d)
		}
	default:
		return bnerrors.WithData(bnerrors.ErrInvalidArgument, map[string]any{"redmode": redmode})
	}

	winsize := windowSize(X.CountBits(), bignum.MaxWinSize)
	if winsize > 63 {
		winsize = 63
	}
	M := make([]bignum.Integer, 1<<uint(winsize))
	defer destroyTable(M, winsize)

	if err := M[1].Grow(P.Cap()); err != nil {
		return err
	}

	if isMontgomery {
		if err := reduce.MontgomeryCalcNormalization(res, P); err != nil {
			return err
		}
		var prod bignum.Integer
		defer prod.Destroy()
		if err := prod.Mul(G, res); err != nil {
			return err
		}
		if err := M[1].Mod(&prod, P); err != nil {
			return err
		}
	} else {
		if err := M[1].Mod(G, P); err != nil {
			return err
		}
		res.One()
	}

	if err := buildTable(M, winsize, reduceFn); err != nil {
		return err
	}
	if err := scan(res, X, winsize, M, reduceFn); err != nil {
		return err
	}

	if isMontgomery {
		if err := reduceFn(res); err != nil {
			return err
		}
	}
	return nil
}
