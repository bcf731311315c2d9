package primality

import (
	"math/rand"

	"github.com/modcore/bignum"
	"github.com/modcore/bignum/modexp"
	"github.com/modcore/bignum/reduce"
)

// deterministicWitnesses are the first twelve primes, used as fixed bases
// when NumberOfRabinMillerTrials signals the -1 sentinel (bit sizes up to
// 80). Each base gets one millerRabinRound, a single a^(n-1) check, so
// passing all of them is not a proof of primality: a Carmichael number
// coprime to every base passes.
var deterministicWitnesses = []bignum.Digit{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsProbablePrime reports whether n is probably prime: it first
// trial-divides n against the small-prime table, then runs Rabin-Miller
// rounds chosen by NumberOfRabinMillerTrials (or the deterministic
// witness set below the table's -1 sentinel threshold). The reduction
// mode for the witness exponentiations is chosen by classifying n with
// reduce.ReduceIs2k (ExponentModFast, redmode=2) and reduce.ReduceIs2kL
// (ExponentMod, redmode=1), falling back to Montgomery reduction
// (ExponentModFast, redmode=0) when neither classification applies.
//
// The verdict is a probable-primality result in the Rabin-Miller sense;
// it is never a primality certificate.
func IsProbablePrime(n *bignum.Integer) (bool, error) {
	if n.Used() == 0 {
		return false, nil
	}
	if n.Used() == 1 && n.Digit(0) < 2 {
		return false, nil
	}
	if n.Used() == 1 {
		for _, p := range smallPrimes {
			if n.Digit(0) == p {
				return true, nil
			}
		}
	}

	var two bignum.Integer
	defer two.Destroy()
	two.SetDigit(2)
	if n.ModDigit(2) == 0 {
		return n.CmpMag(&two) == 0, nil
	}

	if PrimeIsDivisible(n) {
		return false, nil
	}

	redmode := 0
	if reduce.ReduceIs2k(n) {
		redmode = 2
	} else if reduce.ReduceIs2kL(n) {
		redmode = 1
	}
	// ExponentModFast's redmode=1 (multi-digit diminished-radix) is not
	// implemented; for that classification use ExponentMod with redmode=1
	// (Reduce2kSetupL/Reduce2kL) instead of failing the whole primality
	// check.
	useFastPath := redmode != 1

	var one bignum.Integer
	defer one.Destroy()
	one.One()
	var nMinus1 bignum.Integer
	defer nMinus1.Destroy()
	if err := nMinus1.Sub(n, &one); err != nil {
		return false, err
	}

	trials := NumberOfRabinMillerTrials(n.CountBits())
	witnesses, randomCount := witnessPlan(trials)

	for i := 0; i < randomCount; i++ {
		var a bignum.Integer
		if err := randomWitness(&a, n); err != nil {
			a.Destroy()
			return false, err
		}
		ok, err := millerRabinRound(&a, n, &nMinus1, redmode, useFastPath)
		a.Destroy()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	for _, w := range witnesses {
		var a bignum.Integer
		a.SetDigit(w)
		if a.CmpMag(n) >= 0 {
			a.Destroy()
			continue
		}
		ok, err := millerRabinRound(&a, n, &nMinus1, redmode, useFastPath)
		a.Destroy()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// witnessPlan decides whether to use the fixed deterministic witness
// set (trials == -1) or `trials` random witnesses.
func witnessPlan(trials int) (fixed []bignum.Digit, randomCount int) {
	if trials < 0 {
		return deterministicWitnesses, 0
	}
	return nil, trials
}

// randomWitness picks a uniform random base a in [2, n-2].
func randomWitness(a, n *bignum.Integer) error {
	bits := n.CountBits()
	if bits <= 2 {
		a.SetDigit(2)
		return nil
	}
	var one, two, nMinus2 bignum.Integer
	defer one.Destroy()
	defer two.Destroy()
	defer nMinus2.Destroy()
	one.One()
	two.SetDigit(2)
	if err := nMinus2.Sub(n, &two); err != nil {
		return err
	}
	for {
		a.Zero()
		for i := bits - 1; i >= 0; i-- {
			a.Shl1()
			if rand.Intn(2) == 1 {
				if err := a.Add(a, &one); err != nil {
					return err
				}
			}
		}
		if a.CmpMag(&two) >= 0 && a.CmpMag(&nMinus2) <= 0 {
			return nil
		}
	}
}

// millerRabinRound runs a single Rabin-Miller witness test: a^(n-1) mod
// n computed via the modular-exponentiation engine selected by redmode.
// A result other than 1 is treated as a composite verdict; this core
// implements the single-exponentiation variant (no d*2^s decomposition
// refinement), matching the exponentiation engines this package has
// available.
func millerRabinRound(a, n, nMinus1 *bignum.Integer, redmode int, useFastPath bool) (bool, error) {
	var result bignum.Integer
	defer result.Destroy()
	var err error
	if useFastPath {
		err = modexp.ExponentModFast(&result, a, nMinus1, n, redmode)
	} else {
		err = modexp.ExponentMod(&result, a, nMinus1, n, 1)
	}
	if err != nil {
		return false, err
	}
	var one bignum.Integer
	defer one.Destroy()
	one.One()
	return result.CmpMag(&one) == 0, nil
}
