package primality

import "github.com/modcore/bignum"

// smallPrimes holds the first 256 odd primes, computed once at package
// init by straightforward trial division rather than transcribed
// literally: 256 is the conventional table size production bignum
// libraries use for this screening step, large enough to reject most
// composites outright before any modular exponentiation runs.
var smallPrimes = computeSmallPrimes(256)

func computeSmallPrimes(count int) []bignum.Digit {
	primes := make([]bignum.Digit, 0, count)
	candidate := bignum.Digit(3)
	for len(primes) < count {
		isPrime := true
		for _, p := range primes {
			if p*p > candidate {
				break
			}
			if candidate%p == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			primes = append(primes, candidate)
		}
		candidate += 2
	}
	return primes
}

// PrimeIsDivisible reports whether any prime in the static small-prime
// table divides a, computed via the external single-digit modulus
// operation. A candidate equal to one of the table's own primes is not
// considered divisible by it. It returns false once the table is
// exhausted without a match.
func PrimeIsDivisible(a *bignum.Integer) bool {
	for _, p := range smallPrimes {
		if a.Used() == 1 && a.Digit(0) == p {
			continue
		}
		if a.ModDigit(p) == 0 {
			return true
		}
	}
	return false
}
