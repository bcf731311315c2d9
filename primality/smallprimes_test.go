package primality

import (
	"math/big"
	"testing"

	"github.com/modcore/bignum"
)

func fromInt64(v int64) *bignum.Integer {
	z := new(bignum.Integer)
	z.SetBigInt(big.NewInt(v))
	return z
}

func fromBig(v *big.Int) *bignum.Integer {
	z := new(bignum.Integer)
	z.SetBigInt(v)
	return z
}

func TestPrimeIsDivisible(t *testing.T) {
	if !PrimeIsDivisible(fromInt64(15)) {
		t.Fatalf("15 = 3*5 should be flagged divisible by the small-prime table")
	}
	// 1024 = 2^10 has no odd prime factor, and the table holds odd primes
	// only, so it must not be flagged.
	if PrimeIsDivisible(fromInt64(1024)) {
		t.Fatalf("1024 has no odd prime factor; should not be flagged divisible")
	}
	// 1000003 is prime and well above the table's largest entry (1621),
	// so trial division against the table must not find a factor.
	if PrimeIsDivisible(fromInt64(1000003)) {
		t.Fatalf("1000003 is prime; should not be flagged divisible")
	}
}

func TestPrimeIsDivisibleExcludesTableMembersFromSelf(t *testing.T) {
	// Every prime in the table must not be reported as divisible by
	// itself: the table holds the first 256 odd primes starting at 3.
	for _, p := range []int64{3, 5, 7, 11, 97, 1619, 1621} {
		if PrimeIsDivisible(fromInt64(p)) {
			t.Fatalf("%d is itself prime; should not self-report as divisible", p)
		}
	}
}
