package reduce

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/modcore/bignum"
)

func TestBarrettReduce(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	for i := 0; i < 50; i++ {
		nBig := oddModulus(r, 160)
		n := fromBig(nBig)
		mu, err := ReduceSetup(n)
		if err != nil {
			t.Fatalf("ReduceSetup: %v", err)
		}

		aBig := new(big.Int).Mod(new(big.Int).Rand(r, nBig), nBig)
		bBig := new(big.Int).Mod(new(big.Int).Rand(r, nBig), nBig)
		xBig := new(big.Int).Mul(aBig, bBig)
		x := fromBig(xBig)

		var z bignum.Integer
		if err := Reduce(&z, x, n, mu); err != nil {
			t.Fatalf("Reduce: %v", err)
		}
		want := new(big.Int).Mod(xBig, nBig)
		if z.ToBigInt().Cmp(want) != 0 {
			t.Fatalf("Barrett Reduce mismatch: got %s want %s (x=%s n=%s)", z.ToBigInt(), want, xBig, nBig)
		}
	}
}
