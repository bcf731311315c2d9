package bignum

import (
	"math/big"
	"math/rand"
	"testing"
)

func fromBig(v *big.Int) *Integer {
	z := new(Integer)
	z.SetBigInt(v)
	return z
}

func randomBig(r *rand.Rand, bits int) *big.Int {
	return new(big.Int).Rand(r, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
}

func TestAddSubRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a := randomBig(r, 300)
		b := randomBig(r, 300)
		if a.Cmp(b) < 0 {
			a, b = b, a
		}
		x, y := fromBig(a), fromBig(b)

		var sum Integer
		if err := sum.Add(x, y); err != nil {
			t.Fatalf("Add: %v", err)
		}
		wantSum := new(big.Int).Add(a, b)
		if sum.ToBigInt().Cmp(wantSum) != 0 {
			t.Fatalf("Add mismatch: got %s want %s", sum.ToBigInt(), wantSum)
		}

		var diff Integer
		if err := diff.Sub(x, y); err != nil {
			t.Fatalf("Sub: %v", err)
		}
		wantDiff := new(big.Int).Sub(a, b)
		if diff.ToBigInt().Cmp(wantDiff) != 0 {
			t.Fatalf("Sub mismatch: got %s want %s", diff.ToBigInt(), wantDiff)
		}
	}
}

func TestSubRejectsUnderflow(t *testing.T) {
	var x, y, z Integer
	x.SetDigit(1)
	y.SetDigit(2)
	if err := z.Sub(&x, &y); err == nil {
		t.Fatalf("expected error for x < y")
	}
}

func TestMul(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		a := randomBig(r, 200)
		b := randomBig(r, 200)
		x, y := fromBig(a), fromBig(b)
		var prod Integer
		if err := prod.Mul(x, y); err != nil {
			t.Fatalf("Mul: %v", err)
		}
		want := new(big.Int).Mul(a, b)
		if prod.ToBigInt().Cmp(want) != 0 {
			t.Fatalf("Mul mismatch: got %s want %s", prod.ToBigInt(), want)
		}
	}
}

func TestDivMod(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		a := randomBig(r, 250)
		b := randomBig(r, 120)
		if b.Sign() == 0 {
			continue
		}
		x, y := fromBig(a), fromBig(b)
		var q, rem Integer
		if err := DivMod(&q, &rem, x, y); err != nil {
			t.Fatalf("DivMod: %v", err)
		}
		wantQ, wantR := new(big.Int).QuoRem(a, b, new(big.Int))
		if q.ToBigInt().Cmp(wantQ) != 0 {
			t.Fatalf("quotient mismatch: got %s want %s", q.ToBigInt(), wantQ)
		}
		if rem.ToBigInt().Cmp(wantR) != 0 {
			t.Fatalf("remainder mismatch: got %s want %s", rem.ToBigInt(), wantR)
		}
	}
}

func TestModDigit(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		a := randomBig(r, 300)
		d := Digit(r.Uint64() % uint64(Mask))
		if d == 0 {
			continue
		}
		x := fromBig(a)
		got := x.ModDigit(d)
		want := new(big.Int).Mod(a, new(big.Int).SetUint64(uint64(d))).Uint64()
		if uint64(got) != want {
			t.Fatalf("ModDigit mismatch: got %d want %d", got, want)
		}
	}
}

func TestShifts(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	a := randomBig(r, 400)
	x := fromBig(a)
	x.Shl1()
	want := new(big.Int).Lsh(a, 1)
	if x.ToBigInt().Cmp(want) != 0 {
		t.Fatalf("Shl1 mismatch: got %s want %s", x.ToBigInt(), want)
	}

	y := fromBig(a)
	y.ShlDigit(3)
	want2 := new(big.Int).Lsh(a, uint(3*DigitBits))
	if y.ToBigInt().Cmp(want2) != 0 {
		t.Fatalf("ShlDigit mismatch: got %s want %s", y.ToBigInt(), want2)
	}
	y.ShrDigit(3)
	if y.ToBigInt().Cmp(a) != 0 {
		t.Fatalf("ShrDigit round trip mismatch: got %s want %s", y.ToBigInt(), a)
	}
}

func TestCountBitsAndPowerOfTwo(t *testing.T) {
	var z Integer
	z.PowerOfTwo(137)
	if z.CountBits() != 138 {
		t.Fatalf("CountBits of 2^137: got %d want 138", z.CountBits())
	}
	want := new(big.Int).Lsh(big.NewInt(1), 137)
	if z.ToBigInt().Cmp(want) != 0 {
		t.Fatalf("PowerOfTwo mismatch: got %s want %s", z.ToBigInt(), want)
	}
}

func TestModBitsAndShrMod(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	a := randomBig(r, 400)
	x := fromBig(a)
	for _, bits := range []int{0, 1, 59, 60, 61, 300} {
		var rem Integer
		if err := rem.ModBits(x, bits); err != nil {
			t.Fatalf("ModBits: %v", err)
		}
		want := new(big.Int).And(a, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(bits)), big.NewInt(1)))
		if rem.ToBigInt().Cmp(want) != 0 {
			t.Fatalf("ModBits(%d) mismatch: got %s want %s", bits, rem.ToBigInt(), want)
		}

		var q, r2 Integer
		if err := ShrMod(&q, &r2, x, bits); err != nil {
			t.Fatalf("ShrMod: %v", err)
		}
		wantQ := new(big.Int).Rsh(a, uint(bits))
		if q.ToBigInt().Cmp(wantQ) != 0 {
			t.Fatalf("ShrMod quotient(%d) mismatch: got %s want %s", bits, q.ToBigInt(), wantQ)
		}
		if r2.ToBigInt().Cmp(want) != 0 {
			t.Fatalf("ShrMod remainder(%d) mismatch: got %s want %s", bits, r2.ToBigInt(), want)
		}
	}
}

func TestMulModAndModSelfAliasSafety(t *testing.T) {
	var m Integer
	m.SetDigit(97)
	var a Integer
	a.SetDigit(5)
	var b Integer
	b.SetDigit(5)
	var z Integer
	if err := z.MulMod(&a, &b, &m); err != nil {
		t.Fatalf("MulMod: %v", err)
	}
	if z.ToBigInt().Int64() != 25 {
		t.Fatalf("MulMod(5,5,97) = %s, want 25", z.ToBigInt())
	}

	var x Integer
	x.SetDigit(3)
	if err := x.Add(&x, &a); err != nil {
		t.Fatalf("self-aliased Add: %v", err)
	}
	if x.ToBigInt().Int64() != 8 {
		t.Fatalf("self-aliased Add(3,5) = %s, want 8", x.ToBigInt())
	}
}

func TestMulLowMulHigh(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	a := randomBig(r, 300)
	b := randomBig(r, 300)
	x, y := fromBig(a), fromBig(b)
	full := new(big.Int).Mul(a, b)

	const k = 3
	var low Integer
	if err := low.MulLow(x, y, k); err != nil {
		t.Fatalf("MulLow: %v", err)
	}
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(k*DigitBits)), big.NewInt(1))
	wantLow := new(big.Int).And(full, mask)
	if low.ToBigInt().Cmp(wantLow) != 0 {
		t.Fatalf("MulLow mismatch: got %s want %s", low.ToBigInt(), wantLow)
	}

	var high Integer
	if err := high.MulHigh(x, y, k); err != nil {
		t.Fatalf("MulHigh: %v", err)
	}
	wantHigh := new(big.Int).Rsh(full, uint(k*DigitBits))
	if high.ToBigInt().Cmp(wantHigh) != 0 {
		t.Fatalf("MulHigh mismatch: got %s want %s", high.ToBigInt(), wantHigh)
	}
}
