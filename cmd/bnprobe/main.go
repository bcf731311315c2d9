// Command bnprobe is a small command-line consumer of the bignum
// reduction and primality packages: it runs an RSA-style modular
// exponentiation and a Rabin-Miller probable-primality check against
// numbers given on the command line, giving the core a real caller
// outside its own test suite.
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/modcore/bignum"
	"github.com/modcore/bignum/modexp"
	"github.com/modcore/bignum/primality"
)

func main() {
	base := flag.String("base", "", "base for modular exponentiation (decimal)")
	exp := flag.String("exp", "", "exponent for modular exponentiation (decimal)")
	mod := flag.String("mod", "", "modulus for modular exponentiation (decimal)")
	fast := flag.Bool("fast", true, "use the Montgomery-backed engine instead of Barrett")
	flag.Parse()

	if *base != "" || *exp != "" || *mod != "" {
		if *base == "" || *exp == "" || *mod == "" {
			fmt.Fprintln(os.Stderr, "bnprobe: -base, -exp and -mod must all be given together")
			os.Exit(1)
		}
		if err := runExponentiation(*base, *exp, *mod, *fast); err != nil {
			fmt.Fprintln(os.Stderr, "bnprobe: modexp:", err)
			os.Exit(1)
		}
	}

	for _, arg := range flag.Args() {
		if err := runPrimalityCheck(arg); err != nil {
			fmt.Fprintln(os.Stderr, "bnprobe: primality:", err)
			os.Exit(1)
		}
	}

	if *base == "" && len(flag.Args()) == 0 {
		fmt.Fprintln(os.Stderr, "usage: bnprobe [-base B -exp E -mod M] [-fast=true|false] CANDIDATE...")
		os.Exit(2)
	}
}

func parseDecimal(s string) (*bignum.Integer, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%q is not a nonnegative decimal integer", s)
	}
	var z bignum.Integer
	z.SetBigInt(v)
	return &z, nil
}

func runExponentiation(baseStr, expStr, modStr string, fast bool) error {
	base, err := parseDecimal(baseStr)
	if err != nil {
		return err
	}
	exp, err := parseDecimal(expStr)
	if err != nil {
		return err
	}
	mod, err := parseDecimal(modStr)
	if err != nil {
		return err
	}

	var res bignum.Integer
	defer res.Destroy()
	if fast {
		err = modexp.ExponentModFast(&res, base, exp, mod, 0)
	} else {
		err = modexp.ExponentMod(&res, base, exp, mod, 0)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s^%s mod %s = %s\n", baseStr, expStr, modStr, res.ToBigInt().String())
	return nil
}

func runPrimalityCheck(candidate string) error {
	n, err := parseDecimal(candidate)
	if err != nil {
		return err
	}
	probablyPrime, err := primality.IsProbablePrime(n)
	if err != nil {
		return err
	}
	if probablyPrime {
		fmt.Printf("%s: probably prime\n", candidate)
	} else {
		fmt.Printf("%s: composite\n", candidate)
	}
	return nil
}
