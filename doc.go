// Package bignum implements the multi-precision integer representation
// consumed by the reduction and modular-exponentiation packages in this
// module (sibling packages reduce, modexp, primality).
//
// An Integer is an unsigned magnitude in radix beta = 2^DigitBits, stored
// little-endian (digit[0] is least significant). This core is sign-less:
// callers are responsible for ensuring operands are nonnegative, exactly
// as for the original library this was split out of.
package bignum
