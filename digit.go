package bignum

// Digit is a single base-beta limb of an Integer. Only the low DigitBits
// bits are ever significant; callers must not rely on the high bits.
type Digit = uint64

const (
	// DigitBits is the number of bits per limb. This module targets the
	// 60-bit digit configuration used on 64-bit platforms (the teacher
	// library also supports a 28-bit configuration for 32-bit targets;
	// we only need one for this core and 60 bits lets Mul/Comba carries
	// stay comfortably inside a uint64 pair).
	DigitBits = 60

	// Mask isolates the significant bits of a Digit; beta = Mask+1.
	Mask Digit = (1 << DigitBits) - 1

	// DigitMax is the largest value a single digit can hold.
	DigitMax = Mask

	// WArray is the Comba column limit. No code in this module reads it.
	WArray = 256

	// MaxComba is the largest modulus digit-count (n.used) permitting a
	// Comba reduction. MontgomeryReduce has a single reduction loop with
	// no separate Comba path, so no code in this module reads it.
	MaxComba = 32

	// MaxWinSize caps the sliding-window size used by the modular
	// exponentiation engines; 0 would disable the cap, but this module
	// fixes it at the table's own maximum (see modexp.windowSize).
	MaxWinSize = 8

	// TabSize is the number of slots in the exponentiation engines'
	// power table; it must be at least 1<<MaxWinSize.
	TabSize = 1 << MaxWinSize
)
