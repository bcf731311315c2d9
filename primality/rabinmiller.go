// Package primality implements the Rabin-Miller trial-count policy,
// static small-prime trial-division screening, and a probable-primality
// driver wiring both together with the modexp engines.
package primality

// NumberOfRabinMillerTrials returns the number of Rabin-Miller rounds
// recommended for a candidate of the given bit size, per the fixed
// table. It returns -1 for bitSize <= 80, signaling that callers should
// fall back to a deterministic witness set instead of a probabilistic
// trial count.
func NumberOfRabinMillerTrials(bitSize int) int {
	switch {
	case bitSize <= 80:
		return -1
	case bitSize <= 95:
		return 37
	case bitSize <= 127:
		return 32
	case bitSize <= 159:
		return 40
	case bitSize <= 255:
		return 35
	case bitSize <= 383:
		return 27
	case bitSize <= 511:
		return 16
	case bitSize <= 767:
		return 18
	case bitSize <= 895:
		return 11
	case bitSize <= 1023:
		return 10
	case bitSize <= 1535:
		return 12
	case bitSize <= 2047:
		return 8
	case bitSize <= 3071:
		return 6
	case bitSize <= 4095:
		return 4
	case bitSize <= 5119:
		return 5
	case bitSize <= 6143:
		return 4
	case bitSize <= 8191:
		return 4
	case bitSize <= 10239:
		return 3
	default:
		return 2
	}
}
