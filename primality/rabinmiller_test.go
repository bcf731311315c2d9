package primality

import (
	"testing"

	"github.com/modcore/bignum/internal/testutils"
)

func TestNumberOfRabinMillerTrialsBoundaries(t *testing.T) {
	cases := []struct {
		bits int
		want int
	}{
		{0, -1}, {80, -1}, {81, 37}, {95, 37}, {96, 32}, {127, 32},
		{128, 40}, {159, 40}, {160, 35}, {255, 35}, {256, 27}, {383, 27},
		{384, 16}, {511, 16}, {512, 18}, {767, 18}, {768, 11}, {895, 11},
		{896, 10}, {1023, 10}, {1024, 12}, {1535, 12}, {1536, 8}, {2047, 8},
		{2048, 6}, {3071, 6}, {3072, 4}, {4095, 4}, {4096, 5}, {5119, 5},
		{5120, 4}, {6143, 4}, {6144, 4}, {8191, 4}, {8192, 3}, {10239, 3},
		{10240, 2}, {20000, 2},
	}
	for _, c := range cases {
		got := NumberOfRabinMillerTrials(c.bits)
		testutils.FatalUnless(t, got == c.want, "NumberOfRabinMillerTrials(%d) = %d, want %d", c.bits, got, c.want)
	}
}
