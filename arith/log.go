package arith

import "math/big"

// Log multiplies an accumulator starting at 1 by a, counting steps,
// until it reaches or exceeds n, and returns the step count together
// with n minus the final accumulator. The remainder is zero exactly
// when n is a power of a, and negative when the accumulator overshot.
// If a > n the search is skipped and (0, n) is returned.
//
// This is not a discrete logarithm; it exists solely to feed the
// discrete-log factoring heuristic. The loop does not terminate for
// a <= 1, so callers must guarantee a > 1.
func Log(a, n *big.Int) (count, rem *big.Int) {
	count = new(big.Int)
	if a.Cmp(n) > 0 {
		return count, new(big.Int).Set(n)
	}
	acc := big.NewInt(1)
	for acc.Cmp(n) < 0 {
		acc.Mul(acc, a)
		count.Add(count, one)
	}
	return count, new(big.Int).Sub(n, acc)
}
