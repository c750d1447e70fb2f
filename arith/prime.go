package arith

import "math/big"

// IsPrime reports whether n is prime by trial division with every odd
// integer from 3 up to floor(sqrt(n)) inclusive. The test is fully
// deterministic, with no probabilistic shortcuts, at a cost of
// O(sqrt(n)) divisions; it is only suitable for the bit lengths this
// toolkit targets.
func IsPrime(n *big.Int) bool {
	if n.Cmp(two) <= 0 {
		return n.Cmp(two) == 0
	}
	if n.Bit(0) == 0 {
		return false
	}
	limit := IntegerSqrt(n)
	rem := new(big.Int)
	for d := big.NewInt(3); d.Cmp(limit) <= 0; d.Add(d, two) {
		if rem.Mod(n, d).Sign() == 0 {
			return false
		}
	}
	return true
}
