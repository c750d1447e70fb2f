package arith

import "math/big"

// IntegerSqrt returns floor(sqrt(n)) computed by Newton's method
// started at x0 = n: x_{k+1} = (x_k + n/x_k) / 2, stopping as soon as
// an iterate stops decreasing. The iterate count is proportional to
// the bit length of n. Returns 0 for n == 0 and panics for negative n,
// matching the contract of (*big.Int).Sqrt.
func IntegerSqrt(n *big.Int) *big.Int {
	if n.Sign() < 0 {
		panic("arith: IntegerSqrt of negative number")
	}
	if n.Sign() == 0 {
		return new(big.Int)
	}
	x := new(big.Int).Set(n)
	t := new(big.Int)
	for {
		t.Quo(n, x)
		t.Add(t, x)
		t.Rsh(t, 1)
		if t.Cmp(x) >= 0 {
			return x
		}
		x.Set(t)
	}
}
