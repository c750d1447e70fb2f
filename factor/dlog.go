package factor

import (
	"math/big"

	"github.com/yyl-20020115/ShorAlgorithm/arith"
)

// GetFactor is the brute-force discrete-log factoring heuristic. An
// even n is factored by 2 immediately. Otherwise each of retries
// rounds samples a fresh odd base a > 1 and scans multipliers
// k = 1..kmax; for every m obtained by halving IntegerSqrt(k*n) down
// to 1 it derives a step count from Log(a, k*n - m^2) and tests
// gcd(a^s - m, n) and gcd(a^s + m, n) with s = count/2. Combinations
// whose remainder is nonzero with an even count are skipped. The
// powers a^s are unreduced integers, not residues.
//
// The return is (candidate, true) on a nontrivial GCD hit and
// (nil, false) on exhaustion. The number-theoretic derivation behind
// t1/t2 is heuristic and unverified; returned values are candidate
// factors only, and callers needing certainty must check
// n mod candidate == 0 themselves.
func (s *Searcher) GetFactor(n *big.Int, kmax, retries int) (*big.Int, bool) {
	if n.Bit(0) == 0 {
		return big.NewInt(2), true
	}

	kn := new(big.Int)
	msq := new(big.Int)
	res := new(big.Int)
	for round := 0; round < retries; round++ {
		a := s.sampleBase(n)
		for k := int64(1); k <= int64(kmax); k++ {
			kn.Mul(n, big.NewInt(k))
			for m := arith.IntegerSqrt(kn); m.Sign() > 0; m.Rsh(m, 1) {
				msq.Mul(m, m)
				res.Sub(kn, msq)
				c, rem := arith.Log(a, res)
				if rem.Sign() != 0 && c.Bit(0) == 0 {
					continue
				}
				p := arith.Pow(a, new(big.Int).Rsh(c, 1))
				t1 := new(big.Int).Sub(p, m)
				t2 := new(big.Int).Add(p, m)
				if d := new(big.Int).GCD(nil, nil, t1, n); nontrivial(d, n) {
					return d, true
				}
				if d := new(big.Int).GCD(nil, nil, t2, n); nontrivial(d, n) {
					return d, true
				}
			}
		}
	}
	return nil, false
}
