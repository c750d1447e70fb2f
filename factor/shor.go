package factor

import (
	"math/big"

	"github.com/yyl-20020115/ShorAlgorithm/arith"
)

// ShorFactor hunts for a nontrivial factor of n with the classical
// post-processing step of Shor's algorithm: pick a base a, obtain its
// multiplicative order r modulo n, and test gcd(a^(r/2) ± 1, n).
//
// When exactOrder is true the first r of each round comes from the
// full order search (GetCycle); otherwise r is the cheap proxy
// a^j mod n, where j walks the even numbers from 2. Either way every
// later inner iteration recomputes the proxy. A round is abandoned and
// the base resampled when the base degenerates into a multiple of n or
// the recomputed residue turns negative; a gcd(a, n) that is neither 1
// nor n is itself a factor and is returned directly.
//
// Every unsuccessful inner iteration consumes one unit of the retry
// budget, shared across all rounds. The return is (factor, true) on
// success and (nil, false) once the budget is exhausted; a budget that
// is already non-positive on entry returns exhaustion without any
// search at all. A nil or zero a means "sample one".
//
// Even n is not special-cased here: a factor of 2 can only surface
// through a GCD hit, so callers are expected to strip 2 beforehand
// (GetFactor does).
func (s *Searcher) ShorFactor(n, a *big.Int, retries int, exactOrder bool) (*big.Int, bool) {
	if retries <= 0 {
		return nil, false
	}
	if a == nil || a.Sign() == 0 {
		a = s.sampleBase(n)
	} else {
		a = new(big.Int).Set(a) // the inner loop mutates its base
	}

rounds:
	for {
		j := big.NewInt(2)
		var r *big.Int
		if exactOrder {
			// A base sharing a factor with n would make the order
			// search non-terminating, so the gcd branches run
			// before GetCycle rather than after.
			switch g := new(big.Int).GCD(nil, nil, a, n); {
			case g.Cmp(n) == 0:
				a = s.sampleBase(n)
				continue rounds
			case g.Cmp(one) != 0:
				return g, true
			}
			r = s.GetCycle(a, n)
		} else {
			r = arith.ModPow(a, j, n)
		}

		for {
			g := new(big.Int).GCD(nil, nil, a, n)
			if g.Cmp(n) == 0 {
				// the base degenerated into a multiple of n
				a = s.sampleBase(n)
				continue rounds
			}
			if g.Cmp(one) != 0 {
				return g, true
			}

			half := new(big.Int).Rsh(r, 1)
			t1 := arith.ModPow(a, half, n)
			t1.Add(t1, one)
			t2 := new(big.Int).Sub(t1, two)
			if d := new(big.Int).GCD(nil, nil, t1, n); nontrivial(d, n) {
				return d, true
			}
			if d := new(big.Int).GCD(nil, nil, t2, n); nontrivial(d, n) {
				return d, true
			}

			a.Add(a, one)
			retries--
			if retries <= 0 {
				return nil, false
			}

			j.Add(j, two)
			r = arith.ModPow(a, j, n)
			if r.Sign() < 0 {
				// unreachable for positive moduli, but a negative
				// residue would poison the half-exponent step
				a = s.sampleBase(n)
				continue rounds
			}
		}
	}
}
