package factor

import (
	"context"
	"math/big"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/yyl-20020115/ShorAlgorithm/arith"
)

// GetCycle searches for an exponent r >= 1 with a^r ≡ 1 (mod n). A nil
// a means "sample a random odd base first".
//
// The scan is spread across s.Workers goroutines pulling exponents
// from a shared counter; the first match is delivered over a one-slot
// channel and cancels the rest. Cancellation is best-effort: a worker
// already inside a modular exponentiation finishes it before observing
// the signal, so under concurrent scheduling the result is *a* period
// of a modulo n, not necessarily the smallest one. Callers that need
// the true minimal order must set Workers to 1, which scans
// sequentially from 1.
//
// An order exists whenever gcd(a, n) = 1. There is no failure path:
// for non-coprime inputs the search does not return.
func (s *Searcher) GetCycle(a, n *big.Int) *big.Int {
	if a == nil {
		a = s.sampleBase(n)
	}
	workers := s.workers()
	if workers == 1 {
		return minCycle(a, n)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	var next atomic.Int64
	found := make(chan int64, 1) // first writer wins, later sends are dropped
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			e := new(big.Int)
			for {
				select {
				case <-ctx.Done():
					return nil
				default:
				}
				i := next.Add(1)
				e.SetInt64(i)
				if arith.ModPow(a, e, n).Cmp(one) == 0 {
					select {
					case found <- i:
					default:
					}
					cancel()
					return nil
				}
			}
		})
	}
	_ = g.Wait() // workers only ever return nil
	return big.NewInt(<-found)
}

// minCycle is the sequential scan: the least i >= 1 with
// a^i ≡ 1 (mod n), found by incremental multiplication.
func minCycle(a, n *big.Int) *big.Int {
	acc := new(big.Int).Mod(a, n)
	i := big.NewInt(1)
	for acc.Cmp(one) != 0 {
		acc.Mul(acc, a)
		acc.Mod(acc, n)
		i.Add(i, one)
	}
	return i
}
