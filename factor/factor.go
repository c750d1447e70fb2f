// Package factor implements two classical factor-search heuristics
// modelled on the post-processing step of Shor's algorithm: an
// order-finding search (GetCycle feeding ShorFactor) and a brute-force
// discrete-log variant (GetFactor). Neither simulates quantum period
// finding; both substitute classical search for the quantum subroutine
// and are experimental tools, not a production factoring engine.
package factor

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"runtime"

	"github.com/yyl-20020115/ShorAlgorithm/arith"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Searcher bundles the tunables shared by the factor searches. The
// zero value samples from crypto/rand and uses one order-finder worker
// per available CPU, so `var s Searcher` is ready to use.
type Searcher struct {
	// Rand supplies the random bytes used to (re)sample bases.
	// nil means crypto/rand.Reader. Any reader works; a
	// deterministic stream makes whole searches reproducible.
	Rand io.Reader

	// Workers is the number of goroutines GetCycle spreads its
	// exponent scan across. Values <= 0 mean runtime.GOMAXPROCS(0).
	// With Workers == 1 the scan is sequential and the returned
	// order is the true minimum.
	Workers int
}

func (s *Searcher) rand() io.Reader {
	if s.Rand != nil {
		return s.Rand
	}
	return rand.Reader
}

func (s *Searcher) workers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// sampleBase draws a random odd base with the same byte length as n.
// Draws of 0 or 1 are useless to every caller and are retried.
func (s *Searcher) sampleBase(n *big.Int) *big.Int {
	size := (n.BitLen() + 7) / 8
	if size == 0 {
		size = 1
	}
	for {
		a, err := arith.RandomOddPositive(size, s.rand())
		if err != nil {
			panic(fmt.Sprintf("factor: sample base: %v", err))
		}
		if a.Cmp(one) > 0 {
			return a
		}
	}
}

// nontrivial reports whether d is a factor of interest: neither 1 nor
// n itself.
func nontrivial(d, n *big.Int) bool {
	return d.Cmp(one) != 0 && d.Cmp(n) != 0
}

// defaultSearcher backs the package-level convenience wrappers.
var defaultSearcher Searcher

// GetCycle runs the order search with the default searcher.
func GetCycle(a, n *big.Int) *big.Int { return defaultSearcher.GetCycle(a, n) }

// ShorFactor runs the order-finding factor search with the default
// searcher. It keeps the historical caller contract: the return value
// is a nontrivial factor of n on success, or n itself once the retry
// budget is exhausted, so callers distinguish the two by comparing
// against n.
func ShorFactor(n, a *big.Int, retries int, exactOrder bool) *big.Int {
	if f, ok := defaultSearcher.ShorFactor(n, a, retries, exactOrder); ok {
		return f
	}
	return new(big.Int).Set(n)
}

// GetFactor runs the discrete-log heuristic with the default searcher,
// mapping exhaustion to the historical sentinel 1.
func GetFactor(n *big.Int, kmax, retries int) *big.Int {
	if f, ok := defaultSearcher.GetFactor(n, kmax, retries); ok {
		return f
	}
	return big.NewInt(1)
}
