package factor

import (
	"math/big"
	"testing"

	"github.com/yyl-20020115/ShorAlgorithm/arith"
)

func TestGetCycle_MinimalSequential(t *testing.T) {
	s := Searcher{Workers: 1}
	for _, tc := range []struct {
		a, n, want int64
	}{
		{2, 15, 4},
		{2, 7, 3},
		{3, 7, 6},
		{4, 15, 2},
		{1, 11, 1},
		{7, 15, 4},
	} {
		got := s.GetCycle(big.NewInt(tc.a), big.NewInt(tc.n))
		if got.Cmp(big.NewInt(tc.want)) != 0 {
			t.Fatalf("GetCycle(%d,%d) = %s, want %d", tc.a, tc.n, got, tc.want)
		}
	}
}

func TestGetCycle_ConcurrentIsPeriod(t *testing.T) {
	// Under concurrent scheduling the result need not be minimal, but
	// it must always satisfy a^r ≡ 1 (mod n).
	s := Searcher{Workers: 4}
	for _, tc := range []struct{ a, n int64 }{
		{2, 15}, {3, 7}, {2, 101}, {5, 2021}, // 2021 = 43*47
	} {
		a, n := big.NewInt(tc.a), big.NewInt(tc.n)
		r := s.GetCycle(a, n)
		if r.Sign() <= 0 {
			t.Fatalf("GetCycle(%d,%d) = %s, want >= 1", tc.a, tc.n, r)
		}
		if res := arith.ModPow(a, r, n); res.Cmp(one) != 0 {
			t.Fatalf("GetCycle(%d,%d) = %s: a^r mod n = %s, want 1", tc.a, tc.n, r, res)
		}
	}
}

func TestGetCycle_NilBaseSamples(t *testing.T) {
	// A nil base is sampled internally. 251 is a one-byte prime, so
	// every sampled base is strictly smaller and therefore coprime,
	// and the search terminates with a valid period.
	s := Searcher{Workers: 2}
	n := big.NewInt(251)
	r := s.GetCycle(nil, n)
	if r.Sign() <= 0 {
		t.Fatalf("GetCycle(nil,251) = %s, want >= 1", r)
	}
}
