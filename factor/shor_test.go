package factor

import (
	"math/big"
	"testing"

	"github.com/yyl-20020115/ShorAlgorithm/internal/randsrc"
)

func TestShorFactor_FixedBase(t *testing.T) {
	// a = 7, n = 15: r = 7^2 mod 15 = 4, a^(r/2) mod 15 = 4, and
	// gcd(4+1, 15) = 5 on the very first iteration.
	var s Searcher
	f, ok := s.ShorFactor(big.NewInt(15), big.NewInt(7), 16, false)
	if !ok {
		t.Fatal("search exhausted, want factor")
	}
	if f.Cmp(big.NewInt(5)) != 0 {
		t.Fatalf("got %s, want 5", f)
	}
}

func TestShorFactor_RandomBase(t *testing.T) {
	var s Searcher
	f, ok := s.ShorFactor(big.NewInt(15), nil, 4096, false)
	if !ok {
		t.Fatal("search exhausted, want factor of 15")
	}
	if f.Cmp(big.NewInt(3)) != 0 && f.Cmp(big.NewInt(5)) != 0 {
		t.Fatalf("got %s, want 3 or 5", f)
	}
}

func TestShorFactor_ExactOrder(t *testing.T) {
	var s Searcher
	f, ok := s.ShorFactor(big.NewInt(15), big.NewInt(2), 64, true)
	if !ok {
		t.Fatal("search exhausted, want factor of 15")
	}
	if f.Cmp(big.NewInt(3)) != 0 && f.Cmp(big.NewInt(5)) != 0 {
		t.Fatalf("got %s, want 3 or 5", f)
	}
}

func TestShorFactor_PrimeExhausts(t *testing.T) {
	// A prime modulus has no nontrivial factor; the search must burn
	// its whole budget and report exhaustion, never fabricate one.
	var s Searcher
	if f, ok := s.ShorFactor(big.NewInt(17), nil, 256, false); ok {
		t.Fatalf("got %s for prime modulus, want exhaustion", f)
	}
	// The package-level wrapper keeps the historical sentinel: n itself.
	if f := ShorFactor(big.NewInt(17), nil, 256, false); f.Cmp(big.NewInt(17)) != 0 {
		t.Fatalf("wrapper returned %s, want sentinel 17", f)
	}
}

func TestShorFactor_ZeroBudget(t *testing.T) {
	var s Searcher
	if f, ok := s.ShorFactor(big.NewInt(15), nil, 0, false); ok {
		t.Fatalf("got %s with zero budget, want immediate exhaustion", f)
	}
	if f := ShorFactor(big.NewInt(15), nil, 0, false); f.Cmp(big.NewInt(15)) != 0 {
		t.Fatalf("wrapper returned %s, want sentinel 15", f)
	}
}

func TestShorFactor_DeterministicSource(t *testing.T) {
	// Identical seeds must walk identical base sequences and land on
	// the same factor.
	run := func() *big.Int {
		s := Searcher{Rand: randsrc.NewShake([]byte("shor-test")), Workers: 1}
		f, ok := s.ShorFactor(big.NewInt(3233), nil, 1<<14, false) // 3233 = 53*61
		if !ok {
			t.Fatal("search exhausted, want factor of 3233")
		}
		return f
	}
	f1, f2 := run(), run()
	if f1.Cmp(f2) != 0 {
		t.Fatalf("same seed, different factors: %s vs %s", f1, f2)
	}
	if f1.Cmp(big.NewInt(53)) != 0 && f1.Cmp(big.NewInt(61)) != 0 {
		t.Fatalf("got %s, want 53 or 61", f1)
	}
}
