package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"

	"github.com/tuneinsight/lattigo/v5/utils/factorization"

	"github.com/yyl-20020115/ShorAlgorithm/factor"
)

func main() {
	nStr := flag.String("n", "", "integer to factor (decimal, or 0x-prefixed hex)")
	method := flag.String("method", "shor", "search method: shor|dlog")
	retries := flag.Int("retries", 1<<16, "retry budget")
	kmax := flag.Int("kmax", 64, "multiplier bound (dlog method)")
	exact := flag.Bool("exact", false, "use full order finding instead of the squaring proxy (shor method)")
	workers := flag.Int("workers", 0, "order-finder workers, 0 = all CPUs")
	verify := flag.Bool("verify", false, "also print lattigo's Pollard-rho factor as a cross-check")
	flag.Parse()

	if *nStr == "" {
		log.Fatal("missing -n")
	}
	n := new(big.Int)
	if _, ok := n.SetString(*nStr, 0); !ok {
		log.Fatalf("invalid integer: %q", *nStr)
	}
	if n.Cmp(big.NewInt(2)) <= 0 {
		log.Fatalf("nothing to factor: %s", n)
	}

	s := factor.Searcher{Workers: *workers}
	var f *big.Int
	var ok bool
	switch *method {
	case "shor":
		f, ok = s.ShorFactor(n, nil, *retries, *exact)
	case "dlog":
		f, ok = s.GetFactor(n, *kmax, *retries)
	default:
		log.Fatalf("unknown method: %q", *method)
	}
	if !ok {
		log.Fatalf("retry budget exhausted without a factor of %s", n)
	}

	// The dlog method returns unverified candidates, so divisibility
	// is checked here before anything is printed.
	rem := new(big.Int)
	cof, _ := new(big.Int).QuoRem(n, f, rem)
	if rem.Sign() != 0 {
		log.Fatalf("candidate %s does not divide %s", f, n)
	}
	fmt.Printf("%s = %s * %s\n", n, f, cof)

	if *verify {
		fmt.Printf("pollard-rho reference factor: %s\n", factorization.GetFactorPollardRho(n))
	}
}
