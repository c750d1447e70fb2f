// Package arith provides the arbitrary-precision arithmetic primitives
// the factor searches are built on: integer square root, deterministic
// trial-division primality, modular and unreduced exponentiation with
// word-bounded exponent chunking, random odd-number sampling, and the
// brute-force logarithm helper used by the discrete-log heuristic.
//
// Everything operates on math/big integers; none of it is sized for
// cryptographic inputs.
package arith

import "math/big"

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)
