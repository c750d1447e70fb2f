package arith

import "math/big"

// expChunk bounds the exponent blocks handed to (*big.Int).Exp, so the
// accumulation below never assumes the full exponent fits a machine
// word.
var expChunk = new(big.Int).SetUint64(1 << 32)

// ModPow returns a^b mod n for non-negative b. The exponent is split
// into blocks bounded by expChunk and the partial powers are
// accumulated by repeated multiplication, so b may be arbitrarily
// wide: a^b = a^(q*chunk) * a^r with b = q*chunk + r.
func ModPow(a, b, n *big.Int) *big.Int {
	quo, rem := new(big.Int).QuoRem(b, expChunk, new(big.Int))
	out := new(big.Int).Exp(a, rem, n)
	if quo.Sign() > 0 {
		block := new(big.Int).Exp(a, expChunk, n)
		for i := new(big.Int); i.Cmp(quo) < 0; i.Add(i, one) {
			out.Mul(out, block)
			out.Mod(out, n)
		}
	}
	return out
}

// Pow returns the unreduced power a^b for non-negative b, using the
// same block accumulation as ModPow. The result has about b*log2(a)
// bits; callers are responsible for keeping b small enough for that
// to be storable.
func Pow(a, b *big.Int) *big.Int {
	quo, rem := new(big.Int).QuoRem(b, expChunk, new(big.Int))
	out := new(big.Int).Exp(a, rem, nil)
	if quo.Sign() > 0 {
		block := new(big.Int).Exp(a, expChunk, nil)
		for i := new(big.Int); i.Cmp(quo) < 0; i.Add(i, one) {
			out.Mul(out, block)
		}
	}
	return out
}
