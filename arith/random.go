package arith

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// RandomOddPositive draws byteLength random bytes from rnd (nil means
// crypto/rand.Reader), forces the low bit of the least-significant
// byte to 1 and clears the high bit of the most-significant byte, and
// interprets the result as a big-endian integer. The value is
// therefore odd, non-negative, and fits in byteLength bytes.
func RandomOddPositive(byteLength int, rnd io.Reader) (*big.Int, error) {
	if byteLength <= 0 {
		return nil, fmt.Errorf("arith: byte length must be positive, got %d", byteLength)
	}
	if rnd == nil {
		rnd = rand.Reader
	}
	buf := make([]byte, byteLength)
	if _, err := io.ReadFull(rnd, buf); err != nil {
		return nil, fmt.Errorf("arith: read random bytes: %w", err)
	}
	buf[len(buf)-1] |= 1
	buf[0] &= 0x7f
	return new(big.Int).SetBytes(buf), nil
}
