// Package randsrc supplies the byte sources the factor searches sample
// from: the process-wide secure source and a deterministic SHAKE-256
// stream for reproducible sampling in tests and experiments.
package randsrc

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"
)

// Secure returns the process-wide cryptographically secure byte source.
func Secure() io.Reader { return rand.Reader }

// NewShake returns a deterministic byte stream seeded with seed. Two
// streams built from the same seed emit identical bytes.
func NewShake(seed []byte) io.Reader {
	h := sha3.NewShake256()
	if _, err := h.Write(seed); err != nil {
		panic(fmt.Errorf("randsrc: seed shake: %w", err))
	}
	return h
}
