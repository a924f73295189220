package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the random source used for key, salt, and nonce generation.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

// Random returns n bytes from the configured CSPRNG. A short read or any
// reader error is surfaced as ErrRandomSource.
func Random(n int) ([]byte, error) {
	return RandomFrom(randReader, n)
}

// RandomFrom returns n bytes from r, falling back to crypto/rand when r is nil.
func RandomFrom(r io.Reader, n int) ([]byte, error) {
	if r == nil {
		r = rand.Reader
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return b, nil
}
