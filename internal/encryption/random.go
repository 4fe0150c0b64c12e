package encryption

import (
	"fmt"
	"io"

	"github.com/idelchi/gogen/pkg/key"
)

// randomBytes reads n bytes from r.
func randomBytes(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("reading %d random bytes: %w", n, err)
	}

	return buf, nil
}

// GenerateKey returns a fresh key of alg's key size read from r.
// A nil r draws from the system source.
func GenerateKey(alg Algorithm, r io.Reader) (key.Key, error) {
	if !alg.valid() {
		return nil, fmt.Errorf("%w: algorithm %d", ErrUnsupportedOption, byte(alg))
	}

	if r == nil {
		return key.New(alg.KeySize()) //nolint:wrapcheck
	}

	return randomBytes(r, alg.KeySize())
}

// GenerateIV returns a fresh IV of alg's block size read from r.
func GenerateIV(alg Algorithm, r io.Reader) ([]byte, error) {
	if !alg.valid() {
		return nil, fmt.Errorf("%w: algorithm %d", ErrUnsupportedOption, byte(alg))
	}

	return randomBytes(r, alg.BlockSize())
}
