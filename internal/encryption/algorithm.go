package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"strings"

	"github.com/idelchi/goseed/pkg/seed"
)

// Algorithm selects the block cipher primitive a session runs on.
type Algorithm byte

const (
	// SEED is the 128-bit SEED cipher.
	SEED Algorithm = iota + 1
	// AES is AES-256.
	AES
)

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "seed":
		return SEED, nil
	case "aes", "aes-256", "aes256":
		return AES, nil
	default:
		return 0, fmt.Errorf("%w: algorithm %q", ErrUnsupportedOption, name)
	}
}

func (a Algorithm) String() string {
	switch a {
	case SEED:
		return "SEED"
	case AES:
		return "AES"
	default:
		return fmt.Sprintf("Algorithm(%d)", byte(a))
	}
}

// KeySize returns the number of key bytes the algorithm consumes.
func (a Algorithm) KeySize() int {
	switch a {
	case SEED:
		return seed.KeySize
	case AES:
		const aes256KeySize = 32

		return aes256KeySize
	default:
		return 0
	}
}

// BlockSize returns the block size in bytes.
func (a Algorithm) BlockSize() int {
	switch a {
	case SEED:
		return seed.BlockSize
	case AES:
		return aes.BlockSize
	default:
		return 0
	}
}

// NewBlock derives the round keys for key and returns the block transform.
func (a Algorithm) NewBlock(key []byte) (cipher.Block, error) {
	switch a {
	case SEED:
		block, err := seed.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("creating SEED cipher: %w", err)
		}

		return block, nil
	case AES:
		switch len(key) {
		case 16, 24, 32:
		default:
			return nil, fmt.Errorf("%w: AES needs 16, 24 or 32 bytes, got %d", ErrInvalidKeySize, len(key))
		}

		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("creating AES cipher: %w", err)
		}

		return block, nil
	default:
		return nil, fmt.Errorf("%w: algorithm %d", ErrUnsupportedOption, byte(a))
	}
}

func (a Algorithm) valid() bool {
	return a == SEED || a == AES
}
