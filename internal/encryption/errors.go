package encryption

import (
	"errors"

	"github.com/idelchi/goseed/pkg/seed"
)

var (
	// ErrInvalidKeySize is returned when a key is too short for the selected algorithm.
	ErrInvalidKeySize = seed.ErrInvalidKeySize
	// ErrInvalidBlockSize is returned when data handed to a block transform is not block aligned.
	ErrInvalidBlockSize = seed.ErrInvalidBlockSize
	// ErrMissingIV is returned when a chaining mode is configured without an IV.
	ErrMissingIV = errors.New("missing IV")
	// ErrInvalidIVSize is returned when the IV is not exactly one block long.
	ErrInvalidIVSize = errors.New("invalid IV size")
	// ErrUnsupportedOption is returned for unknown algorithm, mode, padding or KDF identifiers.
	ErrUnsupportedOption = errors.New("unsupported option")
	// ErrInvalidPadding is returned when padding is malformed on decryption.
	ErrInvalidPadding = errors.New("invalid padding")
)
