package seed

import "errors"

var (
	// ErrInvalidKeySize is returned when a key supplies fewer than KeySize bytes.
	ErrInvalidKeySize = errors.New("invalid key size")
	// ErrInvalidBlockSize is returned when a block transform receives input that is not BlockSize bytes.
	ErrInvalidBlockSize = errors.New("invalid block size")
)
