package encryption

import (
	"crypto/cipher"
	"fmt"
	"strings"
)

// Mode selects how consecutive blocks are chained.
type Mode byte

const (
	// ECB transforms every block independently.
	ECB Mode = iota + 1
	// CBC XORs each plaintext block with the previous ciphertext block, starting from the IV.
	CBC
)

// ParseMode maps a case-insensitive name to a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "ecb":
		return ECB, nil
	case "cbc":
		return CBC, nil
	default:
		return 0, fmt.Errorf("%w: mode %q", ErrUnsupportedOption, name)
	}
}

func (m Mode) String() string {
	switch m {
	case ECB:
		return "ECB"
	case CBC:
		return "CBC"
	default:
		return fmt.Sprintf("Mode(%d)", byte(m))
	}
}

// NeedsIV reports whether the mode requires an initialization vector.
func (m Mode) NeedsIV() bool {
	return m == CBC
}

func (m Mode) valid() bool {
	return m == ECB || m == CBC
}

// newBlockMode returns the chaining collaborator for one direction, positioned at the start of a message.
func (m Mode) newBlockMode(block cipher.Block, iv []byte, decrypt bool, parallel int) cipher.BlockMode {
	switch m {
	case CBC:
		if decrypt {
			return cipher.NewCBCDecrypter(block, iv)
		}

		return cipher.NewCBCEncrypter(block, iv)
	default:
		return newECB(block, decrypt, parallel)
	}
}
