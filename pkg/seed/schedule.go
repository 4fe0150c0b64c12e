package seed

import (
	"encoding/binary"
	"fmt"
)

const (
	// KeySize is the number of key bytes SEED consumes. Longer keys are truncated.
	KeySize = 16
	// Rounds is the number of Feistel rounds.
	Rounds = 16
)

// RoundKeys is the expanded key: two 32-bit subkeys per round, in round order.
type RoundKeys [2 * Rounds]uint32

// ExpandKey derives the round keys from the first KeySize bytes of key.
// Any bytes beyond KeySize are ignored.
func ExpandKey(key []byte) (RoundKeys, error) {
	var rk RoundKeys

	if len(key) < KeySize {
		return rk, fmt.Errorf("%w: need at least %d bytes, got %d", ErrInvalidKeySize, KeySize, len(key))
	}

	a := binary.BigEndian.Uint32(key[0:4])
	b := binary.BigEndian.Uint32(key[4:8])
	c := binary.BigEndian.Uint32(key[8:12])
	d := binary.BigEndian.Uint32(key[12:16])

	for i := range Rounds {
		rk[2*i] = g(a + c - kc[i])
		rk[2*i+1] = g(b - d + kc[i])

		if i%2 == 0 {
			// A||B >>> 8
			a, b = a>>8|b<<24, b>>8|a<<24
		} else {
			// C||D <<< 8
			c, d = c<<8|d>>24, d<<8|c>>24
		}
	}

	return rk, nil
}
