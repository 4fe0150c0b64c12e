package seed

import (
	"crypto/cipher"
	"encoding/binary"
	"fmt"
)

// BlockSize is the SEED block size in bytes.
const BlockSize = 16

// Cipher is a SEED instance keyed with a fixed set of round keys.
type Cipher struct {
	keys RoundKeys
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher expands key and returns a Cipher. Keys shorter than KeySize fail with
// ErrInvalidKeySize; longer keys are truncated.
func NewCipher(key []byte) (*Cipher, error) {
	keys, err := ExpandKey(key)
	if err != nil {
		return nil, err
	}

	return &Cipher{keys: keys}, nil
}

// NewCipherWithRoundKeys returns a Cipher over an already expanded key.
func NewCipherWithRoundKeys(keys RoundKeys) *Cipher {
	return &Cipher{keys: keys}
}

// RoundKeys returns a copy of the expanded key.
func (c *Cipher) RoundKeys() RoundKeys {
	return c.keys
}

// BlockSize returns BlockSize.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the first block of src into dst. dst and src may overlap entirely.
func (c *Cipher) Encrypt(dst, src []byte) {
	checkBuffers(dst, src)
	c.crypt(dst, src, false)
}

// Decrypt decrypts the first block of src into dst. dst and src may overlap entirely.
func (c *Cipher) Decrypt(dst, src []byte) {
	checkBuffers(dst, src)
	c.crypt(dst, src, true)
}

// EncryptBlock returns the encryption of a single block as a new slice.
func (c *Cipher) EncryptBlock(src []byte) ([]byte, error) {
	return c.transformBlock(src, false)
}

// DecryptBlock returns the decryption of a single block as a new slice.
func (c *Cipher) DecryptBlock(src []byte) ([]byte, error) {
	return c.transformBlock(src, true)
}

func (c *Cipher) transformBlock(src []byte, decrypt bool) ([]byte, error) {
	if len(src) != BlockSize {
		return nil, fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidBlockSize, BlockSize, len(src))
	}

	dst := make([]byte, BlockSize)
	c.crypt(dst, src, decrypt)

	return dst, nil
}

// crypt runs the 16 Feistel rounds. Decryption uses the subkey pairs in reverse round order.
func (c *Cipher) crypt(dst, src []byte, decrypt bool) {
	l0 := binary.BigEndian.Uint32(src[0:4])
	l1 := binary.BigEndian.Uint32(src[4:8])
	r0 := binary.BigEndian.Uint32(src[8:12])
	r1 := binary.BigEndian.Uint32(src[12:16])

	for i := range Rounds {
		round := i
		if decrypt {
			round = Rounds - 1 - i
		}

		t0, t1 := f(r0, r1, c.keys[2*round], c.keys[2*round+1])

		l0, l1, r0, r1 = r0, r1, l0^t0, l1^t1
	}

	// No swap after the last round.
	binary.BigEndian.PutUint32(dst[0:4], r0)
	binary.BigEndian.PutUint32(dst[4:8], r1)
	binary.BigEndian.PutUint32(dst[8:12], l0)
	binary.BigEndian.PutUint32(dst[12:16], l1)
}

func checkBuffers(dst, src []byte) {
	if len(src) < BlockSize {
		panic("seed: input not full block")
	}

	if len(dst) < BlockSize {
		panic("seed: output not full block")
	}
}
