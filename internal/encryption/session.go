package encryption

import (
	"crypto/cipher"
	"fmt"
)

// Session is an incremental encryptor or decryptor.
//
// Process buffers arbitrary chunks and emits every block that is complete; Finalize
// flushes the remainder through the padding scheme and resets the session for reuse.
// The concatenated output of any sequence of Process calls followed by Finalize equals
// the output of a single Finalize over the whole input.
//
// A Session must not be used from multiple goroutines at once. The block cipher it wraps
// holds only read-only round keys.
type Session struct {
	block   cipher.Block
	cfg     Config
	decrypt bool

	mode   cipher.BlockMode
	buffer []byte
}

// NewEncryptor returns an encrypting session for alg keyed with key.
func NewEncryptor(alg Algorithm, key []byte, cfg Config) (*Session, error) {
	return newSession(alg, key, cfg, false)
}

// NewDecryptor returns a decrypting session for alg keyed with key.
func NewDecryptor(alg Algorithm, key []byte, cfg Config) (*Session, error) {
	return newSession(alg, key, cfg, true)
}

func newSession(alg Algorithm, key []byte, cfg Config, decrypt bool) (*Session, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	block, err := alg.NewBlock(key)
	if err != nil {
		return nil, err
	}

	if cfg.Mode.NeedsIV() {
		if cfg.IV == nil {
			return nil, fmt.Errorf("%w: %s mode requires an IV", ErrMissingIV, cfg.Mode)
		}

		if len(cfg.IV) != block.BlockSize() {
			return nil, fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidIVSize, block.BlockSize(), len(cfg.IV))
		}

		cfg.IV = append([]byte(nil), cfg.IV...)
	} else {
		cfg.IV = nil
	}

	session := &Session{
		block:   block,
		cfg:     cfg,
		decrypt: decrypt,
	}

	session.Reset()

	return session, nil
}

// BlockSize returns the block size of the underlying cipher.
func (s *Session) BlockSize() int {
	return s.block.BlockSize()
}

// Reset discards buffered input and rewinds the chaining value to the IV.
func (s *Session) Reset() {
	clear(s.buffer)

	s.buffer = s.buffer[:0]
	s.mode = s.cfg.Mode.newBlockMode(s.block, s.cfg.IV, s.decrypt, s.cfg.Parallel)
}

// Process appends data to the session and returns the transform of every block completed so far.
// The result is empty while less than a block is buffered. data is not retained.
func (s *Session) Process(data []byte) []byte {
	s.buffer = append(s.buffer, data...)

	return s.drain(s.holdBack())
}

// Finalize processes data, which may be nil, flushes the remainder and resets the session.
// On error no output is returned.
func (s *Session) Finalize(data []byte) ([]byte, error) {
	defer s.Reset()

	s.buffer = append(s.buffer, data...)

	if s.decrypt {
		return s.finalizeDecrypt()
	}

	return s.finalizeEncrypt()
}

func (s *Session) finalizeEncrypt() ([]byte, error) {
	out := s.drain(0)

	tail, err := s.cfg.Padding.pad(s.buffer, s.block.BlockSize(), s.cfg.Random)
	if err != nil {
		return nil, err
	}

	s.buffer = tail

	return append(out, s.drain(0)...), nil
}

func (s *Session) finalizeDecrypt() ([]byte, error) {
	size := s.block.BlockSize()

	if len(s.buffer)%size != 0 {
		return nil, fmt.Errorf("%w: ciphertext has %d trailing bytes", ErrInvalidBlockSize, len(s.buffer)%size)
	}

	keep := 0
	if len(s.buffer) > 0 {
		keep = size
	}

	out := s.drain(keep)
	last := s.drain(0)

	if len(last) == 0 && !s.cfg.Padding.removesBytes() {
		return out, nil
	}

	kept, err := s.cfg.Padding.unpad(last, size)
	if err != nil {
		return nil, err
	}

	return append(out, kept...), nil
}

// holdBack is the number of bytes Process leaves in the buffer beyond any partial block.
func (s *Session) holdBack() int {
	if s.decrypt && s.cfg.Padding.removesBytes() {
		return s.block.BlockSize()
	}

	return 0
}

// drain transforms the complete blocks in the buffer, leaving at least keep bytes behind.
func (s *Session) drain(keep int) []byte {
	size := s.block.BlockSize()

	n := (len(s.buffer) - keep) / size * size
	if n <= 0 {
		return []byte{}
	}

	out := make([]byte, n)
	s.mode.CryptBlocks(out, s.buffer[:n])

	s.buffer = append(s.buffer[:0], s.buffer[n:]...)

	return out
}
