package encryption

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Config carries the options a session is created with.
// The zero value selects CBC with PKCS7 padding and the system randomness source.
type Config struct {
	// Mode selects the chaining behavior.
	Mode Mode

	// Padding selects how the final partial block is handled.
	Padding Padding

	// IV is required by chaining modes and ignored by ECB. It is copied, never modified.
	IV []byte

	// Parallel bounds the goroutines ECB may fan a batch out to. Values below 2 keep it sequential.
	Parallel int

	// Random feeds padding filler, salts and generated IVs. Defaults to crypto/rand.Reader.
	Random io.Reader
}

// NewConfig builds a Config from option names, as they appear on the command line.
func NewConfig(mode, padding string, iv []byte) (Config, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return Config{}, err
	}

	p, err := ParsePadding(padding)
	if err != nil {
		return Config{}, err
	}

	return Config{Mode: m, Padding: p, IV: iv}, nil
}

// withDefaults fills unset fields and validates the rest.
func (c Config) withDefaults() (Config, error) {
	if c.Mode == 0 {
		c.Mode = CBC
	}

	if c.Padding == 0 {
		c.Padding = PKCS7
	}

	if c.Random == nil {
		c.Random = rand.Reader
	}

	if !c.Mode.valid() {
		return c, fmt.Errorf("%w: mode %d", ErrUnsupportedOption, byte(c.Mode))
	}

	if !c.Padding.valid() {
		return c, fmt.Errorf("%w: padding %d", ErrUnsupportedOption, byte(c.Padding))
	}

	return c, nil
}
