// Package config holds the command-line configuration and its validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/idelchi/gogen/pkg/key"
)

// Key holds the mutually exclusive ways of supplying key material.
type Key struct {
	// String is a hex-encoded master key.
	String string `label:"--key" mapstructure:"key" validate:"omitempty,hexadecimal,exclusive=File Password"`

	// File is a path to a file holding a hex-encoded master key.
	File string `label:"--key-file" mapstructure:"key-file" validate:"exclusive=String Password"`

	// Password derives the master key with PBKDF2.
	Password string `label:"--password" mapstructure:"password" validate:"exclusive=String File"`
}

// Suffixes are the extensions used to name output files.
type Suffixes struct {
	// Encrypt is appended to encrypted files.
	Encrypt string `mapstructure:"encrypt-ext" validate:"required"`

	// Decrypt is appended to decrypted files, after stripping Encrypt.
	Decrypt string `mapstructure:"decrypt-ext"`
}

// Cipher selects the primitive and how it is applied.
type Cipher struct {
	Algorithm  string `label:"--algorithm"  mapstructure:"algorithm"  validate:"oneof=seed aes"`
	Mode       string `label:"--mode"       mapstructure:"mode"       validate:"oneof=ecb cbc"`
	Padding    string `label:"--padding"    mapstructure:"padding"    validate:"oneof=none zero pkcs7 ansix923 iso10126 iso97971"` //nolint:lll
	Iterations int    `label:"--iterations" mapstructure:"iterations" validate:"omitempty,min=1"`
}

// Config is the configuration of the encrypt and decrypt commands.
type Config struct {
	// Show prints the configuration and exits
	Show bool

	// Parallel is the number of files processed concurrently
	Parallel int `validate:"min=1"`

	// Quiet suppresses non-error output
	Quiet bool

	// Delete removes the input after successful processing
	Delete bool

	// Stats prints a summary after processing
	Stats bool

	// Verbose enables debug logging
	Verbose bool

	// PreserveTimestamps copies the input modification time to the output
	PreserveTimestamps bool `mapstructure:"preserve-timestamps"`

	Key      Key      `mapstructure:",squash"`
	Cipher   Cipher   `mapstructure:",squash"`
	Suffixes Suffixes `mapstructure:",squash"`

	// Decrypt is set by the decrypt command
	Decrypt bool `mapstructure:"-"`

	// Files are the positional arguments
	Files []string `label:"files" mapstructure:"-" validate:"min=1,dive,required"`
}

// Normalize lower-cases the option names so they validate case-insensitively.
func (c *Config) Normalize() {
	c.Cipher.normalize()
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	c.Normalize()

	if err := validate(c); err != nil {
		return err
	}

	if c.Key.String == "" && c.Key.File == "" && c.Key.Password == "" {
		return errors.New("one of --key, --key-file or --password is required")
	}

	return nil
}

// KeyBytes resolves the master key from --key or --key-file. It returns nil when a password is used.
func (c *Config) KeyBytes() ([]byte, error) {
	return c.Key.Bytes()
}

// Bytes decodes the hex key given directly or read from the key file.
// It returns nil when neither is set.
func (k Key) Bytes() ([]byte, error) {
	encoded := k.String

	if k.File != "" {
		data, err := os.ReadFile(k.File)
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}

		encoded = string(data)
	}

	if encoded == "" {
		return nil, nil
	}

	decoded, err := key.FromHex(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding key: %w", err)
	}

	return decoded, nil
}

func (c *Cipher) normalize() {
	c.Algorithm = strings.ToLower(c.Algorithm)
	c.Mode = strings.ToLower(c.Mode)
	c.Padding = strings.ToLower(c.Padding)
}
