package config

import "errors"

// Text is the configuration of the text command, which works on a single message
// in the OpenSSL "Salted__" format.
type Text struct {
	// Decrypt treats the message as base64 ciphertext
	Decrypt bool

	Key Key `mapstructure:",squash"`

	Cipher Cipher `mapstructure:",squash"`

	// IV is a hex-encoded IV, used with --key
	IV string `label:"--iv" mapstructure:"iv" validate:"omitempty,hexadecimal"`

	// KDF stretches --password into key and IV
	KDF string `label:"--kdf" mapstructure:"kdf" validate:"oneof=evp pbkdf2"`

	// Message is the positional argument
	Message string `label:"message" mapstructure:"-"`
}

// Validate checks the configuration against its struct tags.
func (t *Text) Validate() error {
	t.Cipher.normalize()

	if err := validate(t); err != nil {
		return err
	}

	if t.Key.String == "" && t.Key.File == "" && t.Key.Password == "" {
		return errors.New("one of --key, --key-file or --password is required")
	}

	return nil
}

// Check is the configuration of the check command.
type Check struct {
	// Vectors is an optional JSONC file with known-answer vectors
	Vectors string `label:"--vectors" mapstructure:"vectors" validate:"omitempty,file"`

	// Quiet only reports failures
	Quiet bool
}

// Validate checks the configuration against its struct tags.
func (c *Check) Validate() error {
	return validate(c)
}
