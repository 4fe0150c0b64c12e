package encryption

import (
	"fmt"
)

// PasswordOptions controls password-based encryption.
type PasswordOptions struct {
	// KDF defaults to EvpKDF, which is what OpenSSL and CryptoJS use for "Salted__" data.
	KDF KDF

	// Iterations below 1 select the KDF's default.
	Iterations int

	// Salt overrides the random salt on encryption.
	Salt []byte
}

func (o PasswordOptions) kdf() KDF {
	if o.KDF == 0 {
		return EvpKDF
	}

	return o.KDF
}

// EncryptWithPassword derives key and IV from password and a salt, then encrypts message.
// The salt is read from cfg.Random unless opts supplies one, and is recorded in the result.
func EncryptWithPassword(alg Algorithm, message, password []byte, cfg Config, opts PasswordOptions) (*CipherParams, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	salt := opts.Salt
	if salt == nil {
		if salt, err = randomBytes(cfg.Random, SaltSize); err != nil {
			return nil, fmt.Errorf("generating salt: %w", err)
		}
	}

	key, iv, err := DeriveKey(opts.kdf(), password, salt, alg.KeySize(), alg.BlockSize(), opts.Iterations)
	if err != nil {
		return nil, err
	}

	cfg.IV = iv

	params, err := Encrypt(alg, message, key, cfg)
	if err != nil {
		return nil, err
	}

	params.Salt = append([]byte(nil), salt...)

	return params, nil
}

// DecryptWithPassword re-derives key and IV from password and params.Salt and decrypts.
func DecryptWithPassword(alg Algorithm, params *CipherParams, password []byte, cfg Config, opts PasswordOptions) ([]byte, error) {
	if len(params.Salt) == 0 {
		return nil, fmt.Errorf("%w: password-based ciphertext carries no salt", ErrProcessing)
	}

	key, iv, err := DeriveKey(opts.kdf(), password, params.Salt, alg.KeySize(), alg.BlockSize(), opts.Iterations)
	if err != nil {
		return nil, err
	}

	cfg.IV = iv

	return Decrypt(alg, params, key, cfg)
}
