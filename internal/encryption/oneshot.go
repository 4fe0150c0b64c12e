package encryption

import "bytes"

// CipherParams is the result of a one-shot encryption: the ciphertext plus the
// parameters needed to reverse it.
type CipherParams struct {
	Ciphertext []byte
	Key        []byte
	IV         []byte
	Salt       []byte

	Algorithm Algorithm
	Mode      Mode
	Padding   Padding
}

// Encrypt encrypts message in a single call. message, key and cfg.IV are not modified.
func Encrypt(alg Algorithm, message, key []byte, cfg Config) (*CipherParams, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	session, err := NewEncryptor(alg, key, cfg)
	if err != nil {
		return nil, err
	}

	ciphertext, err := session.Finalize(message)
	if err != nil {
		return nil, err
	}

	params := &CipherParams{
		Ciphertext: ciphertext,
		Key:        bytes.Clone(key),
		Algorithm:  alg,
		Mode:       cfg.Mode,
		Padding:    cfg.Padding,
	}

	if cfg.Mode.NeedsIV() {
		params.IV = bytes.Clone(cfg.IV)
	}

	return params, nil
}

// Decrypt decrypts params.Ciphertext in a single call. Mode, padding and IV left unset
// in cfg are taken from params.
func Decrypt(alg Algorithm, params *CipherParams, key []byte, cfg Config) ([]byte, error) {
	if cfg.Mode == 0 {
		cfg.Mode = params.Mode
	}

	if cfg.Padding == 0 {
		cfg.Padding = params.Padding
	}

	if cfg.IV == nil {
		cfg.IV = params.IV
	}

	session, err := NewDecryptor(alg, key, cfg)
	if err != nil {
		return nil, err
	}

	return session.Finalize(params.Ciphertext)
}
