package logic

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/idelchi/goseed/internal/config"
	"github.com/idelchi/goseed/internal/encryption"
)

// RunText encrypts or decrypts a single message in the OpenSSL "Salted__" format and
// writes the result to w. A password derives key and IV; a raw key takes its IV from --iv.
func RunText(cfg *config.Text, w io.Writer) error {
	alg, err := encryption.ParseAlgorithm(cfg.Cipher.Algorithm)
	if err != nil {
		return err
	}

	var iv []byte

	if cfg.IV != "" {
		if iv, err = hex.DecodeString(cfg.IV); err != nil {
			return fmt.Errorf("decoding IV: %w", err)
		}
	}

	encCfg, err := encryption.NewConfig(cfg.Cipher.Mode, cfg.Cipher.Padding, iv)
	if err != nil {
		return err
	}

	if cfg.Key.Password != "" {
		kdf, err := encryption.ParseKDF(cfg.KDF)
		if err != nil {
			return err
		}

		opts := encryption.PasswordOptions{KDF: kdf, Iterations: cfg.Cipher.Iterations}

		return textWithPassword(cfg, alg, encCfg, opts, w)
	}

	key, err := cfg.Key.Bytes()
	if err != nil {
		return err
	}

	return textWithKey(cfg, alg, encCfg, key, w)
}

func textWithPassword(
	cfg *config.Text,
	alg encryption.Algorithm,
	encCfg encryption.Config,
	opts encryption.PasswordOptions,
	w io.Writer,
) error {
	password := []byte(cfg.Key.Password)

	if !cfg.Decrypt {
		params, err := encryption.EncryptWithPassword(alg, []byte(cfg.Message), password, encCfg, opts)
		if err != nil {
			return fmt.Errorf("encrypting message: %w", err)
		}

		_, err = fmt.Fprintln(w, params.String())

		return err
	}

	params, err := encryption.ParseOpenSSL(cfg.Message)
	if err != nil {
		return err
	}

	plaintext, err := encryption.DecryptWithPassword(alg, params, password, encCfg, opts)
	if err != nil {
		return fmt.Errorf("decrypting message: %w", err)
	}

	_, err = fmt.Fprintln(w, string(plaintext))

	return err
}

func textWithKey(cfg *config.Text, alg encryption.Algorithm, encCfg encryption.Config, key []byte, w io.Writer) error {
	if key == nil {
		return errors.New("no key given")
	}

	if !cfg.Decrypt {
		params, err := encryption.Encrypt(alg, []byte(cfg.Message), key, encCfg)
		if err != nil {
			return fmt.Errorf("encrypting message: %w", err)
		}

		_, err = fmt.Fprintln(w, params.String())

		return err
	}

	params, err := encryption.ParseOpenSSL(cfg.Message)
	if err != nil {
		return err
	}

	plaintext, err := encryption.Decrypt(alg, params, key, encCfg)
	if err != nil {
		return fmt.Errorf("decrypting message: %w", err)
	}

	_, err = fmt.Fprintln(w, string(plaintext))

	return err
}

// RunGenerate writes a random hex-encoded key sized for the named algorithm to w.
func RunGenerate(algorithm string, w io.Writer) error {
	alg, err := encryption.ParseAlgorithm(algorithm)
	if err != nil {
		return err
	}

	generated, err := encryption.GenerateKey(alg, nil)
	if err != nil {
		return fmt.Errorf("generating key: %w", err)
	}

	_, err = fmt.Fprintln(w, generated.AsHex())

	return err
}
