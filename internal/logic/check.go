package logic

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/idelchi/goseed/internal/config"
	"github.com/idelchi/goseed/internal/encryption"
)

// Vector is a single-block known-answer test.
type Vector struct {
	Name       string `json:"name"`
	Algorithm  string `json:"algorithm,omitempty"`
	Key        string `json:"key"`
	Plaintext  string `json:"plaintext"`
	Ciphertext string `json:"ciphertext"`
}

// builtinVectors are the RFC 4269 appendix B vectors plus a 128-bit compatibility vector.
//
//nolint:gochecknoglobals
var builtinVectors = []Vector{
	{
		Name:       "rfc4269-b1",
		Key:        "00000000000000000000000000000000",
		Plaintext:  "000102030405060708090a0b0c0d0e0f",
		Ciphertext: "5ebac6e0054e166819aff1cc6d346cdb",
	},
	{
		Name:       "rfc4269-b2",
		Key:        "000102030405060708090a0b0c0d0e0f",
		Plaintext:  "00000000000000000000000000000000",
		Ciphertext: "c11f22f20140505084483597e4370f43",
	},
	{
		Name:       "rfc4269-b3",
		Key:        "4706480851e61be85d74bfb3fd956185",
		Plaintext:  "83a2f8a288641fb9a4e9a5cc2f131c7d",
		Ciphertext: "ee54d13ebcae706d226bc3142cd40d4a",
	},
	{
		Name:       "rfc4269-b4",
		Key:        "28dbc3bc49ffd87dcfa509b11d422be7",
		Plaintext:  "b41e6be2eba84a148e2eed84593c5ec7",
		Ciphertext: "9b9b7bfcd1813cb95d0b3618f40f5122",
	},
	{
		Name:       "compatibility",
		Key:        "9f3c7a1e4b8d2c6a0e5f91d4a7b3c8e2",
		Plaintext:  "00112233445566778899aabbccddeeff",
		Ciphertext: "c1f2f511296263d0f38e4a99c2b0ba8a",
	},
}

// RunCheck runs known-answer vectors through encryption and decryption and reports each
// one on w. Vectors come from cfg.Vectors when set, the built-in set otherwise.
func RunCheck(cfg *config.Check, w io.Writer) error {
	vectors := builtinVectors

	if cfg.Vectors != "" {
		loaded, err := LoadVectors(cfg.Vectors)
		if err != nil {
			return err
		}

		vectors = loaded
	}

	if len(vectors) == 0 {
		return fmt.Errorf("no vectors in %q", cfg.Vectors)
	}

	var failures int

	for _, vector := range vectors {
		if err := checkVector(vector); err != nil {
			fmt.Fprintf(w, "%s: FAILED: %v\n", vector.Name, err)

			failures++
		} else if !cfg.Quiet {
			fmt.Fprintf(w, "%s: ok\n", vector.Name)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d vector(s) failed", failures, len(vectors))
	}

	return nil
}

// LoadVectors reads a JSONC file holding an array of vectors.
func LoadVectors(path string) ([]Vector, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is from user-supplied config
	if err != nil {
		return nil, fmt.Errorf("reading vectors file %q: %w", path, err)
	}

	clean := jsonc.ToJSONInPlace(data)

	var vectors []Vector
	if err := json.Unmarshal(clean, &vectors); err != nil {
		return nil, fmt.Errorf("parsing vectors file %q: %w", path, err)
	}

	return vectors, nil
}

// checkVector encrypts the plaintext and decrypts the ciphertext of a single block.
func checkVector(vector Vector) error {
	name := vector.Algorithm
	if name == "" {
		name = "seed"
	}

	alg, err := encryption.ParseAlgorithm(name)
	if err != nil {
		return err
	}

	key, err := hex.DecodeString(vector.Key)
	if err != nil {
		return fmt.Errorf("decoding key: %w", err)
	}

	plaintext, err := hex.DecodeString(vector.Plaintext)
	if err != nil {
		return fmt.Errorf("decoding plaintext: %w", err)
	}

	ciphertext, err := hex.DecodeString(vector.Ciphertext)
	if err != nil {
		return fmt.Errorf("decoding ciphertext: %w", err)
	}

	if len(plaintext) != alg.BlockSize() || len(ciphertext) != alg.BlockSize() {
		return fmt.Errorf("%w: vectors must be a single %d-byte block", encryption.ErrInvalidBlockSize, alg.BlockSize())
	}

	block, err := alg.NewBlock(key)
	if err != nil {
		return err
	}

	got := make([]byte, block.BlockSize())

	block.Encrypt(got, plaintext)

	if !bytes.Equal(got, ciphertext) {
		return fmt.Errorf("encrypt: got %x, want %x", got, ciphertext)
	}

	block.Decrypt(got, ciphertext)

	if !bytes.Equal(got, plaintext) {
		return fmt.Errorf("decrypt: got %x, want %x", got, plaintext)
	}

	return nil
}
