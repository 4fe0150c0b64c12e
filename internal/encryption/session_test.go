package encryption_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/idelchi/goseed/internal/encryption"
)

// Case is a single one-shot vector from a YAML golden file.
type Case struct {
	Algorithm   string `yaml:"algorithm"`
	Mode        string `yaml:"mode"`
	Padding     string `yaml:"padding"`
	Key         string `yaml:"key"`
	IV          string `yaml:"iv,omitempty"`
	Plaintext   string `yaml:"plaintext"`
	Ciphertext  string `yaml:"ciphertext"`
	Description string `yaml:"description,omitempty"`
}

// Group is a named collection of vectors.
type Group struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []Case `yaml:"cases"`
}

// vector is a Case with its fields decoded.
type vector struct {
	alg        encryption.Algorithm
	cfg        encryption.Config
	key        []byte
	plaintext  []byte
	ciphertext []byte
}

func loadGroups(t *testing.T) []Group {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", "vectors.yml"))
	if err != nil {
		t.Fatalf("reading vectors: %v", err)
	}

	var groups []Group
	if err := yaml.Unmarshal(data, &groups); err != nil {
		t.Fatalf("parsing vectors: %v", err)
	}

	return groups
}

func decodeCase(t *testing.T, tc Case) vector {
	t.Helper()

	alg, err := encryption.ParseAlgorithm(tc.Algorithm)
	if err != nil {
		t.Fatal(err)
	}

	var iv []byte
	if tc.IV != "" {
		iv = mustHex(t, tc.IV)
	}

	cfg, err := encryption.NewConfig(tc.Mode, tc.Padding, iv)
	if err != nil {
		t.Fatal(err)
	}

	return vector{
		alg:        alg,
		cfg:        cfg,
		key:        mustHex(t, tc.Key),
		plaintext:  mustHex(t, tc.Plaintext),
		ciphertext: mustHex(t, tc.Ciphertext),
	}
}

// forEachVector runs fn for every vector in testdata/vectors.yml.
func forEachVector(t *testing.T, fn func(t *testing.T, v vector)) {
	t.Helper()

	for _, group := range loadGroups(t) {
		t.Run(group.Name, func(t *testing.T) {
			t.Parallel()

			for i, tc := range group.Cases {
				desc := tc.Description
				if desc == "" {
					desc = fmt.Sprintf("case_%d", i)
				}

				t.Run(desc, func(t *testing.T) {
					t.Parallel()
					fn(t, decodeCase(t, tc))
				})
			}
		})
	}
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("decoding %q: %v", s, err)
	}

	return b
}

// repeatingReader is a deterministic randomness source cycling through pattern.
type repeatingReader struct {
	pattern []byte
	pos     int
}

func newStubRandom() *repeatingReader {
	return &repeatingReader{pattern: []byte{0x11, 0x22, 0x33, 0x44}}
}

func (r *repeatingReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.pattern[r.pos%len(r.pattern)]
		r.pos++
	}

	return len(p), nil
}

// chunked feeds data through session in pieces of size n and finalizes.
func chunked(t *testing.T, session *encryption.Session, data []byte, n int) []byte {
	t.Helper()

	var out []byte

	for start := 0; start < len(data); start += n {
		out = append(out, session.Process(data[start:min(start+n, len(data))])...)
	}

	final, err := session.Finalize(nil)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	return append(out, final...)
}

func TestOneShotVectors(t *testing.T) {
	t.Parallel()

	forEachVector(t, func(t *testing.T, v vector) {
		t.Helper()

		params, err := encryption.Encrypt(v.alg, v.plaintext, v.key, v.cfg)
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}

		if !bytes.Equal(params.Ciphertext, v.ciphertext) {
			t.Errorf("Encrypt = %x, want %x", params.Ciphertext, v.ciphertext)
		}

		plaintext, err := encryption.Decrypt(v.alg, params, v.key, v.cfg)
		if err != nil {
			t.Fatalf("Decrypt: %v", err)
		}

		if !bytes.Equal(plaintext, v.plaintext) {
			t.Errorf("Decrypt = %x, want %x", plaintext, v.plaintext)
		}
	})
}

func TestStreamingMatchesOneShot(t *testing.T) {
	t.Parallel()

	forEachVector(t, func(t *testing.T, v vector) {
		t.Helper()

		for _, n := range []int{1, 3, 5, 15, 16, 17, 31, 64} {
			encryptor, err := encryption.NewEncryptor(v.alg, v.key, v.cfg)
			if err != nil {
				t.Fatal(err)
			}

			if got := chunked(t, encryptor, v.plaintext, n); !bytes.Equal(got, v.ciphertext) {
				t.Errorf("encrypt in chunks of %d = %x, want %x", n, got, v.ciphertext)
			}

			decryptor, err := encryption.NewDecryptor(v.alg, v.key, v.cfg)
			if err != nil {
				t.Fatal(err)
			}

			if got := chunked(t, decryptor, v.ciphertext, n); !bytes.Equal(got, v.plaintext) {
				t.Errorf("decrypt in chunks of %d = %x, want %x", n, got, v.plaintext)
			}
		}
	})
}

func TestMultipartKnownAnswer(t *testing.T) {
	t.Parallel()

	key := mustHex(t, "9f3c7a1e4b8d2c6a0e5f91d4a7b3c8e2")
	want := mustHex(t, "c1f2f511296263d0f38e4a99c2b0ba8a")

	session, err := encryption.NewEncryptor(encryption.SEED, key, encryption.Config{
		Mode:    encryption.ECB,
		Padding: encryption.ZeroPadding,
	})
	if err != nil {
		t.Fatal(err)
	}

	if out := session.Process(mustHex(t, "001122334455")); len(out) != 0 {
		t.Errorf("first chunk produced %x, want nothing", out)
	}

	if out := session.Process(mustHex(t, "66778899aa")); len(out) != 0 {
		t.Errorf("second chunk produced %x, want nothing", out)
	}

	if out := session.Process(mustHex(t, "bbccddeeff")); !bytes.Equal(out, want) {
		t.Errorf("third chunk produced %x, want %x", out, want)
	}

	final, err := session.Finalize(nil)
	if err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if len(final) != 0 {
		t.Errorf("Finalize produced %x, want nothing", final)
	}
}

func TestZeroPaddingStripsFinalBlockOnly(t *testing.T) {
	t.Parallel()

	key := mustHex(t, "9f3c7a1e4b8d2c6a0e5f91d4a7b3c8e2")
	message := append([]byte("A"), make([]byte, 31)...)
	cfg := encryption.Config{Mode: encryption.ECB, Padding: encryption.ZeroPadding}

	params, err := encryption.Encrypt(encryption.SEED, message, key, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if len(params.Ciphertext) != len(message) {
		t.Fatalf("ciphertext length = %d, want %d for aligned input", len(params.Ciphertext), len(message))
	}

	got, err := encryption.Decrypt(encryption.SEED, params, key, cfg)
	if err != nil {
		t.Fatal(err)
	}

	// Zeros in earlier blocks are content and survive.
	if want := message[:16]; !bytes.Equal(got, want) {
		t.Errorf("Decrypt = %x, want %x", got, want)
	}
}

func TestDecryptTakesOptionsFromParams(t *testing.T) {
	t.Parallel()

	key := mustHex(t, "9f3c7a1e4b8d2c6a0e5f91d4a7b3c8e2")
	message := []byte("Hi There")

	params, err := encryption.Encrypt(encryption.SEED, message, key, encryption.Config{
		Mode:    encryption.ECB,
		Padding: encryption.AnsiX923,
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := encryption.Decrypt(encryption.SEED, params, key, encryption.Config{})
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}

	if !bytes.Equal(got, message) {
		t.Errorf("Decrypt = %q, want %q", got, message)
	}
}

func TestEveryPartitionOfTwoChunks(t *testing.T) {
	t.Parallel()

	key := mustHex(t, "9f3c7a1e4b8d2c6a0e5f91d4a7b3c8e2")
	iv := mustHex(t, "101112131415161718191a1b1c1d1e1f")
	message := []byte("The quick brown fox jumps over the lazy dog, twice over.")

	for _, padding := range []encryption.Padding{
		encryption.ZeroPadding,
		encryption.PKCS7,
		encryption.AnsiX923,
		encryption.ISO97971,
	} {
		t.Run(padding.String(), func(t *testing.T) {
			t.Parallel()

			cfg := encryption.Config{Mode: encryption.CBC, Padding: padding, IV: iv}

			want, err := encryption.Encrypt(encryption.SEED, message, key, cfg)
			if err != nil {
				t.Fatal(err)
			}

			encryptor, err := encryption.NewEncryptor(encryption.SEED, key, cfg)
			if err != nil {
				t.Fatal(err)
			}

			decryptor, err := encryption.NewDecryptor(encryption.SEED, key, cfg)
			if err != nil {
				t.Fatal(err)
			}

			for split := 0; split <= len(message); split++ {
				got := encryptor.Process(message[:split])

				final, err := encryptor.Finalize(message[split:])
				if err != nil {
					t.Fatalf("split %d: Finalize: %v", split, err)
				}

				got = append(got, final...)
				if !bytes.Equal(got, want.Ciphertext) {
					t.Fatalf("split %d: ciphertext %x, want %x", split, got, want.Ciphertext)
				}
			}

			for split := 0; split <= len(want.Ciphertext); split++ {
				got := decryptor.Process(want.Ciphertext[:split])

				final, err := decryptor.Finalize(want.Ciphertext[split:])
				if err != nil {
					t.Fatalf("split %d: Finalize: %v", split, err)
				}

				got = append(got, final...)
				if !bytes.Equal(got, message) {
					t.Fatalf("split %d: plaintext %q, want %q", split, got, message)
				}
			}
		})
	}
}

func TestSessionReuseAfterFinalize(t *testing.T) {
	t.Parallel()

	key := mustHex(t, "9f3c7a1e4b8d2c6a0e5f91d4a7b3c8e2")
	cfg := encryption.Config{IV: mustHex(t, "101112131415161718191a1b1c1d1e1f")}

	session, err := encryption.NewEncryptor(encryption.SEED, key, cfg)
	if err != nil {
		t.Fatal(err)
	}

	first, err := session.Finalize([]byte("Hi There"))
	if err != nil {
		t.Fatal(err)
	}

	session.Process([]byte("abandoned"))
	session.Reset()

	second, err := session.Finalize([]byte("Hi There"))
	if err != nil {
		t.Fatal(err)
	}

	want := mustHex(t, "c6b74557ad08b7633dc1a4b2bf6ce7e7")

	if !bytes.Equal(first, want) || !bytes.Equal(second, want) {
		t.Errorf("got %x then %x, want %x both times", first, second, want)
	}
}

func TestSessionErrors(t *testing.T) {
	t.Parallel()

	key := mustHex(t, "9f3c7a1e4b8d2c6a0e5f91d4a7b3c8e2")

	tests := []struct {
		name    string
		alg     encryption.Algorithm
		key     []byte
		cfg     encryption.Config
		decrypt bool
		want    error
	}{
		{
			name: "CBC without IV",
			alg:  encryption.SEED,
			key:  key,
			cfg:  encryption.Config{Mode: encryption.CBC},
			want: encryption.ErrMissingIV,
		},
		{
			name:    "CBC without IV on decrypt",
			alg:     encryption.SEED,
			key:     key,
			cfg:     encryption.Config{Mode: encryption.CBC},
			decrypt: true,
			want:    encryption.ErrMissingIV,
		},
		{
			name: "short IV",
			alg:  encryption.SEED,
			key:  key,
			cfg:  encryption.Config{Mode: encryption.CBC, IV: make([]byte, 8)},
			want: encryption.ErrInvalidIVSize,
		},
		{
			name: "short SEED key",
			alg:  encryption.SEED,
			key:  key[:15],
			cfg:  encryption.Config{Mode: encryption.ECB},
			want: encryption.ErrInvalidKeySize,
		},
		{
			name: "short AES key",
			alg:  encryption.AES,
			key:  key[:10],
			cfg:  encryption.Config{Mode: encryption.ECB},
			want: encryption.ErrInvalidKeySize,
		},
		{
			name: "unknown mode",
			alg:  encryption.SEED,
			key:  key,
			cfg:  encryption.Config{Mode: 42},
			want: encryption.ErrUnsupportedOption,
		},
		{
			name: "unknown padding",
			alg:  encryption.SEED,
			key:  key,
			cfg:  encryption.Config{Mode: encryption.ECB, Padding: 42},
			want: encryption.ErrUnsupportedOption,
		},
		{
			name: "unknown algorithm",
			alg:  42,
			key:  key,
			cfg:  encryption.Config{Mode: encryption.ECB},
			want: encryption.ErrUnsupportedOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var err error
			if tt.decrypt {
				_, err = encryption.NewDecryptor(tt.alg, tt.key, tt.cfg)
			} else {
				_, err = encryption.NewEncryptor(tt.alg, tt.key, tt.cfg)
			}

			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFinalizeErrors(t *testing.T) {
	t.Parallel()

	key := mustHex(t, "9f3c7a1e4b8d2c6a0e5f91d4a7b3c8e2")
	ecbNone := encryption.Config{Mode: encryption.ECB, Padding: encryption.NoPadding}
	ecbPKCS7 := encryption.Config{Mode: encryption.ECB, Padding: encryption.PKCS7}

	t.Run("unaligned plaintext without padding", func(t *testing.T) {
		t.Parallel()

		session, err := encryption.NewEncryptor(encryption.SEED, key, ecbNone)
		if err != nil {
			t.Fatal(err)
		}

		out, err := session.Finalize([]byte("Hi There"))
		if !errors.Is(err, encryption.ErrInvalidBlockSize) {
			t.Errorf("error = %v, want %v", err, encryption.ErrInvalidBlockSize)
		}

		if out != nil {
			t.Errorf("failing Finalize returned %x", out)
		}

		// The failed call reset the session.
		out, err = session.Finalize(mustHex(t, "00112233445566778899aabbccddeeff"))
		if err != nil {
			t.Fatalf("Finalize after failure: %v", err)
		}

		if want := mustHex(t, "c1f2f511296263d0f38e4a99c2b0ba8a"); !bytes.Equal(out, want) {
			t.Errorf("Finalize after failure = %x, want %x", out, want)
		}
	})

	t.Run("unaligned ciphertext", func(t *testing.T) {
		t.Parallel()

		session, err := encryption.NewDecryptor(encryption.SEED, key, ecbPKCS7)
		if err != nil {
			t.Fatal(err)
		}

		if _, err := session.Finalize(make([]byte, 17)); !errors.Is(err, encryption.ErrInvalidBlockSize) {
			t.Errorf("error = %v, want %v", err, encryption.ErrInvalidBlockSize)
		}
	})

	t.Run("malformed padding", func(t *testing.T) {
		t.Parallel()

		// A block ending in 0x00 can never carry valid PKCS7 padding.
		params, err := encryption.Encrypt(encryption.SEED, make([]byte, 16), key, ecbNone)
		if err != nil {
			t.Fatal(err)
		}

		if _, err := encryption.Decrypt(encryption.SEED, params, key, ecbPKCS7); !errors.Is(err, encryption.ErrInvalidPadding) {
			t.Errorf("error = %v, want %v", err, encryption.ErrInvalidPadding)
		}
	})

	t.Run("empty ciphertext with pkcs7", func(t *testing.T) {
		t.Parallel()

		session, err := encryption.NewDecryptor(encryption.SEED, key, ecbPKCS7)
		if err != nil {
			t.Fatal(err)
		}

		if _, err := session.Finalize(nil); !errors.Is(err, encryption.ErrInvalidPadding) {
			t.Errorf("error = %v, want %v", err, encryption.ErrInvalidPadding)
		}
	})
}

func TestEmptyMessage(t *testing.T) {
	t.Parallel()

	key := mustHex(t, "9f3c7a1e4b8d2c6a0e5f91d4a7b3c8e2")

	tests := []struct {
		padding encryption.Padding
		size    int
	}{
		{encryption.NoPadding, 0},
		{encryption.ZeroPadding, 0},
		{encryption.PKCS7, 16},
		{encryption.AnsiX923, 16},
		{encryption.ISO10126, 16},
		{encryption.ISO97971, 16},
	}

	for _, tt := range tests {
		t.Run(tt.padding.String(), func(t *testing.T) {
			t.Parallel()

			cfg := encryption.Config{Mode: encryption.ECB, Padding: tt.padding, Random: newStubRandom()}

			params, err := encryption.Encrypt(encryption.SEED, nil, key, cfg)
			if err != nil {
				t.Fatal(err)
			}

			if len(params.Ciphertext) != tt.size {
				t.Fatalf("ciphertext length = %d, want %d", len(params.Ciphertext), tt.size)
			}

			plaintext, err := encryption.Decrypt(encryption.SEED, params, key, cfg)
			if err != nil {
				t.Fatal(err)
			}

			if len(plaintext) != 0 {
				t.Errorf("plaintext = %x, want empty", plaintext)
			}
		})
	}
}

func TestISO10126UsesInjectedRandom(t *testing.T) {
	t.Parallel()

	key := mustHex(t, "9f3c7a1e4b8d2c6a0e5f91d4a7b3c8e2")
	message := []byte("Hi There")

	encrypt := func() []byte {
		cfg := encryption.Config{Mode: encryption.ECB, Padding: encryption.ISO10126, Random: newStubRandom()}

		params, err := encryption.Encrypt(encryption.SEED, message, key, cfg)
		if err != nil {
			t.Fatal(err)
		}

		return params.Ciphertext
	}

	first, second := encrypt(), encrypt()
	if !bytes.Equal(first, second) {
		t.Errorf("same random source produced %x and %x", first, second)
	}

	cfg := encryption.Config{Mode: encryption.ECB, Padding: encryption.ISO10126}

	plaintext, err := encryption.Decrypt(encryption.SEED, &encryption.CipherParams{Ciphertext: first}, key, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(plaintext, message) {
		t.Errorf("plaintext = %q, want %q", plaintext, message)
	}
}

func TestKeyTruncationThroughFramework(t *testing.T) {
	t.Parallel()

	key := mustHex(t, "9f3c7a1e4b8d2c6a0e5f91d4a7b3c8e2")
	long := append(bytes.Clone(key), mustHex(t, "ffeeddccbbaa99887766554433221100")...)
	cfg := encryption.Config{IV: mustHex(t, "101112131415161718191a1b1c1d1e1f")}
	message := []byte("key truncation is not an error")

	short, err := encryption.Encrypt(encryption.SEED, message, key, cfg)
	if err != nil {
		t.Fatal(err)
	}

	extended, err := encryption.Encrypt(encryption.SEED, message, long, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(short.Ciphertext, extended.Ciphertext) {
		t.Errorf("16-byte key gave %x, 32-byte key gave %x", short.Ciphertext, extended.Ciphertext)
	}
}

func TestInputsUnchanged(t *testing.T) {
	t.Parallel()

	key := mustHex(t, "9f3c7a1e4b8d2c6a0e5f91d4a7b3c8e2")
	iv := mustHex(t, "101112131415161718191a1b1c1d1e1f")
	message := []byte("inputs must be byte-identical afterwards")

	keyCopy, ivCopy, messageCopy := bytes.Clone(key), bytes.Clone(iv), bytes.Clone(message)

	cfg := encryption.Config{Mode: encryption.CBC, Padding: encryption.PKCS7, IV: iv}

	params, err := encryption.Encrypt(encryption.SEED, message, key, cfg)
	if err != nil {
		t.Fatal(err)
	}

	ciphertextCopy := bytes.Clone(params.Ciphertext)

	if _, err := encryption.Decrypt(encryption.SEED, params, key, cfg); err != nil {
		t.Fatal(err)
	}

	switch {
	case !bytes.Equal(key, keyCopy):
		t.Error("key modified")
	case !bytes.Equal(iv, ivCopy):
		t.Error("IV modified")
	case !bytes.Equal(message, messageCopy):
		t.Error("message modified")
	case !bytes.Equal(params.Ciphertext, ciphertextCopy):
		t.Error("ciphertext modified")
	}

	if &params.Key[0] == &key[0] || &params.IV[0] == &iv[0] {
		t.Error("params share memory with the caller's key or IV")
	}
}

func TestParallelECBMatchesSerial(t *testing.T) {
	t.Parallel()

	key := mustHex(t, "9f3c7a1e4b8d2c6a0e5f91d4a7b3c8e2")
	message := bytes.Repeat(mustHex(t, "00112233445566778899aabbccddeeff"), 1000)

	serial, err := encryption.Encrypt(encryption.SEED, message, key, encryption.Config{Mode: encryption.ECB})
	if err != nil {
		t.Fatal(err)
	}

	parallelCfg := encryption.Config{Mode: encryption.ECB, Parallel: 7}

	parallel, err := encryption.Encrypt(encryption.SEED, message, key, parallelCfg)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(serial.Ciphertext, parallel.Ciphertext) {
		t.Fatal("parallel ECB differs from serial ECB")
	}

	block := mustHex(t, "c1f2f511296263d0f38e4a99c2b0ba8a")
	for i := 0; i < len(message); i += 16 {
		if !bytes.Equal(parallel.Ciphertext[i:i+16], block) {
			t.Fatalf("block %d = %x, want %x", i/16, parallel.Ciphertext[i:i+16], block)
		}
	}

	plaintext, err := encryption.Decrypt(encryption.SEED, parallel, key, parallelCfg)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(plaintext, message) {
		t.Error("parallel ECB round trip failed")
	}
}

func TestParseOptions(t *testing.T) {
	t.Parallel()

	if alg, err := encryption.ParseAlgorithm("SEED"); err != nil || alg != encryption.SEED {
		t.Errorf("ParseAlgorithm(SEED) = %v, %v", alg, err)
	}

	if alg, err := encryption.ParseAlgorithm("aes-256"); err != nil || alg != encryption.AES {
		t.Errorf("ParseAlgorithm(aes-256) = %v, %v", alg, err)
	}

	if mode, err := encryption.ParseMode("Cbc"); err != nil || mode != encryption.CBC {
		t.Errorf("ParseMode(Cbc) = %v, %v", mode, err)
	}

	if padding, err := encryption.ParsePadding("pkcs5"); err != nil || padding != encryption.PKCS7 {
		t.Errorf("ParsePadding(pkcs5) = %v, %v", padding, err)
	}

	for _, parse := range []func() error{
		func() error { _, err := encryption.ParseAlgorithm("des"); return err },
		func() error { _, err := encryption.ParseMode("cfb"); return err },
		func() error { _, err := encryption.ParsePadding("bitpadding"); return err },
		func() error { _, err := encryption.ParseKDF("scrypt"); return err },
		func() error { _, err := encryption.NewConfig("ofb", "pkcs7", nil); return err },
		func() error { _, err := encryption.NewConfig("cbc", "random", nil); return err },
	} {
		if err := parse(); !errors.Is(err, encryption.ErrUnsupportedOption) {
			t.Errorf("error = %v, want %v", err, encryption.ErrUnsupportedOption)
		}
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	key, err := encryption.GenerateKey(encryption.AES, newStubRandom())
	if err != nil {
		t.Fatal(err)
	}

	if len(key) != 32 {
		t.Errorf("AES key length = %d, want 32", len(key))
	}

	system, err := encryption.GenerateKey(encryption.SEED, nil)
	if err != nil {
		t.Fatal(err)
	}

	if got := system.AsHex(); len(got) != 32 {
		t.Errorf("SEED key = %q, want 32 hex characters", got)
	}

	iv, err := encryption.GenerateIV(encryption.SEED, newStubRandom())
	if err != nil {
		t.Fatal(err)
	}

	if want := bytes.Repeat([]byte{0x11, 0x22, 0x33, 0x44}, 4); !bytes.Equal(iv, want) {
		t.Errorf("IV = %x, want %x", iv, want)
	}
}
