package encryption

import (
	"crypto/md5" //nolint:gosec // EVP_BytesToKey is defined over MD5
	"crypto/sha256"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// KDF selects how a password is stretched into key material.
type KDF byte

const (
	// EvpKDF is OpenSSL's EVP_BytesToKey with MD5, as used by the "Salted__" format.
	EvpKDF KDF = iota + 1
	// PBKDF2 is PBKDF2 with HMAC-SHA256.
	PBKDF2
)

const (
	// DefaultPBKDF2Iterations is the iteration count used when none is configured.
	DefaultPBKDF2Iterations = 250_000

	// SaltSize is the salt length of the OpenSSL-compatible format.
	SaltSize = 8
)

// ParseKDF maps a case-insensitive name to a KDF.
func ParseKDF(name string) (KDF, error) {
	switch strings.ToLower(name) {
	case "evp", "evpkdf":
		return EvpKDF, nil
	case "pbkdf2":
		return PBKDF2, nil
	default:
		return 0, fmt.Errorf("%w: kdf %q", ErrUnsupportedOption, name)
	}
}

func (k KDF) String() string {
	switch k {
	case EvpKDF:
		return "EvpKDF"
	case PBKDF2:
		return "PBKDF2"
	default:
		return fmt.Sprintf("KDF(%d)", byte(k))
	}
}

// defaultIterations is the iteration count for the KDF when the caller does not set one.
func (k KDF) defaultIterations() int {
	if k == PBKDF2 {
		return DefaultPBKDF2Iterations
	}

	return 1
}

// DeriveKey stretches password and salt into keyLen bytes of key followed by ivLen bytes of IV.
// An iteration count below 1 selects the KDF's default.
func DeriveKey(kdf KDF, password, salt []byte, keyLen, ivLen, iterations int) (key, iv []byte, err error) {
	if iterations < 1 {
		iterations = kdf.defaultIterations()
	}

	var material []byte

	switch kdf {
	case EvpKDF:
		material = evpBytesToKey(password, salt, keyLen+ivLen, iterations)
	case PBKDF2:
		material = pbkdf2.Key(password, salt, iterations, keyLen+ivLen, sha256.New)
	default:
		return nil, nil, fmt.Errorf("%w: kdf %d", ErrUnsupportedOption, byte(kdf))
	}

	return material[:keyLen], material[keyLen:], nil
}

// evpBytesToKey chains MD5 digests D_i = MD5^iterations(D_{i-1} || password || salt)
// until n bytes are available.
func evpBytesToKey(password, salt []byte, n, iterations int) []byte {
	var (
		derived []byte
		block   []byte
	)

	for len(derived) < n {
		hasher := md5.New() //nolint:gosec

		hasher.Write(block)
		hasher.Write(password)
		hasher.Write(salt)

		block = hasher.Sum(nil)

		for i := 1; i < iterations; i++ {
			sum := md5.Sum(block) //nolint:gosec

			block = sum[:]
		}

		derived = append(derived, block...)
	}

	return derived[:n]
}
