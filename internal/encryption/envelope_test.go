package encryption

import (
	"bytes"
	"errors"
	"testing"
)

func TestEnvelopeHeaderRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header envelopeHeader
	}{
		{
			name:   "ecb with key",
			header: envelopeHeader{algorithm: SEED, mode: ECB, padding: PKCS7},
		},
		{
			name: "cbc with password",
			header: envelopeHeader{
				executable: true,
				algorithm:  AES,
				mode:       CBC,
				padding:    ISO97971,
				salt:       bytes.Repeat([]byte{0x5a}, envelopeSaltSize),
				iterations: 250_000,
				iv:         bytes.Repeat([]byte{0x01}, AES.BlockSize()),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			encoded := tt.header.marshal()
			body := append(bytes.Clone(encoded), "ciphertext"...)

			got, offset, err := parseEnvelopeHeader(body)
			if err != nil {
				t.Fatal(err)
			}

			if offset != len(encoded) {
				t.Errorf("offset = %d, want %d", offset, len(encoded))
			}

			switch {
			case got.executable != tt.header.executable,
				got.algorithm != tt.header.algorithm,
				got.mode != tt.header.mode,
				got.padding != tt.header.padding,
				got.iterations != tt.header.iterations,
				!bytes.Equal(got.salt, tt.header.salt),
				!bytes.Equal(got.iv, tt.header.iv):
				t.Errorf("parsed %+v, want %+v", got, tt.header)
			}
		})
	}
}

func TestParseEnvelopeHeaderRejects(t *testing.T) {
	t.Parallel()

	valid := envelopeHeader{algorithm: SEED, mode: CBC, padding: PKCS7, iv: make([]byte, 16)}.marshal()

	corrupt := func(index int, value byte) []byte {
		data := bytes.Clone(valid)
		data[index] = value

		return data
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"short", valid[:3]},
		{"magic", corrupt(0, 'X')},
		{"version", corrupt(len(envelopeMagic), 9)},
		{"algorithm", corrupt(len(envelopeMagic)+2, 0)},
		{"mode", corrupt(len(envelopeMagic)+3, 7)},
		{"padding", corrupt(len(envelopeMagic)+4, 0)},
		{"truncated iv", valid[:len(valid)-1]},
		{"truncated salt", corrupt(len(envelopeMagic)+1, envelopeFlagSalted)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, _, err := parseEnvelopeHeader(tt.data); !errors.Is(err, ErrProcessing) {
				t.Errorf("error = %v, want %v", err, ErrProcessing)
			}
		})
	}
}

func TestDeriveEnvelopeKeys(t *testing.T) {
	t.Parallel()

	master := bytes.Repeat([]byte{0x42}, 32)

	seedKey, seedMAC, err := deriveEnvelopeKeys(master, SEED)
	if err != nil {
		t.Fatal(err)
	}

	aesKey, aesMAC, err := deriveEnvelopeKeys(master, AES)
	if err != nil {
		t.Fatal(err)
	}

	if len(seedKey) != SEED.KeySize() || len(aesKey) != AES.KeySize() {
		t.Errorf("key lengths %d and %d, want %d and %d", len(seedKey), len(aesKey), SEED.KeySize(), AES.KeySize())
	}

	if len(seedMAC) != envelopeMACKeyLen {
		t.Errorf("MAC key length = %d, want %d", len(seedMAC), envelopeMACKeyLen)
	}

	if bytes.Equal(seedMAC, aesMAC) {
		t.Error("MAC keys for different algorithms are equal")
	}

	again, _, err := deriveEnvelopeKeys(master, SEED)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(seedKey, again) {
		t.Error("key derivation is not deterministic")
	}
}

func TestEnvelopeMAC(t *testing.T) {
	t.Parallel()

	primitive, err := newEnvelopeMAC(bytes.Repeat([]byte{0x0b}, envelopeMACKeyLen))
	if err != nil {
		t.Fatal(err)
	}

	data := []byte("header and ciphertext")

	tag, err := primitive.ComputeMAC(data)
	if err != nil {
		t.Fatal(err)
	}

	if len(tag) != envelopeTagSize {
		t.Fatalf("tag length = %d, want %d", len(tag), envelopeTagSize)
	}

	if err := primitive.VerifyMAC(tag, data); err != nil {
		t.Errorf("VerifyMAC on untouched data: %v", err)
	}

	data[0] ^= 1

	if err := primitive.VerifyMAC(tag, data); err == nil {
		t.Error("VerifyMAC accepted modified data")
	}
}
