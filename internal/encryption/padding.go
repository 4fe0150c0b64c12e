package encryption

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Padding selects how a final partial block is completed on encryption and removed on decryption.
type Padding byte

const (
	// NoPadding requires block-aligned input.
	NoPadding Padding = iota + 1
	// ZeroPadding fills with zero bytes; aligned input is left untouched.
	ZeroPadding
	// PKCS7 appends n bytes of value n.
	PKCS7
	// AnsiX923 appends n-1 zero bytes and a final byte n.
	AnsiX923
	// ISO10126 appends n-1 random bytes and a final byte n.
	ISO10126
	// ISO97971 appends 0x80 followed by zero bytes.
	ISO97971
)

const iso97971Marker = 0x80

// ParsePadding maps a case-insensitive name to a Padding.
func ParsePadding(name string) (Padding, error) {
	switch strings.ToLower(name) {
	case "none", "nopadding":
		return NoPadding, nil
	case "zero", "zeropadding":
		return ZeroPadding, nil
	case "pkcs7", "pkcs5":
		return PKCS7, nil
	case "ansix923":
		return AnsiX923, nil
	case "iso10126":
		return ISO10126, nil
	case "iso97971":
		return ISO97971, nil
	default:
		return 0, fmt.Errorf("%w: padding %q", ErrUnsupportedOption, name)
	}
}

func (p Padding) String() string {
	switch p {
	case NoPadding:
		return "NoPadding"
	case ZeroPadding:
		return "ZeroPadding"
	case PKCS7:
		return "PKCS7"
	case AnsiX923:
		return "AnsiX923"
	case ISO10126:
		return "ISO10126"
	case ISO97971:
		return "ISO97971"
	default:
		return fmt.Sprintf("Padding(%d)", byte(p))
	}
}

func (p Padding) valid() bool {
	return p >= NoPadding && p <= ISO97971
}

// removesBytes reports whether decryption may strip bytes from the final block,
// which obliges a decrypting session to hold that block back until it is finalized.
func (p Padding) removesBytes() bool {
	return p != NoPadding
}

// pad extends data to a multiple of blockSize. data is consumed; the result may share its backing array.
func (p Padding) pad(data []byte, blockSize int, random io.Reader) ([]byte, error) {
	remainder := len(data) % blockSize
	fill := blockSize - remainder

	switch p {
	case NoPadding:
		if remainder != 0 {
			return nil, fmt.Errorf("%w: %d trailing bytes with no padding", ErrInvalidBlockSize, remainder)
		}

		return data, nil
	case ZeroPadding:
		if remainder == 0 {
			return data, nil
		}

		return append(data, make([]byte, fill)...), nil
	case PKCS7:
		return append(data, bytes.Repeat([]byte{byte(fill)}, fill)...), nil
	case AnsiX923:
		data = append(data, make([]byte, fill-1)...)

		return append(data, byte(fill)), nil
	case ISO10126:
		filler := make([]byte, fill-1)
		if _, err := io.ReadFull(random, filler); err != nil {
			return nil, fmt.Errorf("generating padding: %w", err)
		}

		data = append(data, filler...)

		return append(data, byte(fill)), nil
	case ISO97971:
		return ZeroPadding.pad(append(data, iso97971Marker), blockSize, random)
	default:
		return nil, fmt.Errorf("%w: padding %d", ErrUnsupportedOption, byte(p))
	}
}

// unpad strips the padding from the final decrypted block and returns the bytes to keep.
// An empty block is only valid for schemes that add nothing to empty input.
//
//nolint:cyclop
func (p Padding) unpad(last []byte, blockSize int) ([]byte, error) {
	switch p {
	case NoPadding:
		return last, nil
	case ZeroPadding:
		return bytes.TrimRight(last, "\x00"), nil
	case ISO97971:
		trimmed := bytes.TrimRight(last, "\x00")
		if len(trimmed) == 0 || trimmed[len(trimmed)-1] != iso97971Marker {
			return nil, fmt.Errorf("%w: missing 0x80 marker", ErrInvalidPadding)
		}

		return trimmed[:len(trimmed)-1], nil
	case PKCS7, AnsiX923, ISO10126:
	default:
		return nil, fmt.Errorf("%w: padding %d", ErrUnsupportedOption, byte(p))
	}

	length := len(last)
	if length == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrInvalidPadding)
	}

	fill := int(last[length-1])
	if fill == 0 || fill > length || fill > blockSize {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidPadding, fill)
	}

	for i := length - fill; i < length-1; i++ {
		switch {
		case p == PKCS7 && last[i] != byte(fill):
			return nil, ErrInvalidPadding
		case p == AnsiX923 && last[i] != 0:
			return nil, ErrInvalidPadding
		}
	}

	return last[:length-fill], nil
}
