package encryption

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"google.golang.org/protobuf/proto"

	"github.com/tink-crypto/tink-go/v2/insecurecleartextkeyset"
	"github.com/tink-crypto/tink-go/v2/keyset"
	"github.com/tink-crypto/tink-go/v2/mac"
	commonpb "github.com/tink-crypto/tink-go/v2/proto/common_go_proto"
	hmacpb "github.com/tink-crypto/tink-go/v2/proto/hmac_go_proto"
	tinkpb "github.com/tink-crypto/tink-go/v2/proto/tink_go_proto"
	"github.com/tink-crypto/tink-go/v2/tink"
)

const (
	envelopeMagic   = "GOSD"
	envelopeVersion = byte(1)
	envelopeTagSize = sha256.Size

	envelopeFlagExec   = 0x01
	envelopeFlagSalted = 0x02

	envelopeSaltSize  = 16
	envelopeMACKeyLen = 32
)

// envelopeHeaderSize is the fixed part: magic, version, flags, algorithm, mode, padding.
const envelopeHeaderSize = len(envelopeMagic) + 5

// ErrProcessing indicates malformed, truncated or unauthenticated input.
var ErrProcessing = errors.New("envelope processing error")

// envelopeHeader describes how the body of an encrypted file was produced.
type envelopeHeader struct {
	executable bool
	algorithm  Algorithm
	mode       Mode
	padding    Padding

	// salt and iterations are set when the master key was derived from a password.
	salt       []byte
	iterations uint32

	iv []byte
}

func (h envelopeHeader) marshal() []byte {
	header := make([]byte, envelopeHeaderSize, envelopeHeaderSize+envelopeSaltSize+4+len(h.iv))
	copy(header, envelopeMagic)

	var flags byte

	if h.executable {
		flags |= envelopeFlagExec
	}

	if h.salt != nil {
		flags |= envelopeFlagSalted
	}

	header[len(envelopeMagic)] = envelopeVersion
	header[len(envelopeMagic)+1] = flags
	header[len(envelopeMagic)+2] = byte(h.algorithm)
	header[len(envelopeMagic)+3] = byte(h.mode)
	header[len(envelopeMagic)+4] = byte(h.padding)

	if h.salt != nil {
		header = append(header, h.salt...)
		header = binary.BigEndian.AppendUint32(header, h.iterations)
	}

	return append(header, h.iv...)
}

// parseEnvelopeHeader decodes the header at the start of data and returns it with its encoded length.
//
//nolint:cyclop
func parseEnvelopeHeader(data []byte) (envelopeHeader, int, error) {
	var header envelopeHeader

	if len(data) < envelopeHeaderSize {
		return header, 0, fmt.Errorf("%w: envelope header too short", ErrProcessing)
	}

	if !bytes.Equal(data[:len(envelopeMagic)], []byte(envelopeMagic)) {
		return header, 0, fmt.Errorf("%w: invalid envelope magic", ErrProcessing)
	}

	if version := data[len(envelopeMagic)]; version != envelopeVersion {
		return header, 0, fmt.Errorf("%w: unsupported envelope version %d", ErrProcessing, version)
	}

	flags := data[len(envelopeMagic)+1]

	header.executable = flags&envelopeFlagExec != 0
	header.algorithm = Algorithm(data[len(envelopeMagic)+2])
	header.mode = Mode(data[len(envelopeMagic)+3])
	header.padding = Padding(data[len(envelopeMagic)+4])

	switch {
	case !header.algorithm.valid():
		return header, 0, fmt.Errorf("%w: unsupported algorithm %d", ErrProcessing, byte(header.algorithm))
	case !header.mode.valid():
		return header, 0, fmt.Errorf("%w: unsupported mode %d", ErrProcessing, byte(header.mode))
	case !header.padding.valid():
		return header, 0, fmt.Errorf("%w: unsupported padding %d", ErrProcessing, byte(header.padding))
	}

	offset := envelopeHeaderSize

	if flags&envelopeFlagSalted != 0 {
		const iterationsSize = 4

		if len(data) < offset+envelopeSaltSize+iterationsSize {
			return header, 0, fmt.Errorf("%w: salt truncated", ErrProcessing)
		}

		header.salt = data[offset : offset+envelopeSaltSize]
		header.iterations = binary.BigEndian.Uint32(data[offset+envelopeSaltSize:])
		offset += envelopeSaltSize + iterationsSize
	}

	if header.mode.NeedsIV() {
		size := header.algorithm.BlockSize()

		if len(data) < offset+size {
			return header, 0, fmt.Errorf("%w: IV truncated", ErrProcessing)
		}

		header.iv = data[offset : offset+size]
		offset += size
	}

	return header, offset, nil
}

// deriveEnvelopeKeys splits a master key into a cipher key for alg and a MAC key.
func deriveEnvelopeKeys(master []byte, alg Algorithm) ([]byte, []byte, error) {
	encKeyLen := alg.KeySize()

	hkdfReader := hkdf.New(sha256.New, master, nil, []byte("goseed/envelope/"+alg.String()))
	derived := make([]byte, encKeyLen+envelopeMACKeyLen)

	if _, err := io.ReadFull(hkdfReader, derived); err != nil {
		return nil, nil, fmt.Errorf("deriving envelope keys: %w", err)
	}

	return derived[:encKeyLen], derived[encKeyLen:], nil
}

// newEnvelopeMAC builds an HMAC-SHA256 primitive over a raw key through a cleartext Tink keyset.
func newEnvelopeMAC(key []byte) (tink.MAC, error) {
	hmacKey := &hmacpb.HmacKey{
		Version: 0,
		Params: &hmacpb.HmacParams{
			Hash:    commonpb.HashType_SHA256,
			TagSize: envelopeTagSize,
		},
		KeyValue: key,
	}

	serializedKey, err := proto.Marshal(hmacKey)
	if err != nil {
		return nil, fmt.Errorf("serializing HmacKey: %w", err)
	}

	keySet := &tinkpb.Keyset{
		PrimaryKeyId: 1,
		Key: []*tinkpb.Keyset_Key{
			{
				KeyData: &tinkpb.KeyData{
					TypeUrl:         "type.googleapis.com/google.crypto.tink.HmacKey",
					Value:           serializedKey,
					KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
				},
				Status:           tinkpb.KeyStatusType_ENABLED,
				KeyId:            1,
				OutputPrefixType: tinkpb.OutputPrefixType_RAW,
			},
		},
	}

	serializedKeyset, err := proto.Marshal(keySet)
	if err != nil {
		return nil, fmt.Errorf("serializing keyset: %w", err)
	}

	handle, err := insecurecleartextkeyset.Read(keyset.NewBinaryReader(bytes.NewReader(serializedKeyset)))
	if err != nil {
		return nil, fmt.Errorf("creating keyset handle: %w", err)
	}

	primitive, err := mac.New(handle)
	if err != nil {
		return nil, fmt.Errorf("creating MAC: %w", err)
	}

	return primitive, nil
}
