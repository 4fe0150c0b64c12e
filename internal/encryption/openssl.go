package encryption

import (
	"bytes"
	"encoding/base64"
	"fmt"
)

// opensslMagic prefixes salted ciphertext in the OpenSSL "enc" format.
const opensslMagic = "Salted__"

// String renders the params in the OpenSSL format: base64 of "Salted__" || salt || ciphertext,
// or of the bare ciphertext when there is no salt.
func (p *CipherParams) String() string {
	var buf bytes.Buffer

	if len(p.Salt) > 0 {
		buf.WriteString(opensslMagic)
		buf.Write(p.Salt)
	}

	buf.Write(p.Ciphertext)

	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

// ParseOpenSSL decodes the OpenSSL format produced by CipherParams.String.
func ParseOpenSSL(encoded string) (*CipherParams, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding base64: %w", err)
	}

	params := &CipherParams{}

	if bytes.HasPrefix(raw, []byte(opensslMagic)) {
		if len(raw) < len(opensslMagic)+SaltSize {
			return nil, fmt.Errorf("%w: salted header truncated", ErrProcessing)
		}

		params.Salt = raw[len(opensslMagic) : len(opensslMagic)+SaltSize]
		raw = raw[len(opensslMagic)+SaltSize:]
	}

	params.Ciphertext = raw

	return params, nil
}
