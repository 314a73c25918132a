package codec

import (
	"encoding/base64"
	"strings"

	"github.com/aretw0/cipherkit/pkg/domain"
)

// Base64 escapes text as a URI component before base64 encoding it, so any
// UTF-8 input survives the round trip through the ASCII-only alphabet.
type Base64 struct{}

func (Base64) Encode(text string, _ int) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(escapeComponent(text))), nil
}

func (Base64) Decode(text string, _ int) (string, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			return -1
		}
		return r
	}, text)

	enc := base64.StdEncoding
	if len(clean)%4 != 0 {
		enc = base64.RawStdEncoding
	}
	raw, err := enc.DecodeString(clean)
	if err != nil {
		return "", domain.NewTransformError(domain.KindInvalidBase64, err)
	}

	out, err := unescapeComponent(latin1(raw))
	if err != nil {
		return "", domain.NewTransformError(domain.KindInvalidPercentEncoding, err)
	}
	return out, nil
}

// latin1 maps every byte to the code point of the same value.
func latin1(raw []byte) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		b.WriteRune(rune(c))
	}
	return b.String()
}
