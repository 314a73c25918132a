package codec

import (
	"errors"

	"github.com/aretw0/cipherkit/pkg/domain"
)

// Hex writes each code point as a lower-case base-16 token of at least 2 digits.
type Hex struct{}

var (
	errHexLength = errors.New("expected exactly 2 hex digits")
	errNotHex    = errors.New("not a base-16 number")
)

func (Hex) Encode(text string, _ int) (string, error) {
	return encodeTokens(text, 16, 2), nil
}

func (Hex) Decode(text string, _ int) (string, error) {
	out, err := decodeTokens(text, 16, func(tok string) error {
		if len(tok) != 2 {
			return errHexLength
		}
		if !isHex(tok[0]) || !isHex(tok[1]) {
			return errNotHex
		}
		return nil
	})
	if err != nil {
		return "", domain.NewTransformError(domain.KindInvalidHexToken, err)
	}
	return out, nil
}
