package codec

import (
	"errors"

	"github.com/aretw0/cipherkit/pkg/domain"
)

// Binary writes each code point as a base-2 token of at least 8 digits.
type Binary struct{}

var errNotBinary = errors.New("not a base-2 number")

func (Binary) Encode(text string, _ int) (string, error) {
	return encodeTokens(text, 2, 8), nil
}

func (Binary) Decode(text string, _ int) (string, error) {
	out, err := decodeTokens(text, 2, func(tok string) error {
		if tok == "" {
			return errNotBinary
		}
		for i := 0; i < len(tok); i++ {
			if tok[i] != '0' && tok[i] != '1' {
				return errNotBinary
			}
		}
		return nil
	})
	if err != nil {
		return "", domain.NewTransformError(domain.KindInvalidBinaryToken, err)
	}
	return out, nil
}
