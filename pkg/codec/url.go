package codec

import "github.com/aretw0/cipherkit/pkg/domain"

// URL percent-encodes reserved and non-ASCII characters.
type URL struct{}

func (URL) Encode(text string, _ int) (string, error) {
	return escapeComponent(text), nil
}

func (URL) Decode(text string, _ int) (string, error) {
	out, err := unescapeComponent(text)
	if err != nil {
		return "", domain.NewTransformError(domain.KindInvalidPercentEncoding, err)
	}
	return out, nil
}
