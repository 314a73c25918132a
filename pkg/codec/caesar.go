package codec

import (
	"strings"

	"github.com/aretw0/cipherkit/pkg/domain"
)

// Caesar rotates ASCII letters within their case. Everything else passes
// through unchanged.
type Caesar struct{}

func (Caesar) Encode(text string, shift int) (string, error) {
	return rotate(text, domain.NormalizeShift(shift)), nil
}

// Decode is Encode with the complementary shift.
func (c Caesar) Decode(text string, shift int) (string, error) {
	return c.Encode(text, 26-domain.NormalizeShift(shift))
}

func rotate(text string, n int) string {
	if n == 0 {
		return text
	}
	return strings.Map(func(r rune) rune {
		switch {
		case 'A' <= r && r <= 'Z':
			return 'A' + (r-'A'+rune(n))%26
		case 'a' <= r && r <= 'z':
			return 'a' + (r-'a'+rune(n))%26
		}
		return r
	}, text)
}
