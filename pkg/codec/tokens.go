package codec

import (
	"fmt"
	"strconv"
	"strings"
)

// maxTokenValue caps decoded tokens to one byte.
const maxTokenValue = 0xFF

// encodeTokens renders every code point of text in the given base, zero
// padded to width, joined by single spaces.
func encodeTokens(text string, base, width int) string {
	var b strings.Builder
	b.Grow(len(text) * (width + 1))
	for i, r := range []rune(text) {
		if i > 0 {
			b.WriteByte(' ')
		}
		tok := strconv.FormatInt(int64(r), base)
		for pad := width - len(tok); pad > 0; pad-- {
			b.WriteByte('0')
		}
		b.WriteString(tok)
	}
	return b.String()
}

// decodeTokens splits text on single spaces and maps every token back to a
// character. check validates the raw token before parsing.
func decodeTokens(text string, base int, check func(tok string) error) (string, error) {
	fields := strings.Split(strings.TrimSpace(text), " ")

	var b strings.Builder
	b.Grow(len(fields))
	for i, tok := range fields {
		if err := check(tok); err != nil {
			return "", fmt.Errorf("token %d %q: %w", i+1, tok, err)
		}
		n, err := strconv.ParseUint(tok, base, 32)
		if err != nil {
			return "", fmt.Errorf("token %d %q: %w", i+1, tok, err)
		}
		if n > maxTokenValue {
			return "", fmt.Errorf("token %d %q: value %d exceeds %d", i+1, tok, n, maxTokenValue)
		}
		b.WriteRune(rune(n))
	}
	return b.String(), nil
}
