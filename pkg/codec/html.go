package codec

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// HTML escapes the five markup-significant characters to entities.
// It never fails: unknown or malformed entities are decoded literally.
type HTML struct{}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

var namedEntities = map[string]string{
	"amp":  "&",
	"lt":   "<",
	"gt":   ">",
	"quot": `"`,
	"apos": "'",
}

// maxEntityLen bounds the search for the terminating ';'.
const maxEntityLen = 32

func (HTML) Encode(text string, _ int) (string, error) {
	return htmlEscaper.Replace(text), nil
}

func (HTML) Decode(text string, _ int) (string, error) {
	if !strings.Contains(text, "&") {
		return text, nil
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if text[i] != '&' {
			b.WriteByte(text[i])
			i++
			continue
		}
		if s, n, ok := decodeEntity(text[i:]); ok {
			b.WriteString(s)
			i += n
			continue
		}
		b.WriteByte('&')
		i++
	}
	return b.String(), nil
}

// decodeEntity decodes the entity at the start of s ("&...;").
// It returns the replacement, the number of bytes consumed and whether s
// started with a recognised entity.
func decodeEntity(s string) (string, int, bool) {
	limit := min(len(s), maxEntityLen+2)
	end := strings.IndexByte(s[1:limit], ';')
	if end <= 0 {
		return "", 0, false
	}
	name := s[1 : end+1]
	consumed := end + 2

	if name[0] != '#' {
		v, ok := namedEntities[name]
		return v, consumed, ok
	}

	digits, base := name[1:], 10
	if len(digits) > 0 && (digits[0] == 'x' || digits[0] == 'X') {
		digits, base = digits[1:], 16
	}
	if digits == "" {
		return "", 0, false
	}
	n, err := strconv.ParseUint(digits, base, 32)
	if err != nil || n == 0 || !utf8.ValidRune(rune(n)) {
		return "", 0, false
	}
	return string(rune(n)), consumed, true
}
