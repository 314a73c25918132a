package codec

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const upperHex = "0123456789ABCDEF"

// isUnreserved reports whether b is left untouched by component escaping.
// The set matches the classic encodeURIComponent alphabet.
func isUnreserved(b byte) bool {
	switch {
	case 'A' <= b && b <= 'Z', 'a' <= b && b <= 'z', '0' <= b && b <= '9':
		return true
	}
	switch b {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// escapeComponent percent-encodes every byte outside the unreserved set.
func escapeComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0F])
	}
	return b.String()
}

// unescapeComponent reverses escapeComponent. Every '%' must start a two
// digit hex escape and every run of consecutive escapes must decode to valid
// UTF-8. '+' is kept literally.
func unescapeComponent(s string) (string, error) {
	if !strings.Contains(s, "%") {
		return s, nil
	}

	var b strings.Builder
	b.Grow(len(s))
	var run []byte
	flush := func(offset int) error {
		if len(run) == 0 {
			return nil
		}
		if !utf8.Valid(run) {
			return fmt.Errorf("escape sequence ending at offset %d is not valid UTF-8", offset)
		}
		b.Write(run)
		run = run[:0]
		return nil
	}

	for i := 0; i < len(s); {
		if s[i] != '%' {
			if err := flush(i); err != nil {
				return "", err
			}
			b.WriteByte(s[i])
			i++
			continue
		}
		if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
			end := min(i+3, len(s))
			return "", fmt.Errorf("malformed escape %q at offset %d", s[i:end], i)
		}
		run = append(run, unhex(s[i+1])<<4|unhex(s[i+2]))
		i += 3
	}
	if err := flush(len(s)); err != nil {
		return "", err
	}
	return b.String(), nil
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
