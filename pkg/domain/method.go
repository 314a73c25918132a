package domain

import (
	"fmt"
	"strings"
)

// Method identifies a transformation scheme.
type Method string

const (
	MethodBase64 Method = "base64"
	MethodURL    Method = "url"
	MethodHTML   Method = "html"
	MethodCaesar Method = "caesar"
	MethodBinary Method = "binary"
	MethodHex    Method = "hex"
	MethodJSON   Method = "json"
)

// methodInfo holds the presentation metadata of a method.
type methodInfo struct {
	label       string
	description string
}

var methodOrder = []Method{
	MethodBase64,
	MethodURL,
	MethodHTML,
	MethodCaesar,
	MethodBinary,
	MethodHex,
	MethodJSON,
}

var methodTable = map[Method]methodInfo{
	MethodBase64: {"Base64", "Standard Base64 encoding"},
	MethodURL:    {"URL", "URL encoding for special characters"},
	MethodHTML:   {"HTML", "HTML entities encoding"},
	MethodCaesar: {"Caesar Cipher", "Shift letters by a fixed number"},
	MethodBinary: {"Binary", "Convert to binary representation"},
	MethodHex:    {"Hexadecimal", "Convert to hexadecimal representation"},
	MethodJSON:   {"JSON", "Format or minify JSON data"},
}

// Methods returns every supported method in display order.
func Methods() []Method {
	out := make([]Method, len(methodOrder))
	copy(out, methodOrder)
	return out
}

// ParseMethod resolves a method identifier, ignoring case and surrounding space.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
	return m, nil
}

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	_, ok := methodTable[m]
	return ok
}

// Label returns the human readable name of the method.
func (m Method) Label() string {
	if info, ok := methodTable[m]; ok {
		return info.label
	}
	return string(m)
}

// Description returns a one-line summary of the method.
func (m Method) Description() string {
	return methodTable[m].description
}

func (m Method) String() string {
	return string(m)
}

// Mode selects the direction of a transformation.
type Mode string

const (
	ModeEncode Mode = "encode"
	ModeDecode Mode = "decode"
)

// ParseMode resolves a mode identifier, ignoring case and surrounding space.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeEncode, ModeDecode:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == ModeDecode {
		return ModeEncode
	}
	return ModeDecode
}

// Label returns the title used by shells ("Encoder" / "Decoder").
func (m Mode) Label() string {
	if m == ModeDecode {
		return "Decoder"
	}
	return "Encoder"
}

func (m Mode) String() string {
	return string(m)
}
