package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aretw0/cipherkit/pkg/domain"
)

// JSON pretty-prints on Encode and minifies on Decode. Both directions parse
// the input and re-serialize the parsed value: repeated keys keep their first
// position and their last value, numbers are written in their shortest form.
type JSON struct{}

const jsonIndent = "  "

var errNotJSON = errors.New("input is not a single valid JSON value")

func (JSON) Encode(text string, _ int) (string, error) {
	return FormatJSON(text)
}

func (JSON) Decode(text string, _ int) (string, error) {
	return MinifyJSON(text)
}

// FormatJSON re-serializes text with two-space indentation.
func FormatJSON(text string) (string, error) {
	return reserialize(text, jsonIndent)
}

// MinifyJSON re-serializes text without insignificant whitespace.
func MinifyJSON(text string) (string, error) {
	return reserialize(text, "")
}

func reserialize(text, indent string) (string, error) {
	v, err := parseJSON(text)
	if err != nil {
		return "", domain.NewTransformError(domain.KindInvalidJSON, err)
	}
	var b strings.Builder
	v.write(&b, indent, 0)
	return b.String(), nil
}

// jsonNode is a parsed value. Scalars hold their serialized form.
type jsonNode struct {
	scalar string
	items  []*jsonNode // arrays
	keys   []string    // objects, in first-seen order
	fields map[string]*jsonNode
	object bool
	array  bool
}

func parseJSON(text string) (*jsonNode, error) {
	src := bytes.TrimSpace([]byte(text))
	if !json.Valid(src) {
		var v any
		if err := json.Unmarshal(src, &v); err != nil {
			return nil, err
		}
		return nil, errNotJSON
	}

	dec := json.NewDecoder(bytes.NewReader(src))
	dec.UseNumber()
	v, err := readNode(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errNotJSON
	}
	return v, nil
}

func readNode(dec *json.Decoder) (*jsonNode, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			n := &jsonNode{array: true}
			for dec.More() {
				item, err := readNode(dec)
				if err != nil {
					return nil, err
				}
				n.items = append(n.items, item)
			}
			_, err := dec.Token() // ']'
			return n, err
		case '{':
			n := &jsonNode{object: true, fields: make(map[string]*jsonNode)}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T", kt)
				}
				val, err := readNode(dec)
				if err != nil {
					return nil, err
				}
				if _, seen := n.fields[key]; !seen {
					n.keys = append(n.keys, key)
				}
				n.fields[key] = val
			}
			_, err := dec.Token() // '}'
			return n, err
		}
		return nil, fmt.Errorf("unexpected delimiter %q", t)
	case string:
		var b strings.Builder
		writeString(&b, t)
		return &jsonNode{scalar: b.String()}, nil
	case json.Number:
		return &jsonNode{scalar: shortNumber(t)}, nil
	case bool:
		return &jsonNode{scalar: strconv.FormatBool(t)}, nil
	case nil:
		return &jsonNode{scalar: "null"}, nil
	}
	return nil, fmt.Errorf("unexpected token %T", tok)
}

func (n *jsonNode) write(b *strings.Builder, indent string, depth int) {
	switch {
	case n.array:
		if len(n.items) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				b.WriteByte(',')
			}
			newline(b, indent, depth+1)
			item.write(b, indent, depth+1)
		}
		newline(b, indent, depth)
		b.WriteByte(']')
	case n.object:
		if len(n.keys) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteByte('{')
		for i, k := range n.keys {
			if i > 0 {
				b.WriteByte(',')
			}
			newline(b, indent, depth+1)
			writeString(b, k)
			b.WriteByte(':')
			if indent != "" {
				b.WriteByte(' ')
			}
			n.fields[k].write(b, indent, depth+1)
		}
		newline(b, indent, depth)
		b.WriteByte('}')
	default:
		b.WriteString(n.scalar)
	}
}

func newline(b *strings.Builder, indent string, depth int) {
	if indent == "" {
		return
	}
	b.WriteByte('\n')
	for range depth {
		b.WriteString(indent)
	}
}

// shortNumber renders a number literal as a float64 in its shortest form.
// Values out of float64 range become null.
func shortNumber(n json.Number) string {
	f, err := strconv.ParseFloat(string(n), 64)
	switch {
	case math.IsInf(f, 0):
		return "null"
	case err != nil:
		return string(n)
	case f == 0:
		return "0"
	}
	// encoding/json formats floats with the same exponent thresholds.
	out, err := json.Marshal(f)
	if err != nil {
		return string(n)
	}
	return string(out)
}

// writeString quotes s, escaping only quotes, backslashes and control
// characters.
func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}
