package codec_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/cipherkit/pkg/codec"
	"github.com/aretw0/cipherkit/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, m domain.Method, text string, shift int) string {
	t.Helper()
	c, err := codec.Default().Lookup(m)
	require.NoError(t, err)
	out, err := c.Encode(text, shift)
	require.NoError(t, err)
	return out
}

func decode(t *testing.T, m domain.Method, text string, shift int) (string, error) {
	t.Helper()
	c, err := codec.Default().Lookup(m)
	require.NoError(t, err)
	return c.Decode(text, shift)
}

func TestRegistry_Lookup(t *testing.T) {
	reg := codec.Default()
	for _, m := range domain.Methods() {
		c, err := reg.Lookup(m)
		assert.NoError(t, err, m)
		assert.NotNil(t, c, m)
	}

	_, err := reg.Lookup("rot13")
	assert.ErrorIs(t, err, domain.ErrUnknownMethod)
	assert.Equal(t, domain.Methods(), reg.Methods())
}

func TestRegistry_Custom(t *testing.T) {
	upper := codec.Func{
		EncodeFunc: func(text string, _ int) (string, error) { return text + "!", nil },
		DecodeFunc: func(text string, _ int) (string, error) { return text, nil },
	}
	reg := codec.NewRegistry(map[domain.Method]codec.Codec{domain.MethodHex: upper})

	c, err := reg.Lookup(domain.MethodHex)
	require.NoError(t, err)
	out, err := c.Encode("hi", 0)
	require.NoError(t, err)
	assert.Equal(t, "hi!", out)
	assert.Equal(t, []domain.Method{domain.MethodHex}, reg.Methods())

	_, err = reg.Lookup(domain.MethodBase64)
	assert.ErrorIs(t, err, domain.ErrUnknownMethod)
}

func TestConcreteScenarios(t *testing.T) {
	assert.Equal(t, "SGVsbG8=", encode(t, domain.MethodBase64, "Hello", 0))
	assert.Equal(t, "41 42", encode(t, domain.MethodHex, "AB", 0))
	assert.Equal(t, "01000001", encode(t, domain.MethodBinary, "A", 0))
	assert.Equal(t, "def", encode(t, domain.MethodCaesar, "abc", 3))

	out, err := decode(t, domain.MethodHex, "41 42", 0)
	require.NoError(t, err)
	assert.Equal(t, "AB", out)

	out, err = decode(t, domain.MethodCaesar, "def", 3)
	require.NoError(t, err)
	assert.Equal(t, "abc", out)

	_, err = decode(t, domain.MethodJSON, "not json", 0)
	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidJSON, domain.KindOf(err))
	assert.ErrorIs(t, err, domain.ErrInvalidJSON)
}

func TestRoundTrip_ASCII(t *testing.T) {
	samples := []string{
		"Hello, World!",
		"a",
		"  leading and trailing  ",
		"symbols: ~!@#$%^&*()_+-=[]{}|;':\",./<>?`",
		"tabs\tand\nnewlines",
		"100% sure & <done>",
	}
	methods := []domain.Method{domain.MethodBase64, domain.MethodURL, domain.MethodHex, domain.MethodBinary}

	for _, m := range methods {
		for _, s := range samples {
			enc := encode(t, m, s, 0)
			dec, err := decode(t, m, enc, 0)
			require.NoError(t, err, "%s: %q", m, s)
			assert.Equal(t, s, dec, "%s: %q", m, s)
		}
	}
}

func TestRoundTrip_Unicode(t *testing.T) {
	for _, m := range []domain.Method{domain.MethodBase64, domain.MethodURL, domain.MethodHTML} {
		s := "héllo wörld ✓ 日本"
		dec, err := decode(t, m, encode(t, m, s, 0), 0)
		require.NoError(t, err, m)
		assert.Equal(t, s, dec, m)
	}
}

func TestCaesar(t *testing.T) {
	text := "The Quick Brown Fox, 123!"
	for s := domain.MinShift; s <= domain.MaxShift; s++ {
		dec, err := decode(t, domain.MethodCaesar, encode(t, domain.MethodCaesar, text, s), s)
		require.NoError(t, err)
		assert.Equal(t, text, dec, "shift %d", s)
	}

	assert.Equal(t, encode(t, domain.MethodCaesar, text, 3), encode(t, domain.MethodCaesar, text, 29))
	assert.Equal(t, encode(t, domain.MethodCaesar, text, 23), encode(t, domain.MethodCaesar, text, -3))
	assert.Equal(t, "DEF abc", encode(t, domain.MethodCaesar, "ABC xyz", 3))
	assert.Equal(t, "ñ Ü", encode(t, domain.MethodCaesar, "ñ Ü", 5))
}

func TestBase64_Decode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		kind  domain.ErrorKind
	}{
		{"Padded", "SGVsbG8=", "Hello", domain.KindNone},
		{"Unpadded", "SGVsbG8", "Hello", domain.KindNone},
		{"Whitespace", " SGVs\nbG8= ", "Hello", domain.KindNone},
		{"Escaped UTF-8", "aCVDMyVBOQ==", "hé", domain.KindNone},
		{"Bad Alphabet", "SGV$bG8=", "", domain.KindInvalidBase64},
		{"Bad Length", "SGVsb", "", domain.KindInvalidBase64},
		{"Bad Escape", "JVpa", "", domain.KindInvalidPercentEncoding}, // "%ZZ"
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decode(t, domain.MethodBase64, tt.input, 0)
			if tt.kind != domain.KindNone {
				require.Error(t, err)
				assert.Equal(t, tt.kind, domain.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestURL(t *testing.T) {
	assert.Equal(t, "a%20b%26c%3Dd", encode(t, domain.MethodURL, "a b&c=d", 0))
	assert.Equal(t, "-_.!~*'()", encode(t, domain.MethodURL, "-_.!~*'()", 0))
	assert.Equal(t, "caf%C3%A9", encode(t, domain.MethodURL, "café", 0))

	out, err := decode(t, domain.MethodURL, "a+b%20c", 0)
	require.NoError(t, err)
	assert.Equal(t, "a+b c", out)

	for _, bad := range []string{"%", "%2", "%zz", "100%", "%C3"} {
		_, err := decode(t, domain.MethodURL, bad, 0)
		assert.Equal(t, domain.KindInvalidPercentEncoding, domain.KindOf(err), bad)
		assert.ErrorIs(t, err, domain.ErrInvalidPercentEncoding, bad)
	}
}

func TestHTML(t *testing.T) {
	assert.Equal(t,
		"&lt;a href=&quot;x&quot;&gt;Tom &amp; Jerry&#39;s&lt;/a&gt;",
		encode(t, domain.MethodHTML, `<a href="x">Tom & Jerry's</a>`, 0))

	tests := []struct {
		input string
		want  string
	}{
		{"&lt;b&gt;", "<b>"},
		{"&amp;lt;", "&lt;"},
		{"&#65;&#x42;&#X43;", "ABC"},
		{"&apos;&quot;", `'"`},
		{"&copy; stays", "&copy; stays"},
		{"&#xZZ; &#; &", "&#xZZ; &#; &"},
		{"&#0; &#1114112;", "&#0; &#1114112;"},
		{"fish & chips", "fish & chips"},
	}
	for _, tt := range tests {
		got, err := decode(t, domain.MethodHTML, tt.input, 0)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestBinary(t *testing.T) {
	assert.Equal(t, "01001000 01101001", encode(t, domain.MethodBinary, "Hi", 0))
	assert.Equal(t, "11101001", encode(t, domain.MethodBinary, "é", 0))
	assert.Equal(t, "10000010101100", encode(t, domain.MethodBinary, "€", 0))

	out, err := decode(t, domain.MethodBinary, "1001000 1101001\n", 0)
	require.NoError(t, err)
	assert.Equal(t, "Hi", out)

	for _, bad := range []string{"0100000a", "01000001  01000010", "100000000", "10000010101100"} {
		_, err := decode(t, domain.MethodBinary, bad, 0)
		assert.Equal(t, domain.KindInvalidBinaryToken, domain.KindOf(err), bad)
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "68 69 0a", encode(t, domain.MethodHex, "hi\n", 0))
	assert.Equal(t, "20ac", encode(t, domain.MethodHex, "€", 0))

	out, err := decode(t, domain.MethodHex, "4A 4b", 0)
	require.NoError(t, err)
	assert.Equal(t, "JK", out)

	for _, bad := range []string{"4", "414", "4g", "41  42", "20ac"} {
		_, err := decode(t, domain.MethodHex, bad, 0)
		assert.Equal(t, domain.KindInvalidHexToken, domain.KindOf(err), bad)
	}
}

func TestJSON(t *testing.T) {
	input := `{"b":1,"a":[true,null,"x"],"c":{}}`
	formatted := encode(t, domain.MethodJSON, input, 0)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": [\n    true,\n    null,\n    \"x\"\n  ],\n  \"c\": {}\n}", formatted)

	// format is idempotent
	assert.Equal(t, formatted, encode(t, domain.MethodJSON, formatted, 0))

	minified, err := decode(t, domain.MethodJSON, formatted, 0)
	require.NoError(t, err)
	assert.Equal(t, input, minified)

	var want, got any
	require.NoError(t, json.Unmarshal([]byte(input), &want))
	require.NoError(t, json.Unmarshal([]byte(minified), &got))
	assert.Equal(t, want, got)

	c, err := codec.Default().Lookup(domain.MethodJSON)
	require.NoError(t, err)
	for _, bad := range []string{"not json", `{"a":}`, "[1,2", "1 2"} {
		_, err := c.Encode(bad, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidJSON, bad)
		_, err = c.Decode(bad, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidJSON, bad)
	}
}

func TestJSON_Scalars(t *testing.T) {
	assert.Equal(t, "42", encode(t, domain.MethodJSON, " 42 ", 0))
	assert.Equal(t, `"s"`, encode(t, domain.MethodJSON, `"s"`, 0))
	assert.Equal(t, "[]", encode(t, domain.MethodJSON, "[ ]", 0))
}

func TestJSON_Reserialize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		minified string
	}{
		{"Duplicate Keys Keep Last Value", `{"a":1.0,"b":0,"a":2}`, `{"a":2,"b":0}`},
		{"Number Forms", `["A", 1E2, -0.50, 1.0, -0, 1e21, 1e-7, 0.000001]`, `["A",100,-0.5,1,0,1e+21,1e-7,0.000001]`},
		{"Out Of Range", `[1e400]`, `[null]`},
		{"Escapes", `["A\/", "<&>", "tab\there", "\u001f"]`, `["A/","<&>","tab\there","\u001f"]`},
		{"Nested Duplicates", `{"o":{"x":1},"o":{"y":[ ]}}`, `{"o":{"y":[]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.MinifyJSON(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.minified, got)
		})
	}

	formatted, err := codec.FormatJSON(`{"a":1.0,"a":2}`)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 2\n}", formatted)
}
