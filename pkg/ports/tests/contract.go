package tests

import (
	"errors"
	"testing"

	"github.com/aretw0/cipherkit/pkg/domain"
	"github.com/aretw0/cipherkit/pkg/ports"
)

// roundTripSamples survive encode followed by decode for every method but JSON.
var roundTripSamples = []string{
	"Hello, World!",
	"a b&c=d/e?f#g",
	"<p class=\"x\">it's</p>",
	"ABC xyz 123",
}

// TransformerContractTest is a reusable test suite that verifies if an implementation
// complies with ports.Transformer using the built-in codec set.
func TransformerContractTest(t *testing.T, tr ports.Transformer) {
	t.Helper()

	// 1. Blank text never reaches a codec
	t.Run("BlankText", func(t *testing.T) {
		for _, m := range domain.Methods() {
			for _, mode := range []domain.Mode{domain.ModeEncode, domain.ModeDecode} {
				out, err := tr.Transform(domain.Request{Text: " \t\n", Method: m, Mode: mode})
				if err != nil || out != "" {
					t.Errorf("%s/%s: expected empty result for blank text, got %q, %v", m, mode, out, err)
				}
			}
		}
	})

	// 2. Round trips
	t.Run("RoundTrip", func(t *testing.T) {
		for _, m := range domain.Methods() {
			if m == domain.MethodJSON {
				continue
			}
			for _, shift := range []int{1, 13, 25} {
				for _, sample := range roundTripSamples {
					s := shift
					enc, err := tr.Transform(domain.Request{Text: sample, Method: m, Mode: domain.ModeEncode, Shift: &s})
					if err != nil {
						t.Fatalf("%s: encode %q: %v", m, sample, err)
					}
					dec, err := tr.Transform(domain.Request{Text: enc, Method: m, Mode: domain.ModeDecode, Shift: &s})
					if err != nil {
						t.Fatalf("%s: decode %q: %v", m, enc, err)
					}
					if dec != sample {
						t.Errorf("%s (shift %d): round trip mismatch. got %q, want %q", m, shift, dec, sample)
					}
				}
			}
		}
	})

	// 3. Dispatch errors
	t.Run("UnknownMethod", func(t *testing.T) {
		_, err := tr.Transform(domain.Request{Text: "x", Method: "rot13", Mode: domain.ModeEncode})
		if !errors.Is(err, domain.ErrUnknownMethod) {
			t.Errorf("expected ErrUnknownMethod, got %v", err)
		}
	})

	t.Run("UnknownMode", func(t *testing.T) {
		_, err := tr.Transform(domain.Request{Text: "x", Method: domain.MethodHex, Mode: "sideways"})
		if !errors.Is(err, domain.ErrUnknownMode) {
			t.Errorf("expected ErrUnknownMode, got %v", err)
		}
	})

	// 4. Codec failures are tagged
	t.Run("TaggedFailures", func(t *testing.T) {
		cases := []struct {
			method domain.Method
			mode   domain.Mode
			text   string
			kind   domain.ErrorKind
		}{
			{domain.MethodBase64, domain.ModeDecode, "@@@@", domain.KindInvalidBase64},
			{domain.MethodURL, domain.ModeDecode, "%E0%A4%A", domain.KindInvalidPercentEncoding},
			{domain.MethodBinary, domain.ModeDecode, "0102", domain.KindInvalidBinaryToken},
			{domain.MethodHex, domain.ModeDecode, "4", domain.KindInvalidHexToken},
			{domain.MethodJSON, domain.ModeEncode, "{", domain.KindInvalidJSON},
			{domain.MethodJSON, domain.ModeDecode, "[1,]", domain.KindInvalidJSON},
		}
		for _, c := range cases {
			out, err := tr.Transform(domain.Request{Text: c.text, Method: c.method, Mode: c.mode})
			if out != "" {
				t.Errorf("%s/%s: expected empty output on error, got %q", c.method, c.mode, out)
			}
			var te *domain.TransformError
			if !errors.As(err, &te) {
				t.Errorf("%s/%s: expected *domain.TransformError, got %v", c.method, c.mode, err)
				continue
			}
			if te.Kind != c.kind || te.Method != c.method || te.Mode != c.mode {
				t.Errorf("%s/%s: got kind=%s method=%s mode=%s", c.method, c.mode, te.Kind, te.Method, te.Mode)
			}
			if !errors.Is(err, c.kind.Sentinel()) {
				t.Errorf("%s/%s: error does not match sentinel %v", c.method, c.mode, c.kind.Sentinel())
			}
		}
	})
}
