package codec

import (
	"fmt"

	"github.com/aretw0/cipherkit/pkg/domain"
)

// Codec is a method-specific pair of encode/decode functions.
// The shift argument is only meaningful for Caesar; other codecs ignore it.
// Only JSON can fail on Encode, since formatting needs a parse step.
type Codec interface {
	Encode(text string, shift int) (string, error)
	Decode(text string, shift int) (string, error)
}

// Func adapts two plain functions into a Codec.
type Func struct {
	EncodeFunc func(text string, shift int) (string, error)
	DecodeFunc func(text string, shift int) (string, error)
}

func (f Func) Encode(text string, shift int) (string, error) {
	return f.EncodeFunc(text, shift)
}

func (f Func) Decode(text string, shift int) (string, error) {
	return f.DecodeFunc(text, shift)
}

// Registry maps methods to codecs. It is immutable once built and safe for
// concurrent use.
type Registry struct {
	codecs map[domain.Method]Codec
}

// NewRegistry builds a registry from the given mapping.
func NewRegistry(codecs map[domain.Method]Codec) *Registry {
	r := &Registry{codecs: make(map[domain.Method]Codec, len(codecs))}
	for m, c := range codecs {
		r.codecs[m] = c
	}
	return r
}

var defaultRegistry = NewRegistry(map[domain.Method]Codec{
	domain.MethodBase64: Base64{},
	domain.MethodURL:    URL{},
	domain.MethodHTML:   HTML{},
	domain.MethodCaesar: Caesar{},
	domain.MethodBinary: Binary{},
	domain.MethodHex:    Hex{},
	domain.MethodJSON:   JSON{},
})

// Default returns the registry holding every supported method.
func Default() *Registry {
	return defaultRegistry
}

// Lookup returns the codec registered for m.
func (r *Registry) Lookup(m domain.Method) (Codec, error) {
	c, ok := r.codecs[m]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMethod, string(m))
	}
	return c, nil
}

// Methods returns the registered methods in display order.
func (r *Registry) Methods() []domain.Method {
	out := make([]domain.Method, 0, len(r.codecs))
	for _, m := range domain.Methods() {
		if _, ok := r.codecs[m]; ok {
			out = append(out, m)
		}
	}
	return out
}
