package ports

import (
	"time"

	"github.com/aretw0/cipherkit/pkg/domain"
)

// Transformer is a stateless text transformation engine.
// Implementations must be deterministic and free of side effects beyond
// observability hooks.
type Transformer interface {
	Transform(req domain.Request) (string, error)
}

// TransformerFunc adapts an ordinary function into a Transformer.
type TransformerFunc func(req domain.Request) (string, error)

func (f TransformerFunc) Transform(req domain.Request) (string, error) {
	return f(req)
}

// Clock returns the current time.
type Clock func() time.Time
