// Package runtime holds the transformation engine that dispatches requests
// to the codec registry.
package runtime

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/cipherkit/internal/logging"
	"github.com/aretw0/cipherkit/pkg/codec"
	"github.com/aretw0/cipherkit/pkg/domain"
)

// Engine is the stateless transformation dispatcher.
// Safe for concurrent use as long as the configured hooks are.
type Engine struct {
	registry *codec.Registry
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithRegistry replaces the default codec registry.
func WithRegistry(r *codec.Registry) EngineOption {
	return func(e *Engine) {
		if r != nil {
			e.registry = r
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine backed by codec.Default() unless overridden.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		registry: codec.Default(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Transform applies req.Method in req.Mode to req.Text.
// Blank text always yields ("", nil). Codec failures are returned as
// *domain.TransformError with Method and Mode filled in.
func (e *Engine) Transform(req domain.Request) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", nil
	}

	c, err := e.registry.Lookup(req.Method)
	if err != nil {
		return "", err
	}

	start := time.Now()
	var out string
	switch req.Mode {
	case domain.ModeEncode:
		out, err = c.Encode(req.Text, req.EffectiveShift())
	case domain.ModeDecode:
		// For JSON this is minification, not an inverse of Encode.
		out, err = c.Decode(req.Text, req.EffectiveShift())
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownMode, string(req.Mode))
	}

	kind := domain.KindNone
	if err != nil {
		var te *domain.TransformError
		if errors.As(err, &te) {
			te.Method, te.Mode = req.Method, req.Mode
			kind = te.Kind
		}
		out = ""
	}

	e.emitTransform(req, out, kind, time.Since(start))

	if err != nil {
		e.logger.Debug("Transform Failed", "method", req.Method, "mode", req.Mode, "kind", kind, "err", err)
		return "", err
	}
	e.logger.Debug("Transform", "method", req.Method, "mode", req.Mode, "in_bytes", len(req.Text), "out_bytes", len(out))
	return out, nil
}

// Methods lists the methods the engine can dispatch to.
func (e *Engine) Methods() []domain.Method {
	return e.registry.Methods()
}

func (e *Engine) emitTransform(req domain.Request, out string, kind domain.ErrorKind, elapsed time.Duration) {
	if e.hooks.OnTransform == nil {
		return
	}
	e.hooks.OnTransform(&domain.TransformEvent{
		EventBase: domain.EventBase{
			Timestamp: time.Now(),
			Type:      domain.EventTransform,
		},
		Method:      req.Method,
		Mode:        req.Mode,
		InputBytes:  len(req.Text),
		OutputBytes: len(out),
		Kind:        kind,
		Duration:    elapsed,
	})
}
