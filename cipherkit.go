package cipherkit

import (
	"log/slog"

	"github.com/aretw0/cipherkit/internal/logging"
	"github.com/aretw0/cipherkit/internal/runtime"
	"github.com/aretw0/cipherkit/pkg/codec"
	"github.com/aretw0/cipherkit/pkg/domain"
	"github.com/aretw0/cipherkit/pkg/session"
)

// Engine is the high-level entry point for the cipherkit library.
// It wraps the internal runtime and provides a simplified API for consumers.
type Engine struct {
	runtime  *runtime.Engine
	registry *codec.Registry
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks. Sessions created by the
// Engine receive the history hooks too.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine and its sessions.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRegistry replaces the built-in codec set.
func WithRegistry(r *codec.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.NewNop()
	}

	e.runtime = runtime.NewEngine(
		runtime.WithRegistry(e.registry),
		runtime.WithLifecycleHooks(e.hooks),
		runtime.WithLogger(e.logger),
	)
	return e
}

// Transform applies a single request. Blank text yields ("", nil).
func (e *Engine) Transform(req domain.Request) (string, error) {
	return e.runtime.Transform(req)
}

// Encode is Transform in encode mode. shift is only read by the Caesar codec.
func (e *Engine) Encode(method domain.Method, text string, shift int) (string, error) {
	return e.Transform(domain.Request{Text: text, Method: method, Mode: domain.ModeEncode, Shift: &shift})
}

// Decode is Transform in decode mode. shift is only read by the Caesar codec.
func (e *Engine) Decode(method domain.Method, text string, shift int) (string, error) {
	return e.Transform(domain.Request{Text: text, Method: method, Mode: domain.ModeDecode, Shift: &shift})
}

// Methods lists the methods the engine can dispatch to.
func (e *Engine) Methods() []domain.Method {
	return e.runtime.Methods()
}

// NewSession creates a single-writer session bound to this engine.
func (e *Engine) NewSession(opts ...session.ControllerOption) *session.Controller {
	base := []session.ControllerOption{
		session.WithLifecycleHooks(e.hooks),
		session.WithControllerLogger(e.logger),
	}
	return session.NewController(e.runtime, append(base, opts...)...)
}

// NewManager creates a Manager whose sessions share this engine.
func (e *Engine) NewManager(opts ...session.Option) *session.Manager {
	base := []session.Option{
		session.WithLogger(e.logger),
		session.WithControllerOptions(session.WithLifecycleHooks(e.hooks)),
	}
	return session.NewManager(e.runtime, append(base, opts...)...)
}
