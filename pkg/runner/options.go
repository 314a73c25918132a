package runner

import (
	"log/slog"

	"github.com/aretw0/cipherkit/pkg/observability"
)

// DefaultMaxFileSize bounds files read by the load command.
const DefaultMaxFileSize = 1 << 20

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.Logger = logger
		}
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithSessionID sets the session opened when the loop starts.
// Empty means a generated ID.
func WithSessionID(id string) Option {
	return func(r *Runner) {
		r.SessionID = id
	}
}

// WithStats enables the stats command.
func WithStats(fn func() ([]observability.Row, error)) Option {
	return func(r *Runner) {
		r.Stats = fn
	}
}

// WithMaxFileSize bounds files read by the load command.
func WithMaxFileSize(n int64) Option {
	return func(r *Runner) {
		if n > 0 {
			r.MaxFileSize = n
		}
	}
}
