package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/aretw0/cipherkit/internal/logging"
	"github.com/aretw0/cipherkit/pkg/observability"
	"github.com/aretw0/cipherkit/pkg/session"
)

// Runner drives a session loop over an IOHandler.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	// Handler is the strategy for IO. Defaults to a TextHandler on Stdin/Stdout.
	Handler IOHandler

	// Logger is used for internal debug logging.
	Logger *slog.Logger

	// SessionID is the session the loop starts in.
	SessionID string

	// Stats backs the stats command. Nil disables it.
	Stats func() ([]observability.Row, error)

	// MaxFileSize bounds the load command.
	MaxFileSize int64
}

// NewRunner creates a Runner with default Stdin/Stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger:      logging.NewNop(),
		MaxFileSize: DefaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run reads commands until quit, EOF or ctx cancellation.
// Sessions are opened on mgr and survive the loop.
func (r *Runner) Run(ctx context.Context, mgr *session.Manager) error {
	handler := r.resolveHandler()
	active, _ := mgr.Open(r.SessionID)
	r.Logger.Debug("Runner started", "session_id", active)

	for {
		cmd, err := handler.Read(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				r.Logger.Debug("Runner stopped", "session_id", active, "err", err)
				return nil
			}
			if !recoverable(err) {
				return fmt.Errorf("input error: %w", err)
			}
			if err := handler.Write(ctx, Reply{Session: active, Error: err.Error()}); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
			continue
		}

		if cmd.Op == OpQuit {
			r.Logger.Debug("Runner quit", "session_id", active)
			return nil
		}

		reply := r.Dispatch(mgr, &active, cmd)
		if err := handler.Write(ctx, reply); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}
}

// Dispatch executes cmd and builds its reply. active is updated by the
// session command.
func (r *Runner) Dispatch(mgr *session.Manager, active *string, cmd Command) Reply {
	reply := Reply{Op: cmd.Op}

	var err error
	switch cmd.Op {
	case OpSession:
		id, created := mgr.Open(cmd.Session)
		*active = id
		if created {
			reply.Message = fmt.Sprintf("Created session %s", id)
		} else {
			reply.Message = fmt.Sprintf("Switched to session %s", id)
		}
		err = r.withSnapshot(mgr, *active, &reply, nil)
	case OpSessions:
		reply.Sessions = mgr.List()
	case OpMethods:
		reply.Methods = ListMethods()
	case OpStats:
		if r.Stats == nil {
			err = ErrStatsDisabled
			break
		}
		reply.Stats, err = r.Stats()
	case OpLoad:
		var text string
		text, err = r.readFile(cmd.Path)
		if err != nil {
			break
		}
		cmd.Text = text
		reply.Message = fmt.Sprintf("Loaded %d bytes from %s", len(text), cmd.Path)
		err = r.withSnapshot(mgr, *active, &reply, func(c *session.Controller) error { return Apply(c, cmd) })
	default:
		err = r.withSnapshot(mgr, *active, &reply, func(c *session.Controller) error { return Apply(c, cmd) })
	}

	reply.Session = *active
	if err != nil {
		reply.Message = ""
		reply.Error = err.Error()
		r.Logger.Debug("Command Failed", "op", cmd.Op, "session_id", *active, "err", err)
	}
	return reply
}

func (r *Runner) withSnapshot(mgr *session.Manager, id string, reply *Reply, fn func(*session.Controller) error) error {
	return mgr.WithSession(id, func(c *session.Controller) error {
		var err error
		if fn != nil {
			err = fn(c)
		}
		snap := c.Snapshot()
		reply.Snapshot = &snap
		return err
	})
}

func (r *Runner) readFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, r.MaxFileSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(data)) > r.MaxFileSize {
		return "", fmt.Errorf("%w: file larger than %d bytes", ErrInputTooLarge, r.MaxFileSize)
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler == nil {
		// Memoize to prevent creating new pumps on subsequent Run() calls
		r.Handler = NewTextHandler(nil, nil)
	}
	return r.Handler
}

func recoverable(err error) bool {
	return errors.Is(err, ErrInvalidCommand) ||
		errors.Is(err, ErrMissingArgument) ||
		errors.Is(err, ErrInputTooLarge) ||
		errors.Is(err, ErrInvalidUTF8)
}
