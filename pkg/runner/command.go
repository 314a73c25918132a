package runner

import (
	"errors"
	"fmt"

	"github.com/aretw0/cipherkit/pkg/domain"
	"github.com/aretw0/cipherkit/pkg/observability"
	"github.com/aretw0/cipherkit/pkg/session"
)

// Op names a shell command.
type Op string

const (
	OpInput    Op = "input"
	OpMethod   Op = "method"
	OpMode     Op = "mode"
	OpShift    Op = "shift"
	OpRestore  Op = "restore"
	OpClear    Op = "clear"
	OpHistory  Op = "history"
	OpShow     Op = "show"
	OpLoad     Op = "load"
	OpMethods  Op = "methods"
	OpSession  Op = "session"
	OpSessions Op = "sessions"
	OpStats    Op = "stats"
	OpQuit     Op = "quit"
)

var (
	ErrInvalidCommand  = errors.New("invalid command")
	ErrMissingArgument = errors.New("missing argument")
	ErrStatsDisabled   = errors.New("metrics are disabled")
)

// Command is one user action. Only the fields relevant to Op are read.
type Command struct {
	Op      Op          `json:"op"`
	Text    string      `json:"text,omitempty"`
	Method  string      `json:"method,omitempty"`
	Mode    domain.Mode `json:"mode,omitempty"`
	Shift   *int        `json:"shift,omitempty"`
	ID      uint64      `json:"id,omitempty"`
	Session string      `json:"session,omitempty"`
	Path    string      `json:"path,omitempty"`
}

// MethodInfo describes a method for listings.
type MethodInfo struct {
	Method      domain.Method `json:"method"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
}

// Reply is the result of one Command.
type Reply struct {
	Op       Op                  `json:"op"`
	Session  string              `json:"session"`
	Snapshot *domain.Snapshot    `json:"snapshot,omitempty"`
	Methods  []MethodInfo        `json:"methods,omitempty"`
	Sessions []string            `json:"sessions,omitempty"`
	Stats    []observability.Row `json:"stats,omitempty"`
	Message  string              `json:"message,omitempty"`
	Error    string              `json:"error,omitempty"`
}

// ListMethods returns every supported method with its presentation metadata.
func ListMethods() []MethodInfo {
	methods := domain.Methods()
	out := make([]MethodInfo, 0, len(methods))
	for _, m := range methods {
		out = append(out, MethodInfo{Method: m, Label: m.Label(), Description: m.Description()})
	}
	return out
}

// Apply executes a session-scoped command against c.
// OpLoad expects the file content already in cmd.Text.
func Apply(c *session.Controller, cmd Command) error {
	switch cmd.Op {
	case OpInput, OpLoad:
		c.SetInput(cmd.Text)
	case OpMethod:
		m, err := domain.ParseMethod(cmd.Method)
		if err != nil {
			return err
		}
		return c.ChangeMethod(m)
	case OpMode:
		if cmd.Mode != "" {
			mode, err := domain.ParseMode(string(cmd.Mode))
			if err != nil {
				return err
			}
			if mode == c.Snapshot().Mode {
				return nil
			}
		}
		c.ToggleMode()
	case OpShift:
		if cmd.Shift == nil {
			return fmt.Errorf("%w: shift", ErrMissingArgument)
		}
		c.SetShift(*cmd.Shift)
	case OpRestore:
		return c.RestoreID(cmd.ID)
	case OpClear:
		c.Clear()
	case OpHistory, OpShow:
		// read-only
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCommand, string(cmd.Op))
	}
	return nil
}
