package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/cipherkit/internal/logging"
	"github.com/aretw0/cipherkit/pkg/domain"
	"github.com/aretw0/cipherkit/pkg/history"
	"github.com/aretw0/cipherkit/pkg/ports"
)

// Controller owns the state of one interactive session and defines its legal
// transitions. Every mutating operation recomputes the output itself.
//
// A Controller assumes a single writer. Use Manager when several callers
// share a session.
type Controller struct {
	engine ports.Transformer
	log    *history.Log
	now    ports.Clock
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	lastID uint64

	input   string
	output  string
	errMsg  string
	errKind domain.ErrorKind
	method  domain.Method
	mode    domain.Mode
	shift   int
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithClock overrides the time source used to stamp history entries.
func WithClock(clock ports.Clock) ControllerOption {
	return func(c *Controller) {
		if clock != nil {
			c.now = clock
		}
	}
}

// WithLifecycleHooks registers history observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) ControllerOption {
	return func(c *Controller) {
		c.hooks = hooks
	}
}

// WithControllerLogger sets the structured logger of the Controller.
func WithControllerLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewController creates a session in its initial state:
// base64, encode, shift 3, empty input/output, no error, empty history.
func NewController(engine ports.Transformer, opts ...ControllerOption) *Controller {
	c := &Controller{
		engine: engine,
		log:    history.New(),
		now:    time.Now,
		logger: logging.NewNop(),
		method: domain.MethodBase64,
		mode:   domain.ModeEncode,
		shift:  domain.DefaultShift,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetInput replaces the input and recomputes the output.
func (c *Controller) SetInput(text string) {
	c.input = text
	c.recompute()
}

// ChangeMethod archives the current transformation (if any), clears input,
// output and error, and selects m. Nothing is recomputed.
func (c *Controller) ChangeMethod(m domain.Method) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownMethod, string(m))
	}
	if c.input != "" {
		c.archive()
	}
	c.input, c.output = "", ""
	c.clearError()
	c.method = m
	c.logger.Debug("Method Changed", "method", m)
	return nil
}

// ToggleMode flips encode/decode. A non-empty output is archived and becomes
// the new input, recomputed under the new mode.
func (c *Controller) ToggleMode() {
	if c.output != "" {
		c.archive()
		c.mode = c.mode.Toggle()
		c.logger.Debug("Mode Toggled", "mode", c.mode, "swap", true)
		c.SetInput(c.output)
		return
	}

	c.mode = c.mode.Toggle()
	c.logger.Debug("Mode Toggled", "mode", c.mode, "swap", false)
	if c.input != "" {
		c.recompute()
	}
}

// SetShift clamps value into [1,25]. Caesar sessions with input recompute.
func (c *Controller) SetShift(value int) {
	c.shift = domain.ClampShift(value)
	if c.method == domain.MethodCaesar && c.input != "" {
		c.recompute()
	}
}

// Restore adopts the method, mode and (if recorded) shift of entry and
// recomputes its input. The current state is not archived.
func (c *Controller) Restore(entry domain.HistoryEntry) error {
	p := c.log.Restore(entry)
	method, err := domain.ParseMethod(string(p.Method))
	if err != nil {
		return err
	}
	mode, err := domain.ParseMode(string(p.Mode))
	if err != nil {
		return err
	}

	c.method = method
	c.mode = mode
	if p.Shift != nil {
		c.shift = domain.ClampShift(*p.Shift)
	}
	c.logger.Debug("History Restored", "id", entry.ID, "method", method, "mode", mode)
	c.SetInput(p.Input)
	return nil
}

// RestoreID restores the history entry with the given ID.
func (c *Controller) RestoreID(id uint64) error {
	entry, err := c.log.Get(id)
	if err != nil {
		return err
	}
	return c.Restore(entry)
}

// Clear archives the current transformation (if any) and empties input,
// output and error. Method, mode and shift are kept.
func (c *Controller) Clear() {
	if c.input != "" || c.output != "" {
		c.archive()
	}
	c.input, c.output = "", ""
	c.clearError()
}

// Snapshot returns an immutable copy of the session state.
func (c *Controller) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Input:     c.input,
		Output:    c.output,
		Error:     c.errMsg,
		ErrorKind: c.errKind,
		Method:    c.method,
		Mode:      c.mode,
		Shift:     c.shift,
		History:   c.log.Entries(),
	}
}

// History returns the archived entries, newest first.
func (c *Controller) History() []domain.HistoryEntry {
	return c.log.Entries()
}

func (c *Controller) recompute() {
	shift := c.shift
	out, err := c.engine.Transform(domain.Request{
		Text:   c.input,
		Method: c.method,
		Mode:   c.mode,
		Shift:  &shift,
	})
	if err != nil {
		c.output = ""
		c.errMsg = err.Error()
		c.errKind = domain.KindOf(err)
		return
	}
	c.output = out
	c.clearError()
}

func (c *Controller) clearError() {
	c.errMsg = ""
	c.errKind = domain.KindNone
}

// archive records the current transformation when both sides are present.
func (c *Controller) archive() {
	if c.input == "" || c.output == "" {
		return
	}

	c.lastID++
	entry := domain.HistoryEntry{
		ID:        c.lastID,
		Input:     c.input,
		Output:    c.output,
		Method:    c.method,
		Mode:      c.mode,
		Timestamp: c.now(),
	}
	if c.method == domain.MethodCaesar {
		entry.Shift = domain.IntPtr(c.shift)
	}

	evicted, ok := c.log.Append(entry)
	c.logger.Debug("History Append", "id", entry.ID, "method", entry.Method, "size", c.log.Len())
	c.emitHistory(c.hooks.OnHistoryAppend, domain.EventHistoryAppend, entry)
	if ok {
		c.logger.Debug("History Evict", "id", evicted.ID)
		c.emitHistory(c.hooks.OnHistoryEvict, domain.EventHistoryEvict, evicted)
	}
}

func (c *Controller) emitHistory(hook func(*domain.HistoryEvent), typ domain.EventType, entry domain.HistoryEntry) {
	if hook == nil {
		return
	}
	hook(&domain.HistoryEvent{
		EventBase: domain.EventBase{Timestamp: c.now(), Type: typ},
		Entry:     entry,
	})
}
