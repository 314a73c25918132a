package session

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/aretw0/cipherkit/internal/logging"
	"github.com/aretw0/cipherkit/pkg/domain"
	"github.com/aretw0/cipherkit/pkg/ports"
	"github.com/google/uuid"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager owns a set of named sessions and serializes access to each of them.
// It uses reference counting to garbage collect unused locks.
// Sessions live in memory for the lifetime of the Manager.
type Manager struct {
	engine ports.Transformer

	mu       sync.Mutex            // guards sessions and locks
	sessions map[string]*Controller
	locks    map[string]*lockEntry

	controllerOpts []ControllerOption
	newID          func() string
	logger         *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager and the sessions it creates.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithControllerOptions sets options applied to every new session.
func WithControllerOptions(opts ...ControllerOption) Option {
	return func(m *Manager) {
		m.controllerOpts = append(m.controllerOpts, opts...)
	}
}

// WithIDGenerator overrides how anonymous session IDs are minted.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) {
		if fn != nil {
			m.newID = fn
		}
	}
}

// NewManager creates a Manager whose sessions transform through engine.
func NewManager(engine ports.Transformer, opts ...Option) *Manager {
	m := &Manager{
		engine:   engine,
		sessions: make(map[string]*Controller),
		locks:    make(map[string]*lockEntry),
		newID:    func() string { return uuid.NewString()[:8] },
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open returns the ID of the session named id, creating it if needed.
// An empty id creates a session with a generated ID.
func (m *Manager) Open(id string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id == "" {
		id = m.newID()
	}
	if _, ok := m.sessions[id]; ok {
		return id, false
	}

	opts := append([]ControllerOption{WithControllerLogger(m.logger.With("session_id", id))}, m.controllerOpts...)
	m.sessions[id] = NewController(m.engine, opts...)
	m.logger.Info("Session Created", "session_id", id)
	return id, true
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST Lock the entry.mu, and then call release(sessionID) after unlocking.
func (m *Manager) acquire(sessionID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		entry = &lockEntry{}
		m.locks[sessionID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, sessionID)
	}
}

func (m *Manager) lookup(sessionID string) (*Controller, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrSessionNotFound, sessionID)
	}
	return c, nil
}

// WithSession runs fn while holding the lock of the named session.
// fn must not retain the Controller after returning.
func (m *Manager) WithSession(sessionID string, fn func(*Controller) error) error {
	entry := m.acquire(sessionID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(sessionID)
	}()

	c, err := m.lookup(sessionID)
	if err != nil {
		return err
	}
	return fn(c)
}

// Snapshot returns the current view of the named session.
func (m *Manager) Snapshot(sessionID string) (domain.Snapshot, error) {
	var snap domain.Snapshot
	err := m.WithSession(sessionID, func(c *Controller) error {
		snap = c.Snapshot()
		return nil
	})
	return snap, err
}

// Close discards the named session and its history.
func (m *Manager) Close(sessionID string) error {
	return m.WithSession(sessionID, func(*Controller) error {
		m.mu.Lock()
		delete(m.sessions, sessionID)
		m.mu.Unlock()
		m.logger.Info("Session Closed", "session_id", sessionID)
		return nil
	})
}

// List returns the IDs of all open sessions, sorted.
func (m *Manager) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
