package domain

import (
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTransform     EventType = "transform"
	EventHistoryAppend EventType = "history_append"
	EventHistoryEvict  EventType = "history_evict"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// TransformEvent describes one engine call.
type TransformEvent struct {
	EventBase
	Method      Method        `json:"method"`
	Mode        Mode          `json:"mode"`
	InputBytes  int           `json:"input_bytes"`
	OutputBytes int           `json:"output_bytes"`
	Kind        ErrorKind     `json:"kind,omitempty"`
	Duration    time.Duration `json:"duration"`
}

// Failed reports whether the transformation returned an error.
func (e *TransformEvent) Failed() bool {
	return e.Kind != KindNone
}

// HistoryEvent describes an entry entering or leaving a history log.
type HistoryEvent struct {
	EventBase
	Entry HistoryEntry `json:"entry"`
}

// LifecycleHooks defines callbacks for engine and session observability.
// Any hook may be nil.
type LifecycleHooks struct {
	OnTransform     func(*TransformEvent)
	OnHistoryAppend func(*HistoryEvent)
	OnHistoryEvict  func(*HistoryEvent)
}

// Merge returns hooks that invoke h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnTransform:     chain(h.OnTransform, other.OnTransform),
		OnHistoryAppend: chain(h.OnHistoryAppend, other.OnHistoryAppend),
		OnHistoryEvict:  chain(h.OnHistoryEvict, other.OnHistoryEvict),
	}
}

func chain[E any](a, b func(*E)) func(*E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e *E) {
		a(e)
		b(e)
	}
}
