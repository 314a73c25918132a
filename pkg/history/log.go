// Package history implements the bounded, newest-first log of past
// transformations kept by a session.
package history

import (
	"fmt"
	"iter"

	"github.com/aretw0/cipherkit/pkg/domain"
)

// Capacity is the maximum number of entries a Log retains.
const Capacity = 10

// RestorePoint is the part of an entry a session adopts when restoring it.
type RestorePoint struct {
	Method domain.Method
	Mode   domain.Mode
	Shift  *int
	Input  string
}

// Log is a fixed-capacity ring buffer. Inserts go to the front; when full,
// the oldest entry is evicted from the tail.
// The zero value is an empty log ready for use. Not safe for concurrent use.
type Log struct {
	buf  [Capacity]domain.HistoryEntry
	head int // index of the newest entry
	n    int
}

// New returns an empty log.
func New() *Log {
	return &Log{}
}

// Append inserts entry at the front. If the log was full, the evicted tail
// entry is returned with ok set.
func (l *Log) Append(entry domain.HistoryEntry) (evicted domain.HistoryEntry, ok bool) {
	entry.Shift = cloneShift(entry.Shift)

	l.head = (l.head - 1 + Capacity) % Capacity
	if l.n == Capacity {
		// The slot before the old head is the tail.
		evicted, ok = l.buf[l.head], true
	} else {
		l.n++
	}
	l.buf[l.head] = entry
	return evicted, ok
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return l.n
}

// At returns the i-th entry, newest first.
func (l *Log) At(i int) (domain.HistoryEntry, error) {
	if i < 0 || i >= l.n {
		return domain.HistoryEntry{}, fmt.Errorf("%w: index %d out of range [0,%d)", domain.ErrEntryNotFound, i, l.n)
	}
	return l.at(i), nil
}

// Get returns the entry with the given ID.
func (l *Log) Get(id uint64) (domain.HistoryEntry, error) {
	for e := range l.All() {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.HistoryEntry{}, fmt.Errorf("%w: id %d", domain.ErrEntryNotFound, id)
}

// All yields entries newest first. The sequence can be ranged over
// repeatedly and always reflects the log at the time of iteration.
func (l *Log) All() iter.Seq[domain.HistoryEntry] {
	return func(yield func(domain.HistoryEntry) bool) {
		for i := 0; i < l.n; i++ {
			if !yield(l.at(i)) {
				return
			}
		}
	}
}

// Entries returns a copy of the log, newest first.
func (l *Log) Entries() []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, 0, l.n)
	for e := range l.All() {
		out = append(out, e)
	}
	return out
}

// Restore projects an entry onto the state a session needs to recompute it.
// It does not modify the log.
func (l *Log) Restore(entry domain.HistoryEntry) RestorePoint {
	return RestorePoint{
		Method: entry.Method,
		Mode:   entry.Mode,
		Shift:  cloneShift(entry.Shift),
		Input:  entry.Input,
	}
}

func (l *Log) at(i int) domain.HistoryEntry {
	e := l.buf[(l.head+i)%Capacity]
	e.Shift = cloneShift(e.Shift)
	return e
}

func cloneShift(s *int) *int {
	if s == nil {
		return nil
	}
	return domain.IntPtr(*s)
}
