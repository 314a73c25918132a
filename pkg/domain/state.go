package domain

import "time"

// Request is one transformation call.
type Request struct {
	Text   string
	Method Method
	Mode   Mode
	// Shift is only read by the Caesar codec. Nil means DefaultShift.
	Shift *int
}

// EffectiveShift returns the shift to apply, honouring the default.
func (r Request) EffectiveShift() int {
	if r.Shift == nil {
		return DefaultShift
	}
	return *r.Shift
}

// HistoryEntry is an immutable record of a past transformation.
type HistoryEntry struct {
	ID        uint64    `json:"id"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Method    Method    `json:"method"`
	Mode      Mode      `json:"mode"`
	Shift     *int      `json:"shift,omitempty"` // present iff Method == MethodCaesar
	Timestamp time.Time `json:"timestamp"`
}

// Snapshot is a read-only view of a session.
type Snapshot struct {
	Input     string         `json:"input"`
	Output    string         `json:"output"`
	Error     string         `json:"error,omitempty"`
	ErrorKind ErrorKind      `json:"error_kind,omitempty"`
	Method    Method         `json:"method"`
	Mode      Mode           `json:"mode"`
	Shift     int            `json:"shift"`
	History   []HistoryEntry `json:"history"`
}

// HasError reports whether the last recompute failed.
func (s Snapshot) HasError() bool {
	return s.Error != ""
}

// IntPtr returns a pointer to a copy of v.
func IntPtr(v int) *int {
	return &v
}
