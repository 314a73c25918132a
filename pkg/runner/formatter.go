package runner

import (
	"fmt"
	"strings"

	"github.com/aretw0/cipherkit/pkg/domain"
	"github.com/aretw0/cipherkit/pkg/observability"
)

// Formatter turns replies into text for the TextHandler.
// Snapshot output is printed verbatim; the other results may be markdown
// and go through the ContentRenderer.
type Formatter interface {
	Snapshot(snap domain.Snapshot) string
	History(entries []domain.HistoryEntry) string
	Methods(methods []MethodInfo) string
	Sessions(ids []string, active string) string
	Stats(rows []observability.Row) string
}

// PlainFormatter renders replies as unstyled text.
type PlainFormatter struct{}

// StatusLine describes the active method and mode, e.g. "[Caesar Cipher · Encoder · shift 3]".
func StatusLine(snap domain.Snapshot) string {
	parts := []string{snap.Method.Label(), snap.Mode.Label()}
	if snap.Method == domain.MethodCaesar {
		parts = append(parts, fmt.Sprintf("shift %d", snap.Shift))
	}
	return "[" + strings.Join(parts, " · ") + "]"
}

func (PlainFormatter) Snapshot(snap domain.Snapshot) string {
	var b strings.Builder
	b.WriteString(StatusLine(snap))
	switch {
	case snap.HasError():
		fmt.Fprintf(&b, "\nError: %s", snap.Error)
	case snap.Output != "":
		b.WriteString("\n")
		b.WriteString(snap.Output)
	}
	return b.String()
}

func (PlainFormatter) History(entries []domain.HistoryEntry) string {
	if len(entries) == 0 {
		return "History is empty."
	}
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "#%d %s %s: %s -> %s\n", e.ID, e.Method.Label(), e.Mode.Label(), Preview(e.Input, 30), Preview(e.Output, 30))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (PlainFormatter) Methods(methods []MethodInfo) string {
	var b strings.Builder
	for _, m := range methods {
		fmt.Fprintf(&b, "%-7s %-14s %s\n", m.Method, m.Label, m.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (PlainFormatter) Sessions(ids []string, active string) string {
	var b strings.Builder
	for _, id := range ids {
		marker := " "
		if id == active {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %s\n", marker, id)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (PlainFormatter) Stats(rows []observability.Row) string {
	if len(rows) == 0 {
		return "No metrics recorded yet."
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%s%s %g\n", r.Name, r.Labels, r.Value)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Preview flattens s onto one line and truncates it to max runes.
func Preview(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
