package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/cipherkit/pkg/domain"
	"github.com/aretw0/cipherkit/pkg/observability"
	"github.com/aretw0/cipherkit/pkg/runner"
	"github.com/muesli/termenv"
)

const previewLen = 30

// Formatter renders runner replies as markdown tables and colours the
// status line. It implements runner.Formatter.
type Formatter struct {
	Profile termenv.Profile
	Now     func() time.Time
}

// NewFormatter creates a Formatter using profile p and the wall clock.
func NewFormatter(p termenv.Profile) *Formatter {
	return &Formatter{Profile: p, Now: time.Now}
}

func (f *Formatter) Snapshot(snap domain.Snapshot) string {
	var b strings.Builder
	b.WriteString(f.Profile.String(runner.StatusLine(snap)).Foreground(f.Profile.Color("#a78bfa")).String())
	switch {
	case snap.HasError():
		b.WriteString("\n")
		b.WriteString(f.Profile.String("Error: " + snap.Error).Foreground(f.Profile.Color("#fb7185")).String())
	case snap.Output != "":
		b.WriteString("\n")
		b.WriteString(snap.Output)
	}
	return b.String()
}

func (f *Formatter) History(entries []domain.HistoryEntry) string {
	return HistoryMarkdown(entries, f.Now())
}

func (f *Formatter) Methods(methods []runner.MethodInfo) string {
	return MethodsMarkdown(methods)
}

func (f *Formatter) Sessions(ids []string, active string) string {
	var b strings.Builder
	b.WriteString("## Sessions\n\n")
	for _, id := range ids {
		if id == active {
			fmt.Fprintf(&b, "- **%s** (active)\n", cell(id))
			continue
		}
		fmt.Fprintf(&b, "- %s\n", cell(id))
	}
	return b.String()
}

func (f *Formatter) Stats(rows []observability.Row) string {
	if len(rows) == 0 {
		return "_No metrics recorded yet._"
	}
	var b strings.Builder
	b.WriteString("## Stats\n\n| Metric | Labels | Value |\n|---|---|---|\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s | %g |\n", r.Name, cell(r.Labels), r.Value)
	}
	return b.String()
}

// HistoryMarkdown renders entries, newest first, as a markdown table.
func HistoryMarkdown(entries []domain.HistoryEntry, now time.Time) string {
	if len(entries) == 0 {
		return "_History is empty._"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "## History (%d)\n\n", len(entries))
	b.WriteString("| ID | Time | Method | Mode | Input | Output |\n|---|---|---|---|---|---|\n")
	for _, e := range entries {
		method := e.Method.Label()
		if e.Method == domain.MethodCaesar && e.Shift != nil {
			method = fmt.Sprintf("%s (shift: %d)", method, *e.Shift)
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s |\n",
			e.ID,
			RelativeTime(e.Timestamp, now),
			method,
			e.Mode,
			cell(runner.Preview(e.Input, previewLen)),
			cell(runner.Preview(e.Output, previewLen)),
		)
	}
	b.WriteString("\nRestore with `:restore <id>`.\n")
	return b.String()
}

// MethodsMarkdown renders the method list as a markdown table.
func MethodsMarkdown(methods []runner.MethodInfo) string {
	var b strings.Builder
	b.WriteString("## Methods\n\n| Name | Label | Description |\n|---|---|---|\n")
	for _, m := range methods {
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", m.Method, m.Label, m.Description)
	}
	return b.String()
}

// RelativeTime describes t relative to now ("just now", "5m ago", "2h ago").
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	default:
		return fmt.Sprintf("%dd ago", int(d/(24*time.Hour)))
	}
}

// cell escapes text for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "|", `\|`)
}
