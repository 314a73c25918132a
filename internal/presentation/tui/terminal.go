package tui

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal width of f, or fallback when unknown.
func Width(f *os.File, fallback int) int {
	if !IsTerminal(f) {
		return fallback
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// Profile returns the colour profile for f. Non-terminals get termenv.Ascii.
func Profile(f *os.File) termenv.Profile {
	if !IsTerminal(f) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).Profile
}

// ResolveStyle maps StyleAuto to StyleNoTTY when f is not a terminal.
func ResolveStyle(style string, f *os.File) string {
	if (style == "" || style == StyleAuto) && !IsTerminal(f) {
		return StyleNoTTY
	}
	return style
}
