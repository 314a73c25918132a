package runner

import (
	"context"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
type IOHandler interface {
	// Read returns the next command. io.EOF ends the session.
	// Errors wrapping ErrInvalidCommand, ErrInputTooLarge or ErrInvalidUTF8
	// are reported to the user and the loop continues.
	Read(ctx context.Context) (Command, error)

	// Write presents the result of a command.
	Write(ctx context.Context, reply Reply) error
}

// ContentRenderer is a function that transforms markdown before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)
