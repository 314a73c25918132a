package cli

import (
	"io"
	"os"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	ConfigPath string
	Debug      bool
	JSON       bool
	SessionID  string
	NoBanner   bool

	Stdin  io.Reader
	Stdout io.Writer
}

// Execute handles the 'run' command logic.
func Execute(opts RunOptions) error {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	env, err := Setup(opts.ConfigPath, opts.Debug)
	if err != nil {
		return err
	}
	return RunSession(env, opts)
}
