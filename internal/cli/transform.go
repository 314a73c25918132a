package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/cipherkit/pkg/domain"
)

// ErrNoInput is returned when neither arguments, a file nor stdin provide text.
var ErrNoInput = errors.New("no input text")

// TransformOptions configures a one-shot encode or decode.
type TransformOptions struct {
	ConfigPath string
	Debug      bool
	Method     string
	Mode       domain.Mode
	Shift      int
	File       string
	Args       []string

	Stdin  io.Reader
	Stdout io.Writer
}

// Transform runs a single transformation and prints the result.
func Transform(opts TransformOptions) error {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}

	method, err := domain.ParseMethod(opts.Method)
	if err != nil {
		return err
	}

	env, err := Setup(opts.ConfigPath, opts.Debug)
	if err != nil {
		return err
	}

	text, err := readText(opts)
	if err != nil {
		return err
	}

	shift := opts.Shift
	out, err := env.Engine.Transform(domain.Request{
		Text:   text,
		Method: method,
		Mode:   opts.Mode,
		Shift:  &shift,
	})
	if err != nil {
		return err
	}
	if out == "" {
		return nil
	}
	return writeLine(opts.Stdout, out)
}

// readText resolves the input: --file (or "-" for stdin), then arguments,
// then stdin. One trailing newline is dropped from stdin.
func readText(opts TransformOptions) (string, error) {
	switch {
	case opts.File == "-":
		return readStdin(opts.Stdin)
	case opts.File != "":
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	case len(opts.Args) > 0:
		return strings.Join(opts.Args, " "), nil
	default:
		return readStdin(opts.Stdin)
	}
}

func readStdin(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) == 0 {
		return "", ErrNoInput
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}
