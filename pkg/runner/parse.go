package runner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/cipherkit/pkg/domain"
)

// CommandPrefix marks a text line as a command. A doubled prefix escapes it.
const CommandPrefix = ":"

var aliases = map[string]Op{
	"q":    OpQuit,
	"exit": OpQuit,
	"m":    OpMethod,
	"h":    OpHistory,
}

// ParseLine converts one line of the text interface into a Command.
// Lines without the prefix set the input verbatim.
func ParseLine(line string) (Command, error) {
	if !strings.HasPrefix(line, CommandPrefix) {
		return Command{Op: OpInput, Text: line}, nil
	}
	if strings.HasPrefix(line, CommandPrefix+CommandPrefix) {
		return Command{Op: OpInput, Text: line[len(CommandPrefix):]}, nil
	}

	name, arg, _ := strings.Cut(strings.TrimPrefix(line, CommandPrefix), " ")
	name = strings.ToLower(strings.TrimSpace(name))
	arg = strings.TrimSpace(arg)

	op := Op(name)
	if alias, ok := aliases[name]; ok {
		op = alias
	}

	cmd := Command{Op: op}
	switch op {
	case OpMethod:
		if arg == "" {
			return Command{}, fmt.Errorf("%w: method", ErrMissingArgument)
		}
		cmd.Method = arg
	case OpMode:
		cmd.Mode = domain.Mode(strings.ToLower(arg))
	case OpShift:
		n, err := strconv.Atoi(arg)
		if err != nil {
			return Command{}, fmt.Errorf("%w: shift expects a number, got %q", ErrInvalidCommand, arg)
		}
		cmd.Shift = &n
	case OpRestore:
		id, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return Command{}, fmt.Errorf("%w: restore expects a history id, got %q", ErrInvalidCommand, arg)
		}
		cmd.ID = id
	case OpLoad:
		if arg == "" {
			return Command{}, fmt.Errorf("%w: path", ErrMissingArgument)
		}
		cmd.Path = arg
	case OpSession:
		cmd.Session = arg
	case OpClear, OpHistory, OpShow, OpMethods, OpSessions, OpStats, OpQuit:
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrInvalidCommand, CommandPrefix+name)
	}
	return cmd, nil
}
