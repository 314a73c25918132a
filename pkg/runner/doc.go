/*
Package runner implements the interactive loop and I/O orchestration around
cipherkit sessions.

It acts as the bridge between the session state machine and the outside
world. Commands are read through a pluggable IOHandler, applied to the active
session under the Manager's lock, and answered with a Reply.

# Key Components

  - Runner: reads commands until quit or EOF and dispatches them.
  - IOHandler: decouples how commands arrive (text lines, NDJSON).
  - TextHandler: the interactive CLI. Lines starting with ":" are commands.
  - JSONHandler: one Command object per line, one Reply per line.

# Usage

	mgr := session.NewManager(engine)
	r := runner.NewRunner(
		runner.WithSessionID("scratch"),
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)

	if err := r.Run(ctx, mgr); err != nil {
		log.Fatal(err)
	}
*/
package runner
