/*
Package session implements the interactive session state machine and the
manager that hosts named sessions.

Controller holds the input, output, error, method, mode, shift and history of
one session and exposes the transitions a shell drives (SetInput,
ChangeMethod, ToggleMode, SetShift, Restore, Clear). Manager keeps several
controllers in memory and serializes access to each one with a
reference-counted per-session lock.
*/
package session
