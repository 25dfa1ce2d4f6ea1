package cli

import "golang.org/x/term"

// terminalChecker abstracts golang.org/x/term.IsTerminal so tests can
// substitute a fixed answer instead of depending on the process's real
// stdout.
type terminalChecker interface {
	IsTerminal(fd int) bool
}

type realTerminalChecker struct{}

func (realTerminalChecker) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
