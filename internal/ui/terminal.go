package ui

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal returns true if stdout is connected to a terminal (TTY).
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInteractive returns true if both stdin and stdout are terminals, which
// is required for readline prompts and the TUI pickers.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && IsTerminal()
}
