package main

import (
	"io"
	"os"

	"golang.org/x/term"
)

// isTerminal reports whether v is an *os.File attached to a terminal.
// Buffers and pipes (tests, redirects) are never terminals.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// colorEnabled honours --no-color and NO_COLOR, and only paints terminals.
func colorEnabled(noColor bool, out io.Writer) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}

	return isTerminal(out)
}
