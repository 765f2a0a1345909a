package output

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether w is a terminal file descriptor. The CLI uses this
// to decide whether to render the ASCII banner and progress bars, or fall
// back to plain line-oriented output for redirected/piped runs.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
