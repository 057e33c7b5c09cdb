package console

import (
	"os"
	"sync/atomic"

	"golang.org/x/term"
)

var (
	stdinIsTerminal  int32 = -1 // -1 = unchecked, 0 = no, 1 = yes
	stdoutIsTerminal int32 = -1
	stderrIsTerminal int32 = -1
)

func isTerminal(fd int, cached *int32) bool {
	if v := atomic.LoadInt32(cached); v >= 0 {
		return v == 1
	}
	result := term.IsTerminal(fd)
	if result {
		atomic.StoreInt32(cached, 1)
	} else {
		atomic.StoreInt32(cached, 0)
	}
	return result
}

// StdinIsTerminal reports whether stdin is attached to a terminal.
func StdinIsTerminal() bool {
	return isTerminal(int(os.Stdin.Fd()), &stdinIsTerminal)
}

// StdoutIsTerminal reports whether stdout is attached to a terminal.
func StdoutIsTerminal() bool {
	return isTerminal(int(os.Stdout.Fd()), &stdoutIsTerminal)
}

// StderrIsTerminal reports whether stderr is attached to a terminal.
func StderrIsTerminal() bool {
	return isTerminal(int(os.Stderr.Fd()), &stderrIsTerminal)
}

// Interactive reports whether both stdin and stdout are terminals.
func Interactive() bool {
	return StdinIsTerminal() && StdoutIsTerminal()
}
