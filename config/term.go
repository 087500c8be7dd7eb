package config

import (
	"io"
	"os"
)

// TerminalIO is the console io attached to a Config. Tests inject buffers
// here instead of capturing the process streams; Config's Printf/Errorf
// helpers write through it.
type TerminalIO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultTermIO is the process's own streams, used when no TerminalIO is
// injected.
var DefaultTermIO = TerminalIO{
	Stdin:  os.Stdin,
	Stdout: os.Stdout,
	Stderr: os.Stderr,
}
