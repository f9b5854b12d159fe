package config

import (
	"io"
	"os"
)

// TerminalIO carries the process streams so commands and tests can
// inject their own.
type TerminalIO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var DefaultTermIO = TerminalIO{
	Stdin:  os.Stdin,
	Stdout: os.Stdout,
	Stderr: os.Stderr,
}
