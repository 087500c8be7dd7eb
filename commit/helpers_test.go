package commit

import (
	"bytes"
	"io"

	"github.com/tinysemver/tinysemver/config"
)

func mockTermIO(in io.Reader) (config.TerminalIO, *bytes.Buffer, *bytes.Buffer) {
	if in == nil {
		in = &bytes.Buffer{}
	}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return config.TerminalIO{Stdin: in, Stdout: out, Stderr: errOut}, out, errOut
}

func newTestConfig(overrides *config.Config, tio *config.TerminalIO) config.Config {
	return config.NewWithTerminalIO(overrides, tio)
}
