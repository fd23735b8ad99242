package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// rawTerminal puts stdin into raw/cbreak mode for the lifetime of the REPL
// and hand-rolls line editing (echo, backspace, Enter) since raw mode
// disables the terminal's own. Adapted from the same MakeRaw/Restore
// pairing a terminal-driven MMIO host in the example pack uses, minus its
// nonblocking background-goroutine plumbing: the monitor's REPL loop is
// synchronous, so a blocking read per keystroke is enough.
type rawTerminal struct {
	fd    int
	saved *term.State
}

func newRawTerminal() (*rawTerminal, error) {
	fd := int(os.Stdin.Fd())
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("terminal: enter raw mode: %w", err)
	}
	return &rawTerminal{fd: fd, saved: saved}, nil
}

func (t *rawTerminal) Restore() {
	_ = term.Restore(t.fd, t.saved)
}

// readLine echoes keystrokes and returns one line of input with the
// trailing newline stripped. Raw mode delivers CR for Enter and DEL
// (0x7F) for Backspace on most terminals; both are translated the same
// way the example pack's terminal host does.
func (t *rawTerminal) readLine(prompt string) (string, error) {
	fmt.Fprint(os.Stdout, prompt)

	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return "", err
		}
		if n == 0 {
			continue
		}
		b := buf[0]

		switch {
		case b == '\r' || b == '\n':
			fmt.Fprint(os.Stdout, "\r\n")
			return string(line), nil
		case b == 0x7F || b == 0x08:
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Fprint(os.Stdout, "\b \b")
			}
		case b == 0x03: // Ctrl-C
			return "", errInterrupted
		default:
			line = append(line, b)
			os.Stdout.Write(buf)
		}
	}
}
