package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/doeshing/hey-go/internal/ports"
)

// Prompter implements ports.LineReader over plain streams. Used when stdin is
// not a terminal and in tests.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter constructs a prompter reading from in and prompting on out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = strings.NewReader("")
	}
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadLine prints prompt and returns the next line without its terminator.
// A final line without a newline is still returned.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// TerminalPrompter reads answers with line editing on a real terminal. Ctrl-C
// aborts the prompt and Ctrl-D ends input; both surface as errors.
type TerminalPrompter struct {
	out io.Writer
}

// NewTerminalPrompter builds a liner-backed prompter.
func NewTerminalPrompter(out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{out: out}
}

// ReadLine implements ports.LineReader. The terminal only stays in raw mode
// for the duration of one prompt so executed commands see a cooked tty.
func (p *TerminalPrompter) ReadLine(prompt string) (string, error) {
	rest := strings.TrimLeft(prompt, "\n")
	fmt.Fprint(p.out, prompt[:len(prompt)-len(rest)])

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	return line.Prompt(rest)
}

func newLineReader(s Streams) ports.LineReader {
	if s.InTTY && s.OutTTY {
		return NewTerminalPrompter(s.Out)
	}
	return NewPrompter(s.In, s.Out)
}

var (
	_ ports.LineReader = (*Prompter)(nil)
	_ ports.LineReader = (*TerminalPrompter)(nil)
)
