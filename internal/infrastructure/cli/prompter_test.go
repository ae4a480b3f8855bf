package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPrompterReadLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("yes\r\nn"), &out)

	first, err := p.ReadLine("\nRun it? [y/N] ")
	if err != nil || first != "yes" {
		t.Fatalf("ReadLine() = %q, %v", first, err)
	}
	second, err := p.ReadLine("again? ")
	if err != nil || second != "n" {
		t.Fatalf("unterminated last line = %q, %v", second, err)
	}
	if _, err := p.ReadLine("more? "); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
	if out.String() != "\nRun it? [y/N] again? more? " {
		t.Fatalf("prompts = %q", out.String())
	}
}

func TestNewLineReaderPicksPlainPrompterOffTerminal(t *testing.T) {
	if _, ok := newLineReader(Streams{In: strings.NewReader(""), Out: io.Discard, OutTTY: true}).(*Prompter); !ok {
		t.Fatal("piped stdin should use the stream prompter")
	}
	if _, ok := newLineReader(Streams{InTTY: true, OutTTY: true, Out: io.Discard}).(*TerminalPrompter); !ok {
		t.Fatal("terminal should use the line editor")
	}
}
