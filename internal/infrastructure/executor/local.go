// Package executor runs generated commands through the user's shell.
package executor

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/doeshing/hey-go/internal/ports"
)

const fallbackShell = "/bin/sh"

// LocalExecutor runs commands on the host shell with the terminal's streams attached.
type LocalExecutor struct {
	goos     string
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	lookPath func(string) (string, error)
	getenv   func(string) string
}

// NewLocalExecutor builds an executor bound to the given streams.
func NewLocalExecutor(stdin io.Reader, stdout, stderr io.Writer) *LocalExecutor {
	return &LocalExecutor{
		goos:     runtime.GOOS,
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		lookPath: exec.LookPath,
		getenv:   os.Getenv,
	}
}

// Available implements ports.CommandExecutor.
func (e *LocalExecutor) Available(name string) bool {
	if name == "" {
		return false
	}
	_, err := e.lookPath(name)
	return err == nil
}

// FirstWord implements ports.CommandExecutor. Leading assignments are skipped and
// the left-most command of a pipeline or list wins.
func (e *LocalExecutor) FirstWord(command string) string {
	return FirstWord(command)
}

// FirstWord returns the program a command line would start.
func FirstWord(command string) string {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err == nil && len(file.Stmts) > 0 {
		if word := leadingWord(file.Stmts[0].Cmd); word != "" {
			return word
		}
	}
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func leadingWord(cmd syntax.Command) string {
	switch c := cmd.(type) {
	case *syntax.CallExpr:
		if len(c.Args) == 0 {
			return ""
		}
		return c.Args[0].Lit()
	case *syntax.BinaryCmd:
		if c.X == nil {
			return ""
		}
		return leadingWord(c.X.Cmd)
	default:
		return ""
	}
}

// Run implements ports.CommandExecutor. A non-zero exit is reported through the
// returned code, not the error.
func (e *LocalExecutor) Run(ctx context.Context, command, shell string) (int, error) {
	name, args := e.invocation(command, shell)
	c := exec.CommandContext(ctx, name, args...)
	c.Stdin = e.stdin
	c.Stdout = e.stdout
	c.Stderr = e.stderr

	err := c.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

func (e *LocalExecutor) invocation(command, shell string) (string, []string) {
	if e.goos == "windows" {
		comspec := e.getenv("COMSPEC")
		if comspec == "" {
			comspec = "cmd.exe"
		}
		return comspec, []string{"/C", command}
	}
	path, err := e.lookPath(shell)
	if shell == "" || err != nil {
		path = fallbackShell
	}
	return path, []string{"-c", command}
}

var _ ports.CommandExecutor = (*LocalExecutor)(nil)
