package clipboard

import (
	"bytes"
	"os/exec"
	"runtime"

	"golang.org/x/text/encoding/unicode"

	"github.com/doeshing/hey-go/internal/ports"
)

// Runner executes name with args, feeding input on stdin.
type Runner func(name string, args []string, input []byte) error

// tool is one clipboard utility invocation.
type tool struct {
	name   string
	args   []string
	encode func(string) ([]byte, error)
}

// tools lists the utilities tried per GOOS, in order.
var tools = map[string][]tool{
	"darwin": {
		{name: "pbcopy", encode: utf8Bytes},
	},
	"linux": {
		{name: "xclip", args: []string{"-selection", "clipboard"}, encode: utf8Bytes},
		{name: "xsel", args: []string{"--clipboard", "--input"}, encode: utf8Bytes},
	},
	"windows": {
		{name: "clip", encode: utf16Bytes},
	},
}

// Clipboard implements ports.Clipboard using platform-specific tools.
type Clipboard struct {
	goos   string
	run    Runner
	logger ports.Logger
}

// NewClipboard builds the clipboard helper for the running system.
func NewClipboard(logger ports.Logger) *Clipboard {
	return &Clipboard{goos: runtime.GOOS, run: execRunner, logger: logger}
}

// NewClipboardFor builds a clipboard helper with an injected OS and runner.
func NewClipboardFor(goos string, run Runner, logger ports.Logger) *Clipboard {
	return &Clipboard{goos: goos, run: run, logger: logger}
}

// Enabled reports whether the OS has a known clipboard utility.
func (c *Clipboard) Enabled() bool {
	return len(tools[c.goos]) > 0
}

// Copy copies text to the system clipboard. It returns true as soon as one
// utility succeeds; missing executables and failures are swallowed.
func (c *Clipboard) Copy(text string) bool {
	if !c.Enabled() {
		if c.logger != nil {
			c.logger.Debug("no clipboard utility for platform", map[string]interface{}{"goos": c.goos})
		}
		return false
	}
	for _, t := range tools[c.goos] {
		input, err := t.encode(text)
		if err != nil {
			c.debug("clipboard encode failed", t.name, err)
			continue
		}
		if err := c.run(t.name, t.args, input); err != nil {
			c.debug("clipboard utility failed", t.name, err)
			continue
		}
		return true
	}
	return false
}

func (c *Clipboard) debug(msg, name string, err error) {
	if c.logger == nil {
		return
	}
	c.logger.Debug(msg, map[string]interface{}{"tool": name, "error": err.Error()})
}

func execRunner(name string, args []string, input []byte) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = bytes.NewReader(input)
	return cmd.Run()
}

func utf8Bytes(text string) ([]byte, error) {
	return []byte(text), nil
}

// utf16Bytes encodes text as little-endian UTF-16 with a byte-order mark.
func utf16Bytes(text string) ([]byte, error) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	return enc.Bytes([]byte(text))
}

var _ ports.Clipboard = (*Clipboard)(nil)
