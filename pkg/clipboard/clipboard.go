// Package clipboard applies clipboard writes seen in a terminal
// stream to the surrounding environment. A write can land in the tmux
// paste buffer, in a system clipboard tool, and be passed through to
// the hosting terminal as a fresh OSC 52 sequence so remote sessions
// reach the local clipboard.
package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Option configures a Clipboard.
type Option func(*Clipboard)

// Clipboard fans a single text out to the enabled targets.
type Clipboard struct {
	tmux        bool
	system      bool
	passthrough bool
	output      io.Writer
}

// New creates a Clipboard with every target enabled. Passthrough
// sequences go to stderr so stdout stays parseable.
func New(opts ...Option) *Clipboard {
	c := &Clipboard{
		tmux:        true,
		system:      true,
		passthrough: true,
		output:      os.Stderr,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTmux enables/disables the tmux paste buffer target.
func WithTmux(enabled bool) Option {
	return func(c *Clipboard) {
		c.tmux = enabled
	}
}

// WithSystem enables/disables system clipboard tools.
func WithSystem(enabled bool) Option {
	return func(c *Clipboard) {
		c.system = enabled
	}
}

// WithPassthrough enables/disables re-emitting OSC 52 to the hosting
// terminal.
func WithPassthrough(enabled bool) Option {
	return func(c *Clipboard) {
		c.passthrough = enabled
	}
}

// WithOutput sets the destination for passthrough sequences.
func WithOutput(w io.Writer) Option {
	return func(c *Clipboard) {
		c.output = w
	}
}

// Copy writes text to all enabled targets. Empty text clears them.
// Every target is attempted; the last failure is reported.
func (c *Clipboard) Copy(text string) error {
	var lastErr error

	if c.tmux && isTmuxSession() {
		if err := c.copyToTmux(text); err != nil {
			lastErr = err
		}
	}

	if c.system {
		if err := c.copyToSystem(text); err != nil {
			lastErr = err
		}
	}

	if c.passthrough {
		if err := c.passThrough(text); err != nil {
			lastErr = err
		}
	}

	return lastErr
}

// copyToTmux loads text into the tmux paste buffer.
func (c *Clipboard) copyToTmux(text string) error {
	if text == "" {
		return exec.Command("tmux", "delete-buffer").Run()
	}

	cmd := exec.Command("tmux", "load-buffer", "-")
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// copyToSystem pipes text into the first available clipboard tool.
func (c *Clipboard) copyToSystem(text string) error {
	tool := findSystemClipboardTool()
	if tool == "" {
		return fmt.Errorf("no system clipboard tool available")
	}

	cmd := exec.Command(tool)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// passThrough re-encodes text as OSC 52 for the hosting terminal.
// Inside tmux the sequence is wrapped in a DCS passthrough so tmux
// forwards it instead of swallowing it.
func (c *Clipboard) passThrough(text string) error {
	if text == "" {
		_, err := c.output.Write([]byte("\033]52;c;\007"))
		return err
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(text))

	var sequence string
	if isTmuxSession() {
		sequence = fmt.Sprintf("\033Ptmux;\033\033]52;c;%s\007\033\\", encoded)
	} else {
		sequence = fmt.Sprintf("\033]52;c;%s\007", encoded)
	}

	_, err := c.output.Write([]byte(sequence))
	return err
}

// isTmuxSession checks if running inside tmux
func isTmuxSession() bool {
	return os.Getenv("TMUX") != ""
}

// findSystemClipboardTool finds available system clipboard tool
func findSystemClipboardTool() string {
	tools := getClipboardTools()

	for _, tool := range tools {
		if _, err := exec.LookPath(tool); err == nil {
			return tool
		}
	}

	return ""
}

// getClipboardTools returns platform-specific clipboard tools
func getClipboardTools() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"pbcopy"}
	case "linux":
		return []string{"wl-copy", "xclip", "xsel"}
	case "windows":
		return []string{"clip"}
	default:
		return []string{}
	}
}

// Available reports which targets would accept a write right now.
// Passthrough always works since it only needs a writable stream.
func Available() map[string]bool {
	return map[string]bool{
		"tmux":        isTmuxSession(),
		"system":      findSystemClipboardTool() != "",
		"passthrough": true,
	}
}
