package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// ClipboardExecutor copies the invocation text instead of running it.
// The system clipboard is tried first, then an OSC52 escape sequence
// written to the terminal.
type ClipboardExecutor struct {
	writeSystem func(string) error
	writeOSC52  func(string) error
}

// NewClipboardExecutor returns an executor using the system clipboard
// with OSC52 fallback.
func NewClipboardExecutor() *ClipboardExecutor {
	return &ClipboardExecutor{
		writeSystem: clipboard.WriteAll,
		writeOSC52:  writeOSC52Clipboard,
	}
}

// Execute copies inv.String() to the clipboard.
func (c *ClipboardExecutor) Execute(_ context.Context, inv Invocation) error {
	if err := validate(inv); err != nil {
		return err
	}
	return c.Copy(inv.String())
}

// Copy writes text to the clipboard.
func (c *ClipboardExecutor) Copy(text string) error {
	sysErr := c.writeSystem(text)
	if sysErr == nil {
		return nil
	}
	oscErr := c.writeOSC52(text)
	if oscErr == nil {
		return nil
	}
	return fmt.Errorf("system clipboard failed: %v; OSC52 fallback failed: %w", sysErr, oscErr)
}

func writeOSC52Clipboard(text string) error {
	if !osc52Available() {
		return errors.New("OSC52 unavailable for this terminal")
	}
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open /dev/tty: %w", err)
	}
	defer tty.Close()
	return writeOSC52Sequence(tty, text, os.Getenv("TERM"), os.Getenv("TMUX") != "")
}

func writeOSC52Sequence(w io.Writer, text, term string, tmux bool) error {
	seq := osc52.New(text)
	switch {
	case tmux:
		seq = seq.Tmux()
	case strings.HasPrefix(strings.ToLower(term), "screen"):
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(w)
	return err
}

func osc52Available() bool {
	term := strings.TrimSpace(os.Getenv("TERM"))
	return term != "" && !strings.EqualFold(term, "dumb")
}
