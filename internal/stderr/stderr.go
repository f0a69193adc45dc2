//go:build unix

// Package stderr redirects file descriptor 2 while the TUI owns the
// terminal. Child processes and cgo code write there directly, bypassing
// os.Stderr, and would otherwise corrupt the screen.
package stderr

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// Capture is an active redirection of fd 2.
type Capture struct {
	orig int
	r, w *os.File
	done chan struct{}
}

// Start redirects fd 2 into a pipe and calls fn with every non-empty line
// written to it. fn runs on a separate goroutine.
func Start(fn func(line string)) (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	orig, err := unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := unix.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{orig: orig, r: r, w: w, done: make(chan struct{})}
	go func() {
		defer close(c.done)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				fn(line)
			}
		}
	}()
	return c, nil
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = unix.Write(c.orig, []byte(msg))
}

// Stop restores fd 2 and waits until every captured line was handed to
// the callback.
func (c *Capture) Stop() {
	_ = unix.Dup2(c.orig, int(os.Stderr.Fd()))
	_ = unix.Close(c.orig)

	// fd 2 no longer refers to the pipe, so closing the write end ends
	// the reader.
	c.w.Close()
	<-c.done
	c.r.Close()
}
