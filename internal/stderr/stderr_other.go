//go:build !unix

// Package stderr redirects file descriptor 2 while the TUI owns the
// terminal. On this platform capture is not supported and Start is a no-op.
package stderr

import "os"

// Capture is a no-op redirection.
type Capture struct{}

// Start is a no-op.
func Start(func(line string)) (*Capture, error) {
	return &Capture{}, nil
}

// WriteOriginal writes to stderr.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op.
func (c *Capture) Stop() {}
