//go:build unix

package stderr

import (
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapture(t *testing.T) {
	var mu sync.Mutex
	var lines []string
	c, err := Start(func(line string) {
		mu.Lock()
		defer mu.Unlock()
		lines = append(lines, line)
	})
	require.NoError(t, err)

	fmt.Fprintln(os.Stderr, "xclip: cannot open display")
	fmt.Fprintln(os.Stderr, "   ")
	fmt.Fprintln(os.Stderr, "  second line  ")
	c.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"xclip: cannot open display", "second line"}, lines)
}

func TestCapture_StopRestoresStderr(t *testing.T) {
	var got []string
	c, err := Start(func(line string) { got = append(got, line) })
	require.NoError(t, err)
	c.Stop()

	// Written after Stop, so it reaches the real stderr instead.
	fmt.Fprint(os.Stderr, "")
	assert.Empty(t, got)
}
