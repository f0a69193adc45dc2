package dispatch

import (
	"context"
	"fmt"
	"io"
)

// PrintExecutor writes the invocation to W instead of running it.
type PrintExecutor struct {
	W io.Writer
}

// Execute prints inv on its own line.
func (p PrintExecutor) Execute(_ context.Context, inv Invocation) error {
	if err := validate(inv); err != nil {
		return err
	}
	_, err := fmt.Fprintln(p.W, inv.String())
	return err
}
