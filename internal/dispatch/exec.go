package dispatch

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Placeholders substituted in an ExecExecutor argv template.
const (
	PlaceholderCommand = "{command}"
	PlaceholderArgs    = "{args}"
)

// DefaultArgv asks a running editor to execute the command.
var DefaultArgv = []string{"subl", "--command", "{command} {args}"}

// ExecExecutor runs an external program built from an argv template.
type ExecExecutor struct {
	Argv []string

	// run is replaced in tests.
	run func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewExecExecutor returns an executor for argv, or DefaultArgv when argv
// is empty.
func NewExecExecutor(argv []string) *ExecExecutor {
	if len(argv) == 0 {
		argv = DefaultArgv
	}
	return &ExecExecutor{Argv: argv}
}

// Execute runs the expanded argv and waits for it to exit.
func (e *ExecExecutor) Execute(ctx context.Context, inv Invocation) error {
	if err := validate(inv); err != nil {
		return err
	}
	argv := e.Expand(inv)
	if len(argv) == 0 || argv[0] == "" {
		return fmt.Errorf("%s: empty exec command", inv.Command)
	}

	run := e.run
	if run == nil {
		run = runCommand
	}
	out, err := run(ctx, argv[0], argv[1:]...)
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w: %s", argv[0], err, msg)
		}
		return fmt.Errorf("%s: %w", argv[0], err)
	}
	return nil
}

// Expand substitutes the invocation into the argv template. Each element
// is trimmed so an absent {args} leaves no trailing space.
func (e *ExecExecutor) Expand(inv Invocation) []string {
	r := strings.NewReplacer(PlaceholderCommand, inv.Command, PlaceholderArgs, inv.ArgsJSON())
	out := make([]string, 0, len(e.Argv))
	for _, arg := range e.Argv {
		out = append(out, strings.TrimSpace(r.Replace(arg)))
	}
	return out
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}
