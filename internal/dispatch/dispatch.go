// Package dispatch runs a command chosen from the cheat sheet.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/cheatsheet/internal/value"
)

// Invocation is a command name with its arguments.
type Invocation struct {
	Command string
	Args    value.Value // object or null
}

// ArgsJSON returns the arguments as compact JSON, or "" when there are none.
func (inv Invocation) ArgsJSON() string {
	if inv.Args.IsEmpty() {
		return ""
	}
	data, err := inv.Args.MarshalJSON()
	if err != nil {
		return ""
	}
	return string(data)
}

// String returns "command" or "command {json args}".
func (inv Invocation) String() string {
	if args := inv.ArgsJSON(); args != "" {
		return inv.Command + " " + args
	}
	return inv.Command
}

// Executor carries out an invocation.
type Executor interface {
	Execute(ctx context.Context, inv Invocation) error
}

// ErrNoCommand is returned when an invocation has an empty command.
var ErrNoCommand = errors.New("no command to run")

// Recorder stores executed invocations.
type Recorder interface {
	Record(command, args string) error
}

// Recording wraps an Executor and records every successful invocation.
// A failing Recorder is logged and never fails the invocation.
type Recording struct {
	Executor Executor
	Recorder Recorder
	Logger   *log.Logger
}

// Execute runs inv through the wrapped executor, then records it.
func (r Recording) Execute(ctx context.Context, inv Invocation) error {
	if err := r.Executor.Execute(ctx, inv); err != nil {
		return err
	}
	if r.Recorder == nil {
		return nil
	}
	if err := r.Recorder.Record(inv.Command, inv.ArgsJSON()); err != nil {
		logger := r.Logger
		if logger == nil {
			logger = log.Default()
		}
		logger.Warn("record history", "command", inv.Command, "err", err)
	}
	return nil
}

func validate(inv Invocation) error {
	if inv.Command == "" {
		return ErrNoCommand
	}
	if !inv.Args.IsNull() && inv.Args.Kind() != value.KindObject {
		return fmt.Errorf("%s: args must be an object, got %s", inv.Command, inv.Args.Kind())
	}
	return nil
}

// New returns the executor named kind: "exec", "clipboard" or "print".
// argv is used by "exec" and w by "print".
func New(kind string, argv []string, w io.Writer) (Executor, error) {
	switch kind {
	case "", "exec":
		return NewExecExecutor(argv), nil
	case "clipboard":
		return NewClipboardExecutor(), nil
	case "print":
		return PrintExecutor{W: w}, nil
	}
	return nil, fmt.Errorf("unknown executor %q", kind)
}
