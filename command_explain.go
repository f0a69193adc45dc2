package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/tidwall/pretty"

	"github.com/llehouerou/cheatsheet/internal/dispatch"
	"github.com/llehouerou/cheatsheet/internal/label"
	"github.com/llehouerou/cheatsheet/internal/value"
)

type ExplainCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	isTerminal func() bool
}

func NewExplainCommand(stdout, stderr io.Writer, isTerminal func() bool) *ExplainCommand {
	return &ExplainCommand{
		stdout:     stdout,
		stderr:     stderr,
		isTerminal: isTerminal,
	}
}

func (c *ExplainCommand) Run(args []string) error {
	fs := flag.NewFlagSet("explain", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 || len(rest) > 2 {
		return errors.New("usage: cheatsheet explain <command> [json-args]")
	}

	inv := dispatch.Invocation{Command: rest[0], Args: value.Null()}
	if len(rest) == 2 {
		v, err := value.Parse([]byte(rest[1]))
		if err != nil {
			return fmt.Errorf("args: %w", err)
		}
		if k := v.Kind(); k != value.KindObject && k != value.KindNull {
			return fmt.Errorf("args must be a JSON object, got %s", k)
		}
		inv.Args = v
	}

	fmt.Fprintf(c.stdout, "command  %s\n", inv.Command)
	fmt.Fprintf(c.stdout, "label    %s\n", label.Format(inv.Command, inv.Args))
	if argsJSON := inv.ArgsJSON(); argsJSON != "" {
		out := pretty.Pretty([]byte(argsJSON))
		if c.isTerminal != nil && c.isTerminal() {
			out = pretty.Color(out, nil)
		}
		fmt.Fprintf(c.stdout, "args\n%s", out)
	}

	if !label.Known(inv.Command) {
		fmt.Fprintf(c.stdout, "\nno rule for %q, the generic label is used\n", inv.Command)
		if suggestion, ok := label.Suggest(inv.Command); ok {
			fmt.Fprintf(c.stdout, "did you mean %q?\n", suggestion)
		}
	}
	return nil
}
