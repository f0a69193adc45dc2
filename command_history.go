package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/cheatsheet/internal/state"
)

type HistoryCommand struct {
	stdout    io.Writer
	stderr    io.Writer
	openState stateOpener
}

func NewHistoryCommand(stdout, stderr io.Writer, openState stateOpener) *HistoryCommand {
	return &HistoryCommand{
		stdout:    stdout,
		stderr:    stderr,
		openState: openState,
	}
}

func (c *HistoryCommand) Run(args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	limit := fs.Int("limit", 20, "number of entries to show")
	clearAll := fs.Bool("clear", false, "forget every recorded invocation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *limit <= 0 {
		return errors.New("limit must be positive")
	}

	st, err := c.openState()
	if err != nil {
		return err
	}
	defer st.Close()

	if *clearAll {
		if err := st.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(c.stdout, "History cleared")
		return nil
	}

	entries, err := st.Recent(*limit)
	if err != nil {
		return err
	}
	printHistory(c.stdout, entries)
	return nil
}

func printHistory(output io.Writer, entries []state.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(output, "No recorded invocations")
		return
	}
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "COUNT\tLAST USED\tCOMMAND\tARGS")
	for _, e := range entries {
		args := e.Args
		if args == "" {
			args = "-"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", humanize.Comma(int64(e.Count)), humanize.Time(e.LastUsed), e.Command, args)
	}
	_ = writer.Flush()
}
