package main

import (
	"context"
	"flag"
	"io"

	"github.com/llehouerou/cheatsheet/internal/sheet"
)

type ListCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig configLoader
}

func NewListCommand(stdout, stderr io.Writer, loadConfig configLoader) *ListCommand {
	return &ListCommand{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: loadConfig,
	}
}

func (c *ListCommand) Run(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	configPath := fs.String("config", "", configFlagUsage)
	withContext := fs.Bool("context", false, "add a column describing each binding's context")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := c.loadConfig(*configPath)
	if err != nil {
		return err
	}
	logger := newLogger(c.stderr, cfg.LogLevel)

	res, err := scanSheet(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	rows := sheet.Build(res.Entries, sheet.Options{ShowContext: cfg.ShowContext}, extras(cfg))
	printRows(c.stdout, rows, *withContext)
	return nil
}
