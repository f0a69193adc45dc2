package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/cheatsheet/internal/config"
	"github.com/llehouerou/cheatsheet/internal/conflict"
	"github.com/llehouerou/cheatsheet/internal/sheet"
	"github.com/llehouerou/cheatsheet/internal/watch"
)

const conflictsFormatText = "text"

type ConflictsCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig configLoader
}

func NewConflictsCommand(stdout, stderr io.Writer, loadConfig configLoader) *ConflictsCommand {
	return &ConflictsCommand{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: loadConfig,
	}
}

func (c *ConflictsCommand) Run(args []string) error {
	fs := flag.NewFlagSet("conflicts", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	configPath := fs.String("config", "", configFlagUsage)
	format := fs.String("format", conflictsFormatText, "output format: text|md|json|yaml|toml")
	watchMode := fs.Bool("watch", false, "print again whenever a keymap file changes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var exportFormat sheet.Format
	if *format != conflictsFormatText {
		f, err := sheet.ParseFormat(*format)
		if err != nil {
			return err
		}
		exportFormat = f
	}

	cfg, err := c.loadConfig(*configPath)
	if err != nil {
		return err
	}
	logger := newLogger(c.stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := c.report(ctx, cfg, logger, exportFormat); err != nil {
		return err
	}
	if !*watchMode {
		return nil
	}

	w := &watch.Watcher{Root: cfg.PackagesPath, Logger: logger}
	changes, err := w.Watch(ctx)
	if err != nil {
		return err
	}
	for range changes {
		fmt.Fprintf(c.stdout, "\n-- %s --\n", time.Now().Format(time.TimeOnly))
		if err := c.report(ctx, cfg, logger, exportFormat); err != nil {
			logger.Error("rescan failed", "err", err)
		}
	}
	return nil
}

func (c *ConflictsCommand) report(ctx context.Context, cfg *config.Config, logger *log.Logger, format sheet.Format) error {
	res, err := scanSheet(ctx, cfg, logger)
	if err != nil {
		return err
	}
	rows := sheet.ConflictRows(conflict.Detect(res.Entries, conflictOptions(cfg)))
	if format == "" {
		printConflicts(c.stdout, rows)
		return nil
	}
	return sheet.Export(c.stdout, sheet.NewDocument(nil, rows), format)
}
