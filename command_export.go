package main

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"

	"github.com/llehouerou/cheatsheet/internal/conflict"
	"github.com/llehouerou/cheatsheet/internal/sheet"
)

type ExportCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig configLoader
}

func NewExportCommand(stdout, stderr io.Writer, loadConfig configLoader) *ExportCommand {
	return &ExportCommand{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: loadConfig,
	}
}

func (c *ExportCommand) Run(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	configPath := fs.String("config", "", configFlagUsage)
	format := fs.String("format", "", "output format: md|json|yaml|toml (default: from --output extension, else md)")
	output := fs.String("output", "", "file to write instead of stdout")
	noConflicts := fs.Bool("no-conflicts", false, "leave the conflicts section out")
	if err := fs.Parse(args); err != nil {
		return err
	}

	name := *format
	if name == "" && *output != "" {
		name = filepath.Ext(*output)
	}
	exportFormat := sheet.FormatMarkdown
	if name != "" {
		f, err := sheet.ParseFormat(name)
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

	res, err := scanSheet(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	rows := sheet.Build(res.Entries, sheet.Options{ShowContext: cfg.ShowContext}, extras(cfg))
	var conflicts []sheet.ConflictRow
	if !*noConflicts {
		conflicts = sheet.ConflictRows(conflict.Detect(res.Entries, conflictOptions(cfg)))
	}
	doc := sheet.NewDocument(rows, conflicts)

	if *output == "" {
		return sheet.Export(c.stdout, doc, exportFormat)
	}
	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	if err := sheet.Export(f, doc, exportFormat); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("exported", "bindings", len(doc.Bindings), "conflicts", len(doc.Conflicts), "file", *output)
	return nil
}
