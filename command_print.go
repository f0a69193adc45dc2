package main

import (
	"context"
	"flag"
	"io"

	"github.com/llehouerou/cheatsheet/internal/conflict"
	"github.com/llehouerou/cheatsheet/internal/markdown"
	"github.com/llehouerou/cheatsheet/internal/sheet"
)

const (
	printStyleAuto  = "auto"
	printStyleDark  = "dark"
	printStyleLight = "light"
	printStylePlain = "plain"
)

type PrintCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig configLoader
	isTerminal func() bool
}

func NewPrintCommand(stdout, stderr io.Writer, loadConfig configLoader, isTerminal func() bool) *PrintCommand {
	return &PrintCommand{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: loadConfig,
		isTerminal: isTerminal,
	}
}

func (c *PrintCommand) Run(args []string) error {
	fs := flag.NewFlagSet("print", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	configPath := fs.String("config", "", configFlagUsage)
	width := fs.Int("width", 100, "wrap width in columns")
	style := fs.String("style", printStyleAuto, "color style: auto|dark|light|plain")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := oneOf(*style, printStyleAuto, printStyleDark, printStyleLight, printStylePlain); err != nil {
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
	conflicts := sheet.ConflictRows(conflict.Detect(res.Entries, conflictOptions(cfg)))
	md := sheet.Markdown(sheet.NewDocument(rows, conflicts))

	_, err = io.WriteString(c.stdout, markdown.Render(md, *width, c.resolveStyle(*style)))
	return err
}

func (c *PrintCommand) resolveStyle(name string) markdown.Style {
	switch name {
	case printStyleDark:
		return markdown.StyleDark
	case printStyleLight:
		return markdown.StyleLight
	case printStylePlain:
		return markdown.StylePlain
	}
	if c.isTerminal == nil || !c.isTerminal() {
		return markdown.StylePlain
	}
	return markdown.StyleDark
}
