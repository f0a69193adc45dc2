package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/cheatsheet/internal/config"
	"github.com/llehouerou/cheatsheet/internal/conflict"
	"github.com/llehouerou/cheatsheet/internal/keymap"
	"github.com/llehouerou/cheatsheet/internal/label"
	"github.com/llehouerou/cheatsheet/internal/scan"
	"github.com/llehouerou/cheatsheet/internal/sheet"
	"github.com/llehouerou/cheatsheet/internal/value"
)

const configFlagUsage = "config file to read instead of the default locations"

func exitOnErr(name string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", name, err)
	os.Exit(1)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return config.LoadFrom(path)
}

func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "cheatsheet",
		ReportTimestamp: true,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	logger.SetLevel(lvl)
	return logger
}

func newScanner(cfg *config.Config, logger *log.Logger) *scan.Scanner {
	platform := cfg.Platform
	if platform == "" {
		platform = scan.PlatformName(runtime.GOOS)
	}
	return &scan.Scanner{
		Root:            cfg.PackagesPath,
		Platform:        platform,
		Ignored:         cfg.Ignored(),
		MaxPerPackage:   cfg.SingleMaxNums,
		IgnoreSingleKey: cfg.IgnoreSingleKey,
		Logger:          logger,
	}
}

// extras converts default_commands into sheet entries. A command without a
// name is labelled the same way a scanned binding would be.
func extras(cfg *config.Config) []sheet.Extra {
	out := make([]sheet.Extra, 0, len(cfg.DefaultCommands))
	for _, dc := range cfg.DefaultCommands {
		args := value.Null()
		if len(dc.Args) > 0 {
			args = value.FromAny(dc.Args)
		}
		name := dc.Name
		if name == "" {
			name = label.Format(dc.Command, args)
		}
		out = append(out, sheet.Extra{
			Name:    name,
			Command: dc.Command,
			Keys:    dc.Keys,
			Args:    args,
		})
	}
	return out
}

func conflictOptions(cfg *config.Config) conflict.Options {
	return conflict.Options{IgnoreSingleKeys: cfg.IgnoreSingleKeyConflicts}
}

// scanSheet scans the packages tree once and reports skipped packages on
// the logger.
func scanSheet(ctx context.Context, cfg *config.Config, logger *log.Logger) (scan.Result, error) {
	res, err := newScanner(cfg, logger).Scan(ctx)
	if err != nil {
		return scan.Result{}, err
	}
	for _, f := range res.Failures {
		logger.Warn("package skipped", "package", f.Package, "err", f.Err)
	}
	return res, nil
}

func printRows(output io.Writer, rows []sheet.Row, withContext bool) {
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	header := "KEYS\tLABEL\tCOMMAND\tPACKAGE"
	if withContext {
		header += "\tCONTEXT"
	}
	fmt.Fprintln(writer, header)
	for _, row := range rows {
		pkg := row.Entry.Package
		if row.Extra {
			pkg = "(config)"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s",
			keymap.Prettify(row.Entry.Keys), row.Label, row.Entry.Command, pkg)
		if withContext {
			fmt.Fprintf(writer, "\t%s", keymap.DescribeContext(row.Entry))
		}
		fmt.Fprintln(writer)
	}
	_ = writer.Flush()
}

func printConflicts(output io.Writer, rows []sheet.ConflictRow) {
	if len(rows) == 0 {
		fmt.Fprintln(output, "No conflicting key bindings")
		return
	}
	writer := tabwriter.NewWriter(output, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "KEYS\tCOMBO\tCOMMANDS")
	for _, row := range rows {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", keymap.PrettifyCombo(row.Combo), row.Combo, row.Description)
	}
	_ = writer.Flush()
}

func oneOf(s string, allowed ...string) error {
	for _, a := range allowed {
		if s == a {
			return nil
		}
	}
	return fmt.Errorf("invalid value %q (want %s)", s, strings.Join(allowed, "|"))
}
