package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"

	"github.com/llehouerou/cheatsheet/internal/app"
	"github.com/llehouerou/cheatsheet/internal/config"
	"github.com/llehouerou/cheatsheet/internal/dispatch"
	"github.com/llehouerou/cheatsheet/internal/sheet"
	"github.com/llehouerou/cheatsheet/internal/stderr"
	"github.com/llehouerou/cheatsheet/internal/watch"
)

type PickCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig configLoader
	openState  stateOpener
	runProgram programRunner
	logOutput  func() (io.WriteCloser, error)
}

func NewPickCommand(stdout, stderr io.Writer, loadConfig configLoader, openState stateOpener, runProgram programRunner) *PickCommand {
	return &PickCommand{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: loadConfig,
		openState:  openState,
		runProgram: runProgram,
		logOutput:  openLogFile,
	}
}

func (c *PickCommand) Run(args []string) error {
	fs := flag.NewFlagSet("pick", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	configPath := fs.String("config", "", configFlagUsage)
	keepOpen := fs.Bool("keep-open", false, "stay open after running a command")
	noWatch := fs.Bool("no-watch", false, "do not rescan when keymap files change")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := c.loadConfig(*configPath)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := c.logOutput()
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile, cfg.LogLevel)

	capture, err := stderr.Start(func(line string) {
		logger.Warn("stderr", "line", line)
	})
	if err != nil {
		logger.Warn("stderr capture disabled", "err", err)
	} else {
		defer capture.Stop()
	}

	st, err := c.openState()
	if err != nil {
		return err
	}
	defer st.Close()

	// The print executor writes here; the text is shown once the
	// alternate screen is gone.
	var printed bytes.Buffer
	exec, err := dispatch.New(cfg.Executor, cfg.ExecCommand, &printed)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var changes <-chan struct{}
	if !*noWatch {
		w := &watch.Watcher{Root: cfg.PackagesPath, Logger: logger}
		ch, err := w.Watch(ctx)
		if err != nil {
			logger.Warn("live reload disabled", "err", err)
		} else {
			changes = ch
		}
	}

	model := app.New(ctx, app.Options{
		Scanner:   newScanner(cfg, logger),
		Sheet:     sheet.Options{ShowContext: cfg.ShowContext},
		Extras:    extras(cfg),
		Conflicts: conflictOptions(cfg),
		Executor: dispatch.Recording{
			Executor: exec,
			Recorder: st,
			Logger:   logger,
		},
		Clipboard: dispatch.NewClipboardExecutor(),
		State:     st,
		Changes:   changes,
		KeepOpen:  *keepOpen,
		Logger:    logger,
	})
	if _, err := c.runProgram(model); err != nil {
		return err
	}
	_, err = io.Copy(c.stdout, &printed)
	return err
}

func openLogFile() (io.WriteCloser, error) {
	path, err := config.LogFile()
	if err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
