package main

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/llehouerou/cheatsheet/internal/config"
	"github.com/llehouerou/cheatsheet/internal/state"
)

type commandRunner interface {
	Run(args []string) error
}

type (
	configLoader  func(path string) (*config.Config, error)
	stateOpener   func() (state.Interface, error)
	programRunner func(m tea.Model) (tea.Model, error)
)

type commandWiring struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig configLoader
	openState  stateOpener
	runProgram programRunner
	isTerminal func() bool
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: loadConfig,
		openState: func() (state.Interface, error) {
			return state.Open()
		},
		runProgram: func(m tea.Model) (tea.Model, error) {
			return tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
		},
		isTerminal: func() bool {
			return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		},
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"pick":      NewPickCommand(wiring.stdout, wiring.stderr, wiring.loadConfig, wiring.openState, wiring.runProgram),
		"list":      NewListCommand(wiring.stdout, wiring.stderr, wiring.loadConfig),
		"conflicts": NewConflictsCommand(wiring.stdout, wiring.stderr, wiring.loadConfig),
		"export":    NewExportCommand(wiring.stdout, wiring.stderr, wiring.loadConfig),
		"print":     NewPrintCommand(wiring.stdout, wiring.stderr, wiring.loadConfig, wiring.isTerminal),
		"explain":   NewExplainCommand(wiring.stdout, wiring.stderr, wiring.isTerminal),
		"history":   NewHistoryCommand(wiring.stdout, wiring.stderr, wiring.openState),
		"config":    NewConfigCommand(wiring.stdout, wiring.stderr, wiring.loadConfig),
	}
}
