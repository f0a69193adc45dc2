// internal/app/app.go
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/cheatsheet/internal/app/popupctl"
	"github.com/llehouerou/cheatsheet/internal/conflict"
	"github.com/llehouerou/cheatsheet/internal/dispatch"
	"github.com/llehouerou/cheatsheet/internal/scan"
	"github.com/llehouerou/cheatsheet/internal/sheet"
	"github.com/llehouerou/cheatsheet/internal/state"
	"github.com/llehouerou/cheatsheet/internal/ui/picker"
)

// Copier puts text on the clipboard.
type Copier interface {
	Copy(text string) error
}

// Options are the collaborators of the TUI.
type Options struct {
	Scanner   *scan.Scanner
	Sheet     sheet.Options
	Extras    []sheet.Extra
	Conflicts conflict.Options
	Executor  dispatch.Executor // usually wrapped in dispatch.Recording
	Clipboard Copier
	State     state.Interface
	Changes   <-chan struct{} // keymap changes, nil disables live reload
	KeepOpen  bool            // stay open after running a command
	Logger    *log.Logger
}

// Model is the root application model containing all state.
type Model struct {
	opts   Options
	ctx    context.Context
	logger *log.Logger

	Picker *picker.Model
	Popups *popupctl.Manager

	Result    *scan.Result
	Conflicts []sheet.ConflictRow

	loaded        bool
	scanning      bool
	rescanPending bool
	status        string
	statusErr     bool

	Width  int
	Height int
}

// New creates the application model. Scanning starts with Init.
func New(ctx context.Context, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	p := picker.New("Key Bindings", nil)
	return Model{
		opts:   opts,
		ctx:    ctx,
		logger: logger,
		Picker: &p,
		Popups: popupctl.New(),
		status: "Scanning packages…",
		// Init starts the first scan
		scanning: opts.Scanner != nil,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Picker.Init(), m.scanCmd(), waitForChange(m.opts.Changes))
}

// Status returns the status line text and whether it reports an error.
func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}

// Scanning reports whether a scan is running.
func (m Model) Scanning() bool {
	return m.scanning
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
	m.Popups.ShowError(s)
}

// quit saves the picker state and exits.
func (m *Model) quit() tea.Cmd {
	if m.opts.State != nil && m.loaded {
		m.opts.State.SavePicker(m.Picker.State())
	}
	return tea.Quit
}

// loadCounts refreshes the usage counts shown in the picker.
func (m *Model) loadCounts() {
	if m.opts.State == nil {
		return
	}
	counts, err := m.opts.State.Counts()
	if err != nil {
		m.logger.Warn("load history counts", "err", err)
		return
	}
	m.Picker.SetCounts(counts)
}
