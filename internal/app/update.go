// internal/app/update.go
package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cheatsheet/internal/app/handler"
	"github.com/llehouerou/cheatsheet/internal/conflict"
	"github.com/llehouerou/cheatsheet/internal/errmsg"
	"github.com/llehouerou/cheatsheet/internal/scan"
	"github.com/llehouerou/cheatsheet/internal/sheet"
	"github.com/llehouerou/cheatsheet/internal/ui/action"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case action.Msg:
		return m.handleUIAction(msg)

	case ScanProgressMsg:
		if msg.Progress.Phase == "scanning" {
			m.setStatus(fmt.Sprintf("Scanning %d/%d %s",
				msg.Progress.Current+1, msg.Progress.Total, msg.Progress.Package))
		}
		return m, waitForProgress(msg.ch)

	case ScanCompleteMsg:
		return m.handleScanComplete(msg)

	case PackagesChangedMsg:
		m.logger.Debug("keymaps changed, rescanning")
		return m, tea.Batch(m.startScan(), waitForChange(m.opts.Changes))

	case DispatchedMsg:
		return m.handleDispatched(msg)

	case CopiedMsg:
		if msg.Err != nil {
			m.setError(errmsg.Format(errmsg.OpCopyCommand, msg.Err))
			return m, nil
		}
		m.setStatus("Copied " + msg.Text)
		return m, nil
	}

	// Cursor blink and other component messages
	_, cmd := m.Picker.Update(msg)
	return m, cmd
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Popups.SetSize(msg.Width, msg.Height)
	w, h := m.pickerSize()
	m.Picker.SetSize(w, h)
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, m.quit()
	}

	if handled, cmd := m.Popups.HandleKey(msg); handled {
		return m, cmd
	}

	if handled, cmd := handler.Chain(
		func() handler.Result { return m.handleRescanKey(key) },
		func() handler.Result { return m.handleReportKey(key) },
	); handled {
		return m, cmd
	}

	_, cmd := m.Picker.Update(msg)
	return m, cmd
}

func (m *Model) handleRescanKey(key string) handler.Result {
	if key != "ctrl+r" {
		return handler.NotHandled
	}
	m.setStatus("Rescanning packages…")
	return handler.Handled(m.startScan())
}

func (m *Model) handleReportKey(key string) handler.Result {
	if key != "ctrl+o" || m.Result == nil {
		return handler.NotHandled
	}
	return handler.Handled(m.Popups.ShowScanReport(m.Result))
}

func (m Model) handleScanComplete(msg ScanCompleteMsg) (tea.Model, tea.Cmd) {
	m.scanning = false

	if msg.Err != nil {
		if errors.Is(msg.Err, context.Canceled) {
			return m, nil
		}
		m.logger.Error("scan failed", "err", msg.Err)
		m.setError(errmsg.Format(errmsg.OpScanPackages, msg.Err))
	} else {
		m.applyResult(msg.Result)
	}

	if m.rescanPending {
		m.rescanPending = false
		return m, m.startScan()
	}
	return m, nil
}

// applyResult rebuilds the picker rows and the conflict report from a
// finished scan.
func (m *Model) applyResult(res scan.Result) {
	first := !m.loaded
	m.loaded = true
	m.Result = &res

	rows := sheet.Build(res.Entries, m.opts.Sheet, m.opts.Extras)
	m.Picker.SetRows(rows)
	if first && m.opts.State != nil {
		if ps, err := m.opts.State.GetPicker(); err != nil {
			m.logger.Warn("load picker state", "err", err)
		} else if ps != nil {
			m.Picker.Restore(*ps)
		}
	}
	m.loadCounts()

	m.Conflicts = sheet.ConflictRows(conflict.Detect(res.Entries, m.opts.Conflicts))
	if c := m.Popups.Conflicts(); c != nil {
		c.SetRows(m.Conflicts)
	}

	m.setStatus(res.Summary())
	m.logger.Info("scan complete", "summary", res.Summary(), "conflicts", len(m.Conflicts))

	if first && len(res.Failures) > 0 {
		m.Popups.ShowScanReport(m.Result)
	}
}

func (m Model) handleDispatched(msg DispatchedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Error("dispatch failed", "command", msg.Invocation.Command, "err", msg.Err)
		m.setError(errmsg.FormatWith(errmsg.OpRunCommand, msg.Invocation.Command, msg.Err))
		return m, nil
	}
	m.logger.Info("dispatched", "invocation", msg.Invocation.String())
	if !m.opts.KeepOpen {
		return m, m.quit()
	}
	m.loadCounts()
	m.setStatus("Ran " + msg.Invocation.String())
	return m, nil
}
