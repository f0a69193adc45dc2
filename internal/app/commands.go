package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cheatsheet/internal/dispatch"
	"github.com/llehouerou/cheatsheet/internal/scan"
)

// startScan runs the scanner in the background, streaming its progress.
// A scan requested while one is running is queued.
func (m *Model) startScan() tea.Cmd {
	if m.opts.Scanner == nil {
		return nil
	}
	if m.scanning {
		m.rescanPending = true
		return nil
	}
	m.scanning = true
	return m.scanCmd()
}

// scanCmd returns the command running one scan.
func (m Model) scanCmd() tea.Cmd {
	if m.opts.Scanner == nil {
		return nil
	}
	ch := make(chan scan.Progress, 8)
	s := *m.opts.Scanner
	s.Progress = ch
	ctx := m.ctx

	return tea.Batch(
		func() tea.Msg {
			res, err := s.Scan(ctx)
			return ScanCompleteMsg{Result: res, Err: err}
		},
		waitForProgress(ch),
	)
}

// waitForProgress returns a command that reads the next progress update.
func waitForProgress(ch <-chan scan.Progress) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return ScanProgressMsg{Progress: p, ch: ch}
	}
}

// waitForChange returns a command that waits for the next keymap change.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return PackagesChangedMsg{}
	}
}

func dispatchCmd(ctx context.Context, exec dispatch.Executor, inv dispatch.Invocation) tea.Cmd {
	return func() tea.Msg {
		return DispatchedMsg{Invocation: inv, Err: exec.Execute(ctx, inv)}
	}
}

func copyCmd(c Copier, text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Text: text, Err: c.Copy(text)}
	}
}
