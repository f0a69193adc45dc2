// Package app contains the root bubbletea model of the cheat sheet TUI.
package app

import (
	"github.com/llehouerou/cheatsheet/internal/dispatch"
	"github.com/llehouerou/cheatsheet/internal/scan"
)

// ScanProgressMsg wraps a progress update of the running scan.
type ScanProgressMsg struct {
	Progress scan.Progress
	ch       <-chan scan.Progress
}

// ScanCompleteMsg is sent when a scan finishes.
type ScanCompleteMsg struct {
	Result scan.Result
	Err    error
}

// PackagesChangedMsg is sent when a keymap file changed on disk.
type PackagesChangedMsg struct{}

// DispatchedMsg is sent after the executor ran an invocation.
type DispatchedMsg struct {
	Invocation dispatch.Invocation
	Err        error
}

// CopiedMsg is sent after an invocation was copied to the clipboard.
type CopiedMsg struct {
	Text string
	Err  error
}

// clearHistoryContext marks the confirmation dialog for clearing history.
type clearHistoryContext struct{}
