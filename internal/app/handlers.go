package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/cheatsheet/internal/app/popupctl"
	"github.com/llehouerou/cheatsheet/internal/dispatch"
	"github.com/llehouerou/cheatsheet/internal/errmsg"
	"github.com/llehouerou/cheatsheet/internal/sheet"
	"github.com/llehouerou/cheatsheet/internal/ui/action"
	"github.com/llehouerou/cheatsheet/internal/ui/confirm"
	"github.com/llehouerou/cheatsheet/internal/ui/conflicts"
	"github.com/llehouerou/cheatsheet/internal/ui/picker"
)

// handleUIAction routes action messages to component-specific handlers.
func (m Model) handleUIAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch msg.Source {
	case "picker":
		return m.handlePickerAction(msg.Action)
	case "conflicts":
		return m.handleConflictsAction(msg.Action)
	case "confirm":
		return m.handleConfirmAction(msg.Action)
	}
	return m, nil
}

func (m Model) handlePickerAction(a action.Action) (tea.Model, tea.Cmd) {
	switch act := a.(type) {
	case picker.Selected:
		if m.opts.Executor == nil {
			return m, nil
		}
		if m.opts.State != nil {
			m.opts.State.SavePicker(m.Picker.State())
		}
		inv := invocation(act.Row)
		m.setStatus("Running " + inv.String())
		return m, dispatchCmd(m.ctx, m.opts.Executor, inv)

	case picker.Copy:
		if m.opts.Clipboard == nil {
			return m, nil
		}
		return m, copyCmd(m.opts.Clipboard, invocation(act.Row).String())

	case picker.ShowConflicts:
		return m, m.Popups.ShowConflicts(m.Conflicts)

	case picker.ClearHistory:
		if m.opts.State == nil {
			return m, nil
		}
		counts, err := m.opts.State.Counts()
		if err != nil {
			m.setError(errmsg.Format(errmsg.OpHistoryLoad, err))
			return m, nil
		}
		total := 0
		for _, n := range counts {
			total += n
		}
		message := fmt.Sprintf("Forget %s?", english.Plural(total, "recorded invocation", ""))
		return m, m.Popups.ShowConfirm("Clear history", message, clearHistoryContext{})

	case picker.Close:
		return m, m.quit()
	}
	return m, nil
}

func (m Model) handleConflictsAction(a action.Action) (tea.Model, tea.Cmd) {
	if _, ok := a.(conflicts.Close); ok {
		m.Popups.Hide(popupctl.Conflicts)
	}
	return m, nil
}

func (m Model) handleConfirmAction(a action.Action) (tea.Model, tea.Cmd) {
	result, ok := a.(confirm.Result)
	if !ok {
		return m, nil
	}
	m.Popups.Hide(popupctl.Confirm)
	if !result.Confirmed {
		return m, nil
	}

	if _, ok := result.Context.(clearHistoryContext); ok {
		if err := m.opts.State.Clear(); err != nil {
			m.setError(errmsg.Format(errmsg.OpHistoryClear, err))
			return m, nil
		}
		m.Picker.SetCounts(nil)
		m.setStatus("History cleared")
	}
	return m, nil
}

// invocation returns what running row dispatches.
func invocation(row sheet.Row) dispatch.Invocation {
	return dispatch.Invocation{Command: row.Entry.Command, Args: row.Entry.Args}
}
