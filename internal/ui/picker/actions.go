package picker

import (
	"github.com/llehouerou/cheatsheet/internal/sheet"
	"github.com/llehouerou/cheatsheet/internal/ui/action"
)

// Selected requests that the row's command be dispatched.
type Selected struct {
	Row sheet.Row
}

// ActionType implements action.Action.
func (a Selected) ActionType() string { return "picker.selected" }

// Copy requests that the row's command be copied to the clipboard.
type Copy struct {
	Row sheet.Row
}

// ActionType implements action.Action.
func (a Copy) ActionType() string { return "picker.copy" }

// ShowConflicts requests the conflict report.
type ShowConflicts struct{}

// ActionType implements action.Action.
func (a ShowConflicts) ActionType() string { return "picker.show_conflicts" }

// ClearHistory requests that the invocation history be forgotten.
type ClearHistory struct{}

// ActionType implements action.Action.
func (a ClearHistory) ActionType() string { return "picker.clear_history" }

// Close signals the picker should close without selecting.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "picker.close" }

// ActionMsg creates an action.Msg for a picker action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "picker", Action: a}
}
