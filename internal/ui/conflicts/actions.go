package conflicts

import (
	"github.com/llehouerou/cheatsheet/internal/ui/action"
)

// Close signals the conflict report should close.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "conflicts.close" }

// ActionMsg creates an action.Msg for a conflicts action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "conflicts", Action: a}
}
