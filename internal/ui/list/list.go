// Package list provides a generic scrollable list component.
package list

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cheatsheet/internal/ui"
	"github.com/llehouerou/cheatsheet/internal/ui/cursor"
)

// Action represents what happened during Update.
type Action int

const (
	ActionNone  Action = iota
	ActionEnter        // Enter key pressed
	ActionClick        // Left click (cursor moved to clicked row)
)

// Result is returned from Update to tell the parent what happened.
type Result struct {
	Action Action
	Index  int // Which item index the action applies to (-1 if none)
}

// Model is a generic scrollable list component.
// It handles navigation and mouse input, returning actions for the parent to handle.
// The parent is responsible for rendering using VisibleRange().
type Model[T any] struct {
	ui.Base
	items    []T
	cursor   cursor.Cursor
	overhead int  // rows of the parent's chrome above and below the items
	header   int  // rows rendered above the first item
	typing   bool // letters belong to a text input; only non-text keys navigate
}

// New creates a new list with the given scroll margin.
func New[T any](margin int) Model[T] {
	return Model[T]{
		cursor:   cursor.New(margin),
		overhead: ui.PanelOverhead,
		header:   ui.PanelOverhead - 1,
	}
}

// SetChrome sets how many rows the parent renders around the items in
// total (overhead) and above them (header).
func (m *Model[T]) SetChrome(overhead, header int) {
	m.overhead = overhead
	m.header = header
}

// SetTyping makes the list ignore letter keys (j/k/g/G) so they reach a
// text input.
func (m *Model[T]) SetTyping(typing bool) {
	m.typing = typing
}

// SetItems replaces all items and clamps cursor to bounds.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.ClampToBounds(len(items))
	m.cursor.EnsureVisible(len(items), m.ListHeight(m.overhead))
}

// Items returns the current items slice.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the currently selected item and true, or zero value and false if empty.
func (m Model[T]) Selected() (T, bool) {
	if len(m.items) == 0 || m.cursor.Pos() >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.cursor.Pos()], true
}

// SelectedIndex returns the current cursor position.
func (m Model[T]) SelectedIndex() int {
	return m.cursor.Pos()
}

// Select moves the cursor to index i.
func (m *Model[T]) Select(i int) {
	m.cursor.Jump(i, len(m.items), m.ListHeight(m.overhead))
}

// VisibleRange returns [start, end) indices for rendering.
func (m Model[T]) VisibleRange() (start, end int) {
	return m.cursor.VisibleRange(len(m.items), m.ListHeight(m.overhead))
}

// Cursor returns the underlying cursor for advanced use cases.
func (m *Model[T]) Cursor() *cursor.Cursor {
	return &m.cursor
}

// Update handles tea.Msg and returns the action that occurred.
func (m *Model[T]) Update(msg tea.Msg) Result {
	if !m.IsFocused() {
		return Result{Index: -1}
	}

	listLen := len(m.items)
	height := m.ListHeight(m.overhead)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		result, row := m.cursor.HandleMouse(msg, listLen, height, m.header)
		if result == cursor.MouseClicked {
			return Result{Action: ActionClick, Index: row}
		}

	case tea.KeyMsg:
		key := msg.String()
		handled := m.cursor.HandleNavKey(key, listLen, height)
		if !handled && !m.typing {
			handled = m.cursor.HandleKey(key, listLen, height)
		}
		if handled {
			return Result{Index: -1}
		}
		if key == "enter" && listLen > 0 {
			return Result{Action: ActionEnter, Index: m.cursor.Pos()}
		}
	}

	return Result{Index: -1}
}
