// Package picker provides the filterable list of key bindings.
package picker

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/llehouerou/cheatsheet/internal/sheet"
	"github.com/llehouerou/cheatsheet/internal/state"
	"github.com/llehouerou/cheatsheet/internal/ui"
	"github.com/llehouerou/cheatsheet/internal/ui/list"
	"github.com/llehouerou/cheatsheet/internal/ui/popup"
	"github.com/llehouerou/cheatsheet/internal/ui/render"
	"github.com/llehouerou/cheatsheet/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Rows of chrome around the list: title, input and a blank line above,
// a blank line and the footer below.
const (
	headerRows = 3
	footerRows = 2
)

const footerHint = "enter run · ctrl+y copy · ctrl+k conflicts · ctrl+x clear history · esc close"

// navKeys are routed to the list; everything else edits the filter.
var navKeys = map[string]bool{
	"up": true, "down": true, "ctrl+p": true, "ctrl+n": true,
	"pgup": true, "pgdown": true, "home": true, "end": true,
	"enter": true,
}

// Model holds the state for the picker popup.
type Model struct {
	ui.Base
	title  string
	rows   []sheet.Row
	counts map[string]int // invocations per command
	input  textinput.Model
	list   list.Model[int] // indices into rows
	query  string
}

// New creates a picker over rows, shown in the given order until the user
// types a filter.
func New(title string, rows []sheet.Row) Model {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "filter"
	in.PromptStyle = styles.T().S().Selected
	in.Focus()

	l := list.New[int](ui.ScrollMargin)
	l.SetChrome(0, 0)
	l.SetTyping(true)
	l.SetFocused(true)

	m := Model{title: title, rows: rows, input: in, list: l}
	m.refilter()
	return m
}

// SetCounts sets how often each command was invoked. Frequently used
// commands rank first among equally good matches.
func (m *Model) SetCounts(counts map[string]int) {
	m.counts = counts
	m.refilter()
}

// SetRows replaces the rows, keeping the filter and the selected row
// when it still exists.
func (m *Model) SetRows(rows []sheet.Row) {
	selected := m.State().SelectedCommand
	m.rows = rows
	m.refilter()
	m.selectKey(selected)
}

// Rows returns every row, unfiltered.
func (m Model) Rows() []sheet.Row {
	return m.rows
}

// Matches returns the rows passing the current filter, in display order.
func (m Model) Matches() []sheet.Row {
	out := make([]sheet.Row, 0, m.list.Len())
	for _, i := range m.list.Items() {
		out = append(out, m.rows[i])
	}
	return out
}

// Selected returns the row under the cursor.
func (m Model) Selected() (sheet.Row, bool) {
	i, ok := m.list.Selected()
	if !ok {
		return sheet.Row{}, false
	}
	return m.rows[i], true
}

// State returns the filter and selection for persistence.
func (m Model) State() state.PickerState {
	ps := state.PickerState{Query: m.query}
	if row, ok := m.Selected(); ok {
		ps.SelectedCommand = rowKey(row)
	}
	return ps
}

// Restore applies a previously saved filter and selection.
func (m *Model) Restore(ps state.PickerState) {
	m.input.SetValue(ps.Query)
	m.input.CursorEnd()
	m.refilter()
	m.selectKey(ps.SelectedCommand)
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-lenPrompt(m.input)-1, 1)
	m.list.SetSize(width, m.visibleRows())
	m.list.SetItems(m.list.Items())
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if mouse, ok := msg.(tea.MouseMsg); ok {
		// Rows span two lines, so only the wheel maps onto the list.
		if mouse.Button == tea.MouseButtonWheelUp || mouse.Button == tea.MouseButtonWheelDown {
			m.list.Update(mouse)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	key := keyMsg.String()
	switch key {
	case "esc":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "ctrl+k":
		return m, func() tea.Msg { return ActionMsg(ShowConflicts{}) }
	case "ctrl+x":
		return m, func() tea.Msg { return ActionMsg(ClearHistory{}) }
	case "ctrl+y":
		row, ok := m.Selected()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return ActionMsg(Copy{Row: row}) }
	}

	if navKeys[key] {
		result := m.list.Update(keyMsg)
		if result.Action == list.ActionEnter {
			row := m.rows[m.list.Items()[result.Index]]
			return m, func() tea.Msg { return ActionMsg(Selected{Row: row}) }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	if m.input.Value() != m.query {
		m.refilter()
		m.list.Select(0)
	}
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()
	s := t.S()
	width := m.Width()

	var b strings.Builder
	count := fmt.Sprintf(" %d/%d", m.list.Len(), len(m.rows))
	b.WriteString(s.Title.Render(m.title) + s.Muted.Render(count))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.list.Len() == 0 {
		b.WriteString(s.Subtle.Render("No matching bindings"))
		b.WriteString("\n")
	}
	start, end := m.list.VisibleRange()
	items := m.list.Items()
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(m.rows[items[i]], i == m.list.SelectedIndex(), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Subtle.Render(render.TruncateEllipsis(footerHint, width)))
	return b.String()
}

func (m Model) renderRow(row sheet.Row, selected bool, width int) string {
	s := styles.T().S()
	prefix := "  "
	labelStyle := s.Base
	if selected {
		prefix = s.Selected.Render("▌ ")
		labelStyle = s.Selected
	}
	if row.Extra {
		labelStyle = labelStyle.Italic(true)
	}

	inner := max(width-2, 1)
	label := render.TruncateEllipsis(render.Sanitize(row.Label), inner)
	line1 := prefix + render.Highlight(label, m.query, labelStyle, s.Match)

	var used string
	if n := m.counts[row.Entry.Command]; n > 0 {
		used = fmt.Sprintf("×%d", n)
	}
	subtitle := render.TruncateEllipsis(render.Sanitize(row.Subtitle), max(inner-len(used)-1, 1))
	line2 := "  " + render.Row(s.Muted.Render(subtitle), s.Subtle.Render(used), inner)

	return line1 + "\n" + line2
}

// refilter rebuilds the visible rows from the current query. An empty
// query keeps the original order; otherwise rows are ranked by fuzzy match
// distance, then by usage, then by position.
func (m *Model) refilter() {
	m.query = m.input.Value()
	q := strings.TrimSpace(m.query)

	var items []int
	if q == "" {
		items = make([]int, len(m.rows))
		for i := range m.rows {
			items[i] = i
		}
	} else {
		targets := make([]string, len(m.rows))
		for i, r := range m.rows {
			targets[i] = r.Label + " " + r.Subtitle
		}
		ranks := fuzzy.RankFindNormalizedFold(q, targets)
		slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
			return cmp.Or(
				cmp.Compare(a.Distance, b.Distance),
				cmp.Compare(m.counts[m.rows[b.OriginalIndex].Entry.Command],
					m.counts[m.rows[a.OriginalIndex].Entry.Command]),
				cmp.Compare(a.OriginalIndex, b.OriginalIndex),
			)
		})
		items = make([]int, len(ranks))
		for i, r := range ranks {
			items[i] = r.OriginalIndex
		}
	}
	m.list.SetItems(items)
}

func (m *Model) selectKey(key string) {
	if key == "" {
		return
	}
	for i, idx := range m.list.Items() {
		if rowKey(m.rows[idx]) == key {
			m.list.Select(i)
			return
		}
	}
}

func (m Model) visibleRows() int {
	return max((m.Height()-headerRows-footerRows)/ui.RowHeight, 1)
}

func lenPrompt(in textinput.Model) int {
	return len([]rune(in.Prompt))
}

// rowKey identifies a row across rescans.
func rowKey(r sheet.Row) string {
	return r.Entry.Package + "\x00" + r.Label + "\x00" + r.Subtitle
}
