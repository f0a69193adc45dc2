// Package conflicts provides a scrollable popup listing key combos bound
// to more than one command.
package conflicts

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/cheatsheet/internal/keymap"
	"github.com/llehouerou/cheatsheet/internal/sheet"
	"github.com/llehouerou/cheatsheet/internal/ui"
	"github.com/llehouerou/cheatsheet/internal/ui/popup"
	"github.com/llehouerou/cheatsheet/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Model holds the state for the conflict report popup.
type Model struct {
	ui.Base
	rows         []sheet.ConflictRow
	scrollOffset int
}

// New creates a conflict report over rows.
func New(rows []sheet.ConflictRow) Model {
	return Model{rows: rows}
}

// SetRows replaces the reported conflicts, keeping the scroll position
// when possible.
func (m *Model) SetRows(rows []sheet.ConflictRow) {
	m.rows = rows
	m.scrollOffset = min(m.scrollOffset, m.maxScroll())
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "enter", "ctrl+k":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	case "g", "home":
		m.scrollOffset = 0
	case "G", "end":
		m.scrollOffset = m.maxScroll()
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := m.buildLines()

	// Width from all lines so scrolling does not resize the popup
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := lines[start:end]
	for i, line := range visible {
		if w := lipgloss.Width(line); w < maxWidth {
			visible[i] = line + strings.Repeat(" ", maxWidth-w)
		}
	}

	s := styles.T().S()
	title := fmt.Sprintf("Key Conflicts (%s)", english.Plural(len(m.rows), "combo", "combos"))

	var result strings.Builder
	result.WriteString(s.Title.Render(title))
	result.WriteString("\n\n")
	result.WriteString(strings.Join(visible, "\n"))
	result.WriteString("\n\n")
	result.WriteString(s.Subtle.Render(m.buildFooter()))
	return result.String()
}

func (m Model) buildLines() []string {
	s := styles.T().S()
	if len(m.rows) == 0 {
		return []string{s.Success.Render("No conflicting key bindings")}
	}

	// Align descriptions on the widest prettified combo
	pretty := make([]string, len(m.rows))
	keyWidth := 0
	for i, r := range m.rows {
		pretty[i] = keymap.PrettifyCombo(r.Combo)
		keyWidth = max(keyWidth, lipgloss.Width(pretty[i]))
	}

	lines := make([]string, 0, len(m.rows))
	for i, r := range m.rows {
		pad := strings.Repeat(" ", keyWidth-lipgloss.Width(pretty[i]))
		lines = append(lines, s.Keys.Render(pretty[i])+pad+"  "+
			s.Muted.Render(r.Combo)+"  "+s.Warning.Render(r.Description))
	}
	return lines
}

func (m Model) buildFooter() string {
	if len(m.rows) <= m.visibleHeight() {
		return "esc close"
	}
	return "j/k scroll · esc close"
}

func (m Model) visibleHeight() int {
	// Leave room for popup chrome (title, footer, borders, margins)
	return max(m.Height()-10, 5)
}

func (m Model) maxScroll() int {
	total := max(len(m.rows), 1)
	return max(total-m.visibleHeight(), 0)
}
