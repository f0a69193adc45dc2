// internal/app/view.go
package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cheatsheet/internal/app/popupctl"
	"github.com/llehouerou/cheatsheet/internal/ui/headerbar"
	"github.com/llehouerou/cheatsheet/internal/ui/layout"
	"github.com/llehouerou/cheatsheet/internal/ui/render"
	"github.com/llehouerou/cheatsheet/internal/ui/styles"
)

const statusHeight = 1

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	t := styles.T()
	s := t.S()

	var content string
	if m.loaded {
		content = m.Picker.View()
	} else {
		content = s.Muted.Render(m.status)
	}
	panelW, panelH := layout.PanelSize(m.Width, m.Height, m.layoutOpts())
	body := styles.PanelStyle(true).
		Padding(0, layout.PanelPaddingX/2).
		Width(panelW).
		Height(panelH).
		Render(content)

	statusStyle := s.Muted
	if m.statusErr {
		statusStyle = s.Error
	}
	status := statusStyle.Render(render.TruncateEllipsis(render.Sanitize(m.status), m.Width))

	sections := make([]string, 0, 3)
	if !layout.IsCompact(m.Height) {
		sections = append(sections, headerbar.Render("cheatsheet", m.hints(), m.Width))
	}
	sections = append(sections, body, status)

	base := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return m.Popups.RenderOverlay(base)
}

func (m Model) hints() []headerbar.Hint {
	return []headerbar.Hint{
		{Key: "ctrl+r", Name: "Rescan", Active: m.scanning},
		{Key: "ctrl+o", Name: "Report", Active: m.Popups.IsVisible(popupctl.ScanReport)},
		{Key: "ctrl+k", Name: "Conflicts", Active: m.Popups.IsVisible(popupctl.Conflicts)},
	}
}

func (m Model) layoutOpts() layout.ContentOpts {
	opts := layout.ContentOpts{StatusHeight: statusHeight}
	if !layout.IsCompact(m.Height) {
		opts.HeaderHeight = headerbar.Height
	}
	return opts
}

// pickerSize is the picker size inside the panel border and padding.
func (m Model) pickerSize() (width, height int) {
	return layout.InnerSize(m.Width, m.Height, m.layoutOpts())
}
