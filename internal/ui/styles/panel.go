package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the rounded border used by the picker, highlighted
// when focused.
func PanelStyle(focused bool) lipgloss.Style {
	color := T().Border
	if focused {
		color = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}

// Banner renders the application title with the accent gradient.
func Banner(text string) string {
	t := T()
	return ApplyBoldGradient(text, t.Primary, t.Secondary)
}
