// internal/ui/headerbar/headerbar.go
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/cheatsheet/internal/ui/render"
	"github.com/llehouerou/cheatsheet/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Hint is a global shortcut shown on the right of the header.
type Hint struct {
	Key    string
	Name   string
	Active bool // highlighted while the shortcut's feature is in use
}

// Styles
var (
	activeKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	activeNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	inactiveKeyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	inactiveNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Render returns the header bar for the given width: the title on the
// left and as many hints as fit on the right.
func Render(title string, hints []Hint, width int) string {
	if width < 20 {
		return ""
	}

	banner := styles.Banner(" " + title + " ")
	separator := separatorStyle.Render(" │ ")

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		keyStyle, nameStyle := inactiveKeyStyle, inactiveNameStyle
		if h.Active {
			keyStyle, nameStyle = activeKeyStyle, activeNameStyle
		}
		part := keyStyle.Render(h.Key) + " " + nameStyle.Render(h.Name)

		candidate := strings.Join(append(parts, part), separator)
		if lipgloss.Width(banner)+lipgloss.Width(candidate)+1 > width {
			break
		}
		parts = append(parts, part)
	}

	return render.Row(banner, strings.Join(parts, separator), width)
}
