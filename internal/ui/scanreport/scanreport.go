// Package scanreport provides a popup component for displaying package scan results.
package scanreport

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/cheatsheet/internal/scan"
	"github.com/llehouerou/cheatsheet/internal/ui"
	"github.com/llehouerou/cheatsheet/internal/ui/popup"
	"github.com/llehouerou/cheatsheet/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// DefaultMaxPackages is the number of packages listed before the rest are
// summarized.
const DefaultMaxPackages = 15

// Model holds the state for the scan report popup.
type Model struct {
	ui.Base
	Result      *scan.Result
	MaxPackages int
}

// New creates a new scan report model.
func New(result *scan.Result) Model {
	return Model{
		Result:      result,
		MaxPackages: DefaultMaxPackages,
	}
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(_ tea.Msg) (popup.Popup, tea.Cmd) {
	// ScanReport doesn't handle any messages - it's closed by the manager
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Result == nil {
		return ""
	}

	s := styles.T().S()

	var result strings.Builder
	result.WriteString(s.Title.Render("Package Scan"))
	result.WriteString("\n\n")
	result.WriteString(m.buildContent())
	result.WriteString("\n\n")
	result.WriteString(s.Subtle.Render("Press Enter or Escape to close"))

	return result.String()
}

func (m Model) buildContent() string {
	var sb strings.Builder
	t := styles.T()
	dimStyle := t.S().Subtle

	nameWidth := 0
	for _, p := range m.Result.Packages {
		nameWidth = max(nameWidth, lipgloss.Width(p.Name))
	}

	for i, p := range m.Result.Packages {
		if i >= m.MaxPackages {
			remaining := len(m.Result.Packages) - m.MaxPackages
			sb.WriteString(dimStyle.Render(fmt.Sprintf("... and %d more", remaining)))
			sb.WriteString("\n")
			break
		}
		sb.WriteString(lipgloss.NewStyle().Bold(true).Width(nameWidth).Render(p.Name))
		sb.WriteString("  ")
		sb.WriteString(english.Plural(p.Entries, "binding", ""))
		if p.Dropped > 0 {
			sb.WriteString("  ")
			sb.WriteString(t.S().Warning.Render(fmt.Sprintf("%d skipped", p.Dropped)))
		}
		sb.WriteString("  ")
		sb.WriteString(dimStyle.Render(p.File))
		sb.WriteString("\n")
	}

	if len(m.Result.Failures) > 0 {
		if len(m.Result.Packages) > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(lipgloss.NewStyle().Foreground(t.Error).Render("Failed"))
		sb.WriteString("\n")
		for _, f := range m.Result.Failures {
			sb.WriteString("  • ")
			sb.WriteString(f.Package)
			sb.WriteString(": ")
			sb.WriteString(dimStyle.Render(f.Err.Error()))
			sb.WriteString("\n")
		}
	}

	// Total line
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", 40))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Total: " + m.Result.Summary()))

	return sb.String()
}
