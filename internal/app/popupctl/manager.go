// internal/app/popupctl/manager.go
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cheatsheet/internal/scan"
	"github.com/llehouerou/cheatsheet/internal/sheet"
	"github.com/llehouerou/cheatsheet/internal/ui/confirm"
	"github.com/llehouerou/cheatsheet/internal/ui/conflicts"
	"github.com/llehouerou/cheatsheet/internal/ui/popup"
	"github.com/llehouerou/cheatsheet/internal/ui/scanreport"
)

// Manager manages all modal popups and overlays.
type Manager struct {
	popups   map[Type]popup.Popup
	sizes    map[Type]popup.SizeConfig
	errorMsg string
	width    int
	height   int
}

// New creates a new Manager.
func New() *Manager {
	return &Manager{
		popups: make(map[Type]popup.Popup),
		// All popups default to SizeAuto
		sizes: map[Type]popup.SizeConfig{},
	}
}

// SetSize updates the dimensions for popup rendering.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for t, pop := range p.popups {
		w, h := p.contentSize(p.sizes[t])
		pop.SetSize(w, h)
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	switch t {
	case None:
		return false
	case Error:
		return p.errorMsg != ""
	case Conflicts, Confirm, ScanReport:
		return p.popups[t] != nil
	}
	return false
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays a popup of the given type.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	w, h := p.contentSize(p.sizes[t])
	pop.SetSize(w, h)
	p.popups[t] = pop
	return pop.Init()
}

// Hide hides the specified popup type.
func (p *Manager) Hide(t Type) {
	switch t {
	case None:
		// Nothing to hide
	case Error:
		p.errorMsg = ""
	case Conflicts, Confirm, ScanReport:
		delete(p.popups, t)
	}
}

// Get retrieves a popup for type assertion when needed.
func (p *Manager) Get(t Type) popup.Popup {
	return p.popups[t]
}

// contentSize calculates popup content dimensions based on size config.
func (p *Manager) contentSize(size popup.SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		w := p.width * size.WidthPct / 100
		h := p.height * size.HeightPct / 100
		return w, h
	}
	// Auto-fit: give full screen size, popup decides
	return p.width, p.height
}

// --- Show Methods (convenience wrappers) ---

// ShowConflicts displays the conflict report.
func (p *Manager) ShowConflicts(rows []sheet.ConflictRow) tea.Cmd {
	m := conflicts.New(rows)
	return p.Show(Conflicts, &m)
}

// ShowConfirm displays a confirmation dialog.
func (p *Manager) ShowConfirm(title, message string, context any) tea.Cmd {
	m := confirm.New()
	m.Show(title, message, context, p.width, p.height)
	return p.Show(Confirm, &m)
}

// ShowScanReport displays the scan report popup.
func (p *Manager) ShowScanReport(result *scan.Result) tea.Cmd {
	m := scanreport.New(result)
	return p.Show(ScanReport, &m)
}

// ShowError displays an error message popup.
func (p *Manager) ShowError(msg string) {
	p.errorMsg = msg
}

// ErrorMsg returns the current error message.
func (p *Manager) ErrorMsg() string {
	return p.errorMsg
}

// Conflicts returns the conflict report, or nil when hidden.
func (p *Manager) Conflicts() *conflicts.Model {
	if m, ok := p.popups[Conflicts].(*conflicts.Model); ok {
		return m
	}
	return nil
}

// --- Key Handling ---

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	// Error popup: dismiss on any key
	if p.errorMsg != "" {
		p.errorMsg = ""
		return true, nil
	}

	// Find highest-priority active popup
	active := p.ActivePopup()
	if active == None {
		return false, nil
	}

	// ScanReport special handling (no Update method with keys)
	if active == ScanReport {
		key := msg.String()
		if key == "enter" || key == "esc" || key == "q" {
			p.Hide(ScanReport)
		}
		return true, nil
	}

	pop := p.popups[active]
	if pop == nil {
		return false, nil
	}

	// Route to popup's Update
	updated, cmd := pop.Update(msg)
	p.popups[active] = updated
	return true, cmd
}

// --- Rendering ---

// RenderOverlay renders active popup(s) on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		if !p.IsVisible(t) {
			continue
		}

		if t == Error {
			base = popup.Compose(base, p.renderError(), p.width, p.height)
			continue
		}

		pop := p.popups[t]
		if pop == nil {
			continue
		}

		content := pop.View()
		size := p.sizes[t]
		rendered := popup.RenderBordered(content, p.width, p.height, size)
		base = popup.Compose(base, rendered, p.width, p.height)
	}
	return base
}

func (p *Manager) renderError() string {
	pop := popup.New()
	pop.Title = "Error"
	pop.Content = p.errorMsg
	pop.Footer = "Press any key to dismiss"
	return pop.Render(p.width, p.height)
}
