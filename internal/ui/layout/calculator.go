// Package layout provides pure functions for UI dimension calculations.
package layout

// PanelBorderSize is the space a rounded panel border takes on each axis.
const PanelBorderSize = 2

// PanelPaddingX is the horizontal padding inside the main panel.
const PanelPaddingX = 2

// CompactHeight is the window height below which the header is hidden.
const CompactHeight = 12

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	HeaderHeight int // 0 when the header is hidden
	StatusHeight int
}

// IsCompact returns true if the window is too short to spare a header row.
func IsCompact(windowHeight int) bool {
	return windowHeight < CompactHeight
}

// ContentHeight calculates the height available to the main panel,
// border included.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.StatusHeight
	return max(height, 0)
}

// PanelSize returns the size inside the main panel's border. Both values
// are at least 1 so components never receive a zero size.
func PanelSize(windowWidth, windowHeight int, opts ContentOpts) (width, height int) {
	width = max(windowWidth-PanelBorderSize, 1)
	height = max(ContentHeight(windowHeight, opts)-PanelBorderSize, 1)
	return width, height
}

// InnerSize returns the space left for the panel's content once the
// horizontal padding is removed.
func InnerSize(windowWidth, windowHeight int, opts ContentOpts) (width, height int) {
	w, h := PanelSize(windowWidth, windowHeight, opts)
	return max(w-PanelPaddingX, 1), h
}
