// Package markdown renders exported cheat sheets for the terminal.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	xansi "github.com/charmbracelet/x/ansi"
)

// Style selects the glamour palette.
type Style int

const (
	StyleDark Style = iota
	StyleLight
	StylePlain // no colors, for pipes and dumb terminals
)

var (
	rendererMu sync.Mutex
	renderers  = map[rendererKey]*glamour.TermRenderer{}
)

type rendererKey struct {
	width int
	style Style
}

// Render renders input at width columns. On any renderer failure the
// input is returned unchanged.
func Render(input string, width int, style Style) string {
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := getRenderer(width, style)
	if r == nil {
		return input
	}
	out, err := r.Render(input)
	if err != nil {
		return input
	}
	out = strings.TrimRight(out, "\n")
	if style != StylePlain {
		out = xansi.Hardwrap(out, width, true)
	}
	return strings.TrimRight(out, "\n") + "\n"
}

func getRenderer(width int, style Style) *glamour.TermRenderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	key := rendererKey{width: width, style: style}
	if r, ok := renderers[key]; ok && r != nil {
		return r
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styleConfig(style)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[key] = r
	return r
}

func styleConfig(style Style) glamouransi.StyleConfig {
	var base glamouransi.StyleConfig
	switch style {
	case StyleLight:
		base = styles.LightStyleConfig
	case StylePlain:
		return styles.NoTTYStyleConfig
	default:
		base = styles.DarkStyleConfig
	}
	zero := uint(0)
	base.Document.Margin = &zero
	return base
}
