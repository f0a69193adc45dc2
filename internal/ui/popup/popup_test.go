package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestDialog_Render(t *testing.T) {
	d := New()
	d.Title = "Dispatch failed"
	d.Content = "subl: executable file not found in $PATH"
	d.Footer = "esc close"

	out := ansi.Strip(d.Render(80, 20))
	assert.Contains(t, out, "Dispatch failed")
	assert.Contains(t, out, "executable file not found")
	assert.Contains(t, out, "esc close")
	for line := range strings.SplitSeq(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 80)
	}
}

func TestDialog_TruncatesLongLines(t *testing.T) {
	d := New()
	d.Content = strings.Repeat("⌘", 200)

	out := ansi.Strip(d.Render(40, 10))
	assert.Contains(t, out, "…")
	for line := range strings.SplitSeq(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 40)
	}
}

func TestDialog_FooterWiderThanContentStaysOnOneLine(t *testing.T) {
	d := New()
	d.Title = "Error"
	d.Content = "cannot read packages"
	d.Footer = "Press any key to dismiss"

	out := ansi.Strip(d.Render(80, 20))
	assert.Contains(t, out, "Press any key to dismiss")

	var widths []int
	for line := range strings.SplitSeq(out, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			widths = append(widths, lipgloss.Width(trimmed))
		}
	}
	for _, w := range widths {
		assert.Equal(t, widths[0], w, "every box line has the same width")
	}
}

func TestDialog_TruncatesFooterOnNarrowScreens(t *testing.T) {
	d := New()
	d.Content = "x"
	d.Footer = "Press any key to dismiss"

	out := ansi.Strip(d.Render(16, 10))
	assert.Contains(t, out, "…")
	for line := range strings.SplitSeq(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 16)
	}
}

func TestRenderBordered_AutoFit(t *testing.T) {
	out := ansi.Strip(RenderBordered("hello", 80, 24, SizeAuto))
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "╭")
}

func TestCompose(t *testing.T) {
	base := "aaaaaa\nbbbbbb\ncccccc"
	overlay := "\n  XY  \n"
	out := Compose(base, overlay, 6, 3)
	assert.Equal(t, "aaaaaa\nbbXYbb\ncccccc", out)
}
