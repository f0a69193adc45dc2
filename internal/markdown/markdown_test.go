package markdown

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

const sample = `# Key Bindings

## Default

| Keys | Command |
| --- | --- |
| ` + "`⌃⇧P`" + ` | Command Palette |
`

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, Render("\n\n", 80, StyleDark))
}

func TestRender_Plain(t *testing.T) {
	out := Render(sample, 80, StylePlain)
	assert.Contains(t, out, "Key Bindings")
	assert.Contains(t, out, "Command Palette")
	assert.Contains(t, out, "⌃⇧P")
}

func TestRender_DarkKeepsText(t *testing.T) {
	out := xansi.Strip(Render(sample, 60, StyleDark))
	assert.Contains(t, out, "Command Palette")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, xansi.StringWidth(line), 60)
	}
}

func TestRender_CachesRenderers(t *testing.T) {
	Render(sample, 70, StyleLight)
	r1 := getRenderer(70, StyleLight)
	r2 := getRenderer(70, StyleLight)
	assert.Same(t, r1, r2)
}
