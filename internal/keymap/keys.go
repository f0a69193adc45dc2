package keymap

import (
	"strings"
)

// ModifierSeparator joins the tokens of a combo.
const ModifierSeparator = "+"

// comboSeparator separates combos of a multi-stroke binding on display.
const comboSeparator = "  "

// glyphs maps key names to their display form.
var glyphs = map[string]string{
	"super":         "⌘",
	"alt":           "⌥",
	"shift":         "⇧",
	"ctrl":          "⌃",
	"up":            "↑",
	"down":          "↓",
	"left":          "←",
	"right":         "→",
	"escape":        "⎋",
	"tab":           "⇥",
	"space":         "Space",
	"enter":         "↩",
	"backspace":     "⌫",
	"delete":        "⌦",
	"forward_slash": "\\",
	"plus":          "+",
	"equals":        "=",
	"minus":         "-",
	"backquote":     "`",
}

// Glyph returns the display form of a single key token.
func Glyph(token string) string {
	if g, ok := glyphs[token]; ok {
		return g
	}
	return strings.ToUpper(token)
}

// PrettifyCombo renders one combo, e.g. "ctrl+shift+p" as "⌃⇧P".
func PrettifyCombo(combo string) string {
	var sb strings.Builder
	for token := range strings.SplitSeq(combo, ModifierSeparator) {
		sb.WriteString(Glyph(token))
	}
	return sb.String()
}

// Prettify renders a key sequence for display. The result must not be used
// for lookups; compare raw combos instead.
func Prettify(combos []string) string {
	pretty := make([]string, 0, len(combos))
	for _, c := range combos {
		pretty = append(pretty, PrettifyCombo(c))
	}
	return strings.Join(pretty, comboSeparator)
}

// HasModifier reports whether combo contains a modifier separator.
func HasModifier(combo string) bool {
	return strings.Contains(combo, ModifierSeparator)
}
