// Package render provides text rendering utilities for TUI components.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Sanitize removes control characters (except tab/space) and replaces
// invalid UTF-8 bytes with the Unicode replacement character.
// Keymap descriptions and args come from third-party packages and may
// contain anything.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			// Invalid byte, skip it
			i++
			continue
		}
		if r != '\t' && unicode.IsControl(r) {
			// Control character, skip
			i += size
			continue
		}
		// Replace non-breaking space with regular space
		if r == '\u00a0' {
			b.WriteByte(' ')
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// needsSanitize returns true if the string contains bytes that need sanitizing.
func needsSanitize(s string) bool {
	for i := range len(s) {
		b := s[i]
		if b < 0x20 && b != '\t' { // ASCII control chars (except tab)
			return true
		}
		if b >= 0x80 && b <= 0x9f { // C1 control range / invalid lead bytes
			return true
		}
		if b == 0xc2 { // Potential 2-byte sequence for U+00A0 (NBSP) or C1 controls
			if i+1 < len(s) && s[i+1] == 0xa0 {
				return true
			}
		}
	}
	return false
}

// Truncate shortens a string to fit within maxWidth, adding an ellipsis if truncated.
// Uses runewidth for proper handling of wide characters (CJK, emoji).
// Sanitizes the input to remove control characters and invalid UTF-8.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// TruncateEllipsis shortens plain text to maxWidth columns using a single
// "…". It cuts on grapheme cluster boundaries so key glyphs and combined
// characters are never split.
func TruncateEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= maxWidth {
		return s
	}
	var b strings.Builder
	width := 0
	state := -1
	rest := s
	for rest != "" {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if width+w > maxWidth-1 {
			break
		}
		b.WriteString(cluster)
		width += w
	}
	return b.String() + "…"
}

// Pad fills a string with spaces to reach the specified width.
// Uses runewidth for proper handling of wide characters.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad truncates a string if necessary, then pads to the exact width.
// This ensures the output is exactly width characters wide.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row creates a row with left and right aligned content separated by spaces.
// The total width of the output will be exactly width characters.
func Row(left, right string, width int) string {
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := max(width-leftWidth-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}

// MatchPositions returns the rune indices of s that match query as a
// case-insensitive subsequence, or nil when query does not match.
func MatchPositions(s, query string) []int {
	if query == "" {
		return nil
	}
	q := []rune(strings.ToLower(query))
	var out []int
	qi := 0
	for i, r := range []rune(s) {
		if qi < len(q) && unicode.ToLower(r) == q[qi] {
			out = append(out, i)
			qi++
		}
	}
	if qi < len(q) {
		return nil
	}
	return out
}

// Highlight renders s with base, styling the runes matched by query with
// match. Unmatched text is rendered with base only.
func Highlight(s, query string, base, match lipgloss.Style) string {
	positions := MatchPositions(s, query)
	if len(positions) == 0 {
		return base.Render(s)
	}
	runes := []rune(s)
	var b strings.Builder
	start := 0
	for _, p := range positions {
		if p > start {
			b.WriteString(base.Render(string(runes[start:p])))
		}
		b.WriteString(match.Render(string(runes[p])))
		start = p + 1
	}
	if start < len(runes) {
		b.WriteString(base.Render(string(runes[start:])))
	}
	return b.String()
}
