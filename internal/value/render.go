package value

import (
	"strings"
)

// TabGlyph replaces literal tab characters in rendered text.
const TabGlyph = "⇥"

// Text returns the natural string form of v: strings unquoted, numbers as
// written, booleans as true/false. Containers are rendered with Render.
func Text(v Value) string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindNumber:
		return v.formatNumber()
	case KindString:
		return v.str
	default:
		return Render(v)
	}
}

// Render produces a compact, human-readable rendering of v for labels:
// objects as {k: v, ...}, arrays as [v, ...], scalars in their natural
// form with tabs shown as TabGlyph.
func Render(v Value) string {
	var sb strings.Builder
	render(&sb, v)
	return sb.String()
}

func render(sb *strings.Builder, v Value) {
	switch v.kind {
	case KindObject:
		sb.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.Key)
			sb.WriteString(": ")
			render(sb, m.Value)
		}
		sb.WriteByte('}')
	case KindArray:
		sb.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				sb.WriteString(", ")
			}
			render(sb, item)
		}
		sb.WriteByte(']')
	default:
		sb.WriteString(strings.ReplaceAll(Text(v), "\t", TabGlyph))
	}
}

// String implements fmt.Stringer using Render.
func (v Value) String() string {
	return Render(v)
}
