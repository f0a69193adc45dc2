package keymap

import (
	"strings"

	"github.com/llehouerou/cheatsheet/internal/value"
)

const (
	settingPrefix  = "setting."
	settingOn      = "☑"
	settingOff     = "☒"
	settingGeneric = "⚙"
)

// DescribeCondition renders a context condition as a short annotation,
// e.g. "⚙tab_size = 4" or "preceded by \w$".
func DescribeCondition(c Condition) string {
	key := c.Key
	op := c.Operator.Symbol()
	operand := c.Operand

	if rest, ok := strings.CutPrefix(key, settingPrefix); ok {
		if b, isBool := operand.AsBool(); isBool && (c.Operator == OpNone || c.Operator == OpEqual) {
			if b {
				return settingOn + rest
			}
			return settingOff + rest
		}
		key = settingGeneric + rest
	}

	if b, isBool := operand.AsBool(); c.Operator == OpEqual && isBool && b {
		return key
	}
	if c.Operator == OpNone && operand.IsNull() {
		return key
	}
	if c.Operator == OpNone {
		return key + " = " + value.Text(operand)
	}

	text, isString := operand.AsString()
	if isString && (c.Operator == OpRegexContains || c.Operator == OpRegexMatch) {
		if key == "preceding_text" && strings.HasSuffix(text, "$") {
			return "preceded by " + text
		}
		if key == "following_text" && strings.HasPrefix(text, "^") {
			return "followed by " + text
		}
	}

	escaped := strings.NewReplacer("\t", `\t`, "\n", `\n`).Replace(value.Text(operand))
	return key + " " + op + " " + escaped
}

// DescribeContext renders all conditions of an entry as "[a, b, ...]".
// It returns "" when the entry has no context.
func DescribeContext(e Entry) string {
	if len(e.Context) == 0 {
		return ""
	}
	parts := make([]string, 0, len(e.Context))
	for _, c := range e.Context {
		parts = append(parts, DescribeCondition(c))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Selectors returns the operands of all "selector" conditions of e.
func Selectors(e Entry) []string {
	var out []string
	for _, c := range e.Context {
		if c.Key != "selector" || c.Operand.IsNull() {
			continue
		}
		out = append(out, value.Text(c.Operand))
	}
	return out
}
