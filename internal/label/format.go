// Package label turns key binding commands into human-readable titles.
//
// Known commands are described by a rule table keyed by command name;
// everything else falls back to a title-cased command name followed by a
// rendering of its arguments.
package label

import (
	"fmt"
	"path"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/llehouerou/cheatsheet/internal/value"
)

// LayoutCommand is the window layout command, labelled from the size of
// its cols/rows arguments rather than from the table.
const LayoutCommand = "set_layout"

const layoutPrefix = "Set Layout - "

// Formatter builds labels from a rule table. It holds no mutable state and
// is safe for concurrent use.
type Formatter struct {
	table Table
}

// New returns a Formatter over table.
func New(table Table) *Formatter {
	return &Formatter{table: table}
}

var std = New(defaultTable)

// Format labels a command using the built-in table.
func Format(command string, args value.Value) string {
	return std.Format(command, args)
}

// Format returns a label for command invoked with args. It always returns
// a non-empty string for a non-empty command.
func (f *Formatter) Format(command string, args value.Value) string {
	if command == LayoutCommand {
		if s, ok := layoutLabel(args); ok {
			return s
		}
		return Fallback(command, args)
	}

	switch rule := f.table[command].(type) {
	case Literal:
		return string(rule)
	case *Tree:
		if s, ok := Resolve(rule, args); ok {
			return s
		}
	}
	return Fallback(command, args)
}

// Known reports whether command has a dedicated rule.
func (f *Formatter) Known(command string) bool {
	if command == LayoutCommand {
		return true
	}
	_, ok := f.table[command]
	return ok
}

// Fallback labels a command without a rule: "Command Name - {args}".
func Fallback(command string, args value.Value) string {
	s := TitleSnake(command)
	if !args.IsEmpty() {
		s += " - " + value.Render(args)
	}
	return s
}

func layoutLabel(args value.Value) (string, bool) {
	colsVal, ok := args.Get("cols")
	if !ok || colsVal.Kind() != value.KindArray {
		return "", false
	}
	rowsVal, ok := args.Get("rows")
	if !ok || rowsVal.Kind() != value.KindArray {
		return "", false
	}
	cols := colsVal.Len() - 1
	rows := rowsVal.Len() - 1

	var desc string
	switch {
	case rows == 1 && cols == 1:
		desc = "Single"
	case rows == 1:
		desc = fmt.Sprintf("%d columns", cols)
	case cols == 1:
		desc = fmt.Sprintf("%d rows", rows)
	default:
		desc = fmt.Sprintf("%d x %d", cols, rows)
	}
	return layoutPrefix + desc, true
}

// TitleSnake turns "snake_case_name" into "Snake Case Name". A letter is
// upper-cased when it follows anything but a letter, so "goto.line"
// becomes "Goto.Line" and "a1b" becomes "A1B".
func TitleSnake(s string) string {
	lower := cases.Lower(language.Und).String(strings.ReplaceAll(s, "_", " "))
	var b strings.Builder
	b.Grow(len(lower))
	prevLetter := false
	for _, r := range lower {
		isLetter := unicode.IsLetter(r)
		if isLetter && !prevLetter {
			r = unicode.ToTitle(r)
		}
		b.WriteRune(r)
		prevLetter = isLetter
	}
	return b.String()
}

// Expand fills the template placeholders from v:
// {value} raw text, {pvalue} title-cased text, {filename} base name
// without extension.
func (t Template) Expand(v value.Value) string {
	text := value.Text(v)
	return strings.NewReplacer(
		"{value}", text,
		"{pvalue}", TitleSnake(text),
		"{filename}", fileStem(text),
	).Replace(string(t))
}

// fileStem returns the last path element without its extension.
// Leading dots belong to the name, so ".bashrc" keeps its full name.
func fileStem(p string) string {
	if p == "" {
		return ""
	}
	base := path.Base(p)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 || strings.TrimLeft(base[:i], ".") == "" {
		return base
	}
	return base[:i]
}
