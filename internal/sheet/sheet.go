// Package sheet turns scanned key bindings into display rows for the
// picker and into exportable cheat sheets.
package sheet

import (
	"slices"
	"strings"

	"github.com/llehouerou/cheatsheet/internal/conflict"
	"github.com/llehouerou/cheatsheet/internal/keymap"
	"github.com/llehouerou/cheatsheet/internal/label"
	"github.com/llehouerou/cheatsheet/internal/value"
)

// Options controls how subtitles are built.
type Options struct {
	ShowContext bool // append the full context annotation
}

// Extra is a user-declared command listed after the scanned bindings.
type Extra struct {
	Name    string
	Command string
	Keys    []string
	Args    value.Value
}

// Row is one line of the picker.
type Row struct {
	Label    string
	Subtitle string
	Entry    keymap.Entry
	Extra    bool // declared in configuration rather than scanned
}

// Build returns one row per entry, in input order, followed by the extras
// sorted case-insensitively by name.
func Build(entries []keymap.Entry, opts Options, extras []Extra) []Row {
	rows := make([]Row, 0, len(entries)+len(extras))
	for _, e := range entries {
		rows = append(rows, Row{
			Label:    Label(e),
			Subtitle: Subtitle(e, opts),
			Entry:    e,
		})
	}

	sorted := slices.Clone(extras)
	slices.SortStableFunc(sorted, func(a, b Extra) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	for _, x := range sorted {
		rows = append(rows, Row{
			Label:    x.Name,
			Subtitle: x.Command + " : " + strings.Join(x.Keys, ","),
			Entry: keymap.Entry{
				Keys:    x.Keys,
				Command: x.Command,
				Args:    x.Args,
			},
			Extra: true,
		})
	}
	return rows
}

// Label is the entry's own description when it has one, otherwise the
// formatted command.
func Label(e keymap.Entry) string {
	if e.Description != "" {
		return e.Description
	}
	return label.Format(e.Command, e.Args)
}

// Subtitle renders "<keys> - <package>", optionally followed by the
// context annotation, then any selectors in angle brackets.
func Subtitle(e keymap.Entry, opts Options) string {
	var sb strings.Builder
	sb.WriteString(keymap.Prettify(e.Keys))
	sb.WriteString(" - ")
	sb.WriteString(e.Package)
	if opts.ShowContext {
		if ctx := keymap.DescribeContext(e); ctx != "" {
			sb.WriteString(" ")
			sb.WriteString(ctx)
		}
	}
	for _, sel := range keymap.Selectors(e) {
		sb.WriteString(" <")
		sb.WriteString(sel)
		sb.WriteString(">")
	}
	return sb.String()
}

// ConflictRow is one line of the conflict report.
type ConflictRow struct {
	Combo       string `json:"combo"       yaml:"combo"       toml:"combo"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// ConflictRows converts detected conflicts into (combo, description)
// pairs, preserving order.
func ConflictRows(conflicts []conflict.Conflict) []ConflictRow {
	rows := make([]ConflictRow, 0, len(conflicts))
	for _, c := range conflicts {
		rows = append(rows, ConflictRow{Combo: c.Combo, Description: c.Description()})
	}
	return rows
}
