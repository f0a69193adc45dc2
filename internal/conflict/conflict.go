// Package conflict finds key combos bound to more than one command.
package conflict

import (
	"slices"
	"strings"

	"github.com/llehouerou/cheatsheet/internal/keymap"
)

// Options tunes which bindings take part in detection.
type Options struct {
	// IgnoreSingleKeys skips bindings made of a single unmodified key.
	IgnoreSingleKeys bool
}

// Conflict is a raw combo bound to two or more distinct commands.
type Conflict struct {
	Combo    string
	Commands []string // first-seen order
}

// Description lists the conflicting commands, e.g. "copy, duplicate_line".
func (c Conflict) Description() string {
	return strings.Join(c.Commands, ", ")
}

// Index maps each raw combo to the distinct commands bound to it.
// It is built fresh for every detection run.
type Index struct {
	order    []string
	commands map[string][]string
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{commands: make(map[string][]string)}
}

// Add records every combo of e against its command.
func (idx *Index) Add(e keymap.Entry) {
	for _, combo := range e.Keys {
		cmds, seen := idx.commands[combo]
		if !seen {
			idx.order = append(idx.order, combo)
		}
		if !slices.Contains(cmds, e.Command) {
			idx.commands[combo] = append(cmds, e.Command)
		}
	}
}

// Commands returns the distinct commands bound to combo.
func (idx *Index) Commands(combo string) []string {
	return idx.commands[combo]
}

// Conflicts returns combos with two or more commands, in first-seen order.
func (idx *Index) Conflicts() []Conflict {
	var out []Conflict
	for _, combo := range idx.order {
		cmds := idx.commands[combo]
		if len(cmds) < 2 {
			continue
		}
		out = append(out, Conflict{Combo: combo, Commands: cmds})
	}
	return out
}

// Detect groups entries by raw combo and reports every combo bound to two
// or more distinct commands.
func Detect(entries []keymap.Entry, opts Options) []Conflict {
	idx := NewIndex()
	for _, e := range entries {
		if opts.IgnoreSingleKeys && e.IsSingleKey() {
			continue
		}
		idx.Add(e)
	}
	return idx.Conflicts()
}
