// Package keymap reads editor keymap files into key binding entries and
// renders key combos for display.
package keymap

import (
	"github.com/llehouerou/cheatsheet/internal/value"
)

// Operator is the comparison used by a context condition.
type Operator int

const (
	OpNone Operator = iota
	OpEqual
	OpNotEqual
	OpRegexMatch
	OpRegexContains
)

// ParseOperator maps a keymap operator name to an Operator.
// Unknown or empty names map to OpNone.
func ParseOperator(name string) Operator {
	switch name {
	case "equal":
		return OpEqual
	case "not_equal":
		return OpNotEqual
	case "regex_match":
		return OpRegexMatch
	case "regex_contains":
		return OpRegexContains
	default:
		return OpNone
	}
}

// Symbol returns the display form of the operator, or "" for OpNone.
func (o Operator) Symbol() string {
	switch o {
	case OpEqual:
		return "="
	case OpNotEqual:
		return "≠"
	case OpRegexMatch:
		return "matches"
	case OpRegexContains:
		return "contains"
	case OpNone:
		return ""
	}
	return ""
}

// Condition is one entry of a binding's activation context.
type Condition struct {
	Key      string
	Operator Operator
	Operand  value.Value // null when absent
}

// Entry is a single parsed key binding.
type Entry struct {
	Keys        []string // raw combos, e.g. "ctrl+shift+p"
	Command     string
	Args        value.Value // object, or null when absent
	Context     []Condition
	Description string
	Package     string
}

// HasArgs reports whether the entry carries a non-empty argument object.
func (e Entry) HasArgs() bool {
	return !e.Args.IsEmpty()
}

// IsSingleKey reports whether the entry binds exactly one combo made of a
// single unmodified key.
func (e Entry) IsSingleKey() bool {
	return len(e.Keys) == 1 && !HasModifier(e.Keys[0])
}

// entryFrom converts one raw keymap record. Records without a usable keys
// list or command are rejected.
func entryFrom(pkg string, raw value.Value) (Entry, bool) {
	if raw.Kind() != value.KindObject {
		return Entry{}, false
	}

	keysVal, ok := raw.Get("keys")
	if !ok {
		return Entry{}, false
	}
	keys := keysFrom(keysVal)
	if len(keys) == 0 {
		return Entry{}, false
	}

	cmdVal, ok := raw.Get("command")
	if !ok {
		return Entry{}, false
	}
	command, ok := cmdVal.AsString()
	if !ok || command == "" {
		return Entry{}, false
	}

	e := Entry{
		Keys:    keys,
		Command: command,
		Package: pkg,
	}
	if args, ok := raw.Get("args"); ok && args.Kind() == value.KindObject {
		e.Args = args
	}
	if desc, ok := raw.Get("description"); ok {
		e.Description, _ = desc.AsString()
	}
	if ctx, ok := raw.Get("context"); ok {
		e.Context = conditionsFrom(ctx)
	}
	return e, true
}

// keysFrom accepts either a list of combos or a single combo string.
func keysFrom(v value.Value) []string {
	switch v.Kind() {
	case value.KindString:
		s, _ := v.AsString()
		if s == "" {
			return nil
		}
		return []string{s}
	case value.KindArray:
		keys := make([]string, 0, v.Len())
		for _, item := range v.Items() {
			if item.IsNull() {
				continue
			}
			keys = append(keys, value.Text(item))
		}
		return keys
	default:
		return nil
	}
}

func conditionsFrom(v value.Value) []Condition {
	if v.Kind() != value.KindArray {
		return nil
	}
	conds := make([]Condition, 0, v.Len())
	for _, item := range v.Items() {
		if item.Kind() != value.KindObject {
			continue
		}
		var c Condition
		if k, ok := item.Get("key"); ok {
			c.Key, _ = k.AsString()
		}
		if op, ok := item.Get("operator"); ok {
			name, _ := op.AsString()
			c.Operator = ParseOperator(name)
		}
		if operand, ok := item.Get("operand"); ok {
			c.Operand = operand
		}
		conds = append(conds, c)
	}
	return conds
}
