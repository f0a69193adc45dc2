package label

import (
	"github.com/llehouerou/cheatsheet/internal/value"
)

// Node is one element of a command rule tree. It is one of:
//
//	Literal   - a finished label, returned unchanged
//	Template  - a label with {value}, {pvalue} or {filename} placeholders
//	*Tree     - argument name -> rule, with an optional default tree
//	*ValueMap - argument value -> outcome, with an optional default
type Node interface {
	node()
}

// Literal is a label returned as-is.
type Literal string

// Template is a label whose placeholders are filled from the matched
// argument value.
type Template string

// Tree selects a rule by argument name.
type Tree struct {
	Args    map[string]Node // Template or *ValueMap
	Default *Tree           // tried when no argument produces a label
}

// ValueMap selects an outcome by the argument's value.
type ValueMap struct {
	Values  map[Key]Node // Literal or *Tree
	Default Node         // Template or *Tree, used when the value is not listed
}

func (Literal) node()   {}
func (Template) node()  {}
func (*Tree) node()     {}
func (*ValueMap) node() {}

type keyKind uint8

const (
	keyString keyKind = iota + 1
	keyNumber
	keyBool
)

// Key is a value-map key. Strings, numbers and booleans occupy separate key
// spaces, so Bool(true) and Num(1) never collide.
type Key struct {
	kind keyKind
	s    string
	n    float64
	b    bool
}

// Str returns a string key.
func Str(s string) Key { return Key{kind: keyString, s: s} }

// Num returns a numeric key.
func Num(n float64) Key { return Key{kind: keyNumber, n: n} }

// Bool returns a boolean key.
func Bool(b bool) Key { return Key{kind: keyBool, b: b} }

// KeyOf returns the map key for a scalar argument value. Containers and
// null have no key.
func KeyOf(v value.Value) (Key, bool) {
	switch v.Kind() {
	case value.KindString:
		s, _ := v.AsString()
		return Str(s), true
	case value.KindNumber:
		n, _ := v.AsNumber()
		return Num(n), true
	case value.KindBool:
		b, _ := v.AsBool()
		return Bool(b), true
	default:
		return Key{}, false
	}
}

// Table maps command names to their label rule. Values are Literal or *Tree.
type Table map[string]Node

// Commands returns the command names covered by t.
func (t Table) Commands() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	return names
}
