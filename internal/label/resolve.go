package label

import (
	"github.com/llehouerou/cheatsheet/internal/value"
)

// Resolve walks tree against args and returns the first label it finds.
// Arguments are tried in the order they appear in args. Precedence is:
// explicit value match, then the value map default, then the tree default.
// A miss at any level is reported as false, never as an error.
func Resolve(tree *Tree, args value.Value) (string, bool) {
	if tree == nil || args.Kind() != value.KindObject {
		return "", false
	}

	for _, m := range args.Members() {
		rule, ok := tree.Args[m.Key]
		if !ok {
			continue
		}
		if s, ok := resolveArg(rule, m.Value, args); ok {
			return s, true
		}
	}

	if tree.Default != nil {
		return Resolve(tree.Default, args)
	}
	return "", false
}

func resolveArg(rule Node, v value.Value, args value.Value) (string, bool) {
	switch r := rule.(type) {
	case Template:
		return r.Expand(v), true
	case Literal:
		return string(r), true
	case *ValueMap:
		if key, ok := KeyOf(v); ok {
			if outcome, ok := r.Values[key]; ok {
				if s, ok := resolveOutcome(outcome, args); ok {
					return s, true
				}
			}
		}
		switch d := r.Default.(type) {
		case Template:
			return d.Expand(v), true
		case *Tree:
			return Resolve(d, args)
		}
	}
	return "", false
}

func resolveOutcome(outcome Node, args value.Value) (string, bool) {
	switch o := outcome.(type) {
	case Literal:
		return string(o), true
	case *Tree:
		return Resolve(o, args)
	}
	return "", false
}
