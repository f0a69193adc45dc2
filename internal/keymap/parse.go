package keymap

import (
	"errors"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/llehouerou/cheatsheet/internal/value"
)

// ErrNotList is returned when a keymap document is valid JSON but not a
// list of bindings.
var ErrNotList = errors.New("keymap is not a list")

// StripComments removes // line and /* block */ comments (and trailing
// commas) so the text can be parsed as plain JSON. Comment markers inside
// string literals are left alone.
func StripComments(data []byte) []byte {
	return jsonc.ToJSON(data)
}

// Parse reads a keymap document owned by pkg. Records missing keys or
// command are skipped without error.
func Parse(pkg string, data []byte) ([]Entry, error) {
	root, err := value.Parse(StripComments(data))
	if err != nil {
		return nil, fmt.Errorf("parse keymap: %w", err)
	}
	if root.Kind() != value.KindArray {
		return nil, fmt.Errorf("%w (got %s)", ErrNotList, root.Kind())
	}

	entries := make([]Entry, 0, root.Len())
	for _, raw := range root.Items() {
		if e, ok := entryFrom(pkg, raw); ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}
