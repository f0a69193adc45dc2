package conflict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/cheatsheet/internal/keymap"
)

func entry(cmd string, keys ...string) keymap.Entry {
	return keymap.Entry{Keys: keys, Command: cmd, Package: "Test"}
}

func TestDetect_DifferentCommands(t *testing.T) {
	got := Detect([]keymap.Entry{
		entry("copy", "ctrl+c"),
		entry("cancel_build", "ctrl+c"),
	}, Options{})

	require.Len(t, got, 1)
	assert.Equal(t, "ctrl+c", got[0].Combo)
	assert.Equal(t, []string{"copy", "cancel_build"}, got[0].Commands)
	assert.Equal(t, "copy, cancel_build", got[0].Description())
}

func TestDetect_SameCommandIsNotAConflict(t *testing.T) {
	got := Detect([]keymap.Entry{
		entry("copy", "ctrl+c"),
		entry("copy", "ctrl+c"),
	}, Options{})
	assert.Empty(t, got)
}

func TestDetect_RepeatedCommandListedOnce(t *testing.T) {
	got := Detect([]keymap.Entry{
		entry("copy", "ctrl+c"),
		entry("cancel_build", "ctrl+c"),
		entry("copy", "ctrl+c"),
	}, Options{})

	require.Len(t, got, 1)
	assert.Equal(t, []string{"copy", "cancel_build"}, got[0].Commands)
}

func TestDetect_Empty(t *testing.T) {
	assert.Empty(t, Detect(nil, Options{}))
	assert.Empty(t, Detect([]keymap.Entry{entry("a", "x"), entry("b", "y")}, Options{}))
}

func TestDetect_FirstSeenOrder(t *testing.T) {
	got := Detect([]keymap.Entry{
		entry("one", "ctrl+b"),
		entry("two", "ctrl+a"),
		entry("three", "ctrl+a"),
		entry("four", "ctrl+b"),
		entry("five", "ctrl+b"),
	}, Options{})

	require.Len(t, got, 2)
	assert.Equal(t, "ctrl+b", got[0].Combo)
	assert.Equal(t, []string{"one", "four", "five"}, got[0].Commands)
	assert.Equal(t, "ctrl+a", got[1].Combo)
}

func TestDetect_RawCombosAreKeys(t *testing.T) {
	// Each combo of a multi-stroke binding counts on its own.
	got := Detect([]keymap.Entry{
		entry("upper_case", "ctrl+k", "ctrl+u"),
		entry("soft_undo", "ctrl+u"),
	}, Options{})

	require.Len(t, got, 1)
	assert.Equal(t, "ctrl+u", got[0].Combo)
}

func TestDetect_IgnoreSingleKeys(t *testing.T) {
	entries := []keymap.Entry{
		entry("vi_down", "j"),
		entry("insert_j", "j"),
		entry("join_lines", "ctrl+j"),
		entry("jump", "ctrl+j"),
	}

	all := Detect(entries, Options{})
	assert.Len(t, all, 2)

	filtered := Detect(entries, Options{IgnoreSingleKeys: true})
	require.Len(t, filtered, 1)
	assert.Equal(t, "ctrl+j", filtered[0].Combo)
}

func TestIndex_Commands(t *testing.T) {
	idx := NewIndex()
	idx.Add(entry("a", "x"))
	idx.Add(entry("b", "x"))
	idx.Add(entry("a", "x"))

	assert.Equal(t, []string{"a", "b"}, idx.Commands("x"))
	assert.Nil(t, idx.Commands("y"))
}
