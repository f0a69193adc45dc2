package sheet

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/llehouerou/cheatsheet/internal/conflict"
	"github.com/llehouerou/cheatsheet/internal/keymap"
	"github.com/llehouerou/cheatsheet/internal/value"
)

func sampleEntries(t *testing.T) []keymap.Entry {
	t.Helper()
	entries, err := keymap.Parse("Default", []byte(`[
		{"keys": ["ctrl+shift+p"], "command": "show_overlay", "args": {"overlay": "command_palette"}},
		{"keys": ["ctrl+/"], "command": "toggle_comment", "args": {"block": false},
		 "context": [{"key": "selector", "operand": "source.python"}]},
		{"keys": ["ctrl+k", "ctrl+u"], "command": "upper_case", "description": "Shout",
		 "context": [{"key": "setting.is_widget", "operand": false}]}
	]`))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	return entries
}

func TestBuild_ScannedRows(t *testing.T) {
	rows := Build(sampleEntries(t), Options{}, nil)
	require.Len(t, rows, 3)

	assert.Equal(t, "Command Palette", rows[0].Label)
	assert.Equal(t, "⌃⇧P - Default", rows[0].Subtitle)
	assert.Equal(t, "show_overlay", rows[0].Entry.Command)

	assert.Equal(t, "⌃/ - Default <source.python>", rows[1].Subtitle)

	assert.Equal(t, "Shout", rows[2].Label, "description wins over the formatter")
	assert.Equal(t, "⌃K  ⌃U - Default", rows[2].Subtitle)
	assert.False(t, rows[2].Extra)
}

func TestBuild_ShowContext(t *testing.T) {
	rows := Build(sampleEntries(t), Options{ShowContext: true}, nil)
	assert.Equal(t, "⌃/ - Default [selector = source.python] <source.python>", rows[1].Subtitle)
	assert.Equal(t, "⌃K  ⌃U - Default [☒is_widget]", rows[2].Subtitle)
	assert.Equal(t, "⌃⇧P - Default", rows[0].Subtitle)
}

func TestBuild_ExtrasSortedAfterScanned(t *testing.T) {
	extras := []Extra{
		{Name: "zoom in", Command: "increase_font_size", Keys: []string{"ctrl+="}},
		{Name: "Console", Command: "show_panel", Keys: []string{"ctrl+`", "f12"},
			Args: value.MustParse(`{"panel": "console"}`)},
	}
	rows := Build(sampleEntries(t), Options{}, extras)
	require.Len(t, rows, 5)

	assert.Equal(t, "Console", rows[3].Label)
	assert.Equal(t, "show_panel : ctrl+`,f12", rows[3].Subtitle)
	assert.True(t, rows[3].Extra)
	assert.Equal(t, "console", mustGet(t, rows[3].Entry.Args, "panel"))

	assert.Equal(t, "zoom in", rows[4].Label)
	assert.Equal(t, "Console", extras[1].Name, "input slice is not reordered")
}

func mustGet(t *testing.T, v value.Value, key string) string {
	t.Helper()
	got, ok := v.Get(key)
	require.True(t, ok)
	s, ok := got.AsString()
	require.True(t, ok)
	return s
}

func TestConflictRows(t *testing.T) {
	rows := ConflictRows([]conflict.Conflict{
		{Combo: "ctrl+d", Commands: []string{"find_under_expand", "duplicate_line"}},
	})
	assert.Equal(t, []ConflictRow{{Combo: "ctrl+d", Description: "find_under_expand, duplicate_line"}}, rows)
	assert.Empty(t, ConflictRows(nil))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"md", FormatMarkdown, false},
		{"Markdown", FormatMarkdown, false},
		{".json", FormatJSON, false},
		{"yml", FormatYAML, false},
		{"toml", FormatTOML, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func sampleDocument(t *testing.T) Document {
	t.Helper()
	rows := Build(sampleEntries(t), Options{}, []Extra{{Name: "Build", Command: "build", Keys: []string{"f7"}}})
	return NewDocument(rows, []ConflictRow{{Combo: "ctrl+/", Description: "toggle_comment, comment | block"}})
}

func TestNewDocument(t *testing.T) {
	doc := sampleDocument(t)
	require.Len(t, doc.Bindings, 4)

	b := doc.Bindings[0]
	assert.Equal(t, "Command Palette", b.Label)
	assert.Equal(t, "⌃⇧P", b.Keys)
	assert.Equal(t, []string{"ctrl+shift+p"}, b.Combos)
	assert.Equal(t, map[string]any{"overlay": "command_palette"}, b.Args)
	assert.JSONEq(t, `{"overlay": "command_palette"}`, b.ArgsJSON)

	assert.Nil(t, doc.Bindings[2].Args)
	assert.Equal(t, "[☒is_widget]", doc.Bindings[2].Context)
	assert.Empty(t, doc.Bindings[3].Package)
}

func TestExport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, sampleDocument(t), FormatJSON))

	var decoded Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Bindings, 4)
	assert.Equal(t, "show_overlay", decoded.Bindings[0].Command)
	assert.Equal(t, "toggle_comment, comment | block", decoded.Conflicts[0].Description)
	assert.NotContains(t, buf.String(), `<`, "HTML escaping is disabled")
}

func TestExport_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, sampleDocument(t), FormatYAML))

	var decoded struct {
		Bindings []struct {
			Command string         `yaml:"command"`
			Args    map[string]any `yaml:"args"`
		} `yaml:"bindings"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Bindings, 4)
	assert.Equal(t, "command_palette", decoded.Bindings[0].Args["overlay"])
	assert.Equal(t, false, decoded.Bindings[1].Args["block"])
}

func TestExport_TOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, sampleDocument(t), FormatTOML))

	var decoded struct {
		Binding []struct {
			Command string `toml:"command"`
			Args    string `toml:"args"`
		} `toml:"binding"`
		Conflict []ConflictRow `toml:"conflict"`
	}
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Binding, 4)
	assert.JSONEq(t, `{"block": false}`, decoded.Binding[1].Args)
	assert.Empty(t, decoded.Binding[2].Args)
	require.Len(t, decoded.Conflict, 1)
}

func TestExport_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, sampleDocument(t), FormatMarkdown))
	md := buf.String()

	assert.Contains(t, md, "# Key Bindings")
	assert.Contains(t, md, "## Default")
	assert.Contains(t, md, "| `⌃⇧P` | Command Palette |")
	assert.Contains(t, md, "## Custom Commands")
	assert.Contains(t, md, "## Conflicts")
	assert.Contains(t, md, `toggle_comment, comment \| block`)
}

func TestExport_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, Export(&buf, Document{}, Format("csv")))
}
