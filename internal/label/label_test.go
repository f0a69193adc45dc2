package label

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/cheatsheet/internal/value"
)

func parseArgs(t *testing.T, s string) value.Value {
	t.Helper()
	v, err := value.Parse([]byte(s))
	require.NoError(t, err)
	return v
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		command string
		args    string
		want    string
	}{
		{"layout columns", "set_layout", `{"cols": [0, 0.5, 1], "rows": [0, 1], "cells": [[0,0,1,1],[1,0,2,1]]}`, "Set Layout - 2 columns"},
		{"layout three cols", "set_layout", `{"cols": [0, 1, 2], "rows": [0, 1]}`, "Set Layout - 2 columns"},
		{"layout single", "set_layout", `{"cols": [0, 1], "rows": [0, 1]}`, "Set Layout - Single"},
		{"layout rows", "set_layout", `{"cols": [0, 1], "rows": [0, 0.33, 0.66, 1]}`, "Set Layout - 3 rows"},
		{"layout grid", "set_layout", `{"cols": [0, 0.5, 1], "rows": [0, 0.5, 1]}`, "Set Layout - 2 x 2"},
		{"snippet name", "insert_snippet", `{"name": "python/def"}`, "Insert Snippet: python/def"},
		{"macro file stem", "run_macro_file", `{"file": "/a/b/macro.sublime-macro"}`, "Run Macro File: macro"},
		{"macro file res path", "run_macro_file", `{"file": "res://Packages/Default/Add Line.sublime-macro"}`, "Run Macro File: Add Line"},
		{"zen pvalue", "run_zen_action", `{"action": "expand_abbreviation"}`, "Zen Action: Expand Abbreviation"},
		{"overlay literal", "show_overlay", `{"overlay": "command_palette"}`, "Command Palette"},
		{"overlay nested", "show_overlay", `{"overlay": "goto", "text": "@"}`, "Goto Symbol"},
		{"overlay nested bool", "show_overlay", `{"overlay": "goto", "show_files": true}`, "Goto Anything"},
		{"panel nested", "show_panel", `{"panel": "incremental_find", "reverse": false}`, "Incremental Find"},
		{"panel literal", "show_panel", `{"panel": "output.exec"}`, "Show Build Results"},
		{"toggle comment bool", "toggle_comment", `{"block": true}`, "Toggle Block Comment"},
		{"fold explicit", "fold_by_level", `{"level": 1}`, "Fold all"},
		{"fold value default", "fold_by_level", `{"level": 3}`, "Fold level 3"},
		{"scroll explicit float", "scroll_lines", `{"amount": 1.0}`, "Scroll Up 1 Line"},
		{"scroll negative", "scroll_lines", `{"amount": -1.0}`, "Scroll Down 1 Line"},
		{"scroll default", "scroll_lines", `{"amount": 5.0}`, "Scroll 5.0 Lines"},
		{"move extend", "move", `{"by": "words", "forward": true, "extend": true}`, "Expand Selection by Words"},
		{"move extend backwards", "move", `{"by": "word_ends", "forward": false, "extend": true}`, "Expand Selection Backwards by Word Ends"},
		{"move parent default", "move", `{"by": "characters", "forward": false}`, "Move Backwards by Characters"},
		{"move extend false uses parent default", "move", `{"by": "lines", "extend": false, "forward": true}`, "Move Forward by Lines"},
		{"open file literal", "open_file", `{"file": "${packages}/User/Preferences.sublime-settings"}`, "User Preferences"},
		{"unknown command no args", "close_window", ``, "Close Window"},
		{"unknown command empty args", "close_window", `{}`, "Close Window"},
		{"unknown value falls back", "toggle_comment", `{"block": "yes"}`, "Toggle Comment - {block: yes}"},
		{"container arg value falls back", "toggle_comment", `{"block": [true]}`, "Toggle Comment - {block: [true]}"},
		{"no matching arg falls back", "insert_snippet", `{"other": 1}`, "Insert Snippet - {other: 1}"},
		{"layout bad args", "set_layout", `{"cols": 2}`, "Set Layout - {cols: 2}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a value.Value
			if tt.args != "" {
				a = parseArgs(t, tt.args)
			}
			assert.Equal(t, tt.want, Format(tt.command, a))
		})
	}
}

func TestFormat_UnknownCommand(t *testing.T) {
	got := Format("totally_unknown_command", parseArgs(t, `{"foo": "bar"}`))
	assert.True(t, strings.HasPrefix(got, "Totally Unknown Command - "), got)
	assert.Contains(t, got, "foo")
	assert.Contains(t, got, "bar")
}

func TestFormat_BooleansAreNotNumbers(t *testing.T) {
	tbl := Table{
		"pick": &Tree{Args: map[string]Node{
			"x": &ValueMap{Values: map[Key]Node{
				Num(1):     Literal("one"),
				Bool(true): Literal("yes"),
				Str("1"):   Literal("string one"),
			}},
		}},
	}
	f := New(tbl)
	assert.Equal(t, "one", f.Format("pick", parseArgs(t, `{"x": 1}`)))
	assert.Equal(t, "yes", f.Format("pick", parseArgs(t, `{"x": true}`)))
	assert.Equal(t, "string one", f.Format("pick", parseArgs(t, `{"x": "1"}`)))
	assert.Equal(t, "Pick - {x: 0}", f.Format("pick", parseArgs(t, `{"x": 0}`)))
	assert.Equal(t, "Pick - {x: false}", f.Format("pick", parseArgs(t, `{"x": false}`)))
}

func TestFormat_LiteralIgnoresArgs(t *testing.T) {
	f := New(Table{"save_all": Literal("Save All Files")})
	for _, a := range []string{``, `{}`, `{"x": 1}`, `{"nested": {"a": [1, 2]}}`} {
		var v value.Value
		if a != "" {
			v = parseArgs(t, a)
		}
		assert.Equal(t, "Save All Files", f.Format("save_all", v))
	}
}

func TestFormat_Idempotent(t *testing.T) {
	a := parseArgs(t, `{"by": "words", "forward": true, "extend": true}`)
	first := Format("move", a)
	second := Format("move", a)
	assert.Equal(t, first, second)

	u := parseArgs(t, `{"z": {"a": [1, "\t"]}, "b": null}`)
	assert.Equal(t, Format("zzz", u), Format("zzz", u))
}

func TestResolve_Precedence(t *testing.T) {
	tree := &Tree{
		Args: map[string]Node{
			"mode": &ValueMap{
				Values: map[Key]Node{
					Str("explicit"): Literal("explicit match"),
					Str("nested"): &Tree{Args: map[string]Node{
						"never": Template("unreachable"),
					}},
				},
				Default: Template("leaf default {value}"),
			},
		},
		Default: &Tree{Args: map[string]Node{
			"other": Template("parent default {value}"),
		}},
	}

	tests := []struct {
		name   string
		args   string
		want   string
		wantOK bool
	}{
		{"explicit match wins", `{"mode": "explicit", "other": "x"}`, "explicit match", true},
		{"leaf default", `{"mode": "unlisted", "other": "x"}`, "leaf default unlisted", true},
		{"nested miss uses leaf default", `{"mode": "nested"}`, "leaf default nested", true},
		{"parent default", `{"other": "x"}`, "parent default x", true},
		{"no result", `{"unrelated": 1}`, "", false},
		{"scalar args", `"mode"`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tree, parseArgs(t, tt.args))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_ArgumentOrder(t *testing.T) {
	got, ok := Resolve(defaultTable["insert_snippet"].(*Tree), parseArgs(t, `{"name": "a", "contents": "b"}`))
	require.True(t, ok)
	assert.Equal(t, "Insert Snippet: a", got)

	got, ok = Resolve(defaultTable["insert_snippet"].(*Tree), parseArgs(t, `{"contents": "b", "name": "a"}`))
	require.True(t, ok)
	assert.Equal(t, "Insert Snippet: b", got)
}

func TestTemplateExpand(t *testing.T) {
	assert.Equal(t, "Go to eof", Template("Go to {value}").Expand(value.String("eof")))
	assert.Equal(t, "By Sub Words", Template("By {pvalue}").Expand(value.String("sub_words")))
	assert.Equal(t, "Run c_d", Template("Run {filename}").Expand(value.String("a_b/c_d.txt")))
	assert.Equal(t, "3|3|3", Template("{value}|{pvalue}|{filename}").Expand(value.Number(3)))
}

func TestFileStem(t *testing.T) {
	assert.Equal(t, "macro", fileStem("/a/b/macro.sublime-macro"))
	assert.Equal(t, "a.b", fileStem("a.b.c"))
	assert.Equal(t, ".bashrc", fileStem("/home/.bashrc"))
	assert.Equal(t, "noext", fileStem("dir/noext"))
	assert.Empty(t, fileStem(""))
}

func TestTitleSnake(t *testing.T) {
	assert.Equal(t, "Close Window", TitleSnake("close_window"))
	assert.Equal(t, "Word Ends", TitleSnake("WORD_ENDS"))
	assert.Equal(t, "Goto.Line", TitleSnake("goto.line"))
	assert.Equal(t, "A1B", TitleSnake("a1b"))
	assert.Equal(t, "Scroll 5.0 Lines", TitleSnake("scroll 5.0 lines"))
}

func TestKnownAndSuggest(t *testing.T) {
	assert.True(t, Known("set_layout"))
	assert.True(t, Known("move"))
	assert.False(t, Known("nope"))

	s, ok := Suggest("toggle_coment")
	require.True(t, ok)
	assert.Equal(t, "toggle_comment", s)

	_, ok = Suggest("move")
	assert.False(t, ok, "exact matches need no suggestion")

	_, ok = Suggest("completely_different_thing")
	assert.False(t, ok)
}

func TestDefaultTableShape(t *testing.T) {
	for name, rule := range DefaultTable() {
		switch rule.(type) {
		case Literal, *Tree:
		default:
			t.Errorf("command %q has top-level rule %T, want Literal or *Tree", name, rule)
		}
	}
}
