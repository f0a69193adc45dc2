package label

// args and values keep the table literal readable.
type (
	args   = map[string]Node
	values = map[Key]Node
)

// defaultTable holds labels for the editor's built-in commands. It is never
// mutated after package initialization.
var defaultTable = Table{
	"show_overlay": &Tree{Args: args{
		"overlay": &ValueMap{Values: values{
			Str("goto"): &Tree{Args: args{
				"text": &ValueMap{Values: values{
					Str("@"): Literal("Goto Symbol"),
					Str(":"): Literal("Goto Line"),
					Str("#"): Literal("Search Keywords"),
				}},
				"show_files": &ValueMap{Values: values{
					Bool(true): Literal("Goto Anything"),
				}},
			}},
			Str("command_palette"): Literal("Command Palette"),
		}},
	}},
	"show_panel": &Tree{Args: args{
		"panel": &ValueMap{Values: values{
			Str("console"):       Literal("Show Console"),
			Str("find_in_files"): Literal("Find in Files"),
			Str("output.exec"):   Literal("Show Build Results"),
			Str("find"):          Literal("Find..."),
			Str("replace"):       Literal("Find and Replace"),
			Str("incremental_find"): &Tree{Args: args{
				"reverse": &ValueMap{Values: values{
					Bool(true):  Literal("Incremental Find (reverse)"),
					Bool(false): Literal("Incremental Find"),
				}},
			}},
		}},
	}},
	"run_zen_action": &Tree{Args: args{
		"action": Template("Zen Action: {pvalue}"),
	}},
	"insert_snippet": &Tree{Args: args{
		"contents": Template("Insert Snippet: {value}"),
		"name":     Template("Insert Snippet: {value}"),
	}},
	"run_macro_file": &Tree{Args: args{
		"file": Template("Run Macro File: {filename}"),
	}},
	"expand_selection": &Tree{Args: args{
		"to": Template("Expand Selection to {value}"),
	}},
	"open_file": &Tree{Args: args{
		"file": &ValueMap{Values: values{
			Str("${packages}/User/Preferences.sublime-settings"): Literal("User Preferences"),
		}},
	}},
	"switch_file": &Tree{Args: args{
		"extensions": Template("Switch header / implementation file"),
	}},
	"move_to": &Tree{Args: args{
		"to": Template("Move to {value}"),
	}},
	"move_to_group": &Tree{Args: args{
		"group": Template("Move to Group {value}"),
	}},
	"select_by_index": &Tree{Args: args{
		"index": Template("Select by Index {value}"),
	}},
	"fold_by_level": &Tree{Args: args{
		"level": &ValueMap{
			Values: values{
				Num(1): Literal("Fold all"),
			},
			Default: Template("Fold level {value}"),
		},
	}},
	"focus_group": &Tree{Args: args{
		"group": Template("Focus group {value}"),
	}},
	"toggle_comment": &Tree{Args: args{
		"block": &ValueMap{Values: values{
			Bool(true):  Literal("Toggle Block Comment"),
			Bool(false): Literal("Toggle Line Comment"),
		}},
	}},
	"select_lines": &Tree{Args: args{
		"forward": &ValueMap{Values: values{
			Bool(true):  Literal("Select Line Below"),
			Bool(false): Literal("Select Line Above"),
		}},
	}},
	"scroll_lines": &Tree{Args: args{
		"amount": &ValueMap{
			Values: values{
				Num(1):  Literal("Scroll Up 1 Line"),
				Num(-1): Literal("Scroll Down 1 Line"),
			},
			Default: Template("Scroll {value} Lines"),
		},
	}},
	"move": &Tree{
		Args: args{
			"extend": &ValueMap{Values: values{
				Bool(true): &Tree{Args: args{
					"forward": &ValueMap{Values: values{
						Bool(true):  &Tree{Args: args{"by": Template("Expand Selection by {pvalue}")}},
						Bool(false): &Tree{Args: args{"by": Template("Expand Selection Backwards by {pvalue}")}},
					}},
				}},
			}},
		},
		Default: &Tree{Args: args{
			"forward": &ValueMap{Values: values{
				Bool(true):  &Tree{Args: args{"by": Template("Move Forward by {pvalue}")}},
				Bool(false): &Tree{Args: args{"by": Template("Move Backwards by {pvalue}")}},
			}},
		}},
	},
}

// DefaultTable returns the built-in command table. Callers must not modify it.
func DefaultTable() Table {
	return defaultTable
}
