//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpScanPackages,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpScanPackages,
			err:      errors.New("no such directory"),
			expected: "Failed to scan packages: no such directory",
		},
		{
			name:     "config operation",
			op:       OpConfigLoad,
			err:      errors.New("bad toml"),
			expected: "Failed to load configuration: bad toml",
		},
		{
			name:     "dispatch operation",
			op:       OpRunCommand,
			err:      errors.New("executable not found"),
			expected: "Failed to run command: executable not found",
		},
		{
			name:     "history operation",
			op:       OpHistorySave,
			err:      errors.New("database is locked"),
			expected: "Failed to save history: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpParseKeymap,
			context:  "Default.sublime-keymap",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpParseKeymap,
			context:  "Default.sublime-keymap",
			err:      errors.New("unexpected token"),
			expected: "Failed to parse keymap 'Default.sublime-keymap': unexpected token",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpParseKeymap,
			context:  "",
			err:      errors.New("unexpected token"),
			expected: "Failed to parse keymap: unexpected token",
		},
		{
			name:     "run command with context",
			op:       OpRunCommand,
			context:  "show_overlay",
			err:      errors.New("exit status 1"),
			expected: "Failed to run command 'show_overlay': exit status 1",
		},
		{
			name:     "export with path context",
			op:       OpExport,
			context:  "/tmp/sheet.md",
			err:      errors.New("permission denied"),
			expected: "Failed to export cheat sheet '/tmp/sheet.md': permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	// Verify that Op constants are non-empty and produce valid messages
	ops := []Op{
		OpConfigLoad,
		OpScanPackages, OpParseKeymap, OpWatch,
		OpRunCommand, OpCopyCommand,
		OpHistoryLoad, OpHistorySave, OpHistoryClear,
		OpExport,
		OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result := Format(op, testErr); result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
