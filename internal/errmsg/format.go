// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Configuration
	OpConfigLoad Op = "load configuration"

	// Keymap scanning
	OpScanPackages Op = "scan packages"
	OpParseKeymap  Op = "parse keymap"
	OpWatch        Op = "watch packages"

	// Command dispatch
	OpRunCommand  Op = "run command"
	OpCopyCommand Op = "copy command"

	// History
	OpHistoryLoad  Op = "load history"
	OpHistorySave  Op = "save history"
	OpHistoryClear Op = "clear history"

	// Export
	OpExport Op = "export cheat sheet"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
