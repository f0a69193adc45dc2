// internal/app/popupctl/types.go
package popupctl

// Type identifies which popup is currently active.
type Type int

const (
	None Type = iota
	Conflicts
	Confirm
	ScanReport
	Error
)

// Priority defines which popup takes precedence (highest priority first).
var Priority = []Type{
	Error,
	Confirm,
	ScanReport,
	Conflicts,
}

// RenderOrder defines the order popups are rendered (bottom to top).
var RenderOrder = []Type{
	Conflicts,
	ScanReport,
	Confirm,
	Error,
}
