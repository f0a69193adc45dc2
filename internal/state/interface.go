// internal/state/interface.go
package state

import (
	"database/sql"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	DB() *sql.DB
	SavePicker(state PickerState)
	GetPicker() (*PickerState, error)
	Record(command, args string) error
	Recent(limit int) ([]HistoryEntry, error)
	Counts() (map[string]int, error)
	Clear() error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
